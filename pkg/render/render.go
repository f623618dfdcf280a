package render

import (
	"context"
	"strings"
	"time"

	"github.com/matzehuels/radii/pkg/editor"
	"github.com/matzehuels/radii/pkg/errors"
	"github.com/matzehuels/radii/pkg/observability"
	"github.com/matzehuels/radii/pkg/render/sink"
)

// Output formats.
const (
	FormatSVG  = "svg"
	FormatPNG  = "png"
	FormatJSON = "json"
	FormatCSS  = "css"
)

// Formats lists every supported format.
var Formats = []string{FormatSVG, FormatPNG, FormatJSON, FormatCSS}

// Options are the format-independent render settings.
type Options struct {
	Overlay bool
	Scale   float64 // PNG only; 0 means 2x
	Theme   sink.Theme
}

// ContentType returns the MIME type for format.
func ContentType(format string) string {
	switch format {
	case FormatSVG:
		return "image/svg+xml"
	case FormatPNG:
		return "image/png"
	case FormatJSON:
		return "application/json"
	}
	return "text/css; charset=utf-8"
}

// Render produces snap in the given format.
func Render(ctx context.Context, format string, snap editor.Snapshot, opts Options) ([]byte, error) {
	format = strings.ToLower(format)
	if err := errors.ValidateFormat(format); err != nil {
		return nil, err
	}
	if opts.Theme == (sink.Theme{}) {
		opts.Theme = sink.DefaultTheme
	}

	hooks := observability.Render()
	hooks.OnRenderStart(ctx, format)
	start := time.Now()

	data, err := render(format, snap, opts)

	hooks.OnRenderComplete(ctx, format, len(data), time.Since(start), err)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "render %s", format)
	}
	return data, nil
}

func render(format string, snap editor.Snapshot, opts Options) ([]byte, error) {
	switch format {
	case FormatSVG:
		svgOpts := []sink.SVGOption{sink.WithTheme(opts.Theme), sink.WithTitle(snap.CSS)}
		if opts.Overlay {
			svgOpts = append(svgOpts, sink.WithOverlay())
		}
		return sink.RenderSVG(snap.Projection, svgOpts...), nil
	case FormatPNG:
		pngOpts := []sink.PNGOption{sink.WithPNGTheme(opts.Theme), sink.WithScale(opts.Scale)}
		if opts.Overlay {
			pngOpts = append(pngOpts, sink.WithPNGOverlay())
		}
		return sink.RenderPNG(snap.Projection, pngOpts...)
	case FormatJSON:
		return sink.RenderJSON(snap.Projection,
			sink.WithJSONCSS(snap.CSS),
			sink.WithJSONLonghands(snap.Longhands))
	default:
		return []byte(snap.Rule + "\n"), nil
	}
}
