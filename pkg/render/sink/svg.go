package sink

import (
	"bytes"
	"fmt"
	"math"

	svg "github.com/ajstarks/svgo"

	"github.com/matzehuels/radii/pkg/geometry"
)

// SVGOption configures SVG rendering.
type SVGOption func(*svgRenderer)

type svgRenderer struct {
	theme   Theme
	overlay bool
	css     string
}

// WithOverlay draws the radius ellipses, guide lines and value labels.
func WithOverlay() SVGOption { return func(r *svgRenderer) { r.overlay = true } }

// WithTheme sets the colors.
func WithTheme(t Theme) SVGOption { return func(r *svgRenderer) { r.theme = t } }

// WithTitle embeds the CSS value as the document title.
func WithTitle(css string) SVGOption { return func(r *svgRenderer) { r.css = css } }

// RenderSVG draws the rounded box described by p.
func RenderSVG(p geometry.Projection, opts ...SVGOption) []byte {
	r := svgRenderer{theme: DefaultTheme}
	for _, opt := range opts {
		opt(&r)
	}

	var buf bytes.Buffer
	canvas := svg.New(&buf)
	width := int(math.Ceil(p.Width + 2*padding))
	height := int(math.Ceil(p.Height + 2*padding))
	canvas.Start(width, height, fmt.Sprintf(`viewBox="0 0 %d %d"`, width, height))
	if r.css != "" {
		canvas.Title("border-radius: " + r.css)
	}

	canvas.Def()
	canvas.LinearGradient("radii-fill", 0, 0, 100, 100, []svg.Offcolor{
		{Offset: 0, Color: r.theme.FillStart, Opacity: 1},
		{Offset: 100, Color: r.theme.FillEnd, Opacity: 1},
	})
	canvas.DefEnd()

	if r.theme.Background != "" {
		canvas.Rect(0, 0, width, height, "fill:"+r.theme.Background)
	}
	canvas.Path(outlinePath(p, padding, padding), `id="box"`, "fill:url(#radii-fill)")

	if r.overlay {
		renderOverlay(canvas, p, r.theme)
	}
	canvas.End()
	return buf.Bytes()
}

func renderOverlay(canvas *svg.SVG, p geometry.Projection, t Theme) {
	stroke := fmt.Sprintf("fill:none;stroke:%s;stroke-opacity:0.5;stroke-width:1", t.Overlay)
	dashed := stroke + ";stroke-dasharray:4 4"
	text := fmt.Sprintf("fill:%s;font-family:ui-monospace,monospace;font-size:12px", t.Label)

	canvas.Gid("overlay")
	for _, c := range p.Corners {
		if !c.Empty() {
			canvas.Ellipse(px(c.Center.X), px(c.Center.Y), round(c.EffectiveRX), round(c.EffectiveRY), dashed)
		}
		if c.ShowH {
			line(canvas, c.H, stroke)
			canvas.Text(px(c.H.Anchor.X), px(c.H.Anchor.Y+4), c.H.Text, text+";text-anchor:middle")
		}
		if c.ShowV {
			line(canvas, c.V, stroke)
			anchor := "start"
			if c.V.Anchor.X < c.Vertex.X {
				anchor = "end"
			}
			canvas.Text(px(c.V.Anchor.X), px(c.V.Anchor.Y+4), c.V.Text, text+";text-anchor:"+anchor)
		}
	}
	canvas.Gend()
}

func line(canvas *svg.SVG, l geometry.Label, style string) {
	canvas.Line(px(l.From.X), px(l.From.Y), px(l.To.X), px(l.To.Y), style)
}

// px maps a box coordinate onto the padded canvas, rounded to a whole pixel.
func px(v float64) int { return round(v + padding) }

func round(v float64) int { return int(math.Round(v)) }
