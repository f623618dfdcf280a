package sink

import (
	"bytes"
	"math"

	"github.com/fogleman/gg"

	"github.com/matzehuels/radii/pkg/geometry"
	"github.com/matzehuels/radii/pkg/radius"
)

// PNGOption configures PNG rendering.
type PNGOption func(*pngRenderer)

type pngRenderer struct {
	theme   Theme
	overlay bool
	scale   float64
}

// WithScale sets the PNG scale factor (default 2.0 for 2x resolution).
func WithScale(s float64) PNGOption {
	return func(r *pngRenderer) {
		if s > 0 {
			r.scale = s
		}
	}
}

// WithPNGOverlay draws the radius ellipses, guide lines and value labels.
func WithPNGOverlay() PNGOption { return func(r *pngRenderer) { r.overlay = true } }

// WithPNGTheme sets the colors.
func WithPNGTheme(t Theme) PNGOption { return func(r *pngRenderer) { r.theme = t } }

// RenderPNG rasterizes the rounded box described by p.
func RenderPNG(p geometry.Projection, opts ...PNGOption) ([]byte, error) {
	r := pngRenderer{theme: DefaultTheme, scale: 2.0}
	for _, opt := range opts {
		opt(&r)
	}

	w := p.Width + 2*padding
	h := p.Height + 2*padding
	dc := gg.NewContext(int(math.Ceil(w*r.scale)), int(math.Ceil(h*r.scale)))
	dc.Scale(r.scale, r.scale)

	if r.theme.Background != "" {
		dc.SetHexColor(r.theme.Background)
		dc.Clear()
	}

	grad := gg.NewLinearGradient(padding, padding, padding+p.Width, padding+p.Height)
	grad.AddColorStop(0, hexColor(r.theme.FillStart))
	grad.AddColorStop(1, hexColor(r.theme.FillEnd))
	drawOutline(dc, p, padding, padding)
	dc.SetFillStyle(grad)
	dc.Fill()

	if r.overlay {
		drawOverlay(dc, p, r.theme)
	}

	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// drawOutline traces the same path as outlinePath, with arcs flattened by
// DrawEllipticalArc.
func drawOutline(dc *gg.Context, p geometry.Projection, ox, oy float64) {
	c := p.Corners
	tl, tr := c[radius.TopLeft], c[radius.TopRight]
	br, bl := c[radius.BottomRight], c[radius.BottomLeft]
	x0, x3 := ox, ox+p.Width
	y0, y3 := oy, oy+p.Height

	dc.NewSubPath()
	dc.MoveTo(x0+tl.EffectiveRX, y0)
	dc.LineTo(x3-tr.EffectiveRX, y0)
	dc.DrawEllipticalArc(x3-tr.EffectiveRX, y0+tr.EffectiveRY, tr.EffectiveRX, tr.EffectiveRY, gg.Radians(270), gg.Radians(360))
	dc.LineTo(x3, y3-br.EffectiveRY)
	dc.DrawEllipticalArc(x3-br.EffectiveRX, y3-br.EffectiveRY, br.EffectiveRX, br.EffectiveRY, gg.Radians(0), gg.Radians(90))
	dc.LineTo(x0+bl.EffectiveRX, y3)
	dc.DrawEllipticalArc(x0+bl.EffectiveRX, y3-bl.EffectiveRY, bl.EffectiveRX, bl.EffectiveRY, gg.Radians(90), gg.Radians(180))
	dc.LineTo(x0, y0+tl.EffectiveRY)
	dc.DrawEllipticalArc(x0+tl.EffectiveRX, y0+tl.EffectiveRY, tl.EffectiveRX, tl.EffectiveRY, gg.Radians(180), gg.Radians(270))
	dc.ClosePath()
}

func drawOverlay(dc *gg.Context, p geometry.Projection, t Theme) {
	dc.SetLineWidth(1)
	for _, c := range p.Corners {
		if !c.Empty() {
			dc.SetDash(4, 4)
			dc.SetColor(withAlpha(t.Overlay, 0x80))
			dc.DrawEllipse(c.Center.X+padding, c.Center.Y+padding, c.EffectiveRX, c.EffectiveRY)
			dc.Stroke()
			dc.SetDash()
		}
		dc.SetHexColor(t.Overlay)
		if c.ShowH {
			drawGuide(dc, c.H)
			dc.SetHexColor(t.Label)
			dc.DrawStringAnchored(c.H.Text, c.H.Anchor.X+padding, c.H.Anchor.Y+padding, 0.5, 0.5)
		}
		dc.SetHexColor(t.Overlay)
		if c.ShowV {
			drawGuide(dc, c.V)
			ax := 0.0
			if c.V.Anchor.X < c.Vertex.X {
				ax = 1
			}
			dc.SetHexColor(t.Label)
			dc.DrawStringAnchored(c.V.Text, c.V.Anchor.X+padding, c.V.Anchor.Y+padding, ax, 0.5)
		}
	}
}

func drawGuide(dc *gg.Context, l geometry.Label) {
	dc.DrawLine(l.From.X+padding, l.From.Y+padding, l.To.X+padding, l.To.Y+padding)
	dc.Stroke()
}
