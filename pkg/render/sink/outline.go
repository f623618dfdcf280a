package sink

import (
	"fmt"
	"strings"

	"github.com/matzehuels/radii/pkg/geometry"
	"github.com/matzehuels/radii/pkg/radius"
)

// outlinePath returns an SVG path for the rounded box, offset by (ox, oy).
// It runs clockwise from the end of the top-left curve, drawing each corner
// with an elliptical arc of the effective radii.
func outlinePath(p geometry.Projection, ox, oy float64) string {
	c := p.Corners
	w, h := p.Width, p.Height
	tl, tr := c[radius.TopLeft], c[radius.TopRight]
	br, bl := c[radius.BottomRight], c[radius.BottomLeft]

	var b strings.Builder
	fmt.Fprintf(&b, "M%s %s", num(ox+tl.EffectiveRX), num(oy))
	fmt.Fprintf(&b, " H%s", num(ox+w-tr.EffectiveRX))
	arc(&b, tr, ox+w, oy+tr.EffectiveRY)
	fmt.Fprintf(&b, " V%s", num(oy+h-br.EffectiveRY))
	arc(&b, br, ox+w-br.EffectiveRX, oy+h)
	fmt.Fprintf(&b, " H%s", num(ox+bl.EffectiveRX))
	arc(&b, bl, ox, oy+h-bl.EffectiveRY)
	fmt.Fprintf(&b, " V%s", num(oy+tl.EffectiveRY))
	arc(&b, tl, ox+tl.EffectiveRX, oy)
	b.WriteString(" Z")
	return b.String()
}

func arc(b *strings.Builder, c geometry.Corner, x, y float64) {
	if c.Empty() {
		fmt.Fprintf(b, " L%s %s", num(x), num(y))
		return
	}
	fmt.Fprintf(b, " A%s %s 0 0 1 %s %s", num(c.EffectiveRX), num(c.EffectiveRY), num(x), num(y))
}

// num formats a coordinate with at most two decimals and no trailing zeros.
func num(v float64) string {
	s := fmt.Sprintf("%.2f", v)
	s = strings.TrimRight(s, "0")
	s = strings.TrimSuffix(s, ".")
	if s == "-0" {
		return "0"
	}
	return s
}
