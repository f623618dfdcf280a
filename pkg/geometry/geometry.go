// Package geometry maps a resolved radius set onto pixel geometry for an
// annotated preview overlay.
package geometry

import (
	"github.com/matzehuels/radii/pkg/radius"
)

// LabelOffset is how far axis labels sit outside the box edge, in pixels.
const LabelOffset = 18.0

// Point is a position in box coordinates (origin top-left, y down).
type Point struct {
	X, Y float64
}

// Label annotates one axis of a corner: a guide line along the box edge from
// the vertex to the tangent point, and a text anchor beside it.
type Label struct {
	Text   string
	Anchor Point
	From   Point
	To     Point
}

// Corner is the projected geometry of one corner.
type Corner struct {
	Corner radius.Corner
	Radius radius.CornerRadius

	// RX and RY are the radii converted to pixels, before any overlap
	// reduction.
	RX, RY float64
	// EffectiveRX and EffectiveRY are the radii the browser actually draws:
	// RX/RY scaled so adjacent curves never overlap.
	EffectiveRX, EffectiveRY float64

	Vertex Point // box vertex of this corner
	Center Point // ellipse center from the effective radii, tangent to both adjacent edges

	H, V Label

	ShowH bool // horizontal label and guide are drawn
	ShowV bool // vertical label and guide are drawn
	// ShowBoth is set when both axes carry identical values on a non-square
	// box; equal terms then still describe different pixel radii.
	ShowBoth bool
}

// Empty reports whether the corner is square (nothing to draw).
func (c Corner) Empty() bool { return c.EffectiveRX == 0 || c.EffectiveRY == 0 }

// Projection is the overlay geometry of the whole box.
type Projection struct {
	Width, Height float64
	Scale         float64 // overlap reduction factor applied, 1 when none
	Corners       [4]Corner
}

// Pixels converts v to pixels. Percentages refer to extent, which is the box
// width for horizontal radii and the height for vertical ones.
func Pixels(v radius.Value, extent float64) float64 {
	if v.Unit == radius.Relative {
		return float64(v.Magnitude) * extent / 100
	}
	return float64(v.Magnitude)
}

// Project computes the overlay geometry of d on a width x height box.
func Project(d radius.Derived, width, height int) Projection {
	w, h := float64(width), float64(height)
	p := Projection{Width: w, Height: h, Scale: 1}

	var rx, ry [4]float64
	for _, c := range radius.Corners {
		rx[c] = Pixels(d[c].H, w)
		ry[c] = Pixels(d[c].V, h)
	}
	p.Scale = overlapScale(rx, ry, w, h)

	square := width == height
	for _, c := range radius.Corners {
		erx, ery := rx[c]*p.Scale, ry[c]*p.Scale
		sx, sy := direction(c)
		vertex := vertexOf(c, w, h)

		pc := Corner{
			Corner:      c,
			Radius:      d[c],
			RX:          rx[c],
			RY:          ry[c],
			EffectiveRX: erx,
			EffectiveRY: ery,
			Vertex:      vertex,
			Center:      Point{X: vertex.X + sx*erx, Y: vertex.Y + sy*ery},
		}

		identical := d[c].H == d[c].V
		pc.ShowBoth = identical && !square
		pc.ShowH = rx[c] > 0
		pc.ShowV = ry[c] > 0 && (!identical || pc.ShowBoth)

		pc.H = Label{
			Text:   d[c].H.String(),
			From:   vertex,
			To:     Point{X: vertex.X + sx*erx, Y: vertex.Y},
			Anchor: Point{X: vertex.X + sx*erx/2, Y: vertex.Y - sy*LabelOffset},
		}
		pc.V = Label{
			Text:   d[c].V.String(),
			From:   vertex,
			To:     Point{X: vertex.X, Y: vertex.Y + sy*ery},
			Anchor: Point{X: vertex.X - sx*LabelOffset, Y: vertex.Y + sy*ery/2},
		}
		p.Corners[c] = pc
	}
	return p
}

// ProjectState resolves s and projects it on the box of its shape.
func ProjectState(s *radius.State) Projection {
	w, h := s.Size()
	return Project(s.Resolve(), w, h)
}

// overlapScale returns the factor by which all radii shrink so that the
// curves on each side fit within that side (CSS Backgrounds 3, 5.5).
func overlapScale(rx, ry [4]float64, w, h float64) float64 {
	f := 1.0
	sides := []struct{ length, sum float64 }{
		{w, rx[radius.TopLeft] + rx[radius.TopRight]},
		{h, ry[radius.TopRight] + ry[radius.BottomRight]},
		{w, rx[radius.BottomRight] + rx[radius.BottomLeft]},
		{h, ry[radius.BottomLeft] + ry[radius.TopLeft]},
	}
	for _, s := range sides {
		if s.sum > 0 && s.length/s.sum < f {
			f = s.length / s.sum
		}
	}
	if f < 0 {
		return 0
	}
	return f
}

// direction returns the unit steps pointing from the corner's vertex into the
// box.
func direction(c radius.Corner) (sx, sy float64) {
	sx, sy = 1, 1
	if c == radius.TopRight || c == radius.BottomRight {
		sx = -1
	}
	if c == radius.BottomRight || c == radius.BottomLeft {
		sy = -1
	}
	return sx, sy
}

func vertexOf(c radius.Corner, w, h float64) Point {
	switch c {
	case radius.TopRight:
		return Point{X: w}
	case radius.BottomRight:
		return Point{X: w, Y: h}
	case radius.BottomLeft:
		return Point{Y: h}
	}
	return Point{}
}
