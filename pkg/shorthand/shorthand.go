// Package shorthand renders a resolved radius set as a CSS border-radius value.
//
// [Serialize] produces the shortest shorthand for the symmetry mode: one to
// four horizontal terms, followed by " / " and the vertical terms only when a
// corner emitted under that mode has differing axes. [Rule] lays the value out
// as a readable declaration, [Longhands] expands it to the four per-corner
// properties and [Validate] checks that a value fits the shorthand grammar.
package shorthand

import (
	"strings"

	"github.com/matzehuels/radii/pkg/radius"
)

// Property is the CSS property the serialized value belongs to.
const Property = "border-radius"

// Serialize renders d as a border-radius value for mode.
//
// Only corners visible under mode are emitted and only those can force the
// vertical clause; a linked corner never does.
func Serialize(d radius.Derived, mode radius.Mode, linked [4]bool) string {
	visible := mode.VisibleCorners()

	h := terms(d, visible, radius.Horizontal)
	if !needsVertical(d, visible, linked) {
		return h
	}
	return h + " / " + terms(d, visible, radius.Vertical)
}

func terms(d radius.Derived, corners []radius.Corner, a radius.Axis) string {
	parts := make([]string, len(corners))
	for i, c := range corners {
		parts[i] = d[c].Axis(a).String()
	}
	return strings.Join(parts, " ")
}

func needsVertical(d radius.Derived, corners []radius.Corner, linked [4]bool) bool {
	for _, c := range corners {
		if !linked[c] && !d[c].Symmetric() {
			return true
		}
	}
	return false
}

// FromState resolves s and serializes it in one step.
func FromState(s *radius.State) string {
	return Serialize(s.Resolve(), s.Mode.Normalize(), s.Linked())
}

// Rule formats value as a declaration the way the preview shows it: one or
// two terms stay on the property line, longer values move to an indented
// second line, and the slash form puts the vertical terms on a third.
func Rule(value string) string {
	var b strings.Builder
	b.WriteString(Property)
	b.WriteString(":")

	h, v, slash := strings.Cut(value, " / ")
	switch {
	case slash:
		b.WriteString("\n    ")
		b.WriteString(h)
		b.WriteString(" /\n        ")
		b.WriteString(v)
	case len(strings.Fields(value)) <= 2:
		b.WriteString(" ")
		b.WriteString(value)
	default:
		b.WriteString("\n    ")
		b.WriteString(value)
	}
	b.WriteString(";")
	return b.String()
}

// Declaration is one CSS property/value pair.
type Declaration struct {
	Property string
	Value    string
}

// String renders "property: value;".
func (d Declaration) String() string { return d.Property + ": " + d.Value + ";" }

var longhandProps = [4]string{
	"border-top-left-radius",
	"border-top-right-radius",
	"border-bottom-right-radius",
	"border-bottom-left-radius",
}

// Longhands expands d into the four per-corner properties. Symmetric corners
// use the one-value form.
func Longhands(d radius.Derived) []Declaration {
	out := make([]Declaration, 0, 4)
	for _, c := range radius.Corners {
		r := d[c]
		val := r.H.String()
		if !r.Symmetric() {
			val += " " + r.V.String()
		}
		out = append(out, Declaration{Property: longhandProps[c], Value: val})
	}
	return out
}
