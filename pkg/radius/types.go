package radius

import (
	"fmt"
	"strings"

	"github.com/matzehuels/radii/pkg/errors"
)

// =============================================================================
// Corner
// =============================================================================

// Corner identifies one of the four box corners.
// The numeric order is the CSS clockwise order used by the shorthand.
type Corner int

const (
	TopLeft Corner = iota
	TopRight
	BottomRight
	BottomLeft
)

// Corners lists all corners in CSS shorthand order.
var Corners = [4]Corner{TopLeft, TopRight, BottomRight, BottomLeft}

var cornerKeys = [4]string{"tl", "tr", "br", "bl"}

var cornerNames = [4]string{"top-left", "top-right", "bottom-right", "bottom-left"}

// Key returns the short persisted key ("tl", "tr", "br", "bl").
func (c Corner) Key() string {
	if !c.Valid() {
		return ""
	}
	return cornerKeys[c]
}

// String returns the long name ("top-left", ...).
func (c Corner) String() string {
	if !c.Valid() {
		return fmt.Sprintf("Corner(%d)", int(c))
	}
	return cornerNames[c]
}

// Valid reports whether c is one of the four corners.
func (c Corner) Valid() bool { return c >= TopLeft && c <= BottomLeft }

// ParseCorner accepts a short key ("tl") or a long name ("top-left").
func ParseCorner(s string) (Corner, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i := range Corners {
		if s == cornerKeys[i] || s == cornerNames[i] || s == strings.ReplaceAll(cornerNames[i], "-", "") {
			return Corner(i), nil
		}
	}
	return 0, errors.New(errors.ErrCodeInvalidCorner, "unknown corner %q (want tl, tr, br or bl)", s)
}

// =============================================================================
// Axis
// =============================================================================

// Axis is the horizontal or vertical component of a corner's curve.
type Axis int

const (
	Horizontal Axis = iota
	Vertical
)

// String returns "horizontal" or "vertical".
func (a Axis) String() string {
	switch a {
	case Horizontal:
		return "horizontal"
	case Vertical:
		return "vertical"
	}
	return fmt.Sprintf("Axis(%d)", int(a))
}

// Valid reports whether a is Horizontal or Vertical.
func (a Axis) Valid() bool { return a == Horizontal || a == Vertical }

// ParseAxis accepts "h", "horizontal", "x", "0" and the vertical equivalents.
func ParseAxis(s string) (Axis, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "h", "horizontal", "x", "0":
		return Horizontal, nil
	case "v", "vertical", "y", "1":
		return Vertical, nil
	}
	return 0, errors.New(errors.ErrCodeInvalidAxis, "unknown axis %q (want h or v)", s)
}

// =============================================================================
// Unit
// =============================================================================

// Unit is the unit a magnitude is expressed in.
type Unit int

const (
	Absolute Unit = iota // px
	Relative             // %
)

// Suffix returns the CSS suffix ("px" or "%").
func (u Unit) Suffix() string {
	if u == Relative {
		return "%"
	}
	return "px"
}

// String is the same as Suffix.
func (u Unit) String() string { return u.Suffix() }

// Toggle returns the other unit.
func (u Unit) Toggle() Unit {
	if u == Relative {
		return Absolute
	}
	return Relative
}

// ParseUnit maps "%" to Relative and anything else to Absolute.
// Persisted blobs only ever hold "px" or "%", so unknown strings degrade to px.
func ParseUnit(s string) Unit {
	if strings.TrimSpace(s) == "%" {
		return Relative
	}
	return Absolute
}

// Caps for user-entered values. These are editor sanity bounds, not CSS limits.
const (
	MaxRelative           = 100
	MaxAbsoluteHorizontal = 400
	MaxAbsoluteVertical   = 300
)

// MaxValue returns the upper bound for a magnitude on axis a under unit u.
func MaxValue(a Axis, u Unit) int {
	switch {
	case u == Relative:
		return MaxRelative
	case a == Vertical:
		return MaxAbsoluteVertical
	default:
		return MaxAbsoluteHorizontal
	}
}

// =============================================================================
// Mode
// =============================================================================

// Mode is the symmetry mode, mirroring the CSS shorthand value count.
type Mode int

const (
	ModeAll         Mode = 1 // every corner follows top-left
	ModeDiagonal    Mode = 2 // bottom-right = top-left, bottom-left = top-right
	ModeThree       Mode = 3 // bottom-left = top-right
	ModeIndependent Mode = 4 // no mirroring
)

// Valid reports whether m is in [1,4].
func (m Mode) Valid() bool { return m >= ModeAll && m <= ModeIndependent }

// Normalize maps out-of-range modes to ModeIndependent.
func (m Mode) Normalize() Mode {
	if !m.Valid() {
		return ModeIndependent
	}
	return m
}

// Visible reports whether corner c is independently editable (and emitted by
// the shorthand) under m.
func (m Mode) Visible(c Corner) bool {
	return int(c) < int(m.Normalize())
}

// VisibleCorners returns the corners that are emitted under m, in order.
func (m Mode) VisibleCorners() []Corner {
	return Corners[:m.Normalize()]
}

// String renders "1 Value", "2 Values", ...
func (m Mode) String() string {
	if m == ModeAll {
		return "1 Value"
	}
	return fmt.Sprintf("%d Values", int(m))
}

// ParseMode parses a decimal mode and rejects values outside [1,4].
func ParseMode(s string) (Mode, error) {
	var n int
	if _, err := fmt.Sscanf(strings.TrimSpace(s), "%d", &n); err != nil {
		return 0, errors.Wrap(errors.ErrCodeInvalidMode, err, "invalid mode %q", s)
	}
	m := Mode(n)
	if !m.Valid() {
		return 0, errors.New(errors.ErrCodeInvalidMode, "invalid mode %d (want 1-4)", n)
	}
	return m, nil
}

// CornerLabel is the caption shown above a corner's controls under mode m.
func CornerLabel(c Corner, m Mode) string {
	m = m.Normalize()
	switch c {
	case TopLeft:
		switch m {
		case ModeAll:
			return "All Corners"
		case ModeDiagonal:
			return "TOP-L / BOT-R"
		}
		return "Top Left"
	case TopRight:
		if m == ModeDiagonal || m == ModeThree {
			return "TOP-R / BOT-L"
		}
		return "Top Right"
	case BottomRight:
		return "Bottom Right"
	case BottomLeft:
		return "Bottom Left"
	}
	return ""
}

// =============================================================================
// Shape
// =============================================================================

// Shape selects the preview box dimensions.
type Shape int

const (
	Rectangle Shape = iota
	Square
)

// Size returns the box width and height in pixels.
func (s Shape) Size() (w, h int) {
	if s == Square {
		return 320, 320
	}
	return 500, 300
}

// Valid reports whether s is Rectangle or Square.
func (s Shape) Valid() bool { return s == Rectangle || s == Square }

// String returns "rectangle" or "square".
func (s Shape) String() string {
	if s == Square {
		return "square"
	}
	return "rectangle"
}

// ParseShape accepts "rectangle"/"rect" and "square".
func ParseShape(s string) (Shape, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "rectangle", "rect":
		return Rectangle, nil
	case "square":
		return Square, nil
	}
	return 0, errors.New(errors.ErrCodeInvalidShape, "unknown shape %q (want rectangle or square)", s)
}

// =============================================================================
// Derived radius set
// =============================================================================

// Value is a magnitude with its unit.
type Value struct {
	Magnitude int
	Unit      Unit
}

// String renders the CSS term, e.g. "80px" or "5%".
func (v Value) String() string {
	return fmt.Sprintf("%d%s", v.Magnitude, v.Unit.Suffix())
}

// CornerRadius holds both axes of one corner.
type CornerRadius struct {
	H, V Value
}

// Symmetric reports whether both axes carry the same magnitude and unit.
func (r CornerRadius) Symmetric() bool { return r.H == r.V }

// Axis returns the value for axis a.
func (r CornerRadius) Axis(a Axis) Value {
	if a == Vertical {
		return r.V
	}
	return r.H
}

// Derived is the resolved radius set the renderer consumes.
// It is indexed by Corner and is a plain value: copies never alias.
type Derived [4]CornerRadius

// Corner returns the radius of c.
func (d Derived) Corner(c Corner) CornerRadius { return d[c] }
