package radius

// CornerState is the editable state of one corner.
//
// Both unit buckets are retained at all times so that toggling a unit only
// changes which bucket is displayed.
type CornerState struct {
	Absolute [2]int  // px magnitudes, indexed by Axis
	Relative [2]int  // % magnitudes, indexed by Axis
	Units    [2]Unit // active unit per Axis
	Linked   bool    // vertical follows horizontal
}

// bucket returns the magnitude pair for unit u.
func (cs *CornerState) bucket(u Unit) *[2]int {
	if u == Relative {
		return &cs.Relative
	}
	return &cs.Absolute
}

// State is the complete editable state. It holds no pointers, so plain
// assignment yields an independent copy.
type State struct {
	Corners [4]CornerState
	Mode    Mode
	Shape   Shape
}

// Linked returns the linked flag of every corner.
func (s *State) Linked() [4]bool {
	var out [4]bool
	for _, c := range Corners {
		out[c] = s.Corners[c].Linked
	}
	return out
}

// Size returns the preview box dimensions of the current shape.
func (s *State) Size() (w, h int) { return s.Shape.Size() }

// Resolve derives the radius set for the current mode. Out-of-range modes
// behave as ModeIndependent.
func (s *State) Resolve() Derived {
	return Resolve(s, s.Mode.Normalize())
}

// ApplyPreset overwrites mode, radii and units with p merged over the
// defaults. Linked flags and shape are left alone.
func (s *State) ApplyPreset(p Preset) {
	for _, c := range Corners {
		cs := &s.Corners[c]
		cs.Absolute = defaultAbsolute[c]
		cs.Relative = defaultRelative[c]
		cs.Units = defaultUnits[c]
		if v, ok := p.Absolute[c]; ok {
			cs.Absolute = v
		}
		if v, ok := p.Relative[c]; ok {
			cs.Relative = v
		}
		if v, ok := p.Units[c]; ok {
			cs.Units = v
		}
	}
	s.Mode = p.Mode.Normalize()
}

// Fallback tables. Presets and partially specified blobs are merged over them.
var (
	defaultAbsolute = [4][2]int{{80, 80}, {80, 10}, {100, 10}, {80, 80}}
	defaultRelative = [4][2]int{{30, 40}, {20, 3}, {25, 3}, {20, 27}}
	defaultUnits    = [4][2]Unit{
		{Relative, Relative},
		{Absolute, Absolute},
		{Absolute, Absolute},
		{Absolute, Absolute},
	}
)

// Initial values used when nothing has been persisted yet.
var (
	initialAbsolute = [4][2]int{{90, 120}, {349, 153}, {203, 151}, {173, 173}}
	initialRelative = [4][2]int{{30, 40}, {87, 51}, {51, 50}, {43, 58}}
)

// DefaultState returns the built-in starting state: four independent corners
// on a rectangle.
func DefaultState() State {
	var s State
	for _, c := range Corners {
		s.Corners[c] = CornerState{
			Absolute: initialAbsolute[c],
			Relative: initialRelative[c],
			Units:    defaultUnits[c],
		}
	}
	s.Mode = ModeIndependent
	s.Shape = Rectangle
	return s
}
