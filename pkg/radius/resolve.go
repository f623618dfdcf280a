package radius

// Resolve derives the radius set that the box renders with.
//
// Each corner reads every axis from the bucket of that axis' active unit; a
// linked corner then copies its horizontal value over the vertical one. Mode
// mirroring always flows from the canonical corners (top-left, top-right) to
// (bottom-right, bottom-left) and copies magnitude and unit together:
//
//	mode 1: tr, br, bl = tl
//	mode 2: br = tl, bl = tr
//	mode 3: bl = tr
//	mode 4: nothing
//
// The result is rebuilt from s on every call. Resolve expects a mode in
// [1,4]; callers normalize first (see State.Resolve).
func Resolve(s *State, mode Mode) Derived {
	var d Derived
	for _, c := range Corners {
		cs := &s.Corners[c]
		h := Value{Magnitude: cs.bucket(cs.Units[Horizontal])[Horizontal], Unit: cs.Units[Horizontal]}
		v := Value{Magnitude: cs.bucket(cs.Units[Vertical])[Vertical], Unit: cs.Units[Vertical]}
		if cs.Linked {
			v = h
		}
		d[c] = CornerRadius{H: h, V: v}
	}

	switch mode {
	case ModeAll:
		d[TopRight] = d[TopLeft]
		d[BottomRight] = d[TopLeft]
		d[BottomLeft] = d[TopLeft]
	case ModeDiagonal:
		d[BottomRight] = d[TopLeft]
		d[BottomLeft] = d[TopRight]
	case ModeThree:
		d[BottomLeft] = d[TopRight]
	}
	return d
}
