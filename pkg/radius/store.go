package radius

import (
	"math"
	"strconv"
	"strings"
)

// DisplayValue returns the magnitude of corner c on axis a under the unit
// currently active for that axis.
func (s *State) DisplayValue(c Corner, a Axis) int {
	cs := &s.Corners[c]
	return cs.bucket(cs.Units[a])[a]
}

// ActiveUnit returns the unit currently selected for corner c on axis a.
func (s *State) ActiveUnit(c Corner, a Axis) Unit {
	return s.Corners[c].Units[a]
}

// SetValue parses raw as an integer and stores it in the bucket of the
// active unit for (c, a). Input that does not start with a number counts as
// 0. The value is clamped to [0, MaxValue(a, unit)].
//
// When the corner is linked, the value is written to both axes of the same
// bucket regardless of which axis was edited, and is clamped to the smaller
// of the two axis caps so neither slot exceeds its own.
func (s *State) SetValue(c Corner, a Axis, raw string) {
	cs := &s.Corners[c]
	u := cs.Units[a]
	v := ParseInput(raw)
	limit := MaxValue(a, u)
	if cs.Linked {
		limit = min(MaxValue(Horizontal, u), MaxValue(Vertical, u))
	}
	if v > limit {
		v = limit
	}

	b := cs.bucket(u)
	b[a] = v
	if cs.Linked {
		b[Horizontal], b[Vertical] = v, v
	}
}

// ToggleUnit flips the active unit of (c, a) between px and %. A linked
// corner flips both axes together. Stored magnitudes are not touched.
func (s *State) ToggleUnit(c Corner, a Axis) {
	cs := &s.Corners[c]
	next := cs.Units[a].Toggle()
	if cs.Linked {
		cs.Units = [2]Unit{next, next}
		return
	}
	cs.Units[a] = next
}

// ToggleLink flips the linked flag of c. Linking copies the horizontal
// magnitude into the vertical slot of both buckets, and the horizontal unit
// into the vertical unit, before anything can read the corner.
func (s *State) ToggleLink(c Corner) {
	cs := &s.Corners[c]
	cs.Linked = !cs.Linked
	if cs.Linked {
		cs.Absolute[Vertical] = cs.Absolute[Horizontal]
		cs.Relative[Vertical] = cs.Relative[Horizontal]
		cs.Units[Vertical] = cs.Units[Horizontal]
	}
}

// ParseInput reads the leading integer of raw the way a lenient number field
// does: surrounding whitespace and a sign are accepted, parsing stops at the
// first non-digit, and anything unparsable yields 0. Negative results are
// clamped to 0 and very large numbers saturate.
func ParseInput(raw string) int {
	s := strings.TrimSpace(raw)
	neg := false
	if s != "" && (s[0] == '-' || s[0] == '+') {
		neg = s[0] == '-'
		s = s[1:]
	}
	end := 0
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == 0 || neg {
		return 0
	}
	n, err := strconv.Atoi(s[:end])
	if err != nil {
		return math.MaxInt
	}
	return n
}
