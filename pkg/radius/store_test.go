package radius

import "testing"

func unitState(h, v Unit) State {
	s := DefaultState()
	for _, c := range Corners {
		s.Corners[c].Units = [2]Unit{h, v}
	}
	return s
}

func TestSetValueDisplay(t *testing.T) {
	tests := []struct {
		name  string
		unit  Unit
		axis  Axis
		input string
		want  int
	}{
		{"px horizontal", Absolute, Horizontal, "120", 120},
		{"px horizontal capped", Absolute, Horizontal, "500", 400},
		{"px vertical capped", Absolute, Vertical, "350", 300},
		{"pct capped", Relative, Horizontal, "150", 100},
		{"pct vertical", Relative, Vertical, "42", 42},
		{"negative", Absolute, Horizontal, "-5", 0},
		{"non numeric", Absolute, Horizontal, "abc", 0},
		{"empty", Relative, Vertical, "", 0},
		{"trailing unit", Absolute, Horizontal, "12px", 12},
		{"whitespace", Absolute, Vertical, "  42 ", 42},
		{"decimal truncates", Relative, Horizontal, "3.9", 3},
		{"overflow saturates", Absolute, Horizontal, "99999999999999999999999", 400},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, c := range Corners {
				s := unitState(tt.unit, tt.unit)
				s.SetValue(c, tt.axis, tt.input)
				if got := s.DisplayValue(c, tt.axis); got != tt.want {
					t.Errorf("%s: DisplayValue = %d, want %d", c, got, tt.want)
				}
			}
		})
	}
}

func TestSetValueKeepsOtherBucket(t *testing.T) {
	s := unitState(Relative, Relative)
	before := s.Corners[TopLeft].Absolute

	s.SetValue(TopLeft, Horizontal, "25")

	if got := s.Corners[TopLeft].Relative[Horizontal]; got != 25 {
		t.Errorf("Relative[h] = %d, want 25", got)
	}
	if s.Corners[TopLeft].Absolute != before {
		t.Errorf("Absolute bucket changed: %v -> %v", before, s.Corners[TopLeft].Absolute)
	}
}

func TestSetValueUnlinkedTouchesOneAxis(t *testing.T) {
	s := unitState(Absolute, Absolute)
	s.SetValue(TopRight, Vertical, "77")

	cs := s.Corners[TopRight]
	if cs.Absolute[Vertical] != 77 {
		t.Errorf("vertical = %d, want 77", cs.Absolute[Vertical])
	}
	if cs.Absolute[Horizontal] != initialAbsolute[TopRight][Horizontal] {
		t.Errorf("horizontal changed to %d", cs.Absolute[Horizontal])
	}
}

func TestLinkedInvariant(t *testing.T) {
	for _, axis := range []Axis{Horizontal, Vertical} {
		for _, c := range Corners {
			s := DefaultState()
			s.ToggleLink(c)
			s.SetValue(c, axis, "70")

			h, v := s.DisplayValue(c, Horizontal), s.DisplayValue(c, Vertical)
			if h != 70 || v != 70 {
				t.Errorf("%s edit %s: display = (%d, %d), want (70, 70)", c, axis, h, v)
			}
			if s.ActiveUnit(c, Horizontal) != s.ActiveUnit(c, Vertical) {
				t.Errorf("%s: units differ after linked edit", c)
			}
		}
	}
}

func TestLinkedSetValueCap(t *testing.T) {
	tests := []struct {
		name  string
		unit  Unit
		axis  Axis
		input string
		want  int
	}{
		{"px horizontal edit takes vertical cap", Absolute, Horizontal, "400", 300},
		{"px vertical edit", Absolute, Vertical, "1000", 300},
		{"px within both caps", Absolute, Horizontal, "250", 250},
		{"pct", Relative, Horizontal, "150", 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := unitState(tt.unit, tt.unit)
			s.ToggleLink(TopRight)
			s.SetValue(TopRight, tt.axis, tt.input)

			for _, a := range []Axis{Horizontal, Vertical} {
				got := s.DisplayValue(TopRight, a)
				if got != tt.want {
					t.Errorf("%s = %d, want %d", a, got, tt.want)
				}
				if got > MaxValue(a, tt.unit) {
					t.Errorf("%s = %d exceeds its cap %d", a, got, MaxValue(a, tt.unit))
				}
			}
		})
	}
}

func TestToggleUnit(t *testing.T) {
	s := unitState(Absolute, Absolute)
	abs, rel := s.Corners[BottomRight].Absolute, s.Corners[BottomRight].Relative

	s.ToggleUnit(BottomRight, Horizontal)

	if got := s.ActiveUnit(BottomRight, Horizontal); got != Relative {
		t.Errorf("horizontal unit = %v, want %%", got)
	}
	if got := s.ActiveUnit(BottomRight, Vertical); got != Absolute {
		t.Errorf("unlinked vertical unit = %v, want px", got)
	}
	if s.Corners[BottomRight].Absolute != abs || s.Corners[BottomRight].Relative != rel {
		t.Error("ToggleUnit changed stored magnitudes")
	}
	if got := s.DisplayValue(BottomRight, Horizontal); got != rel[Horizontal] {
		t.Errorf("display after toggle = %d, want relative bucket %d", got, rel[Horizontal])
	}

	s.ToggleUnit(BottomRight, Horizontal)
	if got := s.DisplayValue(BottomRight, Horizontal); got != abs[Horizontal] {
		t.Errorf("display after toggling back = %d, want %d", got, abs[Horizontal])
	}
}

func TestToggleUnitLinked(t *testing.T) {
	s := unitState(Absolute, Absolute)
	s.ToggleLink(TopLeft)

	s.ToggleUnit(TopLeft, Vertical)

	if s.ActiveUnit(TopLeft, Horizontal) != Relative || s.ActiveUnit(TopLeft, Vertical) != Relative {
		t.Errorf("linked units = %v, want both %%", s.Corners[TopLeft].Units)
	}
}

func TestToggleLink(t *testing.T) {
	s := DefaultState()
	s.Corners[TopRight].Absolute = [2]int{120, 40}
	s.Corners[TopRight].Relative = [2]int{30, 12}
	s.Corners[TopRight].Units = [2]Unit{Absolute, Relative}

	s.ToggleLink(TopRight)

	cs := s.Corners[TopRight]
	if !cs.Linked {
		t.Fatal("corner not linked")
	}
	if cs.Absolute != [2]int{120, 120} {
		t.Errorf("Absolute = %v, want [120 120]", cs.Absolute)
	}
	if cs.Relative != [2]int{30, 30} {
		t.Errorf("Relative = %v, want [30 30]", cs.Relative)
	}
	if cs.Units[Vertical] != Absolute {
		t.Errorf("vertical unit = %v, want px", cs.Units[Vertical])
	}

	s.ToggleLink(TopRight)
	if s.Corners[TopRight].Linked {
		t.Error("corner still linked after second toggle")
	}
	if s.Corners[TopRight].Absolute != [2]int{120, 120} {
		t.Error("unlinking should not change magnitudes")
	}
	// The unit aligned by linking stays aligned; the earlier % vertical unit
	// is not restored.
	if got := s.Corners[TopRight].Units; got != [2]Unit{Absolute, Absolute} {
		t.Errorf("units after unlink = %v, want [px px]", got)
	}
}

func TestParseInput(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"0", 0},
		{"7", 7},
		{"+7", 7},
		{"-7", 0},
		{"007", 7},
		{"NaN", 0},
		{"1e3", 1},
		{" 15px", 15},
	}
	for _, tt := range tests {
		if got := ParseInput(tt.in); got != tt.want {
			t.Errorf("ParseInput(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}
