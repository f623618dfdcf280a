package radius

import "testing"

func TestFindPreset(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Pill", "Pill"},
		{"pill", "Pill"},
		{"circle-ellipse", "Circle / Ellipse"},
		{"Circle / Ellipse", "Circle / Ellipse"},
		{"SQUIRCLE", "Squircle"},
	}
	for _, tt := range tests {
		p, err := FindPreset(tt.in)
		if err != nil {
			t.Errorf("FindPreset(%q): %v", tt.in, err)
			continue
		}
		if p.Name != tt.want {
			t.Errorf("FindPreset(%q) = %q, want %q", tt.in, p.Name, tt.want)
		}
	}

	if _, err := FindPreset("hexagon"); err == nil {
		t.Error("FindPreset(hexagon) should fail")
	}
}

func TestApplyPresetKeepsLinkAndShape(t *testing.T) {
	s := DefaultState()
	s.ToggleLink(TopRight)
	s.Shape = Square

	p, err := FindPreset("leaf")
	if err != nil {
		t.Fatal(err)
	}
	s.ApplyPreset(p)

	if !s.Corners[TopRight].Linked {
		t.Error("preset cleared linked flag")
	}
	if s.Shape != Square {
		t.Error("preset changed shape")
	}
	if s.Mode != ModeThree {
		t.Errorf("Mode = %d, want 3", s.Mode)
	}
	if s.Corners[TopRight].Relative != [2]int{50, 50} {
		t.Errorf("tr relative = %v, want [50 50]", s.Corners[TopRight].Relative)
	}
	if s.Corners[TopLeft].Units != [2]Unit{Relative, Relative} {
		t.Errorf("tl units = %v", s.Corners[TopLeft].Units)
	}
}

func TestApplyPresetMergesOverDefaults(t *testing.T) {
	s := DefaultState()
	s.ApplyPreset(Preset{Name: "partial", Mode: ModeAll, Absolute: map[Corner][2]int{TopLeft: {5, 6}}})

	if s.Corners[TopLeft].Absolute != [2]int{5, 6} {
		t.Errorf("tl absolute = %v", s.Corners[TopLeft].Absolute)
	}
	if s.Corners[BottomRight].Absolute != defaultAbsolute[BottomRight] {
		t.Errorf("br absolute = %v, want default %v", s.Corners[BottomRight].Absolute, defaultAbsolute[BottomRight])
	}
	if s.Corners[TopLeft].Units != defaultUnits[TopLeft] {
		t.Errorf("tl units = %v, want default", s.Corners[TopLeft].Units)
	}
}

func TestPresetSlugsUnique(t *testing.T) {
	seen := make(map[string]bool)
	for _, p := range Presets {
		if seen[p.Slug()] {
			t.Errorf("duplicate slug %q", p.Slug())
		}
		seen[p.Slug()] = true
		if !p.Mode.Valid() {
			t.Errorf("%s: invalid mode %d", p.Name, p.Mode)
		}
	}
}
