package shorthand

import (
	"errors"
	"strings"
	"testing"

	"github.com/matzehuels/radii/pkg/radius"
)

func px(n int) radius.Value  { return radius.Value{Magnitude: n, Unit: radius.Absolute} }
func pct(n int) radius.Value { return radius.Value{Magnitude: n, Unit: radius.Relative} }

func sym(v radius.Value) radius.CornerRadius { return radius.CornerRadius{H: v, V: v} }

func TestSerializeUniform(t *testing.T) {
	d := radius.Derived{sym(px(80)), sym(px(80)), sym(px(80)), sym(px(80))}
	if got := Serialize(d, radius.ModeAll, [4]bool{}); got != "80px" {
		t.Errorf("Serialize = %q, want %q", got, "80px")
	}
}

func TestSerializeModeFourSlash(t *testing.T) {
	d := radius.Derived{
		{H: px(10), V: px(20)},
		sym(px(30)),
		sym(pct(5)),
		sym(px(0)),
	}
	want := "10px 30px 5% 0px / 20px 30px 5% 0px"
	if got := Serialize(d, radius.ModeIndependent, [4]bool{}); got != want {
		t.Errorf("Serialize = %q, want %q", got, want)
	}
}

func TestSerializeByMode(t *testing.T) {
	d := radius.Derived{sym(px(1)), sym(px(2)), sym(px(3)), sym(px(4))}
	tests := []struct {
		mode radius.Mode
		want string
	}{
		{radius.ModeAll, "1px"},
		{radius.ModeDiagonal, "1px 2px"},
		{radius.ModeThree, "1px 2px 3px"},
		{radius.ModeIndependent, "1px 2px 3px 4px"},
	}
	for _, tt := range tests {
		if got := Serialize(d, tt.mode, [4]bool{}); got != tt.want {
			t.Errorf("mode %d: %q, want %q", tt.mode, got, tt.want)
		}
	}
}

func TestSerializeVerticalTrigger(t *testing.T) {
	asym := radius.CornerRadius{H: px(10), V: px(20)}
	mixed := radius.CornerRadius{H: px(10), V: pct(10)}

	tests := []struct {
		name      string
		d         radius.Derived
		mode      radius.Mode
		linked    [4]bool
		wantSlash bool
	}{
		{"all symmetric", radius.Derived{sym(px(1)), sym(px(2)), sym(px(3)), sym(px(4))}, radius.ModeIndependent, [4]bool{}, false},
		{"asymmetric visible", radius.Derived{asym, sym(px(2)), sym(px(3)), sym(px(4))}, radius.ModeAll, [4]bool{}, true},
		{"unit mismatch", radius.Derived{sym(px(1)), mixed, sym(px(3)), sym(px(4))}, radius.ModeDiagonal, [4]bool{}, true},
		{"off-mode corner ignored", radius.Derived{sym(px(1)), sym(px(2)), sym(px(3)), asym}, radius.ModeThree, [4]bool{}, false},
		{"off-mode mode 1", radius.Derived{sym(px(1)), asym, asym, asym}, radius.ModeAll, [4]bool{}, false},
		{"linked corner ignored", radius.Derived{asym, sym(px(2)), sym(px(3)), sym(px(4))}, radius.ModeIndependent, [4]bool{true}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Serialize(tt.d, tt.mode, tt.linked)
			if strings.Contains(got, "/") != tt.wantSlash {
				t.Errorf("Serialize = %q, want slash %v", got, tt.wantSlash)
			}
			if err := Validate(got); err != nil {
				t.Errorf("Validate(%q): %v", got, err)
			}
		})
	}
}

func TestSerializeSlashUsesModeTerms(t *testing.T) {
	d := radius.Derived{{H: pct(30), V: pct(40)}, sym(px(80)), sym(px(9)), sym(px(9))}
	want := "30% 80px / 40% 80px"
	if got := Serialize(d, radius.ModeDiagonal, [4]bool{}); got != want {
		t.Errorf("Serialize = %q, want %q", got, want)
	}
}

func TestFromState(t *testing.T) {
	s := radius.DefaultState()
	for _, c := range radius.Corners {
		s.Corners[c] = radius.CornerState{
			Absolute: [2]int{80, 80},
			Units:    [2]radius.Unit{radius.Absolute, radius.Absolute},
		}
	}
	s.Mode = radius.ModeAll
	if got := FromState(&s); got != "80px" {
		t.Errorf("FromState = %q, want 80px", got)
	}

	// Linked corners with stale vertical data still serialize compactly.
	s.Corners[radius.TopLeft].Absolute = [2]int{40, 200}
	s.Corners[radius.TopLeft].Linked = true
	if got := FromState(&s); got != "40px" {
		t.Errorf("FromState linked = %q, want 40px", got)
	}
}

func TestRule(t *testing.T) {
	tests := []struct {
		value string
		want  string
	}{
		{"80px", "border-radius: 80px;"},
		{"10px 20%", "border-radius: 10px 20%;"},
		{"1px 2px 3px", "border-radius:\n    1px 2px 3px;"},
		{"1px 2px 3px 4px", "border-radius:\n    1px 2px 3px 4px;"},
		{"1px / 2px", "border-radius:\n    1px /\n        2px;"},
	}
	for _, tt := range tests {
		if got := Rule(tt.value); got != tt.want {
			t.Errorf("Rule(%q) = %q, want %q", tt.value, got, tt.want)
		}
	}
}

func TestLonghands(t *testing.T) {
	d := radius.Derived{{H: px(10), V: pct(20)}, sym(px(30)), sym(pct(5)), sym(px(0))}
	got := Longhands(d)
	want := []string{
		"border-top-left-radius: 10px 20%;",
		"border-top-right-radius: 30px;",
		"border-bottom-right-radius: 5%;",
		"border-bottom-left-radius: 0px;",
	}
	if len(got) != len(want) {
		t.Fatalf("len = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i].String() != want[i] {
			t.Errorf("[%d] = %q, want %q", i, got[i].String(), want[i])
		}
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		value   string
		wantErr bool
	}{
		{"80px", false},
		{"0", false},
		{"10px 30px 5% 0px / 20px 30px 5% 0px", false},
		{"10px/20px", false},
		{"", true},
		{"10px 20px 30px 40px 50px", true},
		{"10px /", true},
		{"/ 10px", true},
		{"10px / 20px / 30px", true},
		{"10em", true},
		{"-5px", true},
		{"12", true},
		{"calc(10px)", true},
		{"auto", true},
	}
	for _, tt := range tests {
		err := Validate(tt.value)
		if (err != nil) != tt.wantErr {
			t.Errorf("Validate(%q) error = %v, wantErr %v", tt.value, err, tt.wantErr)
		}
		if err != nil && !errors.Is(err, ErrSyntax) {
			t.Errorf("Validate(%q) error %v does not wrap ErrSyntax", tt.value, err)
		}
	}
}
