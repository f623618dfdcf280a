package radius

import (
	"strings"

	"github.com/matzehuels/radii/pkg/errors"
)

// Preset is a named override of mode, radii and units. Corners missing from
// a map fall back to the defaults when the preset is applied.
type Preset struct {
	Name     string
	Mode     Mode
	Absolute map[Corner][2]int
	Relative map[Corner][2]int
	Units    map[Corner][2]Unit
}

// Slug returns a lower-case, dash-separated identifier for the preset name.
func (p Preset) Slug() string { return slugify(p.Name) }

func uniform[T any](v T) map[Corner]T {
	return map[Corner]T{TopLeft: v, TopRight: v, BottomRight: v, BottomLeft: v}
}

var (
	allPx  = [2]Unit{Absolute, Absolute}
	allPct = [2]Unit{Relative, Relative}
)

// Presets is the built-in catalog, in display order.
var Presets = []Preset{
	{
		Name:     "Circle / Ellipse",
		Mode:     ModeAll,
		Absolute: uniform([2]int{200, 150}),
		Relative: uniform([2]int{50, 50}),
		Units:    uniform(allPct),
	},
	{
		Name:     "Pill",
		Mode:     ModeAll,
		Absolute: uniform([2]int{999, 999}),
		Relative: uniform([2]int{100, 100}),
		Units:    uniform(allPx),
	},
	{
		Name: "Blob",
		Mode: ModeIndependent,
		Absolute: map[Corner][2]int{
			TopLeft: {120, 120}, TopRight: {280, 120}, BottomRight: {280, 210}, BottomLeft: {120, 210},
		},
		Relative: map[Corner][2]int{
			TopLeft: {30, 30}, TopRight: {70, 30}, BottomRight: {70, 70}, BottomLeft: {30, 70},
		},
		Units: uniform(allPct),
	},
	{
		Name: "Leaf",
		Mode: ModeThree,
		Absolute: map[Corner][2]int{
			TopLeft: {0, 0}, TopRight: {200, 150}, BottomRight: {200, 150}, BottomLeft: {200, 150},
		},
		Relative: map[Corner][2]int{
			TopLeft: {0, 0}, TopRight: {50, 50}, BottomRight: {50, 50}, BottomLeft: {50, 50},
		},
		Units: uniform(allPct),
	},
	{
		Name:     "Squircle",
		Mode:     ModeAll,
		Absolute: uniform([2]int{64, 64}),
		Relative: uniform([2]int{16, 21}),
		Units:    uniform(allPx),
	},
	{
		Name:     "Rounded",
		Mode:     ModeAll,
		Absolute: uniform([2]int{24, 24}),
		Relative: uniform([2]int{6, 8}),
		Units:    uniform(allPx),
	},
	{
		Name:     "Soft",
		Mode:     ModeAll,
		Absolute: uniform([2]int{8, 8}),
		Relative: uniform([2]int{2, 3}),
		Units:    uniform(allPx),
	},
}

// FindPreset looks a preset up by name or slug, ignoring case.
func FindPreset(name string) (Preset, error) {
	want := slugify(name)
	for _, p := range Presets {
		if strings.EqualFold(p.Name, name) || p.Slug() == want {
			return p, nil
		}
	}
	return Preset{}, errors.New(errors.ErrCodePresetNotFound, "unknown preset %q", name)
}

// slugify turns "Circle / Ellipse" into "circle-ellipse".
func slugify(s string) string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(s) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			if dash && b.Len() > 0 {
				b.WriteByte('-')
			}
			b.WriteRune(r)
			dash = false
			continue
		}
		dash = true
	}
	return b.String()
}
