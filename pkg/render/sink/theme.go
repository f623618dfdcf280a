package sink

import (
	"fmt"
	"strings"
)

// Theme holds the preview colors as #rrggbb hex strings. An empty
// Background leaves the canvas transparent.
type Theme struct {
	Background string
	FillStart  string
	FillEnd    string
	Overlay    string
	Label      string
}

// DefaultTheme is the violet gradient used by the editor preview.
var DefaultTheme = Theme{
	FillStart: "#8b5cf6",
	FillEnd:   "#ec4899",
	Overlay:   "#0f172a",
	Label:     "#0f172a",
}

// DarkTheme suits terminals and dark pages.
var DarkTheme = Theme{
	Background: "#0f172a",
	FillStart:  "#6366f1",
	FillEnd:    "#22d3ee",
	Overlay:    "#f8fafc",
	Label:      "#f8fafc",
}

// ThemeByName returns "light" (DefaultTheme) or "dark".
func ThemeByName(name string) (Theme, error) {
	switch strings.ToLower(name) {
	case "", "light", "default":
		return DefaultTheme, nil
	case "dark":
		return DarkTheme, nil
	}
	return Theme{}, fmt.Errorf("unknown theme %q (want light or dark)", name)
}

// padding is the margin around the box that leaves room for labels.
const padding = 48.0
