package sink

import (
	"encoding/json"

	"github.com/matzehuels/radii/pkg/geometry"
	"github.com/matzehuels/radii/pkg/shorthand"
)

// JSONOption configures JSON rendering via [RenderJSON].
type JSONOption func(*jsonRenderer)

type jsonRenderer struct {
	css       string
	longhands []shorthand.Declaration
}

// WithJSONCSS records the serialized border-radius value.
func WithJSONCSS(css string) JSONOption { return func(r *jsonRenderer) { r.css = css } }

// WithJSONLonghands records the per-corner declarations.
func WithJSONLonghands(decls []shorthand.Declaration) JSONOption {
	return func(r *jsonRenderer) { r.longhands = decls }
}

type jsonOutput struct {
	Width     float64           `json:"width"`
	Height    float64           `json:"height"`
	Scale     float64           `json:"scale"`
	CSS       string            `json:"css,omitempty"`
	Longhands map[string]string `json:"longhands,omitempty"`
	Corners   []jsonCorner      `json:"corners"`
}

type jsonCorner struct {
	Corner      string    `json:"corner"`
	H           string    `json:"h"`
	V           string    `json:"v"`
	RX          float64   `json:"rx"`
	RY          float64   `json:"ry"`
	EffectiveRX float64   `json:"effective_rx"`
	EffectiveRY float64   `json:"effective_ry"`
	Center      jsonPoint `json:"center"`
	ShowH       bool      `json:"show_h"`
	ShowV       bool      `json:"show_v"`
	ShowBoth    bool      `json:"show_both,omitempty"`
}

type jsonPoint struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// RenderJSON exports the projected geometry as a pretty-printed JSON
// document, for tools that draw their own preview.
func RenderJSON(p geometry.Projection, opts ...JSONOption) ([]byte, error) {
	r := jsonRenderer{}
	for _, opt := range opts {
		opt(&r)
	}

	out := jsonOutput{
		Width:   p.Width,
		Height:  p.Height,
		Scale:   p.Scale,
		CSS:     r.css,
		Corners: make([]jsonCorner, 0, len(p.Corners)),
	}
	if len(r.longhands) > 0 {
		out.Longhands = make(map[string]string, len(r.longhands))
		for _, d := range r.longhands {
			out.Longhands[d.Property] = d.Value
		}
	}
	for _, c := range p.Corners {
		out.Corners = append(out.Corners, jsonCorner{
			Corner:      c.Corner.Key(),
			H:           c.Radius.H.String(),
			V:           c.Radius.V.String(),
			RX:          c.RX,
			RY:          c.RY,
			EffectiveRX: c.EffectiveRX,
			EffectiveRY: c.EffectiveRY,
			Center:      jsonPoint{X: c.Center.X, Y: c.Center.Y},
			ShowH:       c.ShowH,
			ShowV:       c.ShowV,
			ShowBoth:    c.ShowBoth,
		})
	}
	return json.MarshalIndent(out, "", "  ")
}
