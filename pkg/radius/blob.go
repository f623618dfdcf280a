package radius

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
)

// ErrInvalidBlob is wrapped by every Decode validation failure.
var ErrInvalidBlob = errors.New("invalid state blob")

// blob is the persisted wire shape. Corner maps are keyed by Corner.Key.
type blob struct {
	RadiiAbsolute map[string][2]int    `json:"radiiAbsolute"`
	RadiiRelative map[string][2]int    `json:"radiiRelative"`
	Units         map[string][2]string `json:"units"`
	Linked        map[string]bool      `json:"linked"`
	Mode          int                  `json:"mode"`
	Shape         string               `json:"shape"`
}

// rawBlob is the lenient load shape. radiiPx and radiiPct are the names
// older versions wrote.
type rawBlob struct {
	RadiiAbsolute map[string]json.RawMessage `json:"radiiAbsolute"`
	RadiiRelative map[string]json.RawMessage `json:"radiiRelative"`
	RadiiPx       map[string]json.RawMessage `json:"radiiPx"`
	RadiiPct      map[string]json.RawMessage `json:"radiiPct"`
	Units         map[string]json.RawMessage `json:"units"`
	Linked        map[string]json.RawMessage `json:"linked"`
	Mode          json.RawMessage            `json:"mode"`
	Shape         json.RawMessage            `json:"shape"`
}

// Encode serializes s into the persisted blob format.
func Encode(s State) ([]byte, error) {
	out := blob{
		RadiiAbsolute: make(map[string][2]int, 4),
		RadiiRelative: make(map[string][2]int, 4),
		Units:         make(map[string][2]string, 4),
		Linked:        make(map[string]bool, 4),
		Mode:          int(s.Mode),
		Shape:         s.Shape.String(),
	}
	for _, c := range Corners {
		cs := s.Corners[c]
		k := c.Key()
		out.RadiiAbsolute[k] = cs.Absolute
		out.RadiiRelative[k] = cs.Relative
		out.Units[k] = [2]string{cs.Units[Horizontal].Suffix(), cs.Units[Vertical].Suffix()}
		out.Linked[k] = cs.Linked
	}
	return json.Marshal(out)
}

// Decode parses a persisted blob.
//
// The blob is rejected unless every corner is present as an array in both
// radii maps and in units. Missing linked flags, mode or shape fall back to
// their defaults individually. Callers that only want a usable state should
// use Load.
func Decode(data []byte) (State, error) {
	var raw rawBlob
	if err := json.Unmarshal(data, &raw); err != nil {
		return State{}, fmt.Errorf("%w: %v", ErrInvalidBlob, err)
	}

	abs := raw.RadiiAbsolute
	if abs == nil {
		abs = raw.RadiiPx
	}
	rel := raw.RadiiRelative
	if rel == nil {
		rel = raw.RadiiPct
	}

	var s State
	for _, c := range Corners {
		k := c.Key()
		absArr, ok := jsonArray(abs[k])
		if !ok {
			return State{}, fmt.Errorf("%w: radiiAbsolute.%s missing", ErrInvalidBlob, k)
		}
		relArr, ok := jsonArray(rel[k])
		if !ok {
			return State{}, fmt.Errorf("%w: radiiRelative.%s missing", ErrInvalidBlob, k)
		}
		unitArr, ok := jsonArray(raw.Units[k])
		if !ok {
			return State{}, fmt.Errorf("%w: units.%s missing", ErrInvalidBlob, k)
		}

		var cs CornerState
		for i := 0; i < 2; i++ {
			cs.Absolute[i] = jsonMagnitude(absArr, i)
			cs.Relative[i] = jsonMagnitude(relArr, i)
			cs.Units[i] = jsonUnit(unitArr, i)
		}
		var linked bool
		if v, ok := raw.Linked[k]; ok {
			_ = json.Unmarshal(v, &linked)
		}
		cs.Linked = linked
		s.Corners[c] = cs
	}

	s.Mode = ModeIndependent
	var mode float64
	if len(raw.Mode) > 0 && json.Unmarshal(raw.Mode, &mode) == nil && mode == math.Trunc(mode) &&
		mode >= float64(ModeAll) && mode <= float64(ModeIndependent) {
		s.Mode = Mode(mode)
	}

	s.Shape = Rectangle
	var shape string
	if len(raw.Shape) > 0 && json.Unmarshal(raw.Shape, &shape) == nil && shape == Square.String() {
		s.Shape = Square
	}
	return s, nil
}

// Load decodes data and falls back to DefaultState on any failure, including
// empty input.
func Load(data []byte) State {
	if len(data) == 0 {
		return DefaultState()
	}
	s, err := Decode(data)
	if err != nil {
		return DefaultState()
	}
	return s
}

func jsonArray(msg json.RawMessage) ([]json.RawMessage, bool) {
	if len(msg) == 0 {
		return nil, false
	}
	var arr []json.RawMessage
	if err := json.Unmarshal(msg, &arr); err != nil || arr == nil {
		return nil, false
	}
	return arr, true
}

// jsonMagnitude reads element i as a non-negative integer. Missing or
// non-numeric elements read as 0.
func jsonMagnitude(arr []json.RawMessage, i int) int {
	if i >= len(arr) {
		return 0
	}
	var f float64
	if err := json.Unmarshal(arr[i], &f); err != nil || f <= 0 || math.IsNaN(f) {
		return 0
	}
	if f >= math.MaxInt32 {
		return math.MaxInt32
	}
	return int(f)
}

func jsonUnit(arr []json.RawMessage, i int) Unit {
	if i >= len(arr) {
		return Absolute
	}
	var s string
	if err := json.Unmarshal(arr[i], &s); err != nil {
		return Absolute
	}
	return ParseUnit(s)
}
