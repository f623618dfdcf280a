package sink

import (
	"image/color"
	"strconv"
	"strings"
)

// hexColor parses #rgb or #rrggbb. Malformed input yields opaque black.
func hexColor(s string) color.NRGBA {
	return withAlpha(s, 0xff)
}

func withAlpha(s string, a uint8) color.NRGBA {
	s = strings.TrimPrefix(s, "#")
	if len(s) == 3 {
		s = string([]byte{s[0], s[0], s[1], s[1], s[2], s[2]})
	}
	c := color.NRGBA{A: a}
	if len(s) != 6 {
		return c
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return c
	}
	c.R = uint8(v >> 16)
	c.G = uint8(v >> 8)
	c.B = uint8(v)
	return c
}
