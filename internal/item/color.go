package item

import (
	"fmt"
	"image/color"
	"strings"
)

// Colors are persisted as #rrggbb or #rrggbbaa strings so records stay
// readable and portable.

// FormatColor renders c as a #rrggbbaa hex string.
func FormatColor(c color.Color) string {
	r, g, b, a := c.RGBA()
	return fmt.Sprintf("#%02x%02x%02x%02x", uint8(r>>8), uint8(g>>8), uint8(b>>8), uint8(a>>8))
}

// ParseColor reads a hex color string. Malformed input falls back to
// opaque black rather than erroring; a bad color is not worth losing a
// drawing over.
func ParseColor(s string) color.Color {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	var r, g, b, a uint8 = 0, 0, 0, 0xff
	switch len(s) {
	case 8:
		_, err := fmt.Sscanf(s, "%02x%02x%02x%02x", &r, &g, &b, &a)
		if err != nil {
			return color.NRGBA{A: 0xff}
		}
	case 6:
		_, err := fmt.Sscanf(s, "%02x%02x%02x", &r, &g, &b)
		if err != nil {
			return color.NRGBA{A: 0xff}
		}
	default:
		return color.NRGBA{A: 0xff}
	}
	return color.NRGBA{R: r, G: g, B: b, A: a}
}
