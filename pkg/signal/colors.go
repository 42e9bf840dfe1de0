package signal

import (
	"fmt"
	"image/color"
	"math"
	"strconv"
	"strings"
)

// Palette used by the resolver.
var (
	Red       = color.NRGBA{R: 255, G: 0, B: 0, A: 255}
	Black     = color.NRGBA{R: 0, G: 0, B: 0, A: 255}
	Green     = color.NRGBA{R: 0, G: 255, B: 0, A: 255}
	Blue      = color.NRGBA{R: 0, G: 0, B: 255, A: 255}
	Magenta   = color.NRGBA{R: 255, G: 0, B: 255, A: 255}
	DarkGreen = color.NRGBA{R: 0, G: 128, B: 0, A: 255}

	// NotFound is returned by color lookups for handles that resolve to no net.
	NotFound = color.NRGBA{R: 255, G: 105, B: 180, A: 255}
)

// ValidColor reports whether c holds a color. The zero value means "no color".
func ValidColor(c color.NRGBA) bool {
	return c.A != 0
}

// HexColor formats c as #rrggbb. Invalid colors format as #000000.
func HexColor(c color.NRGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// ParseHexColor parses #rrggbb (case-insensitive). Anything else yields the
// invalid zero color and false.
func ParseHexColor(s string) (color.NRGBA, bool) {
	s = strings.TrimSpace(s)
	if len(s) != 7 || s[0] != '#' {
		return color.NRGBA{}, false
	}
	v, err := strconv.ParseUint(s[1:], 16, 32)
	if err != nil {
		return color.NRGBA{}, false
	}
	return color.NRGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 255}, true
}

// HSL returns hue in degrees (-1 for achromatic colors), saturation and
// lightness on a 0-255 scale.
func HSL(c color.NRGBA) (h, s, l int) {
	r := float64(c.R) / 255
	g := float64(c.G) / 255
	b := float64(c.B) / 255

	maxC := math.Max(r, math.Max(g, b))
	minC := math.Min(r, math.Min(g, b))
	diff := maxC - minC
	light := (maxC + minC) / 2

	if diff == 0 {
		return -1, 0, int(math.Round(light * 255))
	}

	var sat float64
	if light < 0.5 {
		sat = diff / (maxC + minC)
	} else {
		sat = diff / (2 - maxC - minC)
	}

	var hue float64
	switch maxC {
	case r:
		hue = 60 * math.Mod((g-b)/diff, 6)
	case g:
		hue = 60 * ((b-r)/diff + 2)
	default:
		hue = 60 * ((r-g)/diff + 4)
	}
	if hue < 0 {
		hue += 360
	}

	return int(math.Round(hue)) % 360, int(math.Round(sat * 255)), int(math.Round(light * 255))
}
