// Package colour provides the perceptual colour maths behind ramp generation.
package colour

import (
	"fmt"
	"math"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// Perceptual space limits.
const (
	// MaxChroma is the practical OKLCH chroma ceiling for in-gamut sRGB across most hues.
	MaxChroma = 0.4

	// Black and White are the sentinel text colours used when no ramp entry qualifies.
	Black = "#000000"
	White = "#FFFFFF"
)

// OKLCH is a colour in the cylindrical OKLab space.
// L is lightness [0, 1], C is chroma [0, ~0.4], H is hue in degrees [0, 360).
type OKLCH struct {
	L float64 `json:"l" yaml:"l"`
	C float64 `json:"c" yaml:"c"`
	H float64 `json:"h" yaml:"h"`
}

// Neutral is returned for input that cannot be parsed as a colour.
var Neutral = OKLCH{L: 0.5, C: 0, H: 0}

// String returns the colour in CSS oklch() notation.
func (o OKLCH) String() string {
	return fmt.Sprintf("oklch(%.2f%% %.4f %.2f)", o.L*100, o.C, o.H)
}

// HexToOKLCH converts a 6-digit hex colour ("#RRGGBB" or "RRGGBB") to OKLCH.
// Malformed input is logged and yields Neutral; the caller keeps whatever it
// was displaying before.
func HexToOKLCH(hex string) OKLCH {
	c, ok := parseHex(hex)
	if !ok {
		return Neutral
	}
	l, ch, h := c.OkLch()
	return OKLCH{L: l, C: ch, H: NormaliseHue(h)}
}

// OKLCHToHex converts an OKLCH colour to an upper-case "#RRGGBB" string.
// Lightness and chroma are clamped before conversion and out-of-gamut results are
// clamped to the nearest sRGB value. Never fails: a conversion that still produces
// garbage is logged and mapped to black.
func OKLCHToHex(o OKLCH) string {
	l := clamp(o.L, 0, 1)
	c := clamp(o.C, 0, MaxChroma)
	h := NormaliseHue(o.H)
	if isBad(l) || isBad(c) || isBad(h) {
		logger.Warn("non-finite oklch component", "l", o.L, "c", o.C, "h", o.H)
		return Black
	}

	col := colorful.OkLch(l, c, h).Clamped()
	if isBad(col.R) || isBad(col.G) || isBad(col.B) {
		logger.Warn("oklch conversion produced an invalid colour", "oklch", o.String())
		return Black
	}
	return strings.ToUpper(col.Hex())
}

// NormaliseHue wraps a hue angle into [0, 360).
func NormaliseHue(h float64) float64 {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	// -tiny + 360 rounds to exactly 360 in float64.
	if h >= 360 {
		h = 0
	}
	return h
}

// ValidHex reports whether s is a 6-digit hex colour, with or without the leading '#'.
func ValidHex(s string) bool {
	s = strings.TrimPrefix(s, "#")
	if len(s) != 6 {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if (c < '0' || c > '9') && (c < 'a' || c > 'f') && (c < 'A' || c > 'F') {
			return false
		}
	}
	return true
}

// NormaliseHex returns s as upper-case "#RRGGBB", or false if s is malformed.
func NormaliseHex(s string) (string, bool) {
	if !ValidHex(s) {
		return "", false
	}
	return "#" + strings.ToUpper(strings.TrimPrefix(s, "#")), true
}

// parseHex parses a 6-digit hex colour, logging malformed input.
func parseHex(hex string) (colorful.Color, bool) {
	norm, ok := NormaliseHex(strings.TrimSpace(hex))
	if !ok {
		logger.Warn("malformed hex colour, using neutral default", "input", hex)
		return colorful.Color{}, false
	}
	c, err := colorful.Hex(norm)
	if err != nil {
		logger.Warn("failed to parse hex colour", "input", hex, "error", err)
		return colorful.Color{}, false
	}
	return c, true
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

func isBad(v float64) bool {
	return math.IsNaN(v) || math.IsInf(v, 0)
}
