package colour

import (
	"math"
)

// WCAG contrast thresholds.
const (
	ContrastAAA      = 7.0 // Normal text, enhanced
	ContrastAA       = 4.5 // Normal text
	ContrastAALarge  = 3.0 // Large text, borders and UI components
	ContrastRatioMax = 21.0
)

// Luminance calculates the relative luminance of a hex colour according to WCAG 2.0.
// Returns a value between 0 (darkest) and 1 (lightest). Malformed input is
// measured as the neutral default colour.
// https://www.w3.org/TR/WCAG20/#relativeluminancedef.
func Luminance(hex string) float64 {
	c, ok := parseHex(hex)
	if !ok {
		c, _ = parseHex(OKLCHToHex(Neutral))
	}
	r, g, b := c.RGB255()

	// Apply gamma correction.
	rf := gammaCorrect(float64(r) / 255.0)
	gf := gammaCorrect(float64(g) / 255.0)
	bf := gammaCorrect(float64(b) / 255.0)

	// Calculate luminance using WCAG formula.
	return 0.2126*rf + 0.7152*gf + 0.0722*bf
}

// gammaCorrect applies gamma correction to a colour component.
func gammaCorrect(v float64) float64 {
	if v <= 0.03928 {
		return v / 12.92
	}
	return math.Pow((v+0.055)/1.055, 2.4)
}

// ContrastRatio calculates the contrast ratio between two colours according to WCAG 2.0.
// Returns a value between 1 and 21, where 21 is maximum contrast (black vs white).
// https://www.w3.org/TR/WCAG20/#contrast-ratiodef.
func ContrastRatio(a, b string) float64 {
	l1 := Luminance(a)
	l2 := Luminance(b)

	// Ensure l1 is the lighter colour.
	if l1 < l2 {
		l1, l2 = l2, l1
	}

	return (l1 + 0.05) / (l2 + 0.05)
}

// Contrast pairs a colour with its contrast ratio against some background.
type Contrast struct {
	Color string  `json:"color"`
	Ratio float64 `json:"ratio"`
}

// BestContrast returns whichever of pure black or pure white reads better on bg.
// Ties go to black.
func BestContrast(bg string) Contrast {
	black := ContrastRatio(Black, bg)
	white := ContrastRatio(White, bg)
	if white > black {
		return Contrast{Color: White, Ratio: white}
	}
	return Contrast{Color: Black, Ratio: black}
}

// Grade returns the WCAG conformance level met by a contrast ratio.
func Grade(ratio float64) string {
	switch {
	case ratio >= ContrastAAA:
		return "AAA"
	case ratio >= ContrastAA:
		return "AA"
	case ratio >= ContrastAALarge:
		return "AA Large"
	default:
		return "Fail"
	}
}

// HueDistance calculates the angular distance between two hues on the colour wheel.
// Returns a value between 0 and 180 degrees (shortest path around the wheel).
func HueDistance(h1, h2 float64) float64 {
	diff := math.Abs(NormaliseHue(h1) - NormaliseHue(h2))
	if diff > 180 {
		diff = 360 - diff // Handle wraparound
	}
	return diff
}
