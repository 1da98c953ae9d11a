package colour

import (
	"fmt"
	"math"
)

// Ramp generation constants.
const (
	MinSteps = 4
	MaxSteps = 20

	// Lightness range covered by a ramp.
	MinRampLightness = 0.15
	MaxRampLightness = 0.95

	// lightnessExponent is the power-law exponent at neutral contrast. Values
	// below 1 spend more steps at the light end, where lightness differences
	// are easier to tell apart.
	lightnessExponent = 0.7

	// contrastSpread is how far the contrast parameter moves the exponent away
	// from lightnessExponent: contrast 0 gives a linear ramp, 1 gives 0.4.
	contrastSpread = 0.6

	minChromaMultiplier = 0.2
	maxChromaMultiplier = 2.0

	// maxTorsionDegrees is the hue bend applied at full torsion strength.
	maxTorsionDegrees = 12.0

	darkWindowCentre  = 0.2
	lightWindowCentre = 0.8
)

// RampConfig holds the parameters a ramp is generated from.
type RampConfig struct {
	BaseColor  string  `json:"base_color" yaml:"base_color"`
	Steps      int     `json:"steps" yaml:"steps"`
	Vibrance   float64 `json:"vibrance" yaml:"vibrance"`
	HueTorsion float64 `json:"hue_torsion" yaml:"hue_torsion"`
	Contrast   float64 `json:"contrast" yaml:"contrast"`
}

// DefaultRampConfig returns the default ramp configuration.
func DefaultRampConfig() RampConfig {
	return RampConfig{
		BaseColor:  "#6366F1",
		Steps:      12,
		Vibrance:   0.5,
		HueTorsion: 0.5,
		Contrast:   0.5,
	}
}

// Validate validates the ramp configuration.
func (c RampConfig) Validate() error {
	if !ValidHex(c.BaseColor) {
		return fmt.Errorf("invalid base colour: %q (expected #RRGGBB)", c.BaseColor)
	}
	if c.Steps < MinSteps || c.Steps > MaxSteps {
		return fmt.Errorf("steps must be between %d and %d, got %d", MinSteps, MaxSteps, c.Steps)
	}
	for _, p := range []struct {
		name  string
		value float64
	}{
		{"vibrance", c.Vibrance},
		{"hue torsion", c.HueTorsion},
		{"contrast", c.Contrast},
	} {
		if math.IsNaN(p.value) || p.value < 0 || p.value > 1 {
			return fmt.Errorf("%s must be between 0 and 1, got %v", p.name, p.value)
		}
	}
	return nil
}

// GenerateRamp builds a ramp at neutral contrast.
func GenerateRamp(base string, steps int, vibrance, hueTorsion float64) Ramp {
	return Generate(RampConfig{
		BaseColor:  base,
		Steps:      steps,
		Vibrance:   vibrance,
		HueTorsion: hueTorsion,
		Contrast:   0.5,
	})
}

// Generate builds a dark-to-light ramp from the configuration. It is a pure
// function of cfg; callers are expected to have validated it, but degenerate
// step counts still produce output rather than dividing by zero.
func Generate(cfg RampConfig) Ramp {
	if cfg.Steps <= 0 {
		return Ramp{}
	}

	base := HexToOKLCH(cfg.BaseColor)
	maxChroma := base.C * (minChromaMultiplier + (maxChromaMultiplier-minChromaMultiplier)*clamp(cfg.Vibrance, 0, 1))
	torsion := (clamp(cfg.HueTorsion, 0, 1) - 0.5) * 2
	exponent := lightnessExponent + (0.5-clamp(cfg.Contrast, 0, 1))*contrastSpread

	steps := cfg.Steps
	sigma := (float64(steps) / 2) / 3
	darkCentre := int(math.Round(darkWindowCentre * float64(steps-1)))
	lightCentre := int(math.Round(lightWindowCentre * float64(steps-1)))

	ramp := make(Ramp, steps)
	for i := 0; i < steps; i++ {
		t := 0.0
		if steps > 1 {
			t = float64(i) / float64(steps-1)
		}

		l := MinRampLightness + (MaxRampLightness-MinRampLightness)*math.Pow(t, exponent)

		chromaFactor := clamp(1-math.Abs(0.5-l)*1.5, 0, 1)
		c := clamp(maxChroma*chromaFactor, 0, MaxChroma)

		dark := gaussian(i-darkCentre, sigma)
		light := gaussian(i-lightCentre, sigma)
		h := NormaliseHue(base.H + (dark-light)*torsion*maxTorsionDegrees)

		ramp[i] = NewStop(OKLCH{L: l, C: c, H: h})
	}

	return ramp
}

// gaussian is an unnormalised bell weight: 1 at distance 0.
func gaussian(distance int, sigma float64) float64 {
	d := float64(distance)
	return math.Exp(-(d * d) / (2 * sigma * sigma))
}
