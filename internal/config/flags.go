package config

import (
	"github.com/spf13/pflag"

	"github.com/jmylchreest/ramptone/internal/colour"
)

// Flag names shared by every command that generates a ramp.
const (
	FlagBase     = "base"
	FlagSteps    = "steps"
	FlagVibrance = "vibrance"
	FlagTorsion  = "torsion"
	FlagContrast = "contrast"
)

// RegisterFlags adds the generation parameter flags to fs. Their defaults are
// for help text only; ApplyFlags copies a value only when the user set it.
func RegisterFlags(fs *pflag.FlagSet) {
	def := colour.DefaultRampConfig()
	fs.StringP(FlagBase, "b", def.BaseColor, "base colour (#RRGGBB)")
	fs.IntP(FlagSteps, "s", def.Steps, "number of ramp steps (4-20)")
	fs.Float64(FlagVibrance, def.Vibrance, "chroma strength (0-1)")
	fs.Float64(FlagTorsion, def.HueTorsion, "hue torsion across the ramp (0-1, 0.5 is none)")
	fs.Float64(FlagContrast, def.Contrast, "lightness spacing (0 linear, 1 strongly shaped)")
}

// ApplyFlags overrides generation parameters with flags changed on fs.
func (c *Config) ApplyFlags(fs *pflag.FlagSet) error {
	if fs.Changed(FlagBase) {
		v, err := fs.GetString(FlagBase)
		if err != nil {
			return err
		}
		c.Ramp.BaseColor = v
		if hex, ok := colour.NormaliseHex(v); ok {
			c.Ramp.BaseColor = hex
		}
	}
	if fs.Changed(FlagSteps) {
		v, err := fs.GetInt(FlagSteps)
		if err != nil {
			return err
		}
		c.Ramp.Steps = v
	}

	for _, f := range []struct {
		name string
		dst  *float64
	}{
		{FlagVibrance, &c.Ramp.Vibrance},
		{FlagTorsion, &c.Ramp.HueTorsion},
		{FlagContrast, &c.Ramp.Contrast},
	} {
		if !fs.Changed(f.name) {
			continue
		}
		v, err := fs.GetFloat64(f.name)
		if err != nil {
			return err
		}
		*f.dst = v
	}

	return c.Validate()
}
