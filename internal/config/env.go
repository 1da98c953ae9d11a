package config

import (
	"fmt"
	"strconv"
	"strings"
)

// Environment variables that override document values.
const (
	EnvBaseColor  = "RAMPTONE_BASE_COLOR"
	EnvSteps      = "RAMPTONE_STEPS"
	EnvVibrance   = "RAMPTONE_VIBRANCE"
	EnvHueTorsion = "RAMPTONE_HUE_TORSION"
	EnvContrast   = "RAMPTONE_CONTRAST"
	EnvExporters  = "RAMPTONE_EXPORTERS"
	EnvOutputDir  = "RAMPTONE_OUTPUT_DIR"
)

// LookupFunc matches os.LookupEnv.
type LookupFunc func(key string) (string, bool)

// ApplyEnv overrides values from environment variables that are set and non-empty.
func (c *Config) ApplyEnv(lookup LookupFunc) error {
	get := func(key string) (string, bool) {
		v, ok := lookup(key)
		v = strings.TrimSpace(v)
		return v, ok && v != ""
	}

	if v, ok := get(EnvBaseColor); ok {
		c.Ramp.BaseColor = v
	}
	if v, ok := get(EnvSteps); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvSteps, err)
		}
		c.Ramp.Steps = n
	}

	for _, f := range []struct {
		key string
		dst *float64
	}{
		{EnvVibrance, &c.Ramp.Vibrance},
		{EnvHueTorsion, &c.Ramp.HueTorsion},
		{EnvContrast, &c.Ramp.Contrast},
	} {
		v, ok := get(f.key)
		if !ok {
			continue
		}
		x, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("%s: %w", f.key, err)
		}
		*f.dst = x
	}

	if v, ok := get(EnvExporters); ok {
		c.Output.Exporters = splitList(v)
	}
	if v, ok := get(EnvOutputDir); ok {
		c.Output.Dir = v
	}

	return nil
}

// splitList splits a comma-separated list, dropping blanks.
func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
