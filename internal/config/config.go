// Package config loads, validates and saves ramp documents.
//
// A document carries the generation parameters, any curve edits made on top
// of the generated ramp, and export settings. Values are layered as defaults,
// then the document, then RAMPTONE_* environment variables, then command-line
// flags the user actually set.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/jmylchreest/ramptone/internal/colour"
	"github.com/jmylchreest/ramptone/internal/curve"
)

// DefaultFileMode is used when saving documents.
const DefaultFileMode = 0o644

// Config is a ramp document.
type Config struct {
	Ramp   colour.RampConfig `yaml:"ramp" json:"ramp"`
	Curves curve.Channels    `yaml:"curves,omitempty" json:"curves,omitempty"`
	Output Output            `yaml:"output" json:"output"`
}

// Output holds export settings.
type Output struct {
	Exporters []string `yaml:"exporters" json:"exporters"`
	Dir       string   `yaml:"dir" json:"dir"`
}

// Default returns a document with default generation parameters and no curve edits.
func Default() *Config {
	return &Config{
		Ramp: colour.DefaultRampConfig(),
		Output: Output{
			Exporters: []string{"css", "json"},
			Dir:       ".",
		},
	}
}

// Load reads a document from path, layered over the defaults and followed by
// environment overrides. An empty path yields the defaults with environment
// overrides applied.
func Load(path string) (*Config, error) {
	config := Default()

	if path != "" {
		path = expandPath(path)

		data, err := os.ReadFile(path) // #nosec G304 - User-specified config file, intended to be read
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := decode(path, data, config); err != nil {
			return nil, err
		}
	}

	if err := config.ApplyEnv(os.LookupEnv); err != nil {
		return nil, err
	}

	applyDefaults(config)

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return config, nil
}

func decode(path string, data []byte, config *Config) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, config); err != nil {
			return fmt.Errorf("failed to parse YAML config: %w", err)
		}
	case ".json":
		if err := json.Unmarshal(data, config); err != nil {
			return fmt.Errorf("failed to parse JSON config: %w", err)
		}
	default:
		// Try YAML first, then JSON.
		if err := yaml.Unmarshal(data, config); err != nil {
			if jsonErr := json.Unmarshal(data, config); jsonErr != nil {
				return fmt.Errorf("failed to parse config as YAML or JSON: %w", err)
			}
		}
	}
	return nil
}

// applyDefaults fills settings a document may legitimately leave blank.
func applyDefaults(config *Config) {
	if config.Output.Dir == "" {
		config.Output.Dir = "."
	}
	config.Output.Dir = expandPath(config.Output.Dir)

	if hex, ok := colour.NormaliseHex(config.Ramp.BaseColor); ok {
		config.Ramp.BaseColor = hex
	}
}

// Validate checks the generation parameters and curve points.
func (c *Config) Validate() error {
	if err := c.Ramp.Validate(); err != nil {
		return err
	}

	for _, ch := range curve.AllChannels() {
		lo, hi := ch.Domain()
		seen := make(map[int]bool)
		for _, p := range c.Curves.Get(ch) {
			if p.Step < 0 {
				return fmt.Errorf("%s curve: negative step %d", ch, p.Step)
			}
			if seen[p.Step] {
				return fmt.Errorf("%s curve: duplicate step %d", ch, p.Step)
			}
			seen[p.Step] = true
			if p.Value < lo || p.Value > hi {
				return fmt.Errorf("%s curve: step %d value %v outside [%v, %v]", ch, p.Step, p.Value, lo, hi)
			}
		}
	}

	for i, name := range c.Output.Exporters {
		if strings.TrimSpace(name) == "" {
			return fmt.Errorf("exporter %d: name is required", i)
		}
	}

	return nil
}

// Save writes the document to path, as JSON for a .json extension and YAML
// otherwise. Parent directories are created as needed.
func (c *Config) Save(path string) error {
	path = expandPath(path)

	var (
		data []byte
		err  error
	)
	if strings.ToLower(filepath.Ext(path)) == ".json" {
		data, err = json.MarshalIndent(c, "", "  ")
	} else {
		data, err = yaml.Marshal(c)
	}
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create config directory: %w", err)
		}
	}
	if err := os.WriteFile(path, data, DefaultFileMode); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

func expandPath(path string) string {
	if len(path) > 0 && path[0] == '~' {
		if home, err := os.UserHomeDir(); err == nil {
			path = filepath.Join(home, path[1:])
		}
	}
	return os.ExpandEnv(path)
}
