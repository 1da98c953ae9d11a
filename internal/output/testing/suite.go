// Package testing provides shared test utilities for exporters.
package testing

import (
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/jmylchreest/ramptone/internal/config"
	"github.com/jmylchreest/ramptone/internal/output"
	"github.com/jmylchreest/ramptone/internal/theme"
)

// TestBasicInterface tests the basic interface methods every exporter implements.
func TestBasicInterface(t *testing.T, e output.Exporter, expectedName string) {
	t.Run("Name", func(t *testing.T) {
		if e.Name() != expectedName {
			t.Errorf("Name() = %s, want %s", e.Name(), expectedName)
		}
	})

	t.Run("Description", func(t *testing.T) {
		if e.Description() == "" {
			t.Error("Description() should not be empty")
		}
	})

	t.Run("Validate", func(t *testing.T) {
		if err := e.Validate(); err != nil {
			t.Errorf("Validate() error = %v, want nil", err)
		}
	})
}

// TestGeneration tests the Generate method with the default theme and a
// minimal one.
func TestGeneration(t *testing.T, e output.Exporter, expectedFiles []string) {
	t.Run("Generate", func(t *testing.T) {
		files, err := e.Generate(CreateTestTheme(t, 12))
		if err != nil {
			t.Fatalf("Generate() error = %v", err)
		}

		if len(files) != len(expectedFiles) {
			t.Fatalf("Generate() returned %d files, want %d", len(files), len(expectedFiles))
		}

		for _, expectedFile := range expectedFiles {
			if len(files[expectedFile]) == 0 {
				t.Errorf("Generate() did not return %s", expectedFile)
			}
		}
	})

	t.Run("GenerateNilTheme", func(t *testing.T) {
		if _, err := e.Generate(nil); err == nil {
			t.Error("Generate() with nil theme should return error")
		}
	})

	t.Run("GenerateMinimalRamp", func(t *testing.T) {
		files, err := e.Generate(CreateTestTheme(t, 4))
		if err != nil {
			t.Fatalf("Generate() error = %v", err)
		}
		if len(files) == 0 {
			t.Error("Generate() returned no files")
		}
	})
}

// TestFlags tests exporter-specific flag registration.
func TestFlags(t *testing.T, e output.Exporter, expectedFlagPrefix string) {
	t.Run("RegisterFlags", func(t *testing.T) {
		cmd := &cobra.Command{
			Use: "test",
		}

		e.RegisterFlags(cmd)

		found := false
		cmd.Flags().VisitAll(func(f *pflag.Flag) {
			if strings.HasPrefix(f.Name, expectedFlagPrefix+".") {
				found = true
			}
		})
		if !found {
			t.Errorf("RegisterFlags() registered no %s.* flags", expectedFlagPrefix)
		}
	})
}

// CreateTestTheme builds a theme from the default parameters with the given step count.
func CreateTestTheme(t *testing.T, steps int) *theme.Theme {
	t.Helper()
	cfg := config.Default()
	cfg.Ramp.Steps = steps
	th, err := theme.Build(cfg)
	if err != nil {
		t.Fatalf("theme.Build() error = %v", err)
	}
	return th
}

// RunAllTests runs all standard tests for an exporter.
func RunAllTests(t *testing.T, e output.Exporter, cfg TestConfig) {
	TestBasicInterface(t, e, cfg.ExpectedName)
	TestGeneration(t, e, cfg.ExpectedFiles)
	TestFlags(t, e, cfg.ExpectedName)
}

// TestConfig holds configuration for running exporter tests.
type TestConfig struct {
	ExpectedName  string   // Exporter name, also the flag prefix
	ExpectedFiles []string // Files that Generate() should return
}
