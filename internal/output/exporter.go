// Package output provides the interface and registry for exporters.
package output

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/ramptone/internal/theme"
)

// Exporter turns a theme into one or more files.
type Exporter interface {
	// Name returns the exporter's name (e.g., "css", "swatch").
	Name() string

	// Description returns a human-readable description of the exporter.
	Description() string

	// Generate creates output file(s) from the given theme.
	// Returns map of filename -> content.
	Generate(th *theme.Theme) (map[string][]byte, error)

	// RegisterFlags registers exporter-specific flags with a cobra command.
	RegisterFlags(cmd *cobra.Command)

	// Validate checks if the exporter configuration is valid.
	Validate() error
}

// Registry holds all registered exporters.
type Registry struct {
	exporters map[string]Exporter
}

// NewRegistry creates a registry holding the given exporters.
func NewRegistry(exporters ...Exporter) *Registry {
	r := &Registry{
		exporters: make(map[string]Exporter),
	}
	for _, e := range exporters {
		r.Register(e)
	}
	return r
}

// Register adds an exporter to the registry.
func (r *Registry) Register(e Exporter) {
	r.exporters[e.Name()] = e
}

// Get retrieves an exporter by name.
func (r *Registry) Get(name string) (Exporter, bool) {
	e, ok := r.exporters[name]
	return e, ok
}

// List returns all registered exporter names, sorted.
func (r *Registry) List() []string {
	names := make([]string, 0, len(r.exporters))
	for name := range r.exporters {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Select returns the named exporters in the given order.
func (r *Registry) Select(names []string) ([]Exporter, error) {
	out := make([]Exporter, 0, len(names))
	for _, name := range names {
		e, ok := r.Get(name)
		if !ok {
			return nil, fmt.Errorf("unknown exporter: %s (available: %v)", name, r.List())
		}
		out = append(out, e)
	}
	return out, nil
}

// Write writes generated files into dir, creating it if needed, and returns
// the written paths in name order.
func Write(dir string, files map[string][]byte) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	names := make([]string, 0, len(files))
	for name := range files {
		names = append(names, name)
	}
	slices.Sort(names)

	written := make([]string, 0, len(names))
	for _, name := range names {
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, files[name], 0o644); err != nil { // #nosec G306 - generated theme files are meant to be readable
			return written, fmt.Errorf("failed to write %s: %w", path, err)
		}
		written = append(written, path)
	}
	return written, nil
}
