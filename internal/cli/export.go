package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/ramptone/internal/config"
	"github.com/jmylchreest/ramptone/internal/output"
	"github.com/jmylchreest/ramptone/internal/output/css"
	"github.com/jmylchreest/ramptone/internal/output/jsondoc"
	swatchexp "github.com/jmylchreest/ramptone/internal/output/swatch"
)

type exportOptions struct {
	configPath string
	exporters  []string
	outputDir  string
	archive    string
	dryRun     bool
}

// newRegistry returns a registry holding every built-in exporter.
func newRegistry() *output.Registry {
	return output.NewRegistry(css.New(), jsondoc.New(), swatchexp.New())
}

func newExportCmd(global *globalOptions) *cobra.Command {
	opts := &exportOptions{}
	registry := newRegistry()

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the ramp and tokens through one or more exporters",
		Long: `Write the ramp and its semantic tokens to files.

Exporters:
  css     - CSS custom properties for stops and tokens
  json    - JSON document with parameters, stops and tokens
  swatch  - PNG swatch strip with labelled stops and token rows

Examples:
  # Default exporters from the config document
  ramptone export --config ramp.yaml

  # Stylesheet and swatch into a build directory
  ramptone export -e css,swatch -o dist/theme

  # OKLCH stop values
  ramptone export -e css --css.format oklch

  # Every exporter bundled into one tar.xz archive
  ramptone export -e css,json,swatch --archive theme.tar.xz`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runExport(cmd, global, opts, registry)
		},
	}

	config.RegisterFlags(cmd.Flags())
	cmd.Flags().StringVarP(&opts.configPath, "config", "c", "", "config document (YAML or JSON)")
	cmd.Flags().StringSliceVarP(&opts.exporters, "exporter", "e", nil, "exporters to run (comma-separated; default from config)")
	cmd.Flags().StringVarP(&opts.outputDir, "output-dir", "o", "", "output directory (default from config)")
	cmd.Flags().StringVar(&opts.archive, "archive", "", "bundle the exported files into this tar.xz archive instead of a directory")
	cmd.Flags().BoolVar(&opts.dryRun, "dry-run", false, "list the files that would be written without writing them")

	for _, name := range registry.List() {
		e, _ := registry.Get(name)
		e.RegisterFlags(cmd)
	}

	return cmd
}

func runExport(cmd *cobra.Command, global *globalOptions, opts *exportOptions, registry *output.Registry) error {
	cfg, th, err := loadTheme(cmd, opts.configPath)
	if err != nil {
		return err
	}

	names := cfg.Output.Exporters
	if len(opts.exporters) > 0 {
		names = opts.exporters
	}
	dir := cfg.Output.Dir
	if opts.outputDir != "" {
		dir = opts.outputDir
	}

	exporters, err := registry.Select(names)
	if err != nil {
		return err
	}
	if len(exporters) == 0 {
		return fmt.Errorf("no exporters selected")
	}

	bundle := make(map[string][]byte)
	written := 0
	for _, e := range exporters {
		if err := e.Validate(); err != nil {
			return fmt.Errorf("%s: %w", e.Name(), err)
		}

		files, err := e.Generate(th)
		if err != nil {
			return fmt.Errorf("%s failed: %w", e.Name(), err)
		}

		if opts.dryRun {
			for name, content := range files {
				fmt.Fprintf(cmd.OutOrStdout(), "%s/%s (%d bytes)\n", dir, name, len(content))
			}
			continue
		}

		if opts.archive != "" {
			for name, content := range files {
				if _, dup := bundle[name]; dup {
					return fmt.Errorf("%s: %s is already in the archive", e.Name(), name)
				}
				bundle[name] = content
			}
			continue
		}

		paths, err := output.Write(dir, files)
		if err != nil {
			return fmt.Errorf("%s: %w", e.Name(), err)
		}
		for _, p := range paths {
			status(cmd, global, "✓ %s: %s", e.Name(), p)
		}
		written += len(paths)
	}

	switch {
	case opts.dryRun:
	case opts.archive != "":
		if err := output.WriteArchiveFile(opts.archive, bundle); err != nil {
			return err
		}
		status(cmd, global, "✓ Wrote %d file(s) to %s", len(bundle), opts.archive)
	default:
		status(cmd, global, "✓ Wrote %d file(s) to %s", written, dir)
	}
	return nil
}
