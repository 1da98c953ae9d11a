package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/ramptone/internal/config"
	"github.com/jmylchreest/ramptone/internal/output/jsondoc"
)

// Output formats for generate.
const (
	formatTable = "table"
	formatHex   = "hex"
	formatJSON  = "json"
)

type generateOptions struct {
	configPath string
	format     string
	preview    string
	save       string
}

func newGenerateCmd(global *globalOptions) *cobra.Command {
	opts := &generateOptions{}

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a colour ramp and its semantic tokens",
		Long: `Generate a tonal ramp from a base colour and resolve the semantic tokens.

Parameters come from the defaults, then the config document (--config), then
RAMPTONE_* environment variables, then the flags given on the command line.

Examples:
  # Default indigo ramp
  ramptone generate

  # Twelve-step teal ramp with stronger chroma
  ramptone generate --base "#14B8A6" --vibrance 0.8

  # Plain hex list for scripting
  ramptone generate --base "#F59E0B" --steps 8 --format hex

  # Save the effective parameters for later edits
  ramptone generate --base "#E11D48" --save ramp.yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runGenerate(cmd, global, opts)
		},
	}

	config.RegisterFlags(cmd.Flags())
	cmd.Flags().StringVarP(&opts.configPath, "config", "c", "", "config document (YAML or JSON)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", formatTable, "output format (table, hex, json)")
	cmd.Flags().StringVar(&opts.preview, "preview", previewAuto, "colour swatches in table output (auto, always, never)")
	cmd.Flags().StringVar(&opts.save, "save", "", "save the effective config document to this path")

	return cmd
}

func runGenerate(cmd *cobra.Command, global *globalOptions, opts *generateOptions) error {
	renderer, err := previewRenderer(opts.preview, cmd.OutOrStdout())
	if err != nil {
		return err
	}

	cfg, th, err := loadTheme(cmd, opts.configPath)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	switch opts.format {
	case formatTable:
		fmt.Fprint(out, rampTable(th, renderer))
		fmt.Fprintln(out)
		fmt.Fprint(out, tokenTable(th, renderer))
	case formatHex:
		for _, hex := range th.Ramp.Hexes() {
			fmt.Fprintln(out, hex)
		}
	case formatJSON:
		data, err := json.MarshalIndent(jsondoc.NewDocument(th, true), "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode theme: %w", err)
		}
		fmt.Fprintln(out, string(data))
	default:
		return fmt.Errorf("invalid format: %s (must be 'table', 'hex' or 'json')", opts.format)
	}

	for _, f := range th.Fallbacks() {
		status(cmd, global, "⚠ %s could not meet its contrast goal (%s)", f.Name, f.Kind)
	}

	if opts.save != "" {
		if err := cfg.Save(opts.save); err != nil {
			return fmt.Errorf("failed to save config: %w", err)
		}
		status(cmd, global, "✓ Saved config to: %s", opts.save)
	}

	return nil
}
