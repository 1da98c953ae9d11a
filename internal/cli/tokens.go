package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/ramptone/internal/config"
	"github.com/jmylchreest/ramptone/internal/output/jsondoc"
)

type tokensOptions struct {
	configPath string
	format     string
	preview    string
}

func newTokensCmd() *cobra.Command {
	opts := &tokensOptions{}

	cmd := &cobra.Command{
		Use:   "tokens",
		Short: "Show the semantic tokens resolved for a ramp",
		Long: `Resolve the built-in brand tokens against the ramp and show, for each one,
the stop it landed on, its contrast against white and black, the strategy
that placed it, and whether that strategy had to fall back.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			renderer, err := previewRenderer(opts.preview, cmd.OutOrStdout())
			if err != nil {
				return err
			}

			_, th, err := loadTheme(cmd, opts.configPath)
			if err != nil {
				return err
			}

			switch opts.format {
			case formatTable:
				fmt.Fprint(cmd.OutOrStdout(), tokenTable(th, renderer))
			case formatJSON:
				data, err := json.MarshalIndent(jsondoc.NewDocument(th, false).Tokens, "", "  ")
				if err != nil {
					return fmt.Errorf("failed to encode tokens: %w", err)
				}
				fmt.Fprintln(cmd.OutOrStdout(), string(data))
			default:
				return fmt.Errorf("invalid format: %s (must be 'table' or 'json')", opts.format)
			}
			return nil
		},
	}

	config.RegisterFlags(cmd.Flags())
	cmd.Flags().StringVarP(&opts.configPath, "config", "c", "", "config document (YAML or JSON)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", formatTable, "output format (table, json)")
	cmd.Flags().StringVar(&opts.preview, "preview", previewAuto, "colour swatches (auto, always, never)")

	return cmd
}
