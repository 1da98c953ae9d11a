package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/ramptone/internal/config"
	"github.com/jmylchreest/ramptone/internal/curve"
	"github.com/jmylchreest/ramptone/internal/theme"
)

type curveOptions struct {
	configPath string
	channel    string
}

func newCurveCmd(global *globalOptions) *cobra.Command {
	opts := &curveOptions{}

	cmd := &cobra.Command{
		Use:   "curve",
		Short: "Inspect and edit the lightness, chroma and hue curves",
		Long: `Inspect and edit one channel curve of the ramp.

Curve values are lightness 15-95 (OKLCH L x 100), chroma 0-100 (percent of the
0.4 chroma ceiling) and hue 0-360 degrees. Without stored edits, a channel is
seeded from the generated ramp.`,
	}

	config.RegisterFlags(cmd.PersistentFlags())
	cmd.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "config document (YAML or JSON)")
	cmd.PersistentFlags().StringVar(&opts.channel, "channel", curve.Lightness.String(), "channel to operate on (lightness, chroma, hue)")

	cmd.AddCommand(
		newCurveSampleCmd(opts),
		newCurveDragCmd(global, opts),
		newCurveResampleCmd(global, opts),
	)

	return cmd
}

func (o *curveOptions) load(cmd *cobra.Command) (*config.Config, *theme.Theme, curve.Channel, error) {
	ch, err := curve.ParseChannel(o.channel)
	if err != nil {
		return nil, nil, 0, err
	}
	cfg, th, err := loadTheme(cmd, o.configPath)
	if err != nil {
		return nil, nil, 0, err
	}
	return cfg, th, ch, nil
}

func newCurveSampleCmd(opts *curveOptions) *cobra.Command {
	var segments int

	cmd := &cobra.Command{
		Use:   "sample",
		Short: "Print the smooth curve through the channel's points",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if segments < 1 {
				return fmt.Errorf("segments must be at least 1, got %d", segments)
			}
			_, th, ch, err := opts.load(cmd)
			if err != nil {
				return err
			}

			for _, v := range curve.Spline(th.Channel(ch), segments) {
				fmt.Fprintf(cmd.OutOrStdout(), "%.3f\t%.3f\n", v.X, v.Y)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&segments, "segments", 8, "samples per span between points")
	return cmd
}

func newCurveDragCmd(global *globalOptions, opts *curveOptions) *cobra.Command {
	var save bool

	cmd := &cobra.Command{
		Use:   "drag INDEX VALUE",
		Short: "Move one point and carry its neighbours along",
		Long: `Move the point at INDEX to VALUE. Neighbours within a quarter of the ramp
follow with a raised-cosine falloff; values are clamped to the channel range.

Example:
  ramptone curve drag 5 70 --channel lightness --config ramp.yaml --save`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			index, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid index %q: %w", args[0], err)
			}
			value, err := strconv.ParseFloat(args[1], 64)
			if err != nil {
				return fmt.Errorf("invalid value %q: %w", args[1], err)
			}
			if save && opts.configPath == "" {
				return fmt.Errorf("--save needs --config")
			}

			cfg, th, ch, err := opts.load(cmd)
			if err != nil {
				return err
			}

			editor := curve.NewEditor(ch, th.Channel(ch))
			if err := editor.Press(index); err != nil {
				return err
			}
			if _, err := editor.Drag(value); err != nil {
				return err
			}
			editor.Release()

			edited, err := th.WithCurves(th.Curves.With(ch, editor.Points()))
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), pointTable(edited, ch))

			if save {
				cfg.Curves = edited.Curves
				if err := cfg.Save(opts.configPath); err != nil {
					return fmt.Errorf("failed to save config: %w", err)
				}
				status(cmd, global, "✓ Saved %s curve to: %s", ch, opts.configPath)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&save, "save", false, "write the edited curve back to the config document")
	return cmd
}

func newCurveResampleCmd(global *globalOptions, opts *curveOptions) *cobra.Command {
	var save bool

	cmd := &cobra.Command{
		Use:   "resample STEPS",
		Short: "Change the step count, resampling every stored curve",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			steps, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid step count %q: %w", args[0], err)
			}
			if save && opts.configPath == "" {
				return fmt.Errorf("--save needs --config")
			}

			cfg, th, ch, err := opts.load(cmd)
			if err != nil {
				return err
			}

			params := th.Params
			params.Steps = steps
			next, err := th.WithParams(params)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), pointTable(next, ch))

			if save {
				cfg.Ramp = next.Params
				cfg.Curves = next.Curves
				if err := cfg.Save(opts.configPath); err != nil {
					return fmt.Errorf("failed to save config: %w", err)
				}
				status(cmd, global, "✓ Saved %d-step ramp to: %s", steps, opts.configPath)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&save, "save", false, "write the new step count and curves back to the config document")
	return cmd
}

// pointTable lists a channel's points next to the stops they produce.
func pointTable(th *theme.Theme, ch curve.Channel) string {
	table := NewTable([]string{"STEP", strings.ToUpper(ch.String()), "HEX"})
	for _, p := range th.Channel(ch) {
		hex := ""
		if p.Step >= 0 && p.Step < th.Ramp.Len() {
			hex = th.Ramp[p.Step].Hex
		}
		table.AddRow([]string{th.Ramp.Label(p.Step), strconv.FormatFloat(p.Value, 'f', 2, 64), hex})
	}
	return table.Render()
}
