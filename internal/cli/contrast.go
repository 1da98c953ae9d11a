package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/ramptone/internal/colour"
)

func newContrastCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "contrast FOREGROUND BACKGROUND",
		Short: "Show the WCAG contrast ratio between two colours",
		Long: `Show the WCAG 2.x contrast ratio between two hex colours, the grade it
earns, and whether black or white text reads better on the first colour.

Example:
  ramptone contrast "#6366F1" "#FFFFFF"`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, ok := colour.NormaliseHex(args[0])
			if !ok {
				return fmt.Errorf("invalid colour: %q (expected #RRGGBB)", args[0])
			}
			b, ok := colour.NormaliseHex(args[1])
			if !ok {
				return fmt.Errorf("invalid colour: %q (expected #RRGGBB)", args[1])
			}

			ratio := colour.ContrastRatio(a, b)
			best := colour.BestContrast(a)

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s on %s: %.2f:1 (%s)\n", a, b, ratio, colour.Grade(ratio))
			fmt.Fprintf(out, "Best text on %s: %s (%.2f:1, %s)\n", a, best.Color, best.Ratio, colour.Grade(best.Ratio))
			return nil
		},
	}
}
