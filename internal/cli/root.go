// Package cli provides the command-line interface for ramptone.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/ramptone/internal/logging"
	"github.com/jmylchreest/ramptone/internal/version"
)

// globalOptions are the persistent flags shared by every command.
type globalOptions struct {
	verbose bool
	quiet   bool
}

// NewRootCmd builds the command tree. Each call returns an independent tree,
// so tests can run commands side by side.
func NewRootCmd() *cobra.Command {
	opts := &globalOptions{}

	rootCmd := &cobra.Command{
		Use:   "ramptone",
		Short: "Perceptual colour ramps and semantic design tokens",
		Long: `Ramptone builds a tonal colour ramp from a single base colour in the OKLCH
space, lets you reshape it with lightness, chroma and hue curves, and assigns
semantic UI roles (backgrounds, content, borders, focus rings) to the ramp
stops that meet WCAG contrast targets.`,
		Version:      version.Short(),
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if opts.verbose && opts.quiet {
				return fmt.Errorf("--verbose and --quiet cannot be used together")
			}
			logging.Install(logging.New(cmd.ErrOrStderr(), opts.verbose))
			return nil
		},
	}

	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().BoolVarP(&opts.quiet, "quiet", "q", false, "suppress non-error output")

	rootCmd.SetVersionTemplate(version.String() + "\n")

	rootCmd.AddCommand(
		newVersionCmd(),
		newGenerateCmd(opts),
		newExportCmd(opts),
		newTokensCmd(),
		newCurveCmd(opts),
		newContrastCmd(),
	)

	return rootCmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Long:  `Print detailed version information including build date, commit hash, and Go version.`,
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version.String())
		},
	}
}
