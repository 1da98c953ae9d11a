package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/jmylchreest/ramptone/internal/colour"
	"github.com/jmylchreest/ramptone/internal/config"
	"github.com/jmylchreest/ramptone/internal/theme"
	"github.com/jmylchreest/ramptone/internal/tokens"
)

// Preview modes.
const (
	previewAuto   = "auto"
	previewAlways = "always"
	previewNever  = "never"
)

// loadConfig loads the document at path (or the defaults) and applies the
// generation flags the user set on cmd.
func loadConfig(cmd *cobra.Command, path string) (*config.Config, error) {
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	if err := cfg.ApplyFlags(cmd.Flags()); err != nil {
		return nil, fmt.Errorf("invalid flags: %w", err)
	}
	return cfg, nil
}

// loadTheme loads the configuration and builds its theme.
func loadTheme(cmd *cobra.Command, path string) (*config.Config, *theme.Theme, error) {
	cfg, err := loadConfig(cmd, path)
	if err != nil {
		return nil, nil, err
	}
	th, err := theme.Build(cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to build theme: %w", err)
	}
	return cfg, th, nil
}

// status prints a progress line to stderr unless --quiet is set.
func status(cmd *cobra.Command, opts *globalOptions, format string, args ...any) {
	if opts != nil && opts.quiet {
		return
	}
	fmt.Fprintf(cmd.ErrOrStderr(), format+"\n", args...)
}

// previewRenderer returns a lipgloss renderer for swatch previews, or nil when
// previews are off. "auto" previews only when w is a terminal.
func previewRenderer(mode string, w io.Writer) (*lipgloss.Renderer, error) {
	switch mode {
	case previewNever:
		return nil, nil
	case previewAlways:
		r := lipgloss.NewRenderer(w)
		r.SetColorProfile(termenv.TrueColor)
		return r, nil
	case previewAuto:
		if f, ok := w.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
			return lipgloss.NewRenderer(w), nil
		}
		return nil, nil
	default:
		return nil, fmt.Errorf("invalid preview mode: %s (must be 'auto', 'always' or 'never')", mode)
	}
}

// swatch renders text on a background colour with the better of black or white.
func swatch(r *lipgloss.Renderer, hex, text string) string {
	return r.NewStyle().
		Background(lipgloss.Color(hex)).
		Foreground(lipgloss.Color(colour.BestContrast(hex).Color)).
		Padding(0, 1).
		Render(text)
}

// rampTable lists the stops of a theme, with a colour column when r is set.
func rampTable(th *theme.Theme, r *lipgloss.Renderer) string {
	headers := []string{"STEP", "HEX", "OKLCH"}
	if r != nil {
		headers = append(headers, "SWATCH")
	}
	table := NewTable(headers)

	for i, s := range th.Ramp {
		row := []string{th.Ramp.Label(i), s.Hex, s.OKLCH.String()}
		if r != nil {
			row = append(row, swatch(r, s.Hex, "      "))
		}
		table.AddRow(row)
	}
	return table.Render()
}

// tokenTable lists resolved tokens with their contrast against white and black.
func tokenTable(th *theme.Theme, r *lipgloss.Renderer) string {
	headers := []string{"TOKEN", "STEP", "HEX", "VS WHITE", "VS BLACK", "STRATEGY", "NOTE"}
	table := NewTable(headers)

	for _, res := range th.Results {
		hex := tokens.ColourAt(th.Ramp, res.Index)
		hexCell := hex
		if r != nil {
			hexCell = swatch(r, hex, hex)
		}

		note := ""
		if res.Fallback {
			note = "fallback"
		}

		table.AddRow([]string{
			res.Name,
			stepLabel(th, res.Index),
			hexCell,
			formatRatio(colour.ContrastRatio(hex, colour.White)),
			formatRatio(colour.ContrastRatio(hex, colour.Black)),
			string(res.Kind),
			note,
		})
	}
	return table.Render()
}

func stepLabel(th *theme.Theme, index int) string {
	switch index {
	case tokens.SpecialBlack:
		return "black"
	case tokens.SpecialWhite:
		return "white"
	default:
		return th.Ramp.Label(index)
	}
}

func formatRatio(ratio float64) string {
	return fmt.Sprintf("%.2f:1 %s", ratio, colour.Grade(ratio))
}
