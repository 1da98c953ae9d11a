// Package css provides an exporter writing the ramp and tokens as CSS custom properties.
package css

import (
	"bytes"
	"embed"
	"fmt"
	"regexp"
	"text/template"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/ramptone/internal/output/common"
	"github.com/jmylchreest/ramptone/internal/theme"
	"github.com/jmylchreest/ramptone/internal/tokens"
)

//go:embed *.tmpl
var templates embed.FS

// FileName is the name of the generated stylesheet.
const FileName = "ramp.css"

var prefixPattern = regexp.MustCompile(`^[a-z][a-z0-9-]*$`)

// Exporter implements output.Exporter for CSS.
type Exporter struct {
	prefix string
	format string // "hex", "rgb" or "oklch"
}

// New creates a CSS exporter with default settings.
func New() *Exporter {
	return &Exporter{
		prefix: "brand",
		format: "hex",
	}
}

// Name returns the exporter name.
func (e *Exporter) Name() string {
	return "css"
}

// Description returns the exporter description.
func (e *Exporter) Description() string {
	return "CSS custom properties for ramp stops and semantic tokens"
}

// RegisterFlags registers exporter-specific flags with the cobra command.
func (e *Exporter) RegisterFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&e.prefix, "css.prefix", e.prefix, "Custom property prefix for ramp stops")
	cmd.Flags().StringVar(&e.format, "css.format", e.format, "Stop colour format (hex, rgb or oklch)")
}

// Validate checks if the exporter configuration is valid.
func (e *Exporter) Validate() error {
	switch e.format {
	case "hex", "rgb", "oklch":
	default:
		return fmt.Errorf("invalid format: %s (must be 'hex', 'rgb' or 'oklch')", e.format)
	}
	if !prefixPattern.MatchString(e.prefix) {
		return fmt.Errorf("invalid prefix: %q", e.prefix)
	}
	return nil
}

// Data is what the stylesheet template renders.
type Data struct {
	Base   string
	Prefix string
	Format string
	Stops  []Stop
	Tokens []Token
}

// Stop is one ramp stop.
type Stop struct {
	Label string
	Hex   string
}

// Token is one semantic token. Value is either a reference to a stop
// property or, for black/white sentinels, a literal colour.
type Token struct {
	Name     string
	Value    string
	Fallback bool
}

// Generate creates the stylesheet from the theme.
func (e *Exporter) Generate(th *theme.Theme) (map[string][]byte, error) {
	if th == nil {
		return nil, fmt.Errorf("theme cannot be nil")
	}

	tmplContent, err := templates.ReadFile("ramp.css.tmpl")
	if err != nil {
		return nil, fmt.Errorf("failed to read CSS template: %w", err)
	}

	tmpl, err := template.New("ramp.css").Funcs(common.TemplateFuncs()).Parse(string(tmplContent))
	if err != nil {
		return nil, fmt.Errorf("failed to parse CSS template: %w", err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, e.prepareData(th)); err != nil {
		return nil, fmt.Errorf("failed to execute CSS template: %w", err)
	}

	return map[string][]byte{FileName: buf.Bytes()}, nil
}

func (e *Exporter) prepareData(th *theme.Theme) Data {
	data := Data{
		Base:   th.Params.BaseColor,
		Prefix: e.prefix,
		Format: e.format,
	}

	for i, s := range th.Ramp {
		data.Stops = append(data.Stops, Stop{Label: th.Ramp.Label(i), Hex: s.Hex})
	}

	for _, r := range th.Results {
		value := tokens.ColourAt(th.Ramp, r.Index)
		if !r.Sentinel() {
			value = fmt.Sprintf("var(--%s-%s)", e.prefix, th.Ramp.Label(r.Index))
		}
		data.Tokens = append(data.Tokens, Token{Name: r.Name, Value: value, Fallback: r.Fallback})
	}

	return data
}
