// Package jsondoc provides an exporter writing the theme as a JSON document.
package jsondoc

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/ramptone/internal/colour"
	"github.com/jmylchreest/ramptone/internal/curve"
	"github.com/jmylchreest/ramptone/internal/theme"
	"github.com/jmylchreest/ramptone/internal/tokens"
)

// FileName is the name of the generated document.
const FileName = "ramp.json"

// Exporter implements output.Exporter for JSON.
type Exporter struct {
	compact bool
	curves  bool
}

// New creates a JSON exporter with default settings.
func New() *Exporter {
	return &Exporter{}
}

// Name returns the exporter name.
func (e *Exporter) Name() string {
	return "json"
}

// Description returns the exporter description.
func (e *Exporter) Description() string {
	return "JSON document with parameters, stops and resolved tokens"
}

// RegisterFlags registers exporter-specific flags with the cobra command.
func (e *Exporter) RegisterFlags(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&e.compact, "json.compact", false, "Write compact JSON instead of indented")
	cmd.Flags().BoolVar(&e.curves, "json.curves", false, "Include curve edits in the document")
}

// Validate checks if the exporter configuration is valid.
func (e *Exporter) Validate() error {
	return nil
}

// Document is the exported JSON structure.
type Document struct {
	Params colour.RampConfig `json:"params"`
	Stops  []Stop            `json:"stops"`
	Tokens []Token           `json:"tokens"`
	Curves *curve.Channels   `json:"curves,omitempty"`
}

// Stop is one ramp stop.
type Stop struct {
	Label string       `json:"label"`
	Hex   string       `json:"hex"`
	OKLCH colour.OKLCH `json:"oklch"`
}

// Token is one resolved token with its contrast against plain black and white.
type Token struct {
	Name          string      `json:"name"`
	Kind          tokens.Kind `json:"kind"`
	Index         int         `json:"index"`
	Hex           string      `json:"hex"`
	Fallback      bool        `json:"fallback,omitempty"`
	ContrastWhite float64     `json:"contrast_white"`
	ContrastBlack float64     `json:"contrast_black"`
}

// NewDocument builds the document for a theme.
func NewDocument(th *theme.Theme, withCurves bool) Document {
	doc := Document{
		Params: th.Params,
		Stops:  make([]Stop, 0, th.Ramp.Len()),
		Tokens: make([]Token, 0, len(th.Results)),
	}

	for i, s := range th.Ramp {
		doc.Stops = append(doc.Stops, Stop{Label: th.Ramp.Label(i), Hex: s.Hex, OKLCH: s.OKLCH})
	}

	for _, r := range th.Results {
		hex := tokens.ColourAt(th.Ramp, r.Index)
		doc.Tokens = append(doc.Tokens, Token{
			Name:          r.Name,
			Kind:          r.Kind,
			Index:         r.Index,
			Hex:           hex,
			Fallback:      r.Fallback,
			ContrastWhite: round2(colour.ContrastRatio(hex, colour.White)),
			ContrastBlack: round2(colour.ContrastRatio(hex, colour.Black)),
		})
	}

	if withCurves && !th.Curves.Empty() {
		c := th.Curves
		doc.Curves = &c
	}

	return doc
}

// Generate creates the JSON document from the theme.
func (e *Exporter) Generate(th *theme.Theme) (map[string][]byte, error) {
	if th == nil {
		return nil, fmt.Errorf("theme cannot be nil")
	}

	doc := NewDocument(th, e.curves)

	var (
		data []byte
		err  error
	)
	if e.compact {
		data, err = json.Marshal(doc)
	} else {
		data, err = json.MarshalIndent(doc, "", "  ")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to encode theme: %w", err)
	}

	return map[string][]byte{FileName: append(data, '\n')}, nil
}

func round2(v float64) float64 {
	return float64(int(v*100+0.5)) / 100
}
