// Package theme runs the full pipeline: generation parameters to ramp, curve
// edits on top, then semantic tokens. Every edit rebuilds the whole theme.
package theme

import (
	"fmt"

	"github.com/jmylchreest/ramptone/internal/colour"
	"github.com/jmylchreest/ramptone/internal/config"
	"github.com/jmylchreest/ramptone/internal/curve"
	"github.com/jmylchreest/ramptone/internal/tokens"
)

// Theme is a generated ramp with its curve edits applied and tokens resolved.
type Theme struct {
	Params    colour.RampConfig
	Generated colour.Ramp
	Ramp      colour.Ramp
	Curves    curve.Channels
	Results   []tokens.Result
	Tokens    tokens.Tokens

	table *tokens.Table
}

// Build builds a theme from a config document using the default token table.
func Build(cfg *config.Config) (*Theme, error) {
	return BuildWith(cfg.Ramp, cfg.Curves, tokens.DefaultTable())
}

// BuildWith builds a theme from parameters, curve edits and a token table.
// Curve channels whose length differs from the step count are resampled.
func BuildWith(params colour.RampConfig, curves curve.Channels, table *tokens.Table) (*Theme, error) {
	if err := params.Validate(); err != nil {
		return nil, fmt.Errorf("invalid parameters: %w", err)
	}
	if table == nil {
		table = tokens.DefaultTable()
	}

	generated := colour.Generate(params)
	for _, ch := range curve.AllChannels() {
		if pts := curves.Get(ch); len(pts) > 0 && len(pts) != params.Steps {
			curves = curves.With(ch, curve.Resample(pts, params.Steps))
		}
	}
	ramp := curve.Apply(generated, curves)

	results := table.ResolveDetailed(ramp, params.BaseColor)
	resolved := make(tokens.Tokens, len(results))
	for _, r := range results {
		resolved[r.Name] = r.Index
	}

	return &Theme{
		Params:    params,
		Generated: generated,
		Ramp:      ramp,
		Curves:    curves,
		Results:   results,
		Tokens:    resolved,
		table:     table,
	}, nil
}

// WithCurves rebuilds the theme with new curve edits.
func (t *Theme) WithCurves(curves curve.Channels) (*Theme, error) {
	return BuildWith(t.Params, curves, t.table)
}

// WithParams rebuilds the theme with new parameters, keeping curve edits.
func (t *Theme) WithParams(params colour.RampConfig) (*Theme, error) {
	return BuildWith(params, t.Curves, t.table)
}

// Channel returns the editable points of one channel: the stored edit if
// there is one, otherwise values read back from the generated ramp.
func (t *Theme) Channel(ch curve.Channel) []curve.Point {
	if pts := t.Curves.Get(ch); len(pts) > 0 {
		return curve.Sorted(pts)
	}
	return curve.FromRamp(t.Generated).Get(ch)
}

// Colour returns the hex colour of a token.
func (t *Theme) Colour(name string) (string, bool) {
	return t.Tokens.Colour(t.Ramp, name)
}

// TokenNames returns token names in resolution order.
func (t *Theme) TokenNames() []string {
	names := make([]string, len(t.Results))
	for i, r := range t.Results {
		names[i] = r.Name
	}
	return names
}

// Fallbacks returns the tokens that could not meet their contrast goal.
func (t *Theme) Fallbacks() []tokens.Result {
	var out []tokens.Result
	for _, r := range t.Results {
		if r.Fallback {
			out = append(out, r)
		}
	}
	return out
}
