package tokens

import (
	"github.com/hashicorp/go-hclog"
	"github.com/jmylchreest/ramptone/internal/colour"
)

// Sentinel indices meaning "use plain black/white instead of a ramp stop".
const (
	SpecialBlack = -1
	SpecialWhite = -2
)

var logger hclog.Logger = hclog.NewNullLogger()

// SetLogger sets the logger that reports fallback resolutions. A nil logger
// silences the package.
func SetLogger(l hclog.Logger) {
	if l == nil {
		l = hclog.NewNullLogger()
	}
	logger = l.Named("tokens")
}

// Tokens maps token names to ramp indices or sentinels.
type Tokens map[string]int

// Colour returns the hex colour a token stands for on ramp.
func (t Tokens) Colour(ramp colour.Ramp, name string) (string, bool) {
	index, ok := t[name]
	if !ok {
		return "", false
	}
	return ColourAt(ramp, index), true
}

// ColourAt returns the hex colour of a ramp index, resolving sentinels.
// Indices outside the ramp read as black.
func ColourAt(ramp colour.Ramp, index int) string {
	switch {
	case index == SpecialWhite:
		return colour.White
	case index >= 0 && index < len(ramp):
		return ramp[index].Hex
	default:
		return colour.Black
	}
}

// Result is the outcome of resolving one token. Fallback is set when the
// strategy could not meet its goal and used its documented fallback instead.
type Result struct {
	Name     string `json:"name"`
	Kind     Kind   `json:"kind"`
	Index    int    `json:"index"`
	Fallback bool   `json:"fallback,omitempty"`
}

// Sentinel reports whether the result is plain black or white rather than a stop.
func (r Result) Sentinel() bool {
	return r.Index == SpecialBlack || r.Index == SpecialWhite
}

// resolver carries the state of one resolution pass.
type resolver struct {
	ramp     colour.Ramp
	base     colour.OKLCH
	resolved map[string]int
	order    []int
}

func (r *resolver) index(name string) int {
	return r.resolved[name]
}

func (r *resolver) colour(index int) string {
	return ColourAt(r.ramp, index)
}

func (r *resolver) target(t Target) string {
	if t.Token != "" {
		return r.colour(r.index(t.Token))
	}
	return t.Color
}

// lightToDark returns ramp indices ordered from the light end to the dark end.
// A light-first ramp reads in ascending order; generated ramps are dark-first
// and read descending.
func (r *resolver) lightToDark() []int {
	if r.order != nil {
		return r.order
	}
	n := len(r.ramp)
	r.order = make([]int, n)
	darkFirst := r.ramp.DarkFirst()
	for k := 0; k < n; k++ {
		if darkFirst {
			r.order[k] = n - 1 - k
		} else {
			r.order[k] = k
		}
	}
	return r.order
}

// ResolveDetailed resolves every token in table order against ramp and reports
// which ones needed a fallback. An empty ramp has no stops to offer, so every
// token falls back to SpecialBlack.
func (t *Table) ResolveDetailed(ramp colour.Ramp, base string) []Result {
	results := make([]Result, 0, len(t.specs))
	r := &resolver{
		ramp:     ramp,
		base:     colour.HexToOKLCH(base),
		resolved: make(map[string]int, len(t.specs)),
	}

	for _, spec := range t.specs {
		var index int
		var fallback bool
		if len(ramp) == 0 {
			index, fallback = SpecialBlack, true
		} else {
			index, fallback = spec.Strategy.resolve(r)
		}
		r.resolved[spec.Name] = index

		if fallback {
			logger.Debug("token resolved with fallback",
				"token", spec.Name, "kind", spec.Strategy.Kind(), "index", index)
		}
		results = append(results, Result{
			Name:     spec.Name,
			Kind:     spec.Strategy.Kind(),
			Index:    index,
			Fallback: fallback,
		})
	}

	return results
}

// Resolve resolves every token in table order against ramp.
func (t *Table) Resolve(ramp colour.Ramp, base string) Tokens {
	results := t.ResolveDetailed(ramp, base)
	out := make(Tokens, len(results))
	for _, res := range results {
		out[res.Name] = res.Index
	}
	return out
}

// ResolveSemanticTokens resolves the default brand table.
func ResolveSemanticTokens(ramp colour.Ramp, base string) Tokens {
	return DefaultTable().Resolve(ramp, base)
}
