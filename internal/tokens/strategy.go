// Package tokens assigns semantic UI roles to ramp indices.
//
// Each role is described by a Spec pairing a token name with a Strategy. The
// strategies are plain data; a Table validates their references once and then
// resolves every token against a ramp, in declaration order.
package tokens

import (
	"math"

	"github.com/jmylchreest/ramptone/internal/colour"
)

// Kind names a strategy variant.
type Kind string

const (
	KindClosestBaseColor     Kind = "closest-base-color"
	KindLightestWithContrast Kind = "lightest-with-contrast"
	KindDarkestWithContrast  Kind = "darkest-with-contrast"
	KindDisabledContent      Kind = "disabled-content-color"
	KindShiftStep            Kind = "shift-step"
	KindUseSameIndex         Kind = "use-same-index"
	KindBorderAccessible     Kind = "border-accessible"
	KindContentOnPrimary     Kind = "content-on-primary"
)

// Contrast targets used by the built-in strategies.
const (
	DisabledBandMin          = 1.2
	DisabledBandMax          = 2.2
	ContentPreferredContrast = 5.0
	ContentMinimumContrast   = colour.ContrastAA
)

// Strategy is one of the variants declared in this file. The set is closed.
type Strategy interface {
	Kind() Kind
	references() []reference
	resolve(r *resolver) (index int, fallback bool)
}

// reference is a dependency on an earlier token. needsIndex marks references
// whose ramp position is used, which a black/white sentinel cannot provide.
type reference struct {
	token      string
	needsIndex bool
}

// Target is the colour a contrast is measured against: either a literal hex
// colour or the resolved colour of an earlier token.
type Target struct {
	Color string `json:"color,omitempty" yaml:"color,omitempty"`
	Token string `json:"token,omitempty" yaml:"token,omitempty"`
}

// Against returns a Target for a literal colour.
func Against(hex string) Target { return Target{Color: hex} }

// AgainstToken returns a Target for another token's colour.
func AgainstToken(name string) Target { return Target{Token: name} }

func (t Target) references() []reference {
	if t.Token == "" {
		return nil
	}
	return []reference{{token: t.Token}}
}

// ClosestBaseColor picks the stop nearest the seed colour by weighted OKLCH distance.
type ClosestBaseColor struct{}

func (ClosestBaseColor) Kind() Kind              { return KindClosestBaseColor }
func (ClosestBaseColor) references() []reference { return nil }

func (ClosestBaseColor) resolve(r *resolver) (int, bool) {
	best, bestDist := 0, math.Inf(1)
	for i, s := range r.ramp {
		if d := oklchDistance(s.OKLCH, r.base); d < bestDist {
			best, bestDist = i, d
		}
	}
	return best, false
}

// oklchDistance weights lightness over chroma over hue; hue difference is the
// short way round the wheel, scaled to [0, 0.5].
func oklchDistance(a, b colour.OKLCH) float64 {
	return 2*math.Abs(a.L-b.L) + 1.5*math.Abs(a.C-b.C) + colour.HueDistance(a.H, b.H)/360
}

// LightestWithContrast takes the first stop, from the light end, reaching Ratio
// against Target. Falls back to the darkest stop.
type LightestWithContrast struct {
	Target Target  `json:"against" yaml:"against"`
	Ratio  float64 `json:"ratio" yaml:"ratio"`
}

func (LightestWithContrast) Kind() Kind                { return KindLightestWithContrast }
func (s LightestWithContrast) references() []reference { return s.Target.references() }

func (s LightestWithContrast) resolve(r *resolver) (int, bool) {
	against := r.target(s.Target)
	order := r.lightToDark()
	for _, i := range order {
		if colour.ContrastRatio(r.ramp[i].Hex, against) >= s.Ratio {
			return i, false
		}
	}
	return order[len(order)-1], true
}

// DarkestWithContrast takes the first stop, from the dark end, reaching Ratio
// against Target. Falls back to the lightest stop.
type DarkestWithContrast struct {
	Target Target  `json:"against" yaml:"against"`
	Ratio  float64 `json:"ratio" yaml:"ratio"`
}

func (DarkestWithContrast) Kind() Kind                { return KindDarkestWithContrast }
func (s DarkestWithContrast) references() []reference { return s.Target.references() }

func (s DarkestWithContrast) resolve(r *resolver) (int, bool) {
	against := r.target(s.Target)
	order := r.lightToDark()
	for k := len(order) - 1; k >= 0; k-- {
		if colour.ContrastRatio(r.ramp[order[k]].Hex, against) >= s.Ratio {
			return order[k], false
		}
	}
	return order[0], true
}

// DisabledContent looks for a deliberately weak contrast against Background,
// within [Min, Max] (defaults 1.2 and 2.2), searching outward from the
// background's own stop. When nothing lands in the band, the stop closest to
// it wins, with Fallback taking ties.
type DisabledContent struct {
	Background string  `json:"background" yaml:"background"`
	Fallback   string  `json:"fallback" yaml:"fallback"`
	Min        float64 `json:"min,omitempty" yaml:"min,omitempty"`
	Max        float64 `json:"max,omitempty" yaml:"max,omitempty"`
}

func (DisabledContent) Kind() Kind { return KindDisabledContent }

func (s DisabledContent) references() []reference {
	return []reference{
		{token: s.Background, needsIndex: true},
		{token: s.Fallback, needsIndex: true},
	}
}

func (s DisabledContent) band() (lo, hi float64) {
	lo, hi = s.Min, s.Max
	if lo == 0 && hi == 0 {
		lo, hi = DisabledBandMin, DisabledBandMax
	}
	return lo, hi
}

func (s DisabledContent) resolve(r *resolver) (int, bool) {
	lo, hi := s.band()
	bgIndex := r.index(s.Background)
	bg := r.colour(bgIndex)

	distance := func(i int) float64 {
		ratio := colour.ContrastRatio(r.ramp[i].Hex, bg)
		switch {
		case ratio < lo:
			return lo - ratio
		case ratio > hi:
			return ratio - hi
		default:
			return 0
		}
	}

	best := r.index(s.Fallback)
	bestDist := distance(best)
	for _, i := range outward(bgIndex, len(r.ramp)) {
		d := distance(i)
		if d == 0 {
			return i, false
		}
		if d < bestDist {
			best, bestDist = i, d
		}
	}
	return best, bestDist > 0
}

// ShiftStep offsets a reference token's index, clamped to the ramp.
type ShiftStep struct {
	Reference string `json:"reference" yaml:"reference"`
	Offset    int    `json:"offset" yaml:"offset"`
}

func (ShiftStep) Kind() Kind { return KindShiftStep }

func (s ShiftStep) references() []reference {
	return []reference{{token: s.Reference, needsIndex: true}}
}

func (s ShiftStep) resolve(r *resolver) (int, bool) {
	want := r.index(s.Reference) + s.Offset
	got := max(0, min(len(r.ramp)-1, want))
	return got, got != want
}

// UseSameIndex copies another token's result, sentinels included.
type UseSameIndex struct {
	Reference string `json:"reference" yaml:"reference"`
}

func (UseSameIndex) Kind() Kind { return KindUseSameIndex }

func (s UseSameIndex) references() []reference {
	return []reference{{token: s.Reference}}
}

func (s UseSameIndex) resolve(r *resolver) (int, bool) {
	return r.index(s.Reference), false
}

// BorderAccessible keeps the reference token's stop when it already reaches
// Ratio against Target, otherwise walks outward from it (left first) to the
// nearest stop that does. If none does, the reference stop is kept.
type BorderAccessible struct {
	Reference string  `json:"reference" yaml:"reference"`
	Target    Target  `json:"against" yaml:"against"`
	Ratio     float64 `json:"ratio" yaml:"ratio"`
}

func (BorderAccessible) Kind() Kind { return KindBorderAccessible }

func (s BorderAccessible) references() []reference {
	return append([]reference{{token: s.Reference, needsIndex: true}}, s.Target.references()...)
}

func (s BorderAccessible) resolve(r *resolver) (int, bool) {
	ref := r.index(s.Reference)
	against := r.target(s.Target)
	for _, i := range outward(ref, len(r.ramp)) {
		if colour.ContrastRatio(r.ramp[i].Hex, against) >= s.Ratio {
			return i, false
		}
	}
	return ref, true
}

// ContentOnPrimary picks text for a filled background. It prefers a ramp stop
// reaching Preferred (5:1) nearest the background, then plain black or white
// if one reaches Minimum (4.5:1), and as a last resort the background's own
// stop, which the caller must tolerate.
type ContentOnPrimary struct {
	Background string  `json:"background" yaml:"background"`
	Preferred  float64 `json:"preferred,omitempty" yaml:"preferred,omitempty"`
	Minimum    float64 `json:"minimum,omitempty" yaml:"minimum,omitempty"`
}

func (ContentOnPrimary) Kind() Kind { return KindContentOnPrimary }

func (s ContentOnPrimary) references() []reference {
	return []reference{{token: s.Background, needsIndex: true}}
}

func (s ContentOnPrimary) thresholds() (preferred, minimum float64) {
	preferred, minimum = s.Preferred, s.Minimum
	if preferred == 0 {
		preferred = ContentPreferredContrast
	}
	if minimum == 0 {
		minimum = ContentMinimumContrast
	}
	return preferred, minimum
}

func (s ContentOnPrimary) resolve(r *resolver) (int, bool) {
	preferred, minimum := s.thresholds()
	bgIndex := r.index(s.Background)
	bg := r.colour(bgIndex)

	for _, i := range outward(bgIndex, len(r.ramp)) {
		if colour.ContrastRatio(r.ramp[i].Hex, bg) >= preferred {
			return i, false
		}
	}

	black := colour.ContrastRatio(colour.Black, bg)
	white := colour.ContrastRatio(colour.White, bg)
	if black > white && black >= minimum {
		return SpecialBlack, false
	}
	if white >= minimum {
		return SpecialWhite, false
	}
	return bgIndex, true
}

// outward lists indices of an n-stop ramp starting at centre and alternating
// left then right at growing distance.
func outward(centre, n int) []int {
	out := make([]int, 0, n)
	if centre >= 0 && centre < n {
		out = append(out, centre)
	}
	for d := 1; len(out) < n; d++ {
		if i := centre - d; i >= 0 && i < n {
			out = append(out, i)
		}
		if i := centre + d; i >= 0 && i < n {
			out = append(out, i)
		}
	}
	return out
}
