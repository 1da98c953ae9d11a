package curve

import (
	"math"

	"github.com/jmylchreest/ramptone/internal/colour"
)

// unchanged is the tolerance below which a curve value is taken to match the
// generated stop, leaving that component exactly as generated.
const unchanged = 1e-9

// Channels holds the control points of every channel of a ramp. A nil or
// mismatched slice leaves that channel as generated.
type Channels struct {
	Lightness []Point `json:"lightness,omitempty" yaml:"lightness,omitempty"`
	Chroma    []Point `json:"chroma,omitempty" yaml:"chroma,omitempty"`
	Hue       []Point `json:"hue,omitempty" yaml:"hue,omitempty"`
}

// Get returns the points of one channel.
func (c Channels) Get(ch Channel) []Point {
	switch ch {
	case Lightness:
		return c.Lightness
	case Chroma:
		return c.Chroma
	case Hue:
		return c.Hue
	default:
		return nil
	}
}

// With returns a copy of c with the points of one channel replaced.
func (c Channels) With(ch Channel, points []Point) Channels {
	switch ch {
	case Lightness:
		c.Lightness = points
	case Chroma:
		c.Chroma = points
	case Hue:
		c.Hue = points
	}
	return c
}

// Empty reports whether no channel carries points.
func (c Channels) Empty() bool {
	return len(c.Lightness) == 0 && len(c.Chroma) == 0 && len(c.Hue) == 0
}

// Resample resamples every non-empty channel to n steps.
func (c Channels) Resample(n int) Channels {
	for _, ch := range AllChannels() {
		if pts := c.Get(ch); len(pts) > 0 {
			c = c.With(ch, Resample(pts, n))
		}
	}
	return c
}

// ToValue converts an OKLCH component to the channel's curve domain.
func (ch Channel) ToValue(o colour.OKLCH) float64 {
	switch ch {
	case Lightness:
		return o.L * 100
	case Chroma:
		return o.C / colour.MaxChroma * 100
	case Hue:
		return o.H
	default:
		return defaultValue
	}
}

// FromValue writes a curve value back into the matching OKLCH component.
func (ch Channel) FromValue(o colour.OKLCH, v float64) colour.OKLCH {
	v = ch.Clamp(v)
	switch ch {
	case Lightness:
		o.L = v / 100
	case Chroma:
		o.C = v / 100 * colour.MaxChroma
	case Hue:
		o.H = colour.NormaliseHue(v)
	}
	return o
}

// FromRamp seeds one point per stop for every channel from a generated ramp.
func FromRamp(r colour.Ramp) Channels {
	var c Channels
	for _, ch := range AllChannels() {
		pts := make([]Point, len(r))
		for i, s := range r {
			pts[i] = Point{Step: i, Value: ch.ToValue(s.OKLCH)}
		}
		c = c.With(ch, pts)
	}
	return c
}

// Apply returns a new ramp with each channel's curve values written over the
// generated stops. Channels whose point count differs from the ramp length are
// ignored; the input ramp is not modified.
func Apply(r colour.Ramp, c Channels) colour.Ramp {
	out := make(colour.Ramp, len(r))
	copy(out, r)

	for _, ch := range AllChannels() {
		values := Values(c.Get(ch))
		if len(values) != len(r) {
			continue
		}
		for i := range out {
			if math.Abs(values[i]-ch.ToValue(r[i].OKLCH)) < unchanged {
				continue
			}
			out[i].OKLCH = ch.FromValue(out[i].OKLCH, values[i])
		}
	}

	for i := range out {
		if out[i] != r[i] {
			out[i] = colour.NewStop(out[i].OKLCH)
		}
	}
	return out
}
