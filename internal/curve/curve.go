// Package curve models the per-channel control points used to reshape a ramp.
//
// Each ramp channel (lightness, chroma, hue) carries one control point per ramp
// step. Points are resampled when the step count changes and sculpted locally
// when one of them is dragged.
package curve

import (
	"fmt"
	"math"
	"slices"
)

// Channel identifies a ramp channel and its value domain.
type Channel int

const (
	Lightness Channel = iota
	Chroma
	Hue
)

// defaultValue is used when resampling an empty point set.
const defaultValue = 50

// AllChannels lists every channel in display order.
func AllChannels() []Channel {
	return []Channel{Lightness, Chroma, Hue}
}

// String returns the channel name.
func (c Channel) String() string {
	switch c {
	case Lightness:
		return "lightness"
	case Chroma:
		return "chroma"
	case Hue:
		return "hue"
	default:
		return fmt.Sprintf("channel(%d)", int(c))
	}
}

// ParseChannel converts a channel name (or its first letter) to a Channel.
func ParseChannel(s string) (Channel, error) {
	switch s {
	case "lightness", "l":
		return Lightness, nil
	case "chroma", "c":
		return Chroma, nil
	case "hue", "h":
		return Hue, nil
	default:
		return 0, fmt.Errorf("unknown channel: %s (valid: lightness, chroma, hue)", s)
	}
}

// Domain returns the inclusive value range of the channel.
func (c Channel) Domain() (lo, hi float64) {
	switch c {
	case Lightness:
		return 15, 95
	case Chroma:
		return 0, 100
	case Hue:
		return 0, 360
	default:
		return 0, 100
	}
}

// Clamp limits v to the channel domain.
func (c Channel) Clamp(v float64) float64 {
	lo, hi := c.Domain()
	return math.Max(lo, math.Min(hi, v))
}

// Point is a control point: a ramp step index and a value in the channel's domain.
type Point struct {
	Step  int     `json:"step" yaml:"step"`
	Value float64 `json:"value" yaml:"value"`
}

// Sorted returns a copy of points ordered by step.
func Sorted(points []Point) []Point {
	out := slices.Clone(points)
	slices.SortStableFunc(out, func(a, b Point) int { return a.Step - b.Step })
	return out
}

// Values returns the point values in step order.
func Values(points []Point) []float64 {
	sorted := Sorted(points)
	out := make([]float64, len(sorted))
	for i, p := range sorted {
		out[i] = p.Value
	}
	return out
}

// Resample maps points onto n evenly spaced steps by piecewise-linear
// interpolation over the sorted input. With at most one input point every
// output takes that point's value, or 50 when there are none. Resampling to
// the current count returns the same values.
func Resample(points []Point, n int) []Point {
	if n <= 0 {
		return []Point{}
	}

	sorted := Sorted(points)
	out := make([]Point, n)

	if len(sorted) <= 1 {
		v := float64(defaultValue)
		if len(sorted) == 1 {
			v = sorted[0].Value
		}
		for i := range out {
			out[i] = Point{Step: i, Value: v}
		}
		return out
	}

	last := len(sorted) - 1
	for i := range out {
		pos := 0.0
		if n > 1 {
			pos = float64(i) / float64(n-1) * float64(last)
		}
		lo := int(math.Floor(pos))
		hi := min(lo+1, last)
		frac := pos - float64(lo)
		v := sorted[lo].Value + (sorted[hi].Value-sorted[lo].Value)*frac
		out[i] = Point{Step: i, Value: v}
	}
	return out
}

// Influence is the raised-cosine weight a drag of point dragged has on point j.
// Points further than ceil(total/4) away are unaffected.
func Influence(dragged, j, total int) float64 {
	maxDistance := int(math.Ceil(float64(total) / 4))
	distance := j - dragged
	if distance < 0 {
		distance = -distance
	}
	if maxDistance == 0 || distance > maxDistance {
		if distance == 0 {
			return 1
		}
		return 0
	}
	return math.Cos(float64(distance) / float64(maxDistance) * math.Pi / 2)
}

// ApplyDrag moves the point at index to value and carries its neighbours along
// with it, weighted by Influence. All values derive from original, never from an
// intermediate drag state, and are clamped to the channel domain.
func ApplyDrag(original []Point, ch Channel, index int, value float64) []Point {
	out := slices.Clone(original)
	if index < 0 || index >= len(original) {
		return out
	}

	delta := value - original[index].Value
	for j := range out {
		out[j].Value = ch.Clamp(original[j].Value + delta*Influence(index, j, len(original)))
	}
	return out
}
