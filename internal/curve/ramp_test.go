package curve

import (
	"math"
	"testing"

	"github.com/jmylchreest/ramptone/internal/colour"
)

func TestFromRampApplyRoundTrip(t *testing.T) {
	ramp := colour.GenerateRamp("#6366F1", 12, 0.5, 0.5)
	channels := FromRamp(ramp)

	for _, ch := range AllChannels() {
		if got := len(channels.Get(ch)); got != 12 {
			t.Errorf("%s has %d points, want 12", ch, got)
		}
	}

	out := Apply(ramp, channels)
	for i := range ramp {
		if out[i].Hex != ramp[i].Hex {
			t.Errorf("stop %d: %s after applying unedited curves, want %s", i, out[i].Hex, ramp[i].Hex)
		}
	}
}

func TestApplyLightnessCurve(t *testing.T) {
	ramp := colour.GenerateRamp("#6366F1", 12, 0.5, 0.5)
	channels := FromRamp(ramp)
	channels.Lightness = ApplyDrag(channels.Lightness, Lightness, 6, channels.Lightness[6].Value+10)

	out := Apply(ramp, channels)
	if math.Abs(out[6].OKLCH.L-(ramp[6].OKLCH.L+0.1)) > 1e-9 {
		t.Errorf("stop 6 L = %v, want %v", out[6].OKLCH.L, ramp[6].OKLCH.L+0.1)
	}
	if out[6].Hex == ramp[6].Hex {
		t.Error("stop 6 hex unchanged after lightness edit")
	}
	if out[0] != ramp[0] || out[11] != ramp[11] {
		t.Error("stops outside the drag influence changed")
	}
	if out[6].Hex != colour.OKLCHToHex(out[6].OKLCH) {
		t.Error("edited stop hex and oklch disagree")
	}
	// Input ramp is untouched.
	if ramp[6] != colour.GenerateRamp("#6366F1", 12, 0.5, 0.5)[6] {
		t.Error("Apply mutated its input ramp")
	}
}

func TestApplyIgnoresMismatchedChannels(t *testing.T) {
	ramp := colour.GenerateRamp("#10B981", 8, 0.5, 0.5)
	channels := Channels{Hue: linearPoints(5, 0, 360)}
	out := Apply(ramp, channels)
	for i := range ramp {
		if out[i] != ramp[i] {
			t.Errorf("stop %d changed by a mismatched hue curve", i)
		}
	}
}

func TestApplyHueCurveWraps(t *testing.T) {
	ramp := colour.GenerateRamp("#10B981", 4, 0.5, 0.5)
	channels := Channels{Hue: []Point{{0, 0}, {1, 120}, {2, 240}, {3, 360}}}
	out := Apply(ramp, channels)
	if out[3].OKLCH.H != 0 {
		t.Errorf("hue 360 stored as %v, want 0", out[3].OKLCH.H)
	}
}

func TestChannelsResample(t *testing.T) {
	channels := FromRamp(colour.GenerateRamp("#6366F1", 12, 0.5, 0.5))
	channels.Hue = nil
	got := channels.Resample(16)
	if len(got.Lightness) != 16 || len(got.Chroma) != 16 {
		t.Errorf("Resample(16) gave %d/%d points", len(got.Lightness), len(got.Chroma))
	}
	if len(got.Hue) != 0 {
		t.Error("Resample populated an empty channel")
	}
	if got.Empty() {
		t.Error("Empty() true for populated channels")
	}
	if !(Channels{}).Empty() {
		t.Error("Empty() false for zero Channels")
	}
}
