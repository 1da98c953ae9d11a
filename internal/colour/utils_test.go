package colour

import (
	"math"
	"testing"
)

func TestLuminance(t *testing.T) {
	tests := []struct {
		name string
		hex  string
		want float64
	}{
		{name: "black", hex: "#000000", want: 0},
		{name: "white", hex: "#FFFFFF", want: 1},
		{name: "pure red", hex: "#FF0000", want: 0.2126},
		{name: "pure green", hex: "#00FF00", want: 0.7152},
		{name: "pure blue", hex: "#0000FF", want: 0.0722},
		// 0x0A/255 = 0.0392 sits on the linear side of the threshold.
		{name: "linear segment", hex: "#0A0A0A", want: (10.0 / 255.0) / 12.92},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Luminance(tt.hex); math.Abs(got-tt.want) > 1e-4 {
				t.Errorf("Luminance(%s) = %v, want %v", tt.hex, got, tt.want)
			}
		})
	}
}

func TestContrastRatio(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		want float64
	}{
		{name: "black on white", a: Black, b: White, want: 21},
		{name: "white on black", a: White, b: Black, want: 21},
		{name: "same colour", a: "#6366F1", b: "#6366F1", want: 1},
		{name: "grey on white", a: "#767676", b: White, want: 4.54},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ContrastRatio(tt.a, tt.b); math.Abs(got-tt.want) > 0.01 {
				t.Errorf("ContrastRatio(%s, %s) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestContrastRatioSymmetryAndFloor(t *testing.T) {
	colours := []string{Black, White, "#6366F1", "#767676", "#F59E0B", "#10B981", "#1E1B4B", "#EEF2FF"}
	for _, a := range colours {
		if got := ContrastRatio(a, a); got != 1 {
			t.Errorf("ContrastRatio(%s, %s) = %v, want exactly 1", a, a, got)
		}
		for _, b := range colours {
			ab := ContrastRatio(a, b)
			ba := ContrastRatio(b, a)
			if ab != ba {
				t.Errorf("ContrastRatio not symmetric for %s/%s: %v vs %v", a, b, ab, ba)
			}
			if ab < 1 || ab > ContrastRatioMax+1e-9 {
				t.Errorf("ContrastRatio(%s, %s) = %v, want within [1, 21]", a, b, ab)
			}
		}
	}
}

func TestBestContrast(t *testing.T) {
	tests := []struct {
		bg   string
		want string
	}{
		{bg: White, want: Black},
		{bg: "#EEF2FF", want: Black},
		{bg: Black, want: White},
		{bg: "#1E1B4B", want: White},
	}

	for _, tt := range tests {
		got := BestContrast(tt.bg)
		if got.Color != tt.want {
			t.Errorf("BestContrast(%s).Color = %s, want %s", tt.bg, got.Color, tt.want)
		}
		if other := ContrastRatio(otherOf(got.Color), tt.bg); other > got.Ratio {
			t.Errorf("BestContrast(%s) ratio %v lower than alternative %v", tt.bg, got.Ratio, other)
		}
	}
}

func TestGrade(t *testing.T) {
	tests := []struct {
		ratio float64
		want  string
	}{
		{21, "AAA"},
		{7, "AAA"},
		{4.5, "AA"},
		{3.5, "AA Large"},
		{2.9, "Fail"},
	}
	for _, tt := range tests {
		if got := Grade(tt.ratio); got != tt.want {
			t.Errorf("Grade(%v) = %s, want %s", tt.ratio, got, tt.want)
		}
	}
}

func TestHueDistance(t *testing.T) {
	tests := []struct {
		h1, h2 float64
		want   float64
	}{
		{10, 350, 20},
		{0, 180, 180},
		{90, 45, 45},
		{-10, 10, 20},
	}
	for _, tt := range tests {
		if got := HueDistance(tt.h1, tt.h2); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("HueDistance(%v, %v) = %v, want %v", tt.h1, tt.h2, got, tt.want)
		}
	}
}

func otherOf(c string) string {
	if c == Black {
		return White
	}
	return Black
}
