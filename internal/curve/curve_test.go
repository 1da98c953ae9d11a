package curve

import (
	"math"
	"testing"
)

func linearPoints(n int, from, to float64) []Point {
	pts := make([]Point, n)
	for i := range pts {
		t := 0.0
		if n > 1 {
			t = float64(i) / float64(n-1)
		}
		pts[i] = Point{Step: i, Value: from + (to-from)*t}
	}
	return pts
}

func TestResampleIdentity(t *testing.T) {
	points := []Point{{0, 20}, {1, 33}, {2, 31}, {3, 60}, {4, 61}, {5, 90}}
	got := Resample(points, len(points))
	for i := range points {
		if got[i].Step != points[i].Step || math.Abs(got[i].Value-points[i].Value) > 1e-9 {
			t.Errorf("Resample identity: point %d = %+v, want %+v", i, got[i], points[i])
		}
	}
}

func TestResampleLinear(t *testing.T) {
	tests := []struct {
		name string
		n    int
	}{
		{name: "upsample", n: 20},
		{name: "downsample", n: 4},
		{name: "single", n: 1},
	}

	points := linearPoints(12, 15, 95)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Resample(points, tt.n)
			if len(got) != tt.n {
				t.Fatalf("Resample returned %d points, want %d", len(got), tt.n)
			}
			want := linearPoints(tt.n, 15, 95)
			for i := range got {
				if got[i].Step != i {
					t.Errorf("point %d has step %d", i, got[i].Step)
				}
				if math.Abs(got[i].Value-want[i].Value) > 1e-9 {
					t.Errorf("point %d = %v, want %v", i, got[i].Value, want[i].Value)
				}
			}
		})
	}
}

func TestResampleUnsortedInput(t *testing.T) {
	points := []Point{{2, 30}, {0, 10}, {1, 20}}
	got := Resample(points, 5)
	want := []float64{10, 15, 20, 25, 30}
	for i := range want {
		if math.Abs(got[i].Value-want[i]) > 1e-9 {
			t.Errorf("point %d = %v, want %v", i, got[i].Value, want[i])
		}
	}
}

func TestResampleDegenerate(t *testing.T) {
	tests := []struct {
		name   string
		points []Point
		want   float64
	}{
		{name: "no points", points: nil, want: 50},
		{name: "one point", points: []Point{{Step: 3, Value: 72}}, want: 72},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Resample(tt.points, 6)
			if len(got) != 6 {
				t.Fatalf("Resample returned %d points, want 6", len(got))
			}
			for i, p := range got {
				if p.Value != tt.want || p.Step != i {
					t.Errorf("point %d = %+v, want {Step:%d Value:%v}", i, p, i, tt.want)
				}
			}
		})
	}

	if got := Resample(linearPoints(4, 0, 1), 0); len(got) != 0 {
		t.Errorf("Resample to 0 returned %d points", len(got))
	}
}

func TestResampleRoundTripKeepsCount(t *testing.T) {
	points := linearPoints(12, 20, 80)
	points[5].Value = 70
	got := Resample(Resample(points, 20), 12)
	if len(got) != 12 {
		t.Fatalf("round trip returned %d points", len(got))
	}
	if math.Abs(got[0].Value-20) > 1e-9 || math.Abs(got[11].Value-80) > 1e-9 {
		t.Errorf("round trip moved endpoints: %v .. %v", got[0].Value, got[11].Value)
	}
}

func TestInfluence(t *testing.T) {
	tests := []struct {
		name            string
		dragged, j, tot int
		want            float64
	}{
		{name: "self", dragged: 6, j: 6, tot: 12, want: 1},
		{name: "neighbour", dragged: 6, j: 7, tot: 12, want: math.Cos(1.0 / 3 * math.Pi / 2)},
		{name: "two away", dragged: 6, j: 4, tot: 12, want: math.Cos(2.0 / 3 * math.Pi / 2)},
		{name: "edge of range", dragged: 6, j: 9, tot: 12, want: 0},
		{name: "beyond range", dragged: 6, j: 0, tot: 12, want: 0},
		{name: "small curve", dragged: 0, j: 1, tot: 4, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Influence(tt.dragged, tt.j, tt.tot); math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("Influence(%d, %d, %d) = %v, want %v", tt.dragged, tt.j, tt.tot, got, tt.want)
			}
		})
	}
}

func TestApplyDragLocality(t *testing.T) {
	original := linearPoints(12, 20, 80)
	const delta = 10.0
	got := ApplyDrag(original, Lightness, 6, original[6].Value+delta)

	if math.Abs(got[6].Value-(original[6].Value+delta)) > 1e-9 {
		t.Errorf("dragged point = %v, want %v", got[6].Value, original[6].Value+delta)
	}
	for _, j := range []int{0, 11} {
		if got[j].Value != original[j].Value {
			t.Errorf("point %d moved from %v to %v", j, original[j].Value, got[j].Value)
		}
	}
	for _, j := range []int{5, 7} {
		moved := got[j].Value - original[j].Value
		if moved <= 0 || moved >= delta {
			t.Errorf("neighbour %d moved by %v, want within (0, %v)", j, moved, delta)
		}
	}
	// Input must be left untouched.
	if original[6].Value != linearPoints(12, 20, 80)[6].Value {
		t.Error("ApplyDrag mutated its input")
	}
}

func TestApplyDragClamps(t *testing.T) {
	original := linearPoints(8, 20, 90)
	got := ApplyDrag(original, Lightness, 7, 200)
	lo, hi := Lightness.Domain()
	for i, p := range got {
		if p.Value < lo || p.Value > hi {
			t.Errorf("point %d = %v outside [%v, %v]", i, p.Value, lo, hi)
		}
	}
	if got[7].Value != hi {
		t.Errorf("dragged point = %v, want clamped to %v", got[7].Value, hi)
	}
}

func TestApplyDragOutOfRange(t *testing.T) {
	original := linearPoints(4, 20, 80)
	got := ApplyDrag(original, Chroma, 9, 50)
	for i := range original {
		if got[i] != original[i] {
			t.Errorf("out-of-range drag changed point %d", i)
		}
	}
}

func TestParseChannel(t *testing.T) {
	for _, ch := range AllChannels() {
		got, err := ParseChannel(ch.String())
		if err != nil || got != ch {
			t.Errorf("ParseChannel(%q) = %v, %v", ch.String(), got, err)
		}
	}
	if _, err := ParseChannel("alpha"); err == nil {
		t.Error("ParseChannel(alpha) should fail")
	}
}
