package curve

import "math"

// alpha selects the centripetal parameterisation (tension 0.5), which avoids
// cusps and self-intersections between unevenly spaced points.
const alpha = 0.5

// minKnotInterval replaces zero-length knot intervals produced by the
// duplicated virtual endpoints.
const minKnotInterval = 1e-4

// Vec is a sample on the rendered curve: X is the (fractional) step, Y the value.
type Vec struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Spline samples a centripetal Catmull-Rom curve through points (taken in step
// order). Each span between consecutive points yields segments samples and the
// final point closes the curve, so the output starts and ends exactly on the
// first and last control points. The curve is for display only; ramp values
// always come from the points themselves.
func Spline(points []Point, segments int) []Vec {
	sorted := Sorted(points)
	switch len(sorted) {
	case 0:
		return []Vec{}
	case 1:
		return []Vec{toVec(sorted[0])}
	}
	if segments < 1 {
		segments = 1
	}

	ctrl := make([]Vec, 0, len(sorted)+2)
	ctrl = append(ctrl, toVec(sorted[0]))
	for _, p := range sorted {
		ctrl = append(ctrl, toVec(p))
	}
	ctrl = append(ctrl, toVec(sorted[len(sorted)-1]))

	out := make([]Vec, 0, (len(sorted)-1)*segments+1)
	for i := 0; i+3 < len(ctrl); i++ {
		p0, p1, p2, p3 := ctrl[i], ctrl[i+1], ctrl[i+2], ctrl[i+3]
		for s := 0; s < segments; s++ {
			out = append(out, catmullRom(p0, p1, p2, p3, float64(s)/float64(segments)))
		}
	}
	out = append(out, ctrl[len(ctrl)-2])
	return out
}

// catmullRom evaluates the span p1→p2 at u ∈ [0,1) using the Barry–Goldman
// pyramid over non-uniform knots.
func catmullRom(p0, p1, p2, p3 Vec, u float64) Vec {
	t0 := 0.0
	t1 := t0 + knotInterval(p0, p1)
	t2 := t1 + knotInterval(p1, p2)
	t3 := t2 + knotInterval(p2, p3)
	t := t1 + (t2-t1)*u

	a1 := lerpKnots(p0, p1, t0, t1, t)
	a2 := lerpKnots(p1, p2, t1, t2, t)
	a3 := lerpKnots(p2, p3, t2, t3, t)
	b1 := lerpKnots(a1, a2, t0, t2, t)
	b2 := lerpKnots(a2, a3, t1, t3, t)
	return lerpKnots(b1, b2, t1, t2, t)
}

func knotInterval(a, b Vec) float64 {
	d := math.Pow(math.Hypot(b.X-a.X, b.Y-a.Y), alpha)
	if d < minKnotInterval {
		return 1
	}
	return d
}

// lerpKnots interpolates between a (at knot ta) and b (at knot tb).
func lerpKnots(a, b Vec, ta, tb, t float64) Vec {
	w := (t - ta) / (tb - ta)
	return Vec{
		X: a.X + (b.X-a.X)*w,
		Y: a.Y + (b.Y-a.Y)*w,
	}
}

func toVec(p Point) Vec {
	return Vec{X: float64(p.Step), Y: p.Value}
}
