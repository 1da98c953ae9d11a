package curve

import (
	"errors"
	"fmt"
	"math"
	"slices"
)

// Editor errors.
var (
	ErrAlreadyDragging = errors.New("a drag is already in progress")
	ErrNotDragging     = errors.New("no drag in progress")
	ErrIndexOutOfRange = errors.New("point index out of range")
)

// DefaultHitRadius is the pick tolerance used by HitTest, in normalised curve
// space (both axes scaled to [0, 1]).
const DefaultHitRadius = 0.05

// drag is the transient state of one gesture: the grabbed point and the point
// set as it was when the gesture began.
type drag struct {
	index    int
	snapshot []Point
}

// Editor holds the control points of one channel and the state of an ongoing drag.
// It is idle until Press and returns to idle on Release.
type Editor struct {
	channel Channel
	points  []Point
	drag    *drag
}

// NewEditor creates an editor for ch over points. Points are sorted and
// renumbered so that point i sits on step i.
func NewEditor(ch Channel, points []Point) *Editor {
	sorted := Sorted(points)
	for i := range sorted {
		sorted[i].Step = i
		sorted[i].Value = ch.Clamp(sorted[i].Value)
	}
	return &Editor{channel: ch, points: sorted}
}

// Channel returns the channel being edited.
func (e *Editor) Channel() Channel {
	return e.channel
}

// Points returns a copy of the current control points.
func (e *Editor) Points() []Point {
	return slices.Clone(e.points)
}

// Dragging reports whether a drag is in progress and which point it holds.
func (e *Editor) Dragging() (int, bool) {
	if e.drag == nil {
		return -1, false
	}
	return e.drag.index, true
}

// HitTest returns the point nearest to (step, value) if it lies within radius.
// Distances are measured with the step axis scaled by the point count and the
// value axis by the channel domain, so one radius works for every channel.
func (e *Editor) HitTest(step, value, radius float64) (int, bool) {
	if len(e.points) == 0 {
		return -1, false
	}
	lo, hi := e.channel.Domain()
	xScale := float64(max(len(e.points)-1, 1))
	yScale := hi - lo

	best, bestDist := -1, math.Inf(1)
	for i, p := range e.points {
		dx := (float64(p.Step) - step) / xScale
		dy := (p.Value - value) / yScale
		if d := math.Hypot(dx, dy); d < bestDist {
			best, bestDist = i, d
		}
	}
	if bestDist > radius {
		return -1, false
	}
	return best, true
}

// Press starts dragging the point at index, snapshotting the current points.
func (e *Editor) Press(index int) error {
	if e.drag != nil {
		return ErrAlreadyDragging
	}
	if index < 0 || index >= len(e.points) {
		return fmt.Errorf("%w: %d (have %d points)", ErrIndexOutOfRange, index, len(e.points))
	}
	e.drag = &drag{index: index, snapshot: slices.Clone(e.points)}
	return nil
}

// PressAt hit-tests (step, value) and starts a drag on the point found.
// It reports false, leaving the editor idle, when nothing is within radius.
func (e *Editor) PressAt(step, value, radius float64) (bool, error) {
	index, ok := e.HitTest(step, value, radius)
	if !ok {
		return false, nil
	}
	if err := e.Press(index); err != nil {
		return false, err
	}
	return true, nil
}

// Drag moves the held point to value. The new point set is recomputed from the
// snapshot taken at Press, so repeated moves within one gesture do not compound.
func (e *Editor) Drag(value float64) ([]Point, error) {
	if e.drag == nil {
		return nil, ErrNotDragging
	}
	e.points = ApplyDrag(e.drag.snapshot, e.channel, e.drag.index, value)
	return e.Points(), nil
}

// Release ends the gesture (pointer up, leave or cancel) and discards the snapshot.
// Releasing an idle editor is a no-op.
func (e *Editor) Release() {
	e.drag = nil
}

// Resize resamples the points to n steps. Any drag in progress is released
// first since its snapshot no longer matches the point count.
func (e *Editor) Resize(n int) {
	e.Release()
	e.points = Resample(e.points, n)
}

// Set replaces the points outright, ending any drag.
func (e *Editor) Set(points []Point) {
	e.Release()
	e.points = NewEditor(e.channel, points).points
}
