// Package blade maintains the time-decaying path of recent pointer positions
// that is rendered as the blade ribbon and swept for collisions.
package blade

import "github.com/ayusman/kalari/internal/motion"

// Trail tuning constants.
const (
	// Smoothing is the fraction of the remaining distance the cursor covers
	// toward a new sample each tick. Critically damped follow, not a snap.
	Smoothing = 0.5
	// DecayRate is subtracted from every point's Life each tick; a point is
	// dropped once Life reaches 0. At steady motion the trail holds about
	// 1/DecayRate points.
	DecayRate = 0.12
)

// Point is one blade position with a normalized remaining lifetime.
type Point struct {
	X    float64 `json:"x"`
	Y    float64 `json:"y"`
	Life float64 `json:"life"`
}

// Trail accumulates smoothed pointer positions newest-first.
type Trail struct {
	points  []Point
	cursorX float64
	cursorY float64
	seeded  bool
}

// New creates an empty Trail.
func New() *Trail {
	return &Trail{points: make([]Point, 0, 16)}
}

// Advance applies one tick. When sample is non-nil the cursor is lerped
// toward it and pushed as the newest point with full life. With no sample
// the cursor holds its last position and existing points only decay.
func (t *Trail) Advance(sample *motion.Sample) {
	if sample != nil {
		if !t.seeded {
			// First sample ever: start at the sample instead of lerping
			// from the origin.
			t.cursorX = sample.X
			t.cursorY = sample.Y
			t.seeded = true
		} else {
			t.cursorX += (sample.X - t.cursorX) * Smoothing
			t.cursorY += (sample.Y - t.cursorY) * Smoothing
		}
		t.points = append([]Point{{X: t.cursorX, Y: t.cursorY, Life: 1.0}}, t.points...)
	}

	live := t.points[:0]
	for _, p := range t.points {
		p.Life -= DecayRate
		if p.Life > 0 {
			live = append(live, p)
		}
	}
	t.points = live
}

// Points returns the live trail points, newest first. The returned slice is
// owned by the Trail and only valid until the next Advance.
func (t *Trail) Points() []Point {
	return t.points
}

// Len returns the number of live points.
func (t *Trail) Len() int {
	return len(t.points)
}

// Cursor returns the current smoothed cursor position.
func (t *Trail) Cursor() (x, y float64) {
	return t.cursorX, t.cursorY
}

// Clear drops all points and forgets the cursor position.
func (t *Trail) Clear() {
	t.points = t.points[:0]
	t.seeded = false
	t.cursorX = 0
	t.cursorY = 0
}
