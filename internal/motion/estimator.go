package motion

import "sync"

// Estimation constants.
const (
	// DiffThreshold is the minimum summed per-channel difference for a pixel
	// to count as moved (~35 per channel). Smaller diffs are sensor grain.
	DiffThreshold = 105
	// MinClusterSize is the minimum number of qualifying pixels required to
	// report motion. Isolated specks below this are rejected as noise.
	MinClusterSize = 12
	// Sensitivity amplifies the estimated position's offset from the screen
	// center to compensate for the camera's limited field of view.
	Sensitivity = 1.5
)

// Sample is an estimated gesture position in full-resolution screen space.
type Sample struct {
	X float64
	Y float64
}

// Estimator converts pairs of successive downsampled frames into a single
// estimated pointer position. It keeps one previous frame as history.
type Estimator struct {
	screenW     float64
	screenH     float64
	sensitivity float64
	prev        *Frame
	mu          sync.Mutex
}

// NewEstimator creates an Estimator that maps centroids into a screen of the
// given full-resolution dimensions.
func NewEstimator(screenW, screenH int) *Estimator {
	return &Estimator{
		screenW:     float64(screenW),
		screenH:     float64(screenH),
		sensitivity: Sensitivity,
	}
}

// Estimate compares frame against the previous one and returns the centroid
// of coherent motion, upscaled and amplified into screen space.
//
// The second return value is false when no qualifying motion was found: on
// the very first frame (which only seeds the history slot), on a degenerate
// frame (history untouched), or when fewer than MinClusterSize pixels moved.
// The history slot is replaced on every valid call regardless of outcome.
func (e *Estimator) Estimate(frame *Frame) (Sample, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !frame.valid() {
		return Sample{}, false
	}

	prev := e.prev
	e.prev = frame.Clone()

	if prev == nil || prev.Width != frame.Width || prev.Height != frame.Height {
		return Sample{}, false
	}

	var sumX, sumY, count int
	for y := 0; y < frame.Height; y++ {
		for x := 0; x < frame.Width; x++ {
			i := (y*frame.Width + x) * 3
			d := absDiff(frame.Pix[i], prev.Pix[i]) +
				absDiff(frame.Pix[i+1], prev.Pix[i+1]) +
				absDiff(frame.Pix[i+2], prev.Pix[i+2])
			if d > DiffThreshold {
				sumX += x
				sumY += y
				count++
			}
		}
	}

	if count < MinClusterSize {
		return Sample{}, false
	}

	// Centroid in grid space, upscaled to screen space.
	cx := (float64(sumX)/float64(count) + 0.5) * e.screenW / float64(frame.Width)
	cy := (float64(sumY)/float64(count) + 0.5) * e.screenH / float64(frame.Height)

	// Amplify the offset from the screen center and clamp back into bounds.
	cx = clamp(e.screenW/2+(cx-e.screenW/2)*e.sensitivity, 0, e.screenW)
	cy = clamp(e.screenH/2+(cy-e.screenH/2)*e.sensitivity, 0, e.screenH)

	return Sample{X: cx, Y: cy}, true
}

// Reset clears the frame history so the next call seeds a new baseline.
func (e *Estimator) Reset() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.prev = nil
}

// SetSensitivity overrides the offset amplification factor.
// Values less than or equal to 0 are ignored.
func (e *Estimator) SetSensitivity(s float64) {
	if s <= 0 {
		return
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	e.sensitivity = s
}

func absDiff(a, b uint8) int {
	if a > b {
		return int(a - b)
	}
	return int(b - a)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
