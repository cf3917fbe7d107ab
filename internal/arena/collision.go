package arena

import "github.com/ayusman/kalari/internal/blade"

// Collision constants.
const (
	// MaxSegments is how many of the most recent trail segments are swept
	// against each object.
	MaxSegments = 5
	// MinTrailPoints is the minimum trail length before any collision
	// testing happens; a single fresh point carries no direction.
	MinTrailPoints = 3
)

// collide sweeps the newest trail segments against every live object and
// marks the first hit per object as sliced. Returns the objects sliced this
// tick. An already-sliced object is never tested again.
func collide(objs []*Object, pts []blade.Point) []*Object {
	if len(pts) < MinTrailPoints {
		return nil
	}

	segs := len(pts) - 1
	if segs > MaxSegments {
		segs = MaxSegments
	}

	var sliced []*Object
	for _, o := range objs {
		if o.Sliced {
			continue
		}
		for i := 0; i < segs; i++ {
			if segmentHitsCircle(pts[i].X, pts[i].Y, pts[i+1].X, pts[i+1].Y, o.X, o.Y, o.Radius) {
				o.Sliced = true
				sliced = append(sliced, o)
				break
			}
		}
	}
	return sliced
}

// segmentHitsCircle reports whether the finite segment (x1,y1)-(x2,y2)
// passes within r of (cx, cy). The projection parameter is clamped to [0,1]
// so the closest point lies on the segment, not the infinite line.
func segmentHitsCircle(x1, y1, x2, y2, cx, cy, r float64) bool {
	dx := x2 - x1
	dy := y2 - y1

	lenSq := dx*dx + dy*dy
	t := 0.0
	if lenSq > 0 {
		t = ((cx-x1)*dx + (cy-y1)*dy) / lenSq
		if t < 0 {
			t = 0
		} else if t > 1 {
			t = 1
		}
	}

	px := x1 + t*dx - cx
	py := y1 + t*dy - cy
	return px*px+py*py <= r*r
}
