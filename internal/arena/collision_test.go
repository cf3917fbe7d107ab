package arena

import (
	"testing"

	"github.com/ayusman/kalari/internal/blade"
)

func trailOf(coords ...[2]float64) []blade.Point {
	pts := make([]blade.Point, len(coords))
	for i, c := range coords {
		pts[i] = blade.Point{X: c[0], Y: c[1], Life: 1.0 - float64(i)*0.1}
	}
	return pts
}

func TestSegmentHitsCircle(t *testing.T) {
	tests := []struct {
		name                   string
		x1, y1, x2, y2         float64
		cx, cy, r              float64
		want                   bool
	}{
		{
			name: "segment through center",
			x1:   0, y1: 100, x2: 200, y2: 100,
			cx: 100, cy: 100, r: 50,
			want: true,
		},
		{
			name: "segment far below",
			x1:   0, y1: 100, x2: 200, y2: 100,
			cx: 100, cy: 300, r: 50,
			want: false,
		},
		{
			name: "closest point clamped to endpoint",
			x1:   0, y1: 0, x2: 10, y2: 0,
			cx: 100, cy: 0, r: 50,
			want: false, // infinite line would hit, finite segment must not
		},
		{
			name: "endpoint grazes circle",
			x1:   0, y1: 0, x2: 60, y2: 0,
			cx: 100, cy: 0, r: 50,
			want: true,
		},
		{
			name: "degenerate zero-length segment inside",
			x1:   100, y1: 90, x2: 100, y2: 90,
			cx: 100, cy: 100, r: 50,
			want: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := segmentHitsCircle(tt.x1, tt.y1, tt.x2, tt.y2, tt.cx, tt.cy, tt.r)
			if got != tt.want {
				t.Errorf("segmentHitsCircle() = %v, want %v", got, tt.want)
			}

			// Swapping the endpoints must never change the result.
			flipped := segmentHitsCircle(tt.x2, tt.y2, tt.x1, tt.y1, tt.cx, tt.cy, tt.r)
			if flipped != got {
				t.Error("result depends on segment direction")
			}
		})
	}
}

func TestCollide_SlicesObjectOnPath(t *testing.T) {
	obj := &Object{ID: "a", X: 100, Y: 100, Radius: 50}
	pts := trailOf([2]float64{200, 100}, [2]float64{0, 100}, [2]float64{0, 200})

	sliced := collide([]*Object{obj}, pts)
	if len(sliced) != 1 || sliced[0] != obj {
		t.Fatalf("sliced = %v, want the object on the blade path", sliced)
	}
	if !obj.Sliced {
		t.Error("hit object should be marked sliced")
	}
}

func TestCollide_MissesDistantObject(t *testing.T) {
	obj := &Object{ID: "a", X: 100, Y: 300, Radius: 50}
	pts := trailOf([2]float64{200, 100}, [2]float64{0, 100}, [2]float64{0, 120})

	if sliced := collide([]*Object{obj}, pts); len(sliced) != 0 {
		t.Errorf("sliced = %v, want none", sliced)
	}
	if obj.Sliced {
		t.Error("distant object must not be sliced")
	}
}

func TestCollide_NeverSlicesTwice(t *testing.T) {
	obj := &Object{ID: "a", X: 100, Y: 100, Radius: 50}
	pts := trailOf([2]float64{200, 100}, [2]float64{0, 100}, [2]float64{0, 200})

	if n := len(collide([]*Object{obj}, pts)); n != 1 {
		t.Fatalf("first pass sliced %d, want 1", n)
	}
	if n := len(collide([]*Object{obj}, pts)); n != 0 {
		t.Errorf("second pass sliced %d, want 0", n)
	}
}

func TestCollide_RequiresThreePoints(t *testing.T) {
	obj := &Object{ID: "a", X: 100, Y: 100, Radius: 50}
	pts := trailOf([2]float64{200, 100}, [2]float64{0, 100})

	if sliced := collide([]*Object{obj}, pts); len(sliced) != 0 {
		t.Error("fewer than three trail points should disable collision testing")
	}
}

func TestCollide_OnlyRecentSegmentsTested(t *testing.T) {
	// Object sits on the oldest segment of a long trail; only the newest
	// five segments are swept, so it must survive.
	obj := &Object{ID: "a", X: 600, Y: 0, Radius: 10}
	pts := trailOf(
		[2]float64{0, 0}, [2]float64{10, 0}, [2]float64{20, 0},
		[2]float64{30, 0}, [2]float64{40, 0}, [2]float64{50, 0},
		[2]float64{590, 0}, [2]float64{610, 0},
	)

	if sliced := collide([]*Object{obj}, pts); len(sliced) != 0 {
		t.Error("segments beyond the recent window should not be swept")
	}
}

func TestCollide_FirstSegmentWinsPerObject(t *testing.T) {
	// Two objects on different segments are both sliced in one pass, each
	// reported exactly once.
	a := &Object{ID: "a", X: 5, Y: 0, Radius: 4}
	b := &Object{ID: "b", X: 25, Y: 0, Radius: 4}
	pts := trailOf([2]float64{0, 0}, [2]float64{10, 0}, [2]float64{30, 0})

	sliced := collide([]*Object{a, b}, pts)
	if len(sliced) != 2 {
		t.Fatalf("sliced %d objects, want 2", len(sliced))
	}
}
