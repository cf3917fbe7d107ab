package arena

import (
	"math"
	"math/rand"
)

// Particle constants.
const (
	// BurstSize is the number of particles emitted per slice event.
	BurstSize = 16
	// ParticleDecay is subtracted from a particle's Life each tick.
	ParticleDecay = 0.04
)

// Particle is a transient visual fragment emitted when an object is sliced.
type Particle struct {
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	VX    float64 `json:"vx"`
	VY    float64 `json:"vy"`
	Life  float64 `json:"life"`
	Color string  `json:"color"`
	Size  float64 `json:"size"`
}

// burst emits BurstSize particles radiating from (x, y) at randomized angle
// and speed, colored to match the sliced object.
func burst(x, y float64, color string, rng *rand.Rand) []Particle {
	ps := make([]Particle, 0, BurstSize)
	for i := 0; i < BurstSize; i++ {
		angle := rng.Float64() * 2 * math.Pi
		speed := 2 + rng.Float64()*6
		ps = append(ps, Particle{
			X:     x,
			Y:     y,
			VX:    math.Cos(angle) * speed,
			VY:    math.Sin(angle)*speed - 2,
			Life:  1.0,
			Color: color,
			Size:  2 + rng.Float64()*3,
		})
	}
	return ps
}
