package arena

import (
	"math/rand"
	"time"

	"github.com/ayusman/kalari/internal/content"
)

// Spawn tuning constants.
const (
	// SpawnInterval is the minimum time between spawns.
	SpawnInterval = 900 * time.Millisecond
	// TargetProbability is the chance a spawned object is a target.
	TargetProbability = 0.65
	// SpawnMargin keeps launch positions away from the playfield edges.
	SpawnMargin = 60.0
	// ObjectRadius is the bounding-circle radius of spawned objects.
	ObjectRadius = 40.0
)

var objectPalette = []string{
	"#ff6b6b", "#ffd93d", "#6bcb77", "#4d96ff", "#b980f0", "#ff9f45",
}

// Spawner creates labeled objects from the current level's vocabulary,
// gated to at most one object per SpawnInterval.
type Spawner struct {
	rng     *rand.Rand
	level   *content.Level
	elapsed time.Duration
}

// NewSpawner creates a Spawner with its own deterministic random source.
func NewSpawner(seed int64) *Spawner {
	return &Spawner{rng: rand.New(rand.NewSource(seed))}
}

// SetLevel replaces the vocabulary objects are drawn from.
func (s *Spawner) SetLevel(level *content.Level) {
	s.level = level
}

// Advance accumulates elapsed tick time and returns a new object once the
// spawn interval has passed, or nil. Without a loaded vocabulary the gate is
// consumed silently and no object is produced.
func (s *Spawner) Advance(dt time.Duration) *Object {
	s.elapsed += dt
	if s.elapsed < SpawnInterval {
		return nil
	}
	s.elapsed = 0

	if s.level == nil {
		return nil
	}

	isTarget := s.rng.Float64() < TargetProbability
	vocab := s.level.Targets
	if !isTarget {
		vocab = s.level.Distractors
	}
	if len(vocab) == 0 {
		return nil
	}

	// Launched from below the playfield with a strong upward component so
	// the object arcs up and falls back under gravity.
	return &Object{
		ID:        newObjectID(),
		Text:      vocab[s.rng.Intn(len(vocab))],
		X:         SpawnMargin + s.rng.Float64()*(PlayfieldWidth-2*SpawnMargin),
		Y:         PlayfieldHeight + ObjectRadius,
		VX:        (s.rng.Float64() - 0.5) * 4,
		VY:        -(11 + s.rng.Float64()*4),
		VRotation: (s.rng.Float64() - 0.5) * 0.2,
		IsTarget:  isTarget,
		Radius:    ObjectRadius,
		Color:     objectPalette[s.rng.Intn(len(objectPalette))],
	}
}
