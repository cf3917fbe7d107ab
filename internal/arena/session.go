package arena

import (
	"math/rand"
	"sync"
	"time"

	"github.com/ayusman/kalari/internal/blade"
	"github.com/ayusman/kalari/internal/content"
	"github.com/ayusman/kalari/internal/motion"
)

// Events summarizes what happened during one tick, for audio and logging.
type Events struct {
	Sliced         int
	TargetHits     int
	DistractorHits int
	ComboCue       bool
}

// Snapshot is a copy of the visible simulation state handed to renderers.
type Snapshot struct {
	Phase       Phase         `json:"phase"`
	Score       int           `json:"score"`
	Combo       int           `json:"combo"`
	Lives       int           `json:"lives"`
	Theme       string        `json:"theme,omitempty"`
	Instruction string        `json:"instruction,omitempty"`
	Message     string        `json:"message,omitempty"`
	Objects     []Object      `json:"objects"`
	Particles   []Particle    `json:"particles"`
	Trail       []blade.Point `json:"trail"`
}

// Session is the simulation context: it owns the trail, the active object
// and particle sets, and the round state. All mutation happens inside Step,
// called by the single tick loop; Snapshot is safe to call from elsewhere.
type Session struct {
	mu        sync.Mutex
	round     *Round
	trail     *blade.Trail
	spawner   *Spawner
	rng       *rand.Rand
	objects   []*Object
	particles []Particle
	level     *content.Level
}

// NewSession creates a Session in the menu phase.
func NewSession(seed int64) *Session {
	return &Session{
		round:   NewRound(),
		trail:   blade.New(),
		spawner: NewSpawner(seed),
		rng:     rand.New(rand.NewSource(seed + 1)),
	}
}

// Round exposes the state machine. Intended for inspection; phase
// transitions during operation go through the locked Session methods.
func (s *Session) Round() *Round {
	return s.round
}

// Phase returns the current game phase.
func (s *Session) Phase() Phase {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.round.phase
}

// StartLoading moves the state machine into the loading phase.
func (s *Session) StartLoading() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.round.StartLoading()
}

// Fail moves the state machine into the error phase with a user-facing
// message.
func (s *Session) Fail(message string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.round.Fail(message)
}

// SetLevel installs the level vocabulary used by the spawner.
func (s *Session) SetLevel(level *content.Level) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.level = level
	s.spawner.SetLevel(level)
}

// Level returns the currently loaded level, or nil.
func (s *Session) Level() *content.Level {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.level
}

// Begin enters the playing phase and clears all transient simulation state.
func (s *Session) Begin() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.round.Begin()
	s.trail.Clear()
	s.objects = s.objects[:0]
	s.particles = s.particles[:0]
}

// Step advances the simulation by one tick in strict order: trail update,
// physics integration, collision pass, prune, state-machine countdown,
// spawn. sample is nil on ticks without qualifying motion.
func (s *Session) Step(sample *motion.Sample, dt time.Duration) Events {
	s.mu.Lock()
	defer s.mu.Unlock()

	var ev Events
	if s.round.phase != PhasePlaying {
		return ev
	}

	s.trail.Advance(sample)
	integrateObjects(s.objects)
	s.particles = integrateParticles(s.particles)

	for _, o := range collide(s.objects, s.trail.Points()) {
		ev.Sliced++
		s.particles = append(s.particles, burst(o.X, o.Y, o.Color, s.rng)...)
		if o.IsTarget {
			s.round.RecordTargetHit()
			ev.TargetHits++
			if s.round.Combo() > 1 {
				ev.ComboCue = true
			}
		} else {
			s.round.RecordDistractorHit()
			ev.DistractorHits++
		}
	}

	s.objects = pruneObjects(s.objects)
	s.round.Advance(dt)

	if obj := s.spawner.Advance(dt); obj != nil {
		s.objects = append(s.objects, obj)
	}

	return ev
}

// Snapshot copies the visible state for rendering.
func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap := Snapshot{
		Phase:     s.round.phase,
		Score:     s.round.score,
		Combo:     s.round.combo,
		Lives:     s.round.lives,
		Message:   s.round.message,
		Objects:   make([]Object, 0, len(s.objects)),
		Particles: append([]Particle(nil), s.particles...),
		Trail:     append([]blade.Point(nil), s.trail.Points()...),
	}
	if s.level != nil {
		snap.Theme = s.level.Theme
		snap.Instruction = s.level.Instruction
	}
	for _, o := range s.objects {
		snap.Objects = append(snap.Objects, *o)
	}
	return snap
}
