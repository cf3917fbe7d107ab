// Package audio plays the game's feedback cues through the system speaker.
// Cues are fire-and-forget: a missing or failed audio device never affects
// game state.
package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

// Cue identifies one of the four feedback sounds.
type Cue int

const (
	// CueSlash plays when the blade cuts through any object.
	CueSlash Cue = iota
	// CueTargetHit plays when a target is sliced.
	CueTargetHit
	// CueDistractorHit plays when a distractor is sliced.
	CueDistractorHit
	// CueCombo plays when a combo of two or more is extended.
	CueCombo
)

// Cues is the cue-playing interface. Noop stands in when audio is disabled
// or unavailable.
type Cues interface {
	Play(c Cue)
}

// Noop discards all cues.
type Noop struct{}

func (Noop) Play(Cue) {}

// Player synthesizes cues into a shared beep mixer.
type Player struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
}

// NewPlayer creates a Player. Initialize must be called before cues sound.
func NewPlayer() *Player {
	return &Player{mixer: &beep.Mixer{}}
}

// Initialize opens the speaker and attaches the mixer.
func (p *Player) Initialize() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*50)); err != nil {
		return err
	}

	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// Play queues a cue. Before Initialize, or after a failed Initialize, this
// is a silent no-op.
func (p *Player) Play(c Cue) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}

	var streamer beep.Streamer
	switch c {
	case CueSlash:
		streamer = beep.Take(sampleRate.N(time.Millisecond*120), NewSwishGenerator(sampleRate))
	case CueTargetHit:
		streamer = beep.Take(sampleRate.N(time.Millisecond*180), NewChimeGenerator(sampleRate, 880))
	case CueDistractorHit:
		streamer = beep.Take(sampleRate.N(time.Millisecond*200), NewBuzzGenerator(sampleRate, 110))
	case CueCombo:
		streamer = beep.Take(sampleRate.N(time.Millisecond*300), NewArpeggioGenerator(sampleRate))
	default:
		return
	}

	speaker.Lock()
	p.mixer.Add(streamer)
	speaker.Unlock()
}

// Cleanup silences the mixer.
// beep doesn't provide a Close() for the speaker; clearing the mixer is
// enough to stop all cue playback.
func (p *Player) Cleanup() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}

	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	p.initialized = false
}
