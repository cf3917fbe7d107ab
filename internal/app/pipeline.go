package app

import (
	"log"
	"time"

	"github.com/ayusman/kalari/internal/arena"
	"github.com/ayusman/kalari/internal/audio"
	"github.com/ayusman/kalari/internal/motion"
)

// TickInterval is the fixed simulation step, ~30 ticks per second.
const TickInterval = 33 * time.Millisecond

// runPipeline is the main game loop. Each tick it reads one camera frame,
// estimates a motion sample, advances the simulation by exactly one step,
// and plays the cues for whatever the step reported.
//
// The loop exits when the stop channel closes or when the session leaves
// the playing phase (game over or error); a restart launches a fresh loop.
func (a *App) runPipeline(stopCh chan struct{}) {
	defer a.finish(stopCh)

	ticker := time.NewTicker(TickInterval)
	defer ticker.Stop()

	for {
		select {
		case <-stopCh:
			return
		case <-ticker.C:
			frame, err := a.config.Frames.ReadFrame()
			if err != nil {
				// Transient read failures happen during camera warm-up;
				// the simulation keeps its previous state.
				continue
			}

			var sample *motion.Sample
			if s, ok := a.estimator.Estimate(frame); ok {
				sample = &s
			}

			ev := a.config.Session.Step(sample, TickInterval)
			a.playCues(ev)

			if phase := a.config.Session.Phase(); phase != arena.PhasePlaying {
				snap := a.config.Session.Snapshot()
				log.Printf("Round ended (%s): score %d", phase, snap.Score)
				return
			}
		}
	}
}

// playCues maps one tick's events onto audio cues.
func (a *App) playCues(ev arena.Events) {
	if ev.Sliced > 0 {
		a.config.Cues.Play(audio.CueSlash)
	}
	if ev.TargetHits > 0 {
		a.config.Cues.Play(audio.CueTargetHit)
	}
	if ev.DistractorHits > 0 {
		a.config.Cues.Play(audio.CueDistractorHit)
	}
	if ev.ComboCue {
		a.config.Cues.Play(audio.CueCombo)
	}
}
