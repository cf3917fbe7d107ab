package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
)

// SwishGenerator produces a short filtered-noise sweep for the blade slash.
type SwishGenerator struct {
	sr   beep.SampleRate
	pos  int
	seed int64
	prev float64
}

// NewSwishGenerator creates a swish sound generator.
func NewSwishGenerator(sr beep.SampleRate) *SwishGenerator {
	return &SwishGenerator{sr: sr, seed: 0x5eed}
}

func (g *SwishGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)

		// Quick attack, fast decay
		envelope := math.Exp(-t * 25)

		g.seed = (g.seed*1103515245 + 12345) & 0x7fffffff
		noise := float64(g.seed)/float64(0x7fffffff)*2 - 1

		// One-pole low pass opening over time gives the "whoosh" motion
		alpha := 0.15 + 0.6*math.Min(t*10, 1)
		g.prev += alpha * (noise - g.prev)

		sample := 0.3 * envelope * g.prev
		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *SwishGenerator) Err() error {
	return nil
}

// ChimeGenerator produces a bright decaying tone for target hits.
type ChimeGenerator struct {
	sr   beep.SampleRate
	freq float64
	pos  int
}

// NewChimeGenerator creates a chime generator at the given base frequency.
func NewChimeGenerator(sr beep.SampleRate, freq float64) *ChimeGenerator {
	return &ChimeGenerator{sr: sr, freq: freq}
}

func (g *ChimeGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)

		envelope := math.Exp(-t * 12)
		sample := 0.0
		sample += 0.25 * math.Sin(2*math.Pi*g.freq*t)
		sample += 0.12 * math.Sin(2*math.Pi*g.freq*1.5*t)
		sample *= envelope

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *ChimeGenerator) Err() error {
	return nil
}

// BuzzGenerator produces a harsh low buzz for distractor hits.
type BuzzGenerator struct {
	sr   beep.SampleRate
	freq float64
	pos  int
}

// NewBuzzGenerator creates a buzz sound generator.
func NewBuzzGenerator(sr beep.SampleRate, freq float64) *BuzzGenerator {
	return &BuzzGenerator{sr: sr, freq: freq}
}

func (g *BuzzGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)

		// Stacked odd harmonics for a harsh buzz
		sample := 0.0
		sample += 0.3 * math.Sin(2*math.Pi*g.freq*t)
		sample += 0.15 * math.Sin(2*math.Pi*g.freq*2*t)
		sample += 0.075 * math.Sin(2*math.Pi*g.freq*3*t)

		// Envelope to fade in/out
		envelope := math.Min(float64(g.pos)/float64(g.sr)/0.02, 1.0)
		sample *= envelope * 0.2

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *BuzzGenerator) Err() error {
	return nil
}

// ArpeggioGenerator produces three quick ascending notes for combo streaks.
type ArpeggioGenerator struct {
	sr      beep.SampleRate
	pos     int
	noteLen int
	freqs   []float64
}

// NewArpeggioGenerator creates an ascending-arpeggio generator.
func NewArpeggioGenerator(sr beep.SampleRate) *ArpeggioGenerator {
	return &ArpeggioGenerator{
		sr:      sr,
		noteLen: sr.N(time.Millisecond * 100),
		freqs:   []float64{523.25, 659.25, 783.99}, // C5, E5, G5
	}
}

func (g *ArpeggioGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		note := g.pos / g.noteLen
		if note >= len(g.freqs) {
			note = len(g.freqs) - 1
		}
		freq := g.freqs[note]

		notePos := g.pos % g.noteLen
		t := float64(notePos) / float64(g.sr)
		envelope := math.Exp(-t * 15)

		sample := 0.25 * envelope * math.Sin(2*math.Pi*freq*t)
		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *ArpeggioGenerator) Err() error {
	return nil
}
