package audio

import (
	"math"
	"testing"

	"github.com/gopxl/beep"
)

func drain(t *testing.T, s beep.Streamer, n int) []float64 {
	t.Helper()
	buf := make([][2]float64, n)
	got, ok := s.Stream(buf)
	if !ok || got != n {
		t.Fatalf("Stream() = (%d, %v), want (%d, true)", got, ok, n)
	}
	out := make([]float64, n)
	for i, frame := range buf {
		out[i] = frame[0]
	}
	return out
}

func TestGenerators_ProduceBoundedAudio(t *testing.T) {
	tests := []struct {
		name string
		gen  beep.Streamer
	}{
		{"swish", NewSwishGenerator(sampleRate)},
		{"chime", NewChimeGenerator(sampleRate, 880)},
		{"buzz", NewBuzzGenerator(sampleRate, 110)},
		{"arpeggio", NewArpeggioGenerator(sampleRate)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := drain(t, tt.gen, int(sampleRate)/10)

			peak := 0.0
			for _, v := range out {
				if math.Abs(v) > peak {
					peak = math.Abs(v)
				}
				if math.Abs(v) > 1.0 {
					t.Fatalf("sample %f clips", v)
				}
			}
			if peak == 0 {
				t.Error("generator produced silence")
			}
			if err := tt.gen.Err(); err != nil {
				t.Errorf("Err() = %v", err)
			}
		})
	}
}

func TestChimeGenerator_Decays(t *testing.T) {
	g := NewChimeGenerator(sampleRate, 880)
	out := drain(t, g, int(sampleRate)/2)

	early := rms(out[:len(out)/10])
	late := rms(out[len(out)-len(out)/10:])
	if late >= early {
		t.Errorf("chime should decay: early rms %f, late rms %f", early, late)
	}
}

func TestArpeggioGenerator_Ascends(t *testing.T) {
	g := NewArpeggioGenerator(sampleRate)
	noteLen := g.noteLen

	// Each note restarts its envelope, so the start of every note segment
	// should carry energy.
	out := drain(t, g, noteLen*3)
	for note := 0; note < 3; note++ {
		seg := out[note*noteLen : note*noteLen+noteLen/4]
		if rms(seg) == 0 {
			t.Errorf("note %d is silent", note)
		}
	}
}

func TestPlayer_PlayBeforeInitializeIsNoop(t *testing.T) {
	p := NewPlayer()

	// Must not panic or block without a speaker.
	for _, c := range []Cue{CueSlash, CueTargetHit, CueDistractorHit, CueCombo} {
		p.Play(c)
	}
	p.Cleanup()
}

func TestNoop(t *testing.T) {
	var c Cues = Noop{}
	c.Play(CueSlash) // must be safe anywhere a Player is
}

func rms(xs []float64) float64 {
	var sum float64
	for _, x := range xs {
		sum += x * x
	}
	return math.Sqrt(sum / float64(len(xs)))
}
