package arena

import (
	"math/rand"
	"testing"
)

func TestIntegrateObjects(t *testing.T) {
	o := &Object{X: 100, Y: 200, VX: 2, VY: -10, Rotation: 0.5, VRotation: 0.1}
	integrateObjects([]*Object{o})

	if o.X != 102 || o.Y != 190 {
		t.Errorf("position = (%f, %f), want (102, 190)", o.X, o.Y)
	}
	if o.VY != -10+Gravity {
		t.Errorf("vy = %f, want %f", o.VY, -10+Gravity)
	}
	if o.Rotation != 0.6 {
		t.Errorf("rotation = %f, want 0.6", o.Rotation)
	}
}

func TestIntegrateObjects_ArcUpThenFall(t *testing.T) {
	o := &Object{Y: PlayfieldHeight, VY: -12}
	objs := []*Object{o}

	minY := o.Y
	for i := 0; i < 300; i++ {
		integrateObjects(objs)
		if o.Y < minY {
			minY = o.Y
		}
	}
	if minY >= PlayfieldHeight {
		t.Error("object should rise above its launch height")
	}
	if o.Y <= PlayfieldHeight {
		t.Error("object should eventually fall back past its launch height")
	}
}

func TestIntegrateParticles_DecayAndGravity(t *testing.T) {
	ps := []Particle{{VY: 1, Life: 1.0}}
	ps = integrateParticles(ps)

	if len(ps) != 1 {
		t.Fatalf("len = %d, want 1", len(ps))
	}
	if ps[0].Life != 1.0-ParticleDecay {
		t.Errorf("life = %f, want %f", ps[0].Life, 1.0-ParticleDecay)
	}
	if ps[0].VY != 1+ParticleGravity {
		t.Errorf("vy = %f, want %f", ps[0].VY, 1+ParticleGravity)
	}
}

func TestIntegrateParticles_RemovesExpired(t *testing.T) {
	ps := []Particle{
		{Life: ParticleDecay / 2}, // expires this tick
		{Life: 1.0},
	}
	ps = integrateParticles(ps)

	if len(ps) != 1 {
		t.Fatalf("len = %d, want 1", len(ps))
	}
	for _, p := range ps {
		if p.Life <= 0 {
			t.Error("expired particle survived integration")
		}
	}
}

func TestPruneObjects(t *testing.T) {
	keep := &Object{Y: PlayfieldHeight}
	fallen := &Object{Y: PlayfieldHeight + BottomMargin + 1}
	sliced := &Object{Y: 100, Sliced: true}

	live := pruneObjects([]*Object{keep, fallen, sliced})
	if len(live) != 1 || live[0] != keep {
		t.Errorf("live = %v, want only the in-bounds unsliced object", live)
	}
}

func TestBurst(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	ps := burst(320, 240, "#ff6b6b", rng)

	if len(ps) != BurstSize {
		t.Fatalf("len = %d, want %d", len(ps), BurstSize)
	}
	for _, p := range ps {
		if p.X != 320 || p.Y != 240 {
			t.Error("particles should radiate from the slice position")
		}
		if p.Color != "#ff6b6b" {
			t.Error("particles should match the object color")
		}
		if p.Life != 1.0 {
			t.Error("fresh particles should start at full life")
		}
		if p.VX == 0 && p.VY == 0 {
			t.Error("particles should carry velocity")
		}
	}
}
