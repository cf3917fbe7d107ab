package arena

// Physics constants, tuned per animation-frame tick. Integration is explicit
// Euler with no sub-stepping: objects are large and slow relative to the
// frame rate.
const (
	// Gravity is added to an object's vertical velocity each tick.
	Gravity = 0.18
	// ParticleGravity is the heavier pull applied to particles.
	ParticleGravity = 0.5
	// BottomMargin is how far below the playfield an object may fall before
	// it is removed.
	BottomMargin = 60.0
)

// integrateObjects advances position, velocity and rotation of every object
// by one tick.
func integrateObjects(objs []*Object) {
	for _, o := range objs {
		o.X += o.VX
		o.Y += o.VY
		o.VY += Gravity
		o.Rotation += o.VRotation
	}
}

// integrateParticles advances particles and filters out expired ones.
func integrateParticles(ps []Particle) []Particle {
	live := ps[:0]
	for _, p := range ps {
		p.X += p.VX
		p.Y += p.VY
		p.VY += ParticleGravity
		p.Life -= ParticleDecay
		if p.Life > 0 {
			live = append(live, p)
		}
	}
	return live
}

// pruneObjects removes sliced objects and objects that have fallen past the
// playfield. Called after the collision pass so a slice on the final tick
// still counts.
func pruneObjects(objs []*Object) []*Object {
	live := objs[:0]
	for _, o := range objs {
		if o.Sliced || o.Y > PlayfieldHeight+BottomMargin {
			continue
		}
		live = append(live, o)
	}
	return live
}
