package pyro

// Particle is one fragment of an exploded firework.
type Particle struct {
	Pos      Vec3
	Vel      Vec3
	Age      float64
	Lifetime float64
}

// Update applies gravity to the vertical velocity, damps the whole velocity
// vector once per tick, integrates the position, and ages the particle.
func (p *Particle) Update(dt, gravity, damping float64) {
	p.Vel.Y += gravity * dt

	p.Vel.X *= damping
	p.Vel.Y *= damping
	p.Vel.Z *= damping

	p.Pos.X += p.Vel.X * dt
	p.Pos.Y += p.Vel.Y * dt
	p.Pos.Z += p.Vel.Z * dt

	p.Age += dt
}

// Alive reports whether the particle should still be drawn. The lifetime
// interval is half-open: a particle at exactly age == lifetime is dead.
func (p *Particle) Alive() bool {
	return p.Age < p.Lifetime
}
