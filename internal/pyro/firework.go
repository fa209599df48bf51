package pyro

import (
	"math"
	"math/rand"

	"github.com/avensel/skyburst/internal/canvas"
)

const (
	launchGravity = 100.0
	burstGravity  = 10.0
	burstDamping  = 0.97
	apexHold      = 1.0
	trailLength   = 15

	// CullMargin is the depth behind the camera beyond which a firework is
	// removed regardless of phase.
	CullMargin = 50.0
)

// SoundTrigger is the audio capability handed to the simulation. It is passed
// per tick rather than stored so the firework never owns the audio path.
type SoundTrigger interface {
	Play(x float64, screenWidth int)
}

var neonColors = []canvas.Color{
	canvas.RGB(255, 0, 255),
	canvas.RGB(0, 255, 255),
	canvas.RGB(255, 255, 0),
	canvas.RGB(255, 0, 128),
	canvas.RGB(0, 255, 128),
	canvas.RGB(255, 128, 0),
	canvas.RGB(128, 0, 255),
	canvas.RGB(255, 0, 0),
	canvas.RGB(0, 255, 0),
	canvas.RGB(0, 128, 255),
}

type trailPoint struct {
	x, y float64
}

// Firework launches from the bottom of the canvas, arcs to its apex, hangs
// for a moment, and bursts into particles. The phase transition is one-way:
// once exploded it never launches again.
type Firework struct {
	Pos   Vec3
	Vel   Vec3
	Color canvas.Color

	Exploded  bool
	Particles []Particle

	apexReached bool
	sinceApex   float64
	trail       []trailPoint

	width, height int
}

// NewFirework spawns a rocket somewhere along the bottom of the canvas,
// ahead of the camera, with a strong upward velocity and slight drift.
func NewFirework(width, height int, cameraZ float64, rng *rand.Rand) *Firework {
	return &Firework{
		Pos: Vec3{
			X: float64(width)*0.2 + rng.Float64()*float64(width)*0.6,
			Y: float64(height - 1),
			Z: cameraZ + 50.0 + rng.Float64()*250.0,
		},
		Vel: Vec3{
			X: -20 + rng.Float64()*40,
			Y: (-150 + rng.Float64()*30) * 1.3,
		},
		Color:  neonColors[rng.Intn(len(neonColors))],
		trail:  make([]trailPoint, 0, trailLength),
		width:  width,
		height: height,
	}
}

// Update advances the firework by dt. During launch it integrates the rocket
// and latches the apex; after the hold duration it explodes, optionally
// triggering a sound. After explosion it integrates and prunes particles.
func (f *Firework) Update(dt float64, rng *rand.Rand, snd SoundTrigger) {
	if !f.Exploded {
		f.Vel.Y += launchGravity * dt
		f.Pos.X += f.Vel.X * dt
		f.Pos.Y += f.Vel.Y * dt

		f.trail = append(f.trail, trailPoint{f.Pos.X, f.Pos.Y})
		if len(f.trail) > trailLength {
			f.trail = f.trail[1:]
		}

		// Apex: vertical velocity crossed from upward to downward.
		if f.Vel.Y >= 0 && !f.apexReached {
			f.apexReached = true
		}
		if f.apexReached {
			f.sinceApex += dt
			if f.sinceApex >= apexHold {
				f.explode(rng, snd)
			}
		}
		return
	}

	alive := f.Particles[:0]
	for i := range f.Particles {
		p := &f.Particles[i]
		p.Update(dt, burstGravity, burstDamping)
		if p.Alive() {
			alive = append(alive, *p)
		}
	}
	f.Particles = alive
}

func (f *Firework) explode(rng *rand.Rand, snd SoundTrigger) {
	f.Exploded = true

	if snd != nil {
		snd.Play(f.Pos.X, f.width)
	}

	count := 450 + rng.Intn(301)
	speed := 140 + rng.Float64()*70

	f.Particles = make([]Particle, 0, count)
	for i := 0; i < count; i++ {
		// Uniform in azimuth and polar angle. This biases density toward the
		// sphere's poles; the look of the burst depends on it.
		theta := rng.Float64() * 2 * math.Pi
		phi := rng.Float64() * math.Pi

		vel := Vec3{
			X: speed * math.Sin(phi) * math.Cos(theta),
			Y: speed * math.Cos(phi),
			Z: speed * math.Sin(phi) * math.Sin(theta),
		}

		lifetime := 1.8 + rng.Float64()*0.7 + (rng.Float64()*0.4 - 0.2)

		f.Particles = append(f.Particles, Particle{
			Pos:      f.Pos,
			Vel:      vel,
			Lifetime: lifetime,
		})
	}
}

// Finished reports whether the firework has exploded and burned out.
func (f *Firework) Finished() bool {
	return f.Exploded && len(f.Particles) == 0
}

// Draw projects the launch trail or the particle cloud through the camera and
// plots the visible points in the firework's color.
func (f *Firework) Draw(c *canvas.Canvas, cam Camera) {
	cx := float64(c.Width) / 2
	cy := float64(c.Height) / 2

	if !f.Exploded {
		pts := make([]canvas.Point, 0, len(f.trail))
		for _, t := range f.trail {
			x, y, ok := Project(Vec3{t.x, t.y, f.Pos.Z}, cam, cx, cy)
			if ok {
				pts = append(pts, canvas.Point{X: x, Y: y})
			}
		}
		c.Plot(f.Color, pts)
		return
	}

	pts := make([]canvas.Point, 0, len(f.Particles))
	for i := range f.Particles {
		x, y, ok := Project(f.Particles[i].Pos, cam, cx, cy)
		if ok {
			pts = append(pts, canvas.Point{X: x, Y: y})
		}
	}
	c.Plot(f.Color, pts)
}
