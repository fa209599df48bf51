package pyro

import (
	"math/rand"

	"github.com/avensel/skyburst/internal/canvas"
)

// World holds all live fireworks and the camera. State is threaded through
// tick calls explicitly; nothing here is global.
type World struct {
	Fireworks []*Firework
	Camera    Camera

	rng           *rand.Rand
	width, height int
}

func NewWorld(width, height int, cameraSpeed float64, seed int64) *World {
	return &World{
		Camera: Camera{Speed: cameraSpeed},
		rng:    rand.New(rand.NewSource(seed)),
		width:  width,
		height: height,
	}
}

// Spawn launches a new firework ahead of the camera.
func (w *World) Spawn() {
	w.Fireworks = append(w.Fireworks, NewFirework(w.width, w.height, w.Camera.Z, w.rng))
}

// Update advances every firework by dt. The sound trigger may be nil.
func (w *World) Update(dt float64, snd SoundTrigger) {
	for _, f := range w.Fireworks {
		f.Update(dt, w.rng, snd)
	}
}

// Cull removes finished fireworks and any firework that has fallen more than
// the cull margin behind the camera, whatever its phase.
func (w *World) Cull() {
	live := w.Fireworks[:0]
	for _, f := range w.Fireworks {
		if f.Finished() || f.Pos.Z-w.Camera.Z <= -CullMargin {
			continue
		}
		live = append(live, f)
	}
	w.Fireworks = live
}

// Draw renders every firework through the camera.
func (w *World) Draw(c *canvas.Canvas) {
	for _, f := range w.Fireworks {
		f.Draw(c, w.Camera)
	}
}
