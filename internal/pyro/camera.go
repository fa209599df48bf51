package pyro

// Vec3 is a position or velocity in world space. X and Y are canvas pixels,
// Z grows away from the viewer.
type Vec3 struct {
	X, Y, Z float64
}

// Camera flies forward through Z at a constant speed. It is advanced exactly
// once per tick by the scheduler and only read everywhere else.
type Camera struct {
	Z     float64
	Speed float64
}

func (c *Camera) Advance(dt float64) {
	c.Z += c.Speed * dt
}

// FocalDistance is the distance of the camera from the z=0 screen plane.
const FocalDistance = 200.0

// Project maps a world point to integer screen coordinates with perspective
// scaling around (cx, cy). The third return is false when the point lies on
// or behind the camera plane.
func Project(p Vec3, cam Camera, cx, cy float64) (int, int, bool) {
	depth := p.Z - cam.Z + FocalDistance
	if depth <= 0 {
		return 0, 0, false
	}
	scale := FocalDistance / depth
	sx := cx + (p.X-cx)*scale
	sy := cy + (p.Y-cy)*scale
	return int(sx), int(sy), true
}
