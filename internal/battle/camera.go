package battle

// Camera is the view center and zoom handed to the renderer. It trails the
// player rather than locking onto it.
type Camera struct {
	Pos   WorldCoord
	Scale float64
}

// Follow moves the camera a fraction of the way toward target, truncating
// each axis toward zero. A camera within a few units of its target stops.
func (c *Camera) Follow(target WorldCoord, fraction float64) {
	c.Pos.X += int(fraction * float64(target.X-c.Pos.X))
	c.Pos.Y += int(fraction * float64(target.Y-c.Pos.Y))
}
