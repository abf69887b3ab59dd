package engine

// Camera is the horizontal world scroll. Sub is the authoritative state;
// X is derived from it once per Advance.
type Camera struct {
	Sub   Fixed // sub-units, 0 <= Sub < WorldWidthUnits*SubUnits
	X     int   // display units, 0 <= X < WorldWidthUnits
	Speed Fixed // sub-units per frame
}

func NewCamera(speed int) Camera {
	return Camera{Speed: Fixed(speed)}
}

// Advance scrolls by one frame and wraps at the world boundary. The wrap
// subtracts the world width instead of taking a modulo so the fractional
// phase carries across.
func (c *Camera) Advance() {
	c.Sub += c.Speed
	c.X = c.Sub.Units()
	if c.X >= WorldWidthUnits {
		c.X -= WorldWidthUnits
		c.Sub -= ToFixed(WorldWidthUnits)
	}
}

// Tile returns the coarse tile column under the left edge of the view.
func (c *Camera) Tile() int {
	return c.X >> TileShift
}

func (c *Camera) Reset() {
	c.Sub = 0
	c.X = 0
}
