package video

import "dragonsleap/internal/engine"

const (
	OAMSize   = 64
	HiddenY   = 0xEF
	AttrFlipH = 0x40
)

// Sprite is one 8x8 sprite table entry.
type Sprite struct {
	Y, Tile, Attr, X byte
}

// OAM is the sprite table. It implements engine.Sprites: Begin starts a new
// frame, Submit appends metasprites, End hides every entry left over.
type OAM struct {
	Entries [OAMSize]Sprite
	n       int
}

var metasprites = map[engine.Drawable]byte{
	engine.DrawDragon:     engine.TileDragon,
	engine.DrawDragonFlap: engine.TileDragonFlap,
}

func (o *OAM) Begin() {
	o.n = 0
}

// Submit places a 16x16 drawable with its top-left corner at (x, y).
// Entries beyond the table size are dropped.
func (o *OAM) Submit(d engine.Drawable, x, y int) {
	base, ok := metasprites[d]
	if !ok {
		return
	}
	for i := 0; i < 4; i++ {
		if o.n >= OAMSize {
			return
		}
		o.Entries[o.n] = Sprite{
			X:    byte(x + (i&1)*8),
			Y:    byte(y + (i>>1)*8),
			Tile: base + byte(i),
		}
		o.n++
	}
}

func (o *OAM) End() {
	for i := o.n; i < OAMSize; i++ {
		o.Entries[i].Y = HiddenY
	}
}

// Visible returns the number of entries in use this frame.
func (o *OAM) Visible() int {
	return o.n
}
