package video

import (
	"fmt"

	"dragonsleap/internal/engine"
)

// CHR is a 256-tile pattern table in 2bpp planar form: for each tile,
// eight low-plane bytes followed by eight high-plane bytes.
type CHR [256 * 16]byte

// Pixel returns the 2-bit colour index of (x, y) inside tile t.
func (c *CHR) Pixel(t byte, x, y int) byte {
	base := int(t) * 16
	shift := 7 - uint(x&7)
	lo := c[base+y&7] >> shift & 1
	hi := c[base+8+y&7] >> shift & 1
	return hi<<1 | lo
}

func (c *CHR) setPixel(t byte, x, y int, v byte) {
	base := int(t) * 16
	bit := byte(0x80) >> uint(x&7)
	c[base+y&7] &^= bit
	c[base+8+y&7] &^= bit
	if v&1 != 0 {
		c[base+y&7] |= bit
	}
	if v&2 != 0 {
		c[base+8+y&7] |= bit
	}
}

// draw stamps an art block of '.', '1', '2', '3' rows starting at tile t.
// Blocks wider or taller than 8 pixels spill into the following tiles in
// row-major order, two tiles per row for 16-pixel art.
func (c *CHR) draw(t byte, art []string) {
	tilesPerRow := (len(art[0]) + 7) / 8
	for y, row := range art {
		if len(row) != len(art[0]) {
			panic(fmt.Sprintf("chr: tile %#02x row %d has width %d", t, y, len(row)))
		}
		for x, ch := range row {
			v := byte(0)
			if ch >= '1' && ch <= '3' {
				v = byte(ch - '0')
			}
			tile := t + byte((y/8)*tilesPerRow+x/8)
			c.setPixel(tile, x, y, v)
		}
	}
}

// NewCHR builds the game's pattern table.
func NewCHR() *CHR {
	c := &CHR{}

	brick := func(edge string) []string {
		rows := []string{
			"11111111",
			"22212222",
			"22212222",
			"22212222",
			"11111111",
			"22222122",
			"22222122",
			"22222122",
		}
		return withEdge(rows, edge)
	}
	block := func(edge string) []string {
		rows := []string{
			"11111111",
			"33313333",
			"33313333",
			"33313333",
			"11111111",
			"33333133",
			"33333133",
			"33333133",
		}
		return withEdge(rows, edge)
	}
	c.draw(engine.TileCapLeft, brick("left"))
	c.draw(engine.TileCapMid, brick(""))
	c.draw(engine.TileCapRight, brick("right"))
	c.draw(engine.TileBaseLeft, block("left"))
	c.draw(engine.TileBaseMid, block(""))
	c.draw(engine.TileBaseRight, block("right"))

	c.draw(engine.TileGroundTop, []string{
		"33333333",
		"32323232",
		"22222222",
		"22212222",
		"22222222",
		"22222221",
		"22222222",
		"21222222",
	})
	c.draw(engine.TileGroundFill, []string{
		"22222222",
		"22212222",
		"22222222",
		"12222222",
		"22222222",
		"22222122",
		"22222222",
		"22122222",
	})
	c.draw(engine.TileStatusEdge, []string{
		"........",
		"........",
		"........",
		"........",
		"........",
		"........",
		"22222222",
		"11111111",
	})

	c.draw(engine.TileDragon, dragonUp)
	c.draw(engine.TileDragonFlap, dragonDown)

	for r, g := range font {
		drawGlyph(c, engine.GlyphTile(r), g)
	}
	return c
}

func withEdge(rows []string, edge string) []string {
	out := make([]string, len(rows))
	for i, r := range rows {
		switch edge {
		case "left":
			r = "13" + r[2:]
		case "right":
			r = r[:7] + "1"
		}
		out[i] = r
	}
	return out
}

// drawGlyph places a 5x7 glyph in the top-left of the tile, one pixel in
// from the left so adjacent glyphs get a gap.
func drawGlyph(c *CHR, t byte, rows [7]byte) {
	for y, bits := range rows {
		for x := 0; x < 5; x++ {
			if bits&(0x10>>uint(x)) != 0 {
				c.setPixel(t, x+1, y, 1)
			}
		}
	}
}

var dragonUp = []string{
	"................",
	".33.............",
	".333............",
	"..333.......11..",
	"..3333.....1111.",
	"...3333...112121",
	"....333..1111111",
	".....3311111....",
	"....111111111...",
	"...11122211111..",
	"..1112222111.1..",
	".11..1222111....",
	"1....11..11.....",
	".....1....1.....",
	"....11...11.....",
	"................",
}

var dragonDown = []string{
	"................",
	"................",
	"............11..",
	"...........1111.",
	"..........112121",
	".........1111111",
	"......1111111...",
	"....111111111...",
	"...11122211111..",
	"..1112222111.1..",
	".11.33322111....",
	"1...3333.11.....",
	"...3333...1.....",
	"..333....11.....",
	".333............",
	"................",
}
