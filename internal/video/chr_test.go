package video

import (
	"testing"

	"dragonsleap/internal/engine"
)

func TestCHRPixelRoundTrip(t *testing.T) {
	var c CHR
	for v := byte(0); v < 4; v++ {
		for y := 0; y < 8; y++ {
			for x := 0; x < 8; x++ {
				c.setPixel(0x80, x, y, (v+byte(x+y))&3)
			}
		}
		for y := 0; y < 8; y++ {
			for x := 0; x < 8; x++ {
				if got, want := c.Pixel(0x80, x, y), (v+byte(x+y))&3; got != want {
					t.Fatalf("pass %d (%d,%d) = %d, want %d", v, x, y, got, want)
				}
			}
		}
	}
}

func TestCHRPlanarLayout(t *testing.T) {
	var c CHR
	c.setPixel(1, 0, 0, 1)
	c.setPixel(1, 7, 2, 2)
	c.setPixel(1, 3, 7, 3)
	want := map[int]byte{
		16 + 0:     0x80,
		16 + 8 + 2: 0x01,
		16 + 7:     0x10,
		16 + 8 + 7: 0x10,
	}
	for i := 0; i < 16; i++ {
		if c[i] != 0 {
			t.Errorf("tile 0 byte %d touched", i)
		}
	}
	for i, b := range want {
		if c[i] != b {
			t.Errorf("byte %d = %#02x, want %#02x", i, c[i], b)
		}
	}
}

func TestNewCHR(t *testing.T) {
	c := NewCHR()

	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			if c.Pixel(engine.TileSky, x, y) != 0 {
				t.Fatalf("sky tile not blank at (%d,%d)", x, y)
			}
		}
	}

	if c.Pixel(engine.TileCapLeft, 0, 3) != 1 || c.Pixel(engine.TileCapRight, 7, 3) != 1 {
		t.Error("cap tiles lack their outer edge")
	}
	if c.Pixel(engine.TileCapMid, 0, 3) == 1 {
		t.Error("middle cap tile has an edge")
	}

	a := engine.GlyphTile('A')
	if c.Pixel(a, 1, 0) != 0 || c.Pixel(a, 2, 0) != 1 || c.Pixel(a, 1, 3) != 1 {
		t.Error("glyph A misplaced")
	}

	for _, base := range []byte{engine.TileDragon, engine.TileDragonFlap} {
		for i := byte(0); i < 4; i++ {
			lit := false
			for y := 0; y < 8 && !lit; y++ {
				for x := 0; x < 8; x++ {
					if c.Pixel(base+i, x, y) != 0 {
						lit = true
						break
					}
				}
			}
			if !lit {
				t.Errorf("dragon tile %#02x is empty", base+i)
			}
		}
	}
}
