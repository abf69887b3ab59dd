package video

import (
	"bytes"
	"image/color"
	"testing"

	"dragonsleap/internal/engine"
)

func rgba(c RGB) color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 0xFF}
}

func newTestScreen() (*Screen, *engine.VRAM) {
	v := &engine.VRAM{}
	v.Reset(engine.Title)
	return NewScreen(), v
}

func TestScreenBackground(t *testing.T) {
	s, v := newTestScreen()
	s.Render(v)

	sky := rgba(Master[GamePalette[0]])
	if got := s.At(100, 100); got != sky {
		t.Errorf("sky = %v, want %v", got, sky)
	}
	ground := rgba(Master[GamePalette[engine.PaletteGround*4+2]])
	if got := s.At(0, 28*engine.TileSize); got != ground {
		t.Errorf("ground = %v, want %v", got, ground)
	}
}

func TestScreenScrollAcrossBuffers(t *testing.T) {
	s, v := newTestScreen()
	v.Write(engine.NTAddr(engine.NametableB, 0, 10), engine.TileCapLeft)
	v.Write(engine.NTAddr(engine.NametableA, 0, 12), engine.TileCapLeft)
	edge := rgba(Colour(0, 1, false))
	sky := rgba(Colour(0, 0, false))

	tests := []struct {
		scroll int
		x, y   int
		want   color.RGBA
	}{
		{0, 0, 80, sky},
		{256, 0, 80, edge},
		{250, 6, 80, edge},
		{504, 8, 96, edge},
		{511, 1, 96, edge},
		{0, 0, 96, edge},
	}
	for _, tt := range tests {
		s.SetViewportScroll(tt.scroll)
		s.Render(v)
		if got := s.At(tt.x, tt.y); got != tt.want {
			t.Errorf("scroll %d (%d,%d) = %v, want %v", tt.scroll, tt.x, tt.y, got, tt.want)
		}
	}
}

func TestScreenStatusBandIgnoresScroll(t *testing.T) {
	s, v := newTestScreen()
	start := (engine.NametableCols - len(engine.Title)) / 2
	x := start*engine.TileSize + 1 // first lit pixel of the first glyph
	ink := rgba(Colour(engine.PaletteStatus, 1, false))

	for _, scroll := range []int{0, 100, 256, 511} {
		s.SetViewportScroll(scroll)
		s.Render(v)
		if got := s.At(x, engine.TileSize); got != ink {
			t.Errorf("scroll %d: title pixel = %v, want %v", scroll, got, ink)
		}
	}
}

func TestScreenSprites(t *testing.T) {
	s, v := newTestScreen()
	s.Begin()
	s.Submit(engine.DrawDragon, engine.PlayerX, 112)
	s.End()
	s.Render(v)

	if got, want := s.At(engine.PlayerX+1, 113), rgba(Colour(0, 3, true)); got != want {
		t.Errorf("dragon pixel = %v, want %v", got, want)
	}
	if got, want := s.At(engine.PlayerX, 112), rgba(Colour(0, 0, false)); got != want {
		t.Errorf("transparent pixel = %v, want %v", got, want)
	}

	s.Begin()
	s.End()
	s.Render(v)
	if got, want := s.At(engine.PlayerX+1, 113), rgba(Colour(0, 0, false)); got != want {
		t.Errorf("hidden sprite still drawn: %v", got)
	}
}

func TestScreenWait(t *testing.T) {
	s := NewScreen()
	s.WaitNextFrame()
	n := 0
	s.Wait = func() { n++ }
	s.WaitNextFrame()
	if n != 1 {
		t.Errorf("Wait called %d times", n)
	}
}

func TestScreenWriteBMP(t *testing.T) {
	s, v := newTestScreen()
	s.Render(v)
	var buf bytes.Buffer
	if err := s.WriteBMP(&buf); err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("BM")) {
		t.Errorf("not a BMP: % x", buf.Bytes()[:4])
	}
}
