package video

import (
	"fmt"
	"image"
	"image/color"
	"io"

	"golang.org/x/image/bmp"

	"dragonsleap/internal/engine"
)

// Screen composes the picture from tile memory and the sprite table. It
// is the display-side collaborator of engine.Driver: the viewport scroll
// and sprites are latched during a frame and Render draws them.
type Screen struct {
	CHR   *CHR
	OAM   OAM
	Frame *image.RGBA

	// Wait, when set, blocks until the next refresh boundary.
	Wait func()

	scroll int
}

func NewScreen() *Screen {
	s := &Screen{
		CHR:   NewCHR(),
		Frame: image.NewRGBA(image.Rect(0, 0, engine.ScreenWidth, engine.ScreenHeight)),
	}
	s.OAM.End()
	return s
}

func (s *Screen) WaitNextFrame() {
	if s.Wait != nil {
		s.Wait()
	}
}

func (s *Screen) SetViewportScroll(x int) {
	s.scroll = x
}

func (s *Screen) Scroll() int {
	return s.scroll
}

func (s *Screen) Begin()                             { s.OAM.Begin() }
func (s *Screen) Submit(d engine.Drawable, x, y int) { s.OAM.Submit(d, x, y) }
func (s *Screen) End()                               { s.OAM.End() }

// Render draws the background from both tile buffers and the sprites on
// top. Lines above engine.SplitY ignore the scroll so the status band
// stays put.
func (s *Screen) Render(v *engine.VRAM) {
	for y := 0; y < engine.ScreenHeight; y++ {
		scroll := s.scroll
		if y < engine.SplitY {
			scroll = 0
		}
		row := y >> engine.TileShift
		for x := 0; x < engine.ScreenWidth; x++ {
			wx := (x + scroll) % engine.WorldWidthUnits
			base := uint16(engine.NametableA)
			if wx >= engine.ScreenWidth {
				base = engine.NametableB
				wx -= engine.ScreenWidth
			}
			col := wx >> engine.TileShift
			c := s.CHR.Pixel(v.Tile(base, col, row), wx, y)
			s.set(x, y, Colour(v.PaletteAt(base, col, row), c, false))
		}
	}
	s.renderSprites()
}

func (s *Screen) renderSprites() {
	// Lower indices have priority, so draw from the back of the table.
	for i := OAMSize - 1; i >= 0; i-- {
		sp := s.OAM.Entries[i]
		if sp.Y >= HiddenY {
			continue
		}
		pal := sp.Attr & 3
		for py := 0; py < 8; py++ {
			y := int(sp.Y) + py
			if y >= engine.ScreenHeight {
				break
			}
			for px := 0; px < 8; px++ {
				x := int(sp.X) + px
				if x >= engine.ScreenWidth {
					break
				}
				tx := px
				if sp.Attr&AttrFlipH != 0 {
					tx = 7 - px
				}
				c := s.CHR.Pixel(sp.Tile, tx, py)
				if c == 0 {
					continue
				}
				s.set(x, y, Colour(pal, c, true))
			}
		}
	}
}

func (s *Screen) set(x, y int, c RGB) {
	o := s.Frame.PixOffset(x, y)
	s.Frame.Pix[o+0] = c.R
	s.Frame.Pix[o+1] = c.G
	s.Frame.Pix[o+2] = c.B
	s.Frame.Pix[o+3] = 0xFF
}

// At returns the composed colour at (x, y).
func (s *Screen) At(x, y int) color.RGBA {
	return s.Frame.RGBAAt(x, y)
}

// WriteBMP encodes the current frame.
func (s *Screen) WriteBMP(w io.Writer) error {
	if err := bmp.Encode(w, s.Frame); err != nil {
		return fmt.Errorf("encode screenshot: %w", err)
	}
	return nil
}
