package engine

import (
	"errors"
	"fmt"
)

var ErrMalformedUpdate = errors.New("malformed update buffer")

// VRAM is the tile memory: two screen-sized buffers, each 32x30 tiles
// followed by its colour-region table, vertically mirrored.
type VRAM struct {
	mem [2 * NametableSize]byte
}

func (v *VRAM) index(addr uint16) int {
	return int(addr & (2*NametableSize - 1))
}

func (v *VRAM) Read(addr uint16) byte {
	return v.mem[v.index(addr)]
}

func (v *VRAM) Write(addr uint16, b byte) {
	v.mem[v.index(addr)] = b
}

// Fill sets n bytes starting at addr.
func (v *VRAM) Fill(addr uint16, b byte, n int) {
	for i := 0; i < n; i++ {
		v.Write(addr+uint16(i), b)
	}
}

// Apply decodes a terminated update buffer (see WriteQueue) into memory.
// A malformed buffer is rejected before anything is written.
func (v *VRAM) Apply(buf []byte) error {
	if err := validateUpdates(buf); err != nil {
		return err
	}
	for i := 0; buf[i] != UpdateEOF; {
		hi, lo, n := buf[i], buf[i+1], int(buf[i+2])
		addr := uint16(hi&0x3F)<<8 | uint16(lo)
		step := uint16(1)
		if hi&UpdateVert != 0 {
			step = NametableCols
		}
		for _, b := range buf[i+3 : i+3+n] {
			v.Write(addr, b)
			addr += step
		}
		i += 3 + n
	}
	return nil
}

func validateUpdates(buf []byte) error {
	i := 0
	for {
		if i >= len(buf) {
			return fmt.Errorf("%w: missing terminator", ErrMalformedUpdate)
		}
		hi := buf[i]
		if hi == UpdateEOF {
			return nil
		}
		if hi&(UpdateHorz|UpdateVert) == 0 || hi&(UpdateHorz|UpdateVert) == UpdateHorz|UpdateVert {
			return fmt.Errorf("%w: bad run header %#02x at %d", ErrMalformedUpdate, hi, i)
		}
		if i+3 > len(buf) {
			return fmt.Errorf("%w: truncated run header at %d", ErrMalformedUpdate, i)
		}
		n := int(buf[i+2])
		if n == 0 || i+3+n > len(buf) {
			return fmt.Errorf("%w: run at %d has length %d", ErrMalformedUpdate, i, n)
		}
		i += 3 + n
	}
}

// Tile returns the tile id at (col, row) of the buffer at base.
func (v *VRAM) Tile(base uint16, col, row int) byte {
	return v.Read(NTAddr(base, col, row))
}

// PaletteAt returns the 2-bit background palette for (col, row).
func (v *VRAM) PaletteAt(base uint16, col, row int) byte {
	attr := v.Read(AttrAddr(NTAddr(base, col, row)))
	return attr >> AttrShift(col, row) & 3
}

// Reset clears both buffers to sky and draws the static bands: the status
// band at the top (title in buffer A) and the ground at the bottom.
func (v *VRAM) Reset(title string) {
	for _, base := range []uint16{NametableA, NametableB} {
		v.Fill(base, TileSky, NametableCols*NametableRows)
		for row := 0; row < StatusRows; row++ {
			tile := byte(TileStatusFill)
			if row == StatusRows-1 {
				tile = TileStatusEdge
			}
			v.Fill(NTAddr(base, 0, row), tile, NametableCols)
		}
		v.Fill(NTAddr(base, 0, GroundRow), TileGroundTop, NametableCols)
		for row := GroundRow + 1; row < NametableRows; row++ {
			v.Fill(NTAddr(base, 0, row), TileGroundFill, NametableCols)
		}

		attr := base | AttributeOffset
		v.Fill(attr, 0, NametableCols*2)
		v.Fill(attr, PaletteStatus*0x55, AttributeStride)
		// Row group 6 holds tile rows 24..27: the obstacle bottom and the
		// ground top share it, so only the lower half uses the ground palette.
		v.Fill(attr+6*AttributeStride, PaletteGround<<4|PaletteGround<<6, AttributeStride)
		v.Fill(attr+7*AttributeStride, PaletteGround*0x55, AttributeStride)
	}
	col := (NametableCols - len(title)) / 2
	if col < 0 {
		col = 0
	}
	for i, r := range title {
		if col+i >= NametableCols {
			break
		}
		v.Write(NTAddr(NametableA, col+i, 1), GlyphTile(r))
	}
}

// GlyphTile maps a printable ASCII rune to its tile id.
func GlyphTile(r rune) byte {
	if r >= 'a' && r <= 'z' {
		r -= 'a' - 'A'
	}
	if r < 0x20 || r >= 0x60 {
		return TileGlyphOffset
	}
	return byte(r-0x20) + TileGlyphOffset
}
