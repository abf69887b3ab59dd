package engine

// NTAddr returns the tile address of (col, row) in the buffer at base.
func NTAddr(base uint16, col, row int) uint16 {
	return base | uint16(row&0x1F)<<5 | uint16(col&0x1F)
}

// AttrAddr maps a tile address to the address of the colour-region byte
// covering it. The buffer select bits (0x0C00) are kept, the row group is
// tile row / 4 and the column group is tile column / 4.
func AttrAddr(addr uint16) uint16 {
	return 0x2000 | AttributeOffset | addr&0x0C00 | (addr>>4)&0x38 | (addr>>2)&0x07
}

// AttrShift returns the bit offset of the 2x2 quadrant holding (col, row)
// inside its colour-region byte.
func AttrShift(col, row int) uint {
	return uint((row&2)<<1 | col&2)
}
