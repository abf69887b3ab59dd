package video

// RGB is an 8-bit per channel colour.
type RGB struct {
	R, G, B uint8
}

// GamePalette is the 32-byte palette loaded at start: the universal
// background colour, four background palettes and four sprite palettes.
var GamePalette = [32]byte{
	0x21,

	0x0F, 0x00, 0x2D, 0x00,
	0x0F, 0x26, 0x36, 0x00,
	0x0F, 0x2A, 0x2B, 0x00,
	0x0F, 0x2A, 0x2B, 0x00,

	0x16, 0x35, 0x24, 0x00,
	0x00, 0x37, 0x25, 0x00,
	0x0D, 0x2D, 0x3A, 0x00,
	0x0D, 0x27, 0x2A,
}

// Colour resolves entry c (0..3) of background palette p, or of sprite
// palette p when sprite is set. Entry 0 is always the universal background.
func Colour(p, c byte, sprite bool) RGB {
	if c == 0 {
		return Master[GamePalette[0]&0x3F]
	}
	i := int(p&3)*4 + int(c&3)
	if sprite {
		i += 16
	}
	return Master[GamePalette[i]&0x3F]
}

// Master is the 64-colour master palette of the picture processor.
var Master = [64]RGB{
	{84, 84, 84}, {0, 30, 116}, {8, 16, 144}, {48, 0, 136},
	{68, 0, 100}, {92, 0, 48}, {84, 4, 0}, {60, 24, 0},
	{32, 42, 0}, {8, 58, 0}, {0, 64, 0}, {0, 60, 0},
	{0, 50, 60}, {0, 0, 0}, {0, 0, 0}, {0, 0, 0},

	{152, 150, 152}, {8, 76, 196}, {48, 50, 236}, {92, 30, 228},
	{136, 20, 176}, {160, 20, 100}, {152, 34, 32}, {120, 60, 0},
	{84, 90, 0}, {40, 114, 0}, {8, 124, 0}, {0, 118, 40},
	{0, 102, 120}, {0, 0, 0}, {0, 0, 0}, {0, 0, 0},

	{236, 238, 236}, {76, 154, 236}, {120, 124, 236}, {176, 98, 236},
	{228, 84, 236}, {236, 88, 180}, {236, 106, 100}, {212, 136, 32},
	{160, 170, 0}, {116, 196, 0}, {76, 208, 32}, {56, 204, 108},
	{56, 180, 204}, {60, 60, 60}, {0, 0, 0}, {0, 0, 0},

	{236, 238, 236}, {168, 204, 236}, {188, 188, 236}, {212, 178, 236},
	{236, 174, 236}, {236, 174, 212}, {236, 180, 176}, {228, 196, 144},
	{204, 210, 120}, {180, 222, 120}, {168, 226, 144}, {152, 226, 180},
	{160, 214, 228}, {160, 162, 160}, {0, 0, 0}, {0, 0, 0},
}
