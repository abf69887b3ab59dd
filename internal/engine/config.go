package engine

import (
	"errors"
	"fmt"
	"os"
	"strconv"
)

// Fixed-point.
const (
	SubUnitShift = 4
	SubUnits     = 1 << SubUnitShift
)

// Screen and world dimensions (in display units).
const (
	ScreenWidth     = 256
	ScreenHeight    = 240
	WorldWidthUnits = 2 * ScreenWidth
	TileSize        = 8
	TileShift       = 3
	WorldTiles      = WorldWidthUnits / TileSize // 64
)

// Tile buffer layout.
const (
	NametableA      = 0x2000
	NametableB      = 0x2400
	NametableSize   = 0x0400
	NametableCols   = 32
	NametableRows   = 30
	AttributeOffset = 0x03C0
	AttributeStride = 8 // bytes per colour-region row
)

// Vertical bands of a buffer (in tile rows).
const (
	StatusRows   = 4
	ObstacleRows = 22
	GroundRows   = NametableRows - StatusRows - ObstacleRows // 4
	GroundRow    = StatusRows + ObstacleRows                 // 26
	SplitY       = StatusRows * TileSize                     // 32
)

// Obstacles.
const (
	SlotCount       = 4
	ObstacleColumns = 4
	GapHeight       = 6
	GapMinStart     = 3
	GapMaxStart     = ObstacleRows - GapHeight - GapMinStart // 13
	DefaultGapStart = 8
)

// Player physics. Speeds are sub-units per frame, positions display units.
const (
	JumpSpeed  = -64
	Gravity    = 4
	MaxGravity = 80
	PlayerX    = 64
	PlayerSize = 16
	MinY       = SplitY
	MaxY       = GroundRow*TileSize - PlayerSize
)

// Camera.
const DefaultScrollSpeed = 16

// WriteQueueSize is the byte capacity of the per-frame write queue.
const WriteQueueSize = 128

// Tile identifiers in the pattern table.
const (
	TileSky         = 0x00
	TileCapLeft     = 0x01
	TileCapMid      = 0x02
	TileCapRight    = 0x03
	TileBaseLeft    = 0x04
	TileBaseMid     = 0x05
	TileBaseRight   = 0x06
	TileGroundTop   = 0x07
	TileGroundFill  = 0x08
	TileStatusFill  = 0x09
	TileStatusEdge  = 0x0A
	TileDragon      = 0x10 // 2x2 metasprite, wings up
	TileDragonFlap  = 0x14 // 2x2 metasprite, wings down
	TileGlyphOffset = 0x20 // ASCII 0x20.. maps to tile 0x20..
)

// Background palettes.
const (
	PaletteStatus = 0
	PaletteGround = 1
)

var ErrInvalidConfig = errors.New("invalid config")

// Config holds the tunable parameters of a run.
type Config struct {
	Seed        uint64
	ScrollSpeed int // sub-units per frame

	// FixedGap pins every obstacle gap to GapStart instead of drawing it
	// from the RNG.
	FixedGap bool
	GapStart int
}

func DefaultConfig() Config {
	return Config{
		Seed:        1,
		ScrollSpeed: DefaultScrollSpeed,
		GapStart:    DefaultGapStart,
	}
}

// LoadEnv overrides fields from DRAGONSLEAP_* environment variables.
func (c *Config) LoadEnv() error {
	if s := os.Getenv("DRAGONSLEAP_SEED"); s != "" {
		v, err := strconv.ParseUint(s, 10, 64)
		if err != nil {
			return fmt.Errorf("DRAGONSLEAP_SEED: %w", err)
		}
		c.Seed = v
	}
	if s := os.Getenv("DRAGONSLEAP_SPEED"); s != "" {
		v, err := strconv.Atoi(s)
		if err != nil {
			return fmt.Errorf("DRAGONSLEAP_SPEED: %w", err)
		}
		c.ScrollSpeed = v
	}
	return nil
}

// Validate rejects configurations that break the one-trigger-per-tile
// cadence of the obstacle streamer.
func (c Config) Validate() error {
	// Every trigger tile must stay under the camera for at least
	// ObstacleColumns frames so a slot is fully streamed.
	maxSpeed := TileSize * SubUnits / ObstacleColumns
	if c.ScrollSpeed <= 0 || c.ScrollSpeed > maxSpeed {
		return fmt.Errorf("%w: scroll speed %d outside 1..%d", ErrInvalidConfig, c.ScrollSpeed, maxSpeed)
	}
	if c.FixedGap && (c.GapStart < GapMinStart || c.GapStart > GapMaxStart) {
		return fmt.Errorf("%w: gap start %d outside %d..%d", ErrInvalidConfig, c.GapStart, GapMinStart, GapMaxStart)
	}
	return nil
}
