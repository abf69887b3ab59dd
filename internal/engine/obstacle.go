package engine

import "fmt"

// Slot is one of the fixed obstacle records. Buffer, Column, Trigger and
// Palette are assigned once; Next, Drawn and GapStart change as the slot is
// streamed and recycled.
type Slot struct {
	Buffer  uint16 // NametableA or NametableB
	Column  int    // first tile column inside Buffer
	Trigger int    // world tile column that streams this slot
	Palette byte

	Next     int  // next column to draw, 0..ObstacleColumns-1
	Drawn    bool // all columns written for the current cycle
	GapStart int  // first gap row, relative to the top of the obstacle
	Cycles   int  // streaming cycles started since Reset
}

// WorldColumn returns the slot's first tile column in world space.
func (s *Slot) WorldColumn() int {
	if s.Buffer == NametableB {
		return NametableCols + s.Column
	}
	return s.Column
}

// slotLayout pairs two slots per buffer. Each trigger lies 12 tiles past
// its slot, where the slot is fully off the left edge and still 20 tiles
// short of re-entering on the right. Triggering slot k recycles slot k+2,
// which sits one screen ahead and was drawn one screen ago.
// Changing the world width, slot spacing or scroll direction means
// re-deriving this table.
var slotLayout = [SlotCount]struct {
	buffer  uint16
	column  int
	trigger int
	palette byte
}{
	{NametableA, 8, 20, 2},
	{NametableA, 24, 36, 3},
	{NametableB, 8, 52, 2},
	{NametableB, 24, 4, 3},
}

// attrRows is the number of colour-region rows an obstacle touches.
const attrRows = (StatusRows%4 + ObstacleRows + 3) / 4

// Streamer redraws obstacles into the two tile buffers one column per frame
// as the camera reaches each slot's trigger column.
type Streamer struct {
	Slots [SlotCount]Slot

	cfg    Config
	queue  *WriteQueue
	rng    *Rand
	events *EventBus
	frame  uint64
}

func NewStreamer(cfg Config, queue *WriteQueue, events *EventBus) *Streamer {
	s := &Streamer{
		cfg:    cfg,
		queue:  queue,
		events: events,
	}
	s.Reset()
	return s
}

// Reset restores the fixed slot layout with nothing drawn.
func (s *Streamer) Reset() {
	for i, l := range slotLayout {
		s.Slots[i] = Slot{
			Buffer:   l.buffer,
			Column:   l.column,
			Trigger:  l.trigger,
			Palette:  l.palette,
			GapStart: s.cfg.GapStart,
		}
	}
	s.rng = NewRand(s.cfg.Seed)
	s.frame = 0
}

// Update streams at most one column of the slot whose trigger equals the
// camera's tile column, and recycles the slot behind it.
func (s *Streamer) Update(scrollUnits int) {
	s.frame++
	tile := scrollUnits >> TileShift
	for i := range s.Slots {
		if s.Slots[i].Trigger == tile {
			s.trigger(i)
			return
		}
	}
}

func (s *Streamer) trigger(i int) {
	if !s.Slots[i].Drawn {
		s.drawColumn(i)
	}

	j := (i + 2) % SlotCount
	behind := &s.Slots[j]
	if behind.Drawn {
		s.events.Emit(Event{Type: EventRecycled, Frame: s.frame, Slot: j})
	}
	behind.Drawn = false
	behind.Next = 0
}

func (s *Streamer) drawColumn(i int) {
	slot := &s.Slots[i]
	if slot.Next < 0 || slot.Next >= ObstacleColumns {
		panic(fmt.Sprintf("obstacle slot %d: column %d out of range", i, slot.Next))
	}
	if slot.Next == 0 {
		slot.GapStart = s.nextGap()
		slot.Cycles++
	}

	var column [ObstacleRows]byte
	fillColumn(&column, slot.Next, slot.GapStart)
	addr := NTAddr(slot.Buffer, slot.Column+slot.Next, StatusRows)
	s.queue.Put(addr, column[:], true)

	if slot.Next == 0 {
		s.putAttributes(slot, addr)
	}
	s.events.Emit(Event{Type: EventColumnDrawn, Frame: s.frame, Slot: i, Column: slot.Next})

	slot.Next++
	if slot.Next == ObstacleColumns {
		slot.Drawn = true
		slot.Next = 0
	}
}

// putAttributes writes the slot palette into every colour-region row the
// obstacle covers. The last row group also holds the top ground rows, whose
// quadrants keep the ground palette.
func (s *Streamer) putAttributes(slot *Slot, addr uint16) {
	var rows [attrRows]byte
	for r := range rows {
		rows[r] = slot.Palette * 0x55
	}
	if GroundRow%4 == 2 {
		rows[attrRows-1] = slot.Palette*0x05 | PaletteGround<<4 | PaletteGround<<6
	}
	attr := AttrAddr(addr)
	for r := range rows {
		s.queue.Put(attr+uint16(r*AttributeStride), rows[r:r+1], false)
	}
}

func (s *Streamer) nextGap() int {
	if s.cfg.FixedGap {
		return s.cfg.GapStart
	}
	return s.rng.Range(GapMinStart, GapMaxStart)
}

// fillColumn writes one vertical strip: the upper cap, the open gap and the
// lower base. Edge columns use the left and right tiles.
func fillColumn(buf *[ObstacleRows]byte, column, gapStart int) {
	top, bottom := byte(TileCapMid), byte(TileBaseMid)
	switch column {
	case 0:
		top, bottom = TileCapLeft, TileBaseLeft
	case ObstacleColumns - 1:
		top, bottom = TileCapRight, TileBaseRight
	}
	for y := range buf {
		switch {
		case y < gapStart:
			buf[y] = top
		case y < gapStart+GapHeight:
			buf[y] = TileSky
		default:
			buf[y] = bottom
		}
	}
}

// GapAhead returns the open span, in display units, of the nearest obstacle
// that has not yet passed the player. ok is false when no streamed obstacle
// lies ahead.
func (s *Streamer) GapAhead(cameraX int) (top, bottom int, ok bool) {
	px := (cameraX + PlayerX) % WorldWidthUnits
	best := WorldWidthUnits
	for i := range s.Slots {
		slot := &s.Slots[i]
		if slot.Cycles == 0 {
			continue
		}
		right := (slot.WorldColumn() + ObstacleColumns) * TileSize
		d := ((right-px)%WorldWidthUnits + WorldWidthUnits) % WorldWidthUnits
		if d < best {
			best = d
			top = (StatusRows + slot.GapStart) * TileSize
			bottom = top + GapHeight*TileSize
			ok = true
		}
	}
	return top, bottom, ok
}
