package session

import (
	"sync/atomic"

	"dragonsleap/internal/engine"
)

// Edge turns a level signal (key held) into a press edge.
type Edge struct {
	Down func() bool
	prev bool
}

func (e *Edge) JumpPressed() bool {
	down := e.Down()
	jp := down && !e.prev
	e.prev = down
	return jp
}

// Latch collects presses reported from another goroutine, such as a
// terminal event loop, and hands out at most one per frame.
type Latch struct {
	pressed atomic.Bool
}

func (l *Latch) Press() {
	l.pressed.Store(true)
}

func (l *Latch) JumpPressed() bool {
	return l.pressed.Swap(false)
}

// Script presses jump on the listed frame numbers (1-based).
type Script struct {
	Frames map[uint64]bool
	n      uint64
}

func (s *Script) JumpPressed() bool {
	s.n++
	return s.Frames[s.n]
}

// AutoPilot flies through the next gap: it jumps whenever the dragon is
// falling and its feet reach the bottom of the gap ahead. Without a gap in
// sight it holds the middle of the field.
type AutoPilot struct {
	d *engine.Driver
}

func (a *AutoPilot) Attach(d *engine.Driver) {
	a.d = d
}

func (a *AutoPilot) JumpPressed() bool {
	if a.d == nil {
		return false
	}
	p := &a.d.Player
	floor := (engine.MinY+engine.MaxY)/2 + engine.PlayerSize
	if _, bottom, ok := a.d.Streamer.GapAhead(a.d.Camera.X); ok {
		floor = bottom - 2
	}
	return p.VelY > 0 && p.Y+engine.PlayerSize >= floor
}
