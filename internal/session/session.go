package session

import (
	"fmt"
	"io"

	"dragonsleap/internal/engine"
	"dragonsleap/internal/video"
)

type State int

const (
	StatePlaying State = iota
	StatePaused
)

func (s State) String() string {
	if s == StatePaused {
		return "paused"
	}
	return "playing"
}

// Session ties the frame driver to a screen and tracks pause state.
type Session struct {
	State  State
	Driver *engine.Driver
	Screen *video.Screen
	Events *engine.EventBus
}

// New builds a session. Inputs that need to observe the game (AutoPilot)
// are attached to the new driver.
func New(cfg engine.Config, screen *video.Screen, input engine.Input) (*Session, error) {
	bus := engine.NewEventBus()
	d, err := engine.NewDriver(cfg, screen, screen, input, bus)
	if err != nil {
		return nil, fmt.Errorf("new driver: %w", err)
	}
	if a, ok := input.(interface{ Attach(*engine.Driver) }); ok {
		a.Attach(d)
	}
	return &Session{
		State:  StatePlaying,
		Driver: d,
		Screen: screen,
		Events: bus,
	}, nil
}

func (s *Session) TogglePause() {
	if s.State == StatePaused {
		s.State = StatePlaying
	} else {
		s.State = StatePaused
	}
}

// Reset restarts the game and resumes play.
func (s *Session) Reset() {
	s.Driver.Reset()
	s.State = StatePlaying
}

// Tick runs one frame, or holds the picture while paused, then renders.
func (s *Session) Tick() error {
	if s.State == StatePaused {
		s.Driver.Present()
	} else if err := s.Driver.Step(); err != nil {
		return err
	}
	s.Screen.Render(s.Driver.VRAM)
	return nil
}

// Run ticks until quit reports true or, when frames > 0, that many frames
// have been ticked.
func (s *Session) Run(frames int, quit func() bool) error {
	for n := 0; frames <= 0 || n < frames; n++ {
		if quit != nil && quit() {
			return nil
		}
		if err := s.Tick(); err != nil {
			return err
		}
	}
	return nil
}

// LogEvents writes one line per game event to w.
func LogEvents(bus *engine.EventBus, w io.Writer) {
	bus.SubscribeAll(func(e engine.Event) {
		switch e.Type {
		case engine.EventColumnDrawn:
			fmt.Fprintf(w, "frame %d: %s slot=%d col=%d\n", e.Frame, e.Type, e.Slot, e.Column)
		case engine.EventRecycled:
			fmt.Fprintf(w, "frame %d: %s slot=%d\n", e.Frame, e.Type, e.Slot)
		default:
			fmt.Fprintf(w, "frame %d: %s\n", e.Frame, e.Type)
		}
	})
}
