package session

import (
	"bytes"
	"strings"
	"testing"

	"dragonsleap/internal/engine"
	"dragonsleap/internal/video"
)

func newTestSession(t *testing.T, input engine.Input) *Session {
	t.Helper()
	s, err := New(engine.DefaultConfig(), video.NewScreen(), input)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return s
}

func TestSessionRunFrames(t *testing.T) {
	s := newTestSession(t, &Script{})
	if err := s.Run(10, nil); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if s.Driver.Frame != 10 {
		t.Fatalf("Frame = %d, want 10", s.Driver.Frame)
	}
	if s.Driver.Camera.X != 10 {
		t.Fatalf("Camera.X = %d, want 10", s.Driver.Camera.X)
	}
}

func TestSessionRunQuit(t *testing.T) {
	s := newTestSession(t, &Script{})
	n := 0
	err := s.Run(0, func() bool {
		n++
		return n > 5
	})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if s.Driver.Frame != 5 {
		t.Fatalf("Frame = %d, want 5", s.Driver.Frame)
	}
}

func TestSessionPause(t *testing.T) {
	s := newTestSession(t, &Script{})
	s.Run(3, nil)
	s.TogglePause()
	if s.State != StatePaused {
		t.Fatalf("State = %v, want paused", s.State)
	}
	x, y := s.Driver.Camera.X, s.Driver.Player.Y
	s.Run(20, nil)
	if s.Driver.Camera.X != x || s.Driver.Player.Y != y {
		t.Fatalf("world moved while paused")
	}
	if s.Driver.Frame != 3 {
		t.Fatalf("Frame = %d, want 3", s.Driver.Frame)
	}
	s.TogglePause()
	s.Run(1, nil)
	if s.Driver.Camera.X != x+1 {
		t.Fatalf("Camera.X = %d, want %d", s.Driver.Camera.X, x+1)
	}
}

func TestSessionReset(t *testing.T) {
	s := newTestSession(t, &Script{})
	s.Run(100, nil)
	s.TogglePause()
	s.Reset()
	if s.State != StatePlaying {
		t.Fatalf("State = %v, want playing", s.State)
	}
	if s.Driver.Frame != 0 || s.Driver.Camera.X != 0 {
		t.Fatalf("driver not reset: frame %d camera %d", s.Driver.Frame, s.Driver.Camera.X)
	}
}

func TestSessionRendersStatusBand(t *testing.T) {
	s := newTestSession(t, &Script{})
	s.Run(1, nil)
	// Row 3 of the status band is the edge tile; the frame must no longer
	// be the zero image.
	blank := true
	for _, b := range s.Screen.Frame.Pix {
		if b != 0 {
			blank = false
			break
		}
	}
	if blank {
		t.Fatal("frame is blank after a tick")
	}
}

func TestSessionBadConfig(t *testing.T) {
	cfg := engine.DefaultConfig()
	cfg.ScrollSpeed = 0
	if _, err := New(cfg, video.NewScreen(), &Script{}); err == nil {
		t.Fatal("New accepted a zero scroll speed")
	}
}

func TestLogEvents(t *testing.T) {
	s := newTestSession(t, &Script{Frames: map[uint64]bool{1: true}})
	var buf bytes.Buffer
	LogEvents(s.Events, &buf)
	s.Run(1, nil)
	if got := buf.String(); !strings.Contains(got, "frame 1: jump") {
		t.Fatalf("log = %q, want a jump on frame 1", got)
	}
}
