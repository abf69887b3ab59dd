package term

import (
	"image"
	"testing"

	"github.com/gdamore/tcell/v2"

	"dragonsleap/internal/engine"
)

func newSim(t *testing.T, w, h int) tcell.SimulationScreen {
	t.Helper()
	sim := tcell.NewSimulationScreen("")
	if err := sim.Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}
	sim.SetSize(w, h)
	t.Cleanup(sim.Fini)
	return sim
}

func newFrontend(t *testing.T, sc tcell.Screen) *Frontend {
	t.Helper()
	f, err := New(sc, engine.DefaultConfig(), false, nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return f
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		ev   tcell.Event
		want Action
	}{
		{"space", tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone), ActionJump},
		{"up", tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone), ActionJump},
		{"pause", tcell.NewEventKey(tcell.KeyRune, 'p', tcell.ModNone), ActionPause},
		{"reset", tcell.NewEventKey(tcell.KeyRune, 'R', tcell.ModNone), ActionReset},
		{"q", tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone), ActionQuit},
		{"escape", tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), ActionQuit},
		{"ctrl-c", tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl), ActionQuit},
		{"other rune", tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone), ActionNone},
		{"resize", tcell.NewEventResize(80, 24), ActionResize},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Classify(tt.ev); got != tt.want {
				t.Fatalf("Classify = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFit(t *testing.T) {
	src := image.Rect(0, 0, engine.ScreenWidth, engine.ScreenHeight)
	tests := []struct {
		w, h int
		want image.Rectangle
	}{
		{256, 240, image.Rect(0, 0, 256, 240)},
		{512, 240, image.Rect(128, 0, 384, 240)},
		{100, 300, image.Rect(0, 103, 100, 196)},
		{64, 60, image.Rect(0, 0, 64, 60)},
	}
	for _, tt := range tests {
		if got := Fit(src, tt.w, tt.h); got != tt.want {
			t.Errorf("Fit(%d, %d) = %v, want %v", tt.w, tt.h, got, tt.want)
		}
	}
}

func TestDrawHalfBlocks(t *testing.T) {
	sim := newSim(t, 64, 30)
	f := newFrontend(t, sim)
	if err := f.Session.Tick(); err != nil {
		t.Fatalf("Tick: %v", err)
	}
	frame := f.Session.Screen.Frame
	f.Draw(frame)

	cells, w, h := sim.GetContents()
	if w != 64 || h != 30 {
		t.Fatalf("size = %dx%d, want 64x30", w, h)
	}
	for i, c := range cells {
		if len(c.Runes) == 0 || c.Runes[0] != halfBlock {
			t.Fatalf("cell %d = %q, want half block", i, c.Runes)
		}
	}

	// 256x240 fills 64x60 exactly: one scaled pixel per 4x4 block,
	// sampled at the block centre.
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			top, bottom := cellColors(f.scaled, x, y)
			if want := frame.RGBAAt(4*x+2, 8*y+2); top != want {
				t.Fatalf("cell (%d,%d) top = %v, want %v", x, y, top, want)
			}
			if want := frame.RGBAAt(4*x+2, 8*y+6); bottom != want {
				t.Fatalf("cell (%d,%d) bottom = %v, want %v", x, y, bottom, want)
			}
		}
	}
}

func TestDrawLetterbox(t *testing.T) {
	sim := newSim(t, 128, 30)
	f := newFrontend(t, sim)
	f.Session.Tick()
	f.Draw(f.Session.Screen.Frame)

	// The picture is 64 cells wide, centred; the margins stay black.
	top, bottom := cellColors(f.scaled, 0, 10)
	if top.R|top.G|top.B != 0 || bottom.R|bottom.G|bottom.B != 0 {
		t.Fatalf("margin = %v/%v, want black", top, bottom)
	}
}

func TestLoopFrames(t *testing.T) {
	sim := newSim(t, 40, 20)
	f := newFrontend(t, sim)
	if err := f.Loop(5); err != nil {
		t.Fatalf("Loop: %v", err)
	}
	if f.Session.Driver.Frame != 5 {
		t.Fatalf("Frame = %d, want 5", f.Session.Driver.Frame)
	}
}

func TestLoopKeys(t *testing.T) {
	sim := newSim(t, 40, 20)
	f := newFrontend(t, sim)
	jumps := 0
	f.Session.Events.Subscribe(engine.EventJump, func(engine.Event) { jumps++ })

	sim.InjectKey(tcell.KeyRune, ' ', tcell.ModNone)
	sim.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)
	if err := f.Loop(0); err != nil {
		t.Fatalf("Loop: %v", err)
	}
	// The press is either consumed by a frame or still latched.
	if jumps == 0 && !f.latch.JumpPressed() {
		t.Fatal("jump key lost")
	}
}
