// Package term plays the game in a terminal, two picture rows per text
// cell using upper-half blocks.
package term

import (
	"fmt"
	"image"
	"image/color"
	"io"

	"github.com/gdamore/tcell/v2"
	xdraw "golang.org/x/image/draw"

	"dragonsleap/internal/engine"
	"dragonsleap/internal/session"
	"dragonsleap/internal/video"
)

const halfBlock = '▀'

type Action int

const (
	ActionNone Action = iota
	ActionJump
	ActionPause
	ActionReset
	ActionQuit
	ActionResize
)

// Classify maps a terminal event to a game action.
func Classify(ev tcell.Event) Action {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		return ActionResize
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyUp:
			return ActionJump
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return ActionQuit
		case tcell.KeyRune:
			switch ev.Rune() {
			case ' ', 'w', 'k':
				return ActionJump
			case 'p', 'P':
				return ActionPause
			case 'r', 'R':
				return ActionReset
			case 'q', 'Q':
				return ActionQuit
			}
		}
	}
	return ActionNone
}

// Frontend draws session frames onto a tcell screen.
type Frontend struct {
	Screen  tcell.Screen
	Session *session.Session
	latch   *session.Latch
	scaled  *image.RGBA
}

// New builds a session for sc. Jumps come from key presses unless auto is
// set. Event lines go to debug when it is non-nil.
func New(sc tcell.Screen, cfg engine.Config, auto bool, debug io.Writer) (*Frontend, error) {
	f := &Frontend{Screen: sc, latch: &session.Latch{}}
	var input engine.Input = f.latch
	if auto {
		input = &session.AutoPilot{}
	}
	s, err := session.New(cfg, video.NewScreen(), input)
	if err != nil {
		return nil, err
	}
	if debug != nil {
		session.LogEvents(s.Events, debug)
	}
	f.Session = s
	return f, nil
}

// Run plays on the real terminal until the player quits.
func Run(cfg engine.Config, auto bool, debug io.Writer) error {
	sc, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("new screen: %w", err)
	}
	if err := sc.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer sc.Fini()
	sc.HideCursor()

	f, err := New(sc, cfg, auto, debug)
	if err != nil {
		return err
	}
	pacer := session.NewPacer(session.FrameRate)
	defer pacer.Stop()
	f.Session.Screen.Wait = pacer.Wait
	return f.Loop(0)
}

// Loop ticks and draws until a quit key or, when frames > 0, that many
// frames. Keys are read on a separate goroutine and applied between frames.
func (f *Frontend) Loop(frames int) error {
	actions := make(chan Action, 16)
	done := make(chan struct{})
	defer close(done)
	go f.pollKeys(actions, done)

	for n := 0; frames <= 0 || n < frames; n++ {
		for pending := true; pending; {
			select {
			case a := <-actions:
				switch a {
				case ActionPause:
					f.Session.TogglePause()
				case ActionReset:
					f.Session.Reset()
				case ActionResize:
					f.Screen.Sync()
				case ActionQuit:
					return nil
				}
			default:
				pending = false
			}
		}
		if err := f.Session.Tick(); err != nil {
			return err
		}
		f.Draw(f.Session.Screen.Frame)
	}
	return nil
}

func (f *Frontend) pollKeys(actions chan<- Action, done <-chan struct{}) {
	for {
		ev := f.Screen.PollEvent()
		if ev == nil {
			return
		}
		a := Classify(ev)
		if a == ActionJump {
			f.latch.Press()
			continue
		}
		if a == ActionNone {
			continue
		}
		select {
		case actions <- a:
		case <-done:
			return
		}
	}
}

// Draw scales frame into the terminal and shows it.
func (f *Frontend) Draw(frame *image.RGBA) {
	w, h := f.Screen.Size()
	if w <= 0 || h <= 0 {
		return
	}
	if f.scaled == nil || f.scaled.Rect.Dx() != w || f.scaled.Rect.Dy() != 2*h {
		f.scaled = image.NewRGBA(image.Rect(0, 0, w, 2*h))
	}
	xdraw.Draw(f.scaled, f.scaled.Rect, image.Black, image.Point{}, xdraw.Src)
	xdraw.NearestNeighbor.Scale(f.scaled, Fit(frame.Rect, w, 2*h), frame, frame.Rect, xdraw.Src, nil)

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			top, bottom := cellColors(f.scaled, x, y)
			style := tcell.StyleDefault.
				Foreground(rgb(top)).
				Background(rgb(bottom))
			f.Screen.SetContent(x, y, halfBlock, nil, style)
		}
	}
	f.Screen.Show()
}

// Fit returns the largest rectangle with src's aspect ratio centred in a
// w by h pixel area.
func Fit(src image.Rectangle, w, h int) image.Rectangle {
	sw, sh := src.Dx(), src.Dy()
	dw, dh := w, w*sh/sw
	if dh > h {
		dw, dh = h*sw/sh, h
	}
	x, y := (w-dw)/2, (h-dh)/2
	return image.Rect(x, y, x+dw, y+dh)
}

// cellColors returns the pixels shown in the upper and lower half of cell
// (x, y).
func cellColors(img *image.RGBA, x, y int) (top, bottom color.RGBA) {
	return img.RGBAAt(x, 2*y), img.RGBAAt(x, 2*y+1)
}

func rgb(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
