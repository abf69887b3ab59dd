//go:build !android

package game

import (
	"fmt"
	"io"
	"os"
	"runtime"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"dragonsleap/internal/engine"
	"dragonsleap/internal/session"
	"dragonsleap/internal/video"
)

// RunDesktop opens a window and plays until it is closed. With auto set the
// dragon flies itself. Event lines go to debug when it is non-nil.
func RunDesktop(cfg engine.Config, auto bool, debug io.Writer) error {
	runtime.LockOSThread()

	window, err := initWindow()
	if err != nil {
		return err
	}
	defer glfw.Terminate()
	defer window.Destroy()

	if err := gl.Init(); err != nil {
		return fmt.Errorf("gl init: %w", err)
	}

	if err := InitAudio(); err != nil {
		fmt.Fprintf(os.Stderr, "audio init failed (continuing without sound): %v\n", err)
	}

	gl.Disable(gl.DEPTH_TEST)
	gl.Disable(gl.CULL_FACE)
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	gl.ClearColor(0, 0, 0, 1)

	rend, err := NewRenderer()
	if err != nil {
		return fmt.Errorf("renderer: %w", err)
	}
	defer rend.Destroy()

	// Vsync paces the game on 60 Hz displays; anything else gets a ticker
	// on top so the world still scrolls at 60 steps a second.
	var pacer *session.Pacer
	if hz := refreshRate(); hz != session.FrameRate {
		pacer = session.NewPacer(session.FrameRate)
		defer pacer.Stop()
		fmt.Fprintf(os.Stderr, "display refresh %d Hz, pacing at %d Hz\n", hz, session.FrameRate)
	}

	screen := video.NewScreen()
	screen.Wait = func() {
		if pacer != nil {
			pacer.Wait()
		}
		window.SwapBuffers()
		glfw.PollEvents()
	}

	var input engine.Input = &session.Edge{Down: func() bool { return JumpHeld(window) }}
	if auto {
		input = &session.AutoPilot{}
	}
	s, err := session.New(cfg, screen, input)
	if err != nil {
		return err
	}
	AttachAudio(s.Events)
	if debug != nil {
		session.LogEvents(s.Events, debug)
	}

	keys := NewInput()
	for !window.ShouldClose() {
		if keys.JustPressed(window, glfw.KeyEscape) {
			window.SetShouldClose(true)
			continue
		}
		if keys.JustPressed(window, glfw.KeyP) {
			s.TogglePause()
			PlaySound(SoundPause)
		}
		if keys.JustPressed(window, glfw.KeyR) {
			s.Reset()
		}

		if err := s.Tick(); err != nil {
			return err
		}

		fbW, fbH := window.GetFramebufferSize()
		if fbW <= 0 || fbH <= 0 {
			continue
		}
		rend.Upload(screen.Frame)
		rend.Draw(fbW, fbH)
	}
	return nil
}
