package engine

import "fmt"

const Title = "DRAGON'S LEAP"

// Display is the display-sync collaborator. WaitNextFrame blocks until the
// next refresh boundary; SetViewportScroll positions the scrolled part of
// the picture (everything below SplitY) across the two tile buffers.
type Display interface {
	WaitNextFrame()
	SetViewportScroll(x int)
}

// Sprites is the render collaborator. Anything not submitted between Begin
// and End is hidden.
type Sprites interface {
	Begin()
	Submit(d Drawable, x, y int)
	End()
}

// Input reports whether the jump control was pressed since the last frame.
type Input interface {
	JumpPressed() bool
}

type Drawable int

const (
	DrawDragon Drawable = iota
	DrawDragonFlap
)

// Driver owns the whole game state and runs the per-frame sequence.
type Driver struct {
	Camera   Camera
	Player   Player
	Queue    *WriteQueue
	Streamer *Streamer
	VRAM     *VRAM
	Events   *EventBus
	Frame    uint64 // frames stepped since Reset

	cfg     Config
	display Display
	sprites Sprites
	input   Input
}

func NewDriver(cfg Config, display Display, sprites Sprites, input Input, events *EventBus) (*Driver, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	q := NewWriteQueue()
	d := &Driver{
		Queue:    q,
		Streamer: NewStreamer(cfg, q, events),
		VRAM:     &VRAM{},
		Events:   events,
		cfg:      cfg,
		display:  display,
		sprites:  sprites,
		input:    input,
	}
	d.Reset()
	return d, nil
}

// Reset returns every component to its start-of-game state.
func (d *Driver) Reset() {
	d.Camera = NewCamera(d.cfg.ScrollSpeed)
	d.Player = NewPlayer()
	d.Queue.Clear()
	d.Streamer.Reset()
	d.VRAM.Reset(Title)
	d.Frame = 0
}

// Step runs one frame: wait for the refresh boundary, flush and clear the
// write queue, set the viewport from the camera, advance camera and player,
// stream obstacles, then submit the player sprite.
func (d *Driver) Step() error {
	d.display.WaitNextFrame()
	d.Frame++
	if err := d.VRAM.Apply(d.Queue.Bytes()); err != nil {
		return fmt.Errorf("flush frame %d: %w", d.Frame, err)
	}
	d.Queue.Clear()
	d.display.SetViewportScroll(d.Camera.X)

	d.Camera.Advance()

	jump := d.input.JumpPressed()
	grounded := d.Player.Grounded()
	d.Player.Advance(jump)
	if jump {
		d.Events.Emit(Event{Type: EventJump, Frame: d.Frame})
	} else if !grounded && d.Player.Grounded() {
		d.Events.Emit(Event{Type: EventLanded, Frame: d.Frame})
	}

	d.Streamer.Update(d.Camera.X)

	d.sprites.Begin()
	sprite := DrawDragon
	if d.Player.VelY < 0 {
		sprite = DrawDragonFlap
	}
	d.sprites.Submit(sprite, d.Player.X, d.Player.Y)
	d.sprites.End()
	return nil
}

// Present redraws the current picture without advancing the game, for
// paused frames.
func (d *Driver) Present() {
	d.display.WaitNextFrame()
	d.display.SetViewportScroll(d.Camera.X)
}
