package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"runtime/debug"
	"time"

	"dragonsleap/internal/engine"
	"dragonsleap/internal/game"
	"dragonsleap/internal/session"
	"dragonsleap/internal/term"
	"dragonsleap/internal/video"
)

var (
	uiFlag     = flag.String("ui", "desktop", "Frontend: desktop, term, headless")
	framesFlag = flag.Int("frames", 600, "Frames to run (headless only)")
	shotFlag   = flag.String("shot", "", "Write the last frame as BMP to this file (headless only)")
	seedFlag   = flag.Uint64("seed", 0, "Obstacle RNG seed (default: $DRAGONSLEAP_SEED, clock when interactive)")
	speedFlag  = flag.Int("speed", engine.DefaultScrollSpeed, "Scroll speed in 1/16 pixels per frame")
	gapFlag    = flag.Int("gap", 0, "Pin every gap to this row instead of drawing it at random")
	autoFlag   = flag.Bool("auto", false, "Let the autopilot fly")
	debugFlag  = flag.Bool("debug", false, "Log game events to stderr")
)

func main() {
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "\ndragonsleap crashed: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()

	flag.Parse()

	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(2)
	}

	var logw io.Writer
	if *debugFlag {
		logw = os.Stderr
	}

	switch *uiFlag {
	case "desktop":
		err = game.RunDesktop(cfg, *autoFlag, logw)
	case "term":
		err = term.Run(cfg, *autoFlag, logw)
	case "headless":
		err = runHeadless(cfg, logw)
	default:
		err = fmt.Errorf("unknown ui %q", *uiFlag)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "dragonsleap: %v\n", err)
		os.Exit(1)
	}
}

// loadConfig layers defaults, environment and explicitly set flags.
func loadConfig() (engine.Config, error) {
	cfg := engine.DefaultConfig()
	envSeed := os.Getenv("DRAGONSLEAP_SEED") != ""
	if err := cfg.LoadEnv(); err != nil {
		return cfg, err
	}

	set := make(map[string]bool)
	flag.Visit(func(f *flag.Flag) { set[f.Name] = true })
	if set["seed"] {
		cfg.Seed = *seedFlag
	} else if !envSeed && *uiFlag != "headless" {
		cfg.Seed = uint64(time.Now().UnixNano())
	}
	if set["speed"] {
		cfg.ScrollSpeed = *speedFlag
	}
	if set["gap"] {
		cfg.FixedGap = true
		cfg.GapStart = *gapFlag
	}
	return cfg, cfg.Validate()
}

func runHeadless(cfg engine.Config, logw io.Writer) error {
	screen := video.NewScreen()
	screen.Wait = session.NoWait{}.Wait

	var input engine.Input = &session.Script{}
	if *autoFlag {
		input = &session.AutoPilot{}
	}
	s, err := session.New(cfg, screen, input)
	if err != nil {
		return err
	}
	if logw != nil {
		session.LogEvents(s.Events, logw)
	}
	if err := s.Run(*framesFlag, nil); err != nil {
		return err
	}

	d := s.Driver
	fmt.Printf("frames=%d camera=%d player_y=%d\n", d.Frame, d.Camera.X, d.Player.Y)
	for i, slot := range d.Streamer.Slots {
		fmt.Printf("slot %d: column=%d cycles=%d gap=%d drawn=%v\n",
			i, slot.WorldColumn(), slot.Cycles, slot.GapStart, slot.Drawn)
	}

	if *shotFlag == "" {
		return nil
	}
	f, err := os.Create(*shotFlag)
	if err != nil {
		return fmt.Errorf("create screenshot: %w", err)
	}
	if err := screen.WriteBMP(f); err != nil {
		f.Close()
		return fmt.Errorf("write screenshot: %w", err)
	}
	return f.Close()
}
