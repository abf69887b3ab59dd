//go:build !android

package game

import (
	"io"
	"math"
	"time"

	"github.com/hajimehoshi/oto/v2"

	"dragonsleap/internal/engine"
)

const (
	SampleRate   = 44100
	ChannelCount = 2
	BitDepth     = 0 // 32-bit float (oto.FormatFloat32LE)
)

// SoundKind identifies different sound effects.
type SoundKind int

const (
	SoundJump SoundKind = iota
	SoundLand
	SoundPause
	soundCount
)

// AudioSystem plays procedural sound effects.
type AudioSystem struct {
	ctx    *oto.Context
	ready  chan struct{}
	sounds [soundCount][]byte
}

var globalAudio *AudioSystem

var sfxVolume = 0.5

// InitAudio opens the output device and renders every effect up front.
func InitAudio() error {
	ctx, ready, err := oto.NewContext(SampleRate, ChannelCount, BitDepth)
	if err != nil {
		return err
	}
	a := &AudioSystem{ctx: ctx, ready: ready}
	for k := SoundKind(0); k < soundCount; k++ {
		a.sounds[k] = generateSound(k)
	}
	globalAudio = a
	return nil
}

// AttachAudio plays jump and landing effects off the game's event bus.
func AttachAudio(bus *engine.EventBus) {
	bus.Subscribe(engine.EventJump, func(engine.Event) { PlaySound(SoundJump) })
	bus.Subscribe(engine.EventLanded, func(engine.Event) { PlaySound(SoundLand) })
}

func PlaySound(kind SoundKind) {
	if globalAudio == nil {
		return
	}
	select {
	case <-globalAudio.ready:
	default:
		return
	}
	samples := globalAudio.sounds[kind]
	if len(samples) == 0 {
		return
	}
	go func() {
		reader := &soundReader{data: samples}
		player := globalAudio.ctx.NewPlayer(reader)
		player.SetVolume(sfxVolume)
		player.Play()
		for player.IsPlaying() {
			time.Sleep(10 * time.Millisecond)
		}
		player.Close()
	}()
}

type soundReader struct {
	data []byte
	pos  int
}

func (r *soundReader) Read(p []byte) (int, error) {
	if r.pos >= len(r.data) {
		return 0, io.EOF
	}
	n := copy(p, r.data[r.pos:])
	r.pos += n
	return n, nil
}

// putStereoF32 writes a [-1,1] sample as float32 LE to both stereo channels at frame i.
func putStereoF32(buf []byte, i int, sample float64) {
	v := math.Float32bits(float32(sample))
	for c := 0; c < ChannelCount; c++ {
		o := i*8 + c*4
		buf[o] = byte(v)
		buf[o+1] = byte(v >> 8)
		buf[o+2] = byte(v >> 16)
		buf[o+3] = byte(v >> 24)
	}
}

func softSat(x float64) float64 {
	if x > 1.0 {
		return 1.0 - 0.5/(x)
	}
	if x < -1.0 {
		return -1.0 + 0.5/(-x)
	}
	return x - x*x*x/3.0
}

// adsr returns an envelope at normalized progress [0,1].
// attack/decay/release are fractions of the total duration.
func adsr(progress, attack, decay, sustain, release float64) float64 {
	switch {
	case progress < attack:
		return progress / attack
	case progress < attack+decay:
		return 1.0 - (progress-attack)/decay*(1.0-sustain)
	case progress < 1.0-release:
		return sustain
	default:
		return sustain * (1.0 - (progress-(1.0-release))/release)
	}
}

func fm(t, carrier, modRatio, modIdx float64) float64 {
	mod := math.Sin(2 * math.Pi * carrier * modRatio * t)
	return math.Sin(2*math.Pi*carrier*t + modIdx*mod)
}

// lcg advances an LCG seed and returns a noise sample in [-1,1].
func lcg(seed *uint64) float64 {
	*seed = *seed*6364136223846793005 + 1442695040888963407
	return float64(int64(*seed>>33)-int64(1<<30)) / float64(1<<30)
}

func makeBuf(n int) []byte { return make([]byte, n*8) }

func generateSound(kind SoundKind) []byte {
	switch kind {
	case SoundJump:
		return genJump()
	case SoundLand:
		return genLand()
	case SoundPause:
		return genPause()
	}
	return nil
}

// genJump: wing flap, a quick upward FM sweep.
func genJump() []byte {
	n := SampleRate * 120 / 1000
	buf := makeBuf(n)
	for i := 0; i < n; i++ {
		t := float64(i) / SampleRate
		p := float64(i) / float64(n)
		env := adsr(p, 0.02, 0.4, 0.3, 0.3)
		freq := 320 + 640*p*p
		s := fm(t, freq, 1.5, 2.0*env) * env * 0.4
		putStereoF32(buf, i, softSat(s))
	}
	return buf
}

// genLand: low thud with a short burst of filtered noise.
func genLand() []byte {
	n := SampleRate * 90 / 1000
	buf := makeBuf(n)
	seed := uint64(0xD2A6)
	lp := 0.0
	for i := 0; i < n; i++ {
		t := float64(i) / SampleRate
		p := float64(i) / float64(n)
		lp = lp*0.85 + lcg(&seed)*0.15
		thump := math.Sin(2*math.Pi*(90-40*p)*t) * math.Exp(-p*9)
		s := (thump*0.6 + lp*0.4*math.Exp(-p*14)) * 0.7
		putStereoF32(buf, i, softSat(s))
	}
	return buf
}

// genPause: crisp click + brief high tone.
func genPause() []byte {
	n := SampleRate * 65 / 1000
	buf := makeBuf(n)
	for i := 0; i < n; i++ {
		t := float64(i) / SampleRate
		p := float64(i) / float64(n)
		env := adsr(p, 0.004, 0.55, 0.0, 0.1)
		freq := 1400 - 700*p
		s := fm(t, freq, 1.0, 0.6) * env * 0.38
		putStereoF32(buf, i, softSat(s))
	}
	return buf
}
