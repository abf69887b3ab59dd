package session

import "time"

const FrameRate = 60

// Pacer blocks until the next display refresh of a fixed-rate clock.
type Pacer struct {
	ticker *time.Ticker
}

func NewPacer(hz int) *Pacer {
	return &Pacer{ticker: time.NewTicker(time.Second / time.Duration(hz))}
}

func (p *Pacer) Wait() {
	<-p.ticker.C
}

func (p *Pacer) Stop() {
	p.ticker.Stop()
}

// NoWait never blocks; headless runs step as fast as they can.
type NoWait struct{}

func (NoWait) Wait() {}
