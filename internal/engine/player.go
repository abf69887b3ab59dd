package engine

// Player is the dragon's vertical state. X never changes after init.
type Player struct {
	X    int
	Y    int   // display units, derived from SubY
	SubY Fixed // sub-units
	VelY Fixed // sub-units per frame, positive is down
}

func NewPlayer() Player {
	p := Player{}
	p.Reset()
	return p
}

// Reset places the player mid-field at rest.
func (p *Player) Reset() {
	p.X = PlayerX
	p.Y = (MinY + MaxY) / 2
	p.SubY = ToFixed(p.Y)
	p.VelY = 0
}

// Advance integrates one frame. The order is fixed: a jump replaces the
// current velocity, gravity is added and capped, position is integrated,
// then position is clamped to [MinY, MaxY] and an impact zeroes velocity.
func (p *Player) Advance(jump bool) {
	if jump {
		p.VelY = JumpSpeed
	}
	p.VelY += Gravity
	if p.VelY > MaxGravity {
		p.VelY = MaxGravity
	}
	p.SubY += p.VelY
	p.Y = p.SubY.Units()
	if p.Y < MinY {
		p.Y = MinY
		p.SubY = ToFixed(MinY)
		p.VelY = 0
	}
	if p.Y > MaxY {
		p.Y = MaxY
		p.SubY = ToFixed(MaxY)
		p.VelY = 0
	}
}

// Grounded reports whether the player is on the lower bound.
func (p *Player) Grounded() bool {
	return p.Y == MaxY
}
