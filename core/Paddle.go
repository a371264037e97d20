package core

// NewPaddle places a paddle at the start position for side.
func NewPaddle(field Playfield, side Side) *Paddle {
	p := &Paddle{
		Width:  PaddleWidth,
		Height: PaddleHeight,
		Side:   side,
		field:  field,
	}
	p.Y = field.MidY() - PaddleHeight
	switch side {
	case PlayerOne:
		p.X = field.Width*0.05 - 5
	case PlayerTwo:
		p.X = field.Width * 0.95
	}
	return p
}

// Move applies up then down, each only if the result stays in range.
func (p *Paddle) Move(pressedUp, pressedDown bool) {
	if pressedUp {
		p.tryMoveTo(p.Y - PaddleStep)
	}
	if pressedDown {
		p.tryMoveTo(p.Y + PaddleStep)
	}
}

func (p *Paddle) tryMoveTo(y float64) {
	if p.ValidRange(y) {
		p.Y = y
	}
}

// ValidRange excludes both edges.
func (p *Paddle) ValidRange(y float64) bool {
	return 0 < y && y < p.field.Height-p.Height
}

// FrontEdge is the x the ball is tested against. Player two's plane sits one
// paddle width in front of its anchor, mirroring player one.
func (p *Paddle) FrontEdge() float64 {
	if p.Side == PlayerOne {
		return p.X + p.Width
	}
	return p.X - p.Width
}
