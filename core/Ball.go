package core

import "math/rand"

// NewBall creates a ball at the centre of the field with a random direction.
// paddleReach is the vertical span of a paddle's hit band.
func NewBall(field Playfield, paddleReach float64, rng *rand.Rand) *Ball {
	b := &Ball{
		radius:      BallRadius,
		paddleReach: paddleReach,
		field:       field,
		rng:         rng,
	}
	b.Reset()
	return b
}

func (b *Ball) Radius() float64 {
	return b.radius
}

// Reset moves the ball back to the centre at unit speed in a random quadrant.
func (b *Ball) Reset() {
	b.X = b.field.MidX()
	b.Y = b.field.MidY()
	b.VX = randomUnit(b.rng)
	b.VY = randomUnit(b.rng)
}

// Step advances the ball one tick and reports whether it hit the top or bottom wall.
func (b *Ball) Step() bool {
	b.X += b.VX
	b.Y += b.VY

	if b.isCollidesWithWall(b.Y) {
		b.VY = -b.VY
		return true
	}
	return false
}

func (b *Ball) isCollidesWithWall(y float64) bool {
	return !(b.radius <= y && y < b.field.Height-b.radius)
}

// IsOutOfBounds reports whether x has left the field through a side wall.
func (b *Ball) IsOutOfBounds(x float64) bool {
	return x <= 0 || x >= b.field.Width
}

func (b *Ball) CollidesWithLeftPaddle(paddleFrontX, paddleTopY float64) bool {
	return b.X <= paddleFrontX && b.withinReach(paddleTopY)
}

func (b *Ball) CollidesWithRightPaddle(paddleFrontX, paddleTopY float64) bool {
	return b.X >= paddleFrontX && b.withinReach(paddleTopY)
}

func (b *Ball) withinReach(paddleTopY float64) bool {
	return paddleTopY <= b.Y && b.Y <= paddleTopY+b.paddleReach
}

// Deflect sends the ball back horizontally and speeds it up. Hits compound.
func (b *Ball) Deflect() {
	b.VX = -b.VX
	b.VX *= SpeedUpFactor
	b.VY *= SpeedUpFactor
}

func randomUnit(rng *rand.Rand) float64 {
	if rng.Intn(2) == 0 {
		return -1
	}
	return 1
}
