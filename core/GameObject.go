package core

import "math/rand"

const BallRadius = 2 // 球半徑

const PaddleWidth = 3   // 球拍寬度
const PaddleHeight = 20 // 球拍高度
const PaddleStep = 3    // 球拍每次移動距離

const SpeedUpFactor = 1.1 // 每次擊球加速倍率

// Playfield is the fixed game area every entity is bounded by.
type Playfield struct {
	Width, Height float64
}

func DefaultPlayfield() Playfield {
	return Playfield{Width: 256, Height: 192}
}

func (f Playfield) MidX() float64 {
	return f.Width * 0.5
}

func (f Playfield) MidY() float64 {
	return f.Height * 0.5
}

// Side identifies a player and the paddle they own.
type Side int

const (
	PlayerOne Side = iota
	PlayerTwo
)

func (s Side) String() string {
	switch s {
	case PlayerOne:
		return "Player one"
	case PlayerTwo:
		return "Player two"
	}
	return "unknown"
}

type GameObject struct {
	X, Y float64
}

type Ball struct {
	GameObject
	VX, VY float64

	radius      float64
	paddleReach float64
	field       Playfield
	rng         *rand.Rand
}

type Paddle struct {
	GameObject
	Width, Height float64
	Side          Side

	field Playfield
}
