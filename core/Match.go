package core

import (
	"PongArcade/logger"
	"fmt"
	"math/rand"
	"strconv"

	"github.com/google/uuid"
)

const PausedLabel = "PAUSED"

// Match owns both paddles, the ball and the score, and advances them once per tick.
type Match struct {
	id    uuid.UUID
	field Playfield
	host  Host
	sound Sound
	rng   *rand.Rand

	player1 *Paddle
	player2 *Paddle
	ball    *Ball

	player1Score int
	player2Score int
	state        RunState
}

func NewMatch(field Playfield, host Host, sound Sound, rng *rand.Rand) *Match {
	m := &Match{
		field: field,
		host:  host,
		sound: sound,
		rng:   rng,
	}
	m.Setup()
	return m
}

// Setup restores a fresh match regardless of the current state.
func (m *Match) Setup() {
	m.id = uuid.New()
	m.state = Running
	m.player1Score = 0
	m.player2Score = 0
	m.player1 = NewPaddle(m.field, PlayerOne)
	m.player2 = NewPaddle(m.field, PlayerTwo)
	m.ball = NewBall(m.field, PaddleHeight, m.rng)

	logger.Log.Info(fmt.Sprintf(logger.MatchSetupMsg, m.id))
}

// Update is the per-tick hook handed to the frontend run loop.
func (m *Match) Update() {
	if m.host.Held(KeyQuit) {
		logger.Log.Info(fmt.Sprintf(logger.PlayerQuitMsg, m.id))
		m.host.Quit()
		return
	}

	if m.host.Held(KeyReset) {
		m.Setup()
	}

	if m.host.Released(KeyPause) {
		m.state = m.state.Toggle()
		logger.Log.Info(fmt.Sprintf(logger.RunStateChangedMsg, m.id, m.state))
		logger.Log.Debug(m.Snapshot().String())
	}

	if m.state == Running {
		m.tick()
	}
}

func (m *Match) tick() {
	m.player1.Move(m.host.Held(KeyOneUp), m.host.Held(KeyOneDown))
	m.player2.Move(m.host.Held(KeyTwoUp), m.host.Held(KeyTwoDown))

	if m.ball.Step() {
		m.sound.Play(ChannelWall, SoundWall)
	}

	if m.ball.CollidesWithLeftPaddle(m.player1.FrontEdge(), m.player1.Y) {
		m.paddleHit(m.player1)
	} else if m.ball.CollidesWithRightPaddle(m.player2.FrontEdge(), m.player2.Y) {
		m.paddleHit(m.player2)
	}

	if m.ball.IsOutOfBounds(m.ball.X) {
		m.calculateScore()
	}
}

func (m *Match) paddleHit(p *Paddle) {
	m.sound.Play(ChannelHit, SoundHit)
	m.ball.Deflect()
	logger.Log.Debug(fmt.Sprintf(logger.PaddleHitMsg, p.Side, m.ball.VX, m.ball.VY))
}

func (m *Match) calculateScore() {
	scorer := PlayerTwo
	if m.ball.X > m.field.MidX() {
		scorer = PlayerOne
	}

	switch scorer {
	case PlayerOne:
		m.player1Score += 1
	case PlayerTwo:
		m.player2Score += 1
	}

	m.sound.Play(ChannelScore, SoundScore)
	logger.Log.Info(fmt.Sprintf(logger.PlayerScoredMsg, scorer, m.player1Score, m.player2Score))
	logger.Log.Debug(m.Snapshot().String())

	m.ball.Reset()
}

// Draw only reads state.
func (m *Match) Draw() {
	m.host.Cls(ColorBlack)

	scoreY := m.field.Height * 0.05
	m.host.Text(m.field.MidX()-10, scoreY, strconv.Itoa(m.player1Score), ColorWhite)
	m.host.Text(m.field.MidX()+10, scoreY, strconv.Itoa(m.player2Score), ColorWhite)

	if m.state == Paused {
		m.host.Text(m.field.MidX()-10, m.field.MidY(), PausedLabel, ColorWhite)
	}

	for _, p := range []*Paddle{m.player1, m.player2} {
		m.host.Rect(p.X, p.Y, p.Width, p.Height, ColorWhite)
	}
	m.host.Circ(m.ball.X, m.ball.Y, m.ball.Radius(), ColorWhite)
}

func (m *Match) ID() uuid.UUID {
	return m.id
}

func (m *Match) State() RunState {
	return m.state
}

func (m *Match) Ball() *Ball {
	return m.ball
}

func (m *Match) Paddle(side Side) *Paddle {
	if side == PlayerOne {
		return m.player1
	}
	return m.player2
}

func (m *Match) Score(side Side) int {
	if side == PlayerOne {
		return m.player1Score
	}
	return m.player2Score
}

func (m *Match) Snapshot() Snapshot {
	return Snapshot{
		State:          m.state,
		BallX:          m.ball.X,
		BallY:          m.ball.Y,
		BallVX:         m.ball.VX,
		BallVY:         m.ball.VY,
		PlayerOneY:     m.player1.Y,
		PlayerTwoY:     m.player2.Y,
		PlayerOneScore: m.player1Score,
		PlayerTwoScore: m.player2Score,
	}
}
