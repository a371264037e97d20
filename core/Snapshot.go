package core

import "fmt"

const PayloadTerminator = "~"

const BattleSituationHeader = "BS" // Battle status 比賽中的狀態

// Snapshot is a value copy of everything a tick can change.
type Snapshot struct {
	State          RunState
	BallX, BallY   float64
	BallVX, BallVY float64
	PlayerOneY     float64
	PlayerTwoY     float64
	PlayerOneScore int
	PlayerTwoScore int
}

// state, ballX, ballY, ballVX, ballVY, player1Y, player2Y, player1Score, player2Score
func (s Snapshot) String() string {
	payload := fmt.Sprintf("%s,%.2f,%.2f,%.3f,%.3f,%.2f,%.2f,%d,%d", s.State,
		s.BallX, s.BallY, s.BallVX, s.BallVY,
		s.PlayerOneY, s.PlayerTwoY,
		s.PlayerOneScore, s.PlayerTwoScore)
	return BattleSituationHeader + payload + PayloadTerminator
}
