package core

// Key is a logical input; frontends bind physical keys to it.
type Key int

const (
	KeyOneUp Key = iota
	KeyOneDown
	KeyTwoUp
	KeyTwoDown
	KeyQuit
	KeyReset
	KeyPause
)

// Color is a palette index, shared by every frontend.
type Color int

const (
	ColorBlack Color = iota
	ColorWhite
)

// 音效頻道與音效編號
const (
	ChannelScore = 0
	ChannelHit   = 1
	ChannelWall  = 2
)

const (
	SoundWall  = 0
	SoundHit   = 1
	SoundScore = 2
)

type Input interface {
	// Held reports whether k is down this tick.
	Held(k Key) bool
	// Released fires once, on the tick k stops being held.
	Released(k Key) bool
}

type Canvas interface {
	Cls(c Color)
	Circ(x, y, r float64, c Color)
	Rect(x, y, w, h float64, c Color)
	Text(x, y float64, s string, c Color)
}

type Sound interface {
	Play(channel, sound int)
}

// Host is the frontend as seen from inside a tick.
type Host interface {
	Input
	Canvas
	Quit()
}
