package core

type RunState int

const (
	Running RunState = iota
	Paused
)

func (s RunState) Toggle() RunState {
	switch s {
	case Running:
		return Paused
	case Paused:
		return Running
	}
	return Running
}

func (s RunState) String() string {
	switch s {
	case Running:
		return "running"
	case Paused:
		return "paused"
	}
	return "unknown"
}
