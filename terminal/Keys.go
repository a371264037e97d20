package terminal

import (
	"PongArcade/core"

	"github.com/gdamore/tcell"
)

// keyOf maps a tcell key event to the logical key it drives.
func keyOf(ev *tcell.EventKey) (core.Key, bool) {
	switch ev.Key() {
	case tcell.KeyUp:
		return core.KeyTwoUp, true
	case tcell.KeyDown:
		return core.KeyTwoDown, true
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return core.KeyQuit, true
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'w', 'W':
			return core.KeyOneUp, true
		case 's', 'S':
			return core.KeyOneDown, true
		case 'q', 'Q':
			return core.KeyQuit, true
		case 'r', 'R':
			return core.KeyReset, true
		case 'p', 'P':
			return core.KeyPause, true
		}
	}
	return 0, false
}

var allKeys = []core.Key{
	core.KeyOneUp, core.KeyOneDown,
	core.KeyTwoUp, core.KeyTwoDown,
	core.KeyQuit, core.KeyReset, core.KeyPause,
}

// edgeKeys are only ever read through Released.
var edgeKeys = map[core.Key]bool{
	core.KeyPause: true,
}

func colorOf(c core.Color) tcell.Color {
	switch c {
	case core.ColorWhite:
		return tcell.ColorWhite
	default:
		return tcell.ColorBlack
	}
}
