package terminal

import (
	"PongArcade/core"
	"fmt"
	"math"
	"time"

	"github.com/gdamore/tcell"
)

const BallSymbol = 0x25CF   // 球符號
const PaddleSymbol = 0x2588 // 球拍符號

// Screen runs a match on a character grid. The playfield is scaled to
// whatever size the terminal has.
//
// Terminals only report key presses, repeated while held, so a key counts
// as held until holdFrames ticks pass without another event for it.
// Edge-triggered keys use releaseFrames instead, which outlasts the
// repeat delay, so one press-and-hold releases exactly once.
type Screen struct {
	screen        tcell.Screen
	field         core.Playfield
	fps           int
	holdFrames    int
	releaseFrames int

	frame    int
	lastSeen map[core.Key]int
	held     map[core.Key]bool
	released map[core.Key]bool

	events chan tcell.Event
	done   chan struct{}
	quit   bool
}

// NewScreen opens the real terminal.
func NewScreen(props core.Properties) (*Screen, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("new screen: %w", err)
	}
	return New(screen, props)
}

func New(screen tcell.Screen, props core.Properties) (*Screen, error) {
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("init screen: %w", err)
	}

	defaultStyle := tcell.StyleDefault.
		Background(tcell.ColorBlack).
		Foreground(tcell.ColorWhite)
	screen.SetStyle(defaultStyle)
	screen.HideCursor()

	return &Screen{
		screen:        screen,
		field:         props.Field,
		fps:           props.Fps,
		holdFrames:    props.HoldFrames,
		releaseFrames: props.ReleaseFrames,
		lastSeen:      make(map[core.Key]int),
		held:          make(map[core.Key]bool),
		released:      make(map[core.Key]bool),
		events:        make(chan tcell.Event, 64),
		done:          make(chan struct{}),
	}, nil
}

// Run drives update and draw at the configured rate until Quit is called.
func (s *Screen) Run(update, draw func()) error {
	defer s.screen.Fini()
	defer close(s.done)

	go s.pollEvents()

	ticker := time.NewTicker(time.Second / time.Duration(s.fps))
	defer ticker.Stop()

	for !s.quit {
		<-ticker.C
		s.Frame(update, draw)
	}
	return nil
}

// Frame runs a single tick.
func (s *Screen) Frame(update, draw func()) {
	s.readInput()
	update()
	if s.quit {
		return
	}
	draw()
	s.screen.Show()
}

func (s *Screen) pollEvents() {
	for {
		ev := s.screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case s.events <- ev:
		case <-s.done:
			return
		}
	}
}

func (s *Screen) readInput() {
	s.frame++
	for {
		select {
		case ev := <-s.events:
			s.handleEvent(ev)
		default:
			s.refreshKeys()
			return
		}
	}
}

func (s *Screen) handleEvent(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if k, ok := keyOf(ev); ok {
			s.lastSeen[k] = s.frame
		}
	case *tcell.EventResize:
		s.screen.Sync()
	}
}

func (s *Screen) refreshKeys() {
	for _, k := range allKeys {
		seen, ok := s.lastSeen[k]
		down := ok && s.frame-seen < s.window(k)
		s.released[k] = s.held[k] && !down
		s.held[k] = down
	}
}

func (s *Screen) window(k core.Key) int {
	if edgeKeys[k] && s.releaseFrames > s.holdFrames {
		return s.releaseFrames
	}
	return s.holdFrames
}

func (s *Screen) Held(k core.Key) bool {
	return s.held[k]
}

func (s *Screen) Released(k core.Key) bool {
	return s.released[k]
}

func (s *Screen) Quit() {
	s.quit = true
}

func (s *Screen) Cls(c core.Color) {
	s.screen.Fill(' ', tcell.StyleDefault.Background(colorOf(c)))
}

func (s *Screen) Circ(x, y, r float64, c core.Color) {
	col, row := s.cell(x, y)
	rc, rr := s.span(r)
	s.Print(row-rr, col-rc, 2*rc+1, 2*rr+1, BallSymbol, c)
}

func (s *Screen) Rect(x, y, w, h float64, c core.Color) {
	col, row := s.cell(x, y)
	endCol, endRow := s.cell(x+w, y+h)
	width := endCol - col
	if width < 1 {
		width = 1
	}
	height := endRow - row
	if height < 1 {
		height = 1
	}
	s.Print(row, col, width, height, PaddleSymbol, c)
}

func (s *Screen) Text(x, y float64, str string, c core.Color) {
	col, row := s.cell(x, y)
	style := tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(colorOf(c))
	for i, ch := range []rune(str) {
		s.screen.SetContent(col+i, row, ch, nil, style)
	}
}

func (s *Screen) Print(row, col, width, height int, ch rune, c core.Color) {
	style := tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(colorOf(c))
	for r := 0; r < height; r++ {
		for cc := 0; cc < width; cc++ {
			s.screen.SetContent(col+cc, row+r, ch, nil, style)
		}
	}
}

// cell maps a playfield point to the terminal cell containing it.
func (s *Screen) cell(x, y float64) (int, int) {
	cols, rows := s.screen.Size()
	col := int(math.Floor(x * float64(cols) / s.field.Width))
	row := int(math.Floor(y * float64(rows) / s.field.Height))
	return col, row
}

func (s *Screen) span(r float64) (int, int) {
	cols, rows := s.screen.Size()
	return int(r * float64(cols) / s.field.Width), int(r * float64(rows) / s.field.Height)
}
