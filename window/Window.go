package window

import (
	"PongArcade/core"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var keyBindings = map[core.Key]ebiten.Key{
	core.KeyOneUp:   ebiten.KeyW,
	core.KeyOneDown: ebiten.KeyS,
	core.KeyTwoUp:   ebiten.KeyArrowUp,
	core.KeyTwoDown: ebiten.KeyArrowDown,
	core.KeyQuit:    ebiten.KeyQ,
	core.KeyReset:   ebiten.KeyR,
	core.KeyPause:   ebiten.KeyP,
}

var palette = map[core.Color]color.Color{
	core.ColorBlack: color.Black,
	core.ColorWhite: color.White,
}

// Window runs a match in a desktop window at the playfield's native resolution.
type Window struct {
	field core.Playfield
	title string
	scale int
	fps   int

	update, draw func()
	target       *ebiten.Image
	glyphs       *ebiten.Image
	quit         bool
}

func New(props core.Properties) *Window {
	return &Window{
		field: props.Field,
		title: props.Title,
		scale: props.WindowScale,
		fps:   props.Fps,
	}
}

func (w *Window) Run(update, draw func()) error {
	w.update, w.draw = update, draw

	ebiten.SetWindowSize(int(w.field.Width)*w.scale, int(w.field.Height)*w.scale)
	ebiten.SetWindowTitle(w.title)
	ebiten.SetTPS(w.fps)

	if err := ebiten.RunGame(w); err != nil && err != ebiten.Termination {
		return err
	}
	return nil
}

func (w *Window) Update() error {
	w.update()
	if w.quit {
		return ebiten.Termination
	}
	return nil
}

func (w *Window) Draw(screen *ebiten.Image) {
	w.target = screen
	w.draw()
	w.target = nil
}

func (w *Window) Layout(outsideWidth, outsideHeight int) (int, int) {
	return int(w.field.Width), int(w.field.Height)
}

func (w *Window) Held(k core.Key) bool {
	return ebiten.IsKeyPressed(keyBindings[k])
}

func (w *Window) Released(k core.Key) bool {
	return inpututil.IsKeyJustReleased(keyBindings[k])
}

func (w *Window) Quit() {
	w.quit = true
}

func (w *Window) Cls(c core.Color) {
	w.target.Fill(palette[c])
}

func (w *Window) Circ(x, y, r float64, c core.Color) {
	vector.DrawFilledCircle(w.target, float32(x), float32(y), float32(r), palette[c], false)
}

func (w *Window) Rect(x, y, width, height float64, c core.Color) {
	vector.DrawFilledRect(w.target, float32(x), float32(y), float32(width), float32(height), palette[c], false)
}

// Text renders the debug font, which is white, onto a scratch image and
// tints it with the palette color while copying it to the target.
func (w *Window) Text(x, y float64, s string, c core.Color) {
	if w.glyphs == nil {
		w.glyphs = ebiten.NewImage(int(w.field.Width), int(w.field.Height))
	}
	w.glyphs.Clear()
	ebitenutil.DebugPrintAt(w.glyphs, s, 0, 0)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale = tint(c)
	w.target.DrawImage(w.glyphs, op)
}

func tint(c core.Color) ebiten.ColorScale {
	var cs ebiten.ColorScale
	cs.ScaleWithColor(palette[c])
	return cs
}
