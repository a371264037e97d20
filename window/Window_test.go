package window

import (
	"PongArcade/core"
	"testing"
)

func TestEveryKeyIsBound(t *testing.T) {
	keys := []core.Key{
		core.KeyOneUp, core.KeyOneDown,
		core.KeyTwoUp, core.KeyTwoDown,
		core.KeyQuit, core.KeyReset, core.KeyPause,
	}
	seen := map[interface{}]core.Key{}
	for _, k := range keys {
		b, ok := keyBindings[k]
		if !ok {
			t.Errorf("key %d has no binding", k)
			continue
		}
		if other, dup := seen[b]; dup {
			t.Errorf("keys %d and %d share a binding", k, other)
		}
		seen[b] = k
	}
}

func TestLayoutIsNativeResolution(t *testing.T) {
	w := New(core.Properties{Field: core.DefaultPlayfield(), WindowScale: 3, Fps: 60})
	width, height := w.Layout(1024, 768)
	if width != 256 || height != 192 {
		t.Errorf("Layout = %dx%d, want 256x192", width, height)
	}
}

func TestQuitTerminatesUpdate(t *testing.T) {
	w := New(core.Properties{Field: core.DefaultPlayfield()})
	ticks := 0
	w.update = func() {
		ticks++
		if ticks == 2 {
			w.Quit()
		}
	}

	if err := w.Update(); err != nil {
		t.Fatalf("first update: %v", err)
	}
	if err := w.Update(); err == nil {
		t.Error("update after quit should end the run loop")
	}
}

func TestTextTintFollowsPalette(t *testing.T) {
	tests := []struct {
		name string
		c    core.Color
		want float32
	}{
		{"black", core.ColorBlack, 0},
		{"white", core.ColorWhite, 1},
	}
	for _, tt := range tests {
		cs := tint(tt.c)
		if cs.R() != tt.want || cs.G() != tt.want || cs.B() != tt.want || cs.A() != 1 {
			t.Errorf("%s text tint = (%v, %v, %v, %v), want channels %v", tt.name, cs.R(), cs.G(), cs.B(), cs.A(), tt.want)
		}
	}
}
