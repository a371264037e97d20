package core

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/spf13/cast"
	"github.com/spf13/viper"
)

const FrontendTerminal = "terminal"
const FrontendWindow = "window"

var ErrInvalidProperties = errors.New("invalid properties")

// Properties is the startup configuration, fixed for the life of the process.
type Properties struct {
	Field       Playfield
	Fps         int
	Title       string
	Frontend    string
	WindowScale int
	SoundBank   string
	HoldFrames  int

	// ReleaseFrames is the idle window for edge-triggered keys; it must
	// outlast the terminal's key-repeat delay.
	ReleaseFrames int
}

// ReadProperties loads properties/<env>.properties under dir.
func ReadProperties(dir, env string) (Properties, error) {
	v := viper.New()
	v.SetConfigName(env)
	v.SetConfigType("properties")
	v.AddConfigPath(filepath.Join(dir, "properties"))

	v.SetDefault("SCREEN_WIDTH", 256)
	v.SetDefault("SCREEN_HEIGHT", 192)
	v.SetDefault("FPS", 60)
	v.SetDefault("TITLE", "Pong")
	v.SetDefault("FRONTEND", FrontendTerminal)
	v.SetDefault("WINDOW_SCALE", 3)
	v.SetDefault("SOUND_BANK", "sounds.yaml")
	v.SetDefault("HOLD_FRAMES", 8)
	v.SetDefault("RELEASE_FRAMES", 36)

	if err := v.ReadInConfig(); err != nil {
		return Properties{}, fmt.Errorf("read properties %s: %w", env, err)
	}

	p := Properties{
		Field: Playfield{
			Width:  cast.ToFloat64(v.Get("SCREEN_WIDTH")),
			Height: cast.ToFloat64(v.Get("SCREEN_HEIGHT")),
		},
		Fps:           cast.ToInt(v.Get("FPS")),
		Title:         cast.ToString(v.Get("TITLE")),
		Frontend:      cast.ToString(v.Get("FRONTEND")),
		WindowScale:   cast.ToInt(v.Get("WINDOW_SCALE")),
		SoundBank:     cast.ToString(v.Get("SOUND_BANK")),
		HoldFrames:    cast.ToInt(v.Get("HOLD_FRAMES")),
		ReleaseFrames: cast.ToInt(v.Get("RELEASE_FRAMES")),
	}
	if !filepath.IsAbs(p.SoundBank) {
		p.SoundBank = filepath.Join(dir, p.SoundBank)
	}

	if err := p.validate(); err != nil {
		return Properties{}, err
	}
	return p, nil
}

func (p Properties) validate() error {
	if p.Field.Width <= 0 || p.Field.Height <= 0 {
		return fmt.Errorf("%w: screen %vx%v", ErrInvalidProperties, p.Field.Width, p.Field.Height)
	}
	if p.Fps <= 0 {
		return fmt.Errorf("%w: FPS %d", ErrInvalidProperties, p.Fps)
	}
	if p.Frontend != FrontendTerminal && p.Frontend != FrontendWindow {
		return fmt.Errorf("%w: FRONTEND %q", ErrInvalidProperties, p.Frontend)
	}
	if p.WindowScale <= 0 {
		return fmt.Errorf("%w: WINDOW_SCALE %d", ErrInvalidProperties, p.WindowScale)
	}
	if p.HoldFrames < 1 {
		return fmt.Errorf("%w: HOLD_FRAMES %d", ErrInvalidProperties, p.HoldFrames)
	}
	if p.ReleaseFrames < p.HoldFrames {
		return fmt.Errorf("%w: RELEASE_FRAMES %d shorter than HOLD_FRAMES %d", ErrInvalidProperties, p.ReleaseFrames, p.HoldFrames)
	}
	return nil
}
