package audio

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/viper"
)

var ErrInvalidSound = errors.New("invalid sound")

const defaultVolume = 0.3

// SoundDef describes one entry of the sound bank: a sequence of notes
// played back to back with the same wave and step length. A note of 0 is a rest.
type SoundDef struct {
	ID     int           `mapstructure:"id"`
	Name   string        `mapstructure:"name"`
	Wave   Wave          `mapstructure:"wave"`
	Notes  []float64     `mapstructure:"notes"`
	Step   time.Duration `mapstructure:"step"`
	Volume float64       `mapstructure:"volume"`
}

type Bank struct {
	sounds map[int]SoundDef
}

// LoadBank reads the sound bank once at startup. The format follows the file extension.
func LoadBank(filename string) (*Bank, error) {
	v := viper.New()
	v.SetConfigFile(filename)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("read sound bank %s: %w", filename, err)
	}

	var defs []SoundDef
	if err := v.UnmarshalKey("sounds", &defs); err != nil {
		return nil, fmt.Errorf("decode sound bank %s: %w", filename, err)
	}

	bank := &Bank{sounds: make(map[int]SoundDef, len(defs))}
	for _, def := range defs {
		if def.Volume == 0 {
			def.Volume = defaultVolume
		}
		if err := def.validate(); err != nil {
			return nil, fmt.Errorf("sound bank %s: %w", filename, err)
		}
		if _, dup := bank.sounds[def.ID]; dup {
			return nil, fmt.Errorf("sound bank %s: %w: duplicate id %d", filename, ErrInvalidSound, def.ID)
		}
		bank.sounds[def.ID] = def
	}
	return bank, nil
}

func (d SoundDef) validate() error {
	switch d.Wave {
	case WaveSquare, WaveSine, WaveTriangle, WaveNoise:
	default:
		return fmt.Errorf("%w: sound %d has unknown wave %q", ErrInvalidSound, d.ID, d.Wave)
	}
	if len(d.Notes) == 0 {
		return fmt.Errorf("%w: sound %d has no notes", ErrInvalidSound, d.ID)
	}
	for _, n := range d.Notes {
		if n < 0 || n >= float64(SampleRate)/2 {
			return fmt.Errorf("%w: sound %d note %v out of range", ErrInvalidSound, d.ID, n)
		}
	}
	if d.Step <= 0 {
		return fmt.Errorf("%w: sound %d step %v", ErrInvalidSound, d.ID, d.Step)
	}
	if d.Volume < 0 || d.Volume > 1 {
		return fmt.Errorf("%w: sound %d volume %v", ErrInvalidSound, d.ID, d.Volume)
	}
	return nil
}

func (b *Bank) Sound(id int) (SoundDef, bool) {
	def, ok := b.sounds[id]
	return def, ok
}

func (b *Bank) Len() int {
	return len(b.sounds)
}
