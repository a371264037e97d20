package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
)

// Wave is an oscillator shape, named after the bank's "wave" field.
type Wave string

const (
	WaveSquare   Wave = "square"
	WaveSine     Wave = "sine"
	WaveTriangle Wave = "triangle"
	WaveNoise    Wave = "noise"
)

type oscillator struct {
	freq      float64
	phase     float64
	remaining int
	wave      Wave
	rate      beep.SampleRate
}

func newOscillator(freq float64, duration time.Duration, wave Wave, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:      freq,
		remaining: rate.N(duration),
		wave:      wave,
		rate:      rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	if o.remaining <= 0 {
		return 0, false
	}
	for i := range samples {
		if o.remaining <= 0 {
			return i, true
		}

		var val float64
		switch o.wave {
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveTriangle:
			val = 1 - 4*math.Abs(o.phase-0.5)
		case WaveNoise:
			val = rand.Float64()*2 - 1
		default:
			val = math.Sin(2 * math.Pi * o.phase)
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase = o.phase - math.Floor(o.phase)
		o.remaining--
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

func note(freq float64, d time.Duration, wave Wave, rate beep.SampleRate) (beep.Streamer, error) {
	if freq == 0 {
		return beep.Silence(rate.N(d)), nil
	}
	if wave == WaveSine {
		s, err := generators.SineTone(rate, freq)
		if err != nil {
			return nil, err
		}
		return beep.Take(rate.N(d), s), nil
	}
	return newOscillator(freq, d, wave, rate), nil
}

// streamer renders the whole sound at the given rate.
func (d SoundDef) streamer(rate beep.SampleRate) (beep.Streamer, error) {
	notes := make([]beep.Streamer, 0, len(d.Notes))
	for _, f := range d.Notes {
		s, err := note(f, d.Step, d.Wave, rate)
		if err != nil {
			return nil, err
		}
		notes = append(notes, s)
	}
	return &effects.Gain{Streamer: beep.Seq(notes...), Gain: d.Volume - 1}, nil
}
