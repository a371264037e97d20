package audio

import (
	"PongArcade/logger"
	"fmt"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const SampleRate = beep.SampleRate(44100)

const NumChannels = 4 // 音效頻道數

// Player plays bank sounds on a fixed set of channels. A new sound on a busy
// channel cuts off whatever that channel was playing.
type Player struct {
	bank     *Bank
	rate     beep.SampleRate
	mixer    *beep.Mixer
	channels [NumChannels]*beep.Ctrl

	lock, unlock func()
	enabled      bool
}

// NewPlayer returns a silent player; Start attaches it to the speaker.
func NewPlayer(bank *Bank) *Player {
	return &Player{
		bank:   bank,
		rate:   SampleRate,
		mixer:  &beep.Mixer{},
		lock:   func() {},
		unlock: func() {},
	}
}

func (p *Player) Start() error {
	if p.enabled {
		return nil
	}
	if err := speaker.Init(p.rate, p.rate.N(time.Second/10)); err != nil {
		return fmt.Errorf("init speaker: %w", err)
	}
	p.lock, p.unlock = speaker.Lock, speaker.Unlock
	speaker.Play(p.mixer)
	p.enabled = true
	return nil
}

func (p *Player) Play(channel, sound int) {
	if !p.enabled || channel < 0 || channel >= NumChannels {
		return
	}
	def, ok := p.bank.Sound(sound)
	if !ok {
		return
	}
	s, err := def.streamer(p.rate)
	if err != nil {
		logger.Log.Warn(fmt.Sprintf("sound %d: %v", sound, err))
		return
	}
	ctrl := &beep.Ctrl{Streamer: s}

	p.lock()
	defer p.unlock()
	if old := p.channels[channel]; old != nil {
		old.Streamer = nil
	}
	p.channels[channel] = ctrl
	p.mixer.Add(ctrl)
}

func (p *Player) Close() {
	if !p.enabled {
		return
	}
	p.lock()
	p.mixer.Clear()
	p.channels = [NumChannels]*beep.Ctrl{}
	p.unlock()

	speaker.Close()
	p.enabled = false
}
