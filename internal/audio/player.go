package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"

	"github.com/MrBanana2045/Teteis/internal/core"
)

// speakerLock guards streamers owned by the speaker goroutine.
type speakerLock struct{}

func (speakerLock) Lock()   { speaker.Lock() }
func (speakerLock) Unlock() { speaker.Unlock() }

// Player implements core.SoundPlayer on top of a beep mixer.
// Each Play adds a one-shot stream; finished streams drop out of the mixer.
type Player struct {
	bank   *Bank
	mixer  *beep.Mixer
	volume float64
	lock   sync.Locker
	open   bool
}

// NewPlayer creates a player for the bank. volume is a log2 gain; 0 plays
// the samples unchanged. Nothing is audible until Open succeeds.
func NewPlayer(bank *Bank, volume float64) *Player {
	return &Player{
		bank:   bank,
		mixer:  &beep.Mixer{},
		volume: volume,
		lock:   &sync.Mutex{},
	}
}

// Open initializes the output device and starts streaming the mixer.
func (p *Player) Open() error {
	if p.open {
		return nil
	}
	if err := speaker.Init(SampleRate, SampleRate.N(100*time.Millisecond)); err != nil {
		return fmt.Errorf("audio: cannot open output device: %w", err)
	}
	p.lock = speakerLock{}
	speaker.Play(p.mixer)
	p.open = true
	return nil
}

// Play queues a non-looping effect. It never blocks on playback.
func (p *Player) Play(s core.Sound) {
	st := p.bank.Streamer(s)
	if st == nil {
		return
	}
	if p.volume != 0 {
		st = &effects.Volume{Streamer: st, Base: 2, Volume: p.volume}
	}

	p.lock.Lock()
	p.mixer.Add(st)
	p.lock.Unlock()
}

// Active returns the number of effects still playing.
func (p *Player) Active() int {
	p.lock.Lock()
	defer p.lock.Unlock()
	return p.mixer.Len()
}

// Close stops all effects and releases the device.
func (p *Player) Close() {
	if !p.open {
		return
	}
	speaker.Clear()
	speaker.Close()
	p.open = false
	p.lock = &sync.Mutex{}
}

var _ core.SoundPlayer = (*Player)(nil)
