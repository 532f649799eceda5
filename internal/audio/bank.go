// Package audio plays the game's sound effects through beep.
package audio

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/wav"

	"github.com/MrBanana2045/Teteis/internal/core"
)

// SampleRate is the output rate; effects recorded at other rates are resampled.
const SampleRate = beep.SampleRate(44100)

// Files maps each effect to its asset name inside the audio directory.
var Files = map[core.Sound]string{
	core.SoundMove:      "Move.wav",
	core.SoundLock:      "Lock.wav",
	core.SoundGameOver:  "GameOver.wav",
	core.SoundLineClear: "LineClear.wav",
}

// Bank holds every effect decoded into memory.
type Bank struct {
	buffers map[core.Sound]*beep.Buffer
}

// LoadBank decodes all effect files from dir. A missing or unreadable file
// is an error; the game does not start with a partial bank.
func LoadBank(dir string) (*Bank, error) {
	b := &Bank{buffers: make(map[core.Sound]*beep.Buffer, len(Files))}
	for sound, name := range Files {
		buf, err := decodeFile(filepath.Join(dir, name))
		if err != nil {
			return nil, fmt.Errorf("audio: cannot load %s effect: %w", sound, err)
		}
		b.buffers[sound] = buf
	}
	return b, nil
}

func decodeFile(path string) (*beep.Buffer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}

	streamer, format, err := wav.Decode(f)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	defer streamer.Close()

	buf := beep.NewBuffer(format)
	buf.Append(streamer)
	if err := streamer.Err(); err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return buf, nil
}

// Streamer returns a fresh one-shot stream of the effect at SampleRate,
// or nil if the bank has no such effect.
func (b *Bank) Streamer(s core.Sound) beep.Streamer {
	buf, ok := b.buffers[s]
	if !ok {
		return nil
	}
	st := buf.Streamer(0, buf.Len())
	if rate := buf.Format().SampleRate; rate != SampleRate {
		return beep.Resample(4, rate, SampleRate, st)
	}
	return st
}

// Duration returns the length of the effect.
func (b *Bank) Duration(s core.Sound) time.Duration {
	buf, ok := b.buffers[s]
	if !ok {
		return 0
	}
	return buf.Format().SampleRate.D(buf.Len())
}
