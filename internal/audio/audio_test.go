package audio

import (
	"math"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/wav"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrBanana2045/Teteis/internal/core"
)

func writeTone(t *testing.T, path string, rate beep.SampleRate, d time.Duration) {
	t.Helper()
	sine, err := generators.SineTone(rate, 440)
	require.NoError(t, err)

	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()

	format := beep.Format{SampleRate: rate, NumChannels: 1, Precision: 2}
	require.NoError(t, wav.Encode(f, beep.Take(rate.N(d), sine), format))
}

func writeAssets(t *testing.T, rate beep.SampleRate) string {
	t.Helper()
	dir := t.TempDir()
	for _, name := range Files {
		writeTone(t, filepath.Join(dir, name), rate, 50*time.Millisecond)
	}
	return dir
}

func drain(s beep.Streamer) (peak float64, total int) {
	buf := make([][2]float64, 512)
	for i := 0; i < 1000; i++ {
		n, ok := s.Stream(buf)
		for _, smp := range buf[:n] {
			peak = math.Max(peak, math.Abs(smp[0]))
		}
		total += n
		if !ok {
			break
		}
	}
	return peak, total
}

func TestLoadBank(t *testing.T) {
	bank, err := LoadBank(writeAssets(t, SampleRate))
	require.NoError(t, err)

	for sound := range Files {
		assert.InDelta(t, 0.05, bank.Duration(sound).Seconds(), 0.001, sound.String())
		peak, total := drain(bank.Streamer(sound))
		assert.Equal(t, SampleRate.N(50*time.Millisecond), total, sound.String())
		assert.Greater(t, peak, 0.1, sound.String())
	}
}

func TestLoadBankMissingFile(t *testing.T) {
	dir := writeAssets(t, SampleRate)
	require.NoError(t, os.Remove(filepath.Join(dir, "Lock.wav")))

	bank, err := LoadBank(dir)
	require.Error(t, err)
	assert.Nil(t, bank)
	assert.Contains(t, err.Error(), "audio:")
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadBankCorruptFile(t *testing.T) {
	dir := writeAssets(t, SampleRate)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "Move.wav"), []byte("not a wave file"), 0o644))

	_, err := LoadBank(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Move.wav")
}

func TestBankResamples(t *testing.T) {
	bank, err := LoadBank(writeAssets(t, 22050))
	require.NoError(t, err)

	_, total := drain(bank.Streamer(core.SoundLineClear))
	assert.InDelta(t, SampleRate.N(50*time.Millisecond), total, 64)
}

func TestBankUnknownSound(t *testing.T) {
	bank, err := LoadBank(writeAssets(t, SampleRate))
	require.NoError(t, err)

	assert.Nil(t, bank.Streamer(core.Sound(99)))
	assert.Zero(t, bank.Duration(core.Sound(99)))
}

func TestPlayerMixesEffects(t *testing.T) {
	bank, err := LoadBank(writeAssets(t, SampleRate))
	require.NoError(t, err)

	p := NewPlayer(bank, 0)
	p.Play(core.SoundMove)
	p.Play(core.SoundLock)
	p.Play(core.Sound(99))
	assert.Equal(t, 2, p.Active())

	buf := make([][2]float64, 256)
	n, ok := p.mixer.Stream(buf)
	require.True(t, ok)
	require.Equal(t, len(buf), n)

	var peak float64
	for _, smp := range buf {
		peak = math.Max(peak, math.Abs(smp[0]))
	}
	assert.Greater(t, peak, 0.0)

	for i := 0; i < 100 && p.Active() > 0; i++ {
		p.mixer.Stream(buf)
	}
	assert.Zero(t, p.Active())
}

func TestPlayerVolume(t *testing.T) {
	bank, err := LoadBank(writeAssets(t, SampleRate))
	require.NoError(t, err)

	loud := NewPlayer(bank, 0)
	quiet := NewPlayer(bank, -3)
	loud.Play(core.SoundGameOver)
	quiet.Play(core.SoundGameOver)

	lp, _ := drain(loud.mixer)
	qp, _ := drain(quiet.mixer)
	assert.InDelta(t, lp/8, qp, 0.01)
}

func TestPlayerCloseWithoutOpen(t *testing.T) {
	p := NewPlayer(&Bank{}, 0)
	p.Close()
	p.Play(core.SoundMove)
	assert.Zero(t, p.Active())
}
