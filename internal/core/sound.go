package core

// Sound identifies a one-shot sound effect requested by a game.
type Sound int

const (
	SoundMove Sound = iota
	SoundLock
	SoundLineClear
	SoundGameOver
)

// String returns the effect name.
func (s Sound) String() string {
	switch s {
	case SoundMove:
		return "move"
	case SoundLock:
		return "lock"
	case SoundLineClear:
		return "line_clear"
	case SoundGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// SoundPlayer plays sound effects non-looping at full effect volume.
// Implementations must not block the caller.
type SoundPlayer interface {
	Play(s Sound)
}

// SilentPlayer discards every sound.
type SilentPlayer struct{}

// Play implements SoundPlayer.
func (SilentPlayer) Play(Sound) {}
