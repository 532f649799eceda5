package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/tetris.yaml
var defaultTetrisYAML []byte

// DefaultTetrisConfig returns the built-in configuration.
func DefaultTetrisConfig() TetrisConfig {
	return TetrisConfig{
		Gameplay: GameplayConfig{
			DropInterval:   500 * time.Millisecond,
			ScorePerLine:   1,
			Seed:           42,
			GameOverFrames: 120,
			TickRate:       60,
		},
		Audio: AudioConfig{
			Enabled: true,
			Dir:     "audio",
		},
		Window: WindowConfig{
			Title:     "Tetris",
			BlockSize: 30,
			Width:     300,
			Height:    600,
		},
	}
}
