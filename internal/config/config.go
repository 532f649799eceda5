// Package config provides YAML-based configuration loading for the game and
// its frontends.
package config

import (
	"errors"
	"fmt"
	"time"
)

// TetrisConfig contains all configuration for the game.
type TetrisConfig struct {
	Gameplay GameplayConfig `yaml:"gameplay"`
	Audio    AudioConfig    `yaml:"audio"`
	Window   WindowConfig   `yaml:"window"`
}

// GameplayConfig defines simulation constants.
type GameplayConfig struct {
	DropInterval   time.Duration `yaml:"drop_interval"`
	ScorePerLine   int           `yaml:"score_per_line"`
	Seed           int64         `yaml:"seed"`
	GameOverFrames int           `yaml:"game_over_frames"`
	TickRate       int           `yaml:"tick_rate"`
}

// AudioConfig defines where sound effects come from and how loud they are.
type AudioConfig struct {
	Enabled bool    `yaml:"enabled"`
	Dir     string  `yaml:"dir"`
	Volume  float64 `yaml:"volume"` // log2 gain applied on top of the samples
}

// WindowConfig defines the pixel frontend.
type WindowConfig struct {
	Title     string `yaml:"title"`
	BlockSize int    `yaml:"block_size"`
	Width     int    `yaml:"width"`
	Height    int    `yaml:"height"`
}

// Validate reports every invalid setting.
func (c TetrisConfig) Validate() error {
	var errs []error
	if c.Gameplay.DropInterval <= 0 {
		errs = append(errs, fmt.Errorf("gameplay.drop_interval must be positive, got %s", c.Gameplay.DropInterval))
	}
	if c.Gameplay.ScorePerLine < 0 {
		errs = append(errs, fmt.Errorf("gameplay.score_per_line must not be negative, got %d", c.Gameplay.ScorePerLine))
	}
	if c.Gameplay.GameOverFrames < 0 {
		errs = append(errs, fmt.Errorf("gameplay.game_over_frames must not be negative, got %d", c.Gameplay.GameOverFrames))
	}
	if c.Gameplay.TickRate <= 0 {
		errs = append(errs, fmt.Errorf("gameplay.tick_rate must be positive, got %d", c.Gameplay.TickRate))
	}
	if c.Audio.Enabled && c.Audio.Dir == "" {
		errs = append(errs, errors.New("audio.dir is required when audio is enabled"))
	}
	if c.Window.BlockSize <= 0 || c.Window.Width <= 0 || c.Window.Height <= 0 {
		errs = append(errs, errors.New("window.block_size, width and height must be positive"))
	}
	return errors.Join(errs...)
}
