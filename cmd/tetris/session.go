package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/MrBanana2045/Teteis/internal/audio"
	"github.com/MrBanana2045/Teteis/internal/config"
	"github.com/MrBanana2045/Teteis/internal/core"
	"github.com/MrBanana2045/Teteis/internal/games/tetris"
	"github.com/MrBanana2045/Teteis/internal/registry"
)

var logFile *os.File

// setupLogging points the logger at --log-file when given.
func setupLogging(_ *cobra.Command, _ []string) error {
	if flagVerbose {
		logger.SetLevel(log.DebugLevel)
	}
	if flagLogFile == "" {
		return nil
	}

	f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	logFile = f
	logger.SetOutput(f)
	return nil
}

func closeLogFile() {
	if logFile != nil {
		logFile.Close()
		logFile = nil
	}
}

// gameLogger returns the logger used while a frontend owns the terminal.
// Without a log file, in-game messages are dropped so they cannot corrupt the screen.
func gameLogger() *log.Logger {
	if logFile != nil {
		return logger
	}
	return log.New(io.Discard)
}

// session is everything a frontend needs to start.
type session struct {
	cfg      config.TetrisConfig
	runtime  core.RuntimeConfig
	game     *tetris.Game
	sounds   core.SoundPlayer
	shutdown func()
}

// newSession loads config, applies flag overrides, creates the game and
// opens audio. Missing or unreadable sound assets are fatal; an unavailable
// output device only disables sound.
func newSession(cmd *cobra.Command, screenW, screenH int) (*session, error) {
	cfg, source, err := config.Load(flagConfig)
	if err != nil {
		return nil, err
	}
	logger.Debug("config loaded", "source", source)

	rt := runtimeConfig(cfg, cmd, screenW, screenH)
	logger.Debug("session", "seed", rt.Seed, "tick_rate", rt.TickRate)

	tetris.Configure(settingsFrom(cfg.Gameplay))
	g, err := registry.Create("tetris")
	if err != nil {
		return nil, err
	}
	game, ok := g.(*tetris.Game)
	if !ok {
		return nil, fmt.Errorf("registry: game %q has unexpected type %T", g.ID(), g)
	}

	s := &session{
		cfg:      cfg,
		runtime:  rt,
		game:     game,
		sounds:   core.SilentPlayer{},
		shutdown: func() {},
	}

	if !cfg.Audio.Enabled {
		logger.Debug("audio disabled")
		return s, nil
	}

	bank, err := audio.LoadBank(cfg.Audio.Dir)
	if err != nil {
		return nil, err
	}
	player := audio.NewPlayer(bank, cfg.Audio.Volume)
	if err := player.Open(); err != nil {
		logger.Warn("no audio output, playing silently", "err", err)
		return s, nil
	}
	logger.Debug("audio ready", "dir", cfg.Audio.Dir)
	s.sounds = player
	s.shutdown = player.Close
	return s, nil
}

// settingsFrom converts the gameplay section to simulation settings.
func settingsFrom(g config.GameplayConfig) tetris.Settings {
	return tetris.Settings{
		DropInterval:   g.DropInterval,
		ScorePerLine:   g.ScorePerLine,
		GameOverFrames: g.GameOverFrames,
	}
}

// runtimeConfig merges config values with the --seed and --fps flags.
func runtimeConfig(cfg config.TetrisConfig, cmd *cobra.Command, screenW, screenH int) core.RuntimeConfig {
	rt := core.RuntimeConfig{
		ScreenW:  screenW,
		ScreenH:  screenH,
		TickRate: cfg.Gameplay.TickRate,
		Seed:     cfg.Gameplay.Seed,
	}
	if cmd.Flags().Changed("seed") {
		rt.Seed = flagSeed
	}
	if cmd.Flags().Changed("fps") && flagFPS > 0 {
		rt.TickRate = flagFPS
	}
	return rt
}
