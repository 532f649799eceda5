package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/MrBanana2045/Teteis/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start a game in the terminal.

Controls:
  Left/Right, A/D   - Move
  Down, S           - Drop one row (locks when blocked)
  Up, W, Space      - Rotate
  P/Esc             - Pause
  Q/Ctrl+C          - Quit

Examples:
  tetris play
  tetris play --seed 7
  tetris play --config ./my-tetris.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(cmd *cobra.Command, _ []string) error {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}

	s, err := newSession(cmd, width, height)
	if err != nil {
		return err
	}
	defer s.shutdown()

	if err := tui.Run(s.game, s.sounds, gameLogger(), s.runtime); err != nil {
		return err
	}
	logger.Debug("session ended", "score", s.game.Score())
	return nil
}
