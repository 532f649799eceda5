package main

import (
	"github.com/spf13/cobra"

	"github.com/MrBanana2045/Teteis/internal/platform/window"
)

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play in a desktop window",
	Long: `Open a window and play with the arrow keys.

Controls:
  Left/Right   - Move
  Down         - Drop one row (locks when blocked)
  Up           - Rotate
  P            - Pause
  Q/Esc        - Quit`,
	Args: cobra.NoArgs,
	RunE: runWindow,
}

func runWindow(cmd *cobra.Command, _ []string) error {
	s, err := newSession(cmd, 0, 0)
	if err != nil {
		return err
	}
	defer s.shutdown()

	opts := window.Options{
		Title:     s.cfg.Window.Title,
		BlockSize: s.cfg.Window.BlockSize,
		Width:     s.cfg.Window.Width,
		Height:    s.cfg.Window.Height,
	}
	if err := window.Run(s.game, s.sounds, logger, s.runtime, opts); err != nil {
		return err
	}
	logger.Debug("session ended", "score", s.game.Score())
	return nil
}
