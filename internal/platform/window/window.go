// Package window runs the game in a desktop window with ebiten.
package window

import (
	"fmt"
	"image/color"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/MrBanana2045/Teteis/internal/core"
	"github.com/MrBanana2045/Teteis/internal/games/tetris"
)

// Options describe the window.
type Options struct {
	Title     string
	BlockSize int
	Width     int
	Height    int
}

// DefaultOptions returns a 300x600 window with 30px blocks.
func DefaultOptions() Options {
	return Options{
		Title:     "Tetris",
		BlockSize: 30,
		Width:     300,
		Height:    600,
	}
}

var (
	gridColor = color.RGBA{130, 130, 130, 255}
	bgColor   = color.RGBA{0, 0, 0, 255}
)

// keyBindings maps keys to actions. Each press triggers once.
var keyBindings = []struct {
	key    ebiten.Key
	action core.Action
}{
	{ebiten.KeyLeft, core.ActionLeft},
	{ebiten.KeyRight, core.ActionRight},
	{ebiten.KeyDown, core.ActionDown},
	{ebiten.KeyUp, core.ActionRotate},
	{ebiten.KeyP, core.ActionPause},
	{ebiten.KeyQ, core.ActionQuit},
	{ebiten.KeyEscape, core.ActionQuit},
}

// Frontend implements ebiten.Game around a tetris.Game.
type Frontend struct {
	game    *tetris.Game
	sounds  core.SoundPlayer
	logger  *log.Logger
	opts    Options
	frame   core.InputFrame
	pressed func(ebiten.Key) bool
}

// New creates a frontend and starts a session with cfg.
// A nil sound player plays nothing.
func New(game *tetris.Game, sounds core.SoundPlayer, logger *log.Logger, cfg core.RuntimeConfig, opts Options) *Frontend {
	if sounds == nil {
		sounds = core.SilentPlayer{}
	}
	if logger == nil {
		logger = log.Default()
	}
	game.Reset(cfg)
	return &Frontend{
		game:    game,
		sounds:  sounds,
		logger:  logger,
		opts:    opts,
		frame:   core.NewInputFrame(),
		pressed: inpututil.IsKeyJustPressed,
	}
}

// Update advances the game by one frame.
func (f *Frontend) Update() error {
	f.frame.Clear()
	for _, b := range keyBindings {
		if f.pressed(b.key) {
			f.frame.Set(b.action)
		}
	}
	if f.frame.Has(core.ActionQuit) {
		f.logger.Debug("quit requested", "score", f.game.Score())
		return ebiten.Termination
	}

	wasOver := f.game.Phase() != tetris.PhasePlaying
	result := f.game.Step(f.frame)
	for _, s := range result.Sounds {
		f.sounds.Play(s)
	}
	if result.State.GameOver && !wasOver {
		f.logger.Info("game over", "game", f.game.ID(), "score", result.State.Score)
	}
	return nil
}

// Draw renders the playfield. While the lose animation runs only the
// game over message is shown.
func (f *Frontend) Draw(screen *ebiten.Image) {
	screen.Fill(bgColor)

	if f.game.Phase() == tetris.PhaseGameOver {
		ebitenutil.DebugPrintAt(screen, "Game OVER!", f.opts.Width/2-30, f.opts.Height/2)
		return
	}

	size := float32(f.opts.BlockSize)
	for _, b := range Blocks(f.game.Board(), f.game.Piece(), size) {
		vector.DrawFilledRect(screen, b.X, b.Y, b.Size, b.Size, b.Color.RGBA(), false)
	}
	for y := 0; y < tetris.Rows; y++ {
		for x := 0; x < tetris.Cols; x++ {
			vector.StrokeRect(screen, float32(x)*size, float32(y)*size, size, size, 1, gridColor, false)
		}
	}

	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("SCORE : %d", f.game.Score()), 10, 10)
	if f.game.State().Paused {
		ebitenutil.DebugPrintAt(screen, "PAUSED", f.opts.Width/2-18, f.opts.Height/2)
	}
}

// Layout keeps the logical screen at the configured size.
func (f *Frontend) Layout(_, _ int) (int, int) {
	return f.opts.Width, f.opts.Height
}

// Run opens the window and blocks until it is closed.
func Run(game *tetris.Game, sounds core.SoundPlayer, logger *log.Logger, cfg core.RuntimeConfig, opts Options) error {
	f := New(game, sounds, logger, cfg, opts)

	ebiten.SetWindowSize(opts.Width, opts.Height)
	ebiten.SetWindowTitle(opts.Title)
	if cfg.TickRate > 0 {
		ebiten.SetTPS(cfg.TickRate)
	}

	if err := ebiten.RunGame(f); err != nil {
		return fmt.Errorf("window: %w", err)
	}
	return nil
}
