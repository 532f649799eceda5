package window

import (
	"errors"
	"io"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrBanana2045/Teteis/internal/core"
	"github.com/MrBanana2045/Teteis/internal/games/tetris"
)

type recorder struct {
	played []core.Sound
}

func (r *recorder) Play(s core.Sound) { r.played = append(r.played, s) }

func newFrontend(t *testing.T) (*Frontend, *tetris.Game, *recorder) {
	t.Helper()
	game := tetris.NewWithSettings(tetris.DefaultSettings())
	rec := &recorder{}
	cfg := core.DefaultConfig()
	f := New(game, rec, log.New(io.Discard), cfg, DefaultOptions())
	f.pressed = func(ebiten.Key) bool { return false }
	return f, game, rec
}

func press(f *Frontend, keys ...ebiten.Key) {
	f.pressed = func(k ebiten.Key) bool {
		for _, want := range keys {
			if k == want {
				return true
			}
		}
		return false
	}
}

func TestUpdateMovesPiece(t *testing.T) {
	f, game, rec := newFrontend(t)
	startX := game.Piece().X

	press(f, ebiten.KeyRight)
	require.NoError(t, f.Update())
	assert.Equal(t, startX+1, game.Piece().X)
	assert.Equal(t, []core.Sound{core.SoundMove}, rec.played)

	// Keys trigger once per press.
	press(f)
	require.NoError(t, f.Update())
	assert.Equal(t, startX+1, game.Piece().X)
}

func TestUpdateQuit(t *testing.T) {
	for _, k := range []ebiten.Key{ebiten.KeyQ, ebiten.KeyEscape} {
		f, game, _ := newFrontend(t)
		before := game.Snapshot()

		press(f, k)
		err := f.Update()
		assert.True(t, errors.Is(err, ebiten.Termination), k.String())
		assert.Equal(t, before, game.Snapshot(), "quit must not step the game")
	}
}

func TestUpdatePause(t *testing.T) {
	f, game, _ := newFrontend(t)

	press(f, ebiten.KeyP)
	require.NoError(t, f.Update())
	assert.True(t, game.State().Paused)

	press(f, ebiten.KeyP)
	require.NoError(t, f.Update())
	assert.False(t, game.State().Paused)
}

func TestLayoutIsFixed(t *testing.T) {
	f, _, _ := newFrontend(t)
	w, h := f.Layout(1920, 1080)
	assert.Equal(t, 300, w)
	assert.Equal(t, 600, h)
}

func TestBlocksPositions(t *testing.T) {
	var board tetris.Board
	board.Grid[19][0] = 1
	board.Colors[19][0] = core.ColorRed

	piece := tetris.Piece{
		Shape: tetris.NewShape([]uint8{1, 1}, []uint8{1, 1}),
		X:     4,
		Y:     -1,
		Color: core.ColorBlue,
	}

	blocks := Blocks(board, piece, 30)
	require.Len(t, blocks, 3)
	assert.Equal(t, Block{X: 0, Y: 570, Size: 30, Color: core.ColorRed}, blocks[0])
	assert.Equal(t, Block{X: 120, Y: 0, Size: 30, Color: core.ColorBlue}, blocks[1])
	assert.Equal(t, Block{X: 150, Y: 0, Size: 30, Color: core.ColorBlue}, blocks[2])
}

func TestBlocksEmptyBoard(t *testing.T) {
	blocks := Blocks(tetris.Board{}, tetris.Piece{}, 30)
	assert.Empty(t, blocks)
}
