// Package tetris implements the falling-block puzzle: a 10×20 playfield,
// seven tetromino templates, gravity, line clearing and scoring.
// The package is pure simulation; frontends feed it input frames and draw
// what it exposes.
package tetris

import (
	"time"

	"github.com/MrBanana2045/Teteis/internal/core"
	"github.com/MrBanana2045/Teteis/internal/registry"
)

// Phase is the round state machine.
type Phase int

const (
	PhasePlaying Phase = iota
	PhaseGameOver
	PhaseResetting
)

func (p Phase) String() string {
	switch p {
	case PhasePlaying:
		return "playing"
	case PhaseGameOver:
		return "game_over"
	case PhaseResetting:
		return "resetting"
	default:
		return "unknown"
	}
}

// Settings are the tunable gameplay constants.
type Settings struct {
	DropInterval   time.Duration // Gravity fires once the piece timer exceeds this
	ScorePerLine   int
	GameOverFrames int // Length of the lose animation in frames
}

// DefaultSettings returns the classic constants: 0.5s gravity, one point per
// line and a 120-frame lose animation.
func DefaultSettings() Settings {
	return Settings{
		DropInterval:   500 * time.Millisecond,
		ScorePerLine:   1,
		GameOverFrames: 120,
	}
}

// Package-level settings picked up by registry-created games.
var configured = DefaultSettings()

// Configure sets the settings used by games created through the registry.
func Configure(s Settings) {
	configured = s
}

// Game implements registry.Game for the falling-block puzzle.
type Game struct {
	settings Settings
	rng      *RNG
	tick     uint64
	tickDur  time.Duration

	board Board
	piece Piece
	score int
	lines int

	phase      Phase
	overFrames int
	paused     bool

	sounds []core.Sound
}

func init() {
	registry.Register("tetris", func() registry.Game {
		return New()
	})
}

// New creates a game with the package-level settings.
func New() *Game {
	return NewWithSettings(configured)
}

// NewWithSettings creates a game with explicit settings.
func NewWithSettings(s Settings) *Game {
	return &Game{settings: s}
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "tetris"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Tetris"
}

// Reset starts a new session. The RNG is seeded here and nowhere else, so
// rounds restarted after a game over continue the same random sequence.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.rng = NewRNG(uint32(cfg.Seed))
	g.tick = 0
	g.tickDur = cfg.TickDuration()
	g.paused = false
	g.sounds = nil
	g.resetRound()
}

// resetRound clears the playfield and score and spawns a fresh piece.
func (g *Game) resetRound() {
	g.board.Reset()
	g.score = 0
	g.lines = 0
	g.overFrames = 0
	g.piece = NewPiece(g.rng)
	g.phase = PhasePlaying
}

// Step advances the simulation by one frame.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++
	g.sounds = nil

	if in.Has(core.ActionPause) && g.phase == PhasePlaying {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	switch g.phase {
	case PhasePlaying:
		g.applyGravity(in.Delta)
		if g.phase == PhasePlaying {
			g.applyInput(in)
		}
	case PhaseGameOver:
		g.overFrames--
		if g.overFrames <= 0 {
			g.phase = PhaseResetting
		}
	case PhaseResetting:
		g.resetRound()
	}

	return core.StepResult{State: g.State(), Sounds: g.sounds}
}

func (g *Game) applyGravity(delta time.Duration) {
	if delta <= 0 {
		delta = g.tickDur
	}
	g.piece.Timer += delta
	if g.piece.Timer <= g.settings.DropInterval {
		return
	}

	if g.board.Collide(g.piece, 0, 1) {
		g.lockPiece()
	} else {
		g.piece.Y++
	}
	g.piece.Timer = 0
}

func (g *Game) applyInput(in core.InputFrame) {
	if in.Has(core.ActionLeft) {
		g.shift(-1)
	}
	if in.Has(core.ActionRight) {
		g.shift(1)
	}
	if in.Has(core.ActionDown) {
		if !g.board.Collide(g.piece, 0, 1) {
			g.piece.Y++
			g.emit(core.SoundMove)
		} else {
			g.lockPiece()
			if g.phase != PhasePlaying {
				return
			}
		}
	}
	if in.Has(core.ActionRotate) {
		rotated := g.piece.Clone()
		Rotate(&rotated)
		if !g.board.Collide(rotated, 0, 0) {
			g.piece = rotated
			g.emit(core.SoundMove)
		}
	}
}

func (g *Game) shift(dx int) {
	if g.board.Collide(g.piece, dx, 0) {
		return
	}
	g.piece.X += dx
	g.emit(core.SoundMove)
}

// lockPiece commits the active piece, clears lines, scores them and spawns
// the next piece. A spawn that collides starts the lose animation.
func (g *Game) lockPiece() {
	g.emit(core.SoundLock)
	g.board.Lock(g.piece)

	if n := g.board.ClearLines(); n > 0 {
		g.score += n * g.settings.ScorePerLine
		g.lines += n
		g.emit(core.SoundLineClear)
	}

	g.piece = NewPiece(g.rng)
	if g.board.Collide(g.piece, 0, 0) {
		g.phase = PhaseGameOver
		g.overFrames = g.settings.GameOverFrames
		g.emit(core.SoundGameOver)
	}
}

func (g *Game) emit(s core.Sound) {
	g.sounds = append(g.sounds, s)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: g.phase != PhasePlaying,
		Paused:   g.paused,
	}
}

// Board returns a copy of the playfield.
func (g *Game) Board() Board {
	return g.board
}

// Piece returns a copy of the active piece.
func (g *Game) Piece() Piece {
	return g.piece.Clone()
}

// Phase returns the current round phase.
func (g *Game) Phase() Phase {
	return g.phase
}

// Score returns the current score.
func (g *Game) Score() int {
	return g.score
}

// Lines returns the number of lines cleared this round.
func (g *Game) Lines() int {
	return g.lines
}
