package tetris

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Tick       uint64
	Phase      Phase
	Score      int
	Lines      int
	PieceX     int
	PieceY     int
	PieceShape string
	Board      Board
	Paused     bool
	OverFrames int
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Tick:       g.tick,
		Phase:      g.phase,
		Score:      g.score,
		Lines:      g.lines,
		PieceX:     g.piece.X,
		PieceY:     g.piece.Y,
		PieceShape: g.piece.Shape.String(),
		Board:      g.board,
		Paused:     g.paused,
		OverFrames: g.overFrames,
	}
}
