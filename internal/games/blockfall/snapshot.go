package blockfall

// Snapshot captures the complete game state for determinism tests.
type Snapshot struct {
	Tick   uint64
	Phase  Phase
	Paused bool
	Pieces int
	Board  [][]int
	Piece  Piece
}

// Snapshot returns a deep copy of the current state.
func (g *Game) Snapshot() Snapshot {
	s := Snapshot{
		Tick:   g.tick,
		Phase:  g.phase,
		Paused: g.paused,
		Pieces: g.pieces,
	}
	if g.board != nil {
		s.Board = g.board.Cells()
		s.Piece = g.Piece()
	}
	return s
}
