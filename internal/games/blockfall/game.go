// Package blockfall implements the falling-block puzzle game.
// It holds pure game logic; input, timing and drawing are supplied by the
// platform through core.Action values, a core.TickSource and core.Screen.
package blockfall

import (
	"github.com/vovakirdan/blockfall/internal/core"
	"github.com/vovakirdan/blockfall/internal/registry"
)

// Phase is the game loop state.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseRunning
	PhaseGameOver
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseRunning:
		return "running"
	case PhaseGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Piece is the active falling piece. Row and Col anchor the top-left
// corner of Shape on the board.
type Piece struct {
	Kind  Kind
	Shape Shape
	Row   int
	Col   int
}

// Game is one play session: board, active piece and the tick source that
// drives gravity. A Game must only be used from one goroutine.
type Game struct {
	cfg     core.RuntimeConfig
	board   *Board
	piece   Piece
	phase   Phase
	paused  bool
	ticks   core.TickSource
	source  PieceSource
	fixed   PieceSource // set by WithPieceSource, survives restarts
	palette []core.Color
	pieces  int
	tick    uint64

	screenW  int
	screenH  int
	tooSmall bool
}

// Option configures a Game at construction.
type Option func(*Game)

// WithPieceSource replaces the seeded random piece choice.
func WithPieceSource(src PieceSource) Option {
	return func(g *Game) {
		g.fixed = src
	}
}

// New creates an idle game. Call Start to begin play.
func New(opts ...Option) *Game {
	g := &Game{phase: PhaseIdle}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

func init() {
	registry.Register("blockfall", func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "blockfall"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Blockfall"
}

// Start resets the board, spawns the first piece and arms ticks with the
// drop interval. Calling Start again on a finished game restarts it.
func (g *Game) Start(cfg core.RuntimeConfig, ticks core.TickSource) {
	if cfg.Rows <= 0 {
		cfg.Rows = core.DefaultRows
	}
	if cfg.Cols <= 0 {
		cfg.Cols = core.DefaultCols
	}
	if cfg.DropInterval <= 0 {
		cfg.DropInterval = core.DefaultDropInterval
	}
	g.cfg = cfg

	g.palette = DefaultPalette()
	if len(cfg.Palette) == KindCount {
		copy(g.palette, cfg.Palette)
	}

	g.source = g.fixed
	if g.source == nil {
		g.source = NewRandomSource(cfg.Seed)
	}

	if ticks == nil {
		ticks = &core.ManualTicks{}
	}
	g.ticks = ticks

	g.board = NewBoard(cfg.Rows, cfg.Cols)
	g.paused = false
	g.pieces = 0
	g.tick = 0
	g.Resize(cfg.ScreenW, cfg.ScreenH)

	g.phase = PhaseRunning
	g.Spawn()
	if g.phase == PhaseRunning {
		g.ticks.Start(cfg.DropInterval)
	}
}

// Resize records the screen size used by Render.
func (g *Game) Resize(width, height int) {
	g.screenW = width
	g.screenH = height
	g.tooSmall = width < g.minWidth() || height < g.minHeight()
}

// Spawn places the next piece at the top center of the board. If it
// cannot be placed there the game is over and the tick source is stopped.
func (g *Game) Spawn() {
	if g.phase != PhaseRunning {
		return
	}

	spec := Spec(g.source.Next())
	g.piece = Piece{
		Kind:  spec.Kind,
		Shape: spec.Shape,
		Row:   0,
		Col:   g.board.Cols()/2 - spec.Shape.Width()/2,
	}
	g.pieces++

	if g.board.Collides(g.piece.Row, g.piece.Col, g.piece.Shape) {
		g.phase = PhaseGameOver
		g.ticks.Stop()
	}
}

// Move shifts the active piece by dCol columns if the target is free.
// Returns whether the piece moved.
func (g *Game) Move(dCol int) bool {
	if g.phase != PhaseRunning {
		return false
	}
	if g.board.Collides(g.piece.Row, g.piece.Col+dCol, g.piece.Shape) {
		return false
	}
	g.piece.Col += dCol
	return true
}

// Rotate turns the active piece a quarter turn in place if it fits.
// There are no wall kicks. Returns whether the piece rotated.
func (g *Game) Rotate() bool {
	if g.phase != PhaseRunning {
		return false
	}
	rotated := g.piece.Shape.Rotate()
	if g.board.Collides(g.piece.Row, g.piece.Col, rotated) {
		return false
	}
	g.piece.Shape = rotated
	return true
}

// DropOneStep moves the active piece down one row. When it cannot move the
// piece locks: it is merged into the board, full rows are cleared and the
// next piece spawns.
func (g *Game) DropOneStep() core.StepResult {
	if g.phase != PhaseRunning {
		return core.StepResult{State: g.State()}
	}

	if !g.board.Collides(g.piece.Row+1, g.piece.Col, g.piece.Shape) {
		g.piece.Row++
		return core.StepResult{State: g.State()}
	}

	g.board.Merge(g.piece.Row, g.piece.Col, g.piece.Shape, g.piece.Kind.CellValue())
	cleared := g.board.ClearFullRows()
	g.Spawn()

	return core.StepResult{
		State:   g.State(),
		Locked:  true,
		Cleared: cleared,
	}
}

// Tick advances gravity by one step. Ticks are ignored while paused or
// when the game is not running.
func (g *Game) Tick() core.StepResult {
	g.tick++
	if g.phase != PhaseRunning || g.paused || g.tooSmall {
		return core.StepResult{State: g.State()}
	}
	return g.DropOneStep()
}

// Handle applies one player action synchronously.
// Restart and quit belong to the platform and are ignored here.
func (g *Game) Handle(a core.Action) core.StepResult {
	if g.phase != PhaseRunning || g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	if a == core.ActionPause {
		g.paused = !g.paused
		return core.StepResult{State: g.State()}
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	switch a {
	case core.ActionLeft:
		g.Move(-1)
	case core.ActionRight:
		g.Move(1)
	case core.ActionRotate:
		g.Rotate()
	case core.ActionSoftDrop:
		return g.DropOneStep()
	}
	return core.StepResult{State: g.State()}
}

// State returns the platform-facing summary of the game.
func (g *Game) State() core.GameState {
	return core.GameState{
		Running:  g.phase == PhaseRunning,
		GameOver: g.phase == PhaseGameOver,
		Paused:   g.paused || g.tooSmall,
		Pieces:   g.pieces,
	}
}

// Phase returns the current loop state.
func (g *Game) Phase() Phase {
	return g.phase
}

// Board returns the live board.
func (g *Game) Board() *Board {
	return g.board
}

// Piece returns a copy of the active piece.
func (g *Game) Piece() Piece {
	p := g.piece
	p.Shape = p.Shape.Clone()
	return p
}
