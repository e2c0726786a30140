package tui

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/blockfall/internal/core"
	"github.com/vovakirdan/blockfall/internal/games/blockfall"
	"github.com/vovakirdan/blockfall/internal/storage"
)

func openStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "history.db"))
	if err != nil {
		t.Fatalf("storage.Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

// newTestModel starts a game that only ever spawns O pieces.
func newTestModel(t *testing.T, store *storage.Store) (Model, *blockfall.Game) {
	t.Helper()
	game := blockfall.New(blockfall.WithPieceSource(blockfall.NewSequence(blockfall.KindO)))
	cfg := core.DefaultConfig()
	cfg.Seed = 7
	m := NewModel(game, store, cfg, WithPlayer("tester"), WithStyles(plainStyles()))
	return m, game
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	model, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T, want Model", next)
	}
	return model, cmd
}

// isQuit runs cmd, so it must only be used where cmd is not a tick.
func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

func currentTick(m Model) TickMsg {
	return TickMsg{Source: m.ticks.id, Gen: m.ticks.gen}
}

// playUntilGameOver soft-drops until the game ends.
func playUntilGameOver(t *testing.T, m Model) Model {
	t.Helper()
	for i := 0; i < 1000 && !m.State().GameOver; i++ {
		m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyDown})
	}
	if !m.State().GameOver {
		t.Fatal("game did not end")
	}
	return m
}

func TestModelStartsGame(t *testing.T) {
	m, game := newTestModel(t, nil)

	if !m.State().Running {
		t.Fatal("game should be running after NewModel")
	}
	if !m.ticks.active {
		t.Error("ticks should be armed")
	}
	if m.Init() == nil {
		t.Error("Init should schedule the first tick")
	}
	if p := game.Piece(); p.Row != 0 || p.Col != 4 {
		t.Errorf("piece at (%d, %d), want (0, 4)", p.Row, p.Col)
	}
}

func TestModelTicksDropPiece(t *testing.T) {
	m, game := newTestModel(t, nil)

	stale := TickMsg{Source: m.ticks.id, Gen: m.ticks.gen - 1}
	m, cmd := update(t, m, stale)
	if game.Piece().Row != 0 || cmd != nil {
		t.Error("stale tick should be ignored")
	}

	foreign := TickMsg{Source: m.ticks.id + 1000, Gen: m.ticks.gen}
	m, _ = update(t, m, foreign)
	if game.Piece().Row != 0 {
		t.Error("tick from another ticker should be ignored")
	}

	m, cmd = update(t, m, currentTick(m))
	if game.Piece().Row != 1 {
		t.Errorf("row = %d after tick, want 1", game.Piece().Row)
	}
	if cmd == nil {
		t.Error("tick should schedule the next tick")
	}
}

func TestModelKeysMovePiece(t *testing.T) {
	m, game := newTestModel(t, nil)

	m, _ = update(t, m, runeKey("h"))
	if game.Piece().Col != 3 {
		t.Errorf("col = %d after left, want 3", game.Piece().Col)
	}

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRight})
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRight})
	if game.Piece().Col != 5 {
		t.Errorf("col = %d after two rights, want 5", game.Piece().Col)
	}

	_, _ = update(t, m, runeKey("j"))
	if game.Piece().Row != 1 {
		t.Errorf("row = %d after soft drop, want 1", game.Piece().Row)
	}
}

func TestModelPause(t *testing.T) {
	m, game := newTestModel(t, nil)

	m, _ = update(t, m, runeKey("p"))
	if !m.State().Paused {
		t.Fatal("p should pause")
	}

	m, cmd := update(t, m, currentTick(m))
	if game.Piece().Row != 0 {
		t.Error("tick should not drop while paused")
	}
	if cmd == nil {
		t.Error("ticks should keep flowing while paused")
	}

	m, _ = update(t, m, runeKey("h"))
	if game.Piece().Col != 4 {
		t.Error("moves should be ignored while paused")
	}

	m, _ = update(t, m, runeKey("p"))
	if m.State().Paused {
		t.Error("second p should resume")
	}
}

func TestModelGameOverRecordsSession(t *testing.T) {
	store := openStore(t)
	m, _ := newTestModel(t, store)

	m = playUntilGameOver(t, m)

	if m.ticks.active {
		t.Error("ticks should be stopped after game over")
	}

	records, err := store.RecentSessions("blockfall", 10)
	if err != nil {
		t.Fatalf("RecentSessions() failed: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("got %d records, want 1", len(records))
	}
	rec := records[0]
	if rec.EndReason != storage.EndGameOver {
		t.Errorf("EndReason = %q, want %q", rec.EndReason, storage.EndGameOver)
	}
	if rec.Player != "tester" || rec.Seed != 7 {
		t.Errorf("unexpected record: %+v", rec)
	}
	// Ten O pieces fill columns 4-5; the eleventh cannot spawn.
	if rec.Pieces != 11 {
		t.Errorf("Pieces = %d, want 11", rec.Pieces)
	}

	// Quitting afterwards does not record the session again
	m, cmd := update(t, m, runeKey("q"))
	if !isQuit(cmd) {
		t.Error("q should quit")
	}
	records, _ = store.RecentSessions("blockfall", 10)
	if len(records) != 1 {
		t.Errorf("got %d records after quit, want 1", len(records))
	}
	if m.View() != "" {
		t.Error("View should be empty after quit")
	}
}

func TestModelRestart(t *testing.T) {
	store := openStore(t)
	m, game := newTestModel(t, store)

	m, cmd := update(t, m, runeKey("r"))
	if cmd != nil || game.State().Pieces != 1 {
		t.Error("restart should be ignored while running")
	}

	m = playUntilGameOver(t, m)

	m, cmd = update(t, m, runeKey("r"))
	if !m.State().Running || m.State().GameOver {
		t.Fatal("r after game over should start a new game")
	}
	if cmd == nil {
		t.Error("restart should re-arm ticks")
	}
	if m.config.Seed == 7 {
		t.Error("restart should pick a new seed")
	}
	if !game.Board().Empty() {
		t.Error("restart should clear the board")
	}

	m, _ = update(t, m, runeKey("q"))
	records, _ := store.RecentSessions("blockfall", 10)
	if len(records) != 2 {
		t.Errorf("got %d records, want 2", len(records))
	}
}

func TestModelQuitRecordsSession(t *testing.T) {
	store := openStore(t)
	m, _ := newTestModel(t, store)

	_, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyCtrlC})
	if !isQuit(cmd) {
		t.Fatal("ctrl+c should quit")
	}

	records, _ := store.RecentSessions("blockfall", 10)
	if len(records) != 1 || records[0].EndReason != storage.EndQuit {
		t.Errorf("expected one quit record, got %+v", records)
	}
}

func TestModelBackQuitsWhenStandalone(t *testing.T) {
	m, _ := newTestModel(t, nil)

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if !isQuit(cmd) {
		t.Error("esc should quit a standalone game")
	}
	if m.BackToMenu() {
		t.Error("standalone game has no menu to return to")
	}
}

func TestModelResizeKeepsGame(t *testing.T) {
	m, game := newTestModel(t, nil)

	m, _ = update(t, m, runeKey("h"))
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})

	if game.Piece().Col != 3 {
		t.Error("resize should not restart the game")
	}
	if m.screen.Width() != 100 || m.screen.Height() != 30-helpHeight {
		t.Errorf("screen is %dx%d", m.screen.Width(), m.screen.Height())
	}

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 20, Height: 10})
	if !m.State().Paused {
		t.Error("too small screen should hold the game")
	}
	if !strings.Contains(m.View(), "small") {
		t.Error("too small screen should show a resize hint")
	}
}

func TestModelView(t *testing.T) {
	m, _ := newTestModel(t, nil)

	view := m.View()
	if !strings.Contains(view, "B L O C K F A L L") {
		t.Error("view should show the title")
	}
	if !strings.Contains(view, "rotate") {
		t.Error("view should show the help bar")
	}
}
