package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/blockfall/internal/core"
	"github.com/vovakirdan/blockfall/internal/logging"
	"github.com/vovakirdan/blockfall/internal/registry"
	"github.com/vovakirdan/blockfall/internal/storage"
)

// helpHeight is the number of rows reserved below the game for the help bar.
const helpHeight = 1

// Model is the Bubble Tea model for running a game.
// Keys and ticks arrive as messages, so the game is only ever touched from
// Update and needs no locking.
type Model struct {
	game      registry.Game
	screen    *core.Screen
	store     *storage.Store
	config    core.RuntimeConfig
	ticks     *teaTicker
	keys      KeyMap
	help      help.Model
	styles    Styles
	logger    *log.Logger
	player    string
	gameState core.GameState
	startedAt time.Time
	recorded  bool // Whether the current session has been written to history
	embedded  bool // Back returns to a parent model instead of quitting
	quitting  bool
	back      bool
}

// ModelOption customizes a Model.
type ModelOption func(*Model)

// WithLogger sets the logger for game events.
func WithLogger(l *log.Logger) ModelOption {
	return func(m *Model) {
		if l != nil {
			m.logger = l
		}
	}
}

// WithStyles sets the color styles, e.g. from a per-session renderer.
func WithStyles(s Styles) ModelOption {
	return func(m *Model) {
		if s != nil {
			m.styles = s
		}
	}
}

// WithPlayer names the player in the play history.
func WithPlayer(name string) ModelOption {
	return func(m *Model) {
		m.player = name
	}
}

func embedded() ModelOption {
	return func(m *Model) {
		m.embedded = true
	}
}

// NewModel creates a model for the given game and starts play.
func NewModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, opts ...ModelOption) Model {
	m := Model{
		game:   game,
		screen: core.NewScreen(cfg.ScreenW, max(cfg.ScreenH-helpHeight, 0)),
		store:  store,
		config: cfg,
		ticks:  newTeaTicker(),
		keys:   DefaultKeyMap(),
		help:   help.New(),
		styles: defaultStyles,
		logger: logging.Discard(),
	}
	m.help.Width = cfg.ScreenW
	for _, opt := range opts {
		opt(&m)
	}

	m.start()
	return m
}

// start begins a session, picking a seed from the clock when none is set.
func (m *Model) start() {
	if m.config.Seed == 0 {
		m.config.Seed = time.Now().UnixNano()
	}

	cfg := m.config
	cfg.ScreenH = m.screen.Height()
	m.game.Start(cfg, m.ticks)
	m.gameState = m.game.State()
	m.startedAt = time.Now()
	m.recorded = false

	m.logger.Debug("game started", "game", m.game.ID(), "seed", m.config.Seed, "player", m.player)
}

// Init schedules the first tick.
func (m Model) Init() tea.Cmd {
	return m.ticks.cmd()
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(msg)
	}

	return m, nil
}

// handleKey applies the mapped action immediately.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Screenshot) {
		m.saveScreenshot()
		return m, nil
	}

	switch action := m.keys.Action(msg); action {
	case core.ActionNone:
		return m, nil

	case core.ActionQuit:
		m.finish(storage.EndQuit)
		m.quitting = true
		return m, tea.Quit

	case core.ActionBack:
		m.finish(storage.EndQuit)
		m.back = true
		if !m.embedded {
			m.quitting = true
			return m, tea.Quit
		}
		return m, nil

	case core.ActionRestart:
		if !m.gameState.GameOver {
			return m, nil
		}
		m.config.Seed = time.Now().UnixNano()
		m.start()
		m.logger.Info("game restarted", "game", m.game.ID(), "seed", m.config.Seed)
		return m, m.ticks.cmd()

	default:
		m.apply(m.game.Handle(action))
		return m, nil
	}
}

// handleResize resizes the screen without restarting the game.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, max(msg.Height-helpHeight, 0))
	m.game.Resize(m.screen.Width(), m.screen.Height())
	m.gameState = m.game.State()
	m.help.Width = msg.Width
	return m, nil
}

// handleTick runs one gravity step if the tick belongs to the current arming.
func (m Model) handleTick(msg TickMsg) (tea.Model, tea.Cmd) {
	if !m.ticks.accept(msg) {
		return m, nil
	}
	m.apply(m.game.Tick())
	return m, m.ticks.cmd()
}

// apply records the outcome of a step.
func (m *Model) apply(result core.StepResult) {
	m.gameState = result.State
	if result.Cleared > 0 {
		m.logger.Debug("rows cleared", "count", result.Cleared)
	}
	if m.gameState.GameOver && !m.recorded {
		m.logger.Info("game over", "game", m.game.ID(), "pieces", m.gameState.Pieces)
		m.finish(storage.EndGameOver)
	}
}

// finish writes the session to the play history once.
func (m *Model) finish(reason string) {
	if m.recorded {
		return
	}
	m.recorded = true
	if m.store == nil {
		return
	}

	rec := storage.SessionRecord{
		GameID:    m.game.ID(),
		Player:    m.player,
		Seed:      m.config.Seed,
		Pieces:    m.game.State().Pieces,
		EndReason: reason,
		StartedAt: m.startedAt,
		Duration:  time.Since(m.startedAt),
	}
	if _, err := m.store.SaveSession(rec); err != nil {
		m.logger.Warn("could not save session", "error", err)
	}
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("screenshot failed", "error", err)
		return
	}
	dir := filepath.Join(home, ".blockfall", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("screenshot failed", "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("screenshot failed", "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return m.styles.Render(m.screen) + "\n" + m.help.View(m.keys)
}

// State returns the last reported game state.
func (m Model) State() core.GameState {
	return m.gameState
}

// IsQuitting returns true if user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m Model) BackToMenu() bool {
	return m.back && m.embedded
}

// Run starts the Bubble Tea program with the given game.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, opts ...ModelOption) error {
	model := NewModel(game, store, cfg, opts...)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
