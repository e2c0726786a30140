package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/vovakirdan/blockfall/internal/core"
	"github.com/vovakirdan/blockfall/internal/storage"
)

// MenuChoice is an entry of the start menu.
type MenuChoice int

const (
	MenuNone MenuChoice = iota
	MenuPlay
	MenuHistory
	MenuQuit
)

// String returns the label shown in the menu.
func (c MenuChoice) String() string {
	switch c {
	case MenuPlay:
		return "Play"
	case MenuHistory:
		return "History"
	case MenuQuit:
		return "Quit"
	default:
		return ""
	}
}

// MenuKeyMap defines the key bindings for the start menu.
type MenuKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Quit   key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k MenuKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Select, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k MenuKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// DefaultMenuKeyMap returns default key bindings.
func DefaultMenuKeyMap() MenuKeyMap {
	return MenuKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k", "w"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j", "s"),
			key.WithHelp("↓/j", "down"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "select"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// MenuModel is the Bubble Tea model for the start menu.
type MenuModel struct {
	items    []MenuChoice
	cursor   int
	width    int
	height   int
	gameID   string
	store    *storage.Store
	keys     MenuKeyMap
	help     help.Model
	renderer *lipgloss.Renderer
	summary  string
	selected MenuChoice
}

// NewMenuModel creates a new menu model. The summary line shows the
// recorded history of gameID when a store is available.
func NewMenuModel(store *storage.Store, gameID string, cfg core.RuntimeConfig, r *lipgloss.Renderer) MenuModel {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	h := help.New()
	h.Width = cfg.ScreenW

	m := MenuModel{
		items:    []MenuChoice{MenuPlay, MenuHistory, MenuQuit},
		width:    cfg.ScreenW,
		height:   cfg.ScreenH,
		gameID:   gameID,
		store:    store,
		keys:     DefaultMenuKeyMap(),
		help:     h,
		renderer: r,
	}
	m.summary = m.loadSummary()
	return m
}

func (m MenuModel) loadSummary() string {
	if m.store == nil {
		return "History unavailable"
	}
	stats, err := m.store.GameStats(m.gameID)
	if err != nil || stats.Sessions == 0 {
		return "No games played yet"
	}
	return fmt.Sprintf("%s played, last %s",
		pluralGames(stats.Sessions), humanize.Time(stats.LastPlayed))
}

func pluralGames(n int) string {
	if n == 1 {
		return "1 game"
	}
	return humanize.Comma(int64(n)) + " games"
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.selected = MenuQuit
		case key.Matches(msg, m.keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
		case key.Matches(msg, m.keys.Down):
			if m.cursor < len(m.items)-1 {
				m.cursor++
			}
		case key.Matches(msg, m.keys.Select):
			m.selected = m.items[m.cursor]
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
	}

	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	titleStyle := m.renderer.NewStyle().Bold(true).Foreground(lipgloss.Color("6"))
	dimStyle := m.renderer.NewStyle().Foreground(lipgloss.Color("241"))
	activeStyle := m.renderer.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerStyled(titleStyle.Render("B L O C K F A L L"), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerStyled(dimStyle.Render(m.summary), m.width))
	b.WriteString("\n\n")

	for i, item := range m.items {
		line := "  " + item.String()
		if i == m.cursor {
			line = activeStyle.Render("> " + item.String())
		}
		b.WriteString(centerStyled(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerStyled(dimStyle.Render(m.help.View(m.keys)), m.width))
	b.WriteString("\n")

	return b.String()
}

// Selected returns the chosen entry, or MenuNone while the menu is open.
func (m MenuModel) Selected() MenuChoice {
	return m.selected
}

// centerStyled centers a possibly styled line within width.
func centerStyled(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}
