// Package tui provides the Bubble Tea integration for Blockfall.
// It handles the terminal UI loop, input mapping, and game orchestration.
package tui

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a gravity tick. Source and Gen identify the
// ticker and the arming it was scheduled under.
type TickMsg struct {
	Source uint64
	Gen    int
}

var tickerIDs atomic.Uint64

// teaTicker is the core.TickSource the terminal UI hands to a game.
// Every Start or Stop begins a new generation, so a tick scheduled before
// a restart or game over is dropped instead of driving the new game. Ticks
// left over from another ticker are dropped too.
type teaTicker struct {
	id       uint64
	interval time.Duration
	active   bool
	gen      int
}

func newTeaTicker() *teaTicker {
	return &teaTicker{id: tickerIDs.Add(1)}
}

// Start arms the ticker.
func (t *teaTicker) Start(interval time.Duration) {
	t.interval = interval
	t.active = true
	t.gen++
}

// Stop disarms the ticker.
func (t *teaTicker) Stop() {
	t.active = false
	t.gen++
}

// accept reports whether msg belongs to the current arming.
func (t *teaTicker) accept(msg TickMsg) bool {
	return t.active && msg.Source == t.id && msg.Gen == t.gen
}

// cmd schedules the next tick, or returns nil while disarmed.
func (t *teaTicker) cmd() tea.Cmd {
	if !t.active {
		return nil
	}
	id, gen := t.id, t.gen
	return tea.Tick(t.interval, func(time.Time) tea.Msg {
		return TickMsg{Source: id, Gen: gen}
	})
}
