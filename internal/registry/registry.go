// Package registry keeps the set of playable games. Games register a
// factory from init(), so the platform can list and create them by ID.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/blockfall/internal/core"
)

// Game is what the platform needs from a game. Implementations are pure
// logic: the platform maps keys to actions, delivers ticks and displays
// the rendered screen.
type Game interface {
	// ID returns a unique identifier, used by the CLI and play history.
	ID() string

	// Title returns a human-readable name.
	Title() string

	// Start resets the game and begins play. The game arms ticks when it
	// needs periodic updates and stops it when play ends.
	Start(cfg core.RuntimeConfig, ticks core.TickSource)

	// Handle applies a player action immediately.
	Handle(a core.Action) core.StepResult

	// Tick is called once per tick delivered by the armed TickSource.
	Tick() core.StepResult

	// Resize tells the game the new screen dimensions.
	Resize(width, height int)

	// Render draws the current state into dst.
	Render(dst *core.Screen)

	// State returns the current game state.
	State() core.GameState
}

// GameInfo describes a registered game.
type GameInfo struct {
	ID    string
	Title string
}

// Factory creates a new, idle game instance.
type Factory func() Game

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a game factory. Panics if the ID is already registered.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}

	factories[id] = f
	titles[id] = f().Title()
}

// List returns all registered games sorted by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, 0, len(factories))
	for id := range factories {
		result = append(result, GameInfo{ID: id, Title: titles[id]})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})
	return result
}

// Create instantiates a registered game.
func Create(id string) (Game, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}
	return f(), nil
}

// Exists reports whether id is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
