package core

import "time"

// TickSource schedules the periodic tick that drives a game.
// A game calls Start when it begins and Stop when it ends; the owner of the
// source delivers each tick back to the game on the game's own thread.
type TickSource interface {
	Start(interval time.Duration)
	Stop()
}

// ManualTicks is a TickSource for deterministic driving.
// Ticks are delivered by calling the game directly; it only records
// whether the source is armed.
type ManualTicks struct {
	Interval time.Duration
	Active   bool
	Starts   int
	Stops    int
}

// Start arms the source.
func (m *ManualTicks) Start(interval time.Duration) {
	m.Interval = interval
	m.Active = true
	m.Starts++
}

// Stop disarms the source.
func (m *ManualTicks) Stop() {
	m.Active = false
	m.Stops++
}
