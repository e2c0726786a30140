package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/blockfall/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start Blockfall with a menu",
	Long: `Start Blockfall in interactive menu mode.

Pick Play to start a game or History to browse finished games.
After a game you return to the menu with esc or b.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select
  Q            - Quit

Examples:
  blockfall menu
  blockfall menu --db ./history.db`,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
	cfg, err := runtimeConfig()
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger(false, "blockfall")
	if err != nil {
		return err
	}
	defer closeLog()

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}

	err = tui.RunSession(tui.SessionConfig{
		GameID:  defaultGameID,
		Player:  playerName(),
		Runtime: cfg,
		Store:   store,
		Logger:  logger,
	})
	if err != nil {
		return fmt.Errorf("running menu: %w", err)
	}
	return nil
}
