package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/blockfall/internal/games/blockfall"
	"github.com/vovakirdan/blockfall/internal/platform/tui"
	"github.com/vovakirdan/blockfall/internal/registry"
)

var flagSequence string

var playCmd = &cobra.Command{
	Use:   "play [game]",
	Short: "Play a game",
	Long: `Start playing Blockfall.

Controls:
  Left/Right, h/l, a/d  - Move
  Up, k, w              - Rotate
  Down, j, s            - Soft drop
  P                     - Pause
  R                     - Restart (after game over)
  Ctrl+S                - Save a text screenshot
  Q/Esc/Ctrl+C          - Quit

Examples:
  blockfall play
  blockfall play --seed 42
  blockfall play --sequence IOTSZJL
  blockfall play --config ./my-board.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagSequence, "sequence", "", "Fixed cycling piece order, e.g. IOTSZJL")
}

func runPlay(_ *cobra.Command, args []string) error {
	gameID := defaultGameID
	if len(args) == 1 {
		gameID = args[0]
	}

	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown game %q; run 'blockfall list' to see available games", gameID)
	}

	cfg, err := runtimeConfig()
	if err != nil {
		return err
	}

	var game registry.Game
	if flagSequence != "" {
		if gameID != defaultGameID {
			return fmt.Errorf("--sequence only applies to %s", defaultGameID)
		}
		kinds, parseErr := blockfall.ParseKinds(flagSequence)
		if parseErr != nil {
			return parseErr
		}
		game = blockfall.New(blockfall.WithPieceSource(blockfall.NewSequence(kinds...)))
	} else {
		game, err = registry.Create(gameID)
		if err != nil {
			return fmt.Errorf("creating game: %w", err)
		}
	}

	logger, closeLog, err := newLogger(false, "blockfall")
	if err != nil {
		return err
	}
	defer closeLog()

	// Continue without storage if it cannot be opened - game still works
	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}

	if err := tui.Run(game, store, cfg, tui.WithLogger(logger), tui.WithPlayer(playerName())); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
