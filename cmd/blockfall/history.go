package main

import (
	"fmt"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/blockfall/internal/storage"
)

var (
	flagHistoryLimit int
	flagHistoryClear bool
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recent games",
	Long: `Display the most recent finished games and overall totals.

Examples:
  blockfall history
  blockfall history --limit 25
  blockfall history --clear`,
	Args: cobra.NoArgs,
	RunE: runHistory,
}

func init() {
	historyCmd.Flags().IntVar(&flagHistoryLimit, "limit", 10, "Number of games to show")
	historyCmd.Flags().BoolVar(&flagHistoryClear, "clear", false, "Delete the recorded history")
}

func runHistory(_ *cobra.Command, _ []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening history database: %w", err)
	}
	defer store.Close()

	if flagHistoryClear {
		if err := store.ClearHistory(defaultGameID); err != nil {
			return err
		}
		fmt.Println("History cleared.")
		return nil
	}

	sessions, err := store.RecentSessions(defaultGameID, flagHistoryLimit)
	if err != nil {
		return fmt.Errorf("retrieving history: %w", err)
	}

	fmt.Println("Play History - Blockfall")
	fmt.Println()

	if len(sessions) == 0 {
		fmt.Println("No games recorded yet.")
		fmt.Println()
		fmt.Println("Run 'blockfall play' to start one!")
		return nil
	}

	fmt.Printf("  %-16s  %-12s  %6s  %6s  %-9s  %s\n", "When", "Player", "Pieces", "Time", "End", "Seed")
	fmt.Printf("  %-16s  %-12s  %6s  %6s  %-9s  %s\n", "----", "------", "------", "----", "---", "----")
	for _, s := range sessions {
		fmt.Printf("  %-16s  %-12s  %6d  %6s  %-9s  %d\n",
			humanize.Time(s.StartedAt), s.Player, s.Pieces,
			s.Duration.Round(time.Second), s.EndReason, s.Seed)
	}

	stats, err := store.GameStats(defaultGameID)
	if err == nil {
		fmt.Println()
		fmt.Printf("Games: %s  Game overs: %d  Longest: %s  Total: %s\n",
			humanize.Comma(int64(stats.Sessions)), stats.GameOvers,
			stats.Longest.Round(time.Second), stats.TotalPlay.Round(time.Second))
	}
	return nil
}
