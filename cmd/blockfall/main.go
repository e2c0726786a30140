// blockfall is a falling-block puzzle game for the terminal.
//
// Usage:
//
//	blockfall play            - Play a game
//	blockfall menu            - Start menu with play history
//	blockfall serve           - Start SSH server for remote play
//	blockfall history         - Show recent games
//	blockfall list            - List available games
//	blockfall config          - Print the default config file
//
// Global flags:
//
//	--seed <value>      - Set RNG seed for reproducible piece order
//	--db <path>         - Set database path (default: ~/.blockfall/history.db)
//	--config <path>     - Load board and timing settings from YAML
//	--log-file <path>   - Write logs to a file
//	--log-level <level> - debug, info, warn or error
package main

import (
	"fmt"
	"os"
	"os/user"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/blockfall/internal/config"
	"github.com/vovakirdan/blockfall/internal/core"
	_ "github.com/vovakirdan/blockfall/internal/games/blockfall" // Register the game
	"github.com/vovakirdan/blockfall/internal/logging"
	"github.com/vovakirdan/blockfall/internal/storage"
)

const defaultGameID = "blockfall"

var (
	// Global flags
	flagSeed     int64
	flagDBPath   string
	flagConfig   string
	flagLogFile  string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "blockfall",
	Short: "Blockfall - falling blocks in your terminal",
	Long: `Blockfall is a terminal falling-block puzzle game.

Steer the falling pieces, fill whole rows to clear them, and keep the
stack from reaching the top.

Available commands:
  play     - Play a game directly
  menu     - Start menu with play history
  serve    - Start SSH server for remote play
  history  - Show recent games
  list     - Show all available games
  config   - Print the default config file

Examples:
  blockfall play
  blockfall play --seed 42
  blockfall menu
  blockfall serve --ssh :2222
  blockfall history`,
	SilenceUsage: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.blockfall/history.db", "Path to history database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(configCmd)
}

// runtimeConfig resolves the config file and terminal size into the
// settings a game starts with.
func runtimeConfig() (core.RuntimeConfig, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return core.RuntimeConfig{}, err
	}

	rc := core.DefaultConfig()
	cfg.Apply(&rc)
	rc.Seed = flagSeed

	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		rc.ScreenW = w
		rc.ScreenH = h
	}
	return rc, nil
}

// newLogger builds the logger from the global flags. Without a log file,
// logs go to stderr only when the terminal is not taken over by the TUI.
func newLogger(stderr bool, prefix string) (*log.Logger, func() error, error) {
	return logging.New(logging.Options{
		Level:  flagLogLevel,
		File:   flagLogFile,
		Stderr: stderr,
		Prefix: prefix,
	})
}

// openStore opens the history database. Play continues without history
// when it cannot be opened.
func openStore(logger *log.Logger) *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open history database: %v\n", err)
		logger.Warn("could not open history database", "error", err)
		return nil
	}
	return store
}

// playerName names the local player in the history.
func playerName() string {
	if u, err := user.Current(); err == nil && u.Username != "" {
		return u.Username
	}
	return os.Getenv("USER")
}
