package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/blockfall/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the default config file",
	Long: `Print the built-in configuration as YAML, or the resolved one with --resolved.

Save it to ~/.blockfall/configs/blockfall.yaml or ./configs/blockfall.yaml
to change the board size, drop interval or palette.

Examples:
  blockfall config > ~/.blockfall/configs/blockfall.yaml
  blockfall config --resolved --config ./my-board.yaml`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

var flagResolved bool

func init() {
	configCmd.Flags().BoolVar(&flagResolved, "resolved", false, "Validate and summarize the config that would be used")
}

func runConfig(_ *cobra.Command, _ []string) error {
	if !flagResolved {
		_, err := os.Stdout.Write(config.DefaultYAML())
		return err
	}

	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}
	fmt.Printf("board:    %d rows x %d cols\n", cfg.Board.Rows, cfg.Board.Cols)
	fmt.Printf("interval: %s\n", cfg.DropInterval())
	fmt.Printf("palette:  %v\n", cfg.Palette)
	return nil
}
