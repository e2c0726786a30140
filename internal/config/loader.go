package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/blockfall/internal/core"
)

// paletteSize is the number of piece kinds a palette must color.
const paletteSize = 7

// Load reads the configuration.
// Search order: customPath -> ~/.blockfall/configs/blockfall.yaml ->
// ./configs/blockfall.yaml -> embedded default.
// Files only need to set the fields they change; the rest keep defaults.
func Load(customPath string) (Config, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return Config{}, fmt.Errorf("config: cannot read %s: %w", customPath, err)
		}
		cfg, err := parse(data)
		if err != nil {
			return Config{}, fmt.Errorf("config: cannot parse %s: %w", customPath, err)
		}
		return cfg, nil
	}

	candidates := []string{userConfigPath("blockfall.yaml"), filepath.Join("configs", "blockfall.yaml")}
	for _, path := range candidates {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if cfg, err := parse(data); err == nil {
			return cfg, nil
		}
	}

	cfg, err := parse(defaultYAML)
	if err != nil {
		return Default(), nil // Embedded file should always parse
	}
	return cfg, nil
}

// parse decodes YAML over the defaults and validates the result.
func parse(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// userConfigPath returns the per-user config file path, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".blockfall", "configs", filename)
}

// Validate checks that the configuration describes a playable game.
func (c Config) Validate() error {
	var errs []error
	if c.Board.Rows < MinRows {
		errs = append(errs, fmt.Errorf("board.rows must be at least %d, got %d", MinRows, c.Board.Rows))
	}
	if c.Board.Cols < MinCols {
		errs = append(errs, fmt.Errorf("board.cols must be at least %d, got %d", MinCols, c.Board.Cols))
	}
	if c.Timing.DropIntervalMS <= 0 {
		errs = append(errs, fmt.Errorf("timing.drop_interval_ms must be positive, got %d", c.Timing.DropIntervalMS))
	}
	if len(c.Palette) != paletteSize {
		errs = append(errs, fmt.Errorf("palette must list %d colors, got %d", paletteSize, len(c.Palette)))
	}
	for _, name := range c.Palette {
		if _, ok := core.ParseColor(name); !ok {
			errs = append(errs, fmt.Errorf("palette: unknown color %q", name))
		}
	}
	return errors.Join(errs...)
}

// DropInterval returns the gravity interval as a duration.
func (c Config) DropInterval() time.Duration {
	return time.Duration(c.Timing.DropIntervalMS) * time.Millisecond
}

// Apply copies the game settings into a runtime config.
// Unknown color names were rejected by Validate and fall back to default.
func (c Config) Apply(rc *core.RuntimeConfig) {
	rc.Rows = c.Board.Rows
	rc.Cols = c.Board.Cols
	rc.DropInterval = c.DropInterval()

	rc.Palette = make([]core.Color, 0, len(c.Palette))
	for _, name := range c.Palette {
		color, _ := core.ParseColor(name)
		rc.Palette = append(rc.Palette, color)
	}
}
