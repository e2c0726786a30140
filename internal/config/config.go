// Package config loads Blockfall settings from YAML.
package config

// Config is the on-disk game configuration.
type Config struct {
	Board   BoardConfig  `yaml:"board"`
	Timing  TimingConfig `yaml:"timing"`
	Palette []string     `yaml:"palette"`
}

// BoardConfig sets the well dimensions.
type BoardConfig struct {
	Rows int `yaml:"rows"`
	Cols int `yaml:"cols"`
}

// TimingConfig sets gravity timing.
type TimingConfig struct {
	DropIntervalMS int `yaml:"drop_interval_ms"`
}

// Minimum board dimensions: every piece must fit at spawn.
const (
	MinRows = 4
	MinCols = 4
)
