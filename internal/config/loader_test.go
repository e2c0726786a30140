package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/blockfall/internal/core"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
}

func TestEmbeddedDefaultMatchesHardcoded(t *testing.T) {
	cfg, err := parse(DefaultYAML())
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadFallsBackToEmbeddedDefault(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadUserConfig(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	writeFile(t, filepath.Join(home, ".blockfall", "configs", "blockfall.yaml"), "board:\n  cols: 12\n")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 12, cfg.Board.Cols)
	assert.Equal(t, 20, cfg.Board.Rows, "unset fields keep defaults")
}

func TestLoadInvalidUserConfigIsSkipped(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	writeFile(t, filepath.Join(home, ".blockfall", "configs", "blockfall.yaml"), "board:\n  rows: 1\n")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	writeFile(t, path, "timing:\n  drop_interval_ms: 250\npalette: [red, red, red, red, red, red, white]\n")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 250*time.Millisecond, cfg.DropInterval())
	assert.Equal(t, "white", cfg.Palette[6])
	assert.Len(t, cfg.Palette, 7)
}

func TestLoadCustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := Load(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)

	bad := filepath.Join(dir, "bad.yaml")
	writeFile(t, bad, "board: [not, a, map]\n")
	_, err = Load(bad)
	assert.Error(t, err)

	invalid := filepath.Join(dir, "invalid.yaml")
	writeFile(t, invalid, "board:\n  cols: 2\n")
	_, err = Load(invalid)
	assert.ErrorContains(t, err, "board.cols")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		errMsg string
	}{
		{"default is valid", func(*Config) {}, ""},
		{"too few rows", func(c *Config) { c.Board.Rows = 3 }, "board.rows"},
		{"too few cols", func(c *Config) { c.Board.Cols = 0 }, "board.cols"},
		{"zero interval", func(c *Config) { c.Timing.DropIntervalMS = 0 }, "drop_interval_ms"},
		{"short palette", func(c *Config) { c.Palette = c.Palette[:3] }, "palette must list"},
		{"unknown color", func(c *Config) { c.Palette[0] = "teal" }, "unknown color"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if tc.errMsg == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorContains(t, err, tc.errMsg)
		})
	}
}

func TestApply(t *testing.T) {
	cfg := Default()
	cfg.Board.Rows = 16
	cfg.Timing.DropIntervalMS = 300

	rc := core.DefaultConfig()
	cfg.Apply(&rc)

	assert.Equal(t, 16, rc.Rows)
	assert.Equal(t, 10, rc.Cols)
	assert.Equal(t, 300*time.Millisecond, rc.DropInterval)
	require.Len(t, rc.Palette, 7)
	assert.Equal(t, core.ColorCyan, rc.Palette[0])
	assert.Equal(t, core.ColorRed, rc.Palette[6])
}
