package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/perftree/perftree/internal/report"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := LoadWithDir(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "streamlined", cfg.Style)
	assert.Equal(t, 0, cfg.Decimals)
	assert.False(t, cfg.Color)
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	err := os.WriteFile(
		filepath.Join(dir, "config.yaml"),
		[]byte("style: doubled\ndecimals: 3\ncolor: true\n"),
		0o600,
	)
	require.NoError(t, err)

	cfg, err := LoadWithDir(dir)
	require.NoError(t, err)

	assert.Equal(t, "doubled", cfg.Style)
	assert.Equal(t, 3, cfg.Decimals)
	assert.True(t, cfg.Color)
}

func TestEnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	err := os.WriteFile(
		filepath.Join(dir, "config.yaml"),
		[]byte("style: doubled\n"),
		0o600,
	)
	require.NoError(t, err)

	t.Setenv("PERFTREE_STYLE", "compatible")
	t.Setenv("PERFTREE_DECIMALS", "2")

	cfg, err := LoadWithDir(dir)
	require.NoError(t, err)

	assert.Equal(t, "compatible", cfg.Style)
	assert.Equal(t, 2, cfg.Decimals)
}

func TestLoadUnknownStyle(t *testing.T) {
	dir := t.TempDir()
	err := os.WriteFile(
		filepath.Join(dir, "config.yaml"),
		[]byte("style: sparkles\n"),
		0o600,
	)
	require.NoError(t, err)

	_, err = LoadWithDir(dir)
	assert.ErrorContains(t, err, "unknown style")
}

func TestLoadMalformedYAML(t *testing.T) {
	dir := t.TempDir()
	err := os.WriteFile(
		filepath.Join(dir, "config.yaml"),
		[]byte("style: [broken\n"),
		0o600,
	)
	require.NoError(t, err)

	_, err = LoadWithDir(dir)
	assert.Error(t, err)
}

func TestReportOptions(t *testing.T) {
	cfg := Config{Style: "rounded", Decimals: 1, Color: true}
	opts := cfg.ReportOptions()

	assert.Equal(t, report.Rounded, opts.Style)
	assert.Equal(t, 1, opts.Decimals)
	assert.True(t, opts.Color)

	// Unknown styles fall back to the default rather than exploding;
	// Load already rejects them before this point.
	opts = Config{Style: "bogus"}.ReportOptions()
	assert.Equal(t, report.Streamlined, opts.Style)
}
