package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadEmptyPathReturnsDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadFileOverridesAndFillsDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "cell.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
lift1:
  rowMin: 1
  rowMax: 30
watchdogWindow: 2s
`), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 30, cfg.Lift1.RowMax)
	assert.Equal(t, 2*time.Second, cfg.WatchdogWindow)
	// Untouched fields fall back to defaults.
	assert.Equal(t, Default().Lift2, cfg.Lift2)
	assert.Equal(t, Default().ForkMoveDuration, cfg.ForkMoveDuration)
}

func TestLoadMissingFileErrors(t *testing.T) {
	_, err := Load("/nonexistent/path/cell.yaml")
	assert.Error(t, err)
}
