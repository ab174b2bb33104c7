package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	cfg := Default()
	assert.Equal(t, ProfileDesktop, cfg.Profile)
	assert.Equal(t, 25.0, cfg.Grid.Resolution)
	assert.Equal(t, 2.0, cfg.Grid.SnapRange)
	assert.Equal(t, 25.0, cfg.Grid.MinDimension)
	assert.True(t, *cfg.Grid.ShowOnStart)
	assert.Equal(t, 10, cfg.Zoom.MaxSteps)

	touch := ForProfile(ProfileTouch)
	assert.Equal(t, 50.0, touch.Grid.Resolution)
	assert.Equal(t, 50.0, touch.Snapper().MinDimension)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "floor.yaml")
	data := []byte(`
profile: touch
grid:
  snap_range: 3
  show_on_start: false
zoom:
  max_steps: 6
palette:
  pending: "#ff0000"
log:
  level: debug
`)
	require.NoError(t, os.WriteFile(path, data, 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 50.0, cfg.Grid.Resolution)
	assert.Equal(t, 3.0, cfg.Snapper().SnapRange)
	assert.False(t, *cfg.Grid.ShowOnStart)
	assert.Equal(t, 6, cfg.ZoomSettings().MaxSteps)
	assert.Equal(t, "#ff0000", cfg.TablePalette().Pending)
	assert.NotEmpty(t, cfg.TablePalette().Free)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)

	_, err = Parse([]byte("grid: [1, 2"))
	require.Error(t, err)
}
