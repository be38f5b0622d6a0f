package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/rocket/internal/core"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := Parse(DefaultYAML())
	require.NoError(t, err)
	assert.Equal(t, DefaultRocketConfig(), cfg)
}

func TestDefaultConfigValues(t *testing.T) {
	cfg := DefaultRocketConfig()
	require.NoError(t, cfg.Validate())

	assert.Equal(t, "rocket", cfg.Window.Title)
	assert.Equal(t, 1280, cfg.Window.Width)
	assert.Equal(t, 720, cfg.Window.Height)
	assert.Equal(t, [2]float64{-720, 0}, cfg.Playfield.BackgroundOffsets)
	assert.Equal(t, CullTail, cfg.Playfield.CullPolicy)

	player := cfg.Player.ColoredRect()
	assert.Equal(t, core.NewRect(0, 645, 25, 25), player.Rect)
	assert.Equal(t, core.ColorGreen, player.Color)

	require.Len(t, cfg.Bars, 6)
	assert.Equal(t, core.NewRect(700, -200, 640, 50), cfg.Bars[1].ColoredRect().Rect)
	assert.Equal(t, core.ColorGrey, cfg.Bars[1].Color)
	assert.Equal(t, core.ColorRed, cfg.Bars[5].Color)
}

func TestParsePartialOverride(t *testing.T) {
	cfg, err := Parse([]byte("playfield:\n  bar_speed: 250\n  cull_policy: filter\n"))
	require.NoError(t, err)

	assert.Equal(t, 250.0, cfg.Playfield.BarSpeed)
	assert.Equal(t, CullFilter, cfg.Playfield.CullPolicy)
	assert.Equal(t, 100.0, cfg.Playfield.BackgroundSpeed, "unset values keep their default")
	assert.Len(t, cfg.Bars, 6, "bars keep their default when not listed")
}

func TestParseBarsReplaceDefaults(t *testing.T) {
	data := []byte(`
bars:
  - { x: 0, y: 700, width: 1280, height: 25, color: gray }
`)
	cfg, err := Parse(data)
	require.NoError(t, err)

	require.Len(t, cfg.Bars, 1)
	assert.Equal(t, core.ColorGrey, cfg.Bars[0].Color)
	assert.Equal(t, 700.0, cfg.Bars[0].Y)
}

func TestParseEmptyBars(t *testing.T) {
	cfg, err := Parse([]byte("bars: []\n"))
	require.NoError(t, err)
	assert.Empty(t, cfg.Bars)
}

func TestParseRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"unknown color", "player:\n  color: purple\n"},
		{"unknown cull policy", "playfield:\n  cull_policy: random\n"},
		{"negative speed", "playfield:\n  bar_speed: -1\n"},
		{"zero window", "window:\n  width: 0\n"},
		{"negative bar size", "bars:\n  - { width: -5, height: 1, color: red }\n"},
		{"malformed", "window: [\n"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse([]byte(tc.yaml))
			assert.Error(t, err)
		})
	}
}

func TestLoadCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte("window:\n  title: custom\n"), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "custom", cfg.Window.Title)
	assert.Equal(t, 1280, cfg.Window.Width)
}

func TestLoadCustomPathErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("player:\n  color: nope\n"), 0o600))
	_, err = Load(bad)
	assert.Error(t, err)
}

func TestLoadFallsBackToDefault(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, DefaultRocketConfig(), cfg)
}

func TestLoadLocalConfigsDir(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	dir := t.TempDir()
	t.Chdir(dir)
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "configs"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "configs", FileName), []byte("playfield:\n  bar_speed: 42\n"), 0o600))

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 42.0, cfg.Playfield.BarSpeed)
}
