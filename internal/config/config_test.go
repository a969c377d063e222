package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"brewbell/internal/core/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_MissingFileGivesDefaults(t *testing.T) {
	settings, err := Load(filepath.Join(t.TempDir(), "settings.yaml"))

	require.NoError(t, err)
	assert.Equal(t, Defaults(), settings)
}

func TestLoad_EmptyPathGivesDefaults(t *testing.T) {
	settings, err := Load("")

	require.NoError(t, err)
	assert.Equal(t, Defaults(), settings)
}

func TestLoad_FileValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	content := []byte("sound: false\nspeak: true\nshow_steep: false\nicon_size: 96\ntick_interval: 500ms\nlog_level: debug\n")
	require.NoError(t, os.WriteFile(path, content, 0o644))

	settings, err := Load(path)
	require.NoError(t, err)

	assert.False(t, settings.Sound)
	assert.True(t, settings.Speak)
	assert.False(t, settings.ShowSteep)
	assert.Equal(t, 96, settings.IconSize)
	assert.Equal(t, 500*time.Millisecond, settings.TickInterval)
	assert.Equal(t, slog.LevelDebug, settings.Level())
	assert.True(t, settings.Bounce, "unset keys keep their defaults")
}

func TestLoad_EnvOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	require.NoError(t, os.WriteFile(path, []byte("alert: false\n"), 0o644))
	t.Setenv("BREWBELL_ALERT", "true")
	t.Setenv("BREWBELL_SHOW_TIMER", "false")

	settings, err := Load(path)
	require.NoError(t, err)

	assert.True(t, settings.Alert)
	assert.False(t, settings.ShowTimer)
}

func TestLoad_NormalizesOutOfRange(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	require.NoError(t, os.WriteFile(path, []byte("icon_size: 3\ntick_interval: 10s\n"), 0o644))

	settings, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, Defaults().IconSize, settings.IconSize)
	assert.Equal(t, Defaults().TickInterval, settings.TickInterval)
}

func TestLoad_InvalidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	require.NoError(t, os.WriteFile(path, []byte("sound: [oops\n"), 0o644))

	_, err := Load(path)
	assert.ErrorContains(t, err, "read settings")
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "settings.yaml")
	settings := Defaults()
	settings.Alert = true
	settings.Sound = false
	settings.AutoStart = true
	settings.IconSize = 128
	settings.TickInterval = 100 * time.Millisecond
	settings.BeveragesFile = "/tmp/list.toml"

	require.NoError(t, Save(path, settings))
	loaded, err := Load(path)

	require.NoError(t, err)
	assert.Equal(t, settings, loaded)
}

func TestBrewOptions(t *testing.T) {
	settings := Defaults()
	settings.Speak = true
	settings.Bounce = false

	assert.Equal(t, model.BrewOptions{
		Bounce:    false,
		Sound:     true,
		Alert:     false,
		ShowTimer: true,
		Notify:    true,
		Speak:     true,
	}, settings.BrewOptions())
}

func TestLevel_FallsBack(t *testing.T) {
	settings := Defaults()
	settings.LogLevel = "chatty"
	assert.Equal(t, slog.LevelInfo, settings.Level())
}
