package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"brewbell/internal/core/model"

	"github.com/spf13/viper"
)

const (
	settingsFileName = "settings.yaml"
	envPrefix        = "BREWBELL"
)

// Settings holds user preferences. Values come from the settings file,
// BREWBELL_* environment variables and built-in defaults, in that order of
// precedence after flags.
type Settings struct {
	Bounce    bool `mapstructure:"bounce"`
	Sound     bool `mapstructure:"sound"`
	Alert     bool `mapstructure:"alert"`
	ShowTimer bool `mapstructure:"show_timer"`
	Notify    bool `mapstructure:"notify"`
	Speak     bool `mapstructure:"speak"`

	ShowSteep bool `mapstructure:"show_steep"`
	AutoStart bool `mapstructure:"auto_start"`

	IconSize      int           `mapstructure:"icon_size"`
	TickInterval  time.Duration `mapstructure:"tick_interval"`
	LogLevel      string        `mapstructure:"log_level"`
	BeveragesFile string        `mapstructure:"beverages_file"`
}

// Defaults returns the settings of a fresh install.
func Defaults() Settings {
	options := model.DefaultBrewOptions()
	return Settings{
		Bounce:       options.Bounce,
		Sound:        options.Sound,
		Alert:        options.Alert,
		ShowTimer:    options.ShowTimer,
		Notify:       options.Notify,
		Speak:        options.Speak,
		ShowSteep:    true,
		AutoStart:    false,
		IconSize:     64,
		TickInterval: 250 * time.Millisecond,
		LogLevel:     "info",
	}
}

// DefaultPath returns the settings file location for appName.
func DefaultPath(appName string) (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve user config dir: %w", err)
	}
	return filepath.Join(configDir, appName, settingsFileName), nil
}

func newViper() *viper.Viper {
	v := viper.New()
	defaults := Defaults()
	v.SetDefault("bounce", defaults.Bounce)
	v.SetDefault("sound", defaults.Sound)
	v.SetDefault("alert", defaults.Alert)
	v.SetDefault("show_timer", defaults.ShowTimer)
	v.SetDefault("notify", defaults.Notify)
	v.SetDefault("speak", defaults.Speak)
	v.SetDefault("show_steep", defaults.ShowSteep)
	v.SetDefault("auto_start", defaults.AutoStart)
	v.SetDefault("icon_size", defaults.IconSize)
	v.SetDefault("tick_interval", defaults.TickInterval)
	v.SetDefault("log_level", defaults.LogLevel)
	v.SetDefault("beverages_file", defaults.BeveragesFile)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// Load reads settings from path. A missing file is not an error.
func Load(path string) (Settings, error) {
	v := newViper()
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil && !errors.Is(err, fs.ErrNotExist) {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return Defaults(), fmt.Errorf("read settings: %w", err)
			}
		}
	}

	var settings Settings
	if err := v.Unmarshal(&settings); err != nil {
		return Defaults(), fmt.Errorf("decode settings: %w", err)
	}
	settings.normalize()
	return settings, nil
}

// Save writes settings to path, creating its directory.
func Save(path string, settings Settings) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	v := viper.New()
	v.Set("bounce", settings.Bounce)
	v.Set("sound", settings.Sound)
	v.Set("alert", settings.Alert)
	v.Set("show_timer", settings.ShowTimer)
	v.Set("notify", settings.Notify)
	v.Set("speak", settings.Speak)
	v.Set("show_steep", settings.ShowSteep)
	v.Set("auto_start", settings.AutoStart)
	v.Set("icon_size", settings.IconSize)
	v.Set("tick_interval", settings.TickInterval.String())
	v.Set("log_level", settings.LogLevel)
	if settings.BeveragesFile != "" {
		v.Set("beverages_file", settings.BeveragesFile)
	}

	v.SetConfigType("yaml")
	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("write settings: %w", err)
	}
	return nil
}

// BrewOptions captures the alert preferences for a new brew.
func (settings Settings) BrewOptions() model.BrewOptions {
	return model.BrewOptions{
		Bounce:    settings.Bounce,
		Sound:     settings.Sound,
		Alert:     settings.Alert,
		ShowTimer: settings.ShowTimer,
		Notify:    settings.Notify,
		Speak:     settings.Speak,
	}
}

// Level parses LogLevel, falling back to info.
func (settings Settings) Level() slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(settings.LogLevel)); err != nil {
		return slog.LevelInfo
	}
	return level
}

func (settings *Settings) normalize() {
	defaults := Defaults()
	if settings.IconSize < 16 || settings.IconSize > 1024 {
		settings.IconSize = defaults.IconSize
	}
	if settings.TickInterval <= 0 || settings.TickInterval > time.Second {
		settings.TickInterval = defaults.TickInterval
	}
	if settings.LogLevel == "" {
		settings.LogLevel = defaults.LogLevel
	}
}
