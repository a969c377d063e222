package main

import (
	"fmt"
	"log/slog"
	"os"

	"brewbell/internal/config"
	"brewbell/internal/core/model"
	"brewbell/internal/storage"

	"github.com/spf13/cobra"
)

const appName = "brewbell"

var rootCmd = &cobra.Command{
	Use:           appName,
	Short:         "Tea timer for the system tray",
	Long:          "Brewbell counts down a brew in the system tray, filling the cup icon as it goes, and tells you when it is ready.",
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runTray,
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "settings file (default $XDG_CONFIG_HOME/brewbell/settings.yaml)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "debug logging")
}

// environment is the resolved configuration shared by every command.
type environment struct {
	settings      config.Settings
	settingsPath  string
	beveragesPath string
	logger        *slog.Logger
}

func loadEnvironment(cmd *cobra.Command) (*environment, error) {
	settingsPath, _ := cmd.Flags().GetString("config")
	if settingsPath == "" {
		path, err := config.DefaultPath(appName)
		if err != nil {
			return nil, err
		}
		settingsPath = path
	}

	settings, err := config.Load(settingsPath)
	if err != nil {
		return nil, err
	}

	level := settings.Level()
	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	beveragesPath := settings.BeveragesFile
	if beveragesPath == "" {
		path, err := storage.BeveragesPath(appName)
		if err != nil {
			return nil, err
		}
		beveragesPath = path
	}

	logger.Debug("configuration loaded", "settings", settingsPath, "beverages", beveragesPath)
	return &environment{
		settings:      settings,
		settingsPath:  settingsPath,
		beveragesPath: beveragesPath,
		logger:        logger,
	}, nil
}

func (env *environment) beverages() ([]model.Beverage, error) {
	beverages, err := storage.LoadBeverages(env.beveragesPath)
	if err != nil {
		return nil, fmt.Errorf("load beverages: %w", err)
	}
	return beverages, nil
}
