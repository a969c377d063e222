package main

import (
	"context"
	"errors"
	"os"
	"path/filepath"

	"brewbell/internal/config"
	"brewbell/internal/core/brewer"
	"brewbell/internal/core/model"
	"brewbell/internal/notify"
	"brewbell/internal/platform"
	"brewbell/internal/storage"
	"brewbell/internal/ui/alert"
	"brewbell/internal/ui/icon"
	"brewbell/internal/ui/preferences"
	"brewbell/internal/ui/quick"
	"brewbell/internal/ui/tray"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/driver/desktop"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

const (
	appID              = "io.brewbell.app"
	commandPreferences = "preferences"
	bounceFlashes      = 3
)

func runTray(cmd *cobra.Command, _ []string) error {
	env, err := loadEnvironment(cmd)
	if err != nil {
		return err
	}
	logger := env.logger

	guard, err := platform.AcquireSingleInstance(appName)
	if errors.Is(err, platform.ErrAlreadyRunning) {
		logger.Info("already running, opening preferences there")
		return platform.Signal(appName, commandPreferences)
	}
	if err != nil {
		return err
	}
	defer func() {
		_ = guard.Release()
	}()

	beverages, err := env.beverages()
	if err != nil {
		logger.Warn("using default beverages", "error", err)
		beverages = storage.DefaultBeverages()
	}
	settings := env.settings

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	fyneApp := app.NewWithID(appID)
	desktopApp, ok := fyneApp.(desktop.App)
	if !ok {
		return errors.New("system tray unsupported on this platform")
	}

	renderState := icon.NewState(settings.IconSize)
	appIcon, err := iconResource(renderState)
	if err != nil {
		return err
	}
	fyneApp.SetIcon(appIcon)

	refresher := tray.NewRefresher(renderState, func(resource fyne.Resource) {
		fyne.Do(func() {
			desktopApp.SetSystemTrayIcon(resource)
		})
	}, settings.TickInterval, logger)

	controller := brewer.New(renderState, nil, brewer.Config{Defaults: settings.BrewOptions()})
	alertWindow := alert.New(fyneApp, controller.Reset)

	dispatcher := notify.NewDispatcher(logger,
		notify.NewFuncSink(notify.KindNotify, func(completion brewer.Completion) error {
			fyneApp.SendNotification(fyne.NewNotification(notify.Title, notify.Message(completion)))
			return nil
		}),
		notify.NewSoundSink(),
		notify.NewSpeechSink(),
		notify.NewFuncSink(notify.KindBounce, func(brewer.Completion) error {
			return refresher.Flash(ctx, bounceFlashes)
		}),
		notify.NewFuncSink(notify.KindAlert, func(completion brewer.Completion) error {
			cup, err := iconResource(renderState)
			if err != nil {
				return err
			}
			fyne.Do(func() {
				alertWindow.Show(alert.Content{Name: completion.Name, Total: completion.Total, Icon: cup})
			})
			return nil
		}),
	)
	controller.SetNotifier(dispatcher)

	quickWindow := quick.New(fyneApp, settings.AutoStart, func(seconds int) {
		alertWindow.Hide()
		controller.Start(seconds)
	})

	var trayManager *tray.Manager
	prefsWindow := preferences.New(fyneApp, settings, beverages, storage.DefaultBeverages,
		func(updated config.Settings, list []model.Beverage) {
			if err := config.Save(env.settingsPath, updated); err != nil {
				logger.Error("save settings", "error", err)
			}
			if err := storage.SaveBeverages(env.beveragesPath, list); err != nil {
				logger.Error("save beverages", "error", err)
			}
			settings = updated
			beverages = list
			// Brews already running keep the options they started with.
			controller.SetDefaults(settings.BrewOptions())
			quickWindow.SetAutoStart(settings.AutoStart)
			trayManager.SetBeverages(beverages, settings.ShowSteep)
		},
		dispatcher.BrewComplete)

	trayManager = tray.New(desktopApp, tray.Callbacks{
		OnBrew: func(id uuid.UUID) {
			beverage, found := model.Find(beverages, id)
			if !found {
				return
			}
			alertWindow.Hide()
			controller.StartBeverage(beverage, settings.BrewOptions())
		},
		OnQuickTimer:  quickWindow.Show,
		OnPreferences: prefsWindow.Show,
		OnStop: func() {
			alertWindow.Hide()
			if controller.IsRunning() {
				controller.Cancel()
				return
			}
			controller.Reset()
		},
		OnQuit: fyneApp.Quit,
	})
	trayManager.SetBeverages(beverages, settings.ShowSteep)
	desktopApp.SetSystemTrayIcon(appIcon)

	events := controller.Subscribe(16)
	go func() {
		for event := range events {
			fyne.Do(func() {
				trayManager.ApplyEvent(event)
			})
		}
	}()

	if watcher := watchBeverages(env, func(list []model.Beverage) {
		fyne.Do(func() {
			reconciled, changed := storage.Reconcile(beverages, list)
			if !changed {
				// Our own save, or an edit that changed nothing.
				return
			}
			beverages = reconciled
			trayManager.SetBeverages(beverages, settings.ShowSteep)
			prefsWindow.ReloadBeverages(beverages)
		})
	}); watcher != nil {
		defer watcher.Stop()
	}

	stopped := make(chan struct{})
	go func() {
		select {
		case <-cmd.Context().Done():
			fyne.Do(fyneApp.Quit)
		case <-stopped:
		}
	}()
	go brewer.NewScheduler(controller, settings.TickInterval, logger).Run(ctx)
	go refresher.Run(ctx)
	go guard.Serve(ctx, func(command string) {
		logger.Debug("instance command", "command", command)
		if command == commandPreferences {
			fyne.Do(prefsWindow.Show)
		}
	})

	fyneApp.Run()
	close(stopped)

	cancel()
	controller.Cancel()
	controller.Close()
	renderState.Restore()
	return nil
}

// watchBeverages reloads the tray menu when the beverage file is edited on disk.
func watchBeverages(env *environment, onChange func([]model.Beverage)) *storage.Watcher {
	if err := os.MkdirAll(filepath.Dir(env.beveragesPath), 0o755); err != nil {
		env.logger.Warn("beverage watcher disabled", "error", err)
		return nil
	}
	watcher, err := storage.NewWatcher(env.beveragesPath, env.logger)
	if err != nil {
		env.logger.Warn("beverage watcher disabled", "error", err)
		return nil
	}
	if err := watcher.Start(); err != nil {
		env.logger.Warn("beverage watcher disabled", "error", err)
		return nil
	}
	go func() {
		for list := range watcher.Updates {
			env.logger.Info("beverage list reloaded", "count", len(list))
			onChange(list)
		}
	}()
	return watcher
}

func iconResource(state *icon.State) (fyne.Resource, error) {
	data, err := icon.EncodePNG(state.Render())
	if err != nil {
		return nil, err
	}
	return fyne.NewStaticResource("brewbell.png", data), nil
}
