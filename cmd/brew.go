package main

import (
	"errors"
	"fmt"
	"strings"

	"brewbell/internal/core/brewer"
	"brewbell/internal/core/model"
	"brewbell/internal/notify"
	"brewbell/internal/ui/term"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

var brewCmd = &cobra.Command{
	Use:   "brew [beverage]",
	Short: "Brew in the terminal",
	Long:  "Brew a beverage from the list, or time an ad-hoc brew with --duration, showing progress in the terminal.",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runBrew,
}

func init() {
	brewCmd.Flags().StringP("duration", "d", "", "brew time (m:ss, h:mm:ss or 3m30s); overrides the beverage's time")
	brewCmd.Flags().Bool("quiet", false, "no notification, sound or speech on completion")
	rootCmd.AddCommand(brewCmd)
}

func runBrew(cmd *cobra.Command, args []string) error {
	env, err := loadEnvironment(cmd)
	if err != nil {
		return err
	}

	durationText, _ := cmd.Flags().GetString("duration")
	quiet, _ := cmd.Flags().GetBool("quiet")

	var beverage model.Beverage
	switch {
	case len(args) == 1:
		beverages, err := env.beverages()
		if err != nil {
			return err
		}
		found, err := findBeverage(beverages, args[0])
		if err != nil {
			return err
		}
		beverage = found
	case durationText == "":
		return errors.New("name a beverage or pass --duration")
	}

	if durationText != "" {
		seconds, err := model.ParseBrewTime(durationText)
		if err != nil {
			return err
		}
		beverage.BrewSeconds = model.ClampBrewSeconds(seconds)
	}

	options := env.settings.BrewOptions()
	if quiet {
		options = model.BrewOptions{ShowTimer: options.ShowTimer}
	}

	dispatcher := notify.NewDispatcher(env.logger,
		notify.NewDesktopSink(),
		notify.NewSoundSink(),
		notify.NewSpeechSink(),
	)
	controller := brewer.New(nil, dispatcher, brewer.Config{Defaults: options})
	if beverage.Name == "" {
		controller.Start(beverage.BrewSeconds)
	} else {
		controller.StartBeverage(beverage, options)
	}
	env.logger.Debug("terminal brew started", "name", controller.Current().Name, "seconds", beverage.BrewSeconds)

	final, err := tea.NewProgram(term.New(controller, env.settings.TickInterval), tea.WithContext(cmd.Context())).Run()
	if err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return fmt.Errorf("run terminal ui: %w", err)
	}
	controller.Cancel()
	controller.Close()

	if result, ok := final.(term.Model); ok && result.Outcome() == term.OutcomeCompleted {
		dispatcher.Wait()
	}
	return nil
}

// findBeverage matches a beverage by name, case-insensitively. An exact match
// wins; otherwise a unique prefix is accepted.
func findBeverage(beverages []model.Beverage, name string) (model.Beverage, error) {
	query := strings.ToLower(strings.TrimSpace(name))
	var matches []model.Beverage
	for _, beverage := range beverages {
		candidate := strings.ToLower(beverage.Name)
		if candidate == query {
			return beverage, nil
		}
		if strings.HasPrefix(candidate, query) {
			matches = append(matches, beverage)
		}
	}

	switch len(matches) {
	case 0:
		return model.Beverage{}, fmt.Errorf("no beverage named %q", name)
	case 1:
		return matches[0], nil
	default:
		names := make([]string, 0, len(matches))
		for _, match := range matches {
			names = append(names, match.Name)
		}
		return model.Beverage{}, fmt.Errorf("%q is ambiguous: %s", name, strings.Join(names, ", "))
	}
}
