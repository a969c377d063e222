package tray

import (
	"fmt"

	"brewbell/internal/core/brewer"
	"brewbell/internal/core/model"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
	"github.com/google/uuid"
)

const menuTitle = "brewbell"

// Callbacks defines tray action handlers.
type Callbacks struct {
	OnBrew        func(uuid.UUID)
	OnQuickTimer  func()
	OnStop        func()
	OnPreferences func()
	OnQuit        func()
}

// Manager handles system tray menu state.
type Manager struct {
	app       desktop.App
	callbacks Callbacks
	beverages []model.Beverage
	showSteep bool
	status    string
	brewing   bool
	finished  bool
}

// New creates a tray manager and installs its menu.
func New(app desktop.App, callbacks Callbacks) *Manager {
	manager := &Manager{
		app:       app,
		callbacks: callbacks,
		status:    "Idle",
	}
	manager.refreshMenu()
	return manager
}

// SetBeverages replaces the beverage items.
func (manager *Manager) SetBeverages(beverages []model.Beverage, showSteep bool) {
	manager.beverages = append([]model.Beverage(nil), beverages...)
	manager.showSteep = showSteep
	manager.refreshMenu()
}

// SetStatus updates the status label.
func (manager *Manager) SetStatus(status string) {
	manager.status = status
	manager.refreshMenu()
}

// SetBrewing toggles the stop item. finished marks a completed brew that
// is still showing a full cup.
func (manager *Manager) SetBrewing(brewing, finished bool) {
	manager.brewing = brewing
	manager.finished = finished
	manager.refreshMenu()
}

// Menu builds the current tray menu.
func (manager *Manager) Menu() *fyne.Menu {
	status := fyne.NewMenuItem(fmt.Sprintf("Status: %s", manager.status), nil)
	status.Disabled = true

	items := []*fyne.MenuItem{status, fyne.NewMenuItemSeparator()}
	for _, beverage := range manager.beverages {
		id := beverage.ID
		items = append(items, fyne.NewMenuItem(beverageLabel(beverage, manager.showSteep), func() {
			if manager.callbacks.OnBrew != nil {
				manager.callbacks.OnBrew(id)
			}
		}))
	}
	if len(manager.beverages) > 0 {
		items = append(items, fyne.NewMenuItemSeparator())
	}

	quick := fyne.NewMenuItem("Quick timer...", func() {
		if manager.callbacks.OnQuickTimer != nil {
			manager.callbacks.OnQuickTimer()
		}
	})

	stopLabel := "Cancel timer"
	if manager.finished {
		stopLabel = "Clear"
	}
	stop := fyne.NewMenuItem(stopLabel, func() {
		if manager.callbacks.OnStop != nil {
			manager.callbacks.OnStop()
		}
	})
	stop.Disabled = !manager.brewing && !manager.finished

	preferences := fyne.NewMenuItem("Preferences", func() {
		if manager.callbacks.OnPreferences != nil {
			manager.callbacks.OnPreferences()
		}
	})

	// IsQuit stops fyne from appending its own Quit item.
	quit := fyne.NewMenuItem("Quit", func() {
		if manager.callbacks.OnQuit != nil {
			manager.callbacks.OnQuit()
		}
	})
	quit.IsQuit = true

	items = append(items, quick, stop, fyne.NewMenuItemSeparator(), preferences, quit)
	return fyne.NewMenu(menuTitle, items...)
}

func (manager *Manager) refreshMenu() {
	if manager.app != nil {
		manager.app.SetSystemTrayMenu(manager.Menu())
	}
}

func beverageLabel(beverage model.Beverage, showSteep bool) string {
	if !showSteep {
		return beverage.Name
	}
	return fmt.Sprintf("%s (%s)", beverage.Name, model.FormatRemaining(beverage.BrewSeconds))
}

// StatusFor returns the status line for a controller event.
func StatusFor(event brewer.Event) string {
	switch event.State {
	case brewer.StateRunning:
		return fmt.Sprintf("%s %s", event.Name, model.FormatRemaining(event.Remaining))
	case brewer.StateCompleted:
		return fmt.Sprintf("%s ready", event.Name)
	case brewer.StateCancelled:
		return "Cancelled"
	default:
		return "Idle"
	}
}

// ApplyEvent updates the status line and stop item from a controller event.
func (manager *Manager) ApplyEvent(event brewer.Event) {
	manager.status = StatusFor(event)
	manager.brewing = event.State == brewer.StateRunning
	manager.finished = event.State == brewer.StateCompleted
	manager.refreshMenu()
}
