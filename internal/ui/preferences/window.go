package preferences

import (
	"time"

	"brewbell/internal/config"
	"brewbell/internal/core/brewer"
	"brewbell/internal/core/model"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"
	"github.com/google/uuid"
)

// testBrewSeconds is the brew length reported by a test notification.
const testBrewSeconds = 180

// Window handles the preferences UI.
type Window struct {
	window   fyne.Window
	settings config.Settings
	editor   *Editor
	onSave   func(config.Settings, []model.Beverage)
	onTest   func(brewer.Completion)
	saved    []model.Beverage
	selected int

	bounce    *widget.Check
	sound     *widget.Check
	alert     *widget.Check
	showTimer *widget.Check
	notify    *widget.Check
	speak     *widget.Check
	showSteep *widget.Check
	autoStart *widget.Check

	list      *widget.List
	nameEntry *widget.Entry
	timeEntry *widget.Entry
	shapeBox  *widget.Select
	update    *widget.Button
	remove    *widget.Button
}

// New creates a preferences window. onTest receives a sample completion built
// from the alert checkboxes as they stand, saved or not.
func New(app fyne.App, settings config.Settings, beverages []model.Beverage, defaults func() []model.Beverage, onSave func(config.Settings, []model.Beverage), onTest func(brewer.Completion)) *Window {
	window := app.NewWindow("Brewbell Preferences")

	prefs := &Window{
		window:   window,
		settings: settings,
		editor:   NewEditor(beverages, defaults),
		onSave:   onSave,
		onTest:   onTest,
		saved:    append([]model.Beverage(nil), beverages...),
		selected: -1,

		bounce:    widget.NewCheck("Flash the tray icon", nil),
		sound:     widget.NewCheck("Play a sound", nil),
		alert:     widget.NewCheck("Show an alert window", nil),
		showTimer: widget.NewCheck("Show remaining time on the icon", nil),
		notify:    widget.NewCheck("Send a desktop notification", nil),
		speak:     widget.NewCheck("Announce with speech", nil),
		showSteep: widget.NewCheck("Show steep times in the menu", nil),
		autoStart: widget.NewCheck("Start quick timer on Enter", nil),

		nameEntry: widget.NewEntry(),
		timeEntry: widget.NewEntry(),
		shapeBox:  widget.NewSelect(shapeOptions(), nil),
	}
	prefs.nameEntry.SetPlaceHolder("Name")
	prefs.timeEntry.SetPlaceHolder("m:ss")
	prefs.shapeBox.SetSelectedIndex(0)

	prefs.list = widget.NewList(
		prefs.editor.Len,
		func() fyne.CanvasObject {
			return widget.NewLabel("template")
		},
		func(id widget.ListItemID, object fyne.CanvasObject) {
			if beverage, ok := prefs.editor.At(id); ok {
				object.(*widget.Label).SetText(beverageRow(beverage))
			}
		},
	)
	prefs.list.OnSelected = prefs.handleSelect
	prefs.list.OnUnselected = func(widget.ListItemID) {
		prefs.selected = -1
		prefs.syncButtons()
	}

	add := widget.NewButton("Add", prefs.handleAdd)
	prefs.update = widget.NewButton("Update", prefs.handleUpdate)
	prefs.remove = widget.NewButton("Delete", prefs.handleDelete)
	restore := widget.NewButton("Restore defaults", prefs.handleRestore)
	testNotify := widget.NewButton("Test notifications", prefs.handleTestNotify)

	alerts := container.NewVBox(
		widget.NewLabelWithStyle("When brewing completes", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		prefs.notify,
		prefs.sound,
		prefs.speak,
		prefs.bounce,
		prefs.alert,
		container.NewHBox(testNotify),
		widget.NewLabelWithStyle("Display", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		prefs.showTimer,
		prefs.showSteep,
		prefs.autoStart,
	)

	form := container.NewGridWithColumns(3, prefs.nameEntry, prefs.timeEntry, prefs.shapeBox)
	listButtons := container.NewHBox(add, prefs.update, prefs.remove, layout.NewSpacer(), restore)
	beverageTab := container.NewBorder(nil, container.NewVBox(form, listButtons), nil, nil, prefs.list)

	tabs := container.NewAppTabs(
		container.NewTabItem("Beverages", beverageTab),
		container.NewTabItem("Alerts", alerts),
	)

	saveButton := widget.NewButton("Save", prefs.handleSave)
	cancelButton := widget.NewButton("Cancel", prefs.handleCancel)
	buttons := container.NewHBox(saveButton, layout.NewSpacer(), cancelButton)

	window.SetContent(container.NewBorder(nil, buttons, nil, nil, tabs))
	window.Resize(fyne.NewSize(480, 460))
	window.SetCloseIntercept(prefs.handleCancel)

	prefs.applySettings(settings)
	prefs.syncButtons()
	return prefs
}

// Show displays the preferences window.
func (prefs *Window) Show() {
	prefs.window.Show()
	prefs.window.RequestFocus()
}

// ReloadBeverages takes a list changed on disk. Unsaved list edits win over
// it; checkbox states are left alone.
func (prefs *Window) ReloadBeverages(beverages []model.Beverage) {
	prefs.saved = append([]model.Beverage(nil), beverages...)
	if prefs.editor.Dirty() {
		return
	}
	prefs.resetList()
}

func (prefs *Window) resetList() {
	prefs.editor.Reset(prefs.saved)
	prefs.list.UnselectAll()
	prefs.list.Refresh()
}

func (prefs *Window) applySettings(settings config.Settings) {
	prefs.settings = settings
	prefs.bounce.SetChecked(settings.Bounce)
	prefs.sound.SetChecked(settings.Sound)
	prefs.alert.SetChecked(settings.Alert)
	prefs.showTimer.SetChecked(settings.ShowTimer)
	prefs.notify.SetChecked(settings.Notify)
	prefs.speak.SetChecked(settings.Speak)
	prefs.showSteep.SetChecked(settings.ShowSteep)
	prefs.autoStart.SetChecked(settings.AutoStart)
}

func (prefs *Window) handleSelect(id widget.ListItemID) {
	beverage, ok := prefs.editor.At(id)
	if !ok {
		return
	}
	prefs.selected = id
	prefs.nameEntry.SetText(beverage.Name)
	prefs.timeEntry.SetText(model.FormatRemaining(beverage.BrewSeconds))
	prefs.shapeBox.SetSelected(beverage.Shape.DisplayName())
	prefs.syncButtons()
}

func (prefs *Window) handleAdd() {
	beverage, err := ParseBeverage(prefs.nameEntry.Text, prefs.timeEntry.Text, prefs.shapeBox.Selected)
	if err != nil {
		dialog.ShowError(err, prefs.window)
		return
	}
	index := prefs.editor.Add(beverage)
	prefs.list.Refresh()
	prefs.list.Select(index)
}

func (prefs *Window) handleUpdate() {
	beverage, err := ParseBeverage(prefs.nameEntry.Text, prefs.timeEntry.Text, prefs.shapeBox.Selected)
	if err != nil {
		dialog.ShowError(err, prefs.window)
		return
	}
	prefs.editor.Update(prefs.selected, beverage)
	prefs.list.RefreshItem(prefs.selected)
}

func (prefs *Window) handleDelete() {
	if !prefs.editor.Delete(prefs.selected) {
		return
	}
	prefs.list.UnselectAll()
	prefs.list.Refresh()
}

func (prefs *Window) handleRestore() {
	dialog.ShowConfirm("Restore defaults", "Replace the beverage list with the built-in one?", func(confirmed bool) {
		if !confirmed {
			return
		}
		prefs.editor.RestoreDefaults()
		prefs.list.UnselectAll()
		prefs.list.Refresh()
	}, prefs.window)
}

func (prefs *Window) handleTestNotify() {
	if prefs.onTest == nil {
		return
	}
	prefs.onTest(brewer.Completion{
		BrewID:  uuid.New(),
		Name:    brewer.QuickTimerName,
		Total:   testBrewSeconds,
		Options: prefs.checkedOptions(),
		At:      time.Now(),
	})
}

func (prefs *Window) checkedOptions() model.BrewOptions {
	return model.BrewOptions{
		Bounce:    prefs.bounce.Checked,
		Sound:     prefs.sound.Checked,
		Alert:     prefs.alert.Checked,
		ShowTimer: prefs.showTimer.Checked,
		Notify:    prefs.notify.Checked,
		Speak:     prefs.speak.Checked,
	}
}

// handleCancel drops unsaved edits.
func (prefs *Window) handleCancel() {
	prefs.applySettings(prefs.settings)
	prefs.resetList()
	prefs.window.Hide()
}

func (prefs *Window) handleSave() {
	settings := prefs.settings
	options := prefs.checkedOptions()
	settings.Bounce = options.Bounce
	settings.Sound = options.Sound
	settings.Alert = options.Alert
	settings.ShowTimer = options.ShowTimer
	settings.Notify = options.Notify
	settings.Speak = options.Speak
	settings.ShowSteep = prefs.showSteep.Checked
	settings.AutoStart = prefs.autoStart.Checked

	prefs.settings = settings
	if prefs.onSave != nil {
		prefs.onSave(settings, prefs.editor.Beverages())
	}
	prefs.saved = prefs.editor.Beverages()
	prefs.editor.Reset(prefs.saved)
	prefs.window.Hide()
}

func (prefs *Window) syncButtons() {
	if prefs.update == nil {
		return
	}
	if prefs.selected < 0 {
		prefs.update.Disable()
		prefs.remove.Disable()
		return
	}
	prefs.update.Enable()
	prefs.remove.Enable()
}

func beverageRow(beverage model.Beverage) string {
	return beverage.Name + "  " + model.FormatRemaining(beverage.BrewSeconds) + "  " + beverage.Shape.DisplayName()
}
