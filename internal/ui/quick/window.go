// Package quick provides the quick timer panel: a duration entry that starts
// an ad-hoc brew.
package quick

import (
	"brewbell/internal/core/model"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"
)

// Window is the quick timer panel.
type Window struct {
	window    fyne.Window
	entry     *widget.Entry
	errLabel  *widget.Label
	autoStart bool
	onStart   func(seconds int)
	last      string
}

// New creates the panel. onStart receives the parsed duration in seconds.
func New(app fyne.App, autoStart bool, onStart func(seconds int)) *Window {
	window := app.NewWindow("Quick timer")

	quick := &Window{
		window:    window,
		entry:     widget.NewEntry(),
		errLabel:  widget.NewLabel(""),
		autoStart: autoStart,
		onStart:   onStart,
		last:      "3:00",
	}
	quick.entry.SetPlaceHolder("m:ss, h:mm:ss or 90s")
	quick.entry.OnSubmitted = func(string) {
		if quick.autoStart {
			quick.submit()
		}
	}
	quick.errLabel.Hide()

	start := widget.NewButton("Start", quick.submit)
	start.Importance = widget.HighImportance
	cancel := widget.NewButton("Cancel", window.Hide)

	content := container.NewVBox(
		widget.NewLabel("Brew for"),
		quick.entry,
		quick.errLabel,
		container.NewHBox(layout.NewSpacer(), cancel, start),
	)
	window.SetContent(content)
	window.Resize(fyne.NewSize(280, 140))
	window.SetCloseIntercept(window.Hide)
	return quick
}

// SetAutoStart toggles starting on Enter.
func (quick *Window) SetAutoStart(enabled bool) {
	quick.autoStart = enabled
}

// Show displays the panel prefilled with the last used duration.
func (quick *Window) Show() {
	quick.entry.SetText(quick.last)
	quick.errLabel.Hide()
	quick.window.Show()
	quick.window.RequestFocus()
	quick.window.Canvas().Focus(quick.entry)
}

func (quick *Window) submit() {
	seconds, err := Parse(quick.entry.Text)
	if err != nil {
		quick.errLabel.SetText(err.Error())
		quick.errLabel.Show()
		return
	}
	quick.last = quick.entry.Text
	quick.window.Hide()
	if quick.onStart != nil {
		quick.onStart(seconds)
	}
}

// Parse reads a quick timer duration and clamps it to the allowed range.
func Parse(text string) (int, error) {
	seconds, err := model.ParseBrewTime(text)
	if err != nil {
		return 0, err
	}
	return model.ClampBrewSeconds(seconds), nil
}
