package alert

import (
	"fmt"
	"image/color"

	"brewbell/internal/core/model"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// Content is what the alert window shows for one finished brew.
type Content struct {
	Name  string
	Total int
	Icon  fyne.Resource
}

// Window is the "Brewing complete" alert.
type Window struct {
	window    fyne.Window
	image     *canvas.Image
	title     *canvas.Text
	subtitle  *canvas.Text
	detail    *canvas.Text
	ok        *widget.Button
	onDismiss func()
}

type splashWindowDriver interface {
	CreateSplashWindow() fyne.Window
}

// New creates the alert window. onDismiss runs when the user acknowledges it.
func New(app fyne.App, onDismiss func()) *Window {
	window := app.NewWindow("Brewbell")
	if driver, ok := app.Driver().(splashWindowDriver); ok {
		// Undecorated, like a notification.
		window = driver.CreateSplashWindow()
	}
	if app.Icon() != nil {
		window.SetIcon(app.Icon())
	}

	background := canvas.NewRectangle(color.NRGBA{R: 32, G: 24, B: 20, A: 235})

	image := canvas.NewImageFromResource(nil)
	image.FillMode = canvas.ImageFillContain
	image.SetMinSize(fyne.NewSize(64, 64))

	title := canvas.NewText("Brewing complete", color.NRGBA{R: 255, G: 255, B: 255, A: 255})
	title.TextStyle = fyne.TextStyle{Bold: true}
	title.TextSize = 20

	subtitle := canvas.NewText("", color.NRGBA{R: 232, G: 190, B: 66, A: 255})
	subtitle.TextStyle = fyne.TextStyle{Bold: true}
	subtitle.TextSize = 15

	detail := canvas.NewText("", color.NRGBA{R: 220, G: 220, B: 220, A: 255})
	detail.TextSize = 13

	alert := &Window{
		window:    window,
		image:     image,
		title:     title,
		subtitle:  subtitle,
		detail:    detail,
		onDismiss: onDismiss,
	}
	alert.ok = widget.NewButton("OK", alert.Dismiss)
	alert.ok.Importance = widget.HighImportance

	text := container.New(&textLayout{}, title, subtitle, detail)
	body := container.NewBorder(nil, container.NewHBox(alert.ok), container.NewPadded(image), nil, text)
	window.SetContent(container.NewStack(background, container.NewPadded(body)))
	window.SetCloseIntercept(alert.Dismiss)
	window.Resize(fyne.NewSize(340, 130))
	return alert
}

// Show presents the alert for a finished brew. Must run on the fyne thread.
func (alert *Window) Show(content Content) {
	alert.subtitle.Text = content.Name
	alert.detail.Text = fmt.Sprintf("Brewed for %s", model.FormatRemaining(content.Total))
	alert.image.Resource = content.Icon
	alert.subtitle.Refresh()
	alert.detail.Refresh()
	alert.image.Refresh()

	alert.window.CenterOnScreen()
	alert.window.Show()
	alert.window.RequestFocus()
}

// Dismiss hides the alert and notifies the owner.
func (alert *Window) Dismiss() {
	alert.window.Hide()
	if alert.onDismiss != nil {
		alert.onDismiss()
	}
}

// Hide closes the alert without calling onDismiss.
func (alert *Window) Hide() {
	alert.window.Hide()
}

type textLayout struct{}

func (layout *textLayout) Layout(objects []fyne.CanvasObject, size fyne.Size) {
	y := float32(0)
	for index, object := range objects {
		objectSize := object.MinSize()
		object.Move(fyne.NewPos(0, y))
		object.Resize(fyne.NewSize(size.Width, objectSize.Height))
		y += objectSize.Height
		if index == 0 {
			y += 6
		}
	}
}

func (layout *textLayout) MinSize(objects []fyne.CanvasObject) fyne.Size {
	width := float32(0)
	height := float32(6)
	for _, object := range objects {
		objectSize := object.MinSize()
		if objectSize.Width > width {
			width = objectSize.Width
		}
		height += objectSize.Height
	}
	return fyne.NewSize(width, height)
}
