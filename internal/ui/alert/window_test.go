package alert

import (
	"image/color"
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
)

func TestWindow_ShowAndDismiss(t *testing.T) {
	app := test.NewTempApp(t)
	dismissed := 0
	alert := New(app, func() { dismissed++ })

	alert.Show(Content{Name: "Green tea", Total: 120, Icon: fyne.NewStaticResource("cup.png", nil)})
	assert.Equal(t, "Green tea", alert.subtitle.Text)
	assert.Equal(t, "Brewed for 2:00", alert.detail.Text)
	assert.Equal(t, "cup.png", alert.image.Resource.Name())

	test.Tap(alert.ok)
	assert.Equal(t, 1, dismissed)

	alert.Hide()
	assert.Equal(t, 1, dismissed, "Hide does not count as an acknowledgement")
}

func TestTextLayout_StacksObjects(t *testing.T) {
	first := canvas.NewRectangle(color.Black)
	second := canvas.NewRectangle(color.Black)
	layout := &textLayout{}

	layout.Layout([]fyne.CanvasObject{first, second}, fyne.NewSize(100, 50))

	assert.Equal(t, float32(0), first.Position().Y)
	assert.Equal(t, float32(6), second.Position().Y)
	assert.Equal(t, float32(100), second.Size().Width)
}
