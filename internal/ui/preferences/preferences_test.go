package preferences

import (
	"testing"

	"brewbell/internal/config"
	"brewbell/internal/core/brewer"
	"brewbell/internal/core/model"
	"brewbell/internal/core/shape"

	"fyne.io/fyne/v2/test"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseBeverage(t *testing.T) {
	tests := []struct {
		name      string
		inputName string
		brewTime  string
		shapeName string
		want      int
		wantShape shape.Shape
		wantErr   error
	}{
		{name: "minutes", inputName: " Assam ", brewTime: "4:00", shapeName: "Tea cup", want: 240, wantShape: shape.Tea},
		{name: "go duration", inputName: "Ramen", brewTime: "3m", shapeName: "Noodle bowl", want: 180, wantShape: shape.Noodle},
		{name: "clamped low", inputName: "Flash", brewTime: "2", shapeName: "", want: model.BrewTimeMin, wantShape: shape.Default},
		{name: "clamped high", inputName: "Stock", brewTime: "12:00:00", shapeName: "Mug", want: model.BrewTimeMax, wantShape: shape.Mug},
		{name: "empty name", inputName: "  ", brewTime: "1:00", wantErr: ErrEmptyName},
		{name: "bad time", inputName: "Oops", brewTime: "soon", wantErr: model.ErrInvalidBrewTime},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			beverage, err := ParseBeverage(tt.inputName, tt.brewTime, tt.shapeName)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, beverage.BrewSeconds)
			assert.Equal(t, tt.wantShape, beverage.Shape)
			assert.NotEmpty(t, beverage.Name)
		})
	}
}

func TestEditor_Operations(t *testing.T) {
	first := model.NewBeverage("One", 60, shape.Default)
	second := model.NewBeverage("Two", 120, shape.Mug)
	editor := NewEditor([]model.Beverage{first, second}, func() []model.Beverage {
		return []model.Beverage{model.NewBeverage("Default", 180, shape.Tea)}
	})
	assert.False(t, editor.Dirty())

	index := editor.Add(model.NewBeverage("Three", 30, shape.Noodle))
	assert.Equal(t, 2, index)
	assert.True(t, editor.Dirty())

	replacement := model.NewBeverage("Uno", 90, shape.Tea)
	require.True(t, editor.Update(0, replacement))
	updated, ok := editor.At(0)
	require.True(t, ok)
	assert.Equal(t, first.ID, updated.ID, "update keeps the original ID")
	assert.Equal(t, "Uno", updated.Name)

	require.True(t, editor.Delete(1))
	assert.Equal(t, 2, editor.Len())
	assert.False(t, editor.Delete(5))
	assert.False(t, editor.Update(-1, replacement))

	editor.RestoreDefaults()
	require.Equal(t, 1, editor.Len())
	restored, _ := editor.At(0)
	assert.Equal(t, "Default", restored.Name)
}

func TestEditor_BeveragesIsACopy(t *testing.T) {
	editor := NewEditor([]model.Beverage{model.NewBeverage("One", 60, shape.Default)}, nil)

	list := editor.Beverages()
	list[0].Name = "Changed"

	original, _ := editor.At(0)
	assert.Equal(t, "One", original.Name)
}

func TestWindow_SaveReportsSettingsAndBeverages(t *testing.T) {
	app := test.NewTempApp(t)
	var savedSettings config.Settings
	var savedBeverages []model.Beverage

	settings := config.Defaults()
	prefs := New(app, settings, []model.Beverage{model.NewBeverage("One", 60, shape.Default)}, nil,
		func(updated config.Settings, beverages []model.Beverage) {
			savedSettings = updated
			savedBeverages = beverages
		}, nil)

	prefs.speak.SetChecked(true)
	prefs.sound.SetChecked(false)
	prefs.nameEntry.SetText("Sencha")
	prefs.timeEntry.SetText("1:30")
	prefs.shapeBox.SetSelected(shape.Tea.DisplayName())
	prefs.handleAdd()
	prefs.handleSave()

	assert.True(t, savedSettings.Speak)
	assert.False(t, savedSettings.Sound)
	assert.Equal(t, settings.IconSize, savedSettings.IconSize)
	require.Len(t, savedBeverages, 2)
	assert.Equal(t, "Sencha", savedBeverages[1].Name)
	assert.Equal(t, 90, savedBeverages[1].BrewSeconds)
	assert.Equal(t, shape.Tea, savedBeverages[1].Shape)
}

func TestWindow_TestNotifyUsesUnsavedCheckboxes(t *testing.T) {
	app := test.NewTempApp(t)
	var completions []brewer.Completion
	saved := false
	prefs := New(app, config.Defaults(), nil, nil,
		func(config.Settings, []model.Beverage) { saved = true },
		func(completion brewer.Completion) { completions = append(completions, completion) })

	prefs.notify.SetChecked(false)
	prefs.speak.SetChecked(true)
	prefs.alert.SetChecked(true)
	prefs.handleTestNotify()
	prefs.handleTestNotify()

	require.Len(t, completions, 2)
	assert.Equal(t, model.BrewOptions{
		Bounce:    true,
		Sound:     true,
		Alert:     true,
		ShowTimer: true,
		Notify:    false,
		Speak:     true,
	}, completions[0].Options)
	assert.NotEqual(t, uuid.Nil, completions[0].BrewID)
	assert.NotEqual(t, completions[0].BrewID, completions[1].BrewID, "each test is a fresh completion")
	assert.Equal(t, testBrewSeconds, completions[0].Total)
	assert.False(t, saved, "testing does not save")
	assert.Equal(t, config.Defaults(), prefs.settings)
}

func TestWindow_ReloadKeepsUnsavedEdits(t *testing.T) {
	app := test.NewTempApp(t)
	prefs := New(app, config.Defaults(), []model.Beverage{model.NewBeverage("One", 60, shape.Default)}, nil, nil, nil)
	prefs.Show()

	prefs.speak.SetChecked(true)
	prefs.nameEntry.SetText("Draft")
	prefs.timeEntry.SetText("2:00")
	prefs.handleAdd()

	prefs.ReloadBeverages([]model.Beverage{model.NewBeverage("From disk", 90, shape.Mug)})

	assert.True(t, prefs.speak.Checked, "checkboxes are not reset by a reload")
	assert.Equal(t, []string{"One", "Draft"}, beverageNames(prefs.editor.Beverages()))

	prefs.handleCancel()

	assert.False(t, prefs.speak.Checked)
	assert.Equal(t, []string{"From disk"}, beverageNames(prefs.editor.Beverages()), "cancel falls back to the latest list on disk")
}

func TestWindow_ReloadReplacesCleanList(t *testing.T) {
	app := test.NewTempApp(t)
	prefs := New(app, config.Defaults(), []model.Beverage{model.NewBeverage("One", 60, shape.Default)}, nil, nil, nil)
	prefs.speak.SetChecked(true)

	prefs.ReloadBeverages([]model.Beverage{model.NewBeverage("From disk", 90, shape.Mug)})

	assert.Equal(t, []string{"From disk"}, beverageNames(prefs.editor.Beverages()))
	assert.True(t, prefs.speak.Checked)
	assert.False(t, prefs.editor.Dirty())
}

func beverageNames(beverages []model.Beverage) []string {
	names := make([]string, 0, len(beverages))
	for _, beverage := range beverages {
		names = append(names, beverage.Name)
	}
	return names
}
