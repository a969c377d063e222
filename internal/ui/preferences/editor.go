package preferences

import (
	"errors"
	"fmt"
	"strings"

	"brewbell/internal/core/model"
	"brewbell/internal/core/shape"
)

// ErrEmptyName is returned when a beverage has no name.
var ErrEmptyName = errors.New("beverage name is empty")

// Editor holds the beverage list being edited. It has no UI dependencies.
type Editor struct {
	beverages []model.Beverage
	defaults  func() []model.Beverage
	dirty     bool
}

// NewEditor copies beverages into a new editor. defaults supplies the list
// used by RestoreDefaults.
func NewEditor(beverages []model.Beverage, defaults func() []model.Beverage) *Editor {
	return &Editor{
		beverages: append([]model.Beverage(nil), beverages...),
		defaults:  defaults,
	}
}

// ParseBeverage validates form input. The time accepts anything
// model.ParseBrewTime does and is clamped to the allowed range.
func ParseBeverage(name, brewTime, shapeName string) (model.Beverage, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return model.Beverage{}, ErrEmptyName
	}
	seconds, err := model.ParseBrewTime(brewTime)
	if err != nil {
		return model.Beverage{}, fmt.Errorf("%s: %w", name, err)
	}
	return model.NewBeverage(name, model.ClampBrewSeconds(seconds), shape.ForDisplayName(shapeName)), nil
}

// Len returns the number of beverages.
func (editor *Editor) Len() int {
	return len(editor.beverages)
}

// At returns the beverage at index.
func (editor *Editor) At(index int) (model.Beverage, bool) {
	if index < 0 || index >= len(editor.beverages) {
		return model.Beverage{}, false
	}
	return editor.beverages[index], true
}

// Add appends a beverage and returns its index.
func (editor *Editor) Add(beverage model.Beverage) int {
	editor.beverages = append(editor.beverages, beverage)
	editor.dirty = true
	return len(editor.beverages) - 1
}

// Update replaces the beverage at index, keeping its ID.
func (editor *Editor) Update(index int, beverage model.Beverage) bool {
	if index < 0 || index >= len(editor.beverages) {
		return false
	}
	beverage.ID = editor.beverages[index].ID
	editor.beverages[index] = beverage
	editor.dirty = true
	return true
}

// Delete removes the beverage at index.
func (editor *Editor) Delete(index int) bool {
	if index < 0 || index >= len(editor.beverages) {
		return false
	}
	editor.beverages = append(editor.beverages[:index], editor.beverages[index+1:]...)
	editor.dirty = true
	return true
}

// RestoreDefaults replaces the list with the built-in set.
func (editor *Editor) RestoreDefaults() {
	if editor.defaults == nil {
		editor.beverages = nil
	} else {
		editor.beverages = editor.defaults()
	}
	editor.dirty = true
}

// Reset replaces the list without marking it changed.
func (editor *Editor) Reset(beverages []model.Beverage) {
	editor.beverages = append([]model.Beverage(nil), beverages...)
	editor.dirty = false
}

// Beverages returns a copy of the list.
func (editor *Editor) Beverages() []model.Beverage {
	return append([]model.Beverage(nil), editor.beverages...)
}

// Dirty reports whether the list changed since creation or Reset.
func (editor *Editor) Dirty() bool {
	return editor.dirty
}

func shapeOptions() []string {
	options := make([]string, 0, len(shape.All()))
	for _, value := range shape.All() {
		options = append(options, value.DisplayName())
	}
	return options
}
