package model

import (
	"brewbell/internal/core/shape"

	"github.com/google/uuid"
)

// Brew time bounds accepted by collaborators, in seconds.
const (
	BrewTimeMin = 10    // 0:10
	BrewTimeMax = 35999 // 9:59:59
)

// Beverage describes one brewable item.
type Beverage struct {
	ID          uuid.UUID
	Name        string
	BrewSeconds int
	Shape       shape.Shape
}

// NewBeverage stores the given values unchanged and assigns a fresh ID.
func NewBeverage(name string, brewSeconds int, cupShape shape.Shape) Beverage {
	return Beverage{
		ID:          uuid.New(),
		Name:        name,
		BrewSeconds: brewSeconds,
		Shape:       cupShape,
	}
}

// ClampBrewSeconds bounds a brew time to [BrewTimeMin, BrewTimeMax].
func ClampBrewSeconds(seconds int) int {
	if seconds < BrewTimeMin {
		return BrewTimeMin
	}
	if seconds > BrewTimeMax {
		return BrewTimeMax
	}
	return seconds
}

// Find returns the beverage with the given ID.
func Find(beverages []Beverage, id uuid.UUID) (Beverage, bool) {
	for _, beverage := range beverages {
		if beverage.ID == id {
			return beverage, true
		}
	}
	return Beverage{}, false
}
