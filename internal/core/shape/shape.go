package shape

import "strings"

// Shape identifies the vessel silhouette drawn on the icon.
type Shape int

const (
	Default Shape = iota
	Tea
	Mug
	Noodle

	count
)

var labels = [count]string{
	Default: "default",
	Tea:     "tea",
	Mug:     "mug",
	Noodle:  "noodle",
}

// All returns every shape in declaration order.
func All() []Shape {
	shapes := make([]Shape, 0, int(count))
	for value := Default; value < count; value++ {
		shapes = append(shapes, value)
	}
	return shapes
}

// Valid reports whether the shape is one of the known variants.
func (value Shape) Valid() bool {
	return value >= Default && value < count
}

// Normalize maps out-of-range values to Default.
func Normalize(value Shape) Shape {
	if !value.Valid() {
		return Default
	}
	return value
}

// LabelForShape returns the persistence label for a shape.
// Unknown values get the label of Default.
func LabelForShape(value Shape) string {
	return labels[Normalize(value)]
}

// ShapeForLabel parses a persistence label. Anything unrecognised,
// including the empty string, yields Default.
func ShapeForLabel(label string) Shape {
	normalized := strings.ToLower(strings.TrimSpace(label))
	for index, candidate := range labels {
		if candidate == normalized {
			return Shape(index)
		}
	}
	return Default
}

// String implements fmt.Stringer.
func (value Shape) String() string {
	return LabelForShape(value)
}

// DisplayName returns a human readable name for menus and forms.
func (value Shape) DisplayName() string {
	switch Normalize(value) {
	case Tea:
		return "Tea cup"
	case Mug:
		return "Mug"
	case Noodle:
		return "Noodle bowl"
	default:
		return "Cup"
	}
}

// ForDisplayName is the inverse of DisplayName, defaulting to Default.
func ForDisplayName(name string) Shape {
	for _, value := range All() {
		if value.DisplayName() == name {
			return value
		}
	}
	return Default
}
