package shape

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLabelRoundTrip(t *testing.T) {
	for _, value := range All() {
		t.Run(LabelForShape(value), func(t *testing.T) {
			assert.Equal(t, value, ShapeForLabel(LabelForShape(value)))
		})
	}
}

func TestLabelForShape_OutOfRange(t *testing.T) {
	assert.Equal(t, "default", LabelForShape(Shape(-1)))
	assert.Equal(t, "default", LabelForShape(Shape(42)))
	assert.Equal(t, "default", LabelForShape(count))
}

func TestShapeForLabel_Forgiving(t *testing.T) {
	tests := []struct {
		label string
		want  Shape
	}{
		{"tea", Tea},
		{"  MUG ", Mug},
		{"Noodle", Noodle},
		{"garbage", Default},
		{"", Default},
		{"3", Default},
	}

	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			assert.NotPanics(t, func() {
				assert.Equal(t, tt.want, ShapeForLabel(tt.label))
			})
		})
	}
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, Mug, Normalize(Mug))
	assert.Equal(t, Default, Normalize(Shape(-7)))
	assert.False(t, Shape(4).Valid())
}

func TestDisplayNameRoundTrip(t *testing.T) {
	for _, value := range All() {
		assert.Equal(t, value, ForDisplayName(value.DisplayName()))
	}
	assert.Equal(t, Default, ForDisplayName("Teapot"))
}
