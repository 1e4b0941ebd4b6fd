package factory

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"patternshell/internal/catalog"
	"patternshell/internal/output"
)

func TestShapes(t *testing.T) {
	assert.Equal(t, "Circle.draw", Circle{}.Draw())
	assert.Equal(t, "Square.draw", Square{}.Draw())
}

func TestShapeFactory(t *testing.T) {
	tests := []struct {
		kind string
		want Shape
	}{
		{KindCircle, Circle{}},
		{KindSquare, Square{}},
	}

	for _, tt := range tests {
		t.Run(tt.kind, func(t *testing.T) {
			shape, err := ShapeFactory{Kind: tt.kind}.Shape()
			require.NoError(t, err)
			assert.IsType(t, tt.want, shape)
		})
	}
}

func TestShapeError(t *testing.T) {
	_, err := ShapeFactory{Kind: "fooo"}.Shape()
	require.Error(t, err)

	assert.True(t, errors.Is(err, ErrUnknownShape))

	var shapeErr *ShapeError
	require.True(t, errors.As(err, &shapeErr))
	assert.Equal(t, "fooo", shapeErr.Kind)
	assert.Equal(t, `could not find shape "fooo"`, err.Error())
}

func TestPets(t *testing.T) {
	assert.Equal(t, "Spike says Woof!", Dog{Name: "Spike"}.Speak())
	assert.Equal(t, "Miya says Meow!", Cat{Name: "Miya"}.Speak())
}

func TestGetPet(t *testing.T) {
	dog, err := GetPet("dog")
	require.NoError(t, err)
	assert.Equal(t, Dog{Name: "Hope"}, dog)

	cat, err := GetPet("cat")
	require.NoError(t, err)
	assert.Equal(t, Cat{Name: "Faith"}, cat)

	_, err = GetPet("parrot")
	assert.ErrorIs(t, err, ErrUnknownPet)
}

func TestDemo(t *testing.T) {
	buf := output.NewCaptureBuffer()
	require.NoError(t, Demo{}.Run(context.Background(), catalog.NewEnv(buf)))

	assert.Equal(t, []string{
		"Circle.draw",
		"Square.draw",
		"Faith says Meow!",
		"Hope says Woof!",
		`could not find shape "triangle"`,
	}, buf.Lines())
}
