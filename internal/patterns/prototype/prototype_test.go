package prototype

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"patternshell/internal/catalog"
	"patternshell/internal/output"
)

func TestCarDefaults(t *testing.T) {
	assert.Equal(t, "Car details: Skylar | Red | Ex", NewCar().Summary())
}

func TestCloneIsDeep(t *testing.T) {
	original := NewCar()
	clone := original.Clone().(*Car)

	clone.Options[0] = "Sport"
	clone.Color = "Blue"

	assert.Equal(t, []string{"Ex"}, original.Options)
	assert.Equal(t, "Red", original.Color)
}

func TestSetAttr(t *testing.T) {
	car := NewCar()
	require.NoError(t, car.SetAttr("color", "Black"))
	assert.Equal(t, "Black", car.Color)

	err := car.SetAttr("wings", "2")
	assert.ErrorIs(t, err, ErrUnknownAttr)
}

func TestPrototypeClone(t *testing.T) {
	p := New()
	p.Register("skylark", NewCar())

	clone, err := p.Clone("skylark", map[string]string{"name": "Lark", "options": "Sport"})
	require.NoError(t, err)
	assert.Equal(t, "Car details: Lark | Red | Sport", clone.Summary())

	same, err := p.Clone("skylark", nil)
	require.NoError(t, err)
	assert.Equal(t, "Car details: Skylar | Red | Ex", same.Summary())
}

func TestPrototypeErrors(t *testing.T) {
	p := New()

	_, err := p.Clone("missing", nil)
	assert.ErrorIs(t, err, ErrNotRegistered)
	assert.ErrorIs(t, p.Unregister("missing"), ErrNotRegistered)

	p.Register("skylark", NewCar())
	_, err = p.Clone("skylark", map[string]string{"wheels": "3"})
	assert.ErrorIs(t, err, ErrUnknownAttr)

	require.NoError(t, p.Unregister("skylark"))
	_, err = p.Clone("skylark", nil)
	assert.ErrorIs(t, err, ErrNotRegistered)
}

func TestDemo(t *testing.T) {
	buf := output.NewCaptureBuffer()
	require.NoError(t, Demo{}.Run(context.Background(), catalog.NewEnv(buf)))

	assert.Equal(t, []string{
		"Car details: Skylar | Red | Ex",
		"Car details: Skylar | Red | Ex",
	}, buf.Lines())
}
