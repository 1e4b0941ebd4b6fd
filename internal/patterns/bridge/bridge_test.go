package bridge

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"patternshell/internal/catalog"
	"patternshell/internal/output"
)

type recordingAPI struct {
	calls [][3]int
}

func (r *recordingAPI) DrawCircle(x, y, radius int) {
	r.calls = append(r.calls, [3]int{x, y, radius})
}

func TestCircleUsesItsAPI(t *testing.T) {
	api := &recordingAPI{}
	c := &Circle{X: 1, Y: 2, Radius: 3, API: api}

	c.Draw()
	c.Scale(2)
	c.Draw()

	assert.Equal(t, [][3]int{{1, 2, 3}, {1, 2, 6}}, api.calls)
}

func TestAPIs(t *testing.T) {
	buf := output.NewCaptureBuffer()
	APIOne{Out: buf}.DrawCircle(0, 0, 1)
	APITwo{Out: buf}.DrawCircle(5, 5, 10)

	assert.Equal(t, []string{
		"API 1 drawing a circle at (0, 0 with radius 1!)",
		"API 2 drawing a circle at (5, 5 with radius 10!)",
	}, buf.Lines())
}

func TestDemo(t *testing.T) {
	buf := output.NewCaptureBuffer()
	require.NoError(t, Demo{}.Run(context.Background(), catalog.NewEnv(buf)))

	assert.Equal(t, []string{
		"API 1 drawing a circle at (1, 2 with radius 3!)",
		"API 2 drawing a circle at (3, 4 with radius 6!)",
	}, buf.Lines())
}
