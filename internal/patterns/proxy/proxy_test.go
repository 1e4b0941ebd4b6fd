package proxy

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"patternshell/internal/catalog"
	"patternshell/internal/output"
)

func TestProducer(t *testing.T) {
	buf := output.NewCaptureBuffer()
	p := NewProducer(buf)
	p.Produce()
	p.Meet()

	assert.Equal(t, []string{"producer is working hard", "Producer has time to meet you now"}, buf.Lines())
}

func TestProxyBusyNeverCreatesProducer(t *testing.T) {
	buf := output.NewCaptureBuffer()
	p := New(buf, 0)
	p.SetOccupied(true)

	require.NoError(t, p.Produce(context.Background()))
	assert.True(t, p.Occupied())
	assert.False(t, p.Instantiated())
	assert.Equal(t, []string{"Artist checking if producer is available...", "Producer is busy!"}, buf.Lines())
}

func TestProxyFreeCreatesProducerOnce(t *testing.T) {
	buf := output.NewCaptureBuffer()
	p := New(buf, 0)

	require.NoError(t, p.Produce(context.Background()))
	first := p.Producer()
	require.NoError(t, p.Produce(context.Background()))

	assert.Same(t, first, p.Producer())
}

func TestProxyHonoursCancel(t *testing.T) {
	buf := output.NewCaptureBuffer()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := New(buf, time.Hour).Produce(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, []string{"Artist checking if producer is available..."}, buf.Lines())
}

func TestDemo(t *testing.T) {
	buf := output.NewCaptureBuffer()
	require.NoError(t, Demo{}.Run(context.Background(), catalog.NewEnv(buf)))

	assert.Equal(t, []string{
		"Artist checking if producer is available...",
		"Producer has time to meet you now",
		"Artist checking if producer is available...",
		"Producer is busy!",
	}, buf.Lines())
}
