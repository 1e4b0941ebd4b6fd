package iterator

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"patternshell/internal/catalog"
	"patternshell/internal/output"
)

func collect(count int) ([]int, []string) {
	var positions []int
	var words []string
	for p, w := range CountTo(count) {
		positions = append(positions, p)
		words = append(words, w)
	}
	return positions, words
}

func TestCountTo(t *testing.T) {
	positions, words := collect(3)
	assert.Equal(t, []int{1, 2, 3}, positions)
	assert.Equal(t, []string{"eins", "zwei", "drei"}, words)
}

func TestCountTo_StopsAtKnownWords(t *testing.T) {
	positions, words := collect(9)
	assert.Equal(t, []int{1, 2, 3, 4, 5}, positions)
	assert.Equal(t, "fünf", words[4])

	positions, _ = collect(0)
	assert.Empty(t, positions)
}

func TestCountTo_EarlyBreak(t *testing.T) {
	var seen []int
	for p := range CountTo(5) {
		seen = append(seen, p)
		if p == 2 {
			break
		}
	}
	assert.Equal(t, []int{1, 2}, seen)
}

func TestSequenceNext(t *testing.T) {
	seq := NewSequence(2)

	v, ok := seq.Next()
	require.True(t, ok)
	assert.Equal(t, 0, v)

	v, ok = seq.Next()
	require.True(t, ok)
	assert.Equal(t, 1, v)

	_, ok = seq.Next()
	assert.False(t, ok)
	_, ok = seq.Next()
	assert.False(t, ok)
}

func TestSequenceAllResumes(t *testing.T) {
	seq := NewSequence(5)
	_, _ = seq.Next()

	var rest []int
	for v := range seq.All() {
		rest = append(rest, v)
	}
	assert.Equal(t, []int{1, 2, 3, 4}, rest)

	_, ok := seq.Next()
	assert.False(t, ok)
}

func TestSequenceNegativeCapacity(t *testing.T) {
	_, ok := NewSequence(-4).Next()
	assert.False(t, ok)
}

func TestDemo(t *testing.T) {
	buf := output.NewCaptureBuffer()
	require.NoError(t, Demo{}.Run(context.Background(), catalog.NewEnv(buf)))

	lines := buf.Lines()
	require.Len(t, lines, 13)
	assert.Equal(t, "1 in german is eins", lines[0])
	assert.Equal(t, "9", lines[12])
}
