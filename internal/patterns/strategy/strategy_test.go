package strategy

import (
	"context"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"patternshell/internal/catalog"
	"patternshell/internal/output"
)

func TestDefaultStrategy(t *testing.T) {
	buf := output.NewCaptureBuffer()
	s := New(nil)

	assert.Equal(t, DefaultName, s.Name())
	s.Execute(buf)
	assert.Equal(t, "Default strategy is used\n", buf.String())
}

func TestReplacementStrategies(t *testing.T) {
	tests := []struct {
		name     string
		fn       Func
		expected string
	}{
		{"one", MethodOne, "Strategy one is used to execute method one\n"},
		{"two", MethodTwo, "Strategy two is used to execute method two\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := output.NewCaptureBuffer()
			s := New(tt.fn)
			require.NoError(t, s.SetName("Strategy "+tt.name))
			s.Execute(buf)
			assert.Equal(t, tt.expected, buf.String())
		})
	}
}

func TestCustomFuncSeesStrategy(t *testing.T) {
	var seen *Strategy
	s := New(func(s *Strategy, _ io.Writer) { seen = s })
	s.Execute(io.Discard)
	assert.Same(t, s, seen)
}

func TestSetNameRejectsBlank(t *testing.T) {
	s := New(nil)

	for _, name := range []string{"", "   ", "\t"} {
		err := s.SetName(name)
		assert.ErrorIs(t, err, ErrInvalidName)
	}
	assert.Equal(t, DefaultName, s.Name())
}

func TestDemo(t *testing.T) {
	buf := output.NewCaptureBuffer()
	require.NoError(t, Demo{}.Run(context.Background(), catalog.NewEnv(buf)))

	assert.Equal(t, []string{
		"Default strategy is used",
		"Strategy one is used to execute method one",
		"Strategy two is used to execute method two",
	}, buf.Lines())
}
