package decorator

import (
	"context"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"patternshell/internal/catalog"
	"patternshell/internal/output"
)

func TestMakeBlinkKeepsIdentity(t *testing.T) {
	shout := NamedFunc{Name: "Shout", Doc: "Upper-cases.", Fn: strings.ToUpper}
	blinking := MakeBlink(shout)

	assert.Equal(t, "<blink>HEY</blink>", blinking.Call("hey"))
	assert.Equal(t, "Shout", blinking.Name)
	assert.Equal(t, "Upper-cases.", blinking.Doc)

	twice := MakeBlink(blinking)
	assert.Equal(t, "<blink><blink>HEY</blink></blink>", twice.Call("hey"))
}

func TestNumbers(t *testing.T) {
	assert.Equal(t, "5", Integer(5).String())
	assert.Equal(t, "5.0", Float{Integer(5)}.String())
	assert.InDelta(t, 11.0, NewSumOfFloat(Integer(5), Integer(6)).Value(), 1e-9)
}

func TestFormatFloat(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{11, "11.0"},
		{-3, "-3.0"},
		{2.5, "2.5"},
		{math.Inf(1), "+Inf"},
		{math.NaN(), "NaN"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, formatFloat(tt.in))
	}
}

func TestDemo(t *testing.T) {
	buf := output.NewCaptureBuffer()
	require.NoError(t, Demo{}.Run(context.Background(), catalog.NewEnv(buf)))

	assert.Equal(t, []string{
		`<blink>Hello World said "James"!</blink>`,
		"HelloWorld",
		"Original function.",
		"11.0",
	}, buf.Lines())
}
