package iterator

import (
	"context"
	"fmt"

	"patternshell/internal/catalog"
)

// Demo counts to three in German, then drains a ten-value sequence.
type Demo struct{}

// Name implements catalog.Demo.
func (Demo) Name() string { return "iterator" }

// Category implements catalog.Demo.
func (Demo) Category() catalog.Category { return catalog.Behavioral }

// Summary implements catalog.Demo.
func (Demo) Summary() string {
	return "Walk a collection one element at a time"
}

// Run implements catalog.Demo.
func (Demo) Run(_ context.Context, env *catalog.Env) error {
	for position, word := range CountTo(3) {
		fmt.Fprintf(env.Out, "%d in german is %s\n", position, word)
	}

	seq := NewSequence(10)
	for range 10 {
		v, ok := seq.Next()
		if !ok {
			return fmt.Errorf("sequence exhausted early")
		}
		fmt.Fprintln(env.Out, v)
	}
	return nil
}

func init() {
	catalog.GetGlobalRegistry().MustRegister(Demo{})
}
