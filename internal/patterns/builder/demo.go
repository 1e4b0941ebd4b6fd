package builder

import (
	"context"
	"fmt"

	"patternshell/internal/catalog"
)

// Demo has a director assemble a SkyLark.
type Demo struct{}

// Name implements catalog.Demo.
func (Demo) Name() string { return "builder" }

// Category implements catalog.Demo.
func (Demo) Category() catalog.Category { return catalog.Creational }

// Summary implements catalog.Demo.
func (Demo) Summary() string {
	return "Separate the construction of an object from its representation"
}

// Run implements catalog.Demo.
func (Demo) Run(_ context.Context, env *catalog.Env) error {
	director := NewDirector(NewSkyLarkBuilder())
	director.Construct()
	fmt.Fprintln(env.Out, director.Release().Summary())
	return nil
}

func init() {
	catalog.GetGlobalRegistry().MustRegister(Demo{})
}
