package bridge

import (
	"context"

	"patternshell/internal/catalog"
)

// Demo draws one circle through each API.
type Demo struct{}

// Name implements catalog.Demo.
func (Demo) Name() string { return "bridge" }

// Category implements catalog.Demo.
func (Demo) Category() catalog.Category { return catalog.Structural }

// Summary implements catalog.Demo.
func (Demo) Summary() string {
	return "Decouple an abstraction from its implementation"
}

// Run implements catalog.Demo.
func (Demo) Run(_ context.Context, env *catalog.Env) error {
	circles := []*Circle{
		{X: 1, Y: 2, Radius: 3, API: APIOne{Out: env.Out}},
		{X: 3, Y: 4, Radius: 6, API: APITwo{Out: env.Out}},
	}
	for _, c := range circles {
		c.Draw()
	}
	return nil
}

func init() {
	catalog.GetGlobalRegistry().MustRegister(Demo{})
}
