package chain

import (
	"context"

	"patternshell/internal/catalog"
)

// Demo sends three requests through a range handler backed by a default handler.
type Demo struct{}

// Name implements catalog.Demo.
func (Demo) Name() string { return "chain" }

// Category implements catalog.Demo.
func (Demo) Category() catalog.Category { return catalog.Behavioral }

// Summary implements catalog.Demo.
func (Demo) Summary() string {
	return "Pass a request along handlers until one accepts it"
}

// Run implements catalog.Demo.
func (Demo) Run(_ context.Context, env *catalog.Env) error {
	return NewClient(env.Out).Delegate([]int{2, 5, 30})
}

func init() {
	catalog.GetGlobalRegistry().MustRegister(Demo{})
}
