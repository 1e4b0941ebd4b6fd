package strategy

import (
	"context"

	"patternshell/internal/catalog"
)

// Demo runs the default strategy and two replacements.
type Demo struct{}

// Name implements catalog.Demo.
func (Demo) Name() string { return "strategy" }

// Category implements catalog.Demo.
func (Demo) Category() catalog.Category { return catalog.Behavioral }

// Summary implements catalog.Demo.
func (Demo) Summary() string {
	return "Swap the algorithm an object uses without changing the object"
}

// Run implements catalog.Demo.
func (Demo) Run(_ context.Context, env *catalog.Env) error {
	New(nil).Execute(env.Out)

	first := New(MethodOne)
	if err := first.SetName("Strategy one"); err != nil {
		return err
	}
	first.Execute(env.Out)

	second := New(MethodTwo)
	if err := second.SetName("Strategy two"); err != nil {
		return err
	}
	second.Execute(env.Out)
	return nil
}

func init() {
	catalog.GetGlobalRegistry().MustRegister(Demo{})
}
