package observer

import (
	"context"

	"patternshell/internal/catalog"
)

// Demo attaches two viewers to a core and changes its temperature twice.
type Demo struct{}

// Name implements catalog.Demo.
func (Demo) Name() string { return "observer" }

// Category implements catalog.Demo.
func (Demo) Category() catalog.Category { return catalog.Behavioral }

// Summary implements catalog.Demo.
func (Demo) Summary() string {
	return "Notify dependents automatically when a subject changes"
}

// Run implements catalog.Demo.
func (Demo) Run(_ context.Context, env *catalog.Env) error {
	c1 := NewCore("Core1")
	// Core2 has no viewers and stays silent.
	_ = NewCore("Core2")

	v1 := NewTempViewer(env.Out)
	v2 := NewTempViewer(env.Out)

	c1.Attach(v1)
	c1.Attach(v2)

	c1.SetTemp(80)
	c1.NotifyAll()

	c1.SetTemp(90)
	c1.NotifyAll()
	return nil
}

func init() {
	catalog.GetGlobalRegistry().MustRegister(Demo{})
}
