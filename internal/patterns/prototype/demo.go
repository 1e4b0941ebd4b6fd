package prototype

import (
	"context"
	"fmt"

	"patternshell/internal/catalog"
)

// Demo registers a Skylar and clones it.
type Demo struct{}

// Name implements catalog.Demo.
func (Demo) Name() string { return "prototype" }

// Category implements catalog.Demo.
func (Demo) Category() catalog.Category { return catalog.Creational }

// Summary implements catalog.Demo.
func (Demo) Summary() string {
	return "Create new objects by copying a registered prototype"
}

// Run implements catalog.Demo.
func (Demo) Run(_ context.Context, env *catalog.Env) error {
	primary := NewCar()
	fmt.Fprintln(env.Out, primary.Summary())

	prototypes := New()
	prototypes.Register("skylark", primary)

	cloned, err := prototypes.Clone("skylark", nil)
	if err != nil {
		return err
	}
	fmt.Fprintln(env.Out, cloned.Summary())
	return nil
}

func init() {
	catalog.GetGlobalRegistry().MustRegister(Demo{})
}
