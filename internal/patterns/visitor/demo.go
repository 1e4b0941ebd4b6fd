package visitor

import (
	"context"

	"patternshell/internal/catalog"
)

// Demo sends an HVAC specialist and an electrician to the same house.
type Demo struct{}

// Name implements catalog.Demo.
func (Demo) Name() string { return "visitor" }

// Category implements catalog.Demo.
func (Demo) Category() catalog.Category { return catalog.Behavioral }

// Summary implements catalog.Demo.
func (Demo) Summary() string {
	return "Add operations to objects without changing their types"
}

// Run implements catalog.Demo.
func (Demo) Run(_ context.Context, env *catalog.Env) error {
	home := NewConcreteHouse(env.Out)
	home.Accept(HvacSpecialist{})
	home.Accept(Electrician{})
	return nil
}

func init() {
	catalog.GetGlobalRegistry().MustRegister(Demo{})
}
