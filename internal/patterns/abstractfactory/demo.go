package abstractfactory

import (
	"context"
	"fmt"

	"patternshell/internal/catalog"
)

// Demo opens a cat store and then a dog store.
type Demo struct{}

// Name implements catalog.Demo.
func (Demo) Name() string { return "abstractfactory" }

// Category implements catalog.Demo.
func (Demo) Category() catalog.Category { return catalog.Creational }

// Summary implements catalog.Demo.
func (Demo) Summary() string {
	return "Create families of related objects behind one interface"
}

// Run implements catalog.Demo.
func (Demo) Run(_ context.Context, env *catalog.Env) error {
	for _, factory := range []PetFactory{CatFactory{}, DogFactory{}} {
		for _, line := range NewFluffyStore(factory).ShowPet() {
			fmt.Fprintln(env.Out, line)
		}
	}
	return nil
}

func init() {
	catalog.GetGlobalRegistry().MustRegister(Demo{})
}
