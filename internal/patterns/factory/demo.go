package factory

import (
	"context"
	"errors"
	"fmt"

	"patternshell/internal/catalog"
)

// Demo builds shapes and pets through their factories, then asks for a shape
// that does not exist.
type Demo struct{}

// Name implements catalog.Demo.
func (Demo) Name() string { return "factory" }

// Category implements catalog.Demo.
func (Demo) Category() catalog.Category { return catalog.Creational }

// Summary implements catalog.Demo.
func (Demo) Summary() string {
	return "Create objects without naming their concrete type"
}

// Run implements catalog.Demo.
func (Demo) Run(_ context.Context, env *catalog.Env) error {
	for _, kind := range []string{KindCircle, KindSquare} {
		shape, err := ShapeFactory{Kind: kind}.Shape()
		if err != nil {
			return err
		}
		fmt.Fprintln(env.Out, shape.Draw())
	}

	for _, key := range []string{"cat", "dog"} {
		pet, err := GetPet(key)
		if err != nil {
			return err
		}
		fmt.Fprintln(env.Out, pet.Speak())
	}

	_, err := GetShape("triangle")
	if !errors.Is(err, ErrUnknownShape) {
		return fmt.Errorf("expected unknown shape, got %v", err)
	}
	env.Log.Debug("factory rejected shape", "err", err)
	fmt.Fprintln(env.Out, err)
	return nil
}

func init() {
	catalog.GetGlobalRegistry().MustRegister(Demo{})
}
