package decorator

import (
	"context"
	"fmt"

	"patternshell/internal/catalog"
)

// Demo calls a decorated function and sums two decorated integers.
type Demo struct{}

// Name implements catalog.Demo.
func (Demo) Name() string { return "decorator" }

// Category implements catalog.Demo.
func (Demo) Category() catalog.Category { return catalog.Structural }

// Summary implements catalog.Demo.
func (Demo) Summary() string {
	return "Attach behaviour to a function or object by wrapping it"
}

// Run implements catalog.Demo.
func (Demo) Run(_ context.Context, env *catalog.Env) error {
	fmt.Fprintln(env.Out, HelloWorld.Call("James"))
	fmt.Fprintln(env.Out, HelloWorld.Name)
	fmt.Fprintln(env.Out, HelloWorld.Doc)

	fmt.Fprintln(env.Out, NewSumOfFloat(Integer(5), Integer(6)))
	return nil
}

func init() {
	catalog.GetGlobalRegistry().MustRegister(Demo{})
}
