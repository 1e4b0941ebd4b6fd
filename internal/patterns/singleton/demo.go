package singleton

import (
	"context"
	"fmt"

	"patternshell/internal/catalog"
)

// Demo compares instances of the classic and per-type singletons, then grows a
// Borg hive one acronym at a time.
type Demo struct{}

// Name implements catalog.Demo.
func (Demo) Name() string { return "singleton" }

// Category implements catalog.Demo.
func (Demo) Category() catalog.Category { return catalog.Creational }

// Summary implements catalog.Demo.
func (Demo) Summary() string {
	return "Share a single instance, or a single state, across the program"
}

// Run implements catalog.Demo.
func (Demo) Run(_ context.Context, env *catalog.Env) error {
	one, two := Instance(), Instance()
	fmt.Fprintln(env.Out, one.ID)
	fmt.Fprintln(env.Out, two.ID)
	fmt.Fprintln(env.Out, one == two)

	barOne, barTwo := GetBar(), GetBar()
	fmt.Fprintln(env.Out, barOne.ID)
	fmt.Fprintln(env.Out, barTwo.ID)
	fmt.Fprintln(env.Out, barOne == barTwo)

	hive := NewHive()
	x := hive.Join(map[string]string{"HTTP": "Hyper Text Transfer Protocol"})
	fmt.Fprintln(env.Out, x)
	y := hive.Join(map[string]string{"SNMP": "Simple Network Management Protocol"})
	fmt.Fprintln(env.Out, y)
	return nil
}

func init() {
	catalog.GetGlobalRegistry().MustRegister(Demo{})
}
