package composite

import (
	"context"

	"patternshell/internal/catalog"
)

// Demo prints a two level menu.
type Demo struct{}

// Name implements catalog.Demo.
func (Demo) Name() string { return "composite" }

// Category implements catalog.Demo.
func (Demo) Category() catalog.Category { return catalog.Structural }

// Summary implements catalog.Demo.
func (Demo) Summary() string {
	return "Compose objects into trees and treat leaves and branches alike"
}

// Run implements catalog.Demo.
func (Demo) Run(_ context.Context, env *catalog.Env) error {
	NewMenu().Function(env.Out)
	return nil
}

// NewMenu builds the demo menu tree.
func NewMenu() *Composite {
	top := NewComposite("top_menu")

	submenuOne := NewComposite("submenu one")
	submenuOne.Append(NewChild("sub_submenu one"))
	submenuOne.Append(NewChild("sub_submenu two"))

	top.Append(submenuOne)
	top.Append(NewChild("submenu two"))
	return top
}

func init() {
	catalog.GetGlobalRegistry().MustRegister(Demo{})
}
