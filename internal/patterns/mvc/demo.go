package mvc

import (
	"context"

	"patternshell/internal/catalog"
)

// Demo lists the products, shows each of them and asks for one that is missing.
type Demo struct{}

// Name implements catalog.Demo.
func (Demo) Name() string { return "mvc" }

// Category implements catalog.Demo.
func (Demo) Category() catalog.Category { return catalog.Structural }

// Summary implements catalog.Demo.
func (Demo) Summary() string {
	return "Separate data, presentation and input handling"
}

// Run implements catalog.Demo.
func (Demo) Run(_ context.Context, env *catalog.Env) error {
	model, err := NewProductModel()
	if err != nil {
		return err
	}
	env.Log.Debug("catalog loaded", "items", len(model.Items()))

	controller := NewController(model, NewConsoleView(env.Out))
	controller.ShowItems()
	for _, name := range []string{"cheese", "eggs", "milk", "arepas"} {
		if err := controller.ShowItemInformation(name); err != nil {
			return err
		}
	}
	return nil
}

func init() {
	catalog.GetGlobalRegistry().MustRegister(Demo{})
}
