package proxy

import (
	"context"

	"patternshell/internal/catalog"
)

// Demo asks for a meeting while the producer is free, then again once busy.
type Demo struct{}

// Name implements catalog.Demo.
func (Demo) Name() string { return "proxy" }

// Category implements catalog.Demo.
func (Demo) Category() catalog.Category { return catalog.Structural }

// Summary implements catalog.Demo.
func (Demo) Summary() string {
	return "Control access to an expensive object through a stand-in"
}

// Run implements catalog.Demo.
func (Demo) Run(ctx context.Context, env *catalog.Env) error {
	p := New(env.Out, env.ProxyDelay)
	if err := p.Produce(ctx); err != nil {
		return err
	}

	p.SetOccupied(true)
	env.Log.Debug("producer occupied")
	return p.Produce(ctx)
}

func init() {
	catalog.GetGlobalRegistry().MustRegister(Demo{})
}
