package facade

import (
	"context"
	"fmt"
	"strings"

	"patternshell/internal/catalog"
)

// Demo runs a suite of three numbered cases, then the client's runner, then
// every runner behind the facade.
type Demo struct{}

// Name implements catalog.Demo.
func (Demo) Name() string { return "facade" }

// Category implements catalog.Demo.
func (Demo) Category() catalog.Category { return catalog.Structural }

// Summary implements catalog.Demo.
func (Demo) Summary() string {
	return "Provide one simple interface in front of a set of parts"
}

// Run implements catalog.Demo.
func (Demo) Run(ctx context.Context, env *catalog.Env) error {
	suite := NewTestSuite(
		NewTestCase("TC1", "Setting up testcase one", env.Out, env.StepDelay),
		NewTestCase("TC2", "Setting up testcase two", env.Out, env.StepDelay),
		NewTestCase("TC3", "Setting up testcase three", env.Out, env.StepDelay),
	)
	if err := suite.Run(ctx); err != nil {
		return err
	}

	env.Log.Debug("running client", "delay", env.StepDelay)
	if err := NewClient(env.Out, env.StepDelay).Run(ctx); err != nil {
		return err
	}

	results := make([]string, 0, 3)
	for _, r := range (Facade{}).Run() {
		results = append(results, r.Run())
	}
	fmt.Fprintln(env.Out, strings.Join(results, " "))
	return nil
}

func init() {
	catalog.GetGlobalRegistry().MustRegister(Demo{})
}
