package adapter

import (
	"context"
	"fmt"

	"patternshell/internal/catalog"
)

// Demo adapts a Korean and a British speaker to one Speak method.
type Demo struct{}

// Name implements catalog.Demo.
func (Demo) Name() string { return "adapter" }

// Category implements catalog.Demo.
func (Demo) Category() catalog.Category { return catalog.Structural }

// Summary implements catalog.Demo.
func (Demo) Summary() string {
	return "Convert the interface of a type into the one clients expect"
}

// Run implements catalog.Demo.
func (Demo) Run(_ context.Context, env *catalog.Env) error {
	korean, british := Korean{}, British{}
	speakers := []Speaker{
		New(korean, korean.SpeakKorean),
		New(british, british.SpeakEnglish),
	}

	for _, s := range speakers {
		fmt.Fprintf(env.Out, "%s says '%s'\n\n", s.Name(), s.Speak())
	}
	return nil
}

func init() {
	catalog.GetGlobalRegistry().MustRegister(Demo{})
}
