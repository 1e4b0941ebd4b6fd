// Package strategy demonstrates swapping an algorithm at construction time.
package strategy

import (
	"errors"
	"fmt"
	"io"
	"strings"
)

// DefaultName is the name a Strategy starts with.
const DefaultName = "Default strategy"

// ErrInvalidName is returned by SetName for a blank name.
var ErrInvalidName = errors.New("strategy name must not be blank")

// Func is the pluggable behaviour of a Strategy.
type Func func(s *Strategy, out io.Writer)

// Strategy runs its Func, or a default behaviour when it has none.
type Strategy struct {
	name    string
	execute Func
}

// New returns a strategy using fn; a nil fn keeps the default behaviour.
func New(fn Func) *Strategy {
	return &Strategy{name: DefaultName, execute: fn}
}

// Name returns the strategy name.
func (s *Strategy) Name() string { return s.name }

// SetName renames the strategy.
func (s *Strategy) SetName(name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("%q: %w", name, ErrInvalidName)
	}
	s.name = name
	return nil
}

// Execute runs the strategy.
func (s *Strategy) Execute(out io.Writer) {
	if s.execute != nil {
		s.execute(s, out)
		return
	}
	fmt.Fprintf(out, "%s is used\n", s.name)
}

// MethodOne is a replacement behaviour.
func MethodOne(s *Strategy, out io.Writer) {
	fmt.Fprintf(out, "%s is used to execute method one\n", s.Name())
}

// MethodTwo is another replacement behaviour.
func MethodTwo(s *Strategy, out io.Writer) {
	fmt.Fprintf(out, "%s is used to execute method two\n", s.Name())
}
