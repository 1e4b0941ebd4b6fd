// Package observer demonstrates a subject notifying attached observers of
// state changes.
package observer

import (
	"fmt"
	"io"
	"reflect"
	"slices"
)

// Observer receives updates about a subject of type T.
type Observer[T any] interface {
	Update(subject T)
}

// Subject keeps an ordered set of observers.
type Subject[T any] struct {
	observers []Observer[T]
}

// Attach adds o unless it is already attached.
func (s *Subject[T]) Attach(o Observer[T]) {
	if s.index(o) >= 0 {
		return
	}
	s.observers = append(s.observers, o)
}

// Detach removes o. Detaching an unknown observer is a no-op.
func (s *Subject[T]) Detach(o Observer[T]) {
	if i := s.index(o); i >= 0 {
		s.observers = slices.Delete(s.observers, i, i+1)
	}
}

func (s *Subject[T]) index(o Observer[T]) int {
	return slices.IndexFunc(s.observers, func(x Observer[T]) bool { return same(x, o) })
}

// same reports whether a and b are the same observer. Values of an
// uncomparable type have no identity and never match.
func same(a, b any) bool {
	ta := reflect.TypeOf(a)
	if ta != reflect.TypeOf(b) || ta == nil || !ta.Comparable() {
		return false
	}
	return a == b
}

// Observers returns the attached observers in attach order.
func (s *Subject[T]) Observers() []Observer[T] {
	return slices.Clone(s.observers)
}

// Notify calls Update on every observer except modifier, which may be nil.
func (s *Subject[T]) Notify(subject T, modifier Observer[T]) {
	for _, o := range s.observers {
		if modifier != nil && same(o, modifier) {
			continue
		}
		o.Update(subject)
	}
}

// Core is a reactor core whose temperature is watched.
type Core struct {
	Subject[*Core]
	name string
	temp int
}

// NewCore returns a core at temperature zero.
func NewCore(name string) *Core {
	return &Core{name: name}
}

// Name returns the core's name.
func (c *Core) Name() string { return c.name }

// Temp returns the current temperature.
func (c *Core) Temp() int { return c.temp }

// SetTemp changes the temperature. Observers are told only when NotifyAll
// or Notify is called.
func (c *Core) SetTemp(temp int) { c.temp = temp }

// NotifyAll notifies every observer.
func (c *Core) NotifyAll() { c.Notify(c, nil) }

// TempViewer prints the temperature of cores it observes.
type TempViewer struct {
	out io.Writer
}

var _ Observer[*Core] = (*TempViewer)(nil)

// NewTempViewer returns a viewer writing to out.
func NewTempViewer(out io.Writer) *TempViewer {
	return &TempViewer{out: out}
}

// Update implements Observer.
func (v *TempViewer) Update(core *Core) {
	fmt.Fprintf(v.out, "Temperature Viewer: %s has Temperature %d\n", core.Name(), core.Temp())
}
