// Package prototype demonstrates creating objects by cloning registered
// prototypes and adjusting the copy.
package prototype

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"
	"sync"
)

var (
	// ErrNotRegistered is returned for a prototype name nobody registered.
	ErrNotRegistered = errors.New("prototype not registered")
	// ErrUnknownAttr is returned when setting an attribute a machine lacks.
	ErrUnknownAttr = errors.New("unknown attribute")
)

// Machine is anything that can be cloned and adjusted.
type Machine interface {
	Summary() string
	Clone() Machine
	SetAttr(key, value string) error
}

// Car is a cloneable machine.
type Car struct {
	Name    string
	Color   string
	Options []string
}

// NewCar returns the default Skylar.
func NewCar() *Car {
	return &Car{Name: "Skylar", Color: "Red", Options: []string{"Ex"}}
}

// Summary implements Machine.
func (c *Car) Summary() string {
	return fmt.Sprintf("Car details: %s | %s | %s", c.Name, c.Color, joinOptions(c.Options))
}

func joinOptions(opts []string) string {
	if len(opts) == 0 {
		return "None"
	}
	return strings.Join(opts, ", ")
}

// Clone implements Machine with a deep copy.
func (c *Car) Clone() Machine {
	clone := *c
	clone.Options = slices.Clone(c.Options)
	return &clone
}

// SetAttr implements Machine. Options are replaced by the single value given.
func (c *Car) SetAttr(key, value string) error {
	switch key {
	case "name":
		c.Name = value
	case "color":
		c.Color = value
	case "options":
		c.Options = []string{value}
	default:
		return fmt.Errorf("car has no attribute %q: %w", key, ErrUnknownAttr)
	}
	return nil
}

var _ Machine = (*Car)(nil)

// Prototype is a registry of machines to clone from.
type Prototype struct {
	mu       sync.RWMutex
	elements map[string]Machine
}

// New returns an empty prototype registry.
func New() *Prototype {
	return &Prototype{elements: make(map[string]Machine)}
}

// Register stores m under name, replacing any earlier entry.
func (p *Prototype) Register(name string, m Machine) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.elements[name] = m
}

// Unregister removes name.
func (p *Prototype) Unregister(name string) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if _, ok := p.elements[name]; !ok {
		return fmt.Errorf("%q: %w", name, ErrNotRegistered)
	}
	delete(p.elements, name)
	return nil
}

// Clone deep-copies the prototype registered under name and applies attrs to
// the copy in key order. The registered prototype is never modified.
func (p *Prototype) Clone(name string, attrs map[string]string) (Machine, error) {
	p.mu.RLock()
	proto, ok := p.elements[name]
	p.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%q: %w", name, ErrNotRegistered)
	}

	clone := proto.Clone()
	for _, k := range slices.Sorted(maps.Keys(attrs)) {
		if err := clone.SetAttr(k, attrs[k]); err != nil {
			return nil, fmt.Errorf("clone %q: %w", name, err)
		}
	}
	return clone, nil
}
