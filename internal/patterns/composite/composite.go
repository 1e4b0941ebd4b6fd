// Package composite demonstrates treating single objects and trees of objects
// the same way.
package composite

import (
	"fmt"
	"io"
	"reflect"
	"slices"
)

// Component is a node of a menu tree.
type Component interface {
	Name() string
	Function(out io.Writer)
}

// Child is a leaf.
type Child struct {
	name string
}

// NewChild returns a leaf called name.
func NewChild(name string) *Child {
	return &Child{name: name}
}

// Name implements Component.
func (c *Child) Name() string { return c.name }

// Function implements Component.
func (c *Child) Function(out io.Writer) {
	fmt.Fprintf(out, "%q component\n", c.name)
}

// Composite is a node with ordered children.
type Composite struct {
	name     string
	children []Component
}

// NewComposite returns an empty node called name.
func NewComposite(name string) *Composite {
	return &Composite{name: name}
}

// Name implements Component.
func (c *Composite) Name() string { return c.name }

// Append adds child at the end.
func (c *Composite) Append(child Component) {
	c.children = append(c.children, child)
}

// Remove drops the first occurrence of child. It reports whether child was found.
// Children of an uncomparable type can only be removed by position.
func (c *Composite) Remove(child Component) bool {
	i := slices.IndexFunc(c.children, func(x Component) bool { return sameComponent(x, child) })
	if i < 0 {
		return false
	}
	c.children = slices.Delete(c.children, i, i+1)
	return true
}

// RemoveAt drops the child at index i. It reports whether i was in range.
func (c *Composite) RemoveAt(i int) bool {
	if i < 0 || i >= len(c.children) {
		return false
	}
	c.children = slices.Delete(c.children, i, i+1)
	return true
}

func sameComponent(a, b Component) bool {
	ta := reflect.TypeOf(a)
	if ta != reflect.TypeOf(b) || ta == nil || !ta.Comparable() {
		return false
	}
	return a == b
}

// Children returns the direct children in order.
func (c *Composite) Children() []Component {
	return slices.Clone(c.children)
}

// Function prints this node, then every child depth first.
func (c *Composite) Function(out io.Writer) {
	fmt.Fprintf(out, "%q component\n", c.name)
	for _, child := range c.children {
		child.Function(out)
	}
}

var (
	_ Component = (*Child)(nil)
	_ Component = (*Composite)(nil)
)
