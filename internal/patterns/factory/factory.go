// Package factory demonstrates the simple factory and the factory method.
package factory

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownShape matches every *ShapeError.
	ErrUnknownShape = errors.New("unknown shape")
	// ErrUnknownPet is returned by GetPet for keys it has no pet for.
	ErrUnknownPet = errors.New("unknown pet")
)

// Shape kinds understood by the factories.
const (
	KindCircle = "circle"
	KindSquare = "square"
)

// Shape is something that can be drawn.
type Shape interface {
	Draw() string
}

// Circle is a Shape.
type Circle struct{}

// Draw implements Shape.
func (Circle) Draw() string { return "Circle.draw" }

// Square is a Shape.
type Square struct{}

// Draw implements Shape.
func (Square) Draw() string { return "Square.draw" }

// ShapeError reports a shape kind no factory can build.
type ShapeError struct {
	Kind string
}

func (e *ShapeError) Error() string {
	return fmt.Sprintf("could not find shape %q", e.Kind)
}

// Is makes errors.Is(err, ErrUnknownShape) hold for any ShapeError.
func (e *ShapeError) Is(target error) bool {
	return target == ErrUnknownShape
}

// GetShape is the simple factory.
func GetShape(kind string) (Shape, error) {
	switch kind {
	case KindCircle:
		return Circle{}, nil
	case KindSquare:
		return Square{}, nil
	default:
		return nil, &ShapeError{Kind: kind}
	}
}

// ShapeFactory is bound to one kind at construction.
type ShapeFactory struct {
	Kind string
}

// Shape builds the factory's shape.
func (f ShapeFactory) Shape() (Shape, error) {
	return GetShape(f.Kind)
}

// Pet is an animal that can speak.
type Pet interface {
	Speak() string
}

// Dog is a Pet.
type Dog struct {
	Name string
}

// Speak implements Pet.
func (d Dog) Speak() string { return d.Name + " says Woof!" }

// Cat is a Pet.
type Cat struct {
	Name string
}

// Speak implements Pet.
func (c Cat) Speak() string { return c.Name + " says Meow!" }

// GetPet is the factory method for pets.
func GetPet(key string) (Pet, error) {
	switch key {
	case "dog":
		return Dog{Name: "Hope"}, nil
	case "cat":
		return Cat{Name: "Faith"}, nil
	default:
		return nil, fmt.Errorf("%q: %w", key, ErrUnknownPet)
	}
}

var (
	_ Shape = Circle{}
	_ Shape = Square{}
	_ Pet   = Dog{}
	_ Pet   = Cat{}
)
