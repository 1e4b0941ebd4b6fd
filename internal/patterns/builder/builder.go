// Package builder demonstrates assembling a product step by step under the
// control of a director.
package builder

import "fmt"

// Car is the product being assembled. Empty parts are not installed yet.
type Car struct {
	Model  string
	Tires  string
	Engine string
}

// Summary describes the car, showing None for missing parts.
func (c *Car) Summary() string {
	return fmt.Sprintf("Car details: %s | %s | %s", part(c.Model), part(c.Tires), part(c.Engine))
}

func part(s string) string {
	if s == "" {
		return "None"
	}
	return s
}

// Builder provides the parts for one kind of car.
type Builder interface {
	AddModel()
	AddTires()
	AddEngine()
	Machine() *Car
}

// SkyLarkBuilder builds SkyLark cars.
type SkyLarkBuilder struct {
	car *Car
}

// NewSkyLarkBuilder returns a builder holding an empty car.
func NewSkyLarkBuilder() *SkyLarkBuilder {
	return &SkyLarkBuilder{car: &Car{}}
}

// AddModel implements Builder.
func (b *SkyLarkBuilder) AddModel() { b.car.Model = "SkyBuilder model" }

// AddTires implements Builder.
func (b *SkyLarkBuilder) AddTires() { b.car.Tires = "Motosport tires" }

// AddEngine implements Builder.
func (b *SkyLarkBuilder) AddEngine() { b.car.Engine = "GM Motors engine" }

// Machine implements Builder.
func (b *SkyLarkBuilder) Machine() *Car { return b.car }

var _ Builder = (*SkyLarkBuilder)(nil)

// Director knows the order of the assembly steps.
type Director struct {
	builder Builder
}

// NewDirector returns a director driving b.
func NewDirector(b Builder) *Director {
	return &Director{builder: b}
}

// Construct runs every assembly step.
func (d *Director) Construct() {
	d.builder.AddModel()
	d.builder.AddTires()
	d.builder.AddEngine()
}

// Release hands over the assembled car.
func (d *Director) Release() *Car {
	return d.builder.Machine()
}
