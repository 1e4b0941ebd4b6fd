// Package visitor demonstrates adding operations to a type by letting visitors
// dispatch back into it.
package visitor

import (
	"fmt"
	"io"
)

// House is visited by specialists.
type House interface {
	Accept(v Visitor)
	WorkOnHVAC(specialist Visitor)
	WorkOnElectricity(specialist Visitor)
}

// Visitor performs one kind of work on a house.
type Visitor interface {
	Visit(h House)
	fmt.Stringer
}

// ConcreteHouse reports the work done on it.
type ConcreteHouse struct {
	out io.Writer
}

// NewConcreteHouse returns a house writing its log to out.
func NewConcreteHouse(out io.Writer) *ConcreteHouse {
	return &ConcreteHouse{out: out}
}

// Accept lets the visitor do its work.
func (h *ConcreteHouse) Accept(v Visitor) {
	v.Visit(h)
}

// WorkOnHVAC implements House.
func (h *ConcreteHouse) WorkOnHVAC(specialist Visitor) {
	fmt.Fprintf(h.out, "%s worked on by %s\n", h, specialist)
}

// WorkOnElectricity implements House.
func (h *ConcreteHouse) WorkOnElectricity(specialist Visitor) {
	fmt.Fprintf(h.out, "%s worked on by %s\n", h, specialist)
}

func (h *ConcreteHouse) String() string { return "ConcreteHouse" }

// HvacSpecialist works on heating and cooling.
type HvacSpecialist struct{}

// Visit implements Visitor.
func (v HvacSpecialist) Visit(h House) { h.WorkOnHVAC(v) }

func (HvacSpecialist) String() string { return "HvacSpecialist" }

// Electrician works on wiring.
type Electrician struct{}

// Visit implements Visitor.
func (v Electrician) Visit(h House) { h.WorkOnElectricity(v) }

func (Electrician) String() string { return "Electrician" }

var (
	_ House   = (*ConcreteHouse)(nil)
	_ Visitor = HvacSpecialist{}
	_ Visitor = Electrician{}
)
