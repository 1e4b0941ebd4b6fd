// Package decorator demonstrates adding behaviour by wrapping, both for
// functions and for objects.
package decorator

import (
	"fmt"
	"strconv"
	"strings"
)

// NamedFunc is a function that carries its name and documentation, so that a
// wrapper can keep presenting itself as the function it wraps.
type NamedFunc struct {
	Name string
	Doc  string
	Fn   func(string) string
}

// Call runs the function.
func (f NamedFunc) Call(arg string) string {
	return f.Fn(arg)
}

// MakeBlink wraps f so that its result is enclosed in <blink> tags.
func MakeBlink(f NamedFunc) NamedFunc {
	return NamedFunc{
		Name: f.Name,
		Doc:  f.Doc,
		Fn: func(arg string) string {
			return "<blink>" + f.Fn(arg) + "</blink>"
		},
	}
}

// HelloWorld greets name, blinking.
var HelloWorld = MakeBlink(NamedFunc{
	Name: "HelloWorld",
	Doc:  "Original function.",
	Fn: func(name string) string {
		return fmt.Sprintf("Hello World said %q!", name)
	},
})

// Number is a value that knows how to print itself.
type Number interface {
	Value() float64
	String() string
}

// Integer is a whole number.
type Integer int

// Value implements Number.
func (i Integer) Value() float64 { return float64(i) }

func (i Integer) String() string { return strconv.Itoa(int(i)) }

// Float decorates a Number so that it presents as a floating point value.
type Float struct {
	Number
}

// String always shows a fractional part.
func (f Float) String() string { return formatFloat(f.Value()) }

// SumOfFloat adds two numbers as floats.
type SumOfFloat struct {
	one, two Float
}

// NewSumOfFloat decorates a and b with Float.
func NewSumOfFloat(a, b Number) SumOfFloat {
	return SumOfFloat{one: Float{a}, two: Float{b}}
}

// Value implements Number.
func (s SumOfFloat) Value() float64 { return s.one.Value() + s.two.Value() }

func (s SumOfFloat) String() string { return formatFloat(s.Value()) }

func formatFloat(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.ContainsAny(s, ".IN") {
		s += ".0"
	}
	return s
}

var (
	_ Number = Integer(0)
	_ Number = Float{}
	_ Number = SumOfFloat{}
)
