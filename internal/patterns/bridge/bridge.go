// Package bridge demonstrates separating an abstraction from the API that
// renders it.
package bridge

import (
	"fmt"
	"io"
)

// DrawAPI is the implementation side of the bridge.
type DrawAPI interface {
	DrawCircle(x, y, radius int)
}

// APIOne is the first drawing backend.
type APIOne struct {
	Out io.Writer
}

// DrawCircle implements DrawAPI.
func (a APIOne) DrawCircle(x, y, radius int) {
	drawCircle(a.Out, 1, x, y, radius)
}

// APITwo is the second drawing backend.
type APITwo struct {
	Out io.Writer
}

// DrawCircle implements DrawAPI.
func (a APITwo) DrawCircle(x, y, radius int) {
	drawCircle(a.Out, 2, x, y, radius)
}

func drawCircle(out io.Writer, api, x, y, radius int) {
	fmt.Fprintf(out, "API %d drawing a circle at (%d, %d with radius %d!)\n", api, x, y, radius)
}

// Circle is the abstraction side; it knows nothing about how it is drawn.
type Circle struct {
	X, Y   int
	Radius int
	API    DrawAPI
}

// Draw hands the circle to its API.
func (c *Circle) Draw() {
	c.API.DrawCircle(c.X, c.Y, c.Radius)
}

// Scale multiplies the radius by percent.
func (c *Circle) Scale(percent int) {
	c.Radius *= percent
}

var (
	_ DrawAPI = APIOne{}
	_ DrawAPI = APITwo{}
)
