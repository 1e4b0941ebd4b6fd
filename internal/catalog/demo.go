// Package catalog defines what a pattern demo is and keeps the registry that
// pattern packages add themselves to from init.
package catalog

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// Category groups demos the way the Gang of Four book does.
type Category string

// Demo categories.
const (
	Behavioral Category = "behavioral"
	Creational Category = "creational"
	Structural Category = "structural"
)

// Categories lists every category in display order.
func Categories() []Category {
	return []Category{Behavioral, Creational, Structural}
}

// ParseCategory validates a category name.
func ParseCategory(s string) (Category, error) {
	for _, c := range Categories() {
		if string(c) == s {
			return c, nil
		}
	}
	return "", fmt.Errorf("unknown category %q", s)
}

// Demo is one scripted pattern demonstration.
type Demo interface {
	Name() string
	Category() Category
	Summary() string
	Run(ctx context.Context, env *Env) error
}

// Env is everything a demo may touch while running.
type Env struct {
	// Out receives the demo transcript.
	Out io.Writer
	// Log receives diagnostics; never transcript lines.
	Log *log.Logger
	// StepDelay is the pause between facade test-case steps.
	StepDelay time.Duration
	// ProxyDelay is how long the proxy takes to check on the producer.
	ProxyDelay time.Duration
}

// NewEnv returns an Env writing to out with no delays and a discarding logger.
func NewEnv(out io.Writer) *Env {
	return &Env{
		Out: out,
		Log: log.New(io.Discard),
	}
}

// Sleep waits for d or until ctx is done.
func Sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
