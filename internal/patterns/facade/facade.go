// Package facade demonstrates hiding several parts behind one simple entry
// point: a test runner in front of individual test cases, and a facade in
// front of three interchangeable runners.
package facade

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"patternshell/internal/catalog"
)

const headerWidth = 20

// header centres name in a line of '#', putting any odd padding on the right.
func header(name string) string {
	pad := max(headerWidth-len([]rune(name)), 0)
	left := pad / 2
	return strings.Repeat("#", left) + name + strings.Repeat("#", pad-left)
}

// TestCase is one scripted test with a pause between its steps.
type TestCase struct {
	name  string
	setup string
	out   io.Writer
	delay time.Duration
}

// NewTestCase returns a test case printing to out. setup is the line printed
// while setting up.
func NewTestCase(name, setup string, out io.Writer, delay time.Duration) *TestCase {
	return &TestCase{name: name, setup: setup, out: out, delay: delay}
}

// Name returns the test case name.
func (tc *TestCase) Name() string { return tc.name }

// Run prints every step, stopping early if ctx is cancelled.
func (tc *TestCase) Run(ctx context.Context) error {
	steps := []string{header(tc.name), tc.setup, "Running test", "Tearing down", "Test Finished\n"}
	for i, step := range steps {
		if i > 0 {
			if err := catalog.Sleep(ctx, tc.delay); err != nil {
				return fmt.Errorf("test case %q: %w", tc.name, err)
			}
		}
		fmt.Fprintln(tc.out, step)
	}
	return nil
}

// TestSuite runs its cases in order.
type TestSuite struct {
	cases []*TestCase
}

// NewTestSuite returns a suite over cases.
func NewTestSuite(cases ...*TestCase) *TestSuite {
	return &TestSuite{cases: cases}
}

// Run runs every case, stopping at the first failure.
func (s *TestSuite) Run(ctx context.Context) error {
	for _, tc := range s.cases {
		if err := tc.Run(ctx); err != nil {
			return err
		}
	}
	return nil
}

// TestRunner owns the three standard test cases.
type TestRunner struct {
	suite *TestSuite
}

// NewTestRunner returns a runner for "Test Case 1" to "Test Case 3".
func NewTestRunner(out io.Writer, delay time.Duration) *TestRunner {
	cases := make([]*TestCase, 0, 3)
	for i := 1; i <= 3; i++ {
		cases = append(cases, NewTestCase(fmt.Sprintf("Test Case %d", i), "Setting up", out, delay))
	}
	return &TestRunner{suite: NewTestSuite(cases...)}
}

// Run runs every case.
func (r *TestRunner) Run(ctx context.Context) error {
	return r.suite.Run(ctx)
}

// Client only knows the runner.
type Client struct {
	runner *TestRunner
}

// NewClient returns a client with its own runner.
func NewClient(out io.Writer, delay time.Duration) *Client {
	return &Client{runner: NewTestRunner(out, delay)}
}

// Run asks the runner to run.
func (c *Client) Run(ctx context.Context) error {
	return c.runner.Run(ctx)
}

// Runner is one subsystem behind Facade.
type Runner interface {
	Run() string
}

// A is a Runner.
type A struct{}

// Run implements Runner.
func (A) Run() string { return "A.run()" }

// B is a Runner.
type B struct{}

// Run implements Runner.
func (B) Run() string { return "B.run()" }

// C is a Runner.
type C struct{}

// Run implements Runner.
func (C) Run() string { return "C.run()" }

// Facade exposes every runner through one call.
type Facade struct{}

// Run returns the runners in order.
func (Facade) Run() []Runner {
	return []Runner{A{}, B{}, C{}}
}

var (
	_ Runner = A{}
	_ Runner = B{}
	_ Runner = C{}
)
