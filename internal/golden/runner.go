package golden

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"patternshell/internal/catalog"
	"patternshell/internal/data/embedded"
	"patternshell/internal/output"
)

// ErrMismatch is returned when a demo's transcript differs from its golden.
var ErrMismatch = errors.New("output doesn't match golden transcript")

// Source returns the expected transcript of a demo.
type Source func(name string) (string, error)

// Result is the outcome of verifying one demo.
type Result struct {
	Name     string
	Expected string
	Actual   string
	Err      error
}

// Passed reports whether the demo ran and matched its golden.
func (r Result) Passed() bool {
	return r.Err == nil
}

// Runner runs demos without delays and compares their transcripts.
type Runner struct {
	source     Source
	normalizer *NormalizationEngine
	log        *log.Logger
}

// RunnerOption configures a Runner.
type RunnerOption func(*Runner)

// WithSource replaces the embedded transcripts.
func WithSource(source Source) RunnerOption {
	return func(r *Runner) {
		r.source = source
	}
}

// WithLogger sets the logger handed to demos and used for progress.
func WithLogger(l *log.Logger) RunnerOption {
	return func(r *Runner) {
		if l != nil {
			r.log = l
		}
	}
}

// NewRunner creates a runner comparing against the embedded transcripts.
func NewRunner(opts ...RunnerOption) *Runner {
	r := &Runner{
		source:     embedded.LoadGolden,
		normalizer: NewNormalizationEngine(),
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.log == nil {
		r.log = log.New(io.Discard)
	}
	return r
}

// Capture runs demo with zero delays and returns its normalized transcript.
func (r *Runner) Capture(ctx context.Context, demo catalog.Demo) (string, error) {
	buf := output.NewCaptureBuffer()
	env := catalog.NewEnv(buf)
	env.Log = r.log

	if err := demo.Run(ctx, env); err != nil {
		return r.normalizer.Normalize(buf.String()), fmt.Errorf("demo %s failed: %w", demo.Name(), err)
	}
	return r.normalizer.Normalize(buf.String()), nil
}

// Verify runs demo and compares it with its golden transcript.
func (r *Runner) Verify(ctx context.Context, demo catalog.Demo) Result {
	result := Result{Name: demo.Name()}

	expected, err := r.source(demo.Name())
	if err != nil {
		result.Err = err
		return result
	}
	result.Expected = r.normalizer.Normalize(expected)

	result.Actual, err = r.Capture(ctx, demo)
	if err != nil {
		result.Err = err
		return result
	}

	if result.Expected != result.Actual {
		result.Err = fmt.Errorf("%s: %w", demo.Name(), ErrMismatch)
	}
	return result
}

// VerifyAll verifies every demo in order. It stops early only when ctx is done.
func (r *Runner) VerifyAll(ctx context.Context, demos []catalog.Demo) ([]Result, error) {
	results := make([]Result, 0, len(demos))
	for _, demo := range demos {
		if err := ctx.Err(); err != nil {
			return results, err
		}

		result := r.Verify(ctx, demo)
		if result.Passed() {
			r.log.Debug("PASS", "demo", demo.Name())
		} else {
			r.log.Debug("FAIL", "demo", demo.Name(), "error", result.Err)
		}
		results = append(results, result)
	}
	return results, nil
}

// Failed returns the names of the results that did not pass.
func Failed(results []Result) []string {
	var names []string
	for _, r := range results {
		if !r.Passed() {
			names = append(names, r.Name)
		}
	}
	return names
}
