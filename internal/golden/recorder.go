package golden

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"patternshell/internal/catalog"
)

// Recorder writes fresh transcripts to a directory, one <demo>.expected each.
type Recorder struct {
	dir    string
	runner *Runner
}

// NewRecorder creates a recorder writing into dir with runner's settings.
func NewRecorder(dir string, runner *Runner) *Recorder {
	return &Recorder{dir: dir, runner: runner}
}

// Record runs demo and saves its transcript. It returns the file written.
func (r *Recorder) Record(ctx context.Context, demo catalog.Demo) (string, error) {
	transcript, err := r.runner.Capture(ctx, demo)
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(r.dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create %s: %w", r.dir, err)
	}

	path := filepath.Join(r.dir, demo.Name()+".expected")
	if err := os.WriteFile(path, []byte(transcript+"\n"), 0644); err != nil {
		return "", fmt.Errorf("failed to write expected file: %w", err)
	}

	r.runner.log.Debug("Recorded transcript", "demo", demo.Name(), "path", path)
	return path, nil
}
