package golden

import (
	"fmt"
	"io"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// Differ renders the difference between an expected and an actual transcript.
type Differ struct {
	out io.Writer
}

// NewDiffer creates a differ writing to out.
func NewDiffer(out io.Writer) *Differ {
	return &Differ{out: out}
}

// ShowDetailedDiff prints both transcripts with line numbers followed by a
// line-level diff.
func (d *Differ) ShowDetailedDiff(name, expected, actual string) {
	fmt.Fprintf(d.out, "=== Demo: %s ===\n", name)

	if expected == actual {
		fmt.Fprintln(d.out, "No differences found")
		return
	}

	fmt.Fprintln(d.out, "\n--- Expected ---")
	d.printNumberedLines(expected)

	fmt.Fprintln(d.out, "\n--- Actual ---")
	d.printNumberedLines(actual)

	fmt.Fprintln(d.out, "\n--- Diff ---")
	fmt.Fprint(d.out, LineDiff(expected, actual))
}

func (d *Differ) printNumberedLines(content string) {
	for i, line := range strings.Split(content, "\n") {
		fmt.Fprintf(d.out, "%4d→%s\n", i+1, line)
	}
}

// LineDiff returns a unified-style diff of two transcripts, one "-", "+" or
// " " prefixed line per transcript line.
func LineDiff(expected, actual string) string {
	dmp := diffmatchpatch.New()
	a, b, lines := dmp.DiffLinesToChars(expected, actual)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), lines)

	var sb strings.Builder
	for _, diff := range diffs {
		prefix := "  "
		switch diff.Type {
		case diffmatchpatch.DiffDelete:
			prefix = "- "
		case diffmatchpatch.DiffInsert:
			prefix = "+ "
		}
		for _, line := range strings.SplitAfter(diff.Text, "\n") {
			if line == "" {
				continue
			}
			sb.WriteString(prefix + strings.TrimSuffix(line, "\n") + "\n")
		}
	}
	return sb.String()
}
