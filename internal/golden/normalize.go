// Package golden records demo transcripts and verifies demos against the
// transcripts embedded in the binary.
package golden

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// NormalizationPattern replaces run-specific text with a {{Name}} placeholder.
type NormalizationPattern struct {
	Name    string
	Pattern *regexp.Regexp
	MinLen  int
	MaxLen  int
}

// NormalizationEngine makes transcripts comparable across runs.
type NormalizationEngine struct {
	patterns []NormalizationPattern
}

// NewNormalizationEngine creates an engine with the built-in patterns.
func NewNormalizationEngine() *NormalizationEngine {
	engine := &NormalizationEngine{}
	engine.initBuiltinPatterns()
	return engine
}

func (ne *NormalizationEngine) initBuiltinPatterns() {
	// Singleton instance IDs
	ne.AddPattern(NormalizationPattern{
		Name:    "UUID",
		Pattern: regexp.MustCompile(`[0-9a-f]{8}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{12}`),
		MinLen:  36,
		MaxLen:  36,
	})

	// Pointers printed with %p
	ne.AddPattern(NormalizationPattern{
		Name:    "ADDRESS",
		Pattern: regexp.MustCompile(`0x[a-fA-F0-9]{8,16}`),
		MinLen:  10,
		MaxLen:  18,
	})
}

// AddPattern appends a pattern; patterns apply in the order they were added.
func (ne *NormalizationEngine) AddPattern(p NormalizationPattern) {
	ne.patterns = append(ne.patterns, p)
}

// Normalize strips terminal escapes, unifies line endings, drops trailing
// whitespace on each line and the trailing newlines of the transcript, then
// applies every pattern.
func (ne *NormalizationEngine) Normalize(output string) string {
	cleaned := ansi.Strip(output)
	cleaned = strings.ReplaceAll(cleaned, "\r\n", "\n")

	lines := strings.Split(cleaned, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " \t")
	}
	normalized := strings.TrimRight(strings.Join(lines, "\n"), "\n")

	for _, pattern := range ne.patterns {
		normalized = pattern.Pattern.ReplaceAllStringFunc(normalized, func(match string) string {
			if len(match) >= pattern.MinLen && len(match) <= pattern.MaxLen {
				return fmt.Sprintf("{{%s}}", pattern.Name)
			}
			return match
		})
	}

	return normalized
}
