package output

import (
	"strings"

	"github.com/charmbracelet/glamour"
)

// MarkdownRenderer renders pattern documentation for the terminal.
type MarkdownRenderer struct {
	renderer *glamour.TermRenderer
}

// NewMarkdownRenderer creates a renderer matching the provider's theme type.
// A nil provider yields a renderer that returns markdown untouched.
func NewMarkdownRenderer(provider StyleProvider, wordWrap int) *MarkdownRenderer {
	if provider == nil || !provider.IsAvailable() {
		return &MarkdownRenderer{}
	}

	themeStyle := provider.GetThemeType()

	var renderer *glamour.TermRenderer
	var err error
	if themeStyle != "" && themeStyle != "auto" {
		renderer, err = glamour.NewTermRenderer(
			glamour.WithStylePath(themeStyle),
			glamour.WithWordWrap(wordWrap),
		)
	}

	if renderer == nil || err != nil {
		renderer, err = glamour.NewTermRenderer(
			glamour.WithAutoStyle(),
			glamour.WithWordWrap(wordWrap),
			glamour.WithEnvironmentConfig(),
		)
	}

	if err != nil {
		renderer = nil
	}

	return &MarkdownRenderer{renderer: renderer}
}

// IsAvailable reports whether glamour rendering is active.
func (m *MarkdownRenderer) IsAvailable() bool {
	return m.renderer != nil
}

// Render returns the rendered markdown, or the source itself when glamour is
// unavailable or fails.
func (m *MarkdownRenderer) Render(markdown string) string {
	if m.renderer == nil {
		return markdown
	}

	rendered, err := m.renderer.Render(markdown)
	if err != nil || strings.TrimSpace(rendered) == "" {
		return markdown
	}
	return rendered
}
