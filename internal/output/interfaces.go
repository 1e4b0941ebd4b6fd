// Package output provides the console output system for patternshell.
// Styling is injected through StyleProvider so the package stays free of theme dependencies.
package output

// StyleProvider is implemented by styling services (like theme.Provider)
// to provide styled text rendering capabilities.
type StyleProvider interface {
	// GetStyle returns a TextStyle for the given semantic type.
	GetStyle(semantic string) TextStyle

	// IsAvailable returns true if the style provider is ready to provide styles.
	// The printer falls back to plain text when it is not.
	IsAvailable() bool

	// GetThemeType returns the glamour style name ("dark", "light", "notty", "auto").
	GetThemeType() string
}

// TextStyle represents the capability to render text with styling.
// lipgloss.Style satisfies it.
type TextStyle interface {
	Render(strs ...string) string
}

// Mode defines different output modes the printer can operate in.
type Mode int

const (
	// ModeAuto uses styles when a provider is available
	ModeAuto Mode = iota

	// ModePlain forces plain text output
	ModePlain

	// ModeJSON outputs one JSON object per line
	ModeJSON
)

// SemanticType defines the semantic meaning of output for consistent styling.
type SemanticType string

const (
	// SemanticPlain represents plain text without any semantic meaning.
	SemanticPlain SemanticType = "plain"
	// SemanticInfo represents informational text.
	SemanticInfo SemanticType = "info"
	// SemanticSuccess represents success or completion text.
	SemanticSuccess SemanticType = "success"
	// SemanticWarning represents warning text.
	SemanticWarning SemanticType = "warning"
	// SemanticError represents error text.
	SemanticError SemanticType = "error"
	// SemanticHeading represents a section heading, e.g. a demo title.
	SemanticHeading SemanticType = "heading"
	// SemanticComment represents secondary text.
	SemanticComment SemanticType = "comment"
)
