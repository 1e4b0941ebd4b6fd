package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
)

// Printer is the main output handler that supports plain, styled, and JSON output.
// It also implements io.Writer so demo code can write transcripts straight into it.
type Printer struct {
	styleProvider StyleProvider
	writer        io.Writer
	mode          Mode
	forcePlain    bool

	mu sync.Mutex
}

var _ io.Writer = (*Printer)(nil)

// NewPrinter creates a new Printer with the given options.
// By default, it writes to os.Stdout with automatic mode detection.
func NewPrinter(options ...Option) *Printer {
	p := &Printer{
		writer: os.Stdout,
		mode:   ModeAuto,
	}

	for _, opt := range options {
		opt(p)
	}

	return p
}

// Write passes demo output through unstyled. In JSON mode every write becomes
// one plain record.
func (p *Printer) Write(b []byte) (int, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.mode == ModeJSON {
		if _, err := fmt.Fprint(p.writer, p.renderJSON(SemanticPlain, strings.TrimSuffix(string(b), "\n"))); err != nil {
			return 0, err
		}
		return len(b), nil
	}

	return p.writer.Write(b)
}

// Print outputs text without any semantic styling.
func (p *Printer) Print(text string) {
	p.output(SemanticPlain, text, false)
}

// Println outputs text with a newline without any semantic styling.
func (p *Printer) Println(text string) {
	p.output(SemanticPlain, text, true)
}

// Info outputs informational text with info styling.
func (p *Printer) Info(text string) {
	p.output(SemanticInfo, text, true)
}

// Success outputs success text with success styling.
func (p *Printer) Success(text string) {
	p.output(SemanticSuccess, text, true)
}

// Warning outputs warning text with warning styling.
func (p *Printer) Warning(text string) {
	p.output(SemanticWarning, text, true)
}

// Error outputs error text with error styling.
func (p *Printer) Error(text string) {
	p.output(SemanticError, text, true)
}

// Heading outputs a section heading.
func (p *Printer) Heading(text string) {
	p.output(SemanticHeading, text, true)
}

// Comment outputs secondary text.
func (p *Printer) Comment(text string) {
	p.output(SemanticComment, text, true)
}

func (p *Printer) output(semantic SemanticType, text string, addNewline bool) {
	p.mu.Lock()
	defer p.mu.Unlock()

	var finalText string
	if p.mode == ModeJSON {
		finalText = p.renderJSON(semantic, text)
	} else {
		finalText = p.renderText(semantic, text, addNewline)
	}

	_, _ = fmt.Fprint(p.writer, finalText)
}

func (p *Printer) renderText(semantic SemanticType, text string, addNewline bool) string {
	var style TextStyle
	if !p.forcePlain && p.styleProvider != nil && p.styleProvider.IsAvailable() {
		style = p.styleProvider.GetStyle(string(semantic))
	} else {
		style = NewPlainStyleProvider().GetStyle(string(semantic))
	}

	result := style.Render(text)
	if addNewline && !strings.HasSuffix(result, "\n") {
		result += "\n"
	}
	return result
}

func (p *Printer) renderJSON(semantic SemanticType, text string) string {
	record := map[string]interface{}{
		"type":    semantic,
		"message": text,
	}

	jsonBytes, err := json.Marshal(record)
	if err != nil {
		return text + "\n"
	}

	return string(jsonBytes) + "\n"
}

// IsStylable returns true if the printer can apply styles.
func (p *Printer) IsStylable() bool {
	return !p.forcePlain && p.styleProvider != nil && p.styleProvider.IsAvailable()
}

// StyleProvider returns the configured provider, or nil when the printer is plain.
func (p *Printer) StyleProvider() StyleProvider {
	if !p.IsStylable() {
		return nil
	}
	return p.styleProvider
}

// String returns a string representation for debugging.
func (p *Printer) String() string {
	hasStyles := "no"
	if p.IsStylable() {
		hasStyles = "yes"
	}
	return fmt.Sprintf("Printer{mode: %v, styles: %s, writer: %T}", p.mode, hasStyles, p.writer)
}
