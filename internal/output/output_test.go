package output

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrinterBasicOutput(t *testing.T) {
	buffer := NewCaptureBuffer()
	printer := NewPrinter(WithWriter(buffer), TestMode())

	printer.Print("hello")
	printer.Println("world")

	assert.Equal(t, "helloworld\n", buffer.String())
}

func TestPrinterSemanticOutput(t *testing.T) {
	buffer := NewCaptureBuffer()
	printer := NewPrinter(WithWriter(buffer), TestMode())

	printer.Info("information")
	printer.Success("completed")
	printer.Warning("careful")
	printer.Error("failed")
	printer.Heading("chain")
	printer.Comment("behavioral")

	assert.Equal(t, []string{
		"ℹ information",
		"✓ completed",
		"⚠ careful",
		"✗ failed",
		"== chain ==",
		"# behavioral",
	}, buffer.Lines())
}

func TestPrinterWithMockStyleProvider(t *testing.T) {
	buffer := NewCaptureBuffer()
	printer := NewPrinter(WithWriter(buffer), WithStyles(NewMockStyleProvider()))

	printer.Info("test message")
	printer.Heading("observer")

	out := buffer.String()
	assert.Contains(t, out, "[info]test message[/info]")
	assert.Contains(t, out, "[heading]observer[/heading]")
	assert.True(t, printer.IsStylable())
	assert.NotNil(t, printer.StyleProvider())
}

func TestPrinterWithUnavailableStyleProvider(t *testing.T) {
	buffer := NewCaptureBuffer()
	mockProvider := NewMockStyleProvider()
	mockProvider.SetAvailable(false)

	printer := NewPrinter(WithWriter(buffer), WithStyles(mockProvider))
	printer.Info("test message")

	assert.Contains(t, buffer.String(), "ℹ test message")
	assert.False(t, printer.IsStylable())
	assert.Nil(t, printer.StyleProvider())
}

func TestPrinterPlainMode(t *testing.T) {
	buffer := NewCaptureBuffer()
	printer := NewPrinter(WithWriter(buffer), WithStyles(NewMockStyleProvider()), PlainText())

	printer.Info("test message")

	out := buffer.String()
	assert.Contains(t, out, "ℹ test message")
	assert.NotContains(t, out, "[info]")
}

func TestPrinterJSONMode(t *testing.T) {
	buffer := NewCaptureBuffer()
	printer := NewPrinter(WithWriter(buffer), JSON())

	printer.Info("test message")
	_, err := fmt.Fprintln(printer, "Circle.draw")
	require.NoError(t, err)

	lines := buffer.Lines()
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], `"type":"info"`)
	assert.Contains(t, lines[0], `"message":"test message"`)
	assert.Contains(t, lines[1], `"type":"plain"`)
	assert.Contains(t, lines[1], `"message":"Circle.draw"`)
}

func TestPrinterWritePassesThroughUnstyled(t *testing.T) {
	buffer := NewCaptureBuffer()
	printer := NewPrinter(WithWriter(buffer), WithStyles(NewMockStyleProvider()))

	n, err := fmt.Fprintf(printer, "Request %d handled\n", 2)
	require.NoError(t, err)

	assert.Equal(t, len("Request 2 handled\n"), n)
	assert.Equal(t, "Request 2 handled\n", buffer.String())
}

func TestCaptureOutput(t *testing.T) {
	out := CaptureOutput(func(p *Printer) {
		p.Info("captured message")
		p.Success("another message")
	})

	assert.Contains(t, out, "ℹ captured message")
	assert.Contains(t, out, "✓ another message")
}

func TestCaptureOutputWithStyles(t *testing.T) {
	out := CaptureOutputWithStyles(NewMockStyleProvider(), func(p *Printer) {
		p.Info("styled message")
	})

	assert.Contains(t, out, "[info]styled message[/info]")
}

func TestCaptureBuffer(t *testing.T) {
	buffer := NewCaptureBuffer()
	assert.Empty(t, buffer.Lines())

	_, _ = buffer.Write([]byte("one\ntwo\n"))
	assert.Equal(t, []string{"one", "two"}, buffer.Lines())
	assert.True(t, buffer.Contains("two"))
	assert.Equal(t, 8, buffer.Len())

	buffer.Reset()
	assert.Equal(t, 0, buffer.Len())
}

func TestMockStyleProvider(t *testing.T) {
	provider := NewMockStyleProvider()
	assert.True(t, provider.IsAvailable())
	assert.Equal(t, "[info]test[/info]", provider.GetStyle("info").Render("test"))

	provider.SetStyle("test", &MockTextStyle{semantic: "custom"})
	assert.Equal(t, "[custom]message[/custom]", provider.GetStyle("test").Render("message"))

	provider.SetAvailable(false)
	assert.False(t, provider.IsAvailable())
}

func TestMarkdownRenderer_PlainFallback(t *testing.T) {
	renderer := NewMarkdownRenderer(nil, 80)
	assert.False(t, renderer.IsAvailable())

	md := "# Observer\n\nOne subject, many observers."
	assert.Equal(t, md, renderer.Render(md))
}

func TestMarkdownRenderer_Notty(t *testing.T) {
	renderer := NewMarkdownRenderer(NewPlainStyleProvider(), 80)
	require.True(t, renderer.IsAvailable())

	rendered := renderer.Render("# Observer\n\nOne subject, many observers.")
	assert.True(t, strings.Contains(rendered, "Observer"))
	assert.Contains(t, rendered, "One subject, many observers.")
}
