// Package theme turns the embedded YAML themes into lipgloss styles and exposes
// them to the output package as a StyleProvider.
package theme

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"gopkg.in/yaml.v3"

	"patternshell/internal/data/embedded"
	"patternshell/internal/logger"
	"patternshell/internal/output"
)

// File is the on-disk shape of a theme.
type File struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description,omitempty"`
	Styles      Styles `yaml:"styles"`
}

// Styles holds one StyleConfig per semantic output type.
type Styles struct {
	Info    StyleConfig `yaml:"info"`
	Success StyleConfig `yaml:"success"`
	Warning StyleConfig `yaml:"warning"`
	Error   StyleConfig `yaml:"error"`
	Heading StyleConfig `yaml:"heading"`
	Comment StyleConfig `yaml:"comment"`
}

// StyleConfig describes colours and decorations. Colours are either a plain
// string or a {light, dark} map.
type StyleConfig struct {
	Foreground interface{} `yaml:"foreground,omitempty"`
	Background interface{} `yaml:"background,omitempty"`
	Bold       *bool       `yaml:"bold,omitempty"`
	Italic     *bool       `yaml:"italic,omitempty"`
	Underline  *bool       `yaml:"underline,omitempty"`
}

// Theme is a parsed theme ready for rendering.
type Theme struct {
	Name   string
	styles map[string]lipgloss.Style
}

var themeData = map[string][]byte{
	"default": embedded.DefaultThemeData,
	"dark":    embedded.DarkThemeData,
	"light":   embedded.LightThemeData,
	"plain":   embedded.PlainThemeData,
}

// Names returns the available theme names, sorted.
func Names() []string {
	names := make([]string, 0, len(themeData))
	for name := range themeData {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Load parses the embedded theme with the given name.
func Load(name string) (*Theme, error) {
	data, ok := themeData[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, fmt.Errorf("unknown theme %q (available: %s)", name, strings.Join(Names(), ", "))
	}
	return Parse(data)
}

// Parse converts theme YAML into lipgloss styles.
func Parse(data []byte) (*Theme, error) {
	var file File
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse theme file: %w", err)
	}

	return &Theme{
		Name: file.Name,
		styles: map[string]lipgloss.Style{
			string(output.SemanticInfo):    createStyle(file.Styles.Info),
			string(output.SemanticSuccess): createStyle(file.Styles.Success),
			string(output.SemanticWarning): createStyle(file.Styles.Warning),
			string(output.SemanticError):   createStyle(file.Styles.Error),
			string(output.SemanticHeading): createStyle(file.Styles.Heading),
			string(output.SemanticComment): createStyle(file.Styles.Comment),
		},
	}, nil
}

// Style returns the style for a semantic type; unknown types get an empty style.
func (t *Theme) Style(semantic string) lipgloss.Style {
	if style, ok := t.styles[semantic]; ok {
		return style
	}
	return lipgloss.NewStyle()
}

func createStyle(config StyleConfig) lipgloss.Style {
	style := lipgloss.NewStyle()

	if color := parseColor(config.Foreground); color != nil {
		style = style.Foreground(color)
	}
	if color := parseColor(config.Background); color != nil {
		style = style.Background(color)
	}
	if config.Bold != nil && *config.Bold {
		style = style.Bold(true)
	}
	if config.Italic != nil && *config.Italic {
		style = style.Italic(true)
	}
	if config.Underline != nil && *config.Underline {
		style = style.Underline(true)
	}

	return style
}

func parseColor(value interface{}) lipgloss.TerminalColor {
	switch v := value.(type) {
	case string:
		return lipgloss.Color(v)
	case map[string]interface{}:
		light, hasLight := v["light"].(string)
		dark, hasDark := v["dark"].(string)
		if hasLight && hasDark {
			return lipgloss.AdaptiveColor{Light: light, Dark: dark}
		}
		return nil
	default:
		return nil
	}
}

// Provider implements output.StyleProvider on top of a Theme.
type Provider struct {
	theme   *Theme
	profile termenv.Profile
}

var _ output.StyleProvider = (*Provider)(nil)

// ProviderOption configures a Provider.
type ProviderOption func(*Provider)

// WithProfile overrides the detected terminal colour profile.
func WithProfile(profile termenv.Profile) ProviderOption {
	return func(p *Provider) {
		p.profile = profile
	}
}

// NewProvider loads the named theme. An unknown name logs and falls back to plain.
func NewProvider(name string, opts ...ProviderOption) *Provider {
	t, err := Load(name)
	if err != nil {
		logger.Debug("Falling back to plain theme", "theme", name, "error", err)
		t, _ = Parse(embedded.PlainThemeData)
	}

	p := &Provider{
		theme:   t,
		profile: lipgloss.ColorProfile(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Theme returns the loaded theme.
func (p *Provider) Theme() *Theme {
	return p.theme
}

// GetStyle implements output.StyleProvider.
func (p *Provider) GetStyle(semantic string) output.TextStyle {
	return p.theme.Style(semantic)
}

// IsAvailable is false on colourless terminals and for the plain theme.
func (p *Provider) IsAvailable() bool {
	return p.profile != termenv.Ascii && p.theme.Name != "plain"
}

// GetThemeType maps the theme to a glamour style name.
func (p *Provider) GetThemeType() string {
	switch p.theme.Name {
	case "dark", "light":
		return p.theme.Name
	case "plain":
		return "notty"
	default:
		return "auto"
	}
}
