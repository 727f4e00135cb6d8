package styles

import (
	"errors"
	"fmt"
	"os"
	"regexp"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"

	"github.com/MissQuinn-dev/todo-frontend/internal/config"
)

// ThemeFile represents a custom theme definition loaded from YAML.
type ThemeFile struct {
	// Name is the theme's display name
	Name string `yaml:"name"`
	// Author is the theme creator's name (optional)
	Author string `yaml:"author,omitempty"`
	// Description provides details about the theme (optional)
	Description string `yaml:"description,omitempty"`
	// Version is the theme file format version (currently "1")
	Version string `yaml:"version"`
	// Colors defines the color palette
	Colors ThemeColors `yaml:"colors"`
}

// ThemeColors contains all color definitions for a theme.
// All colors should be hex format (#RRGGBB or #RGB).
type ThemeColors struct {
	Primary   string `yaml:"primary"`
	Secondary string `yaml:"secondary"`
	Warning   string `yaml:"warning"`
	Error     string `yaml:"error"`
	Muted     string `yaml:"muted"`
	Surface   string `yaml:"surface"`
	Text      string `yaml:"text"`
	Border    string `yaml:"border"`

	// Accent defaults to Primary when omitted
	Accent string `yaml:"accent,omitempty"`
}

var hexColorRegex = regexp.MustCompile(`^#([0-9A-Fa-f]{3}|[0-9A-Fa-f]{6})$`)

// LoadThemeFile loads a theme from a YAML file.
func LoadThemeFile(path string) (*ThemeFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading theme file: %w", err)
	}
	return ParseTheme(data)
}

// ParseTheme decodes and validates a YAML theme.
func ParseTheme(data []byte) (*ThemeFile, error) {
	var theme ThemeFile
	if err := yaml.Unmarshal(data, &theme); err != nil {
		return nil, fmt.Errorf("parsing theme file: %w", err)
	}

	if err := theme.Validate(); err != nil {
		return nil, fmt.Errorf("invalid theme: %w", err)
	}

	return &theme, nil
}

// Validate checks that the theme file is well-formed.
func (t *ThemeFile) Validate() error {
	if t.Name == "" {
		return errors.New("theme name is required")
	}

	if t.Version == "" {
		return errors.New("theme version is required")
	}

	if t.Version != "1" {
		return fmt.Errorf("unsupported theme version: %s (supported: 1)", t.Version)
	}

	// Checked in a fixed order so the first problem reported is stable
	required := []struct {
		name  string
		value string
	}{
		{"primary", t.Colors.Primary},
		{"secondary", t.Colors.Secondary},
		{"warning", t.Colors.Warning},
		{"error", t.Colors.Error},
		{"muted", t.Colors.Muted},
		{"surface", t.Colors.Surface},
		{"text", t.Colors.Text},
		{"border", t.Colors.Border},
	}

	for _, c := range required {
		if c.value == "" {
			return fmt.Errorf("color '%s' is required", c.name)
		}
		if !isValidHexColor(c.value) {
			return fmt.Errorf("color '%s' has invalid format: %s (expected #RGB or #RRGGBB)", c.name, c.value)
		}
	}

	if t.Colors.Accent != "" && !isValidHexColor(t.Colors.Accent) {
		return fmt.Errorf("color 'accent' has invalid format: %s (expected #RGB or #RRGGBB)", t.Colors.Accent)
	}

	return nil
}

func isValidHexColor(color string) bool {
	return hexColorRegex.MatchString(color)
}

// ToPalette converts the theme file to a ColorPalette.
func (t *ThemeFile) ToPalette() *ColorPalette {
	return &ColorPalette{
		Primary:   lipgloss.Color(t.Colors.Primary),
		Secondary: lipgloss.Color(t.Colors.Secondary),
		Warning:   lipgloss.Color(t.Colors.Warning),
		Error:     lipgloss.Color(t.Colors.Error),
		Muted:     lipgloss.Color(t.Colors.Muted),
		Surface:   lipgloss.Color(t.Colors.Surface),
		Text:      lipgloss.Color(t.Colors.Text),
		Border:    lipgloss.Color(t.Colors.Border),
		Accent:    colorOrDefault(t.Colors.Accent, t.Colors.Primary),
	}
}

func colorOrDefault(color, defaultColor string) lipgloss.Color {
	if color != "" {
		return lipgloss.Color(color)
	}
	return lipgloss.Color(defaultColor)
}

// ExportTheme renders a built-in theme as YAML, a starting point for a
// custom theme file.
func ExportTheme(name ThemeName) ([]byte, error) {
	if !IsBuiltinTheme(string(name)) {
		return nil, fmt.Errorf("unknown theme: %s", name)
	}
	return yaml.Marshal(paletteToThemeFile(string(name), GetPalette(name)))
}

func paletteToThemeFile(name string, p *ColorPalette) *ThemeFile {
	return &ThemeFile{
		Name:        name,
		Description: fmt.Sprintf("Exported from built-in theme '%s'", name),
		Version:     "1",
		Colors: ThemeColors{
			Primary:   string(p.Primary),
			Secondary: string(p.Secondary),
			Warning:   string(p.Warning),
			Error:     string(p.Error),
			Muted:     string(p.Muted),
			Surface:   string(p.Surface),
			Text:      string(p.Text),
			Border:    string(p.Border),
			Accent:    string(p.Accent),
		},
	}
}

// ResolvePalette returns the palette for a tui.theme setting: a built-in
// theme name, or the path of a YAML theme file.
func ResolvePalette(theme string) (*ColorPalette, error) {
	switch {
	case theme == "":
		return DefaultPalette(), nil
	case config.IsThemeFile(theme):
		tf, err := LoadThemeFile(theme)
		if err != nil {
			return nil, err
		}
		return tf.ToPalette(), nil
	case IsBuiltinTheme(theme):
		return GetPalette(ThemeName(theme)), nil
	default:
		return nil, fmt.Errorf("unknown theme: %s", theme)
	}
}
