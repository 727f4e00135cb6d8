// Package styles holds the color themes of the TUI and the lipgloss styles
// built from them.
package styles

import "github.com/charmbracelet/lipgloss"

// Styles contains every lipgloss style the TUI renders with. It is rebuilt
// from a palette whenever the theme changes.
type Styles struct {
	Palette *ColorPalette

	// Convenience styles for colors
	Primary   lipgloss.Style
	Secondary lipgloss.Style
	Warning   lipgloss.Style
	Error     lipgloss.Style
	Muted     lipgloss.Style
	Text      lipgloss.Style

	// Header
	Header   lipgloss.Style
	Subtitle lipgloss.Style

	// Panes
	Pane             lipgloss.Style
	PaneFocused      lipgloss.Style
	PaneTitle        lipgloss.Style
	PaneTitleFocused lipgloss.Style

	// Tables
	TableHeader       lipgloss.Style
	TableHeaderActive lipgloss.Style
	Row               lipgloss.Style
	RowSelected       lipgloss.Style
	EmptyRow          lipgloss.Style
	Pager             lipgloss.Style
	ActionComplete    lipgloss.Style
	ActionDelete      lipgloss.Style
	AssignControl     lipgloss.Style
	InlineError       lipgloss.Style
	FilterPrompt      lipgloss.Style
	Spinner           lipgloss.Style

	// Forms
	FieldLabel        lipgloss.Style
	FieldLabelFocused lipgloss.Style
	FieldDescription  lipgloss.Style
	FieldError        lipgloss.Style
	Button            lipgloss.Style
	ButtonFocused     lipgloss.Style

	// Toasts
	ToastSuccess lipgloss.Style
	ToastError   lipgloss.Style
	ToastInfo    lipgloss.Style

	// Overlays
	Modal            lipgloss.Style
	ModalTitle       lipgloss.Style
	MenuItem         lipgloss.Style
	MenuItemSelected lipgloss.Style

	// Help bar and overlay
	HelpBar      lipgloss.Style
	HelpKey      lipgloss.Style
	HelpDesc     lipgloss.Style
	HelpCategory lipgloss.Style
}

// New builds the styles for a palette. A nil palette uses the default theme.
func New(p *ColorPalette) *Styles {
	if p == nil {
		p = DefaultPalette()
	}

	toast := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		Padding(0, 1).
		Foreground(p.Text)

	return &Styles{
		Palette: p,

		Primary:   lipgloss.NewStyle().Foreground(p.Primary),
		Secondary: lipgloss.NewStyle().Foreground(p.Secondary),
		Warning:   lipgloss.NewStyle().Foreground(p.Warning),
		Error:     lipgloss.NewStyle().Foreground(p.Error),
		Muted:     lipgloss.NewStyle().Foreground(p.Muted),
		Text:      lipgloss.NewStyle().Foreground(p.Text),

		Header: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.Primary).
			BorderStyle(lipgloss.NormalBorder()).
			BorderBottom(true).
			BorderForeground(p.Border),
		Subtitle: lipgloss.NewStyle().
			Foreground(p.Muted).
			Italic(true),

		Pane: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.Border).
			Padding(0, 1),
		PaneFocused: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.Primary).
			Padding(0, 1),
		PaneTitle: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.Muted),
		PaneTitleFocused: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.Primary),

		TableHeader: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.Text),
		TableHeaderActive: lipgloss.NewStyle().
			Bold(true).
			Underline(true).
			Foreground(p.Primary),
		Row: lipgloss.NewStyle().
			Foreground(p.Text),
		RowSelected: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.Text).
			Background(p.Surface),
		EmptyRow: lipgloss.NewStyle().
			Foreground(p.Muted).
			Italic(true),
		Pager: lipgloss.NewStyle().
			Foreground(p.Muted),
		ActionComplete: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.Secondary),
		ActionDelete: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.Error),
		AssignControl: lipgloss.NewStyle().
			Foreground(p.Accent),
		InlineError: lipgloss.NewStyle().
			Foreground(p.Error).
			Bold(true),
		FilterPrompt: lipgloss.NewStyle().
			Foreground(p.Secondary).
			Bold(true),
		Spinner: lipgloss.NewStyle().
			Foreground(p.Primary),

		FieldLabel: lipgloss.NewStyle().
			Foreground(p.Text),
		FieldLabelFocused: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.Primary),
		FieldDescription: lipgloss.NewStyle().
			Foreground(p.Muted).
			Italic(true),
		FieldError: lipgloss.NewStyle().
			Foreground(p.Error),
		Button: lipgloss.NewStyle().
			Foreground(p.Muted).
			Padding(0, 2),
		ButtonFocused: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.Text).
			Background(p.Primary).
			Padding(0, 2),

		ToastSuccess: toast.BorderForeground(p.Secondary),
		ToastError:   toast.BorderForeground(p.Error),
		ToastInfo:    toast.BorderForeground(p.Accent),

		Modal: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.Primary).
			Padding(1, 2),
		ModalTitle: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.Primary).
			MarginBottom(1),
		MenuItem: lipgloss.NewStyle().
			Foreground(p.Text).
			Padding(0, 1),
		MenuItemSelected: lipgloss.NewStyle().
			Foreground(p.Text).
			Background(p.Primary).
			Bold(true).
			Padding(0, 1),

		HelpBar: lipgloss.NewStyle().
			Foreground(p.Muted),
		HelpKey: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.Secondary),
		HelpDesc: lipgloss.NewStyle().
			Foreground(p.Muted),
		HelpCategory: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.Primary),
	}
}

// Load resolves a tui.theme setting and builds its styles.
func Load(theme string) (*Styles, error) {
	p, err := ResolvePalette(theme)
	if err != nil {
		return nil, err
	}
	return New(p), nil
}
