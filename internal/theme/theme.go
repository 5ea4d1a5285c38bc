package theme

import "github.com/charmbracelet/lipgloss"

// Styles describes reusable Lip Gloss styles shared across the UI.
type Styles struct {
	Loading               *lipgloss.Style
	Item                  *lipgloss.Style
	ItemIndicator         *lipgloss.Style
	SelectedItemIndicator *lipgloss.Style
	SelectedItem          *lipgloss.Style
	Description           *lipgloss.Style
	Hint                  *lipgloss.Style
	Error                 *lipgloss.Style
	Info                  *lipgloss.Style
	Header                *lipgloss.Style
	Footer                *lipgloss.Style
	Search                *lipgloss.Style
	SearchPrompt          *lipgloss.Style
	SearchPlaceholder     *lipgloss.Style
	Cursor                *lipgloss.Style
	BannerTitle           *lipgloss.Style
	BannerBody            *lipgloss.Style
	Category              *lipgloss.Style
	FocusedCategory       *lipgloss.Style
	SelectedCategory      *lipgloss.Style
	Control               *lipgloss.Style
	DisabledControl       *lipgloss.Style
	PageLabel             *lipgloss.Style
}

var defaultStyles = Styles{
	Loading: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("33")).Italic(true),
	),
	Item: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	ItemIndicator: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
	),
	SelectedItemIndicator: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("33")).Background(lipgloss.Color("238")),
	),
	SelectedItem: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("238")).Bold(true),
	),
	Description: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	),
	Hint: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("33")).Underline(true),
	),
	Error: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
	),
	Info: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	Header: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true),
	),
	Footer: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	Search: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	SearchPrompt: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("34")).Bold(true),
	),
	SearchPlaceholder: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	),
	Cursor: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("33")).Blink(true),
	),
	BannerTitle: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("220")).Bold(true),
	),
	BannerBody: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
	),
	Category: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")).Background(lipgloss.Color("236")).Padding(0, 1),
	),
	FocusedCategory: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("238")).Underline(true).Padding(0, 1),
	),
	SelectedCategory: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("214")).Bold(true).Padding(0, 1),
	),
	Control: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("33")).Bold(true),
	),
	DisabledControl: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
	),
	PageLabel: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	),
}

// Default exposes the standard style set used across the application.
func Default() *Styles {
	return &defaultStyles
}

func ptr(style lipgloss.Style) *lipgloss.Style {
	return &style
}
