package theme

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Styles describes reusable Lip Gloss styles shared across the UI.
type Styles struct {
	Panel         *lipgloss.Style
	Item          *lipgloss.Style
	SelectedItem  *lipgloss.Style
	DisabledItem  *lipgloss.Style
	Separator     *lipgloss.Style
	ItemIndicator *lipgloss.Style
	Backdrop      *lipgloss.Style
	Error         *lipgloss.Style
	Info          *lipgloss.Style
	Footer        *lipgloss.Style

	CheckMark     string
	SubmenuArrow  string
	SeparatorRune string
}

var defaultStyles = Styles{
	Panel: ptr(
		lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240")),
	),
	Item: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	SelectedItem: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("238")).Bold(true),
	),
	DisabledItem: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	),
	Separator: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
	),
	ItemIndicator: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("33")),
	),
	Backdrop: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
	),
	Error: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
	),
	Info: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	Footer: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	),
	CheckMark:     "✓",
	SubmenuArrow:  "▸",
	SeparatorRune: "─",
}

var plainStyles = Styles{
	Panel:         ptr(lipgloss.NewStyle().Border(lipgloss.NormalBorder())),
	Item:          ptr(lipgloss.NewStyle()),
	SelectedItem:  ptr(lipgloss.NewStyle().Reverse(true)),
	DisabledItem:  ptr(lipgloss.NewStyle().Faint(true)),
	Separator:     ptr(lipgloss.NewStyle()),
	ItemIndicator: ptr(lipgloss.NewStyle()),
	Backdrop:      ptr(lipgloss.NewStyle()),
	Error:         ptr(lipgloss.NewStyle().Bold(true)),
	Info:          ptr(lipgloss.NewStyle()),
	Footer:        ptr(lipgloss.NewStyle()),
	CheckMark:     "*",
	SubmenuArrow:  ">",
	SeparatorRune: "-",
}

// Default exposes the standard style set used across the application.
func Default() *Styles {
	return &defaultStyles
}

// Plain returns a colourless style set drawn with ASCII-friendly glyphs.
func Plain() *Styles {
	return &plainStyles
}

// Select returns the style set for the requested mode. Plain mode also
// forces Lip Gloss onto the ASCII colour profile.
func Select(plain bool) *Styles {
	if plain {
		lipgloss.SetColorProfile(termenv.Ascii)
		return Plain()
	}
	return Default()
}

func ptr(style lipgloss.Style) *lipgloss.Style {
	return &style
}
