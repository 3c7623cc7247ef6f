package theme

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/atomicstack/kiosk-panel/internal/tab"
)

// Styles describes reusable Lip Gloss styles shared across the UI.
type Styles struct {
	Title       *lipgloss.Style
	TabLabel    *lipgloss.Style
	TabSelected *lipgloss.Style
	Body        *lipgloss.Style
	BodyText    *lipgloss.Style
	Footer      *lipgloss.Style
	Exiting     *lipgloss.Style
}

var defaultStyles = Styles{
	Title: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("#e2e8f0")).Bold(true),
	),
	TabLabel: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("#e2e8f0")).Padding(0, 1),
	),
	TabSelected: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("#e2e8f0")).Padding(0, 1).Bold(true),
	),
	Body: ptr(
		lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1),
	),
	BodyText: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("#e2e8f0")),
	),
	Footer: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("#64748b")),
	),
	Exiting: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("#94a3b8")).Italic(true),
	),
}

// Default exposes the standard style set used across the application.
func Default() *Styles {
	return &defaultStyles
}

// Shades for a tab accent: Light for borders, Dark for the selected label
// background.
type Shades struct {
	Light lipgloss.Color
	Dark  lipgloss.Color
}

var palette = map[tab.ColorTag]Shades{
	tab.ColorGreen:   {Light: "#22c55e", Dark: "#14532d"},
	tab.ColorFuchsia: {Light: "#d946ef", Dark: "#701a75"},
	tab.ColorIndigo:  {Light: "#6366f1", Dark: "#312e81"},
	tab.ColorRed:     {Light: "#ef4444", Dark: "#7f1d1d"},
}

// Accent resolves a color tag. Unknown tags get a neutral slate.
func Accent(tag tab.ColorTag) Shades {
	if s, ok := palette[tag]; ok {
		return s
	}
	return Shades{Light: "#94a3b8", Dark: "#1e293b"}
}

func ptr(style lipgloss.Style) *lipgloss.Style {
	return &style
}
