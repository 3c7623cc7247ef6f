package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/atomicstack/kiosk-panel/internal/tab"
	"github.com/atomicstack/kiosk-panel/internal/theme"
)

const (
	defaultWidth  = 60
	defaultHeight = 16

	// header and footer rows plus the two border rows of the body
	chromeRows = 4
)

// View renders the tab strip, the selected tab's body and the key footer.
func (m *Model) View() string {
	width, height := m.layoutSize()
	header := m.renderHeader(width)
	body := m.renderBody(width, height-chromeRows)
	footer := m.renderFooter()
	return lipgloss.JoinVertical(lipgloss.Left, header, body, footer)
}

func (m *Model) layoutSize() (int, int) {
	width, height := m.width, m.height
	if width <= 0 {
		width = defaultWidth
	}
	if height <= 0 {
		height = defaultHeight
	}
	if height < chromeRows+1 {
		height = chromeRows + 1
	}
	return width, height
}

func (m *Model) title() string {
	if m.version == "" {
		return "TT"
	}
	return fmt.Sprintf("TT v%s", m.version)
}

func (m *Model) renderHeader(width int) string {
	labels := make([]string, 0, len(m.tabs))
	for i, t := range m.tabs {
		style := *styles.TabLabel
		if i == m.sel.Index {
			style = styles.TabSelected.Background(theme.Accent(t.Color()).Dark)
		}
		labels = append(labels, style.Render(t.Name()))
	}
	strip := lipgloss.JoinHorizontal(lipgloss.Top, labels...)
	title := styles.Title.Render(m.title())

	room := width - lipgloss.Width(title) - 1
	if room < 0 {
		room = 0
	}
	if lipgloss.Width(strip) > room {
		strip = ansi.Truncate(strip, room, "…")
	}
	gap := width - lipgloss.Width(strip) - lipgloss.Width(title)
	if gap < 1 {
		gap = 1
	}
	return strip + strings.Repeat(" ", gap) + title
}

func (m *Model) renderBody(width, innerHeight int) string {
	innerWidth := width - 4
	if innerWidth < 1 {
		innerWidth = 1
	}
	if innerHeight < 1 {
		innerHeight = 1
	}

	border := lipgloss.Color("#94a3b8")
	var lines []string
	if current := m.selectedTab(); current != nil {
		if m.screen == ScreenTab {
			border = theme.Accent(current.Color()).Light
		}
		lines = current.Render(tab.Frame{Width: innerWidth, Height: innerHeight})
	}
	text := styles.BodyText.Render(strings.Join(lines, "\n"))
	content := lipgloss.Place(innerWidth, innerHeight, lipgloss.Center, lipgloss.Center, text)
	return styles.Body.BorderForeground(border).Render(content)
}

func (m *Model) renderFooter() string {
	if m.screen == ScreenExiting {
		return styles.Exiting.Render("Exiting…")
	}
	return m.help.View(m.keys)
}
