package ui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/kiosk-panel/internal/event"
	"github.com/atomicstack/kiosk-panel/internal/logging/events"
)

// keyMap mirrors the four panel buttons on the keyboard.
type keyMap struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Back   key.Binding
	Quit   key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up: key.NewBinding(
			key.WithKeys("a", "left", "up"),
			key.WithHelp("a", "left"),
		),
		Down: key.NewBinding(
			key.WithKeys("s", "right", "down"),
			key.WithHelp("s", "right"),
		),
		Select: key.NewBinding(
			key.WithKeys("d", "enter"),
			key.WithHelp("d", "OK"),
		),
		Back: key.NewBinding(
			key.WithKeys("f", "backspace"),
			key.WithHelp("f", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("esc", "q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Select, k.Back}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp(), {k.Quit}}
}

// keyName lets raw key strings from the bus go through key.Matches.
type keyName string

func (k keyName) String() string { return string(k) }

// handleKeyMsg only enqueues; the key is interpreted when the bus delivers
// it back to the loop.
func (m *Model) handleKeyMsg(msg tea.Msg) tea.Cmd {
	keyMsg := msg.(tea.KeyMsg)
	if !m.running {
		return nil
	}
	m.bus.Send(event.Terminal(keyMsg.String()))
	return nil
}

func (m *Model) handleTerminal(raw string) {
	k := keyName(raw)
	events.Nav.Key(raw)
	switch {
	case key.Matches(k, m.keys.Quit):
		m.bus.Send(event.App(event.CommandQuit))
	case key.Matches(k, m.keys.Up):
		m.bus.Send(event.Hardware(event.ButtonUp))
	case key.Matches(k, m.keys.Down):
		m.bus.Send(event.Hardware(event.ButtonDown))
	case key.Matches(k, m.keys.Select):
		m.bus.Send(event.Hardware(event.ButtonSelect))
	case key.Matches(k, m.keys.Back):
		m.bus.Send(event.Hardware(event.ButtonBack))
	}
}
