package ui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/kiosk-panel/internal/event"
)

func waitForEvent(bus *event.Bus) tea.Cmd {
	return func() tea.Msg {
		evt, err := bus.Next(context.Background())
		if err != nil {
			return busClosedMsg{}
		}
		return busEventMsg{evt: evt}
	}
}

type busEventMsg struct {
	evt event.Event
}

type busClosedMsg struct{}

func (m *Model) handleBusEventMsg(msg tea.Msg) tea.Cmd {
	if !m.running {
		return nil
	}
	m.apply(msg.(busEventMsg).evt)
	if !m.running {
		return tea.Quit
	}
	if m.detached {
		return nil
	}
	return waitForEvent(m.bus)
}

func (m *Model) handleBusClosedMsg(tea.Msg) tea.Cmd {
	if !m.running {
		return nil
	}
	m.running = false
	m.screen = ScreenExiting
	m.Shutdown()
	return tea.Quit
}
