package ui

import (
	"github.com/atomicstack/kiosk-panel/internal/event"
	"github.com/atomicstack/kiosk-panel/internal/logging"
	"github.com/atomicstack/kiosk-panel/internal/logging/events"
)

// apply consumes one event from the bus. It is the only place tab lifecycle
// methods are called.
func (m *Model) apply(evt event.Event) {
	switch evt.Kind {
	case event.KindTerminal:
		m.handleTerminal(evt.Key)
	case event.KindHardware:
		m.handleButton(evt.Button)
	case event.KindApp:
		m.handleCommand(evt.Command)
	}
}

func (m *Model) handleButton(b event.Button) {
	current := m.selectedTab()
	if current == nil {
		return
	}
	switch m.screen {
	case ScreenMenu:
		switch b {
		case event.ButtonUp:
			if m.sel.MoveUp() {
				events.Nav.Cursor(m.sel.Index, m.selectedTab().Name())
			}
		case event.ButtonDown:
			if m.sel.MoveDown() {
				events.Nav.Cursor(m.sel.Index, m.selectedTab().Name())
			}
		case event.ButtonSelect:
			current.Open()
			m.screen = ScreenTab
			events.Nav.Open(m.sel.Index, current.Name())
		}
	case ScreenTab:
		if b == event.ButtonBack {
			current.Close()
			m.screen = ScreenMenu
			events.Nav.Close(m.sel.Index, current.Name())
			return
		}
		events.Nav.Forward(current.Name(), b.String())
		current.HandleInput(b, m.bus)
	}
}

func (m *Model) handleCommand(cmd event.AppCommand) {
	switch cmd {
	case event.CommandQuit:
		events.Command.Quit(m.screen.String())
		m.running = false
		m.screen = ScreenExiting
		m.Shutdown()
	case event.CommandReload:
		if m.reload == nil {
			return
		}
		err := m.reload()
		events.Command.Reload(err)
		if err != nil {
			logging.Errorf("reload config", err)
		}
	}
}
