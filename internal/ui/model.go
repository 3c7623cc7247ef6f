package ui

import (
	"reflect"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/kiosk-panel/internal/event"
	"github.com/atomicstack/kiosk-panel/internal/tab"
	"github.com/atomicstack/kiosk-panel/internal/theme"
	uistate "github.com/atomicstack/kiosk-panel/internal/ui/state"
)

// Screen is the top-level navigation state.
type Screen int

const (
	ScreenMenu Screen = iota
	ScreenTab
	ScreenExiting
)

func (s Screen) String() string {
	switch s {
	case ScreenMenu:
		return "menu"
	case ScreenTab:
		return "tab"
	case ScreenExiting:
		return "exiting"
	default:
		return "unknown"
	}
}

var styles = theme.Default()

type msgHandler func(tea.Msg) tea.Cmd

// Options configures a Model.
type Options struct {
	Bus     *event.Bus
	Tabs    []tab.Tab
	Version string
	// Width and Height fix the layout size. Zero means follow the terminal.
	Width  int
	Height int
	// Reload runs on the loop when an App(Reload) event is consumed.
	Reload func() error
}

// Model implements the Bubble Tea model for the panel.
type Model struct {
	bus     *event.Bus
	tabs    []tab.Tab
	sel     uistate.Selection
	screen  Screen
	running bool
	version string

	width       int
	height      int
	fixedWidth  bool
	fixedHeight bool

	keys keyMap
	help help.Model

	reload   func() error
	shutdown bool
	// detached models do not wait on the bus themselves; a Harness pumps it.
	detached bool

	handlers map[reflect.Type]msgHandler
}

// NewModel builds the model in the Menu screen with the first tab selected.
func NewModel(opts Options) *Model {
	bus := opts.Bus
	if bus == nil {
		bus = event.NewBus()
	}
	h := help.New()
	h.ShortSeparator = " | "
	h.Styles.ShortKey = *styles.Footer
	h.Styles.ShortDesc = *styles.Footer
	h.Styles.ShortSeparator = *styles.Footer
	m := &Model{
		bus:     bus,
		tabs:    opts.Tabs,
		sel:     uistate.NewSelection(len(opts.Tabs)),
		screen:  ScreenMenu,
		running: true,
		version: opts.Version,
		keys:    defaultKeyMap(),
		help:    h,
		reload:  opts.Reload,
	}
	if opts.Width > 0 {
		m.width = opts.Width
		m.fixedWidth = true
		m.help.Width = opts.Width
	}
	if opts.Height > 0 {
		m.height = opts.Height
		m.fixedHeight = true
	}
	m.registerHandlers()
	return m
}

// Init is part of the tea.Model interface.
func (m *Model) Init() tea.Cmd {
	if m.detached {
		return nil
	}
	return waitForEvent(m.bus)
}

// Update responds to Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if handler := m.handlerFor(msg); handler != nil {
		return m, handler(msg)
	}
	return m, nil
}

func (m *Model) registerHandlers() {
	m.handlers = map[reflect.Type]msgHandler{
		reflect.TypeOf(tea.KeyMsg{}):        m.handleKeyMsg,
		reflect.TypeOf(tea.WindowSizeMsg{}): m.handleWindowSizeMsg,
		reflect.TypeOf(busEventMsg{}):       m.handleBusEventMsg,
		reflect.TypeOf(busClosedMsg{}):      m.handleBusClosedMsg,
	}
}

func (m *Model) handlerFor(msg tea.Msg) msgHandler {
	if msg == nil || m.handlers == nil {
		return nil
	}
	t := reflect.TypeOf(msg)
	if handler, ok := m.handlers[t]; ok {
		return handler
	}
	if t.Kind() == reflect.Ptr {
		if handler, ok := m.handlers[t.Elem()]; ok {
			return handler
		}
	}
	return nil
}

func (m *Model) handleWindowSizeMsg(msg tea.Msg) tea.Cmd {
	size := msg.(tea.WindowSizeMsg)
	if !m.fixedWidth {
		m.width = size.Width
	}
	if !m.fixedHeight {
		m.height = size.Height
	}
	m.help.Width = m.width
	return nil
}

// Shutdown closes any active tab so a running child never outlives the
// program. It is safe to call more than once and from the program's
// deferred cleanup after the loop has ended.
func (m *Model) Shutdown() {
	if m.shutdown {
		return
	}
	m.shutdown = true
	m.running = false
	for _, t := range m.tabs {
		if t.State().Active {
			t.Close()
		}
	}
}

// Screen reports the current navigation state.
func (m *Model) Screen() Screen { return m.screen }

// Running reports whether the loop still consumes events.
func (m *Model) Running() bool { return m.running }

// Selected returns the cursor position.
func (m *Model) Selected() int { return m.sel.Index }

// Tabs returns the fixed tab collection.
func (m *Model) Tabs() []tab.Tab { return m.tabs }

func (m *Model) selectedTab() tab.Tab {
	if !m.sel.Valid() {
		return nil
	}
	return m.tabs[m.sel.Index]
}
