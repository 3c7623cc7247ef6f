// Package tab defines the selectable panels shown by the control loop and
// their open/close/input lifecycle.
package tab

import "github.com/atomicstack/kiosk-panel/internal/event"

// ColorTag names a tab's accent color. The theme package resolves tags to
// terminal colors.
type ColorTag int

const (
	ColorGreen ColorTag = iota
	ColorFuchsia
	ColorIndigo
	ColorRed
)

func (c ColorTag) String() string {
	switch c {
	case ColorGreen:
		return "green"
	case ColorFuchsia:
		return "fuchsia"
	case ColorIndigo:
		return "indigo"
	case ColorRed:
		return "red"
	default:
		return "unknown"
	}
}

// State is owned by each tab and only changed by its Open and Close.
type State struct {
	Active bool
}

// Frame describes the body area a tab renders into.
type Frame struct {
	Width  int
	Height int
}

// Tab is a panel in the menu. All methods are called from the control loop
// only.
type Tab interface {
	Name() string
	Color() ColorTag
	State() State
	Open()
	Close()
	// HandleInput receives every button except Back while the tab is active.
	HandleInput(event.Button, event.Sender)
	// Render returns the body lines. It must not change any state.
	Render(Frame) []string
}

// Base carries the default lifecycle: Open activates, Close deactivates and
// input is ignored.
type Base struct {
	state State
}

func (b *Base) State() State { return b.state }

func (b *Base) Open() { b.state.Active = true }

func (b *Base) Close() { b.state.Active = false }

func (b *Base) HandleInput(event.Button, event.Sender) {}
