package tab

import "github.com/atomicstack/kiosk-panel/internal/event"

// Exit asks for confirmation: Select while active requests shutdown.
type Exit struct {
	Base
}

func NewExit() *Exit { return &Exit{} }

func (e *Exit) Name() string    { return "Exit" }
func (e *Exit) Color() ColorTag { return ColorRed }

func (e *Exit) HandleInput(b event.Button, bus event.Sender) {
	if b == event.ButtonSelect && bus != nil {
		bus.Send(event.App(event.CommandQuit))
	}
}

func (e *Exit) Render(Frame) []string {
	lines := []string{"Press [OK] to exit"}
	if e.state.Active {
		lines = append(lines, "Press [OK] again to confirm")
	}
	return lines
}
