package ui

import tea "github.com/charmbracelet/bubbletea"

// Harness drives the UI model programmatically for integration tests. The
// model does not wait on its own bus; Pump drains it synchronously and a
// frame is rendered after every consumed message, as Bubble Tea would.
type Harness struct {
	model  *Model
	frames int
	last   string
	quit   bool
}

// NewHarness creates a harness for the provided model.
func NewHarness(model *Model) *Harness {
	if model != nil {
		model.detached = true
	}
	return &Harness{model: model}
}

// Send routes a message through the model and executes any returned commands.
func (h *Harness) Send(msg tea.Msg) {
	if h.model == nil {
		return
	}
	h.update(msg)
}

// Pump consumes queued bus events until the bus is empty or the model stops.
// It returns the number of events handed to the model.
func (h *Harness) Pump() int {
	if h.model == nil {
		return 0
	}
	n := 0
	for h.model.Running() {
		evt, ok := h.model.bus.TryNext()
		if !ok {
			break
		}
		n++
		h.update(busEventMsg{evt: evt})
	}
	return n
}

func (h *Harness) update(msg tea.Msg) {
	mdl, cmd := h.model.Update(msg)
	if updated, ok := mdl.(*Model); ok {
		h.model = updated
	}
	h.render()
	h.processCmd(cmd)
}

func (h *Harness) processCmd(cmd tea.Cmd) {
	for cmd != nil {
		msg := cmd()
		if msg == nil {
			return
		}
		if _, ok := msg.(tea.QuitMsg); ok {
			h.quit = true
			return
		}
		mdl, next := h.model.Update(msg)
		if updated, ok := mdl.(*Model); ok {
			h.model = updated
		}
		h.render()
		cmd = next
	}
}

func (h *Harness) render() {
	h.last = h.model.View()
	h.frames++
}

// Frames reports how many times the view has been rendered.
func (h *Harness) Frames() int { return h.frames }

// Quit reports whether the model asked the program to exit.
func (h *Harness) Quit() bool { return h.quit }

// View returns the current view string.
func (h *Harness) View() string {
	if h.model == nil {
		return ""
	}
	return h.model.View()
}

// Model exposes the underlying model.
func (h *Harness) Model() *Model {
	return h.model
}
