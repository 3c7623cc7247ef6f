package gpio

import (
	"errors"
	"time"

	"github.com/atomicstack/kiosk-panel/internal/event"
	"github.com/atomicstack/kiosk-panel/internal/logging/events"
)

// Monitor forwards debounced presses from a Source to the bus. It never
// touches UI state.
type Monitor struct {
	source   Source
	buttons  map[int]event.Button
	debounce *debouncer
	poll     time.Duration
	bus      event.Sender
}

// NewMonitor builds a monitor for src. Non-positive durations fall back to
// DefaultDebounce and DefaultPoll.
func NewMonitor(src Source, pins Pins, window, poll time.Duration, bus event.Sender) *Monitor {
	if window <= 0 {
		window = DefaultDebounce
	}
	if poll <= 0 {
		poll = DefaultPoll
	}
	return &Monitor{
		source:   src,
		buttons:  pins.Map(),
		debounce: newDebouncer(window),
		poll:     poll,
		bus:      bus,
	}
}

// Run polls the source until it is closed or the bus stops accepting
// events. Timeouts simply loop.
func (m *Monitor) Run() error {
	for {
		offset, ok, err := m.source.Wait(m.poll)
		if err != nil {
			if errors.Is(err, ErrClosed) {
				return nil
			}
			return err
		}
		if !ok {
			continue
		}
		if !m.dispatch(offset) {
			return nil
		}
	}
}

// dispatch reports false once the bus is closed.
func (m *Monitor) dispatch(offset int) bool {
	button, ok := m.buttons[offset]
	if !ok {
		events.GPIO.Unmapped(offset)
		return true
	}
	if !m.debounce.accept(offset) {
		events.GPIO.Bounce(offset)
		return true
	}
	events.GPIO.Press(offset, button.String())
	return m.bus.Send(event.Hardware(button))
}
