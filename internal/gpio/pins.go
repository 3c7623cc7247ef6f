package gpio

import (
	"fmt"
	"sort"

	"github.com/atomicstack/kiosk-panel/internal/event"
)

// Pins maps each logical button to a GPIO line offset.
type Pins struct {
	Up     int
	Down   int
	Select int
	Back   int
}

// DefaultPins is the wiring of the reference panel (BCM numbering).
func DefaultPins() Pins {
	return Pins{Up: 17, Down: 22, Select: 23, Back: 27}
}

// Map returns the offset to button lookup.
func (p Pins) Map() map[int]event.Button {
	return map[int]event.Button{
		p.Up:     event.ButtonUp,
		p.Down:   event.ButtonDown,
		p.Select: event.ButtonSelect,
		p.Back:   event.ButtonBack,
	}
}

// Offsets returns the configured offsets in ascending order.
func (p Pins) Offsets() []int {
	offsets := []int{p.Up, p.Down, p.Select, p.Back}
	sort.Ints(offsets)
	return offsets
}

// Validate rejects negative or shared offsets.
func (p Pins) Validate() error {
	seen := make(map[int]string, 4)
	for _, pin := range []struct {
		name   string
		offset int
	}{{"up", p.Up}, {"down", p.Down}, {"select", p.Select}, {"back", p.Back}} {
		if pin.offset < 0 {
			return fmt.Errorf("pin %s: negative offset %d", pin.name, pin.offset)
		}
		if other, ok := seen[pin.offset]; ok {
			return fmt.Errorf("pin %s: offset %d already used by %s", pin.name, pin.offset, other)
		}
		seen[pin.offset] = pin.name
	}
	return nil
}
