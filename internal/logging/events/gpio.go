package events

import "github.com/atomicstack/kiosk-panel/internal/logging"

type GPIOTracer struct{}

var GPIO = GPIOTracer{}

func (GPIOTracer) Open(chip string, offsets []int) {
	logging.Trace("gpio.open", map[string]interface{}{"chip": chip, "offsets": offsets})
}

func (GPIOTracer) Unavailable(chip string, err error) {
	logging.Trace("gpio.unavailable", map[string]interface{}{"chip": chip, "error": err.Error()})
}

func (GPIOTracer) Press(offset int, button string) {
	logging.Trace("gpio.press", map[string]interface{}{"offset": offset, "button": button})
}

func (GPIOTracer) Bounce(offset int) {
	logging.Trace("gpio.bounce", map[string]interface{}{"offset": offset})
}

func (GPIOTracer) Unmapped(offset int) {
	logging.Trace("gpio.unmapped", map[string]interface{}{"offset": offset})
}

func (GPIOTracer) Overflow(offset int) {
	logging.Trace("gpio.overflow", map[string]interface{}{"offset": offset})
}
