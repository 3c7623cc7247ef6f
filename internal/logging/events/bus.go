package events

import "github.com/atomicstack/kiosk-panel/internal/logging"

type BusTracer struct{}

var Bus = BusTracer{}

func (BusTracer) Dropped(event string) {
	logging.Trace("bus.dropped", map[string]interface{}{"event": event})
}

func (BusTracer) Closed(pending int) {
	logging.Trace("bus.closed", map[string]interface{}{"pending": pending})
}
