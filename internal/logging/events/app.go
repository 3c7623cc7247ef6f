package events

import "github.com/atomicstack/kiosk-panel/internal/logging"

type AppTracer struct{}

var App = AppTracer{}

func (AppTracer) Start(payload map[string]interface{}) {
	logging.Trace("app.start", payload)
}

func (AppTracer) Stop(reason string) {
	logging.Trace("app.stop", map[string]interface{}{"reason": reason})
}

func (AppTracer) Panic(value interface{}) {
	logging.Trace("app.panic", map[string]interface{}{"value": value})
}
