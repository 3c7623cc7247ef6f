package events

import "github.com/atomicstack/kiosk-panel/internal/logging"

type ConfigTracer struct{}

var Config = ConfigTracer{}

func (ConfigTracer) Watch(path string) {
	logging.Trace("config.watch", map[string]interface{}{"path": path})
}

func (ConfigTracer) Changed(path, op string) {
	logging.Trace("config.changed", map[string]interface{}{"path": path, "op": op})
}
