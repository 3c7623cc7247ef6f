package events

import "github.com/atomicstack/kiosk-panel/internal/logging"

type StorageTracer struct{}

var Storage = StorageTracer{}

func (StorageTracer) Query(found bool, mount string) {
	logging.Trace("storage.query", map[string]interface{}{"found": found, "mount": mount})
}

func (StorageTracer) Version(mount, version string, found bool) {
	logging.Trace("storage.version", map[string]interface{}{"mount": mount, "version": version, "found": found})
}

func (StorageTracer) Discard(mount string) {
	logging.Trace("storage.discard", map[string]interface{}{"mount": mount})
}
