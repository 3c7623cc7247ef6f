package events

import "github.com/atomicstack/kiosk-panel/internal/logging"

type ProcessTracer struct{}

var Process = ProcessTracer{}

func (ProcessTracer) Spawn(program string, args []string, pid int) {
	logging.Trace("process.spawn", map[string]interface{}{"program": program, "args": args, "pid": pid})
}

func (ProcessTracer) SpawnFailed(program string, err error) {
	logging.Trace("process.spawn.failed", map[string]interface{}{"program": program, "error": err.Error()})
}

func (ProcessTracer) Kill(pid int, err error) {
	payload := map[string]interface{}{"pid": pid}
	if err != nil {
		payload["error"] = err.Error()
	}
	logging.Trace("process.kill", payload)
}
