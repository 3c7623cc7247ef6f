package events

import "github.com/atomicstack/kiosk-panel/internal/logging"

type NavTracer struct{}

type CommandTracer struct{}

var (
	Nav     = NavTracer{}
	Command = CommandTracer{}
)

func (NavTracer) Cursor(index int, tab string) {
	logging.Trace("nav.cursor", map[string]interface{}{"index": index, "tab": tab})
}

func (NavTracer) Open(index int, tab string) {
	logging.Trace("nav.open", map[string]interface{}{"index": index, "tab": tab})
}

func (NavTracer) Close(index int, tab string) {
	logging.Trace("nav.close", map[string]interface{}{"index": index, "tab": tab})
}

func (NavTracer) Forward(tab, button string) {
	logging.Trace("nav.forward", map[string]interface{}{"tab": tab, "button": button})
}

func (NavTracer) Key(key string) {
	logging.Trace("nav.key", map[string]interface{}{"key": key})
}

func (CommandTracer) Quit(screen string) {
	logging.Trace("command.quit", map[string]interface{}{"screen": screen})
}

func (CommandTracer) Reload(err error) {
	payload := map[string]interface{}{}
	if err != nil {
		payload["error"] = err.Error()
	}
	logging.Trace("command.reload", payload)
}
