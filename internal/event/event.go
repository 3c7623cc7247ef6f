// Package event defines the messages that flow into the control loop and the
// ordered bus that carries them.
package event

import "fmt"

// Button is a logical, debounced input symbol. Physical line identity is
// resolved by the producer before a Button reaches the bus.
type Button int

const (
	ButtonUp Button = iota
	ButtonDown
	ButtonSelect
	ButtonBack
)

// Buttons lists every logical button in display order.
func Buttons() []Button {
	return []Button{ButtonUp, ButtonDown, ButtonSelect, ButtonBack}
}

func (b Button) String() string {
	switch b {
	case ButtonUp:
		return "up"
	case ButtonDown:
		return "down"
	case ButtonSelect:
		return "select"
	case ButtonBack:
		return "back"
	default:
		return fmt.Sprintf("button(%d)", int(b))
	}
}

// AppCommand is a directive generated inside the application.
type AppCommand int

const (
	CommandQuit AppCommand = iota
	// CommandReload re-reads the config file on the loop thread.
	CommandReload
)

func (c AppCommand) String() string {
	switch c {
	case CommandQuit:
		return "quit"
	case CommandReload:
		return "reload"
	default:
		return fmt.Sprintf("command(%d)", int(c))
	}
}

// Kind tags which variant an Event carries.
type Kind int

const (
	KindTick Kind = iota
	KindTerminal
	KindHardware
	KindApp
)

func (k Kind) String() string {
	switch k {
	case KindTick:
		return "tick"
	case KindTerminal:
		return "terminal"
	case KindHardware:
		return "hardware"
	case KindApp:
		return "app"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Event is consumed exactly once, in arrival order, by the control loop.
// Only the payload field matching Kind is meaningful.
type Event struct {
	Kind    Kind
	Key     string
	Button  Button
	Command AppCommand
}

// Tick returns a periodic timer event.
func Tick() Event {
	return Event{Kind: KindTick}
}

// Terminal wraps a raw terminal key press, named the way Bubble Tea names
// keys ("a", "enter", "ctrl+c").
func Terminal(key string) Event {
	return Event{Kind: KindTerminal, Key: key}
}

// Hardware wraps a logical button press.
func Hardware(b Button) Event {
	return Event{Kind: KindHardware, Button: b}
}

// App wraps an internally generated command.
func App(cmd AppCommand) Event {
	return Event{Kind: KindApp, Command: cmd}
}

func (e Event) String() string {
	switch e.Kind {
	case KindTerminal:
		return fmt.Sprintf("terminal(%s)", e.Key)
	case KindHardware:
		return fmt.Sprintf("hardware(%s)", e.Button)
	case KindApp:
		return fmt.Sprintf("app(%s)", e.Command)
	default:
		return e.Kind.String()
	}
}
