package tab

import (
	"fmt"

	"github.com/charmbracelet/x/ansi"

	"github.com/atomicstack/kiosk-panel/internal/logging"
	"github.com/atomicstack/kiosk-panel/internal/logging/events"
	"github.com/atomicstack/kiosk-panel/internal/process"
)

// DefaultLauncherName is the menu label used when none is configured.
const DefaultLauncherName = "Smashscope"

// DefaultCommand starts Dolphin in batch mode on boot.dol.
func DefaultCommand() process.Command {
	return process.Command{Program: "dolphin-emu", Args: []string{"-b", "-e", "boot.dol"}}
}

// Launcher hands the screen to an external program while active. A running
// child never outlives the active state: every Close kills it.
type Launcher struct {
	Base

	name    string
	spawner process.Spawner
	cmd     process.Command
	handle  process.Handle
	lastErr error
}

// NewLauncher returns a launcher tab. An empty name falls back to
// DefaultLauncherName.
func NewLauncher(name string, spawner process.Spawner, cmd process.Command) *Launcher {
	if name == "" {
		name = DefaultLauncherName
	}
	return &Launcher{name: name, spawner: spawner, cmd: cmd}
}

func (l *Launcher) Name() string    { return l.name }
func (l *Launcher) Color() ColorTag { return ColorIndigo }

// Command returns the command used by the next Open.
func (l *Launcher) Command() process.Command { return l.cmd }

// SetCommand replaces the command. A running child is left alone.
func (l *Launcher) SetCommand(cmd process.Command) { l.cmd = cmd }

// Handle returns the running child, or nil.
func (l *Launcher) Handle() process.Handle { return l.handle }

// Err returns the most recent spawn failure for the current activation.
func (l *Launcher) Err() error { return l.lastErr }

// Open activates the tab and starts the child. A spawn failure is recorded
// and the tab stays active without a child.
func (l *Launcher) Open() {
	if l.state.Active {
		return
	}
	l.Base.Open()
	l.lastErr = nil
	if l.spawner == nil {
		l.lastErr = fmt.Errorf("launch %s: no spawner", l.cmd.Program)
		return
	}
	h, err := l.spawner.Spawn(l.cmd)
	if err != nil {
		l.lastErr = err
		logging.Errorf("launch", err)
		events.Process.SpawnFailed(l.cmd.Program, err)
		return
	}
	l.handle = h
	events.Process.Spawn(l.cmd.Program, l.cmd.Args, h.Pid())
}

// Close deactivates the tab and kills the child if there is one. Kill
// failures are logged only.
func (l *Launcher) Close() {
	l.Base.Close()
	l.lastErr = nil
	if l.handle == nil {
		return
	}
	h := l.handle
	l.handle = nil
	err := h.Kill()
	if err != nil {
		logging.Errorf("kill launcher child", err)
	}
	events.Process.Kill(h.Pid(), err)
}

func (l *Launcher) Render(frame Frame) []string {
	lines := []string{"Press [OK] to launch Dolphin"}
	if !l.state.Active {
		return lines
	}
	lines = append(lines, "")
	if l.lastErr != nil {
		msg := "Launch failed: " + l.lastErr.Error()
		if frame.Width > 0 {
			msg = ansi.Truncate(msg, frame.Width, "…")
		}
		lines = append(lines, msg)
	} else {
		lines = append(lines, "Launching Dolphin...")
	}
	return append(lines, "Press [BACK] to quit")
}
