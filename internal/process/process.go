// Package process starts and force-terminates external programs on behalf of
// tabs that hand control to another application.
package process

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"sync"
	"sync/atomic"
)

// Command names an external program and its fixed arguments.
type Command struct {
	Program string
	Args    []string
	Dir     string
}

func (c Command) String() string {
	return strings.TrimSpace(c.Program + " " + strings.Join(c.Args, " "))
}

// Handle is a running child. Kill is best-effort: it issues the request and
// does not wait for the child to exit.
type Handle interface {
	Pid() int
	Kill() error
	Exited() bool
}

// Spawner starts programs with their standard streams discarded.
type Spawner interface {
	Spawn(Command) (Handle, error)
}

// ExecSpawner starts real OS processes.
type ExecSpawner struct{}

// Spawn starts cmd without waiting for it. Stdin, stdout and stderr are left
// nil, which exec connects to the null device.
func (ExecSpawner) Spawn(cmd Command) (Handle, error) {
	if strings.TrimSpace(cmd.Program) == "" {
		return nil, errors.New("spawn: empty program")
	}
	c := exec.Command(cmd.Program, cmd.Args...)
	c.Dir = cmd.Dir
	if err := c.Start(); err != nil {
		return nil, fmt.Errorf("spawn %s: %w", cmd.Program, err)
	}
	h := &execHandle{cmd: c, done: make(chan struct{})}
	go h.reap()
	return h, nil
}

type execHandle struct {
	cmd      *exec.Cmd
	exited   atomic.Bool
	done     chan struct{}
	killOnce sync.Once
	killErr  error
}

func (h *execHandle) Pid() int {
	if h.cmd.Process == nil {
		return 0
	}
	return h.cmd.Process.Pid
}

func (h *execHandle) Kill() error {
	h.killOnce.Do(func() {
		if h.exited.Load() {
			return
		}
		if err := h.cmd.Process.Kill(); err != nil && !errors.Is(err, os.ErrProcessDone) {
			h.killErr = fmt.Errorf("kill pid %d: %w", h.Pid(), err)
		}
	})
	return h.killErr
}

func (h *execHandle) Exited() bool {
	return h.exited.Load()
}

// Done is closed once the child has been reaped.
func (h *execHandle) Done() <-chan struct{} {
	return h.done
}

func (h *execHandle) reap() {
	_ = h.cmd.Wait()
	h.exited.Store(true)
	close(h.done)
}
