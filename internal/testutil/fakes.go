// Package testutil holds fakes for the panel's collaborators and small test
// helpers shared across packages.
package testutil

import (
	"path/filepath"
	"sync"
	"testing"

	"github.com/atomicstack/kiosk-panel/internal/event"
	"github.com/atomicstack/kiosk-panel/internal/logging"
	"github.com/atomicstack/kiosk-panel/internal/process"
	"github.com/atomicstack/kiosk-panel/internal/storage"
)

// QuietLog points the log file at a temp dir for the duration of the test.
func QuietLog(t *testing.T) {
	t.Helper()
	logging.Configure(filepath.Join(t.TempDir(), "test.log"))
	t.Cleanup(func() { logging.Configure("") })
}

// Device is a storage.Device with fixed answers.
type Device struct {
	Mount  string
	Ver    string
	HasVer bool
}

func (d Device) MountPoint() string      { return d.Mount }
func (d Device) Version() (string, bool) { return d.Ver, d.HasVer }

// Finder returns Device (or nothing when nil) and counts queries.
type Finder struct {
	Device storage.Device
	Calls  int
}

func (f *Finder) Find() (storage.Device, bool) {
	f.Calls++
	if f.Device == nil {
		return nil, false
	}
	return f.Device, true
}

// Handle records kill requests.
type Handle struct {
	PID     int
	Kills   int
	KillErr error
}

func (h *Handle) Pid() int     { return h.PID }
func (h *Handle) Exited() bool { return h.Kills > 0 }
func (h *Handle) Kill() error {
	h.Kills++
	return h.KillErr
}

// Spawner records commands and hands out Handles, or fails with Err.
type Spawner struct {
	Err     error
	Spawned []process.Command
	Handles []*Handle
}

func (s *Spawner) Spawn(cmd process.Command) (process.Handle, error) {
	s.Spawned = append(s.Spawned, cmd)
	if s.Err != nil {
		return nil, s.Err
	}
	h := &Handle{PID: 4000 + len(s.Handles)}
	s.Handles = append(s.Handles, h)
	return h, nil
}

// Sender records events. With Refuse set it behaves like a closed bus.
type Sender struct {
	mu     sync.Mutex
	Sent   []event.Event
	Refuse bool
}

func (s *Sender) Send(evt event.Event) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Refuse {
		return false
	}
	s.Sent = append(s.Sent, evt)
	return true
}

// Events returns a copy of what was sent.
func (s *Sender) Events() []event.Event {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]event.Event(nil), s.Sent...)
}
