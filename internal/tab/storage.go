package tab

import (
	"fmt"

	"github.com/atomicstack/kiosk-panel/internal/logging/events"
	"github.com/atomicstack/kiosk-panel/internal/storage"
)

// Storage reports whether a removable card is present and which version of
// the target application it carries.
type Storage struct {
	Base

	finder  storage.Finder
	device  storage.Device
	version string
	hasVer  bool
}

// NewStorage returns the "SD Card" tab backed by finder.
func NewStorage(finder storage.Finder) *Storage {
	return &Storage{finder: finder}
}

func (s *Storage) Name() string    { return "SD Card" }
func (s *Storage) Color() ColorTag { return ColorGreen }

// Open queries the device once per activation. Reopening an active tab keeps
// the existing snapshot.
func (s *Storage) Open() {
	if s.state.Active {
		return
	}
	s.Base.Open()
	s.device = nil
	s.version, s.hasVer = "", false
	if s.finder == nil {
		return
	}
	dev, ok := s.finder.Find()
	if !ok {
		events.Storage.Query(false, "")
		return
	}
	s.device = dev
	events.Storage.Query(true, dev.MountPoint())
	s.version, s.hasVer = dev.Version()
	events.Storage.Version(dev.MountPoint(), s.version, s.hasVer)
}

func (s *Storage) Close() {
	s.Base.Close()
	if s.device != nil {
		events.Storage.Discard(s.device.MountPoint())
	}
	s.device = nil
	s.version, s.hasVer = "", false
}

func (s *Storage) Render(Frame) []string {
	if !s.state.Active {
		return nil
	}
	if s.device == nil {
		return []string{"No SD Card!"}
	}
	lines := []string{"Found SD Card!"}
	if s.hasVer {
		lines = append(lines, fmt.Sprintf("Slippi Version: %s", s.version))
	} else {
		lines = append(lines, "No Slippi Nintendont Installation!")
	}
	return lines
}
