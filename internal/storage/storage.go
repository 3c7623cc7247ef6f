// Package storage locates removable media and reads the version of an
// application installed on it.
package storage

import (
	"encoding/xml"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/shirou/gopsutil/v4/disk"

	"github.com/atomicstack/kiosk-panel/internal/logging"
)

const (
	DefaultPrefix  = "/media/"
	DefaultAppName = "Slippi Nintendont"
)

// Finder reports the first attached storage device, if any.
type Finder interface {
	Find() (Device, bool)
}

// Device is an attached storage device.
type Device interface {
	MountPoint() string
	Version() (string, bool)
}

// MountFinder picks the first mounted partition below Prefix.
type MountFinder struct {
	Prefix  string
	AppName string

	partitions func() ([]disk.PartitionStat, error)
}

// NewMountFinder returns a finder backed by the system partition table.
func NewMountFinder(prefix, appName string) *MountFinder {
	if strings.TrimSpace(prefix) == "" {
		prefix = DefaultPrefix
	}
	if strings.TrimSpace(appName) == "" {
		appName = DefaultAppName
	}
	return &MountFinder{
		Prefix:     prefix,
		AppName:    appName,
		partitions: func() ([]disk.PartitionStat, error) { return disk.Partitions(false) },
	}
}

// Find lists partitions and returns the first whose mount point starts with
// the configured prefix. Mount points are compared in sorted order so repeated
// queries are stable.
func (f *MountFinder) Find() (Device, bool) {
	list := f.partitions
	if list == nil {
		list = func() ([]disk.PartitionStat, error) { return disk.Partitions(false) }
	}
	parts, err := list()
	if err != nil {
		logging.Errorf("list partitions", err)
		if len(parts) == 0 {
			return nil, false
		}
	}
	mounts := make([]string, 0, len(parts))
	for _, p := range parts {
		if strings.HasPrefix(p.Mountpoint, f.Prefix) {
			mounts = append(mounts, p.Mountpoint)
		}
	}
	if len(mounts) == 0 {
		return nil, false
	}
	sort.Strings(mounts)
	return Card{Path: mounts[0], AppName: f.AppName}, true
}

// Card is a mounted device identified by its mount point.
type Card struct {
	Path    string
	AppName string
}

func (c Card) MountPoint() string { return c.Path }

// Version scans <mount>/apps/*/meta.xml for the application named AppName
// and returns its declared version.
func (c Card) Version() (string, bool) {
	matches, err := filepath.Glob(filepath.Join(c.Path, "apps", "*", "meta.xml"))
	if err != nil {
		logging.Errorf("scan apps", err)
		return "", false
	}
	sort.Strings(matches)
	for _, path := range matches {
		meta, err := readMeta(path)
		if err != nil {
			logging.Error(err)
			continue
		}
		if strings.TrimSpace(meta.Name) != c.AppName {
			continue
		}
		version := strings.TrimSpace(meta.Version)
		if version == "" {
			return "", false
		}
		return version, true
	}
	return "", false
}

type appMeta struct {
	XMLName xml.Name `xml:"app"`
	Name    string   `xml:"name"`
	Version string   `xml:"version"`
}

func readMeta(path string) (appMeta, error) {
	var meta appMeta
	data, err := os.ReadFile(path)
	if err != nil {
		return meta, fmt.Errorf("read %s: %w", path, err)
	}
	if err := xml.Unmarshal(data, &meta); err != nil {
		return meta, fmt.Errorf("parse %s: %w", path, err)
	}
	return meta, nil
}
