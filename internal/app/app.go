package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/atomicstack/kiosk-panel/internal/backend"
	"github.com/atomicstack/kiosk-panel/internal/event"
	"github.com/atomicstack/kiosk-panel/internal/gpio"
	"github.com/atomicstack/kiosk-panel/internal/logging"
	"github.com/atomicstack/kiosk-panel/internal/logging/events"
	"github.com/atomicstack/kiosk-panel/internal/process"
	"github.com/atomicstack/kiosk-panel/internal/storage"
	"github.com/atomicstack/kiosk-panel/internal/tab"
	"github.com/atomicstack/kiosk-panel/internal/ui"
)

// Config describes user-provided application options.
type Config struct {
	Version      string
	Width        int
	Height       int
	TickInterval time.Duration
	GPIO         GPIO
	Storage      Storage
	Launcher     Launcher
	// ConfigFile is the YAML file the config was read from, if any.
	ConfigFile string
	Watch      bool
}

type GPIO struct {
	Enabled  bool
	Chip     string
	Pins     gpio.Pins
	Debounce time.Duration
	Poll     time.Duration
}

type Storage struct {
	Prefix  string
	AppName string
}

type Launcher struct {
	Name    string
	Program string
	Args    []string
	Dir     string
}

// Command returns the process command the launcher tab starts.
func (l Launcher) Command() process.Command {
	return process.Command{
		Program: l.Program,
		Args:    append([]string(nil), l.Args...),
		Dir:     l.Dir,
	}
}

// ReloadFunc re-reads configuration from the sources used at startup.
type ReloadFunc func() (Config, error)

// Run bootstraps and executes the Bubble Tea program. Every exit path closes
// the active tab, so a launched child is always killed.
func Run(cfg Config, reload ReloadFunc) error {
	lipgloss.SetColorProfile(termenv.ANSI256)

	bus := event.NewBus()
	ctx, cancel := context.WithCancel(context.Background())

	launcher := tab.NewLauncher(cfg.Launcher.Name, process.ExecSpawner{}, cfg.Launcher.Command())
	model := ui.NewModel(ui.Options{
		Bus:     bus,
		Tabs:    buildTabs(cfg, launcher),
		Version: cfg.Version,
		Width:   cfg.Width,
		Height:  cfg.Height,
		Reload:  reloader(launcher, reload),
	})
	defer bus.Close()
	defer cancel()
	defer model.Shutdown()

	ticker := backend.NewTicker(ctx, bus, cfg.TickInterval)
	defer ticker.Stop()

	startGPIO(cfg.GPIO, bus)

	if cfg.Watch && cfg.ConfigFile != "" {
		if err := watchConfig(ctx, cfg.ConfigFile, bus); err != nil {
			logging.Errorf("watch config", err)
		}
	}

	program := tea.NewProgram(model, tea.WithAltScreen())
	_, err := program.Run()
	switch {
	case err == nil:
		events.App.Stop("quit")
	case errors.Is(err, tea.ErrProgramKilled), errors.Is(err, tea.ErrInterrupted):
		events.App.Stop("signal")
		return nil
	default:
		events.App.Stop(err.Error())
		return fmt.Errorf("run program: %w", err)
	}
	return nil
}

func buildTabs(cfg Config, launcher *tab.Launcher) []tab.Tab {
	finder := storage.NewMountFinder(cfg.Storage.Prefix, cfg.Storage.AppName)
	return []tab.Tab{
		tab.NewStorage(finder),
		tab.NewReplays(),
		launcher,
		tab.NewExit(),
	}
}

// reloader applies a re-read config to the live tabs. Only the launcher
// command can change at runtime; it takes effect on the next open.
func reloader(launcher *tab.Launcher, reload ReloadFunc) func() error {
	if reload == nil {
		return nil
	}
	return func() error {
		next, err := reload()
		if err != nil {
			return err
		}
		launcher.SetCommand(next.Launcher.Command())
		return nil
	}
}

// startGPIO runs the hardware monitor in the background. Without a usable
// chip the panel keeps working on terminal input alone.
func startGPIO(cfg GPIO, bus *event.Bus) {
	if !cfg.Enabled {
		return
	}
	src, err := gpio.OpenChip(cfg.Chip, cfg.Pins.Offsets(), cfg.Debounce)
	if err != nil {
		logging.Errorf("open gpio", err)
		events.GPIO.Unavailable(cfg.Chip, err)
		return
	}
	monitor := gpio.NewMonitor(src, cfg.Pins, cfg.Debounce, cfg.Poll, bus)
	go func() {
		defer src.Close()
		if err := monitor.Run(); err != nil {
			logging.Errorf("gpio monitor", err)
		}
	}()
}
