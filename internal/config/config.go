package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/pflag"

	"github.com/atomicstack/kiosk-panel/internal/app"
	"github.com/atomicstack/kiosk-panel/internal/backend"
	"github.com/atomicstack/kiosk-panel/internal/gpio"
	"github.com/atomicstack/kiosk-panel/internal/storage"
	"github.com/atomicstack/kiosk-panel/internal/tab"
)

// ErrInvalid marks configuration that parsed but cannot be used.
var ErrInvalid = errors.New("invalid configuration")

// Config captures runtime configuration for the application.
type Config struct {
	App     app.Config
	Logging Logging
	Flags   map[string]string
	Args    []string
}

type Logging struct {
	FilePath string
	Trace    bool
}

const (
	envPrefix       = "KIOSK_PANEL_"
	envConfigFile   = envPrefix + "CONFIG"
	envLauncherArgs = envPrefix + "LAUNCHER_ARGS"

	flagConfig      = "config"
	flagLauncherArg = "launcher-arg"
)

// Defaults returns the built-in configuration.
func Defaults() Config {
	cmd := tab.DefaultCommand()
	return Config{
		App: app.Config{
			TickInterval: backend.DefaultTickInterval,
			GPIO: app.GPIO{
				Enabled:  true,
				Chip:     gpio.DefaultChip,
				Pins:     gpio.DefaultPins(),
				Debounce: gpio.DefaultDebounce,
				Poll:     gpio.DefaultPoll,
			},
			Storage: app.Storage{
				Prefix:  storage.DefaultPrefix,
				AppName: storage.DefaultAppName,
			},
			Launcher: app.Launcher{
				Name:    tab.DefaultLauncherName,
				Program: cmd.Program,
				Args:    cmd.Args,
			},
			Watch: true,
		},
	}
}

type kind int

const (
	kindString kind = iota
	kindInt
	kindBool
	kindDuration
)

// option binds one setting to its flag and environment variable.
type option struct {
	name  string
	kind  kind
	usage string
	get   func(*Config) string
	set   func(*Config, string) error
}

func (o option) env() string {
	return envPrefix + strings.ToUpper(strings.ReplaceAll(o.name, "-", "_"))
}

func stringOpt(name, usage string, field func(*Config) *string) option {
	return option{
		name: name, kind: kindString, usage: usage,
		get: func(c *Config) string { return *field(c) },
		set: func(c *Config, v string) error {
			*field(c) = v
			return nil
		},
	}
}

func intOpt(name, usage string, field func(*Config) *int) option {
	return option{
		name: name, kind: kindInt, usage: usage,
		get: func(c *Config) string { return strconv.Itoa(*field(c)) },
		set: func(c *Config, v string) error {
			n, err := strconv.Atoi(strings.TrimSpace(v))
			if err != nil {
				return err
			}
			*field(c) = n
			return nil
		},
	}
}

func boolOpt(name, usage string, field func(*Config) *bool) option {
	return option{
		name: name, kind: kindBool, usage: usage,
		get: func(c *Config) string { return strconv.FormatBool(*field(c)) },
		set: func(c *Config, v string) error {
			b, err := strconv.ParseBool(strings.TrimSpace(v))
			if err != nil {
				return err
			}
			*field(c) = b
			return nil
		},
	}
}

func durationOpt(name, usage string, field func(*Config) *time.Duration) option {
	return option{
		name: name, kind: kindDuration, usage: usage,
		get: func(c *Config) string { return field(c).String() },
		set: func(c *Config, v string) error {
			d, err := time.ParseDuration(strings.TrimSpace(v))
			if err != nil {
				return err
			}
			*field(c) = d
			return nil
		},
	}
}

var options = []option{
	stringOpt("log-file", "path to the log file", func(c *Config) *string { return &c.Logging.FilePath }),
	boolOpt("trace", "enable verbose JSON trace logging", func(c *Config) *bool { return &c.Logging.Trace }),
	intOpt("width", "fixed layout width in cells (0 uses terminal width)", func(c *Config) *int { return &c.App.Width }),
	intOpt("height", "fixed layout height in rows (0 uses terminal height)", func(c *Config) *int { return &c.App.Height }),
	durationOpt("tick", "interval between periodic ticks", func(c *Config) *time.Duration { return &c.App.TickInterval }),
	boolOpt("watch", "reload the launcher command when the config file changes", func(c *Config) *bool { return &c.App.Watch }),
	boolOpt("gpio", "read buttons from GPIO lines", func(c *Config) *bool { return &c.App.GPIO.Enabled }),
	stringOpt("gpio-chip", "GPIO character device name or path", func(c *Config) *string { return &c.App.GPIO.Chip }),
	durationOpt("debounce", "per-button debounce window", func(c *Config) *time.Duration { return &c.App.GPIO.Debounce }),
	durationOpt("poll", "GPIO poll timeout", func(c *Config) *time.Duration { return &c.App.GPIO.Poll }),
	intOpt("pin-up", "line offset of the up/left button", func(c *Config) *int { return &c.App.GPIO.Pins.Up }),
	intOpt("pin-down", "line offset of the down/right button", func(c *Config) *int { return &c.App.GPIO.Pins.Down }),
	intOpt("pin-select", "line offset of the OK button", func(c *Config) *int { return &c.App.GPIO.Pins.Select }),
	intOpt("pin-back", "line offset of the back button", func(c *Config) *int { return &c.App.GPIO.Pins.Back }),
	stringOpt("media-prefix", "mount point prefix of removable media", func(c *Config) *string { return &c.App.Storage.Prefix }),
	stringOpt("app-name", "application name looked up in apps/*/meta.xml", func(c *Config) *string { return &c.App.Storage.AppName }),
	stringOpt("launcher-name", "menu label of the launcher tab", func(c *Config) *string { return &c.App.Launcher.Name }),
	stringOpt("launcher-program", "program started by the launcher tab", func(c *Config) *string { return &c.App.Launcher.Program }),
	stringOpt("launcher-dir", "working directory of the launched program", func(c *Config) *string { return &c.App.Launcher.Dir }),
}

// RegisterFlags adds every configuration flag to fs. Flag defaults show the
// built-in values; only flags set explicitly override other sources.
func RegisterFlags(fs *pflag.FlagSet) {
	defaults := Defaults()
	fs.String(flagConfig, "", "path to a YAML config file (default ~/.config/kiosk-panel/config.yaml)")
	for _, opt := range options {
		def := opt.get(&defaults)
		switch opt.kind {
		case kindInt:
			n, _ := strconv.Atoi(def)
			fs.Int(opt.name, n, opt.usage)
		case kindBool:
			fs.Bool(opt.name, def == "true", opt.usage)
		case kindDuration:
			d, _ := time.ParseDuration(def)
			fs.Duration(opt.name, d, opt.usage)
		default:
			fs.String(opt.name, def, opt.usage)
		}
	}
	fs.StringArray(flagLauncherArg, defaults.App.Launcher.Args, "argument passed to the launched program (repeatable)")
}

// LoadArgs allows tests to supply specific args/environment.
func LoadArgs(args []string, environ []string) (Config, error) {
	fs := pflag.NewFlagSet("kiosk-panel", pflag.ContinueOnError)
	fs.SetOutput(new(strings.Builder))
	RegisterFlags(fs)
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	cfg, err := FromFlags(fs, environ)
	if err != nil {
		return Config{}, err
	}
	cfg.Args = append([]string(nil), args...)
	return cfg, nil
}

// FromFlags resolves configuration from an already parsed flag set. The
// precedence is defaults, then the YAML file, then KIOSK_PANEL_* variables,
// then flags set on the command line. It can be called again later to
// re-read the file with the same overrides.
func FromFlags(fs *pflag.FlagSet, environ []string) (Config, error) {
	env := parseEnv(environ)
	cfg := Defaults()

	path, explicit := configPath(fs, env)
	if path != "" {
		err := loadFile(path, &cfg)
		switch {
		case err == nil:
			cfg.App.ConfigFile = path
		case explicit || !errors.Is(err, os.ErrNotExist):
			return Config{}, err
		}
	}

	for _, opt := range options {
		v, ok := env[opt.env()]
		if !ok || strings.TrimSpace(v) == "" {
			continue
		}
		if err := opt.set(&cfg, v); err != nil {
			return Config{}, fmt.Errorf("%w: %s=%q: %v", ErrInvalid, opt.env(), v, err)
		}
	}
	if v, ok := env[envLauncherArgs]; ok {
		cfg.App.Launcher.Args = strings.Fields(v)
	}

	if fs != nil {
		for _, opt := range options {
			f := fs.Lookup(opt.name)
			if f == nil || !f.Changed {
				continue
			}
			if err := opt.set(&cfg, f.Value.String()); err != nil {
				return Config{}, fmt.Errorf("%w: --%s: %v", ErrInvalid, opt.name, err)
			}
		}
		if f := fs.Lookup(flagLauncherArg); f != nil && f.Changed {
			args, err := fs.GetStringArray(flagLauncherArg)
			if err != nil {
				return Config{}, err
			}
			cfg.App.Launcher.Args = args
		}
	}

	cfg.Flags = make(map[string]string, len(options)+2)
	for _, opt := range options {
		cfg.Flags[opt.name] = opt.get(&cfg)
	}
	cfg.Flags[flagConfig] = cfg.App.ConfigFile
	cfg.Flags[flagLauncherArg] = strings.Join(cfg.App.Launcher.Args, " ")
	return cfg, nil
}

// configPath returns the file to read and whether it was asked for
// explicitly. A missing default file is not an error.
func configPath(fs *pflag.FlagSet, env map[string]string) (string, bool) {
	if fs != nil {
		if f := fs.Lookup(flagConfig); f != nil && f.Changed && f.Value.String() != "" {
			return f.Value.String(), true
		}
	}
	if v := strings.TrimSpace(env[envConfigFile]); v != "" {
		return v, true
	}
	if home := strings.TrimSpace(env["HOME"]); home != "" {
		return filepath.Join(home, ".config", "kiosk-panel", "config.yaml"), false
	}
	return "", false
}

func parseEnv(environ []string) map[string]string {
	values := make(map[string]string, len(environ))
	for _, entry := range environ {
		if entry == "" {
			continue
		}
		parts := strings.SplitN(entry, "=", 2)
		if len(parts) != 2 {
			continue
		}
		values[parts[0]] = parts[1]
	}
	return values
}

// Validate ensures the configuration can drive the panel.
func Validate(cfg Config) error {
	a := cfg.App
	if a.Width < 0 {
		return fmt.Errorf("%w: width must be >= 0 (got %d)", ErrInvalid, a.Width)
	}
	if a.Height < 0 {
		return fmt.Errorf("%w: height must be >= 0 (got %d)", ErrInvalid, a.Height)
	}
	for _, d := range []struct {
		name  string
		value time.Duration
	}{
		{"tick", a.TickInterval},
		{"debounce", a.GPIO.Debounce},
		{"poll", a.GPIO.Poll},
	} {
		if d.value <= 0 {
			return fmt.Errorf("%w: %s must be positive (got %s)", ErrInvalid, d.name, d.value)
		}
	}
	if err := a.GPIO.Pins.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	if strings.TrimSpace(a.Launcher.Program) == "" {
		return fmt.Errorf("%w: launcher program is empty", ErrInvalid)
	}
	return nil
}
