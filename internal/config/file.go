package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// fileConfig is the YAML layout. Pointer fields distinguish "absent" from a
// zero value so a file only overrides what it names.
type fileConfig struct {
	LogFile      *string        `yaml:"log_file"`
	Trace        *bool          `yaml:"trace"`
	Width        *int           `yaml:"width"`
	Height       *int           `yaml:"height"`
	TickInterval *time.Duration `yaml:"tick_interval"`
	Watch        *bool          `yaml:"watch"`
	GPIO         struct {
		Enabled  *bool          `yaml:"enabled"`
		Chip     *string        `yaml:"chip"`
		Debounce *time.Duration `yaml:"debounce"`
		Poll     *time.Duration `yaml:"poll"`
		Pins     struct {
			Up     *int `yaml:"up"`
			Down   *int `yaml:"down"`
			Select *int `yaml:"select"`
			Back   *int `yaml:"back"`
		} `yaml:"pins"`
	} `yaml:"gpio"`
	Storage struct {
		Prefix  *string `yaml:"prefix"`
		AppName *string `yaml:"app_name"`
	} `yaml:"storage"`
	Launcher struct {
		Name    *string  `yaml:"name"`
		Program *string  `yaml:"program"`
		Args    []string `yaml:"args"`
		Dir     *string  `yaml:"dir"`
	} `yaml:"launcher"`
}

func loadFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}
	var fc fileConfig
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&fc); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("%w: parse %s: %v", ErrInvalid, path, err)
	}
	fc.apply(cfg)
	return nil
}

func (fc *fileConfig) apply(cfg *Config) {
	setString(&cfg.Logging.FilePath, fc.LogFile)
	setBool(&cfg.Logging.Trace, fc.Trace)
	setInt(&cfg.App.Width, fc.Width)
	setInt(&cfg.App.Height, fc.Height)
	setDuration(&cfg.App.TickInterval, fc.TickInterval)
	setBool(&cfg.App.Watch, fc.Watch)

	setBool(&cfg.App.GPIO.Enabled, fc.GPIO.Enabled)
	setString(&cfg.App.GPIO.Chip, fc.GPIO.Chip)
	setDuration(&cfg.App.GPIO.Debounce, fc.GPIO.Debounce)
	setDuration(&cfg.App.GPIO.Poll, fc.GPIO.Poll)
	setInt(&cfg.App.GPIO.Pins.Up, fc.GPIO.Pins.Up)
	setInt(&cfg.App.GPIO.Pins.Down, fc.GPIO.Pins.Down)
	setInt(&cfg.App.GPIO.Pins.Select, fc.GPIO.Pins.Select)
	setInt(&cfg.App.GPIO.Pins.Back, fc.GPIO.Pins.Back)

	setString(&cfg.App.Storage.Prefix, fc.Storage.Prefix)
	setString(&cfg.App.Storage.AppName, fc.Storage.AppName)

	setString(&cfg.App.Launcher.Name, fc.Launcher.Name)
	setString(&cfg.App.Launcher.Program, fc.Launcher.Program)
	setString(&cfg.App.Launcher.Dir, fc.Launcher.Dir)
	if fc.Launcher.Args != nil {
		cfg.App.Launcher.Args = fc.Launcher.Args
	}
}

func setString(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}

func setBool(dst *bool, v *bool) {
	if v != nil {
		*dst = *v
	}
}

func setInt(dst *int, v *int) {
	if v != nil {
		*dst = *v
	}
}

func setDuration(dst *time.Duration, v *time.Duration) {
	if v != nil {
		*dst = *v
	}
}
