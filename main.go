package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/atomicstack/kiosk-panel/internal/app"
	"github.com/atomicstack/kiosk-panel/internal/config"
	"github.com/atomicstack/kiosk-panel/internal/logging"
	"github.com/atomicstack/kiosk-panel/internal/logging/events"
)

// version is overridden at build time with -ldflags "-X main.version=...".
var version = "0.1.0"

const (
	exitRuntime = 1
	exitConfig  = 2
)

// exitError carries the process exit code out of a cobra RunE.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string { return e.err.Error() }
func (e *exitError) Unwrap() error { return e.err }

type runFunc func(app.Config, app.ReloadFunc) error

func main() {
	os.Exit(execute(os.Args[1:], os.Environ(), os.Stderr, app.Run))
}

func execute(args, environ []string, stderr io.Writer, run runFunc) int {
	cmd := newRootCommand(args, environ, run)
	cmd.SetArgs(args)
	err := cmd.Execute()
	if err == nil {
		return 0
	}
	var exit *exitError
	if errors.As(err, &exit) {
		if exit.code == exitConfig {
			fmt.Fprintf(stderr, "Configuration error: %v\n", exit.err)
		} else {
			fmt.Fprintf(stderr, "Error: %v\n", exit.err)
		}
		return exit.code
	}
	// cobra reports flag parsing failures here
	fmt.Fprintf(stderr, "Configuration error: %v\n", err)
	return exitConfig
}

func newRootCommand(args, environ []string, run runFunc) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "kiosk-panel",
		Short:         "Button-driven control panel for a kiosk console",
		Version:       version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	config.RegisterFlags(cmd.Flags())
	cmd.RunE = func(cmd *cobra.Command, _ []string) error {
		runtimeCfg, err := config.FromFlags(cmd.Flags(), environ)
		if err == nil {
			err = config.Validate(runtimeCfg)
		}
		if err != nil {
			return &exitError{code: exitConfig, err: err}
		}
		runtimeCfg.Args = append([]string(nil), args...)
		runtimeCfg.App.Version = version

		logging.Configure(runtimeCfg.Logging.FilePath)
		logging.SetTraceEnabled(runtimeCfg.Logging.Trace)
		traceStartup(runtimeCfg)

		reload := func() (app.Config, error) {
			next, err := config.FromFlags(cmd.Flags(), environ)
			if err == nil {
				err = config.Validate(next)
			}
			if err != nil {
				return app.Config{}, err
			}
			return next.App, nil
		}
		if err := run(runtimeCfg.App, reload); err != nil {
			logging.Error(err)
			return &exitError{code: exitRuntime, err: err}
		}
		return nil
	}
	return cmd
}

func traceStartup(cfg config.Config) {
	events.App.Start(startupTracePayload(cfg))
}

// startupTracePayload bundles runtime context for trace logging.
func startupTracePayload(cfg config.Config) map[string]interface{} {
	flags := make(map[string]interface{}, len(cfg.Flags))
	for k, v := range cfg.Flags {
		flags[k] = v
	}
	flags["trace"] = cfg.Logging.Trace
	flags["logFile"] = cfg.Logging.FilePath
	payload := map[string]interface{}{
		"argv":   cfg.Args,
		"flags":  flags,
		"config": cfg,
	}
	if exe, err := os.Executable(); err == nil {
		payload["executable"] = exe
	} else {
		payload["executableError"] = err.Error()
	}
	if cwd, err := os.Getwd(); err == nil {
		payload["cwd"] = cwd
	} else {
		payload["cwdError"] = err.Error()
	}
	payload["tty"] = collectTTYDetails()
	return payload
}

type ttyDetails struct {
	Detected *ttyDetected     `json:"detected,omitempty"`
	Probes   []ttyProbeResult `json:"probes"`
}

type ttyDetected struct {
	Source string `json:"source"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

type ttyProbeResult struct {
	Name       string `json:"name"`
	IsTerminal bool   `json:"is_terminal"`
	Width      int    `json:"width,omitempty"`
	Height     int    `json:"height,omitempty"`
	Error      string `json:"error,omitempty"`
}

// collectTTYDetails inspects standard descriptors for terminal support and dimensions.
func collectTTYDetails() ttyDetails {
	probes := []struct {
		name string
		fd   uintptr
	}{
		{"stdin", os.Stdin.Fd()},
		{"stdout", os.Stdout.Fd()},
		{"stderr", os.Stderr.Fd()},
	}
	results := make([]ttyProbeResult, 0, len(probes))
	var detected *ttyDetected
	for _, probe := range probes {
		entry := ttyProbeResult{Name: probe.name}
		fd := int(probe.fd)
		if fd >= 0 && term.IsTerminal(fd) {
			entry.IsTerminal = true
			if width, height, err := term.GetSize(fd); err == nil {
				entry.Width = width
				entry.Height = height
				if detected == nil {
					detected = &ttyDetected{Source: probe.name, Width: width, Height: height}
				}
			} else {
				entry.Error = err.Error()
			}
		} else {
			entry.IsTerminal = false
		}
		results = append(results, entry)
	}
	return ttyDetails{Detected: detected, Probes: results}
}
