// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"fmt"
	"io"
	"os"

	"jvmlaunch/internal/config"
	"jvmlaunch/pkg/hostinfo"
	"jvmlaunch/pkg/jvm"
)

type (
	// App wires CLI services and shared dependencies. It is the composition root
	// for the CLI layer — all Cobra command handlers receive an App reference and
	// delegate business logic through its service interfaces.
	App struct {
		Config   ConfigProvider
		Launcher jvm.Launcher
		Snapshot func() hostinfo.Snapshot
		stdout   io.Writer
		stderr   io.Writer
	}

	// Dependencies defines the injection points for building an App. Nil fields
	// are replaced with production defaults by NewApp. Tests can supply mock
	// implementations to isolate specific service behavior.
	Dependencies struct {
		Config   ConfigProvider
		Launcher jvm.Launcher
		Snapshot func() hostinfo.Snapshot
		Stdout   io.Writer
		Stderr   io.Writer
	}

	// ConfigProvider loads configuration using explicit options.
	// This abstraction enables testing with custom config sources or mock implementations.
	ConfigProvider interface {
		Load(ctx context.Context, opts config.LoadOptions) (*config.Config, error)
	}
)

// defaultApp is the production App used by the root command tree.
var defaultApp = NewApp(Dependencies{})

// NewApp creates an App with defaults for omitted dependencies.
func NewApp(deps Dependencies) *App {
	if deps.Stdout == nil {
		deps.Stdout = os.Stdout
	}
	if deps.Stderr == nil {
		deps.Stderr = os.Stderr
	}
	if deps.Config == nil {
		deps.Config = config.NewProvider()
	}
	if deps.Snapshot == nil {
		deps.Snapshot = hostinfo.Capture
	}

	return &App{
		Config:   deps.Config,
		Launcher: deps.Launcher,
		Snapshot: deps.Snapshot,
		stdout:   deps.Stdout,
		stderr:   deps.Stderr,
	}
}

// loadConfig loads configuration honoring the --config persistent flag. On
// failure it warns and falls back to defaults so commands stay operational;
// an explicit --config path is the exception and aborts.
func (a *App) loadConfig(ctx context.Context) (*config.Config, error) {
	cfg, err := a.Config.Load(ctx, config.LoadOptions{ConfigFilePath: cfgFile})
	if err == nil {
		return cfg, nil
	}

	// When the user explicitly specified a config path, do not silently fall
	// back to defaults.
	if cfgFile != "" {
		return nil, err
	}

	fmt.Fprintln(a.stderr, WarningStyle.Render("Warning: ")+formatErrorForDisplay(err, verbose))
	return config.DefaultConfig(), nil
}

// hostSnapshot captures host state and applies the java_home config override.
func (a *App) hostSnapshot(cfg *config.Config) hostinfo.Snapshot {
	snap := a.Snapshot()
	if cfg != nil && cfg.JavaHome != "" {
		snap.JavaHome = string(cfg.JavaHome)
	}
	return snap
}

// launcherFor returns the injected launcher, or a process launcher that
// resolves against the given snapshot and relays onto the App's writers.
func (a *App) launcherFor(snap hostinfo.Snapshot) jvm.Launcher {
	if a.Launcher != nil {
		return a.Launcher
	}
	return &jvm.CommandLauncher{
		Stdout: a.stdout,
		Stderr: a.stderr,
		Host:   &snap,
	}
}
