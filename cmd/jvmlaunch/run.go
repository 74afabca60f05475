// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"errors"
	"fmt"
	"strings"

	"jvmlaunch/internal/config"
	"jvmlaunch/internal/issue"
	"jvmlaunch/pkg/hostinfo"
	"jvmlaunch/pkg/jvm"

	"github.com/spf13/cobra"
)

// runOptions captures all `jvmlaunch run` flag values.
type runOptions struct {
	maxMemoryMB      int64
	defaultMaxMemory bool
	props            []string
	classPath        string
	prependClassPath []string
	libraryPath      string
	prependLibPath   []string
	envVars          []string
	prependEnv       []string
	noHostEnv        bool
}

// newRunCommand creates the `jvmlaunch run` command.
func newRunCommand(app *App) *cobra.Command {
	opts := &runOptions{}

	runCmd := &cobra.Command{
		Use:   "run <main-class> [args...]",
		Short: "Launch a Java main class and relay its output",
		Long: `Launch a Java main class as a child JVM process.

The java executable is resolved from JAVA_HOME (or the java_home config
override). Host environment variables, the heap ceiling, and CLASSPATH
are captured as launch defaults; flags refine them. The child's stdout
and stderr are relayed line by line until both streams close.

Arguments after the main class are passed to the program verbatim.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMain(cmd, app, opts, args[0], args[1:])
		},
	}

	flags := runCmd.Flags()
	flags.Int64VarP(&opts.maxMemoryMB, "max-memory", "m", 0, "heap ceiling in megabytes (-Xmx)")
	flags.BoolVar(&opts.defaultMaxMemory, "default-max-memory", false, "let the JVM pick its own heap ceiling")
	flags.StringArrayVarP(&opts.props, "prop", "D", nil, "system property as key=value (repeatable, order preserved)")
	flags.StringVarP(&opts.classPath, "classpath", "c", "", "replace the class path")
	flags.StringArrayVar(&opts.prependClassPath, "prepend-classpath", nil, "prepend an entry to the class path (repeatable)")
	flags.StringVar(&opts.libraryPath, "library-path", "", "replace the native library path")
	flags.StringArrayVar(&opts.prependLibPath, "prepend-library-path", nil, "prepend an entry to the native library path (repeatable)")
	flags.StringArrayVarP(&opts.envVars, "env", "e", nil, "set a child environment variable as KEY=VALUE (repeatable)")
	flags.StringArrayVar(&opts.prependEnv, "prepend-env", nil, "prepend to a child environment variable as KEY=VALUE (repeatable, key match is case-insensitive)")
	flags.BoolVar(&opts.noHostEnv, "no-host-env", false, "start the child from an empty environment instead of the host's")

	return runCmd
}

// runMain loads config, assembles launch settings, and performs the launch.
func runMain(cmd *cobra.Command, app *App, opts *runOptions, mainClass string, appArgs []string) error {
	ctx := cmd.Context()

	cfg, err := app.loadConfig(ctx)
	if err != nil {
		svcErr := newServiceError(err, issue.ConfigLoadFailedId, "")
		renderServiceError(app.stderr, svcErr)
		return &ExitError{Code: 1, Err: err}
	}

	snap := app.hostSnapshot(cfg)

	settings, err := buildRunSettings(opts, cfg, snap, cmd.Flags().Changed("max-memory"), mainClass, appArgs)
	if err != nil {
		var svcErr *ServiceError
		if errors.As(err, &svcErr) {
			renderServiceError(app.stderr, svcErr)
		}
		return &ExitError{Code: 1, Err: err}
	}

	if err := app.launcherFor(snap).Launch(ctx, settings); err != nil {
		switch {
		case errors.Is(err, jvm.ErrExecutableNotFound):
			renderServiceError(app.stderr, newServiceError(err, issue.JavaNotFoundId, ""))
		case errors.Is(err, jvm.ErrLaunchFailed):
			renderServiceError(app.stderr, newServiceError(err, issue.LaunchFailedId, ""))
		}
		return &ExitError{Code: 1, Err: err}
	}

	return nil
}

// buildRunSettings turns host state, configuration, and flags into launch
// settings. Precedence for the heap ceiling: -m flag, then host snapshot,
// then default_max_memory_mb from config; --default-max-memory wins over all.
func buildRunSettings(opts *runOptions, cfg *config.Config, snap hostinfo.Snapshot, maxMemorySet bool, mainClass string, appArgs []string) (*jvm.Settings, error) {
	if strings.TrimSpace(mainClass) == "" {
		return nil, newServiceError(fmt.Errorf("main class must not be empty"), issue.MainClassMissingId, "")
	}

	settings := jvm.NewSettingsFromSnapshot(snap)
	settings.SetMainClass(mainClass)
	settings.SetArguments(appArgs)

	if opts.noHostEnv {
		settings.SetEnvironment(nil)
	}

	switch {
	case opts.defaultMaxMemory:
		settings.SetUseDefaultMaxMemory(true)
	case maxMemorySet:
		settings.SetMaxMemoryMegabytes(opts.maxMemoryMB)
	case settings.MaxMemoryMegabytes() > 0:
		// The host snapshot carried a ceiling; pin it so the config
		// default cannot overwrite it.
		settings.SetMaxMemoryMegabytes(settings.MaxMemoryMegabytes())
	case cfg != nil && cfg.DefaultMaxMemoryMB > 0:
		settings.SetMaxMemoryMegabytes(cfg.DefaultMaxMemoryMB)
	}

	for _, kv := range opts.props {
		key, value, ok := strings.Cut(kv, "=")
		if !ok || key == "" {
			return nil, fmt.Errorf("invalid --prop %q: expected key=value", kv)
		}
		settings.Properties().Set(key, value)
	}

	if opts.classPath != "" {
		settings.SetClassPath(opts.classPath)
	}
	for _, entry := range opts.prependClassPath {
		settings.PrependToClassPath(entry)
	}

	if opts.libraryPath != "" {
		settings.SetLibraryPath(opts.libraryPath)
	}
	for _, entry := range opts.prependLibPath {
		settings.PrependToLibraryPath(entry)
	}

	for _, kv := range opts.envVars {
		key, value, ok := strings.Cut(kv, "=")
		if !ok || key == "" {
			return nil, fmt.Errorf("invalid --env %q: expected KEY=VALUE", kv)
		}
		settings.Environment()[key] = value
	}

	for _, kv := range opts.prependEnv {
		key, value, ok := strings.Cut(kv, "=")
		if !ok || key == "" {
			return nil, fmt.Errorf("invalid --prepend-env %q: expected KEY=VALUE", kv)
		}
		settings.PrependToEnvFold(key, value)
	}

	return settings, nil
}
