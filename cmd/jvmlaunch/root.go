// SPDX-License-Identifier: MPL-2.0

// Package cmd contains all CLI commands for jvmlaunch.
package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"jvmlaunch/internal/issue"

	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	// Version is the semantic version (set via -ldflags).
	Version = "dev"
	// Commit is the git commit hash (set via -ldflags).
	Commit = "unknown"
	// BuildDate is the build timestamp (set via -ldflags).
	BuildDate = "unknown"

	// Verbose enables verbose output
	verbose bool
	// cfgFile allows specifying a custom config file
	cfgFile string

	// rootCmd represents the base command when called without any subcommands
	rootCmd = &cobra.Command{
		Use:   "jvmlaunch",
		Short: "Launch Java programs as child processes",
		Long: TitleStyle.Render("jvmlaunch") + SubtitleStyle.Render(" - Launch Java programs as child processes") + `

jvmlaunch builds a java command line from declarative settings
(heap ceiling, system properties, classpath, library path, environment),
spawns the JVM, and relays its output line by line until it exits.

` + SubtitleStyle.Render("Examples:") + `
  jvmlaunch run com.example.Main             Launch a main class
  jvmlaunch run -m 512 -c app.jar App        Launch with a 512 MB heap ceiling
  jvmlaunch resolve                          Show which java binary would run
  jvmlaunch config show                      Show current configuration`,
	}
)

func init() {
	cobra.OnInitialize(initRootLogging)

	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.config/jvmlaunch/config.cue)")

	// Add subcommands
	rootCmd.AddCommand(newRunCommand(defaultApp))
	rootCmd.AddCommand(newResolveCommand(defaultApp))
	rootCmd.AddCommand(newConfigCommand(defaultApp))
}

// getVersionString returns a formatted version string for display.
func getVersionString() string {
	if Version == "dev" {
		return "dev (built from source)"
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildDate)
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	// Use fang.Execute for enhanced Cobra styling
	// Pass version via fang.WithVersion() since fang overrides rootCmd.Version
	if err := fang.Execute(
		context.Background(),
		rootCmd,
		fang.WithVersion(getVersionString()),
		fang.WithNotifySignal(os.Interrupt),
	); err != nil {
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.Code)
		}
		os.Exit(1)
	}
}

// initRootLogging installs the styled logger as the slog default so the
// launch pipeline's structured logging lands on stderr in CLI form.
func initRootLogging() {
	level := log.WarnLevel
	if verbose {
		level = log.DebugLevel
	}

	handler := log.NewWithOptions(os.Stderr, log.Options{
		Prefix: "jvmlaunch",
		Level:  level,
	})
	slog.SetDefault(slog.New(handler))
}

// formatErrorForDisplay formats an error for user display.
// If the error is an ActionableError, it uses the Format method.
// In verbose mode, shows the full error chain.
func formatErrorForDisplay(err error, verboseMode bool) string {
	var ae *issue.ActionableError
	if errors.As(err, &ae) {
		return ae.Format(verboseMode)
	}
	return err.Error()
}
