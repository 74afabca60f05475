// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"

	"jvmlaunch/internal/issue"
	"jvmlaunch/pkg/jvm"

	"github.com/spf13/cobra"
)

// newResolveCommand creates the `jvmlaunch resolve` command.
func newResolveCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "resolve",
		Short: "Show which java executable would be launched",
		Long: `Resolve the java executable from JAVA_HOME (or the java_home config
override) and print its path. Exits non-zero when no usable executable
is found.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return resolveJava(cmd, app)
		},
	}
}

func resolveJava(cmd *cobra.Command, app *App) error {
	cfg, err := app.loadConfig(cmd.Context())
	if err != nil {
		renderServiceError(app.stderr, newServiceError(err, issue.ConfigLoadFailedId, ""))
		return &ExitError{Code: 1, Err: err}
	}

	snap := app.hostSnapshot(cfg)

	execPath, ok := jvm.ResolveExecutable(snap)
	if !ok {
		notFound := &jvm.ExecutableNotFoundError{JavaHome: snap.JavaHome, OSName: snap.OSName}
		renderServiceError(app.stderr, newServiceError(notFound, issue.JavaNotFoundId, ""))
		return &ExitError{Code: 1, Err: notFound}
	}

	fmt.Fprintf(app.stdout, "%s %s\n", SuccessStyle.Render("✓"), execPath)
	return nil
}
