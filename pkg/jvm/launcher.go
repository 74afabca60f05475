// SPDX-License-Identifier: MPL-2.0

package jvm

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"strings"

	"jvmlaunch/pkg/hostinfo"
)

type (
	// Launcher starts a JVM child process from launch settings.
	Launcher interface {
		// Launch starts the child and blocks until its stdout and
		// stderr are fully drained. Stream closure is the completion
		// signal; the child's exit status is not part of the contract.
		Launch(ctx context.Context, settings *Settings) error
	}

	// CommandLauncher launches the JVM as an OS child process via the
	// java executable resolved under the host's Java home.
	//
	// A CommandLauncher handles one launch at a time; it keeps no state
	// between launches beyond its configuration.
	CommandLauncher struct {
		// Stdout receives the child's relayed standard output.
		// When nil, os.Stdout is used.
		Stdout io.Writer
		// Stderr receives the child's relayed standard error.
		// When nil, os.Stderr is used.
		Stderr io.Writer
		// Host overrides the host snapshot used for executable
		// resolution. When nil, the host is captured at launch time.
		Host *hostinfo.Snapshot
	}
)

// NewCommandLauncher creates a launcher relaying to the parent's own
// stdout and stderr.
func NewCommandLauncher() *CommandLauncher {
	return &CommandLauncher{}
}

// Launch resolves the java executable, builds the command, starts the
// child with its environment replaced wholesale by the settings'
// environment, and relays the child's output to the parent streams
// until both are closed.
//
// It returns *ExecutableNotFoundError when resolution fails (no process
// is started) and *LaunchFailedError when spawning fails for any other
// reason. Per-line read errors while draining are logged, not
// returned. The call is synchronous: if the child never closes its
// streams, Launch blocks indefinitely.
func (l *CommandLauncher) Launch(ctx context.Context, settings *Settings) error {
	snap := l.hostSnapshot()

	execPath, found := ResolveExecutable(snap)
	if !found {
		return &ExecutableNotFoundError{JavaHome: snap.JavaHome, OSName: snap.OSName}
	}

	argv := BuildCommand(execPath, settings)
	slog.Debug("launching virtual machine", "command", strings.Join(argv, " "))

	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)

	// Replace the environment wholesale: the child sees exactly the
	// configured environment, nothing inherited from this process.
	cmd.Env = envToSlice(settings.Environment())

	childOut, err := cmd.StdoutPipe()
	if err != nil {
		return &LaunchFailedError{Cause: err}
	}
	childErr, err := cmd.StderrPipe()
	if err != nil {
		return &LaunchFailedError{Cause: err}
	}

	if err := cmd.Start(); err != nil {
		return &LaunchFailedError{Cause: err}
	}

	MergeStreams(childOut, childErr, l.stdout(), l.stderr())

	// Both streams are closed, which is the defined completion signal.
	// Reap the child so it does not linger; its exit status is observed
	// for logging only and never fails the launch.
	if err := cmd.Wait(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			slog.Debug("child process exited with non-zero status", "code", exitErr.ExitCode())
		} else {
			slog.Warn("failed to reap child process", "error", err)
		}
	}

	return nil
}

func (l *CommandLauncher) hostSnapshot() hostinfo.Snapshot {
	if l.Host != nil {
		return *l.Host
	}
	return hostinfo.Capture()
}

func (l *CommandLauncher) stdout() io.Writer {
	if l.Stdout != nil {
		return l.Stdout
	}
	return os.Stdout
}

func (l *CommandLauncher) stderr() io.Writer {
	if l.Stderr != nil {
		return l.Stderr
	}
	return os.Stderr
}

// envToSlice converts an environment map to the "KEY=VALUE" slice form
// expected by os/exec. An empty map yields an empty (non-nil) slice so
// the child's environment is replaced rather than inherited.
func envToSlice(env map[string]string) []string {
	result := make([]string, 0, len(env))
	for k, v := range env {
		result = append(result, k+"="+v)
	}
	return result
}
