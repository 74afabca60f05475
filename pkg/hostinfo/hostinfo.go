// SPDX-License-Identifier: MPL-2.0

// Package hostinfo captures the host-side facts a launch depends on as
// a one-time snapshot: ambient environment variables, the Java home
// directory, the OS name, the current runtime's memory ceiling, and the
// class/library search paths. A Snapshot is taken once and never
// re-read, which keeps configuration construction deterministic.
package hostinfo

import (
	"math"
	"os"
	"runtime"
	"runtime/debug"
	"strings"

	"jvmlaunch/pkg/platform"
)

const bytesPerMegabyte = 1 << 20

// Snapshot is a point-in-time view of the host facts relevant to
// launching a JVM. All fields are plain values; a Snapshot is safe to
// copy and never refreshes itself.
type Snapshot struct {
	// Environ holds the ambient environment variables at capture time.
	Environ map[string]string
	// JavaHome is the JAVA_HOME directory, or "" when unset.
	JavaHome string
	// OSName is the host operating system name (runtime.GOOS).
	OSName string
	// MaxMemoryMB is the current runtime's soft memory limit in
	// megabytes, or 0 when no limit is configured.
	MaxMemoryMB int64
	// ClassPath is the ambient CLASSPATH value, or "" when unset.
	ClassPath string
	// LibraryPath is the value of the platform's native library search
	// variable (LD_LIBRARY_PATH and friends), or "" when unset.
	LibraryPath string
}

// Capture takes a snapshot of the real host. Call it once per
// configuration construction; the result is never re-read.
func Capture() Snapshot {
	return captureFrom(os.Environ, runtime.GOOS, currentMemoryLimit)
}

// captureFrom builds a Snapshot from injectable host accessors. Tests
// supply fake environ/memory functions to isolate capture behavior.
func captureFrom(environ func() []string, osName string, memLimit func() int64) Snapshot {
	env := make(map[string]string)
	for _, entry := range environ() {
		key, value, ok := strings.Cut(entry, "=")
		if !ok {
			// Malformed entry, skip it
			continue
		}
		env[key] = value
	}

	var maxMemoryMB int64
	if limit := memLimit(); limit > 0 && limit < math.MaxInt64 {
		maxMemoryMB = limit / bytesPerMegabyte
	}

	return Snapshot{
		Environ:     env,
		JavaHome:    env["JAVA_HOME"],
		OSName:      osName,
		MaxMemoryMB: maxMemoryMB,
		ClassPath:   env["CLASSPATH"],
		LibraryPath: env[platform.LibraryPathVar(osName)],
	}
}

// currentMemoryLimit reads the Go runtime's soft memory limit without
// changing it. math.MaxInt64 means no limit is set.
func currentMemoryLimit() int64 {
	return debug.SetMemoryLimit(-1)
}
