// SPDX-License-Identifier: MPL-2.0

package jvm

import (
	"log/slog"
	"os"
	"path/filepath"

	"jvmlaunch/pkg/hostinfo"
	"jvmlaunch/pkg/platform"
)

// ResolveExecutable locates the java executable described by the host
// snapshot. The candidate is <JavaHome>/bin/java, with the platform's
// executable suffix appended on Windows-family systems, and must exist
// on disk.
//
// A missing Java home, a missing OS name, or an absent candidate file
// all resolve to not-found rather than an error: absence is an
// expected, reportable condition. Given the same snapshot and
// filesystem state the result is always the same.
func ResolveExecutable(snap hostinfo.Snapshot) (string, bool) {
	if snap.JavaHome == "" || snap.OSName == "" {
		if snap.JavaHome == "" {
			slog.Warn("could not determine the Java home directory")
		}
		if snap.OSName == "" {
			slog.Warn("could not determine the OS name")
		}
		return "", false
	}

	candidate := filepath.Join(snap.JavaHome, "bin", "java"+platform.ExecutableSuffix(snap.OSName))

	info, err := os.Stat(candidate)
	if err != nil || info.IsDir() {
		slog.Warn("java executable not found at the expected location", "path", candidate)
		return "", false
	}

	return candidate, true
}
