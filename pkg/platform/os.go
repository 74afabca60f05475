// SPDX-License-Identifier: MPL-2.0

package platform

import "os"

// OS name constants for runtime.GOOS comparisons.
// Centralizes the string literals to avoid scattered magic strings.
const (
	Windows = "windows"
	Darwin  = "darwin"
	Linux   = "linux"
)

// IsWindowsFamily reports whether the given OS name belongs to the
// Windows family. Executables on these systems carry an ".exe" suffix.
func IsWindowsFamily(osName string) bool {
	return osName == Windows
}

// ExecutableSuffix returns the filename suffix for executables on the
// given OS ("" on Unix-like systems, ".exe" on Windows).
func ExecutableSuffix(osName string) string {
	if IsWindowsFamily(osName) {
		return ".exe"
	}
	return ""
}

// LibraryPathVar returns the name of the environment variable the given
// OS consults when resolving native libraries at load time.
func LibraryPathVar(osName string) string {
	switch osName {
	case Windows:
		return "PATH"
	case Darwin:
		return "DYLD_LIBRARY_PATH"
	default:
		return "LD_LIBRARY_PATH"
	}
}

// ListSeparator is the host's path-list separator (":" on Unix-like
// systems, ";" on Windows) as a string, ready for joining path entries.
var ListSeparator = string(os.PathListSeparator)
