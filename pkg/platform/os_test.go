// SPDX-License-Identifier: MPL-2.0

package platform

import "testing"

func TestExecutableSuffix(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		osName   string
		expected string
	}{
		{name: "windows gets exe suffix", osName: Windows, expected: ".exe"},
		{name: "linux has no suffix", osName: Linux, expected: ""},
		{name: "darwin has no suffix", osName: Darwin, expected: ""},
		{name: "unknown OS has no suffix", osName: "plan9", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := ExecutableSuffix(tt.osName); got != tt.expected {
				t.Errorf("ExecutableSuffix(%q) = %q, want %q", tt.osName, got, tt.expected)
			}
		})
	}
}

func TestLibraryPathVar(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		osName   string
		expected string
	}{
		{name: "windows uses PATH", osName: Windows, expected: "PATH"},
		{name: "darwin uses DYLD_LIBRARY_PATH", osName: Darwin, expected: "DYLD_LIBRARY_PATH"},
		{name: "linux uses LD_LIBRARY_PATH", osName: Linux, expected: "LD_LIBRARY_PATH"},
		{name: "other unix uses LD_LIBRARY_PATH", osName: "freebsd", expected: "LD_LIBRARY_PATH"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := LibraryPathVar(tt.osName); got != tt.expected {
				t.Errorf("LibraryPathVar(%q) = %q, want %q", tt.osName, got, tt.expected)
			}
		})
	}
}

func TestIsWindowsFamily(t *testing.T) {
	t.Parallel()

	if !IsWindowsFamily(Windows) {
		t.Error("IsWindowsFamily(Windows) = false, want true")
	}
	if IsWindowsFamily(Linux) {
		t.Error("IsWindowsFamily(Linux) = true, want false")
	}
}
