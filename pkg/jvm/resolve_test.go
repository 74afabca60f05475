// SPDX-License-Identifier: MPL-2.0

package jvm

import (
	"os"
	"path/filepath"
	"testing"

	"jvmlaunch/pkg/hostinfo"
	"jvmlaunch/pkg/platform"
)

// fakeJavaHome creates a temp Java home containing bin/<name> and
// returns the home path.
func fakeJavaHome(t *testing.T, name string) string {
	t.Helper()

	home := t.TempDir()
	binDir := filepath.Join(home, "bin")
	if err := os.MkdirAll(binDir, 0o755); err != nil {
		t.Fatalf("failed to create bin dir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(binDir, name), []byte("#!/bin/sh\n"), 0o755); err != nil {
		t.Fatalf("failed to create fake executable: %v", err)
	}
	return home
}

func TestResolveExecutable_Found(t *testing.T) {
	t.Parallel()

	home := fakeJavaHome(t, "java")
	snap := hostinfo.Snapshot{JavaHome: home, OSName: platform.Linux}

	path, found := ResolveExecutable(snap)
	if !found {
		t.Fatal("ResolveExecutable() = not found, want found")
	}
	if want := filepath.Join(home, "bin", "java"); path != want {
		t.Errorf("ResolveExecutable() = %q, want %q", path, want)
	}
}

func TestResolveExecutable_WindowsSuffix(t *testing.T) {
	t.Parallel()

	home := fakeJavaHome(t, "java.exe")
	snap := hostinfo.Snapshot{JavaHome: home, OSName: platform.Windows}

	path, found := ResolveExecutable(snap)
	if !found {
		t.Fatal("ResolveExecutable() = not found, want found")
	}
	if filepath.Base(path) != "java.exe" {
		t.Errorf("ResolveExecutable() base = %q, want java.exe", filepath.Base(path))
	}
}

func TestResolveExecutable_MissingHostInfo(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		snap hostinfo.Snapshot
	}{
		{name: "no java home", snap: hostinfo.Snapshot{OSName: platform.Linux}},
		{name: "no OS name", snap: hostinfo.Snapshot{JavaHome: "/opt/java"}},
		{name: "nothing at all", snap: hostinfo.Snapshot{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if path, found := ResolveExecutable(tt.snap); found {
				t.Errorf("ResolveExecutable() = %q, found, want not found", path)
			}
		})
	}
}

func TestResolveExecutable_CandidateDoesNotExist(t *testing.T) {
	t.Parallel()

	snap := hostinfo.Snapshot{JavaHome: t.TempDir(), OSName: platform.Linux}

	if path, found := ResolveExecutable(snap); found {
		t.Errorf("ResolveExecutable() = %q, found, want not found for empty home", path)
	}
}

func TestResolveExecutable_Idempotent(t *testing.T) {
	t.Parallel()

	home := fakeJavaHome(t, "java")
	snap := hostinfo.Snapshot{JavaHome: home, OSName: platform.Linux}

	first, foundFirst := ResolveExecutable(snap)
	second, foundSecond := ResolveExecutable(snap)

	if first != second || foundFirst != foundSecond {
		t.Errorf("ResolveExecutable() not idempotent: (%q, %v) then (%q, %v)", first, foundFirst, second, foundSecond)
	}
}
