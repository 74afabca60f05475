// SPDX-License-Identifier: MPL-2.0

package jvm

import (
	"testing"

	"jvmlaunch/pkg/hostinfo"
	"jvmlaunch/pkg/platform"
)

func emptySettings(t *testing.T) *Settings {
	t.Helper()
	return NewSettingsFromSnapshot(hostinfo.Snapshot{})
}

func TestSettings_SetMaxMemoryClearsDefaultFlag(t *testing.T) {
	t.Parallel()

	s := emptySettings(t)
	if !s.UseDefaultMaxMemory() {
		t.Fatal("UseDefaultMaxMemory() = false on fresh settings, want true")
	}

	s.SetMaxMemoryMegabytes(512)

	if s.UseDefaultMaxMemory() {
		t.Error("UseDefaultMaxMemory() = true after SetMaxMemoryMegabytes, want false")
	}
	if s.MaxMemoryMegabytes() != 512 {
		t.Errorf("MaxMemoryMegabytes() = %d, want 512", s.MaxMemoryMegabytes())
	}
}

func TestSettings_NonPositiveMemoryPassesThrough(t *testing.T) {
	t.Parallel()

	// Bounds are the caller's responsibility.
	s := emptySettings(t)
	s.SetMaxMemoryMegabytes(-1)

	if s.MaxMemoryMegabytes() != -1 {
		t.Errorf("MaxMemoryMegabytes() = %d, want -1", s.MaxMemoryMegabytes())
	}
}

func TestSettings_PrependToClassPath(t *testing.T) {
	t.Parallel()

	sep := platform.ListSeparator

	s := emptySettings(t)
	s.PrependToClassPath("X")
	if s.ClassPath() != "X" {
		t.Errorf("ClassPath() = %q after prepend to absent, want %q", s.ClassPath(), "X")
	}

	s.PrependToClassPath("Y")
	if got, want := s.ClassPath(), "Y"+sep+"X"; got != want {
		t.Errorf("ClassPath() = %q, want %q", got, want)
	}
}

func TestSettings_PrependToLibraryPath(t *testing.T) {
	t.Parallel()

	sep := platform.ListSeparator

	s := NewSettingsFromSnapshot(hostinfo.Snapshot{LibraryPath: "orig"})
	s.PrependToLibraryPath("X")
	s.PrependToLibraryPath("Y")

	if got, want := s.LibraryPath(), "Y"+sep+"X"+sep+"orig"; got != want {
		t.Errorf("LibraryPath() = %q, want %q", got, want)
	}
}

func TestSettings_LibraryPathIsAProperty(t *testing.T) {
	t.Parallel()

	s := emptySettings(t)
	s.SetLibraryPath("/opt/native")

	if got, ok := s.Properties().Get(LibraryPathProperty); !ok || got != "/opt/native" {
		t.Errorf("Properties().Get(%q) = %q, %v, want %q, true", LibraryPathProperty, got, ok, "/opt/native")
	}

	// Clearing the path removes the backing property entirely.
	s.SetLibraryPath("")
	if _, ok := s.Properties().Get(LibraryPathProperty); ok {
		t.Error("library path property still present after SetLibraryPath(\"\")")
	}
}

func TestSettings_EnvKeyFold(t *testing.T) {
	t.Parallel()

	s := emptySettings(t)
	s.SetEnvironment(map[string]string{"PATH": "a"})

	key, ok := s.EnvKeyFold("path")
	if !ok || key != "PATH" {
		t.Errorf("EnvKeyFold(path) = %q, %v, want %q, true", key, ok, "PATH")
	}

	if _, ok := s.EnvKeyFold("missing"); ok {
		t.Error("EnvKeyFold(missing) found a match, want not found")
	}
}

func TestSettings_PrependToEnvFold(t *testing.T) {
	t.Parallel()

	sep := platform.ListSeparator

	s := emptySettings(t)
	s.SetEnvironment(map[string]string{"PATH": "a"})

	s.PrependToEnvFold("path", "b")

	if got, want := s.Environment()["PATH"], "b"+sep+"a"; got != want {
		t.Errorf("Environment()[PATH] = %q, want %q", got, want)
	}
	if _, exists := s.Environment()["path"]; exists {
		t.Error("Environment() grew a lowercase duplicate key")
	}
}

func TestSettings_PrependToEnvFoldCreatesWhenAbsent(t *testing.T) {
	t.Parallel()

	s := emptySettings(t)
	s.PrependToEnvFold("MY_LIB_PATH", "/opt/lib")

	if got := s.Environment()["MY_LIB_PATH"]; got != "/opt/lib" {
		t.Errorf("Environment()[MY_LIB_PATH] = %q, want %q", got, "/opt/lib")
	}
}

func TestSettings_SetEnvironmentNeverNil(t *testing.T) {
	t.Parallel()

	s := emptySettings(t)
	s.SetEnvironment(nil)

	if s.Environment() == nil {
		t.Fatal("Environment() = nil after SetEnvironment(nil), want empty map")
	}
}

func TestSettings_SeededFromSnapshot(t *testing.T) {
	t.Parallel()

	snap := hostinfo.Snapshot{
		Environ:     map[string]string{"HOME": "/home/user"},
		MaxMemoryMB: 256,
		ClassPath:   "/opt/classes",
		LibraryPath: "/opt/native",
	}

	s := NewSettingsFromSnapshot(snap)

	if s.Environment()["HOME"] != "/home/user" {
		t.Errorf("Environment()[HOME] = %q, want %q", s.Environment()["HOME"], "/home/user")
	}
	if s.MaxMemoryMegabytes() != 256 {
		t.Errorf("MaxMemoryMegabytes() = %d, want 256", s.MaxMemoryMegabytes())
	}
	if !s.UseDefaultMaxMemory() {
		t.Error("UseDefaultMaxMemory() = false on fresh settings, want true")
	}
	if s.ClassPath() != "/opt/classes" {
		t.Errorf("ClassPath() = %q, want %q", s.ClassPath(), "/opt/classes")
	}
	if s.LibraryPath() != "/opt/native" {
		t.Errorf("LibraryPath() = %q, want %q", s.LibraryPath(), "/opt/native")
	}

	// The settings own a copy of the snapshot's environment.
	s.Environment()["HOME"] = "/mutated"
	if snap.Environ["HOME"] != "/home/user" {
		t.Error("mutating settings environment leaked into the snapshot")
	}
}
