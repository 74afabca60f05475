// SPDX-License-Identifier: MPL-2.0

package jvm

import (
	"maps"
	"strings"

	"jvmlaunch/pkg/hostinfo"
	"jvmlaunch/pkg/platform"
)

// LibraryPathProperty is the system property holding the JVM's native
// library search path. The library path accessors on Settings pass
// through to this property, so it is emitted as a regular -D flag.
const LibraryPathProperty = "java.library.path"

// Settings describes everything a new JVM needs: the main class, the
// memory ceiling, the environment, system properties, the classpath,
// and application arguments.
//
// A Settings value is built up by one caller before a launch and is
// read-only from the launcher's perspective. It is not safe for
// concurrent mutation.
type Settings struct {
	mainClass           string
	maxMemoryMB         int64
	useDefaultMaxMemory bool
	env                 map[string]string
	props               *Properties
	classPath           string
	appArgs             []string
}

// NewSettings creates launch settings seeded from the current host: the
// ambient environment, the CLASSPATH, the platform's library path
// variable, and the runtime's memory ceiling. The host is read exactly
// once, at construction.
func NewSettings() *Settings {
	return NewSettingsFromSnapshot(hostinfo.Capture())
}

// NewSettingsFromSnapshot creates launch settings seeded from the given
// host snapshot. Tests use this to construct settings without touching
// the real host.
func NewSettingsFromSnapshot(snap hostinfo.Snapshot) *Settings {
	env := maps.Clone(snap.Environ)
	if env == nil {
		env = make(map[string]string)
	}

	s := &Settings{
		maxMemoryMB:         snap.MaxMemoryMB,
		useDefaultMaxMemory: true,
		env:                 env,
		props:               NewProperties(),
		classPath:           snap.ClassPath,
	}
	s.SetLibraryPath(snap.LibraryPath)
	return s
}

// MainClass returns the fully qualified name of the class the child JVM
// should start executing.
func (s *Settings) MainClass() string {
	return s.mainClass
}

// SetMainClass sets the fully qualified main class name. A launch with
// an empty main class is a caller error; Settings does not validate it.
func (s *Settings) SetMainClass(mainClass string) {
	s.mainClass = mainClass
}

// MaxMemoryMegabytes returns the configured memory ceiling in
// megabytes. The value is only emitted on the command line when
// UseDefaultMaxMemory reports false.
func (s *Settings) MaxMemoryMegabytes() int64 {
	return s.maxMemoryMB
}

// SetMaxMemoryMegabytes sets an explicit memory ceiling and implicitly
// clears the use-default flag: setting a value means "use this value".
// The value is passed through unvalidated; bounds are the caller's
// responsibility.
func (s *Settings) SetMaxMemoryMegabytes(megabytes int64) {
	s.useDefaultMaxMemory = false
	s.maxMemoryMB = megabytes
}

// UseDefaultMaxMemory reports whether the child should run with the
// platform's default memory ceiling instead of an explicit -Xmx flag.
func (s *Settings) UseDefaultMaxMemory() bool {
	return s.useDefaultMaxMemory
}

// SetUseDefaultMaxMemory toggles between the platform default and the
// explicitly configured memory ceiling.
func (s *Settings) SetUseDefaultMaxMemory(useDefault bool) {
	s.useDefaultMaxMemory = useDefault
}

// Environment returns the live environment map the child will be
// started with. The child inherits nothing beyond this map.
func (s *Settings) Environment() map[string]string {
	return s.env
}

// SetEnvironment replaces the environment map. A nil map is normalized
// to an empty one; the environment is never nil.
func (s *Settings) SetEnvironment(env map[string]string) {
	if env == nil {
		env = make(map[string]string)
	}
	s.env = env
}

// EnvKeyFold returns the first stored environment key that matches the
// given key under case folding, and whether one was found. When two
// stored keys differ only in case the first one encountered during map
// iteration wins; configurations should not rely on that.
func (s *Settings) EnvKeyFold(key string) (string, bool) {
	for stored := range s.env {
		if strings.EqualFold(stored, key) {
			return stored, true
		}
	}
	return "", false
}

// PrependToEnv prepends path to the named environment variable using
// the platform path-list separator. When the variable is absent it is
// created with path as its whole value.
func (s *Settings) PrependToEnv(key, path string) {
	current, exists := s.env[key]
	if !exists {
		s.env[key] = path
		return
	}
	s.env[key] = path + platform.ListSeparator + current
}

// PrependToEnvFold is PrependToEnv with a case-folded key lookup: when
// a stored key matches under case folding, the prepend targets that
// key; otherwise the variable is created under the given key.
func (s *Settings) PrependToEnvFold(key, path string) {
	if stored, ok := s.EnvKeyFold(key); ok {
		key = stored
	}
	s.PrependToEnv(key, path)
}

// Properties returns the live system property collection. Each property
// becomes one -D flag on the command line, in insertion order.
func (s *Settings) Properties() *Properties {
	return s.props
}

// SetProperties replaces the system property collection. A nil value is
// normalized to an empty collection.
func (s *Settings) SetProperties(props *Properties) {
	if props == nil {
		props = NewProperties()
	}
	s.props = props
}

// ClassPath returns the classpath the child will be started with. An
// empty classpath means "let the JVM decide" and produces no flag.
func (s *Settings) ClassPath() string {
	return s.classPath
}

// SetClassPath sets the classpath. Empty means absent.
func (s *Settings) SetClassPath(classPath string) {
	s.classPath = classPath
}

// PrependToClassPath prepends path to the classpath using the platform
// path-list separator. When the classpath is absent it becomes exactly
// path.
func (s *Settings) PrependToClassPath(path string) {
	if s.classPath == "" {
		s.classPath = path
		return
	}
	s.classPath = path + platform.ListSeparator + s.classPath
}

// LibraryPath returns the native library search path, stored as the
// java.library.path system property. Empty means the property is unset
// and the child uses its default.
func (s *Settings) LibraryPath() string {
	path, _ := s.props.Get(LibraryPathProperty)
	return path
}

// SetLibraryPath sets the native library search path. An empty path
// removes the backing property so the child falls back to its default.
func (s *Settings) SetLibraryPath(path string) {
	if path == "" {
		s.props.Delete(LibraryPathProperty)
		return
	}
	s.props.Set(LibraryPathProperty, path)
}

// PrependToLibraryPath prepends path to the native library search path
// using the platform path-list separator. When the path is absent it
// becomes exactly path.
func (s *Settings) PrependToLibraryPath(path string) {
	current := s.LibraryPath()
	if current == "" {
		s.SetLibraryPath(path)
		return
	}
	s.SetLibraryPath(path + platform.ListSeparator + current)
}

// Arguments returns the application arguments appended after the main
// class, in order.
func (s *Settings) Arguments() []string {
	return s.appArgs
}

// SetArguments replaces the application argument list.
func (s *Settings) SetArguments(args []string) {
	s.appArgs = args
}

// AppendArguments appends application arguments in order.
func (s *Settings) AppendArguments(args ...string) {
	s.appArgs = append(s.appArgs, args...)
}
