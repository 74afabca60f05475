// SPDX-License-Identifier: MPL-2.0

package config

// configDirOverride redirects ConfigDir lookups, letting tests point the
// loader at a temp directory. Needed because os.UserHomeDir() does not
// consistently honor a HOME set via t.Setenv on every platform.
var configDirOverride string

// Reset restores the default config directory resolution. Tests that call
// SetConfigDirOverride register this as cleanup.
func Reset() {
	configDirOverride = ""
}

// SetConfigDirOverride makes ConfigDir return dir instead of the
// platform-specific location. Test-only; pair with Reset.
func SetConfigDirOverride(dir string) {
	configDirOverride = dir
}
