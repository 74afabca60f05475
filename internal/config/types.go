// SPDX-License-Identifier: MPL-2.0

package config

import (
	"errors"
	"fmt"
	"strings"
)

const (
	// ColorSchemeAuto detects the terminal color scheme automatically.
	ColorSchemeAuto ColorScheme = "auto"
	// ColorSchemeDark forces dark color scheme.
	ColorSchemeDark ColorScheme = "dark"
	// ColorSchemeLight forces light color scheme.
	ColorSchemeLight ColorScheme = "light"
)

var (
	// ErrInvalidColorScheme is returned when a ColorScheme value is not recognized.
	ErrInvalidColorScheme = errors.New("invalid color scheme")
	// ErrInvalidJavaHomePath is returned when a JavaHomePath value is whitespace-only.
	ErrInvalidJavaHomePath = errors.New("invalid java home path")
	// ErrInvalidMaxMemory is returned when a heap ceiling is negative.
	ErrInvalidMaxMemory = errors.New("invalid max memory")
	// ErrInvalidUIConfig is the sentinel error wrapped by InvalidUIConfigError.
	ErrInvalidUIConfig = errors.New("invalid UI config")
	// ErrInvalidConfig is the sentinel error wrapped by InvalidConfigError.
	ErrInvalidConfig = errors.New("invalid config")
)

type (
	// ColorScheme specifies the terminal color scheme preference.
	ColorScheme string

	// InvalidColorSchemeError is returned when a ColorScheme value is not recognized.
	// It wraps ErrInvalidColorScheme for errors.Is() compatibility.
	InvalidColorSchemeError struct {
		Value ColorScheme
	}

	// JavaHomePath represents a filesystem path to a Java installation root.
	// The zero value ("") is valid and means "use the JAVA_HOME environment
	// variable". Non-zero values must not be whitespace-only.
	JavaHomePath string

	// InvalidJavaHomePathError is returned when a JavaHomePath value is
	// non-empty but whitespace-only.
	InvalidJavaHomePathError struct {
		Value JavaHomePath
	}

	// InvalidMaxMemoryError is returned when a configured heap ceiling is
	// negative. It wraps ErrInvalidMaxMemory for errors.Is() compatibility.
	InvalidMaxMemoryError struct {
		Value int64
	}

	// InvalidUIConfigError is returned when a UIConfig has invalid fields.
	// It wraps ErrInvalidUIConfig for errors.Is() compatibility and collects
	// field-level validation errors.
	InvalidUIConfigError struct {
		FieldErrors []error
	}

	// InvalidConfigError is returned when a Config has invalid fields.
	// It wraps ErrInvalidConfig for errors.Is() compatibility and collects
	// field-level validation errors from all sub-components.
	InvalidConfigError struct {
		FieldErrors []error
	}

	// Config holds the application configuration.
	Config struct {
		// JavaHome overrides the JAVA_HOME environment variable when set.
		JavaHome JavaHomePath `json:"java_home" mapstructure:"java_home"`
		// DefaultMaxMemoryMB sets the heap ceiling in megabytes applied when
		// a launch does not specify one. Zero means "let the JVM decide".
		DefaultMaxMemoryMB int64 `json:"default_max_memory_mb" mapstructure:"default_max_memory_mb"`
		// UI configures the user interface
		UI UIConfig `json:"ui" mapstructure:"ui"`
	}

	// UIConfig configures the user interface.
	UIConfig struct {
		// ColorScheme sets the color scheme
		ColorScheme ColorScheme `json:"color_scheme" mapstructure:"color_scheme"`
		// Verbose enables verbose output
		Verbose bool `json:"verbose" mapstructure:"verbose"`
	}
)

// String returns the string representation of the ColorScheme.
func (cs ColorScheme) String() string { return string(cs) }

// IsValid returns whether the ColorScheme is one of the defined color schemes,
// and a list of validation errors if it is not.
func (cs ColorScheme) IsValid() (bool, []error) {
	switch cs {
	case ColorSchemeAuto, ColorSchemeDark, ColorSchemeLight:
		return true, nil
	default:
		return false, []error{&InvalidColorSchemeError{Value: cs}}
	}
}

// Error implements the error interface for InvalidColorSchemeError.
func (e *InvalidColorSchemeError) Error() string {
	return fmt.Sprintf("invalid color scheme %q (valid: auto, dark, light)", e.Value)
}

// Unwrap returns the sentinel error for errors.Is() compatibility.
func (e *InvalidColorSchemeError) Unwrap() error {
	return ErrInvalidColorScheme
}

// String returns the string representation of the JavaHomePath.
func (p JavaHomePath) String() string { return string(p) }

// IsValid returns whether the JavaHomePath is valid.
// The zero value ("") is valid (means "use the JAVA_HOME environment variable").
// Non-zero values must not be whitespace-only.
func (p JavaHomePath) IsValid() (bool, []error) {
	if p == "" {
		return true, nil
	}
	if strings.TrimSpace(string(p)) == "" {
		return false, []error{&InvalidJavaHomePathError{Value: p}}
	}
	return true, nil
}

// Error implements the error interface for InvalidJavaHomePathError.
func (e *InvalidJavaHomePathError) Error() string {
	return fmt.Sprintf("invalid java home path %q: non-empty value must not be whitespace-only", e.Value)
}

// Unwrap returns ErrInvalidJavaHomePath for errors.Is() compatibility.
func (e *InvalidJavaHomePathError) Unwrap() error { return ErrInvalidJavaHomePath }

// Error implements the error interface for InvalidMaxMemoryError.
func (e *InvalidMaxMemoryError) Error() string {
	return fmt.Sprintf("invalid max memory %d: must not be negative", e.Value)
}

// Unwrap returns ErrInvalidMaxMemory for errors.Is() compatibility.
func (e *InvalidMaxMemoryError) Unwrap() error { return ErrInvalidMaxMemory }

// IsValid returns whether the UIConfig has valid fields.
// It delegates to ColorScheme.IsValid(); bool fields need no validation.
func (c UIConfig) IsValid() (bool, []error) {
	var errs []error
	if valid, fieldErrs := c.ColorScheme.IsValid(); !valid {
		errs = append(errs, fieldErrs...)
	}
	if len(errs) > 0 {
		return false, []error{&InvalidUIConfigError{FieldErrors: errs}}
	}
	return true, nil
}

// Error implements the error interface for InvalidUIConfigError.
func (e *InvalidUIConfigError) Error() string {
	return fmt.Sprintf("invalid UI config: %d field error(s)", len(e.FieldErrors))
}

// Unwrap returns ErrInvalidUIConfig for errors.Is() compatibility.
func (e *InvalidUIConfigError) Unwrap() error { return ErrInvalidUIConfig }

// IsValid returns whether the Config has valid fields.
// It delegates to JavaHome.IsValid() and UI.IsValid(), and checks that the
// default heap ceiling is not negative.
func (c Config) IsValid() (bool, []error) {
	var errs []error
	if valid, fieldErrs := c.JavaHome.IsValid(); !valid {
		errs = append(errs, fieldErrs...)
	}
	if c.DefaultMaxMemoryMB < 0 {
		errs = append(errs, &InvalidMaxMemoryError{Value: c.DefaultMaxMemoryMB})
	}
	if valid, fieldErrs := c.UI.IsValid(); !valid {
		errs = append(errs, fieldErrs...)
	}
	if len(errs) > 0 {
		return false, []error{&InvalidConfigError{FieldErrors: errs}}
	}
	return true, nil
}

// Error implements the error interface for InvalidConfigError.
func (e *InvalidConfigError) Error() string {
	return fmt.Sprintf("invalid config: %d field error(s)", len(e.FieldErrors))
}

// Unwrap returns ErrInvalidConfig for errors.Is() compatibility.
func (e *InvalidConfigError) Unwrap() error { return ErrInvalidConfig }

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		JavaHome:           "", // Will use the JAVA_HOME env var if empty
		DefaultMaxMemoryMB: 0,  // Will let the JVM pick its own ceiling if zero
		UI: UIConfig{
			ColorScheme: ColorSchemeAuto,
			Verbose:     false,
		},
	}
}
