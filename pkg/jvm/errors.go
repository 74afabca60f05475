// SPDX-License-Identifier: MPL-2.0

package jvm

import (
	"errors"
	"fmt"
)

var (
	// ErrExecutableNotFound is the sentinel wrapped by ExecutableNotFoundError.
	ErrExecutableNotFound = errors.New("java executable not found")
	// ErrLaunchFailed is the sentinel wrapped by LaunchFailedError.
	ErrLaunchFailed = errors.New("virtual machine launch failed")
)

type (
	// ExecutableNotFoundError is returned when the java executable
	// cannot be resolved: the Java home or OS name is unknown, or the
	// expected file does not exist. No child process was started.
	// It wraps ErrExecutableNotFound for errors.Is() compatibility.
	ExecutableNotFoundError struct {
		// JavaHome is the home directory that was searched ("" when unknown).
		JavaHome string
		// OSName is the OS name used for resolution ("" when unknown).
		OSName string
	}

	// LaunchFailedError is returned when the child process could not be
	// started or wired up. It wraps both ErrLaunchFailed and the
	// underlying cause, so errors.Is() matches either.
	LaunchFailedError struct {
		Cause error
	}
)

// Error implements the error interface.
func (e *ExecutableNotFoundError) Error() string {
	if e.JavaHome == "" {
		return "failed to locate the java executable: Java home is not set"
	}
	return fmt.Sprintf("failed to locate the java executable under %q", e.JavaHome)
}

// Unwrap returns ErrExecutableNotFound for errors.Is() chains.
func (e *ExecutableNotFoundError) Unwrap() error {
	return ErrExecutableNotFound
}

// Error implements the error interface.
func (e *LaunchFailedError) Error() string {
	if e.Cause == nil {
		return ErrLaunchFailed.Error()
	}
	return fmt.Sprintf("%s: %s", ErrLaunchFailed.Error(), e.Cause.Error())
}

// Unwrap returns the sentinel and the underlying cause so errors.Is()
// and errors.As() can match both.
func (e *LaunchFailedError) Unwrap() []error {
	if e.Cause == nil {
		return []error{ErrLaunchFailed}
	}
	return []error{ErrLaunchFailed, e.Cause}
}
