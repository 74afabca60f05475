// SPDX-License-Identifier: MPL-2.0

package jvm

import "fmt"

// BuildCommand translates launch settings into the argument vector for
// the java executable. It is a pure function: the same settings and
// executable path always produce the same token sequence, in this fixed
// order:
//
//  1. the executable path
//  2. -Xmx<n>M, only when an explicit memory ceiling is configured
//  3. one -D<key>=<value> token per system property, in insertion order
//  4. -classpath <path>, only when a classpath is set
//  5. the main class
//  6. the application arguments, in order
//
// Values are passed through as single opaque tokens; nothing is quoted
// or re-split for a shell.
func BuildCommand(execPath string, settings *Settings) []string {
	argv := []string{execPath}

	if !settings.UseDefaultMaxMemory() {
		argv = append(argv, fmt.Sprintf("-Xmx%dM", settings.MaxMemoryMegabytes()))
	}

	for _, prop := range settings.Properties().Pairs() {
		argv = append(argv, "-D"+prop.Key+"="+prop.Value)
	}

	if settings.ClassPath() != "" {
		argv = append(argv, "-classpath", settings.ClassPath())
	}

	argv = append(argv, settings.MainClass())
	argv = append(argv, settings.Arguments()...)

	return argv
}
