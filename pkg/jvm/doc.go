// SPDX-License-Identifier: MPL-2.0

// Package jvm launches Java Virtual Machine child processes.
//
// A launch is described by a Settings value: the main class to run, an
// optional memory ceiling, the environment the child should see, system
// properties (which become -D flags), the classpath, and application
// arguments. CommandLauncher resolves the java executable under
// JAVA_HOME, translates the Settings into an argument vector, starts
// the child with its environment replaced wholesale, and relays the
// child's stdout and stderr to the parent's streams line by line until
// both are exhausted.
package jvm
