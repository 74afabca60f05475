// SPDX-License-Identifier: MPL-2.0

// Package platform provides cross-platform compatibility utilities.
//
// This package centralizes the platform-specific conventions the
// launcher depends on: executable name suffixes, the environment
// variable consulted for native library lookup, and the separator used
// to join path-list values.
package platform
