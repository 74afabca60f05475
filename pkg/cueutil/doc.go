// SPDX-License-Identifier: MPL-2.0

// Package cueutil provides shared helpers for validating CUE input:
// size limits for user-supplied files and user-friendly formatting of
// CUE validation errors with JSON-path prefixes.
package cueutil
