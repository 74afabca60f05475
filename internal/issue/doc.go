// SPDX-License-Identifier: MPL-2.0

// Package issue holds the catalog of known launcher failures and the
// ActionableError type used to attach operation context and fix
// suggestions to errors surfaced to the user. Catalog entries are
// markdown documents rendered with glamour by the CLI layer.
package issue
