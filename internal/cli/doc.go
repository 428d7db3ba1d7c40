// Package cli defines the Cobra command tree for the linkdb CLI. Each file
// in this package registers one top-level command (insert, list, validate,
// etc.) with the root command. Commands delegate to internal/linkdb and only
// handle flag parsing, output formatting and audit events.
package cli
