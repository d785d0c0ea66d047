// Package model defines the domain types and value objects for the
// credo-bridge CLI.
//
// This package contains pure data structures with no external dependencies.
// All entities (Settings, Resolution, Invocation) are transient values
// recomputed on every invocation — there is no persistent state and nothing
// is cached between calls, so concurrent resolutions are naturally
// independent.
//
// The package also defines exit codes (ExitCode) and a custom error type
// (CLIError) that carries exit codes for proper OS process exit handling.
package model
