// Package model defines the domain types for the credo-bridge CLI.
//
// credo-bridge resolves the active Credo configuration for an Elixir source
// file and assembles the `mix credo` invocation an editor host should run.
// The types here describe the inputs (Settings), the outcome of configuration
// resolution (Resolution), and the assembled command (Invocation).
package model

import (
	"fmt"
	"strings"
)

// DefaultConfigFile is the conventional Credo configuration file name.
// Used when Settings.ConfigFile is left empty.
const DefaultConfigFile = ".credo.exs"

// Settings holds the user-facing configuration for a single linter
// invocation, typically sourced from an editor's workspace settings file.
//
// All fields are optional; Normalize fills in defaults. Settings is a value
// type — callers copy it freely and nothing mutates it after normalization.
type Settings struct {
	// ConfigFile is either a bare file name to search for in the project
	// tree (default ".credo.exs") or an absolute path. An absolute path
	// that exists on disk is used verbatim, skipping the project search.
	ConfigFile string `json:"configFile,omitempty" yaml:"configFile"`

	// ConfigName selects a named configuration profile inside the Credo
	// config file (Credo supports several profiles per file).
	ConfigName string `json:"configName,omitempty" yaml:"configName"`

	// ChecksWithTag restricts the run to checks carrying one of these tags.
	// When non-empty, ChecksWithoutTag is ignored entirely.
	ChecksWithTag []string `json:"checksWithTag,omitempty" yaml:"checksWithTag"`

	// ChecksWithoutTag excludes checks carrying one of these tags.
	// Only consulted when ChecksWithTag is empty.
	ChecksWithoutTag []string `json:"checksWithoutTag,omitempty" yaml:"checksWithoutTag"`

	// Strict enables Credo's strict mode (all checks, no priority cutoff).
	Strict bool `json:"strict,omitempty" yaml:"strict"`

	// DiffMode configures analysis of changes relative to a merge base
	// instead of whole files.
	DiffMode DiffModeSettings `json:"diffMode,omitempty" yaml:"diffMode"`

	// ExecutePath, when set, is prepended to the PATH environment variable
	// of the assembled invocation. Useful when mix is not on the editor
	// host's default search path (e.g., asdf or kiex installs).
	ExecutePath string `json:"executePath,omitempty" yaml:"executePath"`

	// IgnoreWarnings suppresses the advisory warnings emitted during
	// configuration resolution (config file missing, duplicate candidates).
	IgnoreWarnings bool `json:"ignoreWarnings,omitempty" yaml:"ignoreWarnings"`
}

// DiffModeSettings configures Credo's diff mode, which analyzes only the
// changes relative to a Git merge base.
type DiffModeSettings struct {
	// Enabled switches the invocation to the `mix credo diff` form.
	Enabled bool `json:"enabled,omitempty" yaml:"enabled"`

	// MergeBase is the Git reference to diff against. Empty means the
	// builder's default branch name ("main") is used.
	MergeBase string `json:"mergeBase,omitempty" yaml:"mergeBase"`
}

// Normalize returns a copy of the settings with defaults applied.
// Currently the only defaulted field is ConfigFile.
func (s Settings) Normalize() Settings {
	if s.ConfigFile == "" {
		s.ConfigFile = DefaultConfigFile
	}
	return s
}

// Validate checks the settings for values that cannot produce a sensible
// invocation. Tag values and the config name become single argv tokens, so
// embedded whitespace would silently change the command's meaning.
func (s Settings) Validate() error {
	if strings.TrimSpace(s.ConfigFile) == "" && s.ConfigFile != "" {
		return fmt.Errorf("configFile must not be blank")
	}
	if err := validateToken("configName", s.ConfigName); err != nil {
		return err
	}
	for _, tag := range s.ChecksWithTag {
		if err := validateToken("checksWithTag entry", tag); err != nil {
			return err
		}
	}
	for _, tag := range s.ChecksWithoutTag {
		if err := validateToken("checksWithoutTag entry", tag); err != nil {
			return err
		}
	}
	if err := validateToken("diffMode.mergeBase", s.DiffMode.MergeBase); err != nil {
		return err
	}
	return nil
}

// validateToken rejects values that would not survive as a single
// command-line token. Empty values are fine (the field is simply unset).
func validateToken(field, value string) error {
	if value == "" {
		return nil
	}
	if strings.TrimSpace(value) == "" || strings.ContainsAny(value, " \t\n") {
		return fmt.Errorf("invalid %s %q: must not contain whitespace", field, value)
	}
	return nil
}

// Outcome describes how (or whether) a configuration file was resolved.
type Outcome string

const (
	// OutcomeOverride means an absolute, existing user-supplied path was
	// used verbatim, skipping the project search.
	OutcomeOverride Outcome = "override"

	// OutcomeFound means the config file was located among the
	// project-relative candidate locations.
	OutcomeFound Outcome = "found"

	// OutcomeNone means no configuration file exists; the external tool
	// will run with its built-in defaults. This is advisory, not an error.
	OutcomeNone Outcome = "none"
)

// String returns the string representation of the Outcome.
func (o Outcome) String() string {
	return string(o)
}

// IsValid checks whether the Outcome value is one of the predefined states.
func (o Outcome) IsValid() bool {
	switch o {
	case OutcomeOverride, OutcomeFound, OutcomeNone:
		return true
	default:
		return false
	}
}

// ParseOutcome converts a string to an Outcome.
// Returns an error if the string does not match any valid outcome.
func ParseOutcome(s string) (Outcome, error) {
	outcome := Outcome(strings.ToLower(s))
	if !outcome.IsValid() {
		return "", fmt.Errorf("invalid resolution outcome: %q (valid: override, found, none)", s)
	}
	return outcome, nil
}

// Resolution is the result of locating the active Credo configuration file
// for a source file. It is computed fresh on every invocation and never
// cached or mutated afterwards.
type Resolution struct {
	// ConfigFile is the path to hand to the external tool. Either an
	// absolute path (OutcomeOverride) or a path relative to ProjectRoot
	// (OutcomeFound). Empty when Outcome is OutcomeNone.
	ConfigFile string `json:"configFile,omitempty"`

	// ProjectRoot is the directory the search treated as the project root:
	// the nearest ancestor containing mix.exs, or the workspace root when
	// no marker was found.
	ProjectRoot string `json:"projectRoot"`

	// Outcome records how ConfigFile was chosen.
	Outcome Outcome `json:"outcome"`

	// Candidates is the number of existing candidate files the search
	// found. Greater than one means the choice was made among duplicates.
	Candidates int `json:"candidates"`
}

// Found reports whether a configuration file was resolved, by override
// or by search.
func (r Resolution) Found() bool {
	return r.Outcome == OutcomeOverride || r.Outcome == OutcomeFound
}

// Invocation is the fully assembled external-tool command: an ordered
// argument vector plus the environment it should be launched with.
// It is built once per request and consumed immediately by the host's
// process launcher — single use, no ownership concerns.
type Invocation struct {
	// Args is the complete argument vector, including the program name
	// at index 0 (always "mix"). Order is significant and deterministic.
	Args []string `json:"args"`

	// Env is the launch environment in "KEY=value" form, derived from the
	// ambient process environment with the executePath override applied.
	Env []string `json:"env,omitempty"`
}

// Program returns the executable name (argv[0]) of the invocation.
func (i Invocation) Program() string {
	if len(i.Args) == 0 {
		return ""
	}
	return i.Args[0]
}

// String returns the invocation as a single space-joined command line,
// intended for logs and human-readable output (no shell quoting).
func (i Invocation) String() string {
	return strings.Join(i.Args, " ")
}

// ExitCode defines standard CLI exit codes. These codes allow editor hosts
// and scripts to programmatically determine the outcome of a command.
type ExitCode int

const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess ExitCode = 0

	// ExitGeneralError indicates an unspecified error occurred.
	ExitGeneralError ExitCode = 1

	// ExitSettingsError indicates the workspace settings file exists but
	// could not be parsed or failed validation.
	ExitSettingsError ExitCode = 2

	// ExitWorkspaceError indicates the workspace root is invalid, e.g. the
	// target file is not inside the workspace, so the bounded upward search
	// has no defined stop point.
	ExitWorkspaceError ExitCode = 3
)

// CLIError is a custom error type that carries an exit code.
// This allows the CLI layer to translate domain errors into
// appropriate process exit codes.
type CLIError struct {
	// Code is the exit code to return to the OS.
	Code ExitCode

	// Message is the human-readable error description.
	Message string

	// Err is the underlying error, if any.
	Err error
}

// Error satisfies the error interface. It returns the human-readable
// error message, optionally including the underlying error.
func (e *CLIError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the underlying error for use with errors.Is/errors.As.
func (e *CLIError) Unwrap() error {
	return e.Err
}

// NewCLIError creates a new CLIError with the given exit code and message.
func NewCLIError(code ExitCode, message string) *CLIError {
	return &CLIError{Code: code, Message: message}
}

// WrapCLIError creates a new CLIError that wraps an existing error.
func WrapCLIError(code ExitCode, message string, err error) *CLIError {
	return &CLIError{Code: code, Message: message, Err: err}
}
