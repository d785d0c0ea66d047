// Package cli implements the cobra-based CLI commands for credo-bridge.
//
// Each subcommand (resolve, command, settings) is defined in its own file
// within this package. This file defines the root command that serves as
// the parent for all subcommands and handles global flags.
package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/mmr-tortoise/credo-bridge/internal/model"
)

// Global flag variables shared across all subcommands.
// These are bound to cobra persistent flags on the root command,
// which makes them available to every subcommand automatically.
var (
	// jsonOutput controls whether command output is formatted as JSON.
	// When true, all output uses structured JSON format for machine
	// consumption — the natural mode when an editor host drives the CLI.
	jsonOutput bool

	// verbose enables detailed logging output for debugging.
	// When true, additional information about resolution steps is printed
	// to stderr.
	verbose bool

	// workspaceRoot is the upper bound for all upward searches. Empty
	// means the current working directory.
	workspaceRoot string
)

// version, commit, and date are set at build time via ldflags.
// They are injected from the main package to display version information.
var (
	// Version is the semantic version of the binary (e.g., "1.0.0").
	Version = "dev"

	// Commit is the Git commit hash the binary was built from.
	Commit = "none"

	// Date is the build timestamp.
	Date = "unknown"
)

// NewRootCommand creates and configures the root cobra command.
// This is the entry point for the entire CLI application.
//
// The root command itself does not perform any action — it only provides
// help text and global flags. Actual functionality is provided by
// subcommands (resolve, command, settings).
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "credo-bridge",
		Short: "Assemble Credo linter invocations for editor hosts",
		Long: `credo-bridge resolves the active Credo configuration for an Elixir source
file and assembles the exact mix credo command an editor should run.

It never executes the linter itself: the output is the argument vector and
launch environment, ready for the host's process launcher. Configuration
lookup walks upward from the source file to the nearest Mix project root,
bounded by the workspace root.`,

		// SilenceUsage prevents cobra from printing usage on every error.
		// We handle error output ourselves for cleaner UX.
		SilenceUsage: true,

		// SilenceErrors prevents cobra from printing errors automatically.
		// We format errors ourselves (text or JSON based on --json flag).
		SilenceErrors: true,

		// Version is displayed when --version flag is used.
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, Date),
	}

	// PersistentFlags are inherited by all subcommands.
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output in JSON format")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().StringVar(&workspaceRoot, "workspace-root", "", "Workspace root bounding the config search (default: current directory)")

	// Register subcommands. Each subcommand is defined in its own file
	// (resolve.go, command.go, settings.go) and returns a *cobra.Command.
	rootCmd.AddCommand(NewResolveCommand())
	rootCmd.AddCommand(NewCommandCommand())
	rootCmd.AddCommand(NewSettingsCommand())

	return rootCmd
}

// Execute runs the root command and handles exit codes.
// This is the main entry point called from main.go.
//
// It inspects errors returned by cobra commands and translates them
// into appropriate OS exit codes. CLIError types carry their own
// exit codes; other errors default to exit code 1.
func Execute(rootCmd *cobra.Command) {
	if err := rootCmd.Execute(); err != nil {
		if cliErr, ok := err.(*model.CLIError); ok {
			printError(cliErr.Message, cliErr.Err)
			os.Exit(int(cliErr.Code))
		}

		// Generic error — exit with code 1.
		printError(err.Error(), nil)
		os.Exit(int(model.ExitGeneralError))
	}
}

// printError outputs an error message in the appropriate format
// (JSON or text) based on the --json global flag.
func printError(message string, underlying error) {
	if jsonOutput {
		errObj := map[string]interface{}{
			"error": map[string]interface{}{
				"message": message,
			},
		}
		if underlying != nil {
			if errMap, ok := errObj["error"].(map[string]interface{}); ok {
				errMap["detail"] = underlying.Error()
			}
		}
		// Errors go to stderr even in JSON mode, because stdout is
		// reserved for successful command output.
		data, _ := json.MarshalIndent(errObj, "", "  ")
		fmt.Fprintln(os.Stderr, string(data))
	} else {
		if underlying != nil {
			fmt.Fprintf(os.Stderr, "Error: %s: %v\n", message, underlying)
		} else {
			fmt.Fprintf(os.Stderr, "Error: %s\n", message)
		}
	}
}

// VerboseLog prints a message to stderr only when verbose mode is enabled.
func VerboseLog(format string, args ...interface{}) {
	if verbose {
		fmt.Fprintf(os.Stderr, "[verbose] "+format+"\n", args...)
	}
}

// resolveWorkspaceRoot returns the absolute workspace root: the
// --workspace-root flag when set, otherwise the current working directory.
func resolveWorkspaceRoot() (string, error) {
	root := workspaceRoot
	if root == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return "", model.WrapCLIError(model.ExitGeneralError, "failed to get current directory", err)
		}
		root = cwd
	}
	abs, err := filepath.Abs(root)
	if err != nil {
		return "", model.WrapCLIError(model.ExitWorkspaceError, "failed to resolve workspace root", err)
	}
	return abs, nil
}
