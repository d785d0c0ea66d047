// Package cli — resolve.go implements the "credo-bridge resolve" command.
//
// The resolve command locates the active Credo configuration file for a
// source file and reports the result without assembling a command line.
// It is the diagnostic counterpart of "command": when the linter behaves
// unexpectedly, resolve shows which config file would be used and why.
package cli

import (
	"encoding/json"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/mmr-tortoise/credo-bridge/internal/credo"
	"github.com/mmr-tortoise/credo-bridge/internal/model"
	"github.com/mmr-tortoise/credo-bridge/internal/settings"
)

// resolveFlags holds the flag values for the resolve command.
type resolveFlags struct {
	configFile string // --config-file: override the settings-file value
}

// NewResolveCommand creates the "resolve" cobra command.
// It is called from NewRootCommand to register as a subcommand.
func NewResolveCommand() *cobra.Command {
	flags := &resolveFlags{}

	cmd := &cobra.Command{
		Use:   "resolve <file>",
		Short: "Resolve the active Credo configuration file for a source file",
		Long: `Resolve which .credo.exs file applies to the given Elixir source file.

The search runs upward from the file to the nearest directory containing
mix.exs, bounded by the workspace root, then checks the project root and
its config/ subdirectory. An absolute path configured via settings wins
outright when it exists.

Examples:
  credo-bridge resolve lib/my_app/accounts.ex
  credo-bridge resolve --workspace-root ~/src/my_app lib/my_app/accounts.ex
  credo-bridge resolve --config-file .strict-credo.exs lib/demo.ex --json`,

		Args: cobra.ExactArgs(1),

		RunE: func(cmd *cobra.Command, args []string) error {
			return runResolve(args[0], flags)
		},
	}

	cmd.Flags().StringVar(&flags.configFile, "config-file", "", "Config file name or absolute path (default: from settings)")

	return cmd
}

// runResolve performs the resolution and prints the outcome.
func runResolve(sourceFile string, flags *resolveFlags) error {
	root, err := resolveWorkspaceRoot()
	if err != nil {
		return err
	}

	sourceFile, err = filepath.Abs(sourceFile)
	if err != nil {
		return model.WrapCLIError(model.ExitGeneralError, "failed to resolve source file path", err)
	}

	loaded, err := settings.Load(root)
	if err != nil {
		return err
	}
	VerboseLog("Settings source: %s", sourceOrDefaults(loaded.Source))

	st := loaded.Settings
	if flags.configFile != "" {
		st.ConfigFile = flags.configFile
	}

	res, err := credo.ResolveConfigFile(sourceFile, root, st, credo.NewStderrLogger(verbose))
	if err != nil {
		return err
	}

	if jsonOutput {
		data, marshalErr := json.MarshalIndent(res, "", "  ")
		if marshalErr != nil {
			return model.WrapCLIError(model.ExitGeneralError, "failed to marshal resolution", marshalErr)
		}
		fmt.Println(string(data))
		return nil
	}

	printResolution(res)
	return nil
}

// printResolution renders the resolution in human-readable form.
func printResolution(res model.Resolution) {
	switch res.Outcome {
	case model.OutcomeOverride:
		fmt.Printf("%s %s\n", styleLabel("Config file:"), stylePath(res.ConfigFile))
		fmt.Printf("%s absolute override\n", styleLabel("Chosen via:"))
	case model.OutcomeFound:
		fmt.Printf("%s %s\n", styleLabel("Config file:"), stylePath(res.ConfigFile))
		fmt.Printf("%s %s\n", styleLabel("Project root:"), stylePath(res.ProjectRoot))
		if res.Candidates > 1 {
			fmt.Printf("%s first of %d candidates\n", styleLabel("Chosen via:"), res.Candidates)
		} else {
			fmt.Printf("%s project search\n", styleLabel("Chosen via:"))
		}
	case model.OutcomeNone:
		fmt.Println(styleDim("No config file found; credo will use its default configuration."))
		fmt.Printf("%s %s\n", styleLabel("Project root:"), stylePath(res.ProjectRoot))
	}
}

// sourceOrDefaults renders a settings source path for verbose logging.
func sourceOrDefaults(source string) string {
	if source == "" {
		return "(built-in defaults)"
	}
	return source
}
