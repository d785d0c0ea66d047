// Package cli — command.go implements the "credo-bridge command" command.
//
// The command command assembles the complete mix credo invocation for a
// source file: configuration resolution, flag assembly, and (optionally)
// the launch environment with the executePath override applied. The output
// is consumed by editor hosts that do their own process spawning.
//
// Flag overrides follow the usual precedence: CLI flags beat the workspace
// settings file, which beats built-in defaults. Boolean and list flags are
// applied only when explicitly set, so `--strict=false` can switch off a
// settings-file value.
package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/mmr-tortoise/credo-bridge/internal/credo"
	"github.com/mmr-tortoise/credo-bridge/internal/model"
	"github.com/mmr-tortoise/credo-bridge/internal/settings"
)

// commandFlags holds the flag values for the command command.
type commandFlags struct {
	configFile       string   // --config-file
	configName       string   // --config-name
	checksWithTag    []string // --checks-with-tag (repeatable)
	checksWithoutTag []string // --checks-without-tag (repeatable)
	strict           bool     // --strict
	diff             bool     // --diff
	mergeBase        string   // --merge-base
	printEnv         bool     // --print-env
}

// NewCommandCommand creates the "command" cobra command.
// It is called from NewRootCommand to register as a subcommand.
func NewCommandCommand() *cobra.Command {
	flags := &commandFlags{}

	cmd := &cobra.Command{
		Use:   "command <file>",
		Short: "Assemble the mix credo invocation for a source file",
		Long: `Assemble the full mix credo argument vector for the given source file.

The invocation always requests JSON output and reads the source from
standard input. Conditional flags are derived from the workspace settings
file, overridden by the flags below.

Examples:
  credo-bridge command lib/my_app/accounts.ex
  credo-bridge command --strict --checks-with-tag controversial lib/demo.ex
  credo-bridge command --diff --merge-base develop lib/demo.ex
  credo-bridge command --print-env lib/demo.ex --json`,

		Args: cobra.ExactArgs(1),

		RunE: func(cmd *cobra.Command, args []string) error {
			return runCommand(cmd, args[0], flags)
		},
	}

	cmd.Flags().StringVar(&flags.configFile, "config-file", "", "Config file name or absolute path (default: from settings)")
	cmd.Flags().StringVar(&flags.configName, "config-name", "", "Named configuration profile inside the config file")
	cmd.Flags().StringArrayVar(&flags.checksWithTag, "checks-with-tag", nil, "Only run checks with this tag (repeatable)")
	cmd.Flags().StringArrayVar(&flags.checksWithoutTag, "checks-without-tag", nil, "Skip checks with this tag (repeatable)")
	cmd.Flags().BoolVar(&flags.strict, "strict", false, "Enable strict mode")
	cmd.Flags().BoolVar(&flags.diff, "diff", false, "Analyze only changes relative to the merge base")
	cmd.Flags().StringVar(&flags.mergeBase, "merge-base", "", "Git reference for diff mode (default: main)")
	cmd.Flags().BoolVar(&flags.printEnv, "print-env", false, "Include the launch environment in the output")

	return cmd
}

// runCommand resolves the configuration and prints the assembled invocation.
func runCommand(cmd *cobra.Command, sourceFile string, flags *commandFlags) error {
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

	st := applyFlagOverrides(loaded.Settings, flags, cmd.Flags().Changed)
	if err := st.Validate(); err != nil {
		return model.WrapCLIError(model.ExitSettingsError, "invalid flag values", err)
	}

	res, err := credo.ResolveConfigFile(sourceFile, root, st, credo.NewStderrLogger(verbose))
	if err != nil {
		return err
	}
	VerboseLog("Config resolution: %s", res.Outcome)

	var environ []string
	if flags.printEnv {
		environ = credo.BuildEnv(os.Environ(), st)
	}
	inv := model.Invocation{Args: credo.BuildArgs(res, st), Env: environ}

	if jsonOutput {
		data, marshalErr := json.MarshalIndent(inv, "", "  ")
		if marshalErr != nil {
			return model.WrapCLIError(model.ExitGeneralError, "failed to marshal invocation", marshalErr)
		}
		fmt.Println(string(data))
		return nil
	}

	fmt.Println(styleCommand(inv.String()))
	if flags.printEnv {
		for _, kv := range inv.Env {
			fmt.Println(styleDim(kv))
		}
	}
	return nil
}

// applyFlagOverrides layers explicitly-set CLI flags over the loaded
// settings. The changed predicate reports whether a flag was set on the
// command line, which lets `--strict=false` override a settings-file true.
func applyFlagOverrides(st model.Settings, flags *commandFlags, changed func(string) bool) model.Settings {
	if changed("config-file") {
		st.ConfigFile = flags.configFile
	}
	if changed("config-name") {
		st.ConfigName = flags.configName
	}
	if changed("checks-with-tag") {
		st.ChecksWithTag = flags.checksWithTag
	}
	if changed("checks-without-tag") {
		st.ChecksWithoutTag = flags.checksWithoutTag
	}
	if changed("strict") {
		st.Strict = flags.strict
	}
	if changed("diff") {
		st.DiffMode.Enabled = flags.diff
	}
	if changed("merge-base") {
		st.DiffMode.MergeBase = flags.mergeBase
	}
	return st
}
