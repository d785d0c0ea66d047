// Package cli — settings.go implements the "credo-bridge settings" command.
//
// The settings command prints the effective workspace settings after
// defaulting and validation, along with the file they were loaded from.
// Useful for debugging precedence questions ("why is strict mode on?").
package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mmr-tortoise/credo-bridge/internal/credo"
	"github.com/mmr-tortoise/credo-bridge/internal/model"
	"github.com/mmr-tortoise/credo-bridge/internal/settings"
)

// NewSettingsCommand creates the "settings" cobra command.
// It is called from NewRootCommand to register as a subcommand.
func NewSettingsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "settings",
		Short: "Show the effective workspace settings",
		Long: `Show the effective credo-bridge settings for the workspace.

Settings are read from .credo-bridge.json (JSONC) or .credo-bridge.yaml at
the workspace root; built-in defaults apply when neither exists.

Examples:
  credo-bridge settings
  credo-bridge settings --workspace-root ~/src/my_app --json`,

		Args: cobra.NoArgs,

		RunE: func(cmd *cobra.Command, args []string) error {
			return runSettings()
		},
	}
}

// settingsOutput is the JSON shape of the settings command output.
type settingsOutput struct {
	Settings model.Settings `json:"settings"`
	Source   string         `json:"source,omitempty"`
}

func runSettings() error {
	root, err := resolveWorkspaceRoot()
	if err != nil {
		return err
	}

	loaded, err := settings.Load(root)
	if err != nil {
		return err
	}

	if jsonOutput {
		data, marshalErr := json.MarshalIndent(settingsOutput{
			Settings: loaded.Settings,
			Source:   loaded.Source,
		}, "", "  ")
		if marshalErr != nil {
			return model.WrapCLIError(model.ExitGeneralError, "failed to marshal settings", marshalErr)
		}
		fmt.Println(string(data))
		return nil
	}

	printSettings(loaded)
	return nil
}

// printSettings renders the effective settings in human-readable form.
func printSettings(loaded settings.Loaded) {
	fmt.Printf("%s %s\n", styleLabel("Source:"), sourceOrDefaults(loaded.Source))

	st := loaded.Settings
	fmt.Printf("%s %s\n", styleLabel("Config file:"), st.ConfigFile)
	if st.ConfigName != "" {
		fmt.Printf("%s %s\n", styleLabel("Config name:"), st.ConfigName)
	}
	if len(st.ChecksWithTag) > 0 {
		fmt.Printf("%s %s\n", styleLabel("Checks with tag:"), strings.Join(st.ChecksWithTag, ", "))
	} else if len(st.ChecksWithoutTag) > 0 {
		fmt.Printf("%s %s\n", styleLabel("Checks without tag:"), strings.Join(st.ChecksWithoutTag, ", "))
	}
	fmt.Printf("%s %t\n", styleLabel("Strict:"), st.Strict)
	if st.DiffMode.Enabled {
		base := st.DiffMode.MergeBase
		if base == "" {
			base = credo.DefaultMergeBase
		}
		fmt.Printf("%s enabled (merge base: %s)\n", styleLabel("Diff mode:"), base)
	} else {
		fmt.Printf("%s disabled\n", styleLabel("Diff mode:"))
	}
	if st.ExecutePath != "" {
		fmt.Printf("%s %s\n", styleLabel("Execute path:"), stylePath(st.ExecutePath))
	}
}
