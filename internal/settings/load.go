package settings

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"

	"github.com/mmr-tortoise/credo-bridge/internal/model"
)

// Settings file names probed at the workspace root, in priority order.
const (
	// JSONFileName is the preferred settings file. JSONC comments and
	// trailing commas are allowed, like editor settings files.
	JSONFileName = ".credo-bridge.json"

	// YAMLFileName is the YAML alternative, consulted only when the JSON
	// file does not exist.
	YAMLFileName = ".credo-bridge.yaml"
)

// Loaded pairs the effective settings with the file they came from.
type Loaded struct {
	// Settings is the normalized, validated settings value.
	Settings model.Settings

	// Source is the absolute path of the settings file that was read,
	// or empty when no file existed and defaults apply.
	Source string
}

// Load reads the workspace settings for the given workspace root.
//
// The JSON file wins over the YAML file when both exist. When neither
// exists, Load returns default settings with an empty Source. Parse and
// validation failures are returned as CLIError with ExitSettingsError.
func Load(workspaceRoot string) (Loaded, error) {
	jsonPath := filepath.Join(workspaceRoot, JSONFileName)
	if data, err := os.ReadFile(jsonPath); err == nil {
		s, parseErr := parseJSON(data)
		if parseErr != nil {
			return Loaded{}, model.WrapCLIError(model.ExitSettingsError,
				fmt.Sprintf("failed to parse %s", jsonPath), parseErr)
		}
		return finish(s, jsonPath)
	} else if !os.IsNotExist(err) {
		return Loaded{}, model.WrapCLIError(model.ExitSettingsError,
			fmt.Sprintf("failed to read %s", jsonPath), err)
	}

	yamlPath := filepath.Join(workspaceRoot, YAMLFileName)
	if data, err := os.ReadFile(yamlPath); err == nil {
		s, parseErr := parseYAML(data)
		if parseErr != nil {
			return Loaded{}, model.WrapCLIError(model.ExitSettingsError,
				fmt.Sprintf("failed to parse %s", yamlPath), parseErr)
		}
		return finish(s, yamlPath)
	} else if !os.IsNotExist(err) {
		return Loaded{}, model.WrapCLIError(model.ExitSettingsError,
			fmt.Sprintf("failed to read %s", yamlPath), err)
	}

	return finish(model.Settings{}, "")
}

// finish normalizes and validates settings before handing them to callers.
func finish(s model.Settings, source string) (Loaded, error) {
	s = s.Normalize()
	if err := s.Validate(); err != nil {
		msg := "invalid settings"
		if source != "" {
			msg = fmt.Sprintf("invalid settings in %s", source)
		}
		return Loaded{}, model.WrapCLIError(model.ExitSettingsError, msg, err)
	}
	return Loaded{Settings: s, Source: source}, nil
}

// parseJSON strips JSONC comments and trailing commas, then parses with the
// standard encoding/json. Unknown fields are silently ignored, which lets
// hosts keep unrelated keys in the same file.
func parseJSON(data []byte) (model.Settings, error) {
	var s model.Settings
	if err := json.Unmarshal(jsonc.ToJSON(data), &s); err != nil {
		return model.Settings{}, err
	}
	return s, nil
}

// parseYAML parses the YAML settings format.
func parseYAML(data []byte) (model.Settings, error) {
	var s model.Settings
	if err := yaml.Unmarshal(data, &s); err != nil {
		return model.Settings{}, err
	}
	return s, nil
}
