package model

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// --- Settings tests ---

func TestSettingsNormalize_DefaultsConfigFile(t *testing.T) {
	s := Settings{}.Normalize()
	assert.Equal(t, DefaultConfigFile, s.ConfigFile)
}

func TestSettingsNormalize_KeepsExplicitConfigFile(t *testing.T) {
	s := Settings{ConfigFile: ".custom.exs"}.Normalize()
	assert.Equal(t, ".custom.exs", s.ConfigFile)
}

func TestSettingsNormalize_DoesNotMutateReceiver(t *testing.T) {
	original := Settings{}
	_ = original.Normalize()
	assert.Empty(t, original.ConfigFile, "Normalize must return a copy")
}

func TestSettingsValidate_AcceptsZeroValue(t *testing.T) {
	assert.NoError(t, Settings{}.Validate())
}

func TestSettingsValidate_AcceptsTypicalSettings(t *testing.T) {
	s := Settings{
		ConfigFile:    ".credo.exs",
		ConfigName:    "ci",
		ChecksWithTag: []string{"controversial", "experimental"},
		Strict:        true,
		DiffMode:      DiffModeSettings{Enabled: true, MergeBase: "develop"},
	}
	assert.NoError(t, s.Validate())
}

func TestSettingsValidate_RejectsWhitespaceTokens(t *testing.T) {
	cases := []struct {
		name     string
		settings Settings
	}{
		{"config name with space", Settings{ConfigName: "my profile"}},
		{"include tag with tab", Settings{ChecksWithTag: []string{"ok", "bad\ttag"}}},
		{"exclude tag with newline", Settings{ChecksWithoutTag: []string{"bad\ntag"}}},
		{"merge base with space", Settings{DiffMode: DiffModeSettings{MergeBase: "origin main"}}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Error(t, tc.settings.Validate())
		})
	}
}

// --- Outcome tests ---

func TestOutcomeIsValid(t *testing.T) {
	assert.True(t, OutcomeOverride.IsValid())
	assert.True(t, OutcomeFound.IsValid())
	assert.True(t, OutcomeNone.IsValid())
	assert.False(t, Outcome("resolved").IsValid())
	assert.False(t, Outcome("").IsValid())
}

func TestParseOutcome(t *testing.T) {
	outcome, err := ParseOutcome("FOUND")
	require.NoError(t, err)
	assert.Equal(t, OutcomeFound, outcome)

	_, err = ParseOutcome("bogus")
	assert.Error(t, err)
}

func TestResolutionFound(t *testing.T) {
	assert.True(t, Resolution{Outcome: OutcomeOverride}.Found())
	assert.True(t, Resolution{Outcome: OutcomeFound}.Found())
	assert.False(t, Resolution{Outcome: OutcomeNone}.Found())
}

// --- Invocation tests ---

func TestInvocationProgram(t *testing.T) {
	inv := Invocation{Args: []string{"mix", "credo", "--strict"}}
	assert.Equal(t, "mix", inv.Program())
	assert.Equal(t, "mix credo --strict", inv.String())

	assert.Empty(t, Invocation{}.Program())
}

// --- CLIError tests ---

func TestCLIError_MessageOnly(t *testing.T) {
	err := NewCLIError(ExitWorkspaceError, "file is outside the workspace")
	assert.Equal(t, "file is outside the workspace", err.Error())
	assert.Equal(t, ExitWorkspaceError, err.Code)
}

func TestCLIError_WrapsUnderlying(t *testing.T) {
	underlying := fmt.Errorf("unexpected token at line 3")
	err := WrapCLIError(ExitSettingsError, "failed to parse settings", underlying)

	assert.Equal(t, "failed to parse settings: unexpected token at line 3", err.Error())
	assert.True(t, errors.Is(err, underlying), "errors.Is must see through Unwrap")

	var cliErr *CLIError
	require.True(t, errors.As(err, &cliErr))
	assert.Equal(t, ExitSettingsError, cliErr.Code)
}
