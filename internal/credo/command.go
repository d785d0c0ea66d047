// command.go implements the command builder: pure assembly of the argument
// vector for a `mix credo` run from a Resolution and the user's Settings.
//
// The builder never touches the filesystem and raises no errors — it is a
// data transformation over already-validated inputs. Flag order is fixed so
// the assembled command is reproducible in logs and tests.
package credo

import (
	"github.com/mmr-tortoise/credo-bridge/internal/model"
)

const (
	// mixExecutable is the program every invocation starts with.
	mixExecutable = "mix"

	// credoTask is the Mix task name for Credo.
	credoTask = "credo"

	// diffTask is the Credo subcommand for diff mode. It changes the front
	// of the argument list, not an appended flag.
	diffTask = "diff"

	// DefaultMergeBase is the branch diffed against when diff mode is
	// enabled without an explicit merge base.
	DefaultMergeBase = "main"
)

// Flag names understood by Credo. Kept together so the full surface the
// builder emits is visible at a glance.
const (
	flagFormat           = "--format"
	formatJSON           = "json"
	flagReadFromStdin    = "--read-from-stdin"
	flagConfigFile       = "--config-file"
	flagConfigName       = "--config-name"
	flagChecksWithTag    = "--checks-with-tag"
	flagChecksWithoutTag = "--checks-without-tag"
	flagStrict           = "--strict"
	flagFromGitMergeBase = "--from-git-merge-base"
)

// BuildArgs assembles the complete argument vector for invoking Credo.
//
// The vector always starts with `mix credo` (or `mix credo diff` in diff
// mode) followed by the baseline flags requesting JSON output on stdin
// input. Conditional flags follow in fixed order: config file, config name,
// tag filters, strict, merge base.
//
// Tag filters are mutually exclusive by construction: a non-empty
// ChecksWithTag short-circuits ChecksWithoutTag entirely, matching the
// settings contract.
func BuildArgs(resolution model.Resolution, settings model.Settings) []string {
	args := []string{mixExecutable, credoTask}
	if settings.DiffMode.Enabled {
		args = append(args, diffTask)
	}
	args = append(args, flagFormat, formatJSON, flagReadFromStdin)

	if resolution.Found() {
		args = append(args, flagConfigFile, resolution.ConfigFile)
	}
	if settings.ConfigName != "" {
		args = append(args, flagConfigName, settings.ConfigName)
	}

	if len(settings.ChecksWithTag) > 0 {
		for _, tag := range settings.ChecksWithTag {
			args = append(args, flagChecksWithTag, tag)
		}
	} else {
		for _, tag := range settings.ChecksWithoutTag {
			args = append(args, flagChecksWithoutTag, tag)
		}
	}

	if settings.Strict {
		args = append(args, flagStrict)
	}

	if settings.DiffMode.Enabled {
		base := settings.DiffMode.MergeBase
		if base == "" {
			base = DefaultMergeBase
		}
		args = append(args, flagFromGitMergeBase, base)
	}

	return args
}

// BuildInvocation assembles the full invocation — argv plus launch
// environment — for the given resolution, settings, and ambient environment
// (typically os.Environ()).
func BuildInvocation(resolution model.Resolution, settings model.Settings, environ []string) model.Invocation {
	return model.Invocation{
		Args: BuildArgs(resolution, settings),
		Env:  BuildEnv(environ, settings),
	}
}
