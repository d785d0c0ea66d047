// locate.go implements the configuration locator: a bounded upward search
// for the active Credo configuration file.
//
// Resolution policy (highest priority first):
//  1. An absolute, existing path in Settings.ConfigFile wins verbatim.
//  2. Otherwise the project root is the nearest ancestor of the source file
//     containing mix.exs, searching no further up than the workspace root.
//     When no marker is found, the workspace root itself is the project root.
//  3. Candidates are checked in fixed order: <root>/<name>, then
//     <root>/config/<name>. The first existing candidate wins; duplicates
//     are reported through the injected logger.
//
// The returned config path is relative to the project root, which keeps the
// assembled command line compact and reproducible across machines.
package credo

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mmr-tortoise/credo-bridge/internal/model"
)

const (
	// ProjectMarker is the file that identifies a Mix project root.
	ProjectMarker = "mix.exs"

	// configSubdir is the conventional subdirectory for Elixir project
	// configuration, checked as the second candidate location.
	configSubdir = "config"
)

// ErrNotAncestor is returned when the stop boundary of an upward search is
// not the start directory or one of its ancestors. Without that relationship
// the search would walk to the filesystem root with no defined stop, so it
// is rejected up front instead.
var ErrNotAncestor = errors.New("stop directory is not an ancestor of the start directory")

// FindUp walks from start upward through its ancestor chain looking for a
// directory that directly contains a file named name. The walk includes
// start itself and stops at stopAt (inclusive) — it never proceeds past the
// boundary, which keeps the search inside the workspace sandbox.
//
// Returns the containing directory and true on a hit, or "" and false when
// the boundary is reached without one. Absence is a normal result, not an
// error. The walk is iterative rather than recursive so deeply nested trees
// cost nothing but the loop.
func FindUp(start, stopAt, name string) (string, bool, error) {
	start = filepath.Clean(start)
	stopAt = filepath.Clean(stopAt)

	if !isAncestorOrSelf(stopAt, start) {
		return "", false, fmt.Errorf("findup %q from %q bounded by %q: %w", name, start, stopAt, ErrNotAncestor)
	}

	dir := start
	for {
		if fileExists(filepath.Join(dir, name)) {
			return dir, true, nil
		}
		if dir == stopAt {
			return "", false, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			// Filesystem root. Unreachable when stopAt is a valid
			// ancestor, but it terminates the loop regardless.
			return "", false, nil
		}
		dir = parent
	}
}

// ResolveConfigFile determines the active Credo configuration file for the
// given source file, bounded by the workspace root. The logger receives
// advisory warnings (suppressible via Settings.IgnoreWarnings) and
// debug-level notes; pass NopLogger() to discard them.
//
// A missing configuration file is not an error: the returned Resolution has
// OutcomeNone and the caller proceeds with the tool's built-in defaults.
// The only error conditions are malformed inputs, e.g. a source file that
// is not inside the workspace.
func ResolveConfigFile(sourceFile, workspaceRoot string, settings model.Settings, log Logger) (model.Resolution, error) {
	if log == nil {
		log = NopLogger()
	}
	settings = settings.Normalize()
	name := settings.ConfigFile

	// An absolute override that exists wins outright, regardless of any
	// project-relative candidates.
	if filepath.IsAbs(name) {
		if fileExists(name) {
			return model.Resolution{
				ConfigFile: name,
				Outcome:    model.OutcomeOverride,
				Candidates: 1,
			}, nil
		}
		// Fall through to the project search using the base name. The
		// fallback is deliberate: settings files are often shared across
		// machines where the absolute path exists only on some of them.
		log.Debugf("configured config file %s does not exist, falling back to project search", name)
		name = filepath.Base(name)
	}

	startDir := filepath.Dir(filepath.Clean(sourceFile))
	projectRoot, found, err := FindUp(startDir, workspaceRoot, ProjectMarker)
	if err != nil {
		return model.Resolution{}, model.WrapCLIError(model.ExitWorkspaceError,
			fmt.Sprintf("cannot resolve config for %s", sourceFile), err)
	}
	if !found {
		// No mix.exs between the file and the workspace boundary: treat
		// the workspace root itself as the project root so single-folder
		// setups without a Mix project still resolve workspace-level
		// config files.
		projectRoot = filepath.Clean(workspaceRoot)
		log.Debugf("no %s found above %s, using workspace root %s", ProjectMarker, startDir, projectRoot)
	}

	// Candidate locations in fixed priority order.
	candidates := []string{
		filepath.Join(projectRoot, name),
		filepath.Join(projectRoot, configSubdir, name),
	}

	var existing []string
	for _, candidate := range candidates {
		if fileExists(candidate) {
			existing = append(existing, candidate)
		}
	}

	if len(existing) == 0 {
		if !settings.IgnoreWarnings {
			log.Warnf("no %s file found in %s; credo will use its default configuration", name, projectRoot)
		}
		return model.Resolution{
			ProjectRoot: projectRoot,
			Outcome:     model.OutcomeNone,
		}, nil
	}

	chosen := existing[0]
	if len(existing) > 1 && !settings.IgnoreWarnings {
		log.Warnf("found multiple %s files (%s); using %s", name, strings.Join(existing, ", "), chosen)
	}

	return model.Resolution{
		ConfigFile:  relativeToRoot(projectRoot, chosen),
		ProjectRoot: projectRoot,
		Outcome:     model.OutcomeFound,
		Candidates:  len(existing),
	}, nil
}

// relativeToRoot strips the project-root prefix (and its trailing separator)
// from path, yielding a project-relative path like "config/.credo.exs".
func relativeToRoot(root, path string) string {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return path
	}
	return rel
}

// isAncestorOrSelf reports whether ancestor is dir itself or one of its
// ancestors. Both paths must already be cleaned.
func isAncestorOrSelf(ancestor, dir string) bool {
	rel, err := filepath.Rel(ancestor, dir)
	if err != nil {
		return false
	}
	if rel == "." {
		return true
	}
	return rel != ".." && !strings.HasPrefix(rel, ".."+string(os.PathSeparator)) && !filepath.IsAbs(rel)
}

// fileExists reports whether path exists and is a regular file (or at least
// not a directory). os.Stat is all we need — contents are never read here.
func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
