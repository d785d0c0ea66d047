// env.go builds the launch environment for an invocation. The ambient
// process environment is copied verbatim; the only modification is
// prepending Settings.ExecutePath to PATH when it is configured, using the
// platform path-list separator.
package credo

import (
	"os"
	"strings"

	"github.com/mmr-tortoise/credo-bridge/internal/model"
)

// pathVariable is the environment variable holding the executable search
// path. Matched case-insensitively because Windows environments commonly
// spell it "Path".
const pathVariable = "PATH"

// BuildEnv returns a copy of environ with the executePath override applied.
// When no override is configured the copy is returned unchanged; the input
// slice is never mutated either way.
func BuildEnv(environ []string, settings model.Settings) []string {
	env := make([]string, len(environ))
	copy(env, environ)

	if settings.ExecutePath == "" {
		return env
	}

	sep := string(os.PathListSeparator)
	for i, kv := range env {
		key, value, ok := strings.Cut(kv, "=")
		if !ok || !strings.EqualFold(key, pathVariable) {
			continue
		}
		env[i] = key + "=" + settings.ExecutePath + sep + value
		return env
	}

	// No PATH entry at all in the ambient environment: introduce one so
	// the override still takes effect.
	return append(env, pathVariable+"="+settings.ExecutePath)
}
