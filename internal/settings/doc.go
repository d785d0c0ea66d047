// Package settings loads credo-bridge workspace settings from disk.
//
// Settings live at the workspace root in one of two formats, checked in
// order:
//
//   - .credo-bridge.json — JSONC (JSON with comments), matching the format
//     editor settings files are usually written in
//   - .credo-bridge.yaml
//
// A missing settings file is not an error: defaults apply. A settings file
// that exists but cannot be parsed or validated is a hard error, because
// silently linting with the wrong flags is worse than failing.
package settings
