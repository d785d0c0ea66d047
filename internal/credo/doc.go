// Package credo locates Credo configuration files and assembles `mix credo`
// invocations for editor hosts.
//
// The package has two cooperating pieces:
//
//   - the config locator (locate.go): an upward directory search for
//     .credo.exs, bounded by the workspace root and anchored at the nearest
//     Mix project root;
//   - the command builder (command.go, env.go): pure assembly of the argv
//     and environment for a `mix credo` (or `mix credo diff`) run.
//
// Everything here is synchronous and stateless: each call recomputes from
// scratch, reads the filesystem only for existence checks, and never writes.
// Running the assembled invocation is the host's job, via the Runner
// interface (runner.go).
package credo
