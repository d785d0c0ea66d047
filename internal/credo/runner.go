// runner.go defines the seam between invocation assembly (this package's
// job) and process execution (the host's job). Editor hosts bring their own
// process machinery — streaming, cancellation, concurrency limits — so this
// package only specifies the contract it hands an Invocation to.
package credo

import (
	"context"
	"io"

	"github.com/mmr-tortoise/credo-bridge/internal/model"
)

// Result captures the outcome of one external-tool run.
type Result struct {
	// Stdout is the tool's standard output, which for Credo in JSON format
	// carries the machine-readable findings.
	Stdout []byte

	// Stderr is the tool's standard error output, usually compiler noise
	// or Mix diagnostics.
	Stderr []byte

	// ExitCode is the tool's process exit code. Credo encodes issue
	// presence in its exit code, so a non-zero code is not necessarily a
	// failure.
	ExitCode int
}

// Runner executes an assembled invocation and captures its output. The
// source file contents are supplied on stdin, matching the
// --read-from-stdin baseline flag every invocation carries.
//
// Implementations are expected to honor context cancellation by killing the
// external process.
type Runner interface {
	Run(ctx context.Context, invocation model.Invocation, stdin io.Reader) (Result, error)
}
