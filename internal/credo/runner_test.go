package credo

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmr-tortoise/credo-bridge/internal/model"
)

// fakeRunner records the invocation it receives and returns a canned result,
// the way an editor host's test double would.
type fakeRunner struct {
	gotInvocation model.Invocation
	gotStdin      string
	result        Result
}

func (f *fakeRunner) Run(_ context.Context, invocation model.Invocation, stdin io.Reader) (Result, error) {
	f.gotInvocation = invocation
	data, err := io.ReadAll(stdin)
	if err != nil {
		return Result{}, err
	}
	f.gotStdin = string(data)
	return f.result, nil
}

func TestRunner_ReceivesAssembledInvocation(t *testing.T) {
	res := model.Resolution{ConfigFile: ".credo.exs", Outcome: model.OutcomeFound}
	settings := model.Settings{Strict: true}
	inv := BuildInvocation(res, settings, []string{"PATH=/usr/bin"})

	runner := &fakeRunner{result: Result{
		Stdout:   []byte(`{"issues":[]}`),
		ExitCode: 0,
	}}

	var r Runner = runner
	result, err := r.Run(context.Background(), inv, strings.NewReader("defmodule Demo do\nend\n"))
	require.NoError(t, err)

	assert.Equal(t, inv, runner.gotInvocation)
	assert.Equal(t, "defmodule Demo do\nend\n", runner.gotStdin, "source contents travel on stdin")
	assert.JSONEq(t, `{"issues":[]}`, string(result.Stdout))
	assert.Zero(t, result.ExitCode)
}
