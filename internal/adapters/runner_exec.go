package adapters

import (
	"context"
	"os/exec"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"devsetup/internal/ports"
	"devsetup/internal/shared"
)

// ExecRunner runs external commands synchronously, blocking until
// each one exits. Combined output is returned so callers can surface
// backend error text.
type ExecRunner struct{}

func NewExecRunner() ExecRunner {
	return ExecRunner{}
}

func (r ExecRunner) Run(ctx context.Context, name string, args ...string) (string, error) {
	log.Debug().Str("command", name).Strs("args", args).Msg("running external command")
	cmd := exec.CommandContext(ctx, name, args...)
	output, err := cmd.CombinedOutput()
	if err != nil {
		return string(output), errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("command failed: " + name).
			WithCause(shared.CommandError(output, err))
	}
	return string(output), nil
}

var _ ports.RunnerPort = ExecRunner{}
