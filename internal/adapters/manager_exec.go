package adapters

import (
	"context"

	"github.com/rs/zerolog/log"

	"devsetup/internal/core"
	"devsetup/internal/ports"
	"devsetup/internal/shared"
	"devsetup/internal/types"
)

// ManagerExecAdapter probes and bootstraps package managers through
// the runner. A probe is one `<manager> --version` call: a zero exit
// means present, anything else (including a failed spawn) means
// absent.
type ManagerExecAdapter struct {
	Runner ports.RunnerPort
}

func NewManagerExecAdapter(runner ports.RunnerPort) ManagerExecAdapter {
	return ManagerExecAdapter{Runner: runner}
}

func (a ManagerExecAdapter) Probe(ctx context.Context, kind types.ManagerKind) types.ProbeResult {
	invocation := core.ProbeInvocation(kind)
	output, err := a.Runner.Run(ctx, invocation.Name, invocation.Args...)
	if err != nil {
		log.Debug().Str("manager", string(kind)).Msg("package manager not present")
		return types.ProbeResult{Kind: kind}
	}
	return types.ProbeResult{
		Kind:    kind,
		Present: true,
		Version: shared.FirstLine(output),
	}
}

func (a ManagerExecAdapter) Bootstrap(ctx context.Context, kind types.ManagerKind) error {
	invocation, err := core.BootstrapInvocation(kind)
	if err != nil {
		return err
	}
	log.Info().Str("manager", string(kind)).Msg("bootstrapping package manager")
	if _, err := a.Runner.Run(ctx, invocation.Name, invocation.Args...); err != nil {
		return err
	}
	return nil
}

var _ ports.ManagerPort = ManagerExecAdapter{}
