package app

import (
	"context"
	"fmt"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"devsetup/internal/types"
)

// resolveManager decides which backend performs this run's installs.
// Resolution order: explicit preference, first backend probed present
// in fixed priority order, then the winget fallback. The result is
// resolved once and reused for every install of the run.
//
// If the chosen backend is absent, a bootstrap is attempted exactly
// once (never for winget, which has no bootstrap, and never when
// allowBootstrap is false, i.e. dry runs). The returned error is a
// warning: the caller keeps going and lets each install fail
// individually, per the continue-past-failures contract.
func (s Service) resolveManager(ctx context.Context, preference types.ManagerKind, allowBootstrap bool) (types.ManagerKind, error) {
	kind := preference
	if kind == "" {
		for _, candidate := range types.ManagerProbeOrder {
			probe := s.Manager.Probe(ctx, candidate)
			if probe.Present {
				log.Info().
					Str("manager", string(candidate)).
					Str("version", probe.Version).
					Msg("package manager detected")
				return candidate, nil
			}
		}
		kind = types.ManagerFallback
	}

	probe := s.Manager.Probe(ctx, kind)
	if probe.Present {
		log.Info().
			Str("manager", string(kind)).
			Str("version", probe.Version).
			Msg("package manager selected")
		return kind, nil
	}

	if kind != types.ManagerWinget && allowBootstrap {
		if err := s.Manager.Bootstrap(ctx, kind); err != nil {
			log.Warn().Err(err).Str("manager", string(kind)).Msg("bootstrap failed")
		}
		if s.Manager.Probe(ctx, kind).Present {
			return kind, nil
		}
	}

	return kind, errbuilder.New().
		WithCode(errbuilder.CodeFailedPrecondition).
		WithMsg(fmt.Sprintf("package manager unavailable: %s is not installed", kind))
}
