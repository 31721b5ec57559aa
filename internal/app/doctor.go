package app

import (
	"context"

	"devsetup/internal/types"
)

// Doctor probes every supported backend and reports presence and
// version, without installing or bootstrapping anything.
func (s Service) Doctor(ctx context.Context) DoctorResult {
	probes := make([]types.ProbeResult, 0, len(types.ManagerProbeOrder))
	for _, kind := range types.ManagerProbeOrder {
		probes = append(probes, s.Manager.Probe(ctx, kind))
	}
	return DoctorResult{Probes: probes}
}
