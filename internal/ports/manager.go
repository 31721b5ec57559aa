package ports

import (
	"context"

	"devsetup/internal/types"
)

// ManagerPort probes package managers for presence and bootstraps the
// ones that ship an install mechanism.
type ManagerPort interface {
	Probe(ctx context.Context, kind types.ManagerKind) types.ProbeResult
	Bootstrap(ctx context.Context, kind types.ManagerKind) error
}
