package ports

import "context"

// RunnerPort is the single choke point for external processes. Every
// probe, bootstrap, and install goes through it, so tests can stub the
// whole outside world with one fake.
type RunnerPort interface {
	Run(ctx context.Context, name string, args ...string) (string, error)
}
