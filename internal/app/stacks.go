package app

import "context"

// Stacks lists the stack catalog, with any override file applied.
func (s Service) Stacks(ctx context.Context, req StacksRequest) (StacksResult, error) {
	catalog, err := s.loadCatalog(ctx, req.StacksFile)
	if err != nil {
		return StacksResult{}, err
	}
	return StacksResult{Stacks: catalog}, nil
}
