package storage

import (
	"context"

	"leadbook/pkg/api"
)

// SnapshotStorage keeps the last lead collection fetched from the
// server, in server order. Purely a convenience mirror: it is replaced
// wholesale after every successful load and never merged.
type SnapshotStorage interface {
	// SaveLeads replaces the stored snapshot
	SaveLeads(ctx context.Context, leads []api.Lead) error

	// GetLeads returns the stored snapshot
	// Returns ErrNoSnapshot if nothing has been cached yet
	GetLeads(ctx context.Context) ([]api.Lead, error)
}
