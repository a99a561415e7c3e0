package leads

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"leadbook/internal/client/storage"
	"leadbook/pkg/api"
)

// Lister is the read side of the record store
type Lister interface {
	ListLeads(ctx context.Context) ([]api.Lead, error)
}

// Cache mirrors the server's lead collection. It is replaced wholesale
// on every Load, never merged, so client and server cannot drift.
// A bolt-backed snapshot keeps the last loaded list available offline.
type Cache struct {
	logger    *slog.Logger
	store     Lister
	snapshots storage.SnapshotStorage
	mu        sync.RWMutex
	records   []api.Lead
}

// NewCache creates a cache over the given record store.
// snapshots may be nil; persistence is then skipped.
func NewCache(logger *slog.Logger, store Lister, snapshots storage.SnapshotStorage) *Cache {
	return &Cache{
		logger:    logger,
		store:     store,
		snapshots: snapshots,
	}
}

// Load fetches the full collection and replaces the cache.
// On failure the previous contents stay untouched.
func (c *Cache) Load(ctx context.Context) error {
	records, err := c.store.ListLeads(ctx)
	if err != nil {
		return fmt.Errorf("failed to load leads: %w", err)
	}

	c.mu.Lock()
	c.records = records
	c.mu.Unlock()

	c.persist(ctx)
	return nil
}

// LoadSnapshot fills the cache from the local snapshot without
// touching the network
func (c *Cache) LoadSnapshot(ctx context.Context) error {
	if c.snapshots == nil {
		return storage.ErrNoSnapshot
	}

	records, err := c.snapshots.GetLeads(ctx)
	if err != nil {
		return err
	}

	c.mu.Lock()
	c.records = records
	c.mu.Unlock()
	return nil
}

// RemoveByID drops the record with the given ID from the cache.
// Used after a server-acknowledged delete, where the identity is
// already known and a full reload would be wasted.
func (c *Cache) RemoveByID(ctx context.Context, id string) {
	c.mu.Lock()
	filtered := c.records[:0:0]
	for _, r := range c.records {
		if r.ID != id {
			filtered = append(filtered, r)
		}
	}
	c.records = filtered
	c.mu.Unlock()

	c.persist(ctx)
}

// Upsert replaces the record with a matching ID, or appends when no
// match exists. Used when reload-after-mutation is disabled.
func (c *Cache) Upsert(ctx context.Context, lead api.Lead) {
	c.mu.Lock()
	replaced := false
	for i, r := range c.records {
		if r.ID == lead.ID {
			c.records[i] = lead
			replaced = true
			break
		}
	}
	if !replaced {
		c.records = append(c.records, lead)
	}
	c.mu.Unlock()

	c.persist(ctx)
}

// Records returns a copy of the cached records in server order
func (c *Cache) Records() []api.Lead {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]api.Lead, len(c.records))
	copy(out, c.records)
	return out
}

// Get returns the cached record with the given ID
func (c *Cache) Get(id string) (api.Lead, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	for _, r := range c.records {
		if r.ID == id {
			return r, true
		}
	}
	return api.Lead{}, false
}

// persist writes the current records to the local snapshot, best effort
func (c *Cache) persist(ctx context.Context) {
	if c.snapshots == nil {
		return
	}

	c.mu.RLock()
	records := make([]api.Lead, len(c.records))
	copy(records, c.records)
	c.mu.RUnlock()

	if err := c.snapshots.SaveLeads(ctx, records); err != nil {
		c.logger.Warn("failed to persist lead snapshot", "error", err)
	}
}
