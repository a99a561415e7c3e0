package boltdb

import (
	"context"
	"encoding/json"
	"fmt"

	"go.etcd.io/bbolt"

	"leadbook/internal/client/storage"
	"leadbook/pkg/api"
)

var snapshotKey = []byte("snapshot")

// SaveLeads replaces the stored lead snapshot.
// The slice is stored as one JSON value so server order survives.
func (s *Storage) SaveLeads(ctx context.Context, leads []api.Lead) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketLeads)
		if bucket == nil {
			return fmt.Errorf("leads bucket not found")
		}

		data, err := json.Marshal(leads)
		if err != nil {
			return fmt.Errorf("failed to marshal leads: %w", err)
		}

		if err := bucket.Put(snapshotKey, data); err != nil {
			return fmt.Errorf("failed to save leads snapshot: %w", err)
		}

		return nil
	})
}

// GetLeads returns the stored lead snapshot
func (s *Storage) GetLeads(ctx context.Context) ([]api.Lead, error) {
	var leads []api.Lead

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketLeads)
		if bucket == nil {
			return fmt.Errorf("leads bucket not found")
		}

		data := bucket.Get(snapshotKey)
		if data == nil {
			return storage.ErrNoSnapshot
		}

		if err := json.Unmarshal(data, &leads); err != nil {
			return fmt.Errorf("failed to unmarshal leads: %w", err)
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	return leads, nil
}
