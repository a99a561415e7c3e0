package boltdb

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"leadbook/internal/client/storage"
	"leadbook/pkg/api"
)

func newTestStorage(t *testing.T) *Storage {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "leadbook-test.db")
	s, err := New(context.Background(), dbPath)
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, s.Close())
	})

	return s
}

func TestAuth_SaveGetDelete(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	auth := &storage.AuthData{
		Email:       "operator@example.com",
		AccessToken: "token-abc",
		ExpiresAt:   1234567890,
	}

	require.NoError(t, s.SaveAuth(ctx, auth))

	got, err := s.GetAuth(ctx)
	require.NoError(t, err)
	assert.Equal(t, auth, got)

	require.NoError(t, s.DeleteAuth(ctx))

	_, err = s.GetAuth(ctx)
	assert.ErrorIs(t, err, storage.ErrAuthNotFound)
}

func TestAuth_GetWithoutSave(t *testing.T) {
	s := newTestStorage(t)

	_, err := s.GetAuth(context.Background())
	assert.ErrorIs(t, err, storage.ErrAuthNotFound)
}

func TestAuth_DeleteWithoutSave(t *testing.T) {
	s := newTestStorage(t)

	err := s.DeleteAuth(context.Background())
	assert.ErrorIs(t, err, storage.ErrAuthNotFound)
}

func TestAuth_SaveReplacesPrevious(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	require.NoError(t, s.SaveAuth(ctx, &storage.AuthData{Email: "old@example.com", AccessToken: "old"}))
	require.NoError(t, s.SaveAuth(ctx, &storage.AuthData{Email: "new@example.com", AccessToken: "new"}))

	got, err := s.GetAuth(ctx)
	require.NoError(t, err)
	assert.Equal(t, "new@example.com", got.Email)
	assert.Equal(t, "new", got.AccessToken)
}

func TestLeads_SnapshotRoundTrip(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	leads := []api.Lead{
		{ID: "1", Name: "Acme", BasePrice: 120, Country: "Japan"},
		{ID: "2", Name: "Globex", BasePrice: 90, Country: "Germany"},
	}

	require.NoError(t, s.SaveLeads(ctx, leads))

	got, err := s.GetLeads(ctx)
	require.NoError(t, err)
	assert.Equal(t, leads, got)
}

func TestLeads_SnapshotPreservesOrder(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	leads := []api.Lead{
		{ID: "3", Name: "Third"},
		{ID: "1", Name: "First"},
		{ID: "2", Name: "Second"},
	}

	require.NoError(t, s.SaveLeads(ctx, leads))

	got, err := s.GetLeads(ctx)
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, "3", got[0].ID)
	assert.Equal(t, "1", got[1].ID)
	assert.Equal(t, "2", got[2].ID)
}

func TestLeads_NoSnapshot(t *testing.T) {
	s := newTestStorage(t)

	_, err := s.GetLeads(context.Background())
	assert.ErrorIs(t, err, storage.ErrNoSnapshot)
}

func TestLeads_SnapshotReplacedWholesale(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	require.NoError(t, s.SaveLeads(ctx, []api.Lead{{ID: "1", Name: "Acme"}}))
	require.NoError(t, s.SaveLeads(ctx, []api.Lead{{ID: "2", Name: "Globex"}}))

	got, err := s.GetLeads(ctx)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "2", got[0].ID)
}
