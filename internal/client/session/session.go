package session

import (
	"context"
	"errors"
	"time"

	"leadbook/internal/client/storage"
)

//go:generate moq -out session_mock.go . Session

// Session holds the bearer token for the signed-in operator.
// It replaces ambient token storage: everything that needs the token
// receives a Session, so tests can substitute a fake.
type Session interface {
	// Set stores a new token with its expiry, replacing any previous one
	Set(ctx context.Context, email, token string, expiresIn int64) error

	// Get returns the current token
	// Returns ErrNotAuthenticated if no valid session exists
	Get(ctx context.Context) (*storage.AuthData, error)

	// Clear removes the session (logout). Clearing an absent session
	// is not an error.
	Clear(ctx context.Context) error
}

// ErrNotAuthenticated indicates that no signed-in session exists
var ErrNotAuthenticated = errors.New("not authenticated, please run 'leadbook login' first")

// Store is the bolt-backed Session implementation
type Store struct {
	storage storage.AuthStorage
	now     func() time.Time
}

// Compile-time check that Store implements Session
var _ Session = (*Store)(nil)

// New creates a Session backed by the given auth storage
func New(authStorage storage.AuthStorage) *Store {
	return &Store{
		storage: authStorage,
		now:     time.Now,
	}
}

// Set stores a new session token
func (s *Store) Set(ctx context.Context, email, token string, expiresIn int64) error {
	auth := &storage.AuthData{
		Email:       email,
		AccessToken: token,
		ExpiresAt:   s.now().Unix() + expiresIn,
	}
	return s.storage.SaveAuth(ctx, auth)
}

// Get returns the current session if it exists and has not expired
func (s *Store) Get(ctx context.Context) (*storage.AuthData, error) {
	auth, err := s.storage.GetAuth(ctx)
	if err != nil {
		if errors.Is(err, storage.ErrAuthNotFound) {
			return nil, ErrNotAuthenticated
		}
		return nil, err
	}

	if s.now().Unix() >= auth.ExpiresAt {
		return nil, ErrNotAuthenticated
	}

	return auth, nil
}

// Clear removes the session
func (s *Store) Clear(ctx context.Context) error {
	err := s.storage.DeleteAuth(ctx)
	if err != nil && !errors.Is(err, storage.ErrAuthNotFound) {
		return err
	}
	return nil
}
