// Package session holds the operator's authentication state: the bearer
// token and the lazily validated current user. The token is persisted in the
// local profile database so it survives a client restart; it is never shared
// outside the profile directory.
package session

import (
	"context"
	"fmt"
	"sync"

	"github.com/dmitrijs2005/cmskeeper/internal/client/models"
	"github.com/dmitrijs2005/cmskeeper/internal/client/repositories/metadata"
)

const tokenKey = "token"

// Store is the single process-wide session value. The API gateway reads the
// token from it on every request and clears it on authorization failure; the
// route guard checks it before rendering protected screens.
type Store struct {
	mu    sync.Mutex
	repo  metadata.Repository
	token string
	user  *models.User
}

func NewStore(repo metadata.Repository) *Store {
	return &Store{repo: repo}
}

// Restore loads a previously persisted token, if any. The user is not
// restored: it is never trusted without a validation round-trip.
func (s *Store) Restore(ctx context.Context) error {
	v, err := s.repo.Get(ctx, tokenKey)
	if err != nil {
		return fmt.Errorf("restore session: %w", err)
	}
	s.mu.Lock()
	s.token = string(v)
	s.mu.Unlock()
	return nil
}

// Token returns the held credential, or "" when unauthenticated.
func (s *Store) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token
}

// HasCredential reports whether a credential is held, without any network
// round-trip.
func (s *Store) HasCredential() bool {
	return s.Token() != ""
}

// SetToken stores and persists a fresh credential.
func (s *Store) SetToken(ctx context.Context, token string) error {
	if err := s.repo.Set(ctx, tokenKey, []byte(token)); err != nil {
		return fmt.Errorf("persist session: %w", err)
	}
	s.mu.Lock()
	s.token = token
	s.mu.Unlock()
	return nil
}

// SetUser records the validated current user.
func (s *Store) SetUser(u *models.User) {
	s.mu.Lock()
	s.user = u
	s.mu.Unlock()
}

// User returns the last validated user, or nil.
func (s *Store) User() *models.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.user
}

// Clear drops the credential and user unconditionally, in memory and on
// disk. It is idempotent: clearing an empty session is not an error.
func (s *Store) Clear(ctx context.Context) error {
	s.mu.Lock()
	s.token = ""
	s.user = nil
	s.mu.Unlock()
	if err := s.repo.Clear(ctx); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	return nil
}
