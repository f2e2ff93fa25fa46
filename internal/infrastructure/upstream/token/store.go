// Package token provides the shared bearer-credential cache used by the
// upstream fetch clients.
package token

import (
	"context"
	"fmt"
	"sync"
	"time"
)

// refreshMargin is how close to expiry a cached credential may get before
// it is refreshed.
const refreshMargin = 60 * time.Second

// FetchFunc obtains a fresh credential and its expiry from the provider's
// token endpoint.
type FetchFunc func(ctx context.Context) (accessToken string, expiresAt time.Time, err error)

// Store caches a single bearer credential per provider instance. It is an
// injected dependency rather than package state so that multiple client
// instances don't collide and tests can drive the clock. Reads are
// check-then-maybe-refresh without a fetch lock; two concurrent callers
// may both refresh, which costs one redundant token request.
type Store struct {
	fetch FetchFunc
	now   func() time.Time

	mu        sync.RWMutex
	token     string
	expiresAt time.Time
}

func NewStore(fetch FetchFunc) *Store {
	return &Store{fetch: fetch, now: time.Now}
}

// Token returns a credential valid for at least the refresh margin,
// fetching a new one when the cached credential is absent or near expiry.
// A fetch failure is fatal to the calling operation; there is no retry.
func (s *Store) Token(ctx context.Context) (string, error) {
	s.mu.RLock()
	token, expiresAt := s.token, s.expiresAt
	s.mu.RUnlock()

	if token != "" && s.now().Add(refreshMargin).Before(expiresAt) {
		return token, nil
	}

	fresh, freshExpiry, err := s.fetch(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to obtain upstream credential: %w", err)
	}

	s.mu.Lock()
	s.token = fresh
	s.expiresAt = freshExpiry
	s.mu.Unlock()

	return fresh, nil
}

// Invalidate drops the cached credential, forcing a refresh on next use.
func (s *Store) Invalidate() {
	s.mu.Lock()
	s.token = ""
	s.mu.Unlock()
}
