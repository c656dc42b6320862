// Package session tracks revoked auth tokens so logout takes effect
// immediately, before the JWT itself expires.
package session

import (
	"sync"
	"time"
)

// RevocationStore is an in-memory set of revoked token IDs with
// expiration. Entries expire when the underlying token would have
// expired anyway, at which point the JWT validation rejects it on its
// own and the entry is garbage.
type RevocationStore struct {
	mu      sync.RWMutex
	revoked map[string]time.Time
	stop    chan struct{}
}

// NewRevocationStore creates a store and starts a janitor goroutine
// that removes expired entries every cleanupInterval. A non-positive
// interval disables cleanup, which is only sensible in tests.
func NewRevocationStore(cleanupInterval time.Duration) *RevocationStore {
	s := &RevocationStore{
		revoked: make(map[string]time.Time),
		stop:    make(chan struct{}),
	}
	if cleanupInterval > 0 {
		go s.janitor(cleanupInterval)
	}
	return s
}

// Revoke marks a token ID as revoked until the given expiry.
func (s *RevocationStore) Revoke(tokenID string, until time.Time) {
	if tokenID == "" {
		return
	}
	s.mu.Lock()
	s.revoked[tokenID] = until
	s.mu.Unlock()
}

// IsRevoked reports whether a token ID has been revoked and the
// revocation is still in effect.
func (s *RevocationStore) IsRevoked(tokenID string) bool {
	s.mu.RLock()
	until, found := s.revoked[tokenID]
	s.mu.RUnlock()
	return found && time.Now().Before(until)
}

// Close stops the janitor goroutine.
func (s *RevocationStore) Close() {
	close(s.stop)
}

func (s *RevocationStore) janitor(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			now := time.Now()
			s.mu.Lock()
			for id, until := range s.revoked {
				if now.After(until) {
					delete(s.revoked, id)
				}
			}
			s.mu.Unlock()
		case <-s.stop:
			return
		}
	}
}
