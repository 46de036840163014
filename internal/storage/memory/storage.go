package memory

import (
	"maps"
	"sync"

	"github.com/mcoot/kartgate/internal/storage"
)

// Storage is an in-memory implementation of the credential store
type Storage struct {
	mu sync.RWMutex

	passwords map[string]string
}

// New creates a new, empty in-memory storage instance
func New() *Storage {
	return &Storage{
		passwords: make(map[string]string),
	}
}

// Ensure Storage implements the interface
var _ storage.CredentialStore = (*Storage)(nil)

// Register stores the password for username, replacing any existing one
func (s *Storage) Register(username, password string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.passwords[username] = password
}

// Verify reports whether username exists and its password matches exactly
func (s *Storage) Verify(username, password string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	stored, ok := s.passwords[username]
	return ok && stored == password
}

// Len returns the number of registered usernames
func (s *Storage) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.passwords)
}

// Snapshot returns a copy of the current username -> password mapping
func (s *Storage) Snapshot() map[string]string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return maps.Clone(s.passwords)
}
