package profile

import (
	"sync"
)

// Store holds named profiles with a fixed default fallback
// Lookup never fails; Put overwrites silently
type Store struct {
	mu      sync.RWMutex
	entries map[string]Profile
}

func NewStore() *Store {
	return &Store{
		entries: make(map[string]Profile),
	}
}

// Put inserts or overwrites the profile under key
// No validation happens here; the integrator clamps defensively at use
func (s *Store) Put(key string, p Profile) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[key] = p
}

// Get returns the stored profile or the fixed default if absent
func (s *Store) Get(key string) Profile {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if p, ok := s.entries[key]; ok {
		return p
	}
	return Default()
}

// Len returns the number of explicitly stored profiles
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}
