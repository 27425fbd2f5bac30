// Package roster keeps the in-memory client collection and the pure
// filter and pagination stages the dashboard list is built from.
package roster

import (
	"sync"

	"github.com/google/uuid"

	"github.com/aliskhannn/estate-crm/internal/model"
)

// Store is the cached client collection. The database stays the authority;
// the store only serves reads and is replaced or patched whole-record at a time.
type Store struct {
	mu      sync.RWMutex
	order   []uuid.UUID
	clients map[uuid.UUID]model.Client
	loaded  bool
}

// NewStore returns an empty, unloaded store.
func NewStore() *Store {
	return &Store{clients: make(map[uuid.UUID]model.Client)}
}

// Replace swaps the whole collection, keeping the given order.
func (s *Store) Replace(clients []model.Client) {
	order := make([]uuid.UUID, 0, len(clients))
	byID := make(map[uuid.UUID]model.Client, len(clients))

	for _, c := range clients {
		if _, dup := byID[c.ID]; !dup {
			order = append(order, c.ID)
		}
		byID[c.ID] = c
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.order = order
	s.clients = byID
	s.loaded = true
}

// Upsert replaces a client record or appends it when new.
func (s *Store) Upsert(c model.Client) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.clients[c.ID]; !ok {
		s.order = append(s.order, c.ID)
	}
	s.clients[c.ID] = c
}

// Remove drops the given ids and reports how many were present.
func (s *Store) Remove(ids ...uuid.UUID) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	drop := make(map[uuid.UUID]struct{}, len(ids))
	for _, id := range ids {
		if _, ok := s.clients[id]; ok {
			drop[id] = struct{}{}
			delete(s.clients, id)
		}
	}

	if len(drop) == 0 {
		return 0
	}

	kept := s.order[:0:0]
	for _, id := range s.order {
		if _, gone := drop[id]; !gone {
			kept = append(kept, id)
		}
	}
	s.order = kept

	return len(drop)
}

// Get returns one client.
func (s *Store) Get(id uuid.UUID) (model.Client, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	c, ok := s.clients[id]
	return c, ok
}

// Snapshot returns a copy of the collection in store order.
func (s *Store) Snapshot() []model.Client {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.Client, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.clients[id])
	}

	return out
}

// Len returns the number of cached clients.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.order)
}

// Loaded reports whether Replace has run since creation or the last Reset.
func (s *Store) Loaded() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.loaded
}

// Reset empties the store, e.g. on logout or when the feed says it is stale.
func (s *Store) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.order = nil
	s.clients = make(map[uuid.UUID]model.Client)
	s.loaded = false
}
