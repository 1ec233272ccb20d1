package dashboard

import (
	"log"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/Zachkp/portfolio-dashboard/internal/contact"
	"github.com/Zachkp/portfolio-dashboard/internal/portfolio"
)

type sessionEntry struct {
	state        *State
	lastAccessed time.Time
}

// Sessions keeps one State per visitor in memory. Nothing here is persisted.
type Sessions struct {
	catalog    *portfolio.Catalog
	newMachine func() *contact.Machine
	ttl        time.Duration
	now        func() time.Time

	mu      sync.Mutex
	entries map[string]*sessionEntry
}

func NewSessions(catalog *portfolio.Catalog, newMachine func() *contact.Machine, ttl time.Duration) *Sessions {
	return &Sessions{
		catalog:    catalog,
		newMachine: newMachine,
		ttl:        ttl,
		now:        time.Now,
		entries:    make(map[string]*sessionEntry),
	}
}

// Get returns the state for id, creating a fresh session when id is unknown or empty.
// The returned id is the one the caller should keep using.
func (s *Sessions) Get(id string) (string, *State) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if e, ok := s.entries[id]; ok {
		e.lastAccessed = s.now()
		return id, e.state
	}

	id = uuid.New().String()
	st := NewState(s.catalog, s.newMachine())
	s.entries[id] = &sessionEntry{state: st, lastAccessed: s.now()}
	return id, st
}

func (s *Sessions) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

// Evict drops sessions idle for longer than the TTL and returns how many went.
func (s *Sessions) Evict() int {
	s.mu.Lock()
	var stale []*State
	cutoff := s.now().Add(-s.ttl)
	for id, e := range s.entries {
		if e.lastAccessed.Before(cutoff) {
			stale = append(stale, e.state)
			delete(s.entries, id)
		}
	}
	s.mu.Unlock()

	for _, st := range stale {
		st.Close()
	}
	if len(stale) > 0 {
		log.Printf("Evicted %d idle dashboard sessions", len(stale))
	}
	return len(stale)
}

// Close tears down every session.
func (s *Sessions) Close() {
	s.mu.Lock()
	entries := s.entries
	s.entries = make(map[string]*sessionEntry)
	s.mu.Unlock()

	for _, e := range entries {
		e.state.Close()
	}
}
