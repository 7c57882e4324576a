package session

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/gridlock-xyz/go-gridlock/eventlog"
)

// MemoryStore keeps sessions and events in memory. Useful for tests
// and for runs that do not need durable history.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]*Session
	events   map[string]eventlog.Trace
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		sessions: make(map[string]*Session),
		events:   make(map[string]eventlog.Trace),
	}
}

// CreateSession records a new session.
func (m *MemoryStore) CreateSession(ctx context.Context, s *Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, exists := m.sessions[s.ID]; exists {
		return fmt.Errorf("session: duplicate ID %q", s.ID)
	}
	copied := *s
	m.sessions[s.ID] = &copied
	return nil
}

// EndSession closes a session.
func (m *MemoryStore) EndSession(ctx context.Context, id, outcome string, steps int, solution string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.sessions[id]
	if !ok {
		return ErrSessionNotFound
	}
	now := time.Now().UTC()
	s.EndedAt = &now
	s.Outcome = outcome
	s.Steps = steps
	s.Solution = solution
	return nil
}

// AppendEvent records one solver move.
func (m *MemoryStore) AppendEvent(ctx context.Context, e eventlog.Event) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.sessions[e.Session]; !ok {
		return ErrSessionNotFound
	}
	m.events[e.Session] = append(m.events[e.Session], e)
	return nil
}

// Session returns a session by ID.
func (m *MemoryStore) Session(ctx context.Context, id string) (*Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	copied := *s
	return &copied, nil
}

// Sessions returns all sessions, oldest first.
func (m *MemoryStore) Sessions(ctx context.Context) ([]*Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]*Session, 0, len(m.sessions))
	for _, s := range m.sessions {
		copied := *s
		out = append(out, &copied)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].StartedAt.Equal(out[j].StartedAt) {
			return out[i].ID < out[j].ID
		}
		return out[i].StartedAt.Before(out[j].StartedAt)
	})
	return out, nil
}

// Events returns a session's move trace in step order.
func (m *MemoryStore) Events(ctx context.Context, id string) (eventlog.Trace, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if _, ok := m.sessions[id]; !ok {
		return nil, ErrSessionNotFound
	}
	tr := make(eventlog.Trace, len(m.events[id]))
	copy(tr, m.events[id])
	return tr, nil
}

// Close is a no-op for the in-memory store.
func (m *MemoryStore) Close() error {
	return nil
}
