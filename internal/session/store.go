package session

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Principal is the identity a session carries. Handlers receive it through
// the request context; nothing reads it from ambient state.
type Principal struct {
	UserID   string `json:"userId"`
	Username string `json:"username"`
	IsAdmin  bool   `json:"isAdmin"`
}

type entry struct {
	principal Principal
	expiresAt time.Time
}

// Store is the process-wide session table: opaque session id -> Principal.
// Entries are created at login, destroyed at logout, and reaped after TTL.
type Store struct {
	mu   sync.RWMutex
	ttl  time.Duration
	data map[string]entry
	now  func() time.Time
}

// NewStore creates an empty session store with the given entry lifetime.
func NewStore(ttl time.Duration) *Store {
	return &Store{
		ttl:  ttl,
		data: make(map[string]entry),
		now:  time.Now,
	}
}

// Create registers a new session for the principal and returns its id.
func (s *Store) Create(p Principal) string {
	id := uuid.New().String()
	s.mu.Lock()
	s.data[id] = entry{principal: p, expiresAt: s.now().Add(s.ttl)}
	s.mu.Unlock()
	return id
}

// Get returns the principal for a session id, if the session exists and has
// not expired. Expired entries are left for the sweeper.
func (s *Store) Get(id string) (Principal, bool) {
	s.mu.RLock()
	e, ok := s.data[id]
	s.mu.RUnlock()
	if !ok || s.now().After(e.expiresAt) {
		return Principal{}, false
	}
	return e.principal, true
}

// Destroy removes a session. Destroying an unknown id is a no-op.
func (s *Store) Destroy(id string) {
	s.mu.Lock()
	delete(s.data, id)
	s.mu.Unlock()
}

// Sweep removes expired sessions and returns how many were dropped.
func (s *Store) Sweep() int {
	now := s.now()
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for id, e := range s.data {
		if now.After(e.expiresAt) {
			delete(s.data, id)
			n++
		}
	}
	return n
}

// Len reports the number of live entries, expired or not.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.data)
}
