package sessionstore

import (
	"sync"
	"time"

	"tastybite-booking/internal/domain/booking"
	"tastybite-booking/internal/pkg/clock"
	"tastybite-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

type entry struct {
	session  *booking.Session
	busy     bool
	lastSeen time.Time
}

// Store keeps live wizard sessions in memory. Nothing here outlives the
// process: persistence of confirmed reservations belongs to the backend, a
// session is only the guest's working state.
//
// Acquire/Release implement the single-outstanding-action rule: while one
// action holds a session, further actions fail with ErrActionInProgress.
type Store struct {
	mu      sync.Mutex
	entries map[uuid.UUID]*entry
	ttl     time.Duration
	clock   clock.Clock
}

func New(ttl time.Duration, clk clock.Clock) *Store {
	return &Store{
		entries: make(map[uuid.UUID]*entry),
		ttl:     ttl,
		clock:   clk,
	}
}

func (s *Store) Put(session *booking.Session) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.clock.Now()
	s.evictExpired(now)

	if e, ok := s.entries[session.ID()]; ok {
		e.session = session
		e.lastSeen = now
		return
	}
	s.entries[session.ID()] = &entry{session: session, lastSeen: now}
}

func (s *Store) Acquire(id uuid.UUID) (*booking.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.clock.Now()
	s.evictExpired(now)

	e, ok := s.entries[id]
	if !ok {
		return nil, errs.ErrSessionNotFound
	}
	if e.busy {
		return nil, errs.ErrActionInProgress
	}
	e.busy = true
	e.lastSeen = now
	return e.session, nil
}

func (s *Store) Release(id uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if e, ok := s.entries[id]; ok {
		e.busy = false
	}
}

func (s *Store) Peek(id uuid.UUID) (*booking.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.evictExpired(s.clock.Now())

	e, ok := s.entries[id]
	if !ok {
		return nil, errs.ErrSessionNotFound
	}
	return e.session, nil
}

func (s *Store) Delete(id uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, id)
}

func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

// caller holds s.mu. Busy sessions are never evicted mid-action.
func (s *Store) evictExpired(now time.Time) {
	if s.ttl <= 0 {
		return
	}
	for id, e := range s.entries {
		if !e.busy && now.Sub(e.lastSeen) > s.ttl {
			delete(s.entries, id)
		}
	}
}
