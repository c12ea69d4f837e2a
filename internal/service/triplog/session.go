package triplog

import (
	"sync"
	"time"

	"github.com/patrickmn/go-cache"

	"github.com/mamadbah2/fishtracker/internal/domain/models"
)

const defaultSessionTTL = 12 * time.Hour

// SessionStore keeps one trip log per session id. A session that is neither read
// nor written for the TTL expires and its log is discarded.
type SessionStore struct {
	logs *cache.Cache
	ttl  time.Duration
	mu   sync.Mutex
}

// NewSessionStore creates a store whose slots expire after ttl of inactivity.
func NewSessionStore(ttl time.Duration) *SessionStore {
	if ttl <= 0 {
		ttl = defaultSessionTTL
	}
	return &SessionStore{
		logs: cache.New(ttl, ttl/2),
		ttl:  ttl,
	}
}

// Load returns the session's log, or an empty log for an unknown or expired session.
// Reading a live session restarts its TTL.
func (s *SessionStore) Load(sessionID string) TripLog {
	s.mu.Lock()
	defer s.mu.Unlock()

	log, ok := s.get(sessionID)
	if ok {
		s.logs.Set(sessionID, log, s.ttl)
	}
	return log
}

// Append adds record to the session's log and stores the new log in its slot.
// Concurrent appends to the same session are applied one after another.
func (s *SessionStore) Append(sessionID string, record models.TripRecord) TripLog {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, _ := s.get(sessionID)
	next := current.Append(record)
	s.logs.Set(sessionID, next, s.ttl)
	return next
}

// Count reports the number of live sessions that have logged at least one trip.
func (s *SessionStore) Count() int {
	return s.logs.ItemCount()
}

func (s *SessionStore) get(sessionID string) (TripLog, bool) {
	if v, ok := s.logs.Get(sessionID); ok {
		return v.(TripLog), true
	}
	return TripLog{}, false
}
