package activity

import (
	"context"
	"sync"
	"time"

	"marketai/internal/models"
)

// MemoryStore keeps activity logs in process memory, keyed by session id.
type MemoryStore struct {
	mu   sync.Mutex
	logs map[string]*sessionLog
	now  func() time.Time
}

type sessionLog struct {
	entries  []models.Activity
	lastSeen time.Time
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		logs: make(map[string]*sessionLog),
		now:  time.Now,
	}
}

// sessionLocked returns the log for sessionID, creating it on first access.
// The caller must hold s.mu.
func (s *MemoryStore) sessionLocked(sessionID string) *sessionLog {
	log, ok := s.logs[sessionID]
	if !ok {
		log = &sessionLog{}
		s.logs[sessionID] = log
	}
	log.lastSeen = s.now()
	return log
}

// Append assigns the next id for the session and stores the entry.
func (s *MemoryStore) Append(_ context.Context, sessionID string, entry models.Activity) (models.Activity, error) {
	if sessionID == "" {
		return models.Activity{}, ErrSessionRequired
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	log := s.sessionLocked(sessionID)
	var lastID int64
	if n := len(log.entries); n > 0 {
		lastID = log.entries[n-1].ID
	}
	entry.ID = lastID + 1
	log.entries = append(log.entries, entry)
	return entry, nil
}

// List returns up to limit entries, newest first.
func (s *MemoryStore) List(_ context.Context, sessionID string, limit int) ([]models.Activity, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	log := s.sessionLocked(sessionID)
	n := len(log.entries)
	if limit <= 0 || limit > n {
		limit = n
	}

	out := make([]models.Activity, 0, limit)
	for i := n - 1; i >= n-limit; i-- {
		out = append(out, log.entries[i])
	}
	return out, nil
}

// Ping always succeeds for the in-memory store.
func (s *MemoryStore) Ping(context.Context) error {
	return nil
}

// Prune drops logs whose session has not been seen for maxIdle and returns
// how many were removed.
func (s *MemoryStore) Prune(_ context.Context, maxIdle time.Duration) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	cutoff := s.now().Add(-maxIdle)
	removed := 0
	for id, log := range s.logs {
		if log.lastSeen.Before(cutoff) {
			delete(s.logs, id)
			removed++
		}
	}
	return removed
}

// Sessions returns the number of sessions currently held.
func (s *MemoryStore) Sessions() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.logs)
}
