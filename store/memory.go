// File: store/memory.go
package store

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"wayfarer/models"
)

// MemoryStore keeps sessions and holds in process memory. Nothing survives a
// restart, which is the documented persistence contract for this service.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]*models.Session
	holds    map[string]models.Hold

	defaultHomeAirport string
}

// NewMemoryStore returns an empty store. New sessions start with the given
// home airport until the caller tells us otherwise.
func NewMemoryStore(defaultHomeAirport string) *MemoryStore {
	return &MemoryStore{
		sessions:           make(map[string]*models.Session),
		holds:              make(map[string]models.Hold),
		defaultHomeAirport: defaultHomeAirport,
	}
}

// GetSession returns the session for id, creating it on first sight. An
// empty id mints a fresh session keyed by a new UUID; callers should echo
// the id back to the client so the conversation can continue.
//
// Handlers process one request per session at a time, so the returned
// pointer is mutated without further locking.
func (s *MemoryStore) GetSession(id string) *models.Session {
	if id == "" {
		id = uuid.NewString()
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if session, ok := s.sessions[id]; ok {
		return session
	}

	session := &models.Session{
		ID:          id,
		HomeAirport: s.defaultHomeAirport,
		Context: models.ConversationContext{
			Stage:         models.StageInitial,
			ShownListings: []string{},
		},
	}
	s.sessions[id] = session
	return session
}

// PlaceHold records a 24-hour demo hold on an itinerary and returns it.
func (s *MemoryStore) PlaceHold(itineraryID string) models.Hold {
	hold := models.Hold{
		HoldID:      "HOLD_" + itineraryID,
		ItineraryID: itineraryID,
		ExpiresAt:   time.Now().UTC().Add(24 * time.Hour).Format(time.RFC3339),
	}

	s.mu.Lock()
	s.holds[hold.HoldID] = hold
	s.mu.Unlock()

	return hold
}

// GetHold looks up a previously placed hold.
func (s *MemoryStore) GetHold(holdID string) (models.Hold, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	hold, ok := s.holds[holdID]
	return hold, ok
}

// PurgeExpiredHolds drops holds whose expiry has passed and reports how
// many went. Holds with unreadable expiry timestamps are left alone.
func (s *MemoryStore) PurgeExpiredHolds(now time.Time) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	purged := 0
	for id, hold := range s.holds {
		expires, err := time.Parse(time.RFC3339, hold.ExpiresAt)
		if err != nil {
			continue
		}
		if expires.Before(now) {
			delete(s.holds, id)
			purged++
		}
	}
	return purged
}

// SessionCount reports how many sessions are live, for health logging.
func (s *MemoryStore) SessionCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}
