package store

import (
	"strings"
	"testing"
	"time"

	"wayfarer/models"
)

func TestGetSessionCreatesInitializedSession(t *testing.T) {
	s := NewMemoryStore("SFO")

	session := s.GetSession("traveler-1")
	if session.ID != "traveler-1" {
		t.Fatalf("session id = %q, want traveler-1", session.ID)
	}
	if session.HomeAirport != "SFO" {
		t.Errorf("home airport = %q, want SFO", session.HomeAirport)
	}
	if session.Context.Stage != models.StageInitial {
		t.Errorf("stage = %q, want %q", session.Context.Stage, models.StageInitial)
	}
	if session.Context.ShownListings == nil {
		t.Error("shown listings should be initialized, got nil")
	}
	if session.LastItinerary != nil {
		t.Error("fresh session should have no itinerary")
	}
}

func TestGetSessionReturnsSameSession(t *testing.T) {
	s := NewMemoryStore("SFO")

	first := s.GetSession("traveler-1")
	first.Context.Slots.Destination = "Lake Tahoe"

	second := s.GetSession("traveler-1")
	if second.Context.Slots.Destination != "Lake Tahoe" {
		t.Errorf("destination = %q, want Lake Tahoe", second.Context.Slots.Destination)
	}
	if s.SessionCount() != 1 {
		t.Errorf("session count = %d, want 1", s.SessionCount())
	}
}

func TestGetSessionMintsIDWhenMissing(t *testing.T) {
	s := NewMemoryStore("SFO")

	a := s.GetSession("")
	b := s.GetSession("")

	if a.ID == "" || b.ID == "" {
		t.Fatal("minted session ids should not be empty")
	}
	if a.ID == b.ID {
		t.Errorf("two anonymous sessions share id %q", a.ID)
	}
}

func TestPlaceHold(t *testing.T) {
	s := NewMemoryStore("SFO")

	before := time.Now().UTC()
	hold := s.PlaceHold("MOCK_LAKE_TAHOE_1")

	if hold.HoldID != "HOLD_MOCK_LAKE_TAHOE_1" {
		t.Errorf("hold id = %q, want HOLD_MOCK_LAKE_TAHOE_1", hold.HoldID)
	}
	if hold.ItineraryID != "MOCK_LAKE_TAHOE_1" {
		t.Errorf("itinerary id = %q, want MOCK_LAKE_TAHOE_1", hold.ItineraryID)
	}
	if !strings.HasPrefix(hold.HoldID, "HOLD_") {
		t.Errorf("hold id %q missing HOLD_ prefix", hold.HoldID)
	}

	expires, err := time.Parse(time.RFC3339, hold.ExpiresAt)
	if err != nil {
		t.Fatalf("expires_at %q is not RFC 3339: %v", hold.ExpiresAt, err)
	}
	want := before.Add(24 * time.Hour)
	if expires.Before(want.Add(-time.Minute)) || expires.After(want.Add(time.Minute)) {
		t.Errorf("expires_at = %v, want roughly 24h out (%v)", expires, want)
	}

	stored, ok := s.GetHold(hold.HoldID)
	if !ok {
		t.Fatal("hold not retrievable after placement")
	}
	if stored != hold {
		t.Errorf("stored hold = %+v, want %+v", stored, hold)
	}
}

func TestPurgeExpiredHolds(t *testing.T) {
	s := NewMemoryStore("SFO")

	first := s.PlaceHold("MOCK_LAKE_TAHOE_1")
	second := s.PlaceHold("MOCK_LAKE_TAHOE_2")

	if purged := s.PurgeExpiredHolds(time.Now().UTC()); purged != 0 {
		t.Fatalf("purged %d holds before expiry, want 0", purged)
	}

	// Holds expire 24h after placement, so sweep from two days out.
	future := time.Now().UTC().Add(48 * time.Hour)
	if purged := s.PurgeExpiredHolds(future); purged != 2 {
		t.Errorf("purged = %d, want 2", purged)
	}
	if _, ok := s.GetHold(first.HoldID); ok {
		t.Errorf("hold %q survived the sweep", first.HoldID)
	}
	if _, ok := s.GetHold(second.HoldID); ok {
		t.Errorf("hold %q survived the sweep", second.HoldID)
	}
}

func TestPurgeSkipsUnreadableExpiry(t *testing.T) {
	s := NewMemoryStore("SFO")

	s.mu.Lock()
	s.holds["HOLD_BROKEN"] = models.Hold{
		HoldID:      "HOLD_BROKEN",
		ItineraryID: "MOCK_LAKE_TAHOE_1",
		ExpiresAt:   "not-a-timestamp",
	}
	s.mu.Unlock()

	if purged := s.PurgeExpiredHolds(time.Now().UTC().Add(48 * time.Hour)); purged != 0 {
		t.Errorf("purged = %d, want 0", purged)
	}
	if _, ok := s.GetHold("HOLD_BROKEN"); !ok {
		t.Error("hold with unreadable expiry should be left in place")
	}
}
