package agent

import (
	"context"
	"time"

	"wayfarer/models"
	"wayfarer/services/catalog"
	"wayfarer/services/composer"
)

// AgentService turns one traveler message into the next conversational step:
// a clarifying question, a recommendation, or a refined alternative.
type AgentService interface {
	ProcessMessage(ctx context.Context, message string, session *models.Session) *models.ChatResponse
}

// ListingSearcher is the slice of the catalog the agent needs.
type ListingSearcher interface {
	Search(destination, checkIn, checkOut string, guests int) []models.Listing
}

// DefaultAgentService implements AgentService on top of the catalog index,
// the ranker, and the copy composer.
type DefaultAgentService struct {
	Catalog   ListingSearcher
	Transport *catalog.TransportIndex
	Composer  composer.Service

	// now is swappable so tests can pin the clock.
	now func() time.Time
}

// NewAgentService wires a conversation agent against the live clock.
func NewAgentService(idx ListingSearcher, transport *catalog.TransportIndex, comp composer.Service) *DefaultAgentService {
	return &DefaultAgentService{
		Catalog:   idx,
		Transport: transport,
		Composer:  comp,
		now:       time.Now,
	}
}
