package agent

import (
	"strings"

	"wayfarer/models"
)

// Phrases that signal the traveler wants ideas rather than naming a place.
var askingPatterns = []string{
	"where should", "where would you", "recommend", "suggest",
	"what do you think", "where do i", "where can i",
	"best place", "good place", "where to go",
}

func asksForIdeas(msg string) bool {
	for _, pattern := range askingPatterns {
		if strings.Contains(msg, pattern) {
			return true
		}
	}
	return false
}

type vibePitch struct {
	vibe         string
	keywords     []string
	destinations []string
	pitch        string
}

// Canned destination pitches, checked in order, so ski wins when a message
// mentions both snow and coast.
var vibePitches = []vibePitch{
	{
		vibe:         "ski",
		keywords:     []string{"ski", "skiing", "snow", "snowboard"},
		destinations: []string{"Lake Tahoe", "Mammoth", "Big Bear"},
		pitch:        "For skiing, I'd recommend Lake Tahoe (world-class slopes), Mammoth (epic powder), or Big Bear (closer drive from Bay Area).",
	},
	{
		vibe:         "beach",
		keywords:     []string{"beach", "ocean", "surf", "sand", "coast"},
		destinations: []string{"San Diego", "Santa Cruz", "Malibu", "Laguna Beach"},
		pitch:        "For beach vibes, you can't go wrong with San Diego (perfect weather), Santa Cruz (surf culture), Malibu (luxury coastal), or Laguna Beach (art + ocean).",
	},
	{
		vibe:         "wine",
		keywords:     []string{"wine", "vineyard", "tasting", "winery"},
		destinations: []string{"Napa", "Sonoma", "Paso Robles", "Healdsburg"},
		pitch:        "Wine country calls! Napa (premium tasting rooms), Sonoma (laid-back charm), Paso Robles (value + quality), or Healdsburg (boutique wineries).",
	},
	{
		vibe:         "hiking",
		keywords:     []string{"hike", "hiking", "trail", "mountain"},
		destinations: []string{"Big Sur", "Yosemite", "Joshua Tree", "Sequoia"},
		pitch:        "Trail time! Big Sur (coastal hikes), Yosemite (iconic views), Joshua Tree (desert landscapes), or Sequoia (giant trees).",
	},
	{
		vibe:         "city",
		keywords:     []string{"city", "urban", "downtown", "museum"},
		destinations: []string{"San Francisco", "Los Angeles", "San Diego", "Oakland"},
		pitch:        "City escape? San Francisco (culture + food), Los Angeles (entertainment), San Diego (laid-back urban), or Oakland (arts + nightlife).",
	},
	{
		vibe:         "relaxing",
		keywords:     []string{"relax", "peaceful", "quiet", "spa", "chill"},
		destinations: []string{"Carmel", "Ojai", "Mendocino", "Half Moon Bay"},
		pitch:        "Need to unwind? Carmel (coastal zen), Ojai (spa town), Mendocino (clifftop serenity), or Half Moon Bay (quiet beach town).",
	},
}

// concierge answers "where should I go" questions with canned picks. The
// detected vibe lands in the activity slot so the destination question that
// follows shows matching chips.
func (a *DefaultAgentService) concierge(msg string, session *models.Session) *models.ChatResponse {
	for _, entry := range vibePitches {
		for _, kw := range entry.keywords {
			if strings.Contains(msg, kw) {
				if session.Context.Slots.Activity == "" {
					session.Context.Slots.Activity = entry.vibe
				}
				chips := append([]string{}, entry.destinations...)
				chips = append(chips, "Show me more options")
				return &models.ChatResponse{
					Text:         entry.pitch + "\n\nWhich one sounds good to you?",
					State:        models.StateCollectingSlots,
					Needed:       []string{"destination"},
					QuickReplies: chips,
				}
			}
		}
	}

	return &models.ChatResponse{
		Text: "Great question! What vibe are you going for?\n\n" +
			"🎿 Skiing & Snow\n🏖️ Beach & Ocean\n🍷 Wine Country\n🥾 Hiking & Nature\n🏙️ City Escape\n😌 Relaxing Retreat",
		State:        models.StateCollectingSlots,
		Needed:       []string{"activity"},
		QuickReplies: []string{"Skiing", "Beach", "Wine", "Hiking", "City", "Relaxing"},
	}
}
