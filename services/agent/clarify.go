package agent

import (
	"strings"

	"wayfarer/models"
	"wayfarer/services/intent"
)

// Destination chips for travelers who want to browse past the default four.
var moreDestinations = []string{
	"San Diego", "Lake Tahoe", "Napa", "Big Sur", "San Francisco",
	"Santa Barbara", "Monterey", "Joshua Tree", "Carmel", "Sonoma",
}

// Suggested destinations per activity, shown as chips on the destination
// question once we know what the trip is about.
var destinationsByActivity = map[string][]string{
	"beach":    {"San Diego", "Santa Cruz", "Malibu", "Monterey", "Santa Barbara"},
	"ski":      {"Lake Tahoe", "Mammoth Lakes", "Big Bear", "Tahoe City"},
	"wine":     {"Napa", "Sonoma", "Paso Robles", "Healdsburg"},
	"hiking":   {"Yosemite", "Big Sur", "Joshua Tree", "Sequoia"},
	"city":     {"San Francisco", "Los Angeles", "San Diego", "Oakland"},
	"relaxing": {"Big Sur", "Carmel", "Mendocino", "Ojai"},
}

var defaultDestinations = []string{"San Diego", "Lake Tahoe", "Napa", "Big Sur", "San Francisco"}

func destinationSuggestions(activity string) []string {
	if list, ok := destinationsByActivity[activity]; ok {
		return list
	}
	return defaultDestinations
}

var customDatePhrases = []string{"i have specific", "specific dates", "custom dates"}

func wantsCustomDates(msg string) bool {
	for _, phrase := range customDatePhrases {
		if strings.Contains(msg, phrase) {
			return true
		}
	}
	return false
}

// askNextSlot emits the clarifying question for the first missing slot, in
// priority order destination, dates, guests.
func (a *DefaultAgentService) askNextSlot(msg string, session *models.Session) *models.ChatResponse {
	ctx := &session.Context
	slots := &ctx.Slots

	// Capture the trip vibe while we are still collecting; it shapes the
	// destination chips below.
	if slots.Activity == "" {
		if activity := intent.ExtractActivity(msg); activity != "" {
			slots.Activity = activity
		}
	}

	// Travelers who want to type their own dates get a free-text prompt
	// ahead of any other question.
	if ctx.Stage == models.StageNeedCustomDates || wantsCustomDates(msg) {
		ctx.Stage = models.StageNeedCustomDates
		return &models.ChatResponse{
			Text:   "Great! Please type your dates (e.g., 'Nov 15-17' or 'December 1-3'):",
			State:  models.StateCollectingSlots,
			Needed: []string{"custom_dates"},
		}
	}

	missing := ctx.MissingSlots()
	if len(missing) == 0 {
		missing = []string{"destination"}
	}

	switch missing[0] {
	case "destination":
		return a.askDestination(msg, session)
	case "dates":
		ctx.Stage = models.StageNeedDates
		return &models.ChatResponse{
			Text:         "When are you thinking for " + slots.Destination + "?",
			State:        models.StateCollectingSlots,
			Needed:       []string{"dates"},
			QuickReplies: []string{"This weekend", "Next weekend", "I have specific dates"},
		}
	default:
		ctx.Stage = models.StageNeedGuests
		return &models.ChatResponse{
			Text:         "How many people will be joining?",
			State:        models.StateCollectingSlots,
			Needed:       []string{"guests"},
			QuickReplies: []string{"Just me", "2 people", "3-4 people", "5-6 people", "Large group (7+)"},
		}
	}
}

// askDestination picks between the browse-more, activity-aware, and plain
// variants of the destination question.
func (a *DefaultAgentService) askDestination(msg string, session *models.Session) *models.ChatResponse {
	ctx := &session.Context
	ctx.Stage = models.StageNeedLocation

	if strings.Contains(msg, "somewhere else") || strings.Contains(msg, "different") {
		return &models.ChatResponse{
			Text:         "Great! Here are some wonderful destinations:",
			State:        models.StateCollectingSlots,
			Needed:       []string{"destination"},
			QuickReplies: moreDestinations[:8],
		}
	}

	if activity := ctx.Slots.Activity; activity != "" {
		chips := append([]string{}, destinationSuggestions(activity)...)
		chips = append(chips, "Somewhere else")
		if len(chips) > 6 {
			chips = chips[:6]
		}
		return &models.ChatResponse{
			Text:         "Perfect! Where would you like to go?",
			State:        models.StateCollectingSlots,
			Needed:       []string{"destination"},
			QuickReplies: chips,
		}
	}

	return &models.ChatResponse{
		Text:         "Where would you like to go?",
		State:        models.StateCollectingSlots,
		Needed:       []string{"destination"},
		QuickReplies: []string{"San Diego", "Lake Tahoe", "Napa", "Big Sur", "Somewhere else"},
	}
}
