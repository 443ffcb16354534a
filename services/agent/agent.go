// File: services/agent/agent.go
package agent

import (
	"context"
	"strings"

	"wayfarer/models"
	"wayfarer/services/intent"
)

var weekendKeywords = []string{"this weekend", "next weekend", "weekend", "flexible"}

// ProcessMessage advances the conversation by one turn. Refinements on a
// shown result win over everything; recommendation questions are answered
// before slot extraction so "where should we go" never half-fills slots.
func (a *DefaultAgentService) ProcessMessage(ctx context.Context, message string, session *models.Session) *models.ChatResponse {
	msg := strings.ToLower(strings.TrimSpace(message))

	if session.Context.Stage == models.StageShowingResult && session.LastItinerary != nil {
		if class := matchRefinement(msg); class != "" {
			return a.refine(ctx, class, session)
		}
	}

	if session.Context.Slots.Destination == "" && intent.ExtractDestination(msg) == "" && asksForIdeas(msg) {
		return a.concierge(msg, session)
	}

	a.updateContext(msg, session)

	if !session.Context.ReadyToSearch() {
		return a.askNextSlot(msg, session)
	}

	return a.executeSearch(ctx, session)
}

// updateContext folds whatever the message reveals into the session slots.
func (a *DefaultAgentService) updateContext(msg string, session *models.Session) {
	ctx := &session.Context
	slots := &ctx.Slots

	// Free-typed dates first. A successful parse answers the pending
	// question outright, so no other slot scanning runs this turn.
	if ctx.Stage == models.StageNeedCustomDates || (slots.CheckIn == "" && intent.HasDigit(msg)) {
		if intent.LooksLikeDate(msg) {
			slots.CheckIn, slots.CheckOut = intent.ResolveDateInput(msg, a.now())
			ctx.Stage = models.StageInitial
			return
		}
	}

	if dest := intent.ExtractDestination(msg); dest != "" {
		slots.Destination = dest
	}

	for _, kw := range weekendKeywords {
		if strings.Contains(msg, kw) {
			slots.CheckIn, slots.CheckOut = intent.ResolveDateInput(msg, a.now())
			if ctx.Stage == models.StageNeedCustomDates {
				ctx.Stage = models.StageInitial
			}
			break
		}
	}

	if slots.Guests == 0 {
		switch {
		case ctx.Stage == models.StageNeedGuests || intent.MentionsGuests(msg):
			slots.Guests = intent.ParseGuestCount(msg)
		default:
			if n, ok := intent.GuestCountNearNoun(msg); ok {
				slots.Guests = n
			}
		}
	}

	if budget, ok := intent.ExtractBudget(msg); ok {
		slots.BudgetMax = budget
	}
}
