package agent

import (
	"context"
	"fmt"
	"regexp"
	"sort"

	"wayfarer/models"
	"wayfarer/services/composer"
)

const (
	refineCheaper   = "cheaper"
	refineBigger    = "bigger"
	refineSmaller   = "smaller"
	refineDifferent = "different"
)

// Refinement triggers, checked in declaration order. Leading word boundaries
// keep "budget" matching "budget-friendly" without tripping on fragments.
var refinementClasses = []struct {
	class    string
	patterns []*regexp.Regexp
}{
	{refineCheaper, compileKeywords("cheaper", "budget", "less expensive", "too expensive")},
	{refineBigger, compileKeywords("bigger", "more beds", "more space")},
	{refineSmaller, compileKeywords("smaller", "too big", "cozier")},
	{refineDifferent, compileKeywords("different", "something else", "another", "other option")},
}

func compileKeywords(keywords ...string) []*regexp.Regexp {
	res := make([]*regexp.Regexp, 0, len(keywords))
	for _, kw := range keywords {
		res = append(res, regexp.MustCompile(`\b`+regexp.QuoteMeta(kw)))
	}
	return res
}

// matchRefinement returns the refinement class the message asks for, or ""
// when it is not a refinement at all.
func matchRefinement(msg string) string {
	for _, entry := range refinementClasses {
		for _, re := range entry.patterns {
			if re.MatchString(msg) {
				return entry.class
			}
		}
	}
	return ""
}

// refine swaps the current recommendation for an unseen alternative along
// one axis and names the tradeoff.
func (a *DefaultAgentService) refine(ctx context.Context, class string, session *models.Session) *models.ChatResponse {
	slots := session.Context.Slots
	previous := session.LastItinerary

	listings := a.Catalog.Search(slots.Destination, slots.CheckIn, slots.CheckOut, slots.Guests)
	available := make([]models.Listing, 0, len(listings))
	for _, listing := range listings {
		if !session.Context.WasShown(listing.ID) {
			available = append(available, listing)
		}
	}

	if len(available) == 0 {
		return &models.ChatResponse{
			Text:         "That's all I have for those criteria. Want to try different dates or location?",
			Itinerary:    previous,
			State:        models.StateAwaitingConsent,
			Needed:       []string{},
			QuickReplies: []string{"Different dates", "Different location", "Book current"},
		}
	}

	best, tradeoff := pickAlternative(class, available, previous)

	session.Context.ShownListings = append(session.Context.ShownListings, best.ID)

	itinerary := buildItinerary(best, slots, previous.Nights, "Alternative option: "+tradeoff)
	itinerary.Dates = previous.Dates
	session.LastItinerary = itinerary

	fallback := fmt.Sprintf(
		"Here's a great alternative! 🔄\n\n**%s**\n\n📊 Trade-off: %s\n\n💰 $%.0f total\n🛏️ %s beds, %s baths\n⭐ %s/5 (%d reviews)\n\nType **BOOK** to reserve!",
		best.Name, tradeoff, itinerary.TotalPrice,
		formatNumber(best.Beds), formatNumber(best.Baths), formatNumber(best.Rating), best.ReviewCount,
	)

	text := a.Composer.Compose(ctx, composer.Input{
		Headline:  "Here's a great alternative",
		Itinerary: itinerary,
		Tradeoff:  tradeoff,
		Transport: a.transportOptions(slots.Destination),
		Fallback:  fallback,
	})

	return &models.ChatResponse{
		Text:         text,
		Itinerary:    itinerary,
		State:        models.StateAwaitingConsent,
		Needed:       []string{},
		QuickReplies: []string{"BOOK", "Show another", "Go back to previous"},
	}
}

// pickAlternative selects from the unseen pool along the requested axis and
// names the tradeoff against the previous pick.
func pickAlternative(class string, available []models.Listing, previous *models.Itinerary) (models.Listing, string) {
	switch class {
	case refineCheaper:
		sort.SliceStable(available, func(i, j int) bool {
			return available[i].PricePerNight < available[j].PricePerNight
		})
		best := available[0]
		delta := previous.TotalPrice - best.PricePerNight*float64(previous.Nights)
		return best, fmt.Sprintf("$%.0f cheaper", delta)

	case refineBigger:
		sort.SliceStable(available, func(i, j int) bool {
			return available[i].Beds > available[j].Beds
		})
		best := available[0]
		return best, fmt.Sprintf("%s beds (vs %s)", formatNumber(best.Beds), formatNumber(previous.Stay.Beds))

	case refineSmaller:
		smaller := make([]models.Listing, 0, len(available))
		for _, listing := range available {
			if listing.Beds < previous.Stay.Beds {
				smaller = append(smaller, listing)
			}
		}
		if len(smaller) == 0 {
			sort.SliceStable(available, func(i, j int) bool {
				return available[i].PricePerNight < available[j].PricePerNight
			})
			return available[0], "Closest match available (still great!)"
		}
		sort.SliceStable(smaller, func(i, j int) bool {
			if smaller[i].Beds != smaller[j].Beds {
				return smaller[i].Beds < smaller[j].Beds
			}
			return smaller[i].Rating > smaller[j].Rating
		})
		best := smaller[0]
		return best, fmt.Sprintf("%s beds (vs %s)", formatNumber(best.Beds), formatNumber(previous.Stay.Beds))

	default:
		return available[0], "Different area"
	}
}
