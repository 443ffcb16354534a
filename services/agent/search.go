// File: services/agent/search.go
package agent

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"wayfarer/models"
	"wayfarer/services/composer"
	"wayfarer/services/ranking"
)

// executeSearch runs the catalog search plus ranking once every critical
// slot is filled, and presents the single best stay.
func (a *DefaultAgentService) executeSearch(ctx context.Context, session *models.Session) *models.ChatResponse {
	slots := session.Context.Slots

	listings := a.Catalog.Search(slots.Destination, slots.CheckIn, slots.CheckOut, slots.Guests)
	if len(listings) == 0 {
		return &models.ChatResponse{
			Text: fmt.Sprintf(
				"Hmm, I couldn't find available places in %s for those dates. Try different dates?",
				slots.Destination,
			),
			State:        models.StateFailed,
			Needed:       []string{},
			QuickReplies: []string{"This weekend", "Next weekend", "Different location"},
		}
	}

	ranked := ranking.Rank(listings, ranking.Intent{
		Guests:    slots.Guests,
		BudgetMax: slots.BudgetMax,
	}, session.HomeAirport)
	best := ranked[0]

	session.Context.ShownListings = append(session.Context.ShownListings, best.ID)
	session.Context.Stage = models.StageShowingResult

	nights := nightsBetween(slots.CheckIn, slots.CheckOut)
	reasons := recommendationReasons(best, slots)
	itinerary := buildItinerary(best, slots, nights, strings.Join(reasons, " • "))
	session.LastItinerary = itinerary

	fallback := fmt.Sprintf(
		"Found THE perfect spot for you! 🎯\n\n**%s**\n\n%s\n\n💰 $%.0f total (%d nights × $%.0f)\n🛏️ %s beds, %s baths\n⭐ %s/5 (%d reviews)\n\nType **BOOK** to reserve, or ask for something different!",
		best.Name, itinerary.WhyThisProperty, itinerary.TotalPrice, nights, best.PricePerNight,
		formatNumber(best.Beds), formatNumber(best.Baths), formatNumber(best.Rating), best.ReviewCount,
	)

	text := a.Composer.Compose(ctx, composer.Input{
		Headline:    "Found the perfect spot for you",
		Itinerary:   itinerary,
		Reasons:     reasons,
		Transport:   a.transportOptions(slots.Destination),
		Alternative: runnerUpName(ranked),
		Fallback:    fallback,
	})

	return &models.ChatResponse{
		Text:         text,
		Itinerary:    itinerary,
		State:        models.StateAwaitingConsent,
		Needed:       []string{},
		QuickReplies: []string{"BOOK", "Too expensive", "Want more space", "Different area"},
	}
}

// recommendationReasons explains the pick, most compelling first, capped at
// three.
func recommendationReasons(listing models.Listing, slots models.TripSlots) []string {
	reasons := []string{}

	if listing.HasCoords() {
		reasons = append(reasons, "Prime location in "+slots.Destination)
	}

	if listing.GuestsMax >= slots.Guests {
		if slots.Guests > 2 {
			reasons = append(reasons, fmt.Sprintf("Comfortably fits your group of %d", slots.Guests))
		} else {
			reasons = append(reasons, "Perfect for couples")
		}
	}

	if listing.Rating >= 4.7 {
		reasons = append(reasons, fmt.Sprintf("Highly rated (%s/5)", formatNumber(listing.Rating)))
	}

	if slots.BudgetMax > 0 {
		total := listing.PricePerNight * 2 // budget framing assumes a two-night weekend
		if total <= slots.BudgetMax {
			reasons = append(reasons, fmt.Sprintf("Under budget (saves you $%.0f)", slots.BudgetMax-total))
		}
	}

	if len(reasons) > 3 {
		reasons = reasons[:3]
	}
	return reasons
}

func buildItinerary(listing models.Listing, slots models.TripSlots, nights int, why string) *models.Itinerary {
	total := listing.PricePerNight * float64(nights)
	return &models.Itinerary{
		ID:          listing.ID,
		Destination: slots.Destination,
		Name:        listing.Name,
		Dates: models.ItineraryDates{
			CheckIn:  slots.CheckIn,
			CheckOut: slots.CheckOut,
		},
		Stay: models.Stay{
			Name:               listing.Name,
			Beds:               listing.Beds,
			Baths:              listing.Baths,
			PricePerNight:      listing.PricePerNight,
			PriceTotal:         total,
			Rating:             listing.Rating,
			ReviewCount:        listing.ReviewCount,
			ImageURL:           listing.ImageURL,
			URL:                listing.URL,
			Amenities:          listing.Amenities,
			CancellationPolicy: listing.CancellationPolicy,
			GuestsMax:          listing.GuestsMax,
		},
		TotalPrice:      total,
		Currency:        "USD",
		Nights:          nights,
		WhyThisProperty: why,
	}
}

// nightsBetween floors at one night so same-day ranges never zero out the
// total. Unparseable dates fall back to a weekend stay.
func nightsBetween(checkIn, checkOut string) int {
	in, errIn := time.Parse("2006-01-02", checkIn)
	out, errOut := time.Parse("2006-01-02", checkOut)
	if errIn != nil || errOut != nil {
		return 2
	}
	nights := int(out.Sub(in).Hours() / 24)
	if nights < 1 {
		nights = 1
	}
	return nights
}

// transportOptions enriches the composer payload; an empty result simply
// drops the section from the prompt.
func (a *DefaultAgentService) transportOptions(destination string) []models.TransportOption {
	if a.Transport == nil {
		return nil
	}
	return a.Transport.Options(composer.Profile().HomeCity, destination)
}

func runnerUpName(ranked []models.Listing) string {
	if len(ranked) < 2 {
		return ""
	}
	return ranked[1].Name
}

// formatNumber renders 2.0 as "2" and 1.5 as "1.5", the way the listing
// data reads.
func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
