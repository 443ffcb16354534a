package agent

import (
	"context"
	"strings"
	"testing"

	"wayfarer/models"
)

// Two Lake Tahoe listings. The A-frame outscores the lodge on rating and
// reviews, so the first search always recommends it and refinements swap
// to the lodge.
const twoListingCatalog = `{"travel_database": {"destinations": [
	{
		"destination_id": "TAH-001",
		"name": "Lake Tahoe",
		"region": "California",
		"properties": [
			{
				"listing_id": "cozy-aframe",
				"name": "Cozy A-Frame",
				"pricing": {"nightly_rate": 150, "num_nights": 2},
				"property_details": {"rating": 4.9, "num_reviews": 200, "beds": 2, "bathrooms": 1, "max_guests": 4},
				"amenities": ["Fireplace", "Wifi"]
			},
			{
				"listing_id": "grand-lodge",
				"name": "Grand Lodge",
				"pricing": {"nightly_rate": 400, "num_nights": 2},
				"property_details": {"rating": 4.5, "num_reviews": 50, "beds": 3, "bathrooms": 2, "max_guests": 8},
				"amenities": ["Pool", "Hot tub"]
			}
		]
	}
]}}`

const singleListingCatalog = `{"travel_database": {"destinations": [
	{
		"destination_id": "TAH-001",
		"name": "Lake Tahoe",
		"region": "California",
		"properties": [
			{
				"listing_id": "tahoe-chalet",
				"name": "Timberline Chalet",
				"pricing": {"nightly_rate": 240, "num_nights": 2},
				"property_details": {"rating": 4.8, "num_reviews": 120, "beds": 3, "bathrooms": 2, "max_guests": 6},
				"amenities": ["Fireplace"]
			}
		]
	}
]}}`

func TestRefineCheaperSwapsToUnseenListing(t *testing.T) {
	svc := newTestAgent(t)
	session := newTestSession()
	ctx := context.Background()

	first := svc.ProcessMessage(ctx, "Skiing in Tahoe next weekend for 4 people", session)
	if first.Itinerary == nil {
		t.Fatal("expected an initial recommendation")
	}

	resp := svc.ProcessMessage(ctx, "Too expensive", session)
	if resp.State != models.StateAwaitingConsent {
		t.Fatalf("state = %q, want %q", resp.State, models.StateAwaitingConsent)
	}
	if resp.Itinerary == nil || resp.Itinerary.ID == first.Itinerary.ID {
		t.Fatalf("refinement returned %v, want a different listing than %s", resp.Itinerary, first.Itinerary.ID)
	}
	if !strings.Contains(resp.Text, "Here's a great alternative!") {
		t.Errorf("text = %q, want the alternative framing", resp.Text)
	}
	if !strings.Contains(resp.Text, " cheaper") {
		t.Errorf("text = %q, want a price tradeoff", resp.Text)
	}
	if !strings.HasPrefix(resp.Itinerary.WhyThisProperty, "Alternative option: ") {
		t.Errorf("why = %q, want the alternative prefix", resp.Itinerary.WhyThisProperty)
	}
	if resp.Itinerary.Dates != first.Itinerary.Dates {
		t.Errorf("dates = %+v, want the original window %+v", resp.Itinerary.Dates, first.Itinerary.Dates)
	}
	if resp.Itinerary.Nights != first.Itinerary.Nights {
		t.Errorf("nights = %d, want %d carried over", resp.Itinerary.Nights, first.Itinerary.Nights)
	}
	if len(session.Context.ShownListings) != 2 {
		t.Errorf("shown listings = %v, want both picks recorded", session.Context.ShownListings)
	}
	wantChips := []string{"BOOK", "Show another", "Go back to previous"}
	for i, chip := range wantChips {
		if i >= len(resp.QuickReplies) || resp.QuickReplies[i] != chip {
			t.Fatalf("quick replies = %v, want %v", resp.QuickReplies, wantChips)
		}
	}

	// "Show another" is itself a refinement trigger.
	third := svc.ProcessMessage(ctx, "Show another", session)
	if third.Itinerary == nil || third.Itinerary.ID == resp.Itinerary.ID || third.Itinerary.ID == first.Itinerary.ID {
		t.Fatalf("third pick %v, want a listing not shown before", third.Itinerary)
	}
	if len(session.Context.ShownListings) != 3 {
		t.Errorf("shown listings = %v, want three picks recorded", session.Context.ShownListings)
	}
}

func TestRefineBiggerNamesBedDelta(t *testing.T) {
	svc := newCatalogAgent(t, twoListingCatalog)
	session := newTestSession()
	ctx := context.Background()

	first := svc.ProcessMessage(ctx, "lake tahoe this weekend for 2 people", session)
	if first.Itinerary == nil || first.Itinerary.ID != "CATALOG_cozy-aframe" {
		t.Fatalf("first pick = %v, want the A-frame", first.Itinerary)
	}

	resp := svc.ProcessMessage(ctx, "want more space", session)
	if resp.Itinerary == nil || resp.Itinerary.ID != "CATALOG_grand-lodge" {
		t.Fatalf("refinement pick = %v, want the lodge", resp.Itinerary)
	}
	if !strings.Contains(resp.Text, "Trade-off: 3 beds (vs 2)") {
		t.Errorf("text = %q, want the bed-count tradeoff", resp.Text)
	}
	if resp.Itinerary.TotalPrice != 800 {
		t.Errorf("total = %.0f, want 800 for two nights at 400", resp.Itinerary.TotalPrice)
	}
	if !strings.Contains(resp.Text, "$800 total") {
		t.Errorf("text = %q, want the recomputed total", resp.Text)
	}
}

func TestRefineSmallerFallsBackToClosestMatch(t *testing.T) {
	svc := newCatalogAgent(t, twoListingCatalog)
	session := newTestSession()
	ctx := context.Background()

	svc.ProcessMessage(ctx, "lake tahoe this weekend for 2 people", session)
	resp := svc.ProcessMessage(ctx, "can we get something smaller?", session)

	// Nothing has fewer beds than the 2-bed A-frame, so the lodge ships
	// with the closest-match framing instead of a bed-count claim.
	if resp.Itinerary == nil || resp.Itinerary.ID != "CATALOG_grand-lodge" {
		t.Fatalf("refinement pick = %v, want the only remaining listing", resp.Itinerary)
	}
	want := "Alternative option: Closest match available (still great!)"
	if resp.Itinerary.WhyThisProperty != want {
		t.Errorf("why = %q, want %q", resp.Itinerary.WhyThisProperty, want)
	}
}

func TestRefineExhaustedKeepsCurrentPick(t *testing.T) {
	svc := newCatalogAgent(t, singleListingCatalog)
	session := newTestSession()
	ctx := context.Background()

	first := svc.ProcessMessage(ctx, "lake tahoe this weekend for 2 people", session)
	if first.Itinerary == nil || first.Itinerary.ID != "CATALOG_tahoe-chalet" {
		t.Fatalf("first pick = %v, want the chalet", first.Itinerary)
	}

	resp := svc.ProcessMessage(ctx, "something different", session)
	want := "That's all I have for those criteria. Want to try different dates or location?"
	if resp.Text != want {
		t.Fatalf("text = %q, want %q", resp.Text, want)
	}
	if resp.Itinerary == nil || resp.Itinerary.ID != first.Itinerary.ID {
		t.Fatalf("itinerary = %v, want the previous pick kept", resp.Itinerary)
	}
	if resp.State != models.StateAwaitingConsent {
		t.Errorf("state = %q, want %q", resp.State, models.StateAwaitingConsent)
	}
	wantChips := []string{"Different dates", "Different location", "Book current"}
	for i, chip := range wantChips {
		if i >= len(resp.QuickReplies) || resp.QuickReplies[i] != chip {
			t.Fatalf("quick replies = %v, want %v", resp.QuickReplies, wantChips)
		}
	}
}

func TestRefinementNeedsAShownResult(t *testing.T) {
	svc := newTestAgent(t)
	session := newTestSession()

	// Without a prior recommendation the message is ordinary slot talk.
	resp := svc.ProcessMessage(context.Background(), "too expensive", session)
	if resp.Text != "Where would you like to go?" {
		t.Fatalf("text = %q, want the destination question", resp.Text)
	}
}
