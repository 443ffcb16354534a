package models

// Stage tracks where a conversation sits in the slot-filling flow.
type Stage string

const (
	StageInitial         Stage = "initial"
	StageNeedLocation    Stage = "need_location"
	StageNeedDates       Stage = "need_dates"
	StageNeedCustomDates Stage = "need_custom_dates"
	StageNeedGuests      Stage = "need_guests"
	StageReadyToSearch   Stage = "ready_to_search"
	StageShowingResult   Stage = "showing_result"
	StageRefining        Stage = "refining"
)

// TripSlots holds everything we know about the trip being planned.
// Zero values mean "not provided yet".
type TripSlots struct {
	Destination string  `json:"destination"`
	Activity    string  `json:"activity"`
	CheckIn     string  `json:"check_in"`  // ISO date YYYY-MM-DD
	CheckOut    string  `json:"check_out"` // ISO date YYYY-MM-DD
	Guests      int     `json:"guests"`
	BudgetMax   float64 `json:"budget_max"` // upper bound for the whole stay
}

// ConversationContext is the per-session state of the slot-filling engine.
type ConversationContext struct {
	Stage         Stage     `json:"stage"`
	Slots         TripSlots `json:"slots"`
	ShownListings []string  `json:"shown_listings"` // listing ids already recommended
}

// MissingSlots reports the critical slots still unfilled, in the order the
// agent asks for them.
func (c *ConversationContext) MissingSlots() []string {
	missing := []string{}
	if c.Slots.Destination == "" {
		missing = append(missing, "destination")
	}
	if c.Slots.CheckIn == "" {
		missing = append(missing, "dates")
	}
	if c.Slots.Guests == 0 {
		missing = append(missing, "guests")
	}
	return missing
}

// ReadyToSearch reports whether enough slots are filled to run a search.
func (c *ConversationContext) ReadyToSearch() bool {
	return c.Slots.Destination != "" && c.Slots.CheckIn != "" && c.Slots.Guests > 0
}

// WasShown reports whether a listing id has already been recommended in this
// conversation.
func (c *ConversationContext) WasShown(id string) bool {
	for _, shown := range c.ShownListings {
		if shown == id {
			return true
		}
	}
	return false
}

// Session is one traveler's in-memory conversation record.
type Session struct {
	ID            string              `json:"id"`
	Name          string              `json:"name,omitempty"`
	Email         string              `json:"email,omitempty"`
	HomeAirport   string              `json:"home_airport"`
	Context       ConversationContext `json:"context"`
	LastItinerary *Itinerary          `json:"last_itinerary,omitempty"`
}
