package models

// Hold is a 24-hour demo reservation on an itinerary. No inventory is
// actually held anywhere.
type Hold struct {
	HoldID      string `json:"hold_id"` // "HOLD_" + itinerary id
	ItineraryID string `json:"itinerary_id"`
	ExpiresAt   string `json:"expires_at"` // RFC 3339, UTC
}

// CheckoutSession points the traveler at a payment page. In demo mode the
// values are fixed placeholders.
type CheckoutSession struct {
	CheckoutURL string `json:"checkout_url"`
	SessionID   string `json:"session_id"`
}
