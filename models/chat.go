package models

// Response states reported to the client on every chat turn.
const (
	StateCollectingSlots = "COLLECTING_SLOTS" // still gathering trip details
	StateAwaitingConsent = "AWAITING_CONSENT" // a recommendation is on the table
	StateFailed          = "FAILED"           // search came up empty
	StateHolding         = "HOLDING"          // a hold has been placed
)

// ChatContext carries optional caller identity alongside a message.
type ChatContext struct {
	Name        string `json:"name,omitempty"`
	Email       string `json:"email,omitempty"`
	HomeAirport string `json:"home_airport,omitempty"` // 3-letter origin code, e.g. "SFO"
	SessionID   string `json:"session_id,omitempty"`
}

// ChatRequest is the inbound payload for POST /chat.
type ChatRequest struct {
	Message string       `json:"message"`
	Context *ChatContext `json:"context,omitempty"`
}

// ChatResponse is the outbound payload for POST /chat.
type ChatResponse struct {
	Text         string     `json:"text"`
	Itinerary    *Itinerary `json:"itinerary"`
	State        string     `json:"state"`
	Needed       []string   `json:"needed"`                 // slot names still missing
	QuickReplies []string   `json:"quick_replies,omitempty"` // suggested tap-to-send answers
	SessionID    string     `json:"session_id,omitempty"`
}
