package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"wayfarer/models"
	"wayfarer/services/payment"
	"wayfarer/store"
)

// scriptedAgent returns a fixed response and records the message it saw.
type scriptedAgent struct {
	lastMessage string
	resp        *models.ChatResponse
}

func (s *scriptedAgent) ProcessMessage(ctx context.Context, message string, session *models.Session) *models.ChatResponse {
	s.lastMessage = message
	return s.resp
}

func newChatRouter(h *ChatHandler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/chat", h.Chat)
	return r
}

func postChat(t *testing.T, r *gin.Engine, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/chat", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestChatRejectsEmptyMessage(t *testing.T) {
	agent := &scriptedAgent{resp: &models.ChatResponse{Text: "unused"}}
	h := NewChatHandler(agent, store.NewMemoryStore("SFO"), payment.NewPaymentService())
	r := newChatRouter(h)

	w := postChat(t, r, `{"message": "   "}`)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
	var body struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body.Message != "message is required" {
		t.Errorf("error = %q, want %q", body.Message, "message is required")
	}
	if agent.lastMessage != "" {
		t.Errorf("agent saw %q, want no dispatch on empty input", agent.lastMessage)
	}
}

func TestChatDispatchesToAgentAndEchoesSession(t *testing.T) {
	agent := &scriptedAgent{resp: &models.ChatResponse{
		Text:   "Where would you like to go?",
		State:  models.StateCollectingSlots,
		Needed: []string{"destination"},
	}}
	sessions := store.NewMemoryStore("SFO")
	h := NewChatHandler(agent, sessions, payment.NewPaymentService())
	r := newChatRouter(h)

	w := postChat(t, r, `{"message": "Hi there", "context": {"home_airport": "oak"}}`)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	var resp models.ChatResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if resp.Text != "Where would you like to go?" {
		t.Errorf("text = %q, want the agent's reply", resp.Text)
	}
	if resp.SessionID == "" {
		t.Error("session_id missing, client cannot continue the conversation")
	}
	if agent.lastMessage != "Hi there" {
		t.Errorf("agent saw %q, want the trimmed message", agent.lastMessage)
	}
	if got := sessions.GetSession(resp.SessionID).HomeAirport; got != "OAK" {
		t.Errorf("home airport = %q, want OAK upper-cased from context", got)
	}
}

func TestChatBookWithoutItinerary(t *testing.T) {
	agent := &scriptedAgent{resp: &models.ChatResponse{Text: "unused"}}
	h := NewChatHandler(agent, store.NewMemoryStore("SFO"), payment.NewPaymentService())
	r := newChatRouter(h)

	w := postChat(t, r, `{"message": "BOOK"}`)

	var resp models.ChatResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if resp.Text != "Nothing to book yet! Tell me where you want to go." {
		t.Errorf("text = %q", resp.Text)
	}
	if resp.State != models.StateCollectingSlots {
		t.Errorf("state = %q, want %q", resp.State, models.StateCollectingSlots)
	}
	if agent.lastMessage != "" {
		t.Errorf("agent saw %q, want the booking shortcut to bypass it", agent.lastMessage)
	}
}

func TestChatBookPlacesHold(t *testing.T) {
	agent := &scriptedAgent{resp: &models.ChatResponse{Text: "unused"}}
	sessions := store.NewMemoryStore("SFO")
	h := NewChatHandler(agent, sessions, payment.NewPaymentService())
	r := newChatRouter(h)

	session := sessions.GetSession("trip-1")
	session.LastItinerary = &models.Itinerary{
		ID:          "MOCK_LAKE_TAHOE_4",
		Destination: "Lake Tahoe",
		Name:        "Spacious Home with Hot Tub",
		TotalPrice:  640,
		Nights:      2,
	}

	// Lowercase also confirms; matching is case-insensitive.
	w := postChat(t, r, `{"message": "book", "context": {"session_id": "trip-1"}}`)

	var resp models.ChatResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	wantText := "🎉 Booked! Confirmation #HOLD_MOCK_LAKE_TAHOE_4\n\n(Demo mode - no real booking)\n\nIn production, this would charge your card and send confirmation email."
	if resp.Text != wantText {
		t.Errorf("text = %q, want %q", resp.Text, wantText)
	}
	if resp.State != models.StateHolding {
		t.Errorf("state = %q, want %q", resp.State, models.StateHolding)
	}
	if resp.Itinerary == nil || resp.Itinerary.ID != "MOCK_LAKE_TAHOE_4" {
		t.Errorf("itinerary = %v, want the held trip echoed back", resp.Itinerary)
	}
	if _, ok := sessions.GetHold("HOLD_MOCK_LAKE_TAHOE_4"); !ok {
		t.Error("hold not recorded in the store")
	}
}
