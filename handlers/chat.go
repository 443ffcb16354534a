// File: handlers/chat.go
package handlers

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"wayfarer/models"
	"wayfarer/services/agent"
	"wayfarer/services/payment"
	"wayfarer/store"
	"wayfarer/utils"
)

// ChatHandler owns the conversational endpoint and the booking shortcut.
type ChatHandler struct {
	Agent    agent.AgentService
	Store    *store.MemoryStore
	Payments payment.PaymentService
}

func NewChatHandler(agentSvc agent.AgentService, sessions *store.MemoryStore, payments payment.PaymentService) *ChatHandler {
	return &ChatHandler{Agent: agentSvc, Store: sessions, Payments: payments}
}

// Chat handles POST /chat. Every turn runs through the agent except the
// uppercase booking confirmation, which short-circuits into a hold.
func (h *ChatHandler) Chat(c *gin.Context) {
	var req models.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	message := strings.TrimSpace(req.Message)
	if message == "" {
		utils.JSONError(c, http.StatusBadRequest, "message is required", "")
		return
	}

	var sessionID string
	if req.Context != nil {
		sessionID = req.Context.SessionID
	}
	session := h.Store.GetSession(sessionID)

	if req.Context != nil {
		if req.Context.HomeAirport != "" {
			session.HomeAirport = strings.ToUpper(req.Context.HomeAirport)
		}
		if req.Context.Name != "" {
			session.Name = req.Context.Name
		}
		if req.Context.Email != "" {
			session.Email = req.Context.Email
		}
	}

	var resp *models.ChatResponse
	if upper := strings.ToUpper(message); upper == "BOOK" || upper == "CONFIRM" {
		resp = h.book(session)
	} else {
		resp = h.Agent.ProcessMessage(c.Request.Context(), message, session)
	}

	// Echo the session id so the client can keep the conversation going.
	resp.SessionID = session.ID
	c.JSON(http.StatusOK, resp)
}

// book places a hold on the current recommendation and hands out checkout.
func (h *ChatHandler) book(session *models.Session) *models.ChatResponse {
	if session.LastItinerary == nil {
		return &models.ChatResponse{
			Text:   "Nothing to book yet! Tell me where you want to go.",
			State:  models.StateCollectingSlots,
			Needed: []string{},
		}
	}

	hold := h.Store.PlaceHold(session.LastItinerary.ID)
	checkout := h.Payments.CreateCheckoutSession(session.LastItinerary, session.Email)

	text := fmt.Sprintf(
		"🎉 Booked! Confirmation #%s\n\n(Demo mode - no real booking)\n\nIn production, this would charge your card and send confirmation email.",
		hold.HoldID,
	)
	if checkout.CheckoutURL != "" && checkout.CheckoutURL != "/success" {
		text = fmt.Sprintf("🎉 Booked! Confirmation #%s\n\nComplete checkout: %s", hold.HoldID, checkout.CheckoutURL)
	}

	return &models.ChatResponse{
		Text:      text,
		Itinerary: session.LastItinerary,
		State:     models.StateHolding,
		Needed:    []string{},
	}
}
