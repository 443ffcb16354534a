package composer

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"go.uber.org/zap"

	"wayfarer/models"
	"wayfarer/utils"
)

const rewriteTimeout = 30 * time.Second

const systemBrief = "You are Wayfarer, a cheerful, upbeat travel concierge. " +
	"Deliver one concise setup line, followed by a single lively paragraph (no more than 60 words) that sells the stay. " +
	"Close with exactly three punchy bullet highlights (each under 10 words). " +
	"Tone: optimistic, encouraging, confident, never over-the-top. " +
	"Always reference why the recommendation matches prior travel patterns when provided. " +
	"If transportation options are supplied, nod to the strongest one with the key benefit (duration or comfort). " +
	"When catalog options are supplied, mention one alternative by name and why it might be a backup fit. " +
	"Do not fabricate data beyond what is supplied in the payload. " +
	"Do not use emojis or emoticons anywhere in the response."

// travelerProfile stands in for account history we do not collect. The
// composer cites it so recommendations read as personalized.
var travelerProfile = models.TravelerProfile{
	HomeCity:      "Berkeley, CA",
	AverageBudget: "$800-$1,000 per trip",
	TravelParty:   "couple, occasionally with friends",
	TripStyle:     "weekend escapes",
}

// Profile returns the fixed demo traveler the copy is personalized for.
// Callers use it to look up transport from the traveler's home base.
func Profile() models.TravelerProfile {
	return travelerProfile
}

// Input carries everything the rewrite may reference. Fallback is the
// templated copy the caller already rendered; it is returned verbatim
// whenever the rewrite cannot run.
type Input struct {
	Headline    string
	Itinerary   *models.Itinerary
	Reasons     []string
	Tradeoff    string
	Transport   []models.TransportOption
	Alternative string
	Fallback    string
}

// Service rewrites agent copy in the product voice.
type Service interface {
	Compose(ctx context.Context, input Input) string
}

// DefaultComposerService is the production implementation backed by the
// shared Gemini client.
type DefaultComposerService struct{}

func NewComposerService() *DefaultComposerService {
	return &DefaultComposerService{}
}

// Compose asks Gemini for branded copy and falls back to the templated text
// on any failure. This is deliberately the only error-recovery path in the
// conversation pipeline: a broken rewrite must never break a response.
func (s *DefaultComposerService) Compose(ctx context.Context, input Input) string {
	logger := utils.GetLogger()

	gemini, err := sharedClient()
	if err != nil {
		if !errors.Is(err, ErrNotConfigured) {
			logger.Warn("Gemini client unavailable, using template copy", zap.Error(err))
		}
		return input.Fallback
	}

	prompt, err := buildPrompt(input)
	if err != nil {
		logger.Warn("Failed to build rewrite prompt, using template copy", zap.Error(err))
		return input.Fallback
	}

	ctx, cancel := context.WithTimeout(ctx, rewriteTimeout)
	defer cancel()

	text, err := gemini.generate(ctx, prompt)
	if err != nil {
		logger.Warn("Brand rewrite failed, using template copy", zap.Error(err))
		return input.Fallback
	}
	return text
}

type travelContext struct {
	Headline          string                   `json:"headline"`
	TravelerProfile   models.TravelerProfile   `json:"traveler_profile"`
	Itinerary         *models.Itinerary        `json:"itinerary,omitempty"`
	Reasons           []string                 `json:"reasons,omitempty"`
	Tradeoff          string                   `json:"tradeoff,omitempty"`
	TransportOptions  []models.TransportOption `json:"transport_options,omitempty"`
	AlternativeOption string                   `json:"alternative_option,omitempty"`
	FallbackCopy      string                   `json:"fallback_copy"`
}

type rewritePrompt struct {
	Instructions         string               `json:"instructions"`
	TravelContext        travelContext        `json:"travel_context"`
	ResponseRequirements responseRequirements `json:"response_requirements"`
}

type responseRequirements struct {
	Sections []string      `json:"sections"`
	Style    responseStyle `json:"style"`
}

type responseStyle struct {
	EmojiUsage string `json:"emoji_usage"`
	Voice      string `json:"voice"`
}

func buildPrompt(input Input) (string, error) {
	prompt := rewritePrompt{
		Instructions: systemBrief,
		TravelContext: travelContext{
			Headline:          input.Headline,
			TravelerProfile:   travelerProfile,
			Itinerary:         input.Itinerary,
			Reasons:           input.Reasons,
			Tradeoff:          input.Tradeoff,
			TransportOptions:  input.Transport,
			AlternativeOption: input.Alternative,
			FallbackCopy:      input.Fallback,
		},
		ResponseRequirements: responseRequirements{
			Sections: []string{
				"A positive acknowledgement of the user's request.",
				"A short paragraph describing the stay and why it fits.",
				"Three bullet highlights under 10 words each.",
				"Invite the user to book or refine.",
			},
			Style: responseStyle{
				EmojiUsage: "not allowed",
				Voice:      "human concierge, first person plural 'we' acceptable",
			},
		},
	}

	raw, err := json.MarshalIndent(prompt, "", "  ")
	if err != nil {
		return "", err
	}
	return string(raw), nil
}
