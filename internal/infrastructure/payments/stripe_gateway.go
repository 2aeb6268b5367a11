package payments

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"voice_billing/internal/usecase/interfaces"

	"github.com/rs/zerolog/log"
	"github.com/stripe/stripe-go/v79"
	"github.com/stripe/stripe-go/v79/client"
	"github.com/stripe/stripe-go/v79/webhook"
)

var (
	ErrMissingStripeSecretKey     = errors.New("missing STRIPE_SECRET_KEY")
	ErrMissingStripeWebhookSecret = errors.New("missing STRIPE_WEBHOOK_SECRET")
	ErrStripeProviderDown         = errors.New("stripe unavailable")
)

const stripeCheckoutCompleted = "checkout.session.completed"

// StripeGateway creates hosted checkout sessions and verifies webhooks.
type StripeGateway struct {
	client        *client.API
	webhookSecret string
	mockMode      bool
}

var _ interfaces.IStripeGateway = (*StripeGateway)(nil)

func NewStripeGateway(secretKey, webhookSecret string, mockMode bool) (*StripeGateway, error) {
	if mockMode {
		log.Info().Msg("[payment][stripe] mock mode enabled")
		return &StripeGateway{webhookSecret: webhookSecret, mockMode: true}, nil
	}
	if secretKey == "" {
		return nil, ErrMissingStripeSecretKey
	}
	if webhookSecret == "" {
		return nil, ErrMissingStripeWebhookSecret
	}

	sc := &client.API{}
	sc.Init(secretKey, nil)
	return &StripeGateway{client: sc, webhookSecret: webhookSecret}, nil
}

func (g *StripeGateway) CreateCheckoutSession(ctx context.Context, req interfaces.CheckoutRequest) (interfaces.CheckoutSession, error) {
	if g.mockMode {
		id := "cs_mock_" + strconv.FormatInt(time.Now().UTC().UnixNano(), 36)
		log.Ctx(ctx).Info().Str("session_id", id).Str("invoice_id", req.InvoiceID).Msg("[payment][stripe] mock session created")
		return interfaces.CheckoutSession{ID: id, URL: req.SuccessURL}, nil
	}

	params := &stripe.CheckoutSessionParams{
		Mode:              stripe.String(string(stripe.CheckoutSessionModePayment)),
		ClientReferenceID: stripe.String(req.InvoiceID),
		SuccessURL:        stripe.String(req.SuccessURL),
		CancelURL:         stripe.String(req.CancelURL),
		LineItems: []*stripe.CheckoutSessionLineItemParams{{
			Quantity: stripe.Int64(1),
			PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
				Currency:   stripe.String(req.Currency),
				UnitAmount: stripe.Int64(req.AmountMinor),
				ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
					Name: stripe.String(req.Description),
				},
			},
		}},
	}
	if req.CustomerEmail != "" {
		params.CustomerEmail = stripe.String(req.CustomerEmail)
	}
	for k, v := range req.Metadata {
		params.AddMetadata(k, v)
	}
	params.Context = ctx

	s, err := g.client.CheckoutSessions.New(params)
	if err != nil {
		return interfaces.CheckoutSession{}, mapStripeError(err)
	}
	return interfaces.CheckoutSession{ID: s.ID, URL: s.URL}, nil
}

// ParseWebhook verifies the Stripe-Signature header and decodes checkout
// session events. Other event types come back with only EventType set.
func (g *StripeGateway) ParseWebhook(payload []byte, signatureHeader string) (interfaces.CheckoutCompleted, error) {
	if g.webhookSecret == "" {
		return interfaces.CheckoutCompleted{}, ErrMissingStripeWebhookSecret
	}

	event, err := webhook.ConstructEventWithOptions(payload, signatureHeader, g.webhookSecret,
		webhook.ConstructEventOptions{IgnoreAPIVersionMismatch: true})
	if err != nil {
		return interfaces.CheckoutCompleted{}, fmt.Errorf("stripe signature invalid: %w", err)
	}

	out := interfaces.CheckoutCompleted{EventType: string(event.Type)}
	if event.Type != stripeCheckoutCompleted || event.Data == nil {
		return out, nil
	}

	var session stripe.CheckoutSession
	if err := json.Unmarshal(event.Data.Raw, &session); err != nil {
		return interfaces.CheckoutCompleted{}, fmt.Errorf("stripe session decode: %w", err)
	}

	out.OrderID = session.ID
	out.PaymentID = session.ID
	if session.PaymentIntent != nil && session.PaymentIntent.ID != "" {
		out.PaymentID = session.PaymentIntent.ID
	}
	out.Paid = session.PaymentStatus == stripe.CheckoutSessionPaymentStatusPaid
	out.Metadata = session.Metadata
	if event.Created > 0 {
		out.PaidAt = time.Unix(event.Created, 0).UTC()
	}
	return out, nil
}

func mapStripeError(err error) error {
	var stripeErr *stripe.Error
	if errors.As(err, &stripeErr) {
		switch {
		case stripeErr.HTTPStatusCode == http.StatusUnauthorized:
			return fmt.Errorf("unauthorized: %s", stripeErr.Msg)
		case stripeErr.HTTPStatusCode == http.StatusBadRequest:
			return fmt.Errorf("bad request: %s", stripeErr.Msg)
		case stripeErr.HTTPStatusCode >= http.StatusInternalServerError:
			return ErrStripeProviderDown
		}
	}
	return fmt.Errorf("stripe gateway error: %w", err)
}
