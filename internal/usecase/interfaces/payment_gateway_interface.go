package interfaces

import (
	"context"
	"time"
)

type RazorpayCredentials struct {
	KeyID     string
	KeySecret string
}

type RazorpayOrderRequest struct {
	AmountPaise int64
	Currency    string
	Receipt     string
	Notes       map[string]string
}

type RazorpayOrder struct {
	ID          string
	AmountPaise int64
	Currency    string
	Status      string
}

// IRazorpayGateway creates orders with per-entity credentials and checks the
// HMAC signatures Razorpay attaches to payments and webhooks.
type IRazorpayGateway interface {
	CreateOrder(ctx context.Context, creds RazorpayCredentials, req RazorpayOrderRequest) (RazorpayOrder, error)
	// VerifyPaymentSignature checks HMAC-SHA256(orderID|paymentID) in constant time.
	VerifyPaymentSignature(orderID, paymentID, signature, secret string) bool
	// VerifyWebhookSignature checks HMAC-SHA256 over the raw body in constant time.
	VerifyWebhookSignature(body []byte, signature, secret string) bool
}

// CheckoutRequest describes a hosted checkout for one invoice.
type CheckoutRequest struct {
	InvoiceID     string
	Description   string
	Currency      string
	AmountMinor   int64
	CustomerEmail string
	SuccessURL    string
	CancelURL     string
	Metadata      map[string]string
}

type CheckoutSession struct {
	ID  string
	URL string
}

// CheckoutCompleted is a verified, processor-neutral completion notice.
type CheckoutCompleted struct {
	EventType string
	PaymentID string
	OrderID   string
	Paid      bool
	Metadata  map[string]string
	PaidAt    time.Time
}

type IStripeGateway interface {
	CreateCheckoutSession(ctx context.Context, req CheckoutRequest) (CheckoutSession, error)
	// ParseWebhook verifies the Stripe-Signature header and decodes the event.
	ParseWebhook(payload []byte, signatureHeader string) (CheckoutCompleted, error)
}

type IMercadoPagoGateway interface {
	CreatePreference(ctx context.Context, req CheckoutRequest) (CheckoutSession, error)
	// VerifyWebhook checks the x-signature header against the notification.
	VerifyWebhook(dataID, requestID, signatureHeader string) error
	// GetPayment looks a payment up by id; EventType carries the processor status.
	GetPayment(ctx context.Context, paymentID string) (CheckoutCompleted, error)
}
