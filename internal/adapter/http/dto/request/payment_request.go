package request

import (
	"strings"

	"voice_billing/internal/usecase"
)

// CheckoutRequest opens a processor checkout for the invoice the token grants.
type CheckoutRequest struct {
	Token string `json:"token" binding:"required"`
}

// VerifyPaymentRequest is what the Razorpay checkout hands back to the
// payment page after a successful payment.
type VerifyPaymentRequest struct {
	Token             string `json:"token" binding:"required"`
	RazorpayPaymentID string `json:"razorpay_payment_id" binding:"required"`
	RazorpayOrderID   string `json:"razorpay_order_id" binding:"required"`
	RazorpaySignature string `json:"razorpay_signature" binding:"required"`
}

func (r VerifyPaymentRequest) ToCommand() usecase.VerifyPaymentCommand {
	return usecase.VerifyPaymentCommand{
		Token:     strings.TrimSpace(r.Token),
		PaymentID: strings.TrimSpace(r.RazorpayPaymentID),
		OrderID:   strings.TrimSpace(r.RazorpayOrderID),
		Signature: strings.TrimSpace(r.RazorpaySignature),
	}
}

// MercadoPagoWebhookBody is the JSON notification Mercado Pago posts. The
// same values may also arrive as query parameters.
type MercadoPagoWebhookBody struct {
	Type   string `json:"type"`
	Action string `json:"action"`
	Data   struct {
		ID string `json:"id"`
	} `json:"data"`
}
