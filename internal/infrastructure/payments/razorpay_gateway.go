package payments

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"voice_billing/internal/usecase/interfaces"

	razorpay "github.com/razorpay/razorpay-go"
	"github.com/rs/zerolog/log"
)

var ErrMissingRazorpayCredentials = errors.New("missing razorpay key id or secret")

// RazorpayGateway talks to Razorpay with per-entity credentials. A client is
// built per call since every billing entity may own its own account.
type RazorpayGateway struct {
	mockMode bool
}

var _ interfaces.IRazorpayGateway = (*RazorpayGateway)(nil)

func NewRazorpayGateway(mockMode bool) *RazorpayGateway {
	if mockMode {
		log.Info().Msg("[payment][razorpay] mock mode enabled")
	}
	return &RazorpayGateway{mockMode: mockMode}
}

func (g *RazorpayGateway) CreateOrder(ctx context.Context, creds interfaces.RazorpayCredentials, req interfaces.RazorpayOrderRequest) (interfaces.RazorpayOrder, error) {
	logger := log.Ctx(ctx)

	if g.mockMode {
		id := "order_mock_" + strconv.FormatInt(time.Now().UTC().UnixNano(), 36)
		logger.Info().Str("order_id", id).Str("receipt", req.Receipt).Msg("[payment][razorpay] mock order created")
		return interfaces.RazorpayOrder{ID: id, AmountPaise: req.AmountPaise, Currency: req.Currency, Status: "created"}, nil
	}

	if creds.KeyID == "" || creds.KeySecret == "" {
		return interfaces.RazorpayOrder{}, ErrMissingRazorpayCredentials
	}

	notes := make(map[string]interface{}, len(req.Notes))
	for k, v := range req.Notes {
		notes[k] = v
	}
	data := map[string]interface{}{
		"amount":   req.AmountPaise,
		"currency": req.Currency,
		"receipt":  req.Receipt,
		"notes":    notes,
	}

	client := razorpay.NewClient(creds.KeyID, creds.KeySecret)
	body, err := client.Order.Create(data, nil)
	if err != nil {
		logger.Error().Err(err).Str("receipt", req.Receipt).Msg("[payment][razorpay] order create failed")
		return interfaces.RazorpayOrder{}, err
	}

	order := interfaces.RazorpayOrder{
		ID:          stringField(body, "id"),
		AmountPaise: int64Field(body, "amount"),
		Currency:    stringField(body, "currency"),
		Status:      stringField(body, "status"),
	}
	if order.ID == "" {
		return interfaces.RazorpayOrder{}, fmt.Errorf("razorpay order response missing id")
	}
	logger.Info().Str("order_id", order.ID).Str("receipt", req.Receipt).Msg("[payment][razorpay] order created")
	return order, nil
}

// VerifyPaymentSignature implements the checkout handler check:
// hex(HMAC_SHA256(order_id + "|" + payment_id, key_secret)).
func (g *RazorpayGateway) VerifyPaymentSignature(orderID, paymentID, signature, secret string) bool {
	if g.mockMode && strings.HasPrefix(signature, "mock_") {
		return true
	}
	if orderID == "" || paymentID == "" || secret == "" {
		return false
	}
	expected := hmacSHA256Hex([]byte(secret), []byte(orderID+"|"+paymentID))
	return equalHex(expected, signature)
}

// VerifyWebhookSignature checks X-Razorpay-Signature: hex(HMAC_SHA256(body, secret)).
func (g *RazorpayGateway) VerifyWebhookSignature(body []byte, signature, secret string) bool {
	if secret == "" {
		return false
	}
	return equalHex(hmacSHA256Hex([]byte(secret), body), signature)
}

func stringField(m map[string]interface{}, key string) string {
	if v, ok := m[key].(string); ok {
		return v
	}
	return ""
}

// int64Field accepts the float64 that encoding/json produces for numbers.
func int64Field(m map[string]interface{}, key string) int64 {
	switch v := m[key].(type) {
	case float64:
		return int64(v)
	case int64:
		return v
	case int:
		return int64(v)
	}
	return 0
}
