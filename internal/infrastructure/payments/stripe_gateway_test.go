package payments

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stripe/stripe-go/v79/webhook"
)

const testStripeSecret = "whsec_test"

func signedStripePayload(t *testing.T, payload string) (string, []byte) {
	t.Helper()
	signed := webhook.GenerateTestSignedPayload(&webhook.UnsignedPayload{
		Payload:   []byte(payload),
		Secret:    testStripeSecret,
		Timestamp: time.Now(),
	})
	return signed.Header, signed.Payload
}

func TestStripeGateway_ParseCheckoutCompleted(t *testing.T) {
	g := &StripeGateway{webhookSecret: testStripeSecret}
	header, body := signedStripePayload(t, `{
		"id": "evt_1",
		"object": "event",
		"type": "checkout.session.completed",
		"created": 1759485600,
		"data": {"object": {
			"id": "cs_test_1",
			"object": "checkout.session",
			"payment_intent": "pi_123",
			"payment_status": "paid",
			"metadata": {"invoice_id": "ACM092025", "company_id": "acme", "tenant_id": "default"}
		}}
	}`)

	ev, err := g.ParseWebhook(body, header)
	require.NoError(t, err)
	assert.Equal(t, "checkout.session.completed", ev.EventType)
	assert.True(t, ev.Paid)
	assert.Equal(t, "pi_123", ev.PaymentID)
	assert.Equal(t, "cs_test_1", ev.OrderID)
	assert.Equal(t, "ACM092025", ev.Metadata["invoice_id"])
	assert.Equal(t, time.Unix(1759485600, 0).UTC(), ev.PaidAt)
}

func TestStripeGateway_ParseOtherEvent(t *testing.T) {
	g := &StripeGateway{webhookSecret: testStripeSecret}
	header, body := signedStripePayload(t, `{"id":"evt_2","object":"event","type":"charge.refunded","data":{"object":{}}}`)

	ev, err := g.ParseWebhook(body, header)
	require.NoError(t, err)
	assert.Equal(t, "charge.refunded", ev.EventType)
	assert.False(t, ev.Paid)
}

func TestStripeGateway_RejectsBadSignature(t *testing.T) {
	g := &StripeGateway{webhookSecret: testStripeSecret}
	header, body := signedStripePayload(t, `{"id":"evt_3","object":"event","type":"checkout.session.completed","data":{"object":{}}}`)

	_, err := g.ParseWebhook(append(body, ' '), header)
	assert.Error(t, err)

	_, err = (&StripeGateway{}).ParseWebhook(body, header)
	assert.ErrorIs(t, err, ErrMissingStripeWebhookSecret)
}

func TestNewStripeGateway_RequiresKeys(t *testing.T) {
	_, err := NewStripeGateway("", "whsec", false)
	assert.ErrorIs(t, err, ErrMissingStripeSecretKey)

	_, err = NewStripeGateway("sk_test", "", false)
	assert.ErrorIs(t, err, ErrMissingStripeWebhookSecret)

	g, err := NewStripeGateway("", "", true)
	require.NoError(t, err)
	assert.True(t, g.mockMode)
}
