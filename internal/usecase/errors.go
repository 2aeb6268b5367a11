package usecase

import (
	"errors"
	"strings"
)

var (
	ErrInvalidCompanyID         = errors.New("invalid company_id")
	ErrEntityNotFound           = errors.New("billing entity not found")
	ErrMissingRateCard          = errors.New("billing rate configuration missing")
	ErrInvoiceNotFound          = errors.New("invoice not found")
	ErrInvoiceAlreadyPaid       = errors.New("invoice already paid")
	ErrPaymentNotFound          = errors.New("payment record not found")
	ErrInvalidToken             = errors.New("invalid or expired invoice token")
	ErrSignatureMismatch        = errors.New("payment signature mismatch")
	ErrWebhookSignature         = errors.New("invalid webhook signature")
	ErrWebhookPayload           = errors.New("invalid webhook payload")
	ErrWebhookSecretUnavailable = errors.New("webhook secret unavailable")
	ErrCredentialsUnavailable   = errors.New("payment credentials unavailable")
	ErrProcessorNotConfigured   = errors.New("payment processor not configured")
	ErrInvalidDateRange         = errors.New("invalid date range")
	ErrMissingBillingEmail      = errors.New("billing email not configured")

	ErrPaymentGatewayBadRequest   = errors.New("payment gateway bad request")
	ErrPaymentGatewayUnauthorized = errors.New("payment gateway unauthorized")
)

// classifyGatewayError folds processor SDK errors into the gateway sentinels the
// HTTP layer knows how to map. Unknown errors pass through unchanged.
func classifyGatewayError(err error) error {
	if err == nil {
		return nil
	}
	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "unauthorized"), strings.Contains(msg, "authentication failed"),
		strings.Contains(msg, "\"status\":401"), strings.Contains(msg, "invalid api key"):
		return errors.Join(ErrPaymentGatewayUnauthorized, err)
	case strings.Contains(msg, "bad_request"), strings.Contains(msg, "bad request"), strings.Contains(msg, "\"status\":400"):
		return errors.Join(ErrPaymentGatewayBadRequest, err)
	}
	return err
}
