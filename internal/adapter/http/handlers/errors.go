package handlers

import (
	"errors"
	"net/http"

	"voice_billing/internal/adapter/http/dto/request"
	"voice_billing/internal/auth"
	"voice_billing/internal/domain/billing"
	"voice_billing/internal/domain/entities"
	"voice_billing/internal/scheduler"
	"voice_billing/internal/usecase"
	"voice_billing/pkg"

	"github.com/gin-gonic/gin"
)

func writeError(c *gin.Context, appErr *pkg.AppError) {
	if appErr.Err != nil {
		_ = c.Error(appErr.Err)
	}
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

func invalidRequest() *pkg.AppError {
	return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
}

func mapInvoiceError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidCompanyID), errors.Is(err, entities.ErrMissingCompanyID):
		return pkg.NewDomainErrorSimple("INVALID_COMPANY_ID", "Invalid company_id", http.StatusBadRequest)
	case errors.Is(err, entities.ErrFuturePeriod):
		return pkg.NewDomainErrorSimple("INVALID_BILLING_PERIOD", "Cannot generate invoice for current or future month", http.StatusBadRequest)
	case errors.Is(err, entities.ErrInvalidPeriod), errors.Is(err, request.ErrInvalidMonth):
		return pkg.NewDomainErrorSimple("INVALID_BILLING_PERIOD", "Invalid billing period", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrMissingRateCard), errors.Is(err, billing.ErrUnsupportedBillingPolicy),
		errors.Is(err, billing.ErrUnknownRoundingPolicy), errors.Is(err, billing.ErrNegativeInput):
		return pkg.NewDomainError("BILLING_NOT_CONFIGURED", "Billing configuration missing or invalid", err, http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrInvalidDateRange):
		return pkg.NewDomainErrorSimple("INVALID_DATE_RANGE", "Invalid date range, use YYYY-MM-DD with start_date <= end_date", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrEntityNotFound):
		return pkg.NewDomainErrorSimple("ENTITY_NOT_FOUND", "Billing entity not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrInvoiceNotFound):
		return pkg.NewDomainErrorSimple("INVOICE_NOT_FOUND", "Invoice not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrPaymentNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_NOT_FOUND", "No payment recorded for this invoice", http.StatusNotFound)
	case errors.Is(err, usecase.ErrInvalidToken), errors.Is(err, auth.ErrInvalidToken):
		return pkg.NewDomainErrorSimple("INVALID_TOKEN", "Invalid or expired invoice token", http.StatusUnauthorized)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

func mapPaymentError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidToken):
		return pkg.NewDomainErrorSimple("INVALID_TOKEN", "Invalid or expired invoice token", http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrSignatureMismatch):
		return pkg.NewDomainErrorSimple("INVALID_SIGNATURE", "Payment signature verification failed", http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrInvoiceNotFound):
		return pkg.NewDomainErrorSimple("INVOICE_NOT_FOUND", "Invoice not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrInvoiceAlreadyPaid):
		return pkg.NewDomainErrorSimple("INVOICE_ALREADY_PAID", "Invoice already paid", http.StatusConflict)
	case errors.Is(err, usecase.ErrCredentialsUnavailable):
		return pkg.NewDomainError("PAYMENT_NOT_CONFIGURED", "Payment credentials not configured for this entity", err, http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrProcessorNotConfigured):
		return pkg.NewDomainErrorSimple("PAYMENT_PROCESSOR_UNAVAILABLE", "Payment processor not configured", http.StatusServiceUnavailable)
	case errors.Is(err, usecase.ErrPaymentGatewayBadRequest):
		return pkg.NewDomainError("PAYMENT_PROVIDER_BAD_REQUEST", "Payment provider rejected the request", err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayUnauthorized):
		return pkg.NewDomainError("PAYMENT_PROVIDER_UNAUTHORIZED", "Payment provider unauthorized", err, http.StatusBadGateway)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

func mapWebhookError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrWebhookSignature):
		return pkg.NewDomainErrorSimple("INVALID_SIGNATURE", "Invalid webhook signature", http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrWebhookPayload):
		return pkg.NewDomainError("INVALID_PAYLOAD", "Invalid webhook payload", err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrWebhookSecretUnavailable):
		return pkg.NewDomainError("WEBHOOK_SECRET_UNAVAILABLE", "Webhook secret unavailable", err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvoiceNotFound):
		return pkg.NewDomainErrorSimple("INVOICE_NOT_FOUND", "Invoice not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrProcessorNotConfigured):
		return pkg.NewDomainErrorSimple("PAYMENT_PROCESSOR_UNAVAILABLE", "Payment processor not configured", http.StatusServiceUnavailable)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

func mapSchedulerError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, scheduler.ErrUnknownJob):
		return pkg.NewDomainErrorSimple("JOB_NOT_FOUND", "Job not found", http.StatusNotFound)
	case errors.Is(err, scheduler.ErrJobLocked):
		return pkg.NewDomainErrorSimple("JOB_RUNNING", "Job is already running elsewhere", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
