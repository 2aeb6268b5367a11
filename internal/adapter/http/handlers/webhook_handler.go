package handlers

import (
	"encoding/json"
	"io"
	"net/http"

	"voice_billing/internal/adapter/http/dto/request"
	"voice_billing/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

const (
	headerRazorpaySignature = "X-Razorpay-Signature"
	headerStripeSignature   = "Stripe-Signature"
	headerMPSignature       = "X-Signature"
	headerMPRequestID       = "X-Request-Id"

	maxWebhookBody = 1 << 20
)

// WebhookHandler receives processor notifications. Bodies are read raw so
// signatures are checked over the exact bytes the processor signed.
type WebhookHandler struct {
	usecase usecase.IPaymentUseCase
}

func NewWebhookHandler(uc usecase.IPaymentUseCase) *WebhookHandler {
	return &WebhookHandler{usecase: uc}
}

// RazorpayWebhook godoc
// @Summary      Razorpay webhook
// @Tags         webhooks
// @Accept       json
// @Produce      json
// @Param        X-Razorpay-Signature  header  string  true  "HMAC-SHA256 of the body"
// @Success      200  {object}  usecase.WebhookResult
// @Failure      401  {object}  pkg.HTTPError
// @Router       /webhooks/razorpay [post]
func (h *WebhookHandler) RazorpayWebhook(c *gin.Context) {
	body, ok := readBody(c)
	if !ok {
		return
	}
	res, err := h.usecase.HandleRazorpayWebhook(c.Request.Context(), body, c.GetHeader(headerRazorpaySignature))
	h.respond(c, "razorpay", res, err)
}

// StripeWebhook godoc
// @Summary      Stripe webhook
// @Tags         webhooks
// @Accept       json
// @Produce      json
// @Param        Stripe-Signature  header  string  true  "Stripe signature header"
// @Success      200  {object}  usecase.WebhookResult
// @Failure      401  {object}  pkg.HTTPError
// @Router       /webhooks/stripe [post]
func (h *WebhookHandler) StripeWebhook(c *gin.Context) {
	body, ok := readBody(c)
	if !ok {
		return
	}
	res, err := h.usecase.HandleStripeWebhook(c.Request.Context(), body, c.GetHeader(headerStripeSignature))
	h.respond(c, "stripe", res, err)
}

// MercadoPagoWebhook godoc
// @Summary      Mercado Pago webhook
// @Tags         webhooks
// @Accept       json
// @Produce      json
// @Param        x-signature   header  string  false  "ts=...,v1=..."
// @Param        x-request-id  header  string  false  "Request id signed into the manifest"
// @Param        type          query   string  false  "Notification topic"
// @Param        data.id       query   string  false  "Resource id"
// @Success      200  {object}  usecase.WebhookResult
// @Failure      401  {object}  pkg.HTTPError
// @Router       /webhooks/mercadopago [post]
func (h *WebhookHandler) MercadoPagoWebhook(c *gin.Context) {
	body, ok := readBody(c)
	if !ok {
		return
	}
	var payload request.MercadoPagoWebhookBody
	if len(body) > 0 {
		_ = json.Unmarshal(body, &payload)
	}

	n := usecase.MercadoPagoNotification{
		Type:      firstNonEmpty(c.Query("type"), c.Query("topic"), payload.Type),
		DataID:    firstNonEmpty(c.Query("data.id"), c.Query("id"), payload.Data.ID),
		RequestID: c.GetHeader(headerMPRequestID),
		Signature: c.GetHeader(headerMPSignature),
	}
	res, err := h.usecase.HandleMercadoPagoWebhook(c.Request.Context(), n)
	h.respond(c, "mercadopago", res, err)
}

func (h *WebhookHandler) respond(c *gin.Context, processor string, res usecase.WebhookResult, err error) {
	if err != nil {
		log.Ctx(c.Request.Context()).Warn().Str("processor", processor).Err(err).Msg("[payment][webhook] rejected")
		writeError(c, mapWebhookError(err))
		return
	}
	c.JSON(http.StatusOK, res)
}

func readBody(c *gin.Context) ([]byte, bool) {
	body, err := io.ReadAll(io.LimitReader(c.Request.Body, maxWebhookBody))
	if err != nil {
		writeError(c, invalidRequest())
		return nil, false
	}
	return body, true
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
