package handlers

import (
	"context"
	"net/http"

	"voice_billing/internal/adapter/http/dto/request"
	"voice_billing/internal/adapter/http/dto/response"
	"voice_billing/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// PaymentHandler serves the anonymous payment page. Every call is authorized
// by the invoice access token in the body.
type PaymentHandler struct {
	usecase usecase.IPaymentUseCase
}

func NewPaymentHandler(uc usecase.IPaymentUseCase) *PaymentHandler {
	return &PaymentHandler{usecase: uc}
}

// CreateRazorpayOrder godoc
// @Summary      Create a Razorpay order for an invoice
// @Tags         payments
// @Accept       json
// @Produce      json
// @Param        body  body      request.CheckoutRequest  true  "Invoice access token"
// @Success      200   {object}  usecase.CheckoutResult
// @Failure      401   {object}  pkg.HTTPError
// @Failure      409   {object}  pkg.HTTPError
// @Router       /payments/razorpay/order [post]
func (h *PaymentHandler) CreateRazorpayOrder(c *gin.Context) {
	h.checkout(c, "razorpay", h.usecase.CreateRazorpayOrder)
}

// CreateStripeSession godoc
// @Summary      Create a Stripe Checkout session for an invoice
// @Tags         payments
// @Accept       json
// @Produce      json
// @Param        body  body      request.CheckoutRequest  true  "Invoice access token"
// @Success      200   {object}  usecase.CheckoutResult
// @Failure      401   {object}  pkg.HTTPError
// @Failure      409   {object}  pkg.HTTPError
// @Router       /payments/stripe/session [post]
func (h *PaymentHandler) CreateStripeSession(c *gin.Context) {
	h.checkout(c, "stripe", h.usecase.CreateStripeSession)
}

// CreateMercadoPagoPreference godoc
// @Summary      Create a Mercado Pago checkout preference for an invoice
// @Tags         payments
// @Accept       json
// @Produce      json
// @Param        body  body      request.CheckoutRequest  true  "Invoice access token"
// @Success      200   {object}  usecase.CheckoutResult
// @Failure      401   {object}  pkg.HTTPError
// @Router       /payments/mercadopago/preference [post]
func (h *PaymentHandler) CreateMercadoPagoPreference(c *gin.Context) {
	h.checkout(c, "mercadopago", h.usecase.CreateMercadoPagoPreference)
}

func (h *PaymentHandler) checkout(c *gin.Context, processor string, create func(context.Context, string) (usecase.CheckoutResult, error)) {
	ctx := c.Request.Context()

	var req request.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, invalidRequest())
		return
	}
	res, err := create(ctx, req.Token)
	if err != nil {
		log.Ctx(ctx).Warn().Str("processor", processor).Err(err).Msg("[payment][handler] checkout failed")
		writeError(c, mapPaymentError(err))
		return
	}
	c.JSON(http.StatusOK, res)
}

// VerifyRazorpayPayment godoc
// @Summary      Confirm a Razorpay payment from the checkout callback
// @Tags         payments
// @Accept       json
// @Produce      json
// @Param        body  body      request.VerifyPaymentRequest  true  "Token and the Razorpay payment triple"
// @Success      200   {object}  response.PaymentResponse
// @Failure      401   {object}  pkg.HTTPError
// @Router       /payments/razorpay/verify [post]
func (h *PaymentHandler) VerifyRazorpayPayment(c *gin.Context) {
	ctx := c.Request.Context()

	var req request.VerifyPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, invalidRequest())
		return
	}
	res, err := h.usecase.VerifyRazorpayPayment(ctx, req.ToCommand())
	if err != nil {
		log.Ctx(ctx).Warn().Str("order_id", req.RazorpayOrderID).Err(err).Msg("[payment][handler] verify failed")
		writeError(c, mapPaymentError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromConfirmResult(res))
}
