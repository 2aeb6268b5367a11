package handlers

import (
	"net/http"
	"strings"

	"voice_billing/internal/adapter/http/dto/request"
	"voice_billing/internal/adapter/http/dto/response"
	"voice_billing/internal/domain/entities"
	"voice_billing/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

type InvoiceHandler struct {
	usecase usecase.IInvoiceUseCase
}

func NewInvoiceHandler(uc usecase.IInvoiceUseCase) *InvoiceHandler {
	return &InvoiceHandler{usecase: uc}
}

// GenerateInvoice godoc
// @Summary      Generate the monthly invoice of a company or tenant
// @Tags         invoices
// @Security     ApiKeyAuth
// @Accept       json
// @Produce      json
// @Param        body  body      request.GenerateInvoiceRequest  true  "company_id, optional tenant_id, month, year, send"
// @Success      201   {object}  response.GenerateInvoiceResponse
// @Success      200   {object}  response.GenerateInvoiceResponse
// @Failure      400   {object}  pkg.HTTPError
// @Failure      404   {object}  pkg.HTTPError
// @Failure      422   {object}  pkg.HTTPError
// @Router       /invoices/generate [post]
func (h *InvoiceHandler) GenerateInvoice(c *gin.Context) {
	ctx := c.Request.Context()

	var req request.GenerateInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Ctx(ctx).Warn().Err(err).Msg("[invoice][handler] invalid payload")
		writeError(c, invalidRequest())
		return
	}
	if err := req.Validate(); err != nil {
		writeError(c, mapInvoiceError(err))
		return
	}

	inv, created, err := h.usecase.Generate(ctx, req.ToCommand())
	if err != nil {
		log.Ctx(ctx).Error().Str("company_id", req.CompanyID).Str("tenant_id", req.TenantID).Err(err).Msg("[invoice][handler] generate failed")
		writeError(c, mapInvoiceError(err))
		return
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	c.JSON(status, response.GenerateInvoiceResponse{Created: created, Invoice: response.FromInvoice(inv)})
}

// GetInvoice godoc
// @Summary      Get an invoice by number
// @Tags         invoices
// @Security     ApiKeyAuth
// @Produce      json
// @Param        company_id  path   string  true   "Company id"
// @Param        invoice_id  path   string  true   "Invoice number"
// @Param        tenant_id   query  string  false  "Tenant id"
// @Success      200  {object}  response.InvoiceResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /invoices/{company_id}/{invoice_id} [get]
func (h *InvoiceHandler) GetInvoice(c *gin.Context) {
	target, err := entities.NewBillingTarget(c.Param("company_id"), c.Query("tenant_id"))
	if err != nil {
		writeError(c, mapInvoiceError(err))
		return
	}

	inv, err := h.usecase.GetByID(c.Request.Context(), target, c.Param("invoice_id"))
	if err != nil {
		writeError(c, mapInvoiceError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromInvoice(inv))
}

// GetPublicInvoice godoc
// @Summary      Get the invoice an access token grants
// @Tags         invoices
// @Produce      json
// @Param        token  query  string  true  "Invoice access token"
// @Success      200  {object}  response.InvoiceResponse
// @Failure      401  {object}  pkg.HTTPError
// @Router       /public/invoice [get]
func (h *InvoiceHandler) GetPublicInvoice(c *gin.Context) {
	token := strings.TrimSpace(c.Query("token"))
	if token == "" {
		writeError(c, mapInvoiceError(usecase.ErrInvalidToken))
		return
	}
	inv, err := h.usecase.GetByToken(c.Request.Context(), token)
	if err != nil {
		writeError(c, mapInvoiceError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromInvoice(inv))
}
