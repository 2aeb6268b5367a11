package handlers

import (
	"net/http"

	"voice_billing/internal/adapter/http/dto/response"
	"voice_billing/internal/domain/entities"
	"voice_billing/internal/usecase"

	"github.com/gin-gonic/gin"
)

type PaymentHistoryHandler struct {
	usecase usecase.IPaymentHistoryUseCase
}

func NewPaymentHistoryHandler(uc usecase.IPaymentHistoryUseCase) *PaymentHistoryHandler {
	return &PaymentHistoryHandler{usecase: uc}
}

// GetInvoicePayment godoc
// @Summary      Payment record of a settled invoice
// @Tags         payments
// @Security     ApiKeyAuth
// @Produce      json
// @Param        company_id  path   string  true   "Company id"
// @Param        invoice_id  path   string  true   "Invoice number"
// @Param        tenant_id   query  string  false  "Tenant id"
// @Success      200  {object}  response.PaymentRecordResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /invoices/{company_id}/{invoice_id}/payment [get]
func (h *PaymentHistoryHandler) GetInvoicePayment(c *gin.Context) {
	target, err := entities.NewBillingTarget(c.Param("company_id"), c.Query("tenant_id"))
	if err != nil {
		writeError(c, mapInvoiceError(err))
		return
	}
	rec, err := h.usecase.GetByInvoice(c.Request.Context(), target, c.Param("invoice_id"))
	if err != nil {
		writeError(c, mapInvoiceError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromPaymentRecord(rec))
}

// ListPayments godoc
// @Summary      Payments received from a company or tenant
// @Tags         payments
// @Security     ApiKeyAuth
// @Produce      json
// @Param        company_id  path   string  true   "Company id"
// @Param        tenant_id   query  string  false  "Tenant id"
// @Success      200  {array}   response.PaymentRecordResponse
// @Router       /payments/{company_id} [get]
func (h *PaymentHistoryHandler) ListPayments(c *gin.Context) {
	target, err := entities.NewBillingTarget(c.Param("company_id"), c.Query("tenant_id"))
	if err != nil {
		writeError(c, mapInvoiceError(err))
		return
	}
	recs, err := h.usecase.List(c.Request.Context(), target)
	if err != nil {
		writeError(c, mapInvoiceError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromPaymentRecords(recs))
}
