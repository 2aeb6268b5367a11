package handlers

import (
	"net/http"
	"strings"

	"voice_billing/internal/domain/entities"
	"voice_billing/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

type SweepHandler struct {
	usecase usecase.ISweepUseCase
}

func NewSweepHandler(uc usecase.ISweepUseCase) *SweepHandler {
	return &SweepHandler{usecase: uc}
}

// SweepOverdue godoc
// @Summary      Mark overdue pending invoices as due
// @Description  Without company_id every company and tenant is swept.
// @Tags         invoices
// @Security     ApiKeyAuth
// @Produce      json
// @Param        company_id  query  string  false  "Restrict to one company"
// @Param        tenant_id   query  string  false  "Restrict to one tenant of company_id"
// @Success      200  {object}  usecase.SweepResult
// @Failure      400  {object}  pkg.HTTPError
// @Router       /invoices/sweep-overdue [post]
func (h *SweepHandler) SweepOverdue(c *gin.Context) {
	ctx := c.Request.Context()

	var scope entities.BillingTarget
	companyID := strings.TrimSpace(c.Query("company_id"))
	tenantID := strings.TrimSpace(c.Query("tenant_id"))
	if companyID == "" && tenantID != "" {
		writeError(c, mapInvoiceError(usecase.ErrInvalidCompanyID))
		return
	}
	if companyID != "" {
		target, err := entities.NewBillingTarget(companyID, tenantID)
		if err != nil {
			writeError(c, mapInvoiceError(err))
			return
		}
		scope = target
	}

	res, err := h.usecase.SweepOverdue(ctx, scope)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Msg("[sweep][handler] overdue sweep failed")
		writeError(c, mapInvoiceError(err))
		return
	}
	c.JSON(http.StatusOK, res)
}

// SendReminders godoc
// @Summary      Send the first and final payment reminders due today
// @Tags         invoices
// @Security     ApiKeyAuth
// @Produce      json
// @Success      200  {object}  usecase.ReminderResult
// @Router       /invoices/send-reminders [post]
func (h *SweepHandler) SendReminders(c *gin.Context) {
	ctx := c.Request.Context()
	res, err := h.usecase.SendReminders(ctx)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Msg("[sweep][handler] reminder run failed")
		writeError(c, mapInvoiceError(err))
		return
	}
	c.JSON(http.StatusOK, res)
}
