package handlers

import (
	"net/http"

	"voice_billing/internal/adapter/http/dto/request"
	"voice_billing/internal/adapter/http/dto/response"
	"voice_billing/internal/domain/entities"
	"voice_billing/internal/usecase"

	"github.com/gin-gonic/gin"
)

type CallLogsHandler struct {
	usage usecase.IUsageAggregator
}

func NewCallLogsHandler(usage usecase.IUsageAggregator) *CallLogsHandler {
	return &CallLogsHandler{usage: usage}
}

// ListCallLogs godoc
// @Summary      List the calls of a company or tenant in a date range
// @Tags         call-logs
// @Security     ApiKeyAuth
// @Produce      json
// @Param        company_id  path   string  true   "Company id"
// @Param        tenant_id   query  string  false  "Tenant id"
// @Param        start_date  query  string  true   "YYYY-MM-DD"
// @Param        end_date    query  string  true   "YYYY-MM-DD, inclusive"
// @Success      200  {object}  response.CallLogsResponse
// @Failure      400  {object}  pkg.HTTPError
// @Router       /call-logs/{company_id} [get]
func (h *CallLogsHandler) ListCallLogs(c *gin.Context) {
	var q request.CallLogsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		writeError(c, mapInvoiceError(usecase.ErrInvalidDateRange))
		return
	}
	start, end, err := q.Range()
	if err != nil {
		writeError(c, mapInvoiceError(err))
		return
	}
	target, err := entities.NewBillingTarget(c.Param("company_id"), q.TenantID)
	if err != nil {
		writeError(c, mapInvoiceError(err))
		return
	}

	records, err := h.usage.ListCallLogs(c.Request.Context(), target, start, end)
	if err != nil {
		writeError(c, mapInvoiceError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromCallLogs(target, records))
}
