package handlers

import (
	"context"
	"net/http"

	"voice_billing/internal/scheduler"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

type ISchedulerControl interface {
	Status() scheduler.Status
	RunNow(ctx context.Context, id string) error
}

var _ ISchedulerControl = (*scheduler.Scheduler)(nil)

type SchedulerHandler struct {
	scheduler ISchedulerControl
}

func NewSchedulerHandler(s ISchedulerControl) *SchedulerHandler {
	return &SchedulerHandler{scheduler: s}
}

// Status godoc
// @Summary      Scheduler state and next run of each job
// @Tags         scheduler
// @Security     ApiKeyAuth
// @Produce      json
// @Success      200  {object}  scheduler.Status
// @Router       /scheduler/status [get]
func (h *SchedulerHandler) Status(c *gin.Context) {
	c.JSON(http.StatusOK, h.scheduler.Status())
}

// RunJob godoc
// @Summary      Run a scheduled job immediately
// @Tags         scheduler
// @Security     ApiKeyAuth
// @Produce      json
// @Param        job_id  path  string  true  "update_overdue_invoices or check_payment_reminders"
// @Success      200  {object}  map[string]string
// @Failure      404  {object}  pkg.HTTPError
// @Failure      409  {object}  pkg.HTTPError
// @Router       /scheduler/run/{job_id} [post]
func (h *SchedulerHandler) RunJob(c *gin.Context) {
	ctx := c.Request.Context()
	id := c.Param("job_id")
	if err := h.scheduler.RunNow(ctx, id); err != nil {
		log.Ctx(ctx).Warn().Str("job_id", id).Err(err).Msg("[scheduler][handler] manual run failed")
		writeError(c, mapSchedulerError(err))
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "completed", "job_id": id})
}
