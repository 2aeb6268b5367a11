package request

import (
	"strings"
	"time"

	"voice_billing/internal/usecase"
)

const dateLayout = "2006-01-02"

type CallLogsQuery struct {
	TenantID  string `form:"tenant_id"`
	StartDate string `form:"start_date" binding:"required"`
	EndDate   string `form:"end_date" binding:"required"`
}

// Range parses the YYYY-MM-DD bounds as UTC days. The end day is inclusive.
func (q CallLogsQuery) Range() (start, end time.Time, err error) {
	start, err = time.Parse(dateLayout, strings.TrimSpace(q.StartDate))
	if err != nil {
		return time.Time{}, time.Time{}, usecase.ErrInvalidDateRange
	}
	endDay, err := time.Parse(dateLayout, strings.TrimSpace(q.EndDate))
	if err != nil {
		return time.Time{}, time.Time{}, usecase.ErrInvalidDateRange
	}
	end = endDay.Add(24*time.Hour - time.Second)
	if end.Before(start) {
		return time.Time{}, time.Time{}, usecase.ErrInvalidDateRange
	}
	return start, end, nil
}
