package response

import (
	"time"

	"voice_billing/internal/domain/entities"
)

type CallLogResponse struct {
	ID              string    `json:"id"`
	TenantID        string    `json:"tenant_id,omitempty"`
	FromNumber      string    `json:"from_number,omitempty"`
	ToNumber        string    `json:"to_number,omitempty"`
	Status          string    `json:"status,omitempty"`
	DurationSeconds int64     `json:"duration"`
	ReceivedAt      time.Time `json:"received_at"`
}

type CallLogsResponse struct {
	CompanyID  string            `json:"company_id"`
	TenantID   string            `json:"tenant_id,omitempty"`
	TotalCalls int               `json:"total_calls"`
	Calls      []CallLogResponse `json:"calls"`
}

func FromCallLogs(target entities.BillingTarget, records []entities.UsageRecord) CallLogsResponse {
	calls := make([]CallLogResponse, 0, len(records))
	for _, r := range records {
		calls = append(calls, CallLogResponse{
			ID:              r.ID,
			TenantID:        r.TenantID,
			FromNumber:      r.FromNumber,
			ToNumber:        r.ToNumber,
			Status:          r.Status,
			DurationSeconds: r.DurationSeconds,
			ReceivedAt:      r.ReceivedAt,
		})
	}
	return CallLogsResponse{
		CompanyID:  target.CompanyID(),
		TenantID:   target.TenantID(),
		TotalCalls: len(calls),
		Calls:      calls,
	}
}
