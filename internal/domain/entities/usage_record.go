package entities

import "time"

// UsageRecord is one billable call.
type UsageRecord struct {
	ID              string    `json:"id"`
	CompanyID       string    `json:"company_id"`
	TenantID        string    `json:"tenant_id,omitempty"`
	DurationSeconds int64     `json:"duration_seconds"`
	ReceivedAt      time.Time `json:"received_at"`
	FromNumber      string    `json:"from_number,omitempty"`
	ToNumber        string    `json:"to_number,omitempty"`
	Status          string    `json:"status,omitempty"`
}

// BillingPolicy selects how call durations become billable minutes.
type BillingPolicy string

const (
	BillingPolicyPerCall BillingPolicy = "per-call"
)

// UsageSummary is the usage snapshot frozen into an invoice.
type UsageSummary struct {
	TotalCalls    int           `json:"total_calls"`
	TotalSeconds  int64         `json:"total_seconds"`
	BilledMinutes int64         `json:"billed_minutes"`
	Policy        BillingPolicy `json:"policy"`
}
