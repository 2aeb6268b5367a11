package request

import (
	"errors"
	"strings"

	"voice_billing/internal/usecase"
)

var ErrInvalidMonth = errors.New("month must be between 1 and 12")

// GenerateInvoiceRequest bills one entity. Month and year default to the last
// completed month when either is omitted.
type GenerateInvoiceRequest struct {
	CompanyID string `json:"company_id" binding:"required"`
	TenantID  string `json:"tenant_id"`
	Month     *int   `json:"month"`
	Year      *int   `json:"year"`
	Send      bool   `json:"send"`
}

func (r GenerateInvoiceRequest) Validate() error {
	if strings.TrimSpace(r.CompanyID) == "" {
		return usecase.ErrInvalidCompanyID
	}
	if r.Month != nil && (*r.Month < 1 || *r.Month > 12) {
		return ErrInvalidMonth
	}
	return nil
}

func (r GenerateInvoiceRequest) ToCommand() usecase.GenerateInvoiceCommand {
	return usecase.GenerateInvoiceCommand{
		CompanyID: strings.TrimSpace(r.CompanyID),
		TenantID:  strings.TrimSpace(r.TenantID),
		Month:     r.Month,
		Year:      r.Year,
		Send:      r.Send,
	}
}
