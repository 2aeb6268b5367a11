package response

import (
	"time"

	"voice_billing/internal/domain/entities"
	"voice_billing/internal/usecase"
)

type PaymentResponse struct {
	Status        string     `json:"status"`
	InvoiceID     string     `json:"invoice_id"`
	PaymentStatus string     `json:"payment_status"`
	PaymentID     string     `json:"payment_id,omitempty"`
	PaymentDate   *time.Time `json:"payment_date,omitempty"`
	AmountPaid    string     `json:"amount_paid,omitempty"`
	Currency      string     `json:"currency,omitempty"`
}

func FromConfirmResult(r usecase.ConfirmResult) PaymentResponse {
	res := PaymentResponse{
		Status:        string(r.Outcome),
		InvoiceID:     r.Invoice.ID,
		PaymentStatus: string(r.Invoice.PaymentStatus),
		PaymentID:     r.Invoice.PaymentID,
		PaymentDate:   r.Invoice.PaymentDate,
	}
	if r.Record.Exists() {
		res.AmountPaid = r.Record.AmountPaid.StringFixed(2)
		res.Currency = r.Record.Currency
	}
	return res
}

type PaymentRecordResponse struct {
	ID            string    `json:"id"`
	InvoiceNumber string    `json:"invoice_number"`
	CompanyID     string    `json:"company_id"`
	TenantID      string    `json:"tenant_id,omitempty"`
	PaymentID     string    `json:"payment_id"`
	OrderID       string    `json:"order_id,omitempty"`
	AmountPaid    string    `json:"amount_paid"`
	Currency      string    `json:"currency"`
	PaymentDate   time.Time `json:"payment_date"`
	PaymentMode   string    `json:"payment_mode"`
	Source        string    `json:"source"`
	InvoiceStatus string    `json:"invoice_status"`
}

func FromPaymentRecord(r entities.PaymentRecord) PaymentRecordResponse {
	return PaymentRecordResponse{
		ID:            r.ID,
		InvoiceNumber: r.InvoiceNumber,
		CompanyID:     r.CompanyID,
		TenantID:      r.TenantID,
		PaymentID:     r.PaymentID,
		OrderID:       r.OrderID,
		AmountPaid:    r.AmountPaid.StringFixed(2),
		Currency:      r.Currency,
		PaymentDate:   r.PaymentDate,
		PaymentMode:   r.PaymentMode,
		Source:        string(r.Source),
		InvoiceStatus: string(r.InvoiceStatus),
	}
}

func FromPaymentRecords(recs []entities.PaymentRecord) []PaymentRecordResponse {
	out := make([]PaymentRecordResponse, 0, len(recs))
	for _, r := range recs {
		out = append(out, FromPaymentRecord(r))
	}
	return out
}
