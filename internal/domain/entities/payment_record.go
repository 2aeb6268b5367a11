package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentSource identifies the ingress a confirmation arrived through.
type PaymentSource string

const (
	PaymentSourceRazorpayVerify     PaymentSource = "razorpay_verify"
	PaymentSourceRazorpayWebhook    PaymentSource = "razorpay_webhook"
	PaymentSourceStripeWebhook      PaymentSource = "stripe_webhook"
	PaymentSourceMercadoPagoWebhook PaymentSource = "mercadopago_webhook"
)

// PaymentRecord is the receipt of a settled invoice. There is at most one per
// invoice, keyed REC_<invoice number>.
type PaymentRecord struct {
	ID            string          `json:"id"`
	InvoiceNumber string          `json:"invoice_number"`
	CompanyID     string          `json:"company_id"`
	TenantID      string          `json:"tenant_id,omitempty"`
	PaymentID     string          `json:"payment_id"`
	OrderID       string          `json:"order_id,omitempty"`
	Signature     string          `json:"signature,omitempty"`
	AmountPaid    decimal.Decimal `json:"amount_paid"`
	Currency      string          `json:"currency"`
	PaymentDate   time.Time       `json:"payment_date"`
	PaymentMode   string          `json:"payment_mode"`
	Source        PaymentSource   `json:"source"`
	InvoiceStatus PaymentStatus   `json:"invoice_status"`
	CreatedAt     time.Time       `json:"created_at"`
}

func (r PaymentRecord) Exists() bool { return r.ID != "" }

func PaymentRecordID(invoiceNumber string) string {
	return "REC_" + invoiceNumber
}

// PaymentConfirmation is what an ingress path learned about a completed payment.
type PaymentConfirmation struct {
	PaymentID string
	OrderID   string
	Signature string
	Mode      string
	Source    PaymentSource
	PaidAt    time.Time
}

// NewPaymentRecord freezes a confirmation against the invoice it settles.
func NewPaymentRecord(inv Invoice, c PaymentConfirmation, status PaymentStatus, now time.Time) PaymentRecord {
	mode := c.Mode
	if mode == "" {
		mode = "online"
	}
	return PaymentRecord{
		ID:            PaymentRecordID(inv.ID),
		InvoiceNumber: inv.ID,
		CompanyID:     inv.CompanyID,
		TenantID:      inv.TenantID,
		PaymentID:     c.PaymentID,
		OrderID:       c.OrderID,
		Signature:     c.Signature,
		AmountPaid:    inv.Total,
		Currency:      inv.Currency,
		PaymentDate:   c.PaidAt,
		PaymentMode:   mode,
		Source:        c.Source,
		InvoiceStatus: status,
		CreatedAt:     now,
	}
}
