package response

import (
	"time"

	"voice_billing/internal/domain/entities"
)

type LineItemResponse struct {
	Description string `json:"description"`
	Quantity    string `json:"quantity"`
	Rate        string `json:"rate"`
	Amount      string `json:"amount"`
}

type PartyResponse struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email,omitempty"`
	GSTIN   string `json:"gstin,omitempty"`
	Address string `json:"address,omitempty"`
}

// InvoiceResponse renders money as fixed two-decimal strings.
type InvoiceResponse struct {
	InvoiceNumber string             `json:"invoice_number"`
	CompanyID     string             `json:"company_id"`
	TenantID      string             `json:"tenant_id,omitempty"`
	BillingPeriod string             `json:"billing_period"`
	PeriodStart   time.Time          `json:"period_start"`
	PeriodEnd     time.Time          `json:"period_end"`
	InvoiceDate   time.Time          `json:"invoice_date"`
	DueDate       time.Time          `json:"due_date"`
	TotalCalls    int                `json:"total_calls"`
	TotalSeconds  int64              `json:"total_seconds"`
	BilledMinutes int64              `json:"billed_minutes"`
	LineItems     []LineItemResponse `json:"line_items"`
	Subtotal      string             `json:"subtotal"`
	TaxRate       string             `json:"tax_rate"`
	TaxAmount     string             `json:"tax_amount"`
	RoundOff      string             `json:"round_off"`
	Total         string             `json:"total"`
	TotalInWords  string             `json:"total_in_words"`
	Currency      string             `json:"currency"`
	PlaceOfSupply string             `json:"place_of_supply"`
	BilledTo      PartyResponse      `json:"company_info"`
	Vendor        PartyResponse      `json:"vendor_info"`
	PaymentStatus string             `json:"payment_status"`
	PaymentID     string             `json:"payment_id,omitempty"`
	PaymentDate   *time.Time         `json:"payment_date,omitempty"`
	CreatedAt     time.Time          `json:"created_at"`
}

func FromInvoice(inv entities.Invoice) InvoiceResponse {
	items := make([]LineItemResponse, 0, len(inv.LineItems))
	for _, li := range inv.LineItems {
		items = append(items, LineItemResponse{
			Description: li.Description,
			Quantity:    li.Quantity.String(),
			Rate:        li.Rate.String(),
			Amount:      li.Amount.StringFixed(2),
		})
	}
	return InvoiceResponse{
		InvoiceNumber: inv.ID,
		CompanyID:     inv.CompanyID,
		TenantID:      inv.TenantID,
		BillingPeriod: inv.BillingPeriod.Label(),
		PeriodStart:   inv.BillingPeriod.Start,
		PeriodEnd:     inv.BillingPeriod.End,
		InvoiceDate:   inv.InvoiceDate,
		DueDate:       inv.DueDate,
		TotalCalls:    inv.Usage.TotalCalls,
		TotalSeconds:  inv.Usage.TotalSeconds,
		BilledMinutes: inv.Usage.BilledMinutes,
		LineItems:     items,
		Subtotal:      inv.Subtotal.StringFixed(2),
		TaxRate:       inv.Rates.TaxRate.String(),
		TaxAmount:     inv.TaxAmount.StringFixed(2),
		RoundOff:      inv.RoundOff.StringFixed(2),
		Total:         inv.Total.StringFixed(2),
		TotalInWords:  inv.TotalInWords,
		Currency:      inv.Currency,
		PlaceOfSupply: inv.PlaceOfSupply,
		BilledTo:      fromParty(inv.BilledTo),
		Vendor:        fromParty(inv.Vendor),
		PaymentStatus: string(inv.PaymentStatus),
		PaymentID:     inv.PaymentID,
		PaymentDate:   inv.PaymentDate,
		CreatedAt:     inv.CreatedAt,
	}
}

func fromParty(p entities.PartyInfo) PartyResponse {
	return PartyResponse{ID: p.ID, Name: p.Name, Email: p.Email, GSTIN: p.GSTIN, Address: p.Address}
}

// GenerateInvoiceResponse reports whether the invoice was issued by this call.
type GenerateInvoiceResponse struct {
	Created bool            `json:"created"`
	Invoice InvoiceResponse `json:"invoice"`
}
