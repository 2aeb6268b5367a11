package entities

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

var ErrInvalidInvoice = errors.New("invalid invoice")

// InvoiceBuilder assembles an Invoice and validates it on Build.
type InvoiceBuilder struct {
	inv Invoice
}

func NewInvoiceBuilder(target BillingTarget, period BillingPeriod) *InvoiceBuilder {
	return &InvoiceBuilder{inv: Invoice{
		ID:            NewInvoiceID(target, period),
		CompanyID:     target.CompanyID(),
		TenantID:      target.TenantID(),
		BillingPeriod: period,
		PaymentStatus: PaymentStatusPending,
	}}
}

// Dates sets the invoice date and a due date dueAfter later.
func (b *InvoiceBuilder) Dates(invoiceDate time.Time, dueAfter time.Duration) *InvoiceBuilder {
	b.inv.InvoiceDate = invoiceDate
	b.inv.DueDate = invoiceDate.Add(dueAfter)
	b.inv.CreatedAt = invoiceDate
	b.inv.UpdatedAt = invoiceDate
	return b
}

func (b *InvoiceBuilder) Usage(u UsageSummary) *InvoiceBuilder {
	b.inv.Usage = u
	return b
}

func (b *InvoiceBuilder) Rates(r RateCard) *InvoiceBuilder {
	b.inv.Rates = r
	b.inv.Currency = r.Currency
	return b
}

func (b *InvoiceBuilder) Charges(items []LineItem, subtotal, tax, roundOff, total decimal.Decimal, words string) *InvoiceBuilder {
	b.inv.LineItems = items
	b.inv.Subtotal = subtotal
	b.inv.TaxAmount = tax
	b.inv.RoundOff = roundOff
	b.inv.Total = total
	b.inv.TotalInWords = words
	return b
}

func (b *InvoiceBuilder) Parties(billedTo, vendor PartyInfo, bank BankDetails, signatory string) *InvoiceBuilder {
	b.inv.BilledTo = billedTo
	b.inv.Vendor = vendor
	b.inv.Bank = bank
	b.inv.AuthorizedSignatory = signatory
	return b
}

func (b *InvoiceBuilder) PlaceOfSupply(pos string) *InvoiceBuilder {
	b.inv.PlaceOfSupply = pos
	return b
}

func (b *InvoiceBuilder) Build() (Invoice, error) {
	if err := b.inv.Validate(); err != nil {
		return Invoice{}, err
	}
	return b.inv, nil
}

// Validate checks the structural invariants of a stored invoice.
func (i Invoice) Validate() error {
	var problems []string
	if strings.TrimSpace(i.ID) == "" {
		problems = append(problems, "invoice number is required")
	}
	if strings.TrimSpace(i.CompanyID) == "" {
		problems = append(problems, "company id is required")
	}
	if i.BillingPeriod.IsZero() || i.BillingPeriod.End.Before(i.BillingPeriod.Start) {
		problems = append(problems, "billing period is empty")
	}
	if i.InvoiceDate.IsZero() {
		problems = append(problems, "invoice date is required")
	}
	if i.DueDate.Before(i.InvoiceDate) {
		problems = append(problems, "due date precedes invoice date")
	}
	if i.Subtotal.IsNegative() || i.TaxAmount.IsNegative() || i.Total.IsNegative() {
		problems = append(problems, "amounts must not be negative")
	}
	if !i.Subtotal.Add(i.TaxAmount).Add(i.RoundOff).Equal(i.Total) {
		problems = append(problems, "total does not match subtotal, tax and round off")
	}
	if !i.PaymentStatus.Valid() {
		problems = append(problems, fmt.Sprintf("unknown payment status %q", i.PaymentStatus))
	}
	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalidInvoice, strings.Join(problems, "; "))
	}
	return nil
}
