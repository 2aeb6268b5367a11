package entities

import (
	"strings"
	"time"
	"unicode"

	"github.com/shopspring/decimal"
)

// PaymentStatus is the lifecycle state of an invoice.
//
//	pending -> due            (overdue sweep)
//	pending|due -> paid       (paid on or before the due date)
//	pending|due -> due_paid   (paid after the due date)
//
// paid and due_paid are terminal.
type PaymentStatus string

const (
	PaymentStatusPending PaymentStatus = "pending"
	PaymentStatusDue     PaymentStatus = "due"
	PaymentStatusPaid    PaymentStatus = "paid"
	PaymentStatusDuePaid PaymentStatus = "due_paid"
)

func (s PaymentStatus) Valid() bool {
	switch s {
	case PaymentStatusPending, PaymentStatusDue, PaymentStatusPaid, PaymentStatusDuePaid:
		return true
	}
	return false
}

// Settled reports whether the status is terminal.
func (s PaymentStatus) Settled() bool {
	return s == PaymentStatusPaid || s == PaymentStatusDuePaid
}

// PayableStatuses are the states a payment may settle from.
var PayableStatuses = []PaymentStatus{PaymentStatusPending, PaymentStatusDue}

type LineItem struct {
	Description string          `json:"description"`
	Quantity    decimal.Decimal `json:"quantity"`
	Unit        string          `json:"unit,omitempty"`
	Rate        decimal.Decimal `json:"rate"`
	Amount      decimal.Decimal `json:"amount"`
}

// Invoice is the monthly statement of one billing target. Amounts are frozen at
// creation and never recomputed.
//
// Storage model (DynamoDB single table):
//   - pk: target storage path
//   - sk: INVOICE#<id>
type Invoice struct {
	ID            string        `json:"invoice_number"`
	CompanyID     string        `json:"company_id"`
	TenantID      string        `json:"tenant_id,omitempty"`
	BillingPeriod BillingPeriod `json:"billing_period"`
	InvoiceDate   time.Time     `json:"invoice_date"`
	DueDate       time.Time     `json:"due_date"`

	Usage     UsageSummary `json:"usage"`
	LineItems []LineItem   `json:"line_items"`
	Rates     RateCard     `json:"rates"`

	Subtotal     decimal.Decimal `json:"subtotal"`
	TaxAmount    decimal.Decimal `json:"tax_amount"`
	RoundOff     decimal.Decimal `json:"round_off"`
	Total        decimal.Decimal `json:"total"`
	Currency     string          `json:"currency"`
	TotalInWords string          `json:"total_in_words"`

	PlaceOfSupply       string      `json:"place_of_supply"`
	BilledTo            PartyInfo   `json:"company_info"`
	Vendor              PartyInfo   `json:"vendor_info"`
	Bank                BankDetails `json:"bank_details"`
	AuthorizedSignatory string      `json:"authorized_signatory,omitempty"`

	PaymentStatus PaymentStatus `json:"payment_status"`
	PaymentID     string        `json:"payment_id,omitempty"`
	PaymentDate   *time.Time    `json:"payment_date,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (i Invoice) Exists() bool { return i.ID != "" }

func (i Invoice) Target() BillingTarget {
	t, _ := NewBillingTarget(i.CompanyID, i.TenantID)
	return t
}

func (i Invoice) IsSettled() bool { return i.PaymentStatus.Settled() }

const invoicePrefixLen = 3

// NewInvoiceID derives the deterministic invoice number: the first three
// alphanumerics of the entity id upper-cased, then MM and YYYY.
// For example "vysedeck" billed for September 2025 yields "VYS092025".
func NewInvoiceID(target BillingTarget, period BillingPeriod) string {
	var b strings.Builder
	n := 0
	for _, r := range target.EntityID() {
		if n == invoicePrefixLen {
			break
		}
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(unicode.ToUpper(r))
			n++
		}
	}
	return b.String() + period.Start.Format("012006")
}
