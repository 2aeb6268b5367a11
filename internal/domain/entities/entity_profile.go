package entities

import "github.com/shopspring/decimal"

// RateCard is the per-entity pricing configuration. Missing numeric values are
// treated as zero.
type RateCard struct {
	RatePerMinute  decimal.Decimal `json:"rate_per_minute"`
	MaintenanceFee decimal.Decimal `json:"maintenance_fee"`
	TaxRate        decimal.Decimal `json:"tax_rate"`
	Currency       string          `json:"currency"`
	BillingPolicy  BillingPolicy   `json:"billing_policy"`
	PurchaseOrder  string          `json:"purchase_order,omitempty"`
	PODate         string          `json:"po_date,omitempty"`
}

// PartyInfo is the presentation data of one side of an invoice.
type PartyInfo struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email,omitempty"`
	Phone   string `json:"phone,omitempty"`
	GSTIN   string `json:"gstin,omitempty"`
	PAN     string `json:"pan,omitempty"`
	Address string `json:"address,omitempty"`
}

type BankDetails struct {
	BankName      string `json:"bank_name,omitempty"`
	AccountName   string `json:"account_name,omitempty"`
	AccountNumber string `json:"account_number,omitempty"`
	IFSC          string `json:"ifsc,omitempty"`
}

// RazorpayCredentials holds the encrypted per-entity processor keys.
type RazorpayCredentials struct {
	KeyID                  string `json:"key_id"`
	EncryptedKeySecret     string `json:"key_secret"`
	EncryptedWebhookSecret string `json:"webhook_secret,omitempty"`
}

func (c RazorpayCredentials) Configured() bool {
	return c.KeyID != "" && c.EncryptedKeySecret != ""
}

// EntityProfile is the stored configuration of a company or tenant.
type EntityProfile struct {
	CompanyID           string              `json:"company_id"`
	TenantID            string              `json:"tenant_id,omitempty"`
	Party               PartyInfo           `json:"party"`
	Bank                BankDetails         `json:"bank"`
	AuthorizedSignatory string              `json:"authorized_signatory,omitempty"`
	Rates               *RateCard           `json:"rates,omitempty"`
	Razorpay            RazorpayCredentials `json:"razorpay"`
	// PaymentCompanyID routes collection to another company's processor account.
	PaymentCompanyID string `json:"payment_company_id,omitempty"`
}

func (p EntityProfile) Exists() bool { return p.CompanyID != "" }

func (p EntityProfile) Target() BillingTarget {
	t, _ := NewBillingTarget(p.CompanyID, p.TenantID)
	return t
}
