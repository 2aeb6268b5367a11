package interfaces

import (
	"context"
	"time"

	"voice_billing/internal/auth"
	"voice_billing/internal/domain/entities"
)

// ICredentialVault decrypts secrets stored on entity profiles.
type ICredentialVault interface {
	Decrypt(ciphertext string) (string, error)
}

type ITokenManager interface {
	Issue(now time.Time, claims auth.InvoiceClaims) (string, error)
	Verify(token string, now time.Time) (auth.InvoiceClaims, error)
}

type Attachment struct {
	Filename    string
	ContentType string
	Data        []byte
}

type InvoiceNotice struct {
	To          string
	Invoice     entities.Invoice
	PaymentURL  string
	Attachments []Attachment
}

type ReceiptNotice struct {
	To          string
	Invoice     entities.Invoice
	Record      entities.PaymentRecord
	Attachments []Attachment
}

type ReminderNotice struct {
	To         string
	Invoice    entities.Invoice
	Kind       entities.ReminderKind
	PaymentURL string
}

// INotifier delivers billing emails.
type INotifier interface {
	SendInvoice(ctx context.Context, n InvoiceNotice) error
	SendReceipt(ctx context.Context, n ReceiptNotice) error
	SendReminder(ctx context.Context, n ReminderNotice) error
}

// IDocumentRenderer produces the documents attached to billing emails.
type IDocumentRenderer interface {
	InvoicePDF(inv entities.Invoice) ([]byte, error)
	ReceiptPDF(inv entities.Invoice, rec entities.PaymentRecord) ([]byte, error)
	UsageCSV(inv entities.Invoice, records []entities.UsageRecord) ([]byte, error)
}
