package interfaces

import (
	"context"
	"time"

	"voice_billing/internal/domain/entities"
)

// IInvoiceRepository abstracts persistence of invoices. Lookups return an empty
// invoice (ID == "") when nothing is stored.
type IInvoiceRepository interface {
	GetByID(ctx context.Context, target entities.BillingTarget, id string) (entities.Invoice, error)
	// Create stores inv unless an invoice with the same id exists, in which case the
	// stored one is returned with created=false.
	Create(ctx context.Context, inv entities.Invoice) (stored entities.Invoice, created bool, err error)
	ListByStatus(ctx context.Context, target entities.BillingTarget, status entities.PaymentStatus) ([]entities.Invoice, error)
	// TransitionStatus moves the invoice to `to` only if its current status is in
	// from. ok is false when the condition did not hold.
	TransitionStatus(ctx context.Context, target entities.BillingTarget, id string, from []entities.PaymentStatus, to entities.PaymentStatus, at time.Time) (ok bool, err error)
	// SettlePayment atomically moves a payable invoice to a terminal status and
	// stores its payment record. ok is false when the invoice was already settled.
	SettlePayment(ctx context.Context, target entities.BillingTarget, id string, status entities.PaymentStatus, record entities.PaymentRecord) (ok bool, err error)
}

type IPaymentRecordRepository interface {
	GetByInvoiceNumber(ctx context.Context, target entities.BillingTarget, invoiceNumber string) (entities.PaymentRecord, error)
	ListByTarget(ctx context.Context, target entities.BillingTarget) ([]entities.PaymentRecord, error)
}
