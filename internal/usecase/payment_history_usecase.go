package usecase

import (
	"context"
	"sort"
	"strings"

	"voice_billing/internal/domain/entities"
	"voice_billing/internal/usecase/interfaces"
)

// IPaymentHistoryUseCase reads the payment records written on settlement.
type IPaymentHistoryUseCase interface {
	GetByInvoice(ctx context.Context, target entities.BillingTarget, invoiceID string) (entities.PaymentRecord, error)
	List(ctx context.Context, target entities.BillingTarget) ([]entities.PaymentRecord, error)
}

type PaymentHistoryUseCase struct {
	records interfaces.IPaymentRecordRepository
}

var _ IPaymentHistoryUseCase = (*PaymentHistoryUseCase)(nil)

func NewPaymentHistoryUseCase(records interfaces.IPaymentRecordRepository) *PaymentHistoryUseCase {
	return &PaymentHistoryUseCase{records: records}
}

func (u *PaymentHistoryUseCase) GetByInvoice(ctx context.Context, target entities.BillingTarget, invoiceID string) (entities.PaymentRecord, error) {
	rec, err := u.records.GetByInvoiceNumber(ctx, target, strings.ToUpper(strings.TrimSpace(invoiceID)))
	if err != nil {
		return entities.PaymentRecord{}, err
	}
	if !rec.Exists() {
		return entities.PaymentRecord{}, ErrPaymentNotFound
	}
	return rec, nil
}

// List returns the target's payments, most recent first.
func (u *PaymentHistoryUseCase) List(ctx context.Context, target entities.BillingTarget) ([]entities.PaymentRecord, error) {
	recs, err := u.records.ListByTarget(ctx, target)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(recs, func(i, j int) bool { return recs[i].PaymentDate.After(recs[j].PaymentDate) })
	return recs, nil
}
