package memory

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"voice_billing/internal/domain/entities"
	"voice_billing/internal/usecase/interfaces"
)

// Store is an in-memory implementation of every billing repository. It keeps
// the conditional-write semantics of the DynamoDB store and is used for local
// development and tests.
type Store struct {
	mu sync.Mutex

	profiles map[string]entities.EntityProfile // storage path -> profile
	invoices map[string]entities.Invoice       // storage path|invoice id
	payments map[string]entities.PaymentRecord // storage path|record id
	scoped   map[string][]entities.UsageRecord // storage path -> calls
	global   []entities.UsageRecord
}

var (
	_ interfaces.IInvoiceRepository       = (*Store)(nil)
	_ interfaces.IPaymentRecordRepository = (*Store)(nil)
	_ interfaces.IUsageRepository         = (*Store)(nil)
	_ interfaces.IEntityRepository        = (*Store)(nil)
)

func NewStore() *Store {
	return &Store{
		profiles: map[string]entities.EntityProfile{},
		invoices: map[string]entities.Invoice{},
		payments: map[string]entities.PaymentRecord{},
		scoped:   map[string][]entities.UsageRecord{},
	}
}

func key(target entities.BillingTarget, id string) string {
	return target.StoragePath() + "|" + id
}

/* ===================== SEEDING ===================== */

func (s *Store) PutProfile(p entities.EntityProfile) error {
	t, err := entities.NewBillingTarget(p.CompanyID, p.TenantID)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.profiles[t.StoragePath()] = p
	return nil
}

func (s *Store) AddScopedCall(target entities.BillingTarget, r entities.UsageRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.scoped[target.StoragePath()] = append(s.scoped[target.StoragePath()], r)
}

func (s *Store) AddGlobalCall(r entities.UsageRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.global = append(s.global, r)
}

// PutInvoice overwrites unconditionally.
func (s *Store) PutInvoice(inv entities.Invoice) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.invoices[key(inv.Target(), inv.ID)] = inv
}

/* ===================== ENTITIES ===================== */

func (s *Store) GetProfile(_ context.Context, target entities.BillingTarget) (entities.EntityProfile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.profiles[target.StoragePath()], nil
}

func (s *Store) ListCompanies(_ context.Context) ([]entities.EntityProfile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]entities.EntityProfile, 0)
	for _, p := range s.profiles {
		if p.TenantID == "" {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CompanyID < out[j].CompanyID })
	return out, nil
}

func (s *Store) ListTenants(_ context.Context, companyID string) ([]entities.EntityProfile, error) {
	if companyID == "" {
		return nil, errors.New("company_id required")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]entities.EntityProfile, 0)
	for _, p := range s.profiles {
		if p.CompanyID == companyID && p.TenantID != "" {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].TenantID < out[j].TenantID })
	return out, nil
}

/* ===================== USAGE ===================== */

func (s *Store) ListEntityScoped(_ context.Context, target entities.BillingTarget, period entities.BillingPeriod) ([]entities.UsageRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]entities.UsageRecord, 0)
	for _, r := range s.scoped[target.StoragePath()] {
		if period.Contains(r.ReceivedAt) {
			out = append(out, r)
		}
	}
	return out, nil
}

func (s *Store) ListGlobal(_ context.Context, target entities.BillingTarget, period entities.BillingPeriod) ([]entities.UsageRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]entities.UsageRecord, 0)
	for _, r := range s.global {
		if r.CompanyID != target.CompanyID() {
			continue
		}
		if tenant := target.TenantID(); tenant != "" && r.TenantID != tenant {
			continue
		}
		if period.Contains(r.ReceivedAt) {
			out = append(out, r)
		}
	}
	return out, nil
}

/* ===================== INVOICES ===================== */

func (s *Store) GetByID(_ context.Context, target entities.BillingTarget, id string) (entities.Invoice, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.invoices[key(target, id)], nil
}

func (s *Store) Create(_ context.Context, inv entities.Invoice) (entities.Invoice, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	k := key(inv.Target(), inv.ID)
	if existing, ok := s.invoices[k]; ok {
		return existing, false, nil
	}
	s.invoices[k] = inv
	return inv, true, nil
}

func (s *Store) ListByStatus(_ context.Context, target entities.BillingTarget, status entities.PaymentStatus) ([]entities.Invoice, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	prefix := target.StoragePath() + "|"
	out := make([]entities.Invoice, 0)
	for k, inv := range s.invoices {
		if len(k) > len(prefix) && k[:len(prefix)] == prefix && inv.PaymentStatus == status {
			out = append(out, inv)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *Store) TransitionStatus(_ context.Context, target entities.BillingTarget, id string, from []entities.PaymentStatus, to entities.PaymentStatus, at time.Time) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	k := key(target, id)
	inv, ok := s.invoices[k]
	if !ok || !statusIn(inv.PaymentStatus, from) {
		return false, nil
	}
	inv.PaymentStatus = to
	inv.UpdatedAt = at
	s.invoices[k] = inv
	return true, nil
}

func (s *Store) SettlePayment(_ context.Context, target entities.BillingTarget, id string, status entities.PaymentStatus, record entities.PaymentRecord) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	k := key(target, id)
	inv, ok := s.invoices[k]
	if !ok || !statusIn(inv.PaymentStatus, entities.PayableStatuses) {
		return false, nil
	}
	rk := key(target, record.ID)
	if _, exists := s.payments[rk]; exists {
		return false, nil
	}

	paidAt := record.PaymentDate
	inv.PaymentStatus = status
	inv.PaymentID = record.PaymentID
	inv.PaymentDate = &paidAt
	inv.UpdatedAt = record.CreatedAt
	s.invoices[k] = inv
	s.payments[rk] = record
	return true, nil
}

/* ===================== PAYMENTS ===================== */

func (s *Store) GetByInvoiceNumber(_ context.Context, target entities.BillingTarget, invoiceNumber string) (entities.PaymentRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.payments[key(target, entities.PaymentRecordID(invoiceNumber))], nil
}

func (s *Store) ListByTarget(_ context.Context, target entities.BillingTarget) ([]entities.PaymentRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	prefix := target.StoragePath() + "|"
	out := make([]entities.PaymentRecord, 0)
	for k, r := range s.payments {
		if len(k) > len(prefix) && k[:len(prefix)] == prefix {
			out = append(out, r)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func statusIn(s entities.PaymentStatus, set []entities.PaymentStatus) bool {
	for _, v := range set {
		if s == v {
			return true
		}
	}
	return false
}
