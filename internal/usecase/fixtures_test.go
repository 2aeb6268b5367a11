package usecase

import (
	"testing"
	"time"

	"voice_billing/internal/adapter/persistence/memory"
	"voice_billing/internal/auth"
	"voice_billing/internal/domain/billing"
	"voice_billing/internal/domain/entities"

	"github.com/shopspring/decimal"
)

var testNow = time.Date(2025, 10, 5, 9, 30, 0, 0, time.UTC)

func testSettings(now time.Time) Settings {
	return Settings{
		Calendar:       entities.NewCalendar(time.UTC),
		Rounding:       billing.RoundingNone,
		DueAfter:       7 * 24 * time.Hour,
		FirstReminder:  3 * 24 * time.Hour,
		Seller:         entities.PartyInfo{ID: "seller", Name: "Voice Agents Pvt Ltd"},
		PaymentPageURL: "https://pay.example.com/invoice",
		Now:            func() time.Time { return now },
	}
}

func testRates() *entities.RateCard {
	return &entities.RateCard{
		RatePerMinute:  decimal.RequireFromString("2.5"),
		MaintenanceFee: decimal.NewFromInt(1000),
		TaxRate:        decimal.NewFromInt(18),
		Currency:       "INR",
	}
}

func seedProfile(t *testing.T, store *memory.Store, p entities.EntityProfile) {
	t.Helper()
	if err := store.PutProfile(p); err != nil {
		t.Fatalf("seed profile: %v", err)
	}
}

func newTestTokens(t *testing.T) *auth.TokenManager {
	t.Helper()
	tm, err := auth.NewTokenManager("test-secret", time.Hour)
	if err != nil {
		t.Fatalf("token manager: %v", err)
	}
	return tm
}

// pendingInvoice builds a stored September 2025 invoice issued on 1 Oct and
// due on 8 Oct.
func pendingInvoice(target entities.BillingTarget, email string) entities.Invoice {
	period, _ := entities.NewBillingPeriod(9, 2025)
	issued := time.Date(2025, 10, 1, 6, 0, 0, 0, time.UTC)
	inv, _ := entities.NewInvoiceBuilder(target, period).
		Dates(issued, 7*24*time.Hour).
		Rates(*testRates()).
		Charges(nil, decimal.RequireFromString("1000.00"), decimal.RequireFromString("180.00"), decimal.Zero, decimal.RequireFromString("1180.00"), "").
		Parties(entities.PartyInfo{ID: target.EntityID(), Name: target.EntityID(), Email: email}, entities.PartyInfo{}, entities.BankDetails{}, "").
		Build()
	return inv
}

func authClaims(companyID, tenantID, invoiceID string) auth.InvoiceClaims {
	return auth.InvoiceClaims{CompanyID: companyID, TenantID: tenantID, InvoiceID: invoiceID}
}
