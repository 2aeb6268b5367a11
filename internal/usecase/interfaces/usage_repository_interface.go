package interfaces

import (
	"context"

	"voice_billing/internal/domain/entities"
)

// IUsageRepository reads call records from the two usage stores.
type IUsageRepository interface {
	// ListEntityScoped reads calls stored under the target's own path.
	ListEntityScoped(ctx context.Context, target entities.BillingTarget, period entities.BillingPeriod) ([]entities.UsageRecord, error)
	// ListGlobal reads the shared call log filtered to the target.
	ListGlobal(ctx context.Context, target entities.BillingTarget, period entities.BillingPeriod) ([]entities.UsageRecord, error)
}

// IEntityRepository reads company and tenant profiles. GetProfile returns an
// empty profile when the entity does not exist.
type IEntityRepository interface {
	GetProfile(ctx context.Context, target entities.BillingTarget) (entities.EntityProfile, error)
	ListCompanies(ctx context.Context) ([]entities.EntityProfile, error)
	ListTenants(ctx context.Context, companyID string) ([]entities.EntityProfile, error)
}
