package usecase

import (
	"context"
	"fmt"
	"sort"
	"time"

	"voice_billing/internal/domain/billing"
	"voice_billing/internal/domain/entities"
	"voice_billing/internal/usecase/interfaces"

	"github.com/rs/zerolog/log"
)

type IUsageAggregator interface {
	Aggregate(ctx context.Context, target entities.BillingTarget, period entities.BillingPeriod, policy entities.BillingPolicy) (entities.UsageSummary, []entities.UsageRecord, error)
	ListCallLogs(ctx context.Context, target entities.BillingTarget, start, end time.Time) ([]entities.UsageRecord, error)
}

// UsageAggregator unions the entity-scoped and global call stores for a target.
// The sources are disjoint by construction and are not de-duplicated.
type UsageAggregator struct {
	repo interfaces.IUsageRepository
}

var _ IUsageAggregator = (*UsageAggregator)(nil)

func NewUsageAggregator(repo interfaces.IUsageRepository) *UsageAggregator {
	return &UsageAggregator{repo: repo}
}

func (a *UsageAggregator) Aggregate(ctx context.Context, target entities.BillingTarget, period entities.BillingPeriod, policy entities.BillingPolicy) (entities.UsageSummary, []entities.UsageRecord, error) {
	records, err := a.collect(ctx, target, period)
	if err != nil {
		return entities.UsageSummary{}, nil, err
	}

	summary, err := billing.Summarize(policy, records)
	if err != nil {
		return entities.UsageSummary{}, nil, err
	}
	log.Ctx(ctx).Info().
		Str("target", target.String()).
		Int("calls", summary.TotalCalls).
		Int64("seconds", summary.TotalSeconds).
		Int64("billed_minutes", summary.BilledMinutes).
		Msg("[billing][usage] aggregated")
	return summary, records, nil
}

// ListCallLogs returns the union of both stores between start and end, newest first.
func (a *UsageAggregator) ListCallLogs(ctx context.Context, target entities.BillingTarget, start, end time.Time) ([]entities.UsageRecord, error) {
	if start.IsZero() || end.IsZero() || end.Before(start) {
		return nil, ErrInvalidDateRange
	}
	records, err := a.collect(ctx, target, entities.BillingPeriod{Start: start.UTC(), End: end.UTC()})
	if err != nil {
		return nil, err
	}
	sort.SliceStable(records, func(i, j int) bool {
		return records[i].ReceivedAt.After(records[j].ReceivedAt)
	})
	return records, nil
}

func (a *UsageAggregator) collect(ctx context.Context, target entities.BillingTarget, period entities.BillingPeriod) ([]entities.UsageRecord, error) {
	scoped, err := a.repo.ListEntityScoped(ctx, target, period)
	if err != nil {
		return nil, fmt.Errorf("list entity-scoped calls: %w", err)
	}
	global, err := a.repo.ListGlobal(ctx, target, period)
	if err != nil {
		return nil, fmt.Errorf("list global calls: %w", err)
	}

	out := make([]entities.UsageRecord, 0, len(scoped)+len(global))
	out = append(out, scoped...)
	return append(out, global...), nil
}
