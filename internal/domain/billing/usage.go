package billing

import (
	"errors"
	"fmt"

	"voice_billing/internal/domain/entities"
)

var ErrUnsupportedBillingPolicy = errors.New("unsupported billing policy")

// BilledMinutes turns raw call durations into billable minutes according to
// policy. Under per-call billing every call is rounded up to the next whole
// minute before summing, so three calls of 61s, 1s and 1s bill 4 minutes.
func BilledMinutes(policy entities.BillingPolicy, records []entities.UsageRecord) (int64, error) {
	switch normalizePolicy(policy) {
	case entities.BillingPolicyPerCall:
		var minutes int64
		for _, r := range records {
			minutes += ceilMinutes(r.DurationSeconds)
		}
		return minutes, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnsupportedBillingPolicy, policy)
	}
}

// Summarize builds the usage snapshot stored on an invoice.
func Summarize(policy entities.BillingPolicy, records []entities.UsageRecord) (entities.UsageSummary, error) {
	minutes, err := BilledMinutes(policy, records)
	if err != nil {
		return entities.UsageSummary{}, err
	}
	var seconds int64
	for _, r := range records {
		if r.DurationSeconds > 0 {
			seconds += r.DurationSeconds
		}
	}
	return entities.UsageSummary{
		TotalCalls:    len(records),
		TotalSeconds:  seconds,
		BilledMinutes: minutes,
		Policy:        normalizePolicy(policy),
	}, nil
}

func normalizePolicy(p entities.BillingPolicy) entities.BillingPolicy {
	if p == "" {
		return entities.BillingPolicyPerCall
	}
	return p
}

func ceilMinutes(seconds int64) int64 {
	if seconds <= 0 {
		return 0
	}
	return (seconds + 59) / 60
}
