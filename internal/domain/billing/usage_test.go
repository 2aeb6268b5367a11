package billing

import (
	"testing"

	"voice_billing/internal/domain/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func calls(durations ...int64) []entities.UsageRecord {
	out := make([]entities.UsageRecord, 0, len(durations))
	for _, d := range durations {
		out = append(out, entities.UsageRecord{DurationSeconds: d})
	}
	return out
}

func TestBilledMinutes_PerCallRoundsEachCallUp(t *testing.T) {
	minutes, err := BilledMinutes(entities.BillingPolicyPerCall, calls(61, 1, 1))
	require.NoError(t, err)
	assert.Equal(t, int64(4), minutes)
}

func TestBilledMinutes_EmptyPolicyDefaultsToPerCall(t *testing.T) {
	minutes, err := BilledMinutes("", calls(60, 120, 0))
	require.NoError(t, err)
	assert.Equal(t, int64(3), minutes)
}

func TestBilledMinutes_NegativeDurationCountsAsZero(t *testing.T) {
	minutes, err := BilledMinutes(entities.BillingPolicyPerCall, calls(-30, 30))
	require.NoError(t, err)
	assert.Equal(t, int64(1), minutes)
}

func TestBilledMinutes_UnknownPolicy(t *testing.T) {
	_, err := BilledMinutes("aggregate", calls(10))
	require.ErrorIs(t, err, ErrUnsupportedBillingPolicy)
}

func TestSummarize(t *testing.T) {
	s, err := Summarize("", calls(61, 1, 1))
	require.NoError(t, err)
	assert.Equal(t, 3, s.TotalCalls)
	assert.Equal(t, int64(63), s.TotalSeconds)
	assert.Equal(t, int64(4), s.BilledMinutes)
	assert.Equal(t, entities.BillingPolicyPerCall, s.Policy)
}
