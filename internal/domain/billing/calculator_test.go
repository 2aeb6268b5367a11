package billing

import (
	"testing"

	"voice_billing/internal/domain/entities"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestCalculate_SubtotalTaxTotal(t *testing.T) {
	rates := entities.RateCard{RatePerMinute: d("2.5"), MaintenanceFee: d("500"), TaxRate: d("18"), Currency: "INR"}

	c, err := Calculate(100, rates, RoundingNone)
	require.NoError(t, err)

	assert.True(t, c.Subtotal.Equal(d("750")), c.Subtotal.String())
	assert.True(t, c.TaxAmount.Equal(d("135")), c.TaxAmount.String())
	assert.True(t, c.Total.Equal(d("885")), c.Total.String())
	assert.True(t, c.RoundOff.IsZero())
	require.Len(t, c.LineItems, 2)
	assert.Equal(t, "Call Charges - 100 min × ₹2.5/min", c.LineItems[0].Description)
	assert.Equal(t, "Monthly Platform Maintenance Fee", c.LineItems[1].Description)
	assert.Equal(t, "Rupees Eight Hundred Eighty Five Only", c.TotalInWords)
}

func TestCalculate_ZeroUsageAndMissingValues(t *testing.T) {
	c, err := Calculate(0, entities.RateCard{}, RoundingNone)
	require.NoError(t, err)

	assert.True(t, c.Total.IsZero())
	require.Len(t, c.LineItems, 1)
	assert.Equal(t, "Zero Rupees Only", c.TotalInWords)
}

func TestCalculate_NearestRoundingAddsRoundOffLine(t *testing.T) {
	rates := entities.RateCard{RatePerMinute: d("1.13"), TaxRate: d("18")}

	c, err := Calculate(10, rates, RoundingNearest)
	require.NoError(t, err)

	// 11.30 + 2.03 = 13.33 -> 13
	assert.True(t, c.Total.Equal(d("13")), c.Total.String())
	assert.True(t, c.RoundOff.Equal(d("-0.33")), c.RoundOff.String())
	assert.True(t, c.Subtotal.Add(c.TaxAmount).Add(c.RoundOff).Equal(c.Total))
	assert.Equal(t, "Round Off", c.LineItems[len(c.LineItems)-1].Description)
}

func TestCalculate_NearestRoundingSmallDifference(t *testing.T) {
	rates := entities.RateCard{MaintenanceFee: d("1180.99")}

	c, err := Calculate(0, rates, RoundingNearest)
	require.NoError(t, err)

	assert.True(t, c.Total.Equal(d("1181")), c.Total.String())
	assert.True(t, c.RoundOff.Equal(d("0.01")), c.RoundOff.String())
	assert.True(t, c.Subtotal.Add(c.TaxAmount).Add(c.RoundOff).Equal(c.Total))
	for _, li := range c.LineItems {
		assert.NotEqual(t, "Round Off", li.Description)
	}
}

func TestCalculate_NearestRoundingExactRupee(t *testing.T) {
	rates := entities.RateCard{MaintenanceFee: d("1000"), TaxRate: d("18")}

	c, err := Calculate(0, rates, RoundingNearest)
	require.NoError(t, err)

	assert.True(t, c.Total.Equal(d("1180")), c.Total.String())
	assert.True(t, c.RoundOff.IsZero(), c.RoundOff.String())
	assert.Len(t, c.LineItems, 2)
}

func TestCalculate_NoRoundingKeepsPaise(t *testing.T) {
	rates := entities.RateCard{RatePerMinute: d("1.13"), TaxRate: d("18")}

	c, err := Calculate(10, rates, RoundingNone)
	require.NoError(t, err)

	assert.True(t, c.Total.Equal(d("13.33")), c.Total.String())
	assert.Equal(t, "Rupees Thirteen and Thirty Three Paise Only", c.TotalInWords)
}

func TestCalculate_RejectsNegativeInputs(t *testing.T) {
	_, err := Calculate(-1, entities.RateCard{}, RoundingNone)
	require.ErrorIs(t, err, ErrNegativeInput)

	_, err = Calculate(1, entities.RateCard{TaxRate: d("-1")}, RoundingNone)
	require.ErrorIs(t, err, ErrNegativeInput)
}

func TestParseRoundingPolicy(t *testing.T) {
	p, err := ParseRoundingPolicy("")
	require.NoError(t, err)
	assert.Equal(t, RoundingNone, p)

	p, err = ParseRoundingPolicy(" Nearest ")
	require.NoError(t, err)
	assert.Equal(t, RoundingNearest, p)

	_, err = ParseRoundingPolicy("bankers")
	require.ErrorIs(t, err, ErrUnknownRoundingPolicy)
}
