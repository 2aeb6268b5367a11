package billing

import (
	"strings"

	"github.com/shopspring/decimal"
)

var ones = []string{"", "One", "Two", "Three", "Four", "Five", "Six", "Seven", "Eight", "Nine"}

var teens = []string{"Ten", "Eleven", "Twelve", "Thirteen", "Fourteen", "Fifteen",
	"Sixteen", "Seventeen", "Eighteen", "Nineteen"}

var tens = []string{"", "", "Twenty", "Thirty", "Forty", "Fifty", "Sixty", "Seventy", "Eighty", "Ninety"}

type group struct {
	size int64
	name string
}

var indianGroups = []group{
	{size: 10000000, name: "Crore"},
	{size: 100000, name: "Lakh"},
	{size: 1000, name: "Thousand"},
}

// AmountInWords spells an amount in the Indian numbering system, e.g.
// 150000 -> "Rupees One Lakh Fifty Thousand Only" and
// 10.5 -> "Rupees Ten and Fifty Paise Only".
func AmountInWords(amount decimal.Decimal) string {
	amount = amount.Abs().Round(2)
	if amount.IsZero() {
		return "Zero Rupees Only"
	}

	rupees := amount.IntPart()
	paise := amount.Sub(decimal.NewFromInt(rupees)).Mul(decimal.NewFromInt(100)).IntPart()

	var parts []string
	n := rupees
	for _, g := range indianGroups {
		if q := n / g.size; q > 0 {
			parts = append(parts, belowThousand(q), g.name)
			n %= g.size
		}
	}
	if n > 0 {
		parts = append(parts, belowThousand(n))
	}
	if len(parts) == 0 {
		parts = append(parts, "Zero")
	}

	out := "Rupees " + strings.Join(parts, " ")
	if paise > 0 {
		out += " and " + belowThousand(paise) + " Paise"
	}
	return out + " Only"
}

// belowThousand spells 1..999. Crore counts above 999 are spelled recursively.
func belowThousand(n int64) string {
	if n >= 1000 {
		return strings.TrimPrefix(strings.TrimSuffix(AmountInWords(decimal.NewFromInt(n)), " Only"), "Rupees ")
	}
	var words []string
	if n >= 100 {
		words = append(words, ones[n/100], "Hundred")
		n %= 100
	}
	switch {
	case n >= 20:
		words = append(words, tens[n/10])
		if n%10 > 0 {
			words = append(words, ones[n%10])
		}
	case n >= 10:
		words = append(words, teens[n-10])
	case n > 0:
		words = append(words, ones[n])
	}
	return strings.Join(words, " ")
}
