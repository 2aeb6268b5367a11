package billing

import (
	"errors"
	"fmt"
	"strings"

	"voice_billing/internal/domain/entities"

	"github.com/shopspring/decimal"
)

var (
	ErrNegativeInput         = errors.New("billing inputs must not be negative")
	ErrUnknownRoundingPolicy = errors.New("unknown rounding policy")
	roundOffThreshold        = decimal.RequireFromString("0.01")
	hundred                  = decimal.NewFromInt(100)
)

// RoundingPolicy controls whether the invoice total is rounded to whole rupees.
type RoundingPolicy string

const (
	RoundingNone    RoundingPolicy = "none"
	RoundingNearest RoundingPolicy = "nearest"
)

func ParseRoundingPolicy(s string) (RoundingPolicy, error) {
	switch p := RoundingPolicy(strings.ToLower(strings.TrimSpace(s))); p {
	case "", RoundingNone:
		return RoundingNone, nil
	case RoundingNearest:
		return RoundingNearest, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownRoundingPolicy, s)
	}
}

// Charges is the priced breakdown of one billing period.
type Charges struct {
	LineItems    []entities.LineItem
	Subtotal     decimal.Decimal
	TaxAmount    decimal.Decimal
	RoundOff     decimal.Decimal
	Total        decimal.Decimal
	TotalInWords string
}

// Calculate prices billed minutes against a rate card:
//
//	subtotal = minutes*rate + maintenance fee
//	tax      = subtotal*taxRate/100
//	total    = subtotal + tax (+ round off under RoundingNearest, always a whole rupee)
//
// Subtotal and tax are kept at paise precision.
func Calculate(minutes int64, rates entities.RateCard, rounding RoundingPolicy) (Charges, error) {
	if minutes < 0 || rates.RatePerMinute.IsNegative() || rates.MaintenanceFee.IsNegative() || rates.TaxRate.IsNegative() {
		return Charges{}, ErrNegativeInput
	}

	qty := decimal.NewFromInt(minutes)
	callAmount := qty.Mul(rates.RatePerMinute).Round(2)
	items := []entities.LineItem{{
		Description: fmt.Sprintf("Call Charges - %d min × %s%s/min", minutes, currencySymbol(rates.Currency), rates.RatePerMinute.String()),
		Quantity:    qty,
		Unit:        "min",
		Rate:        rates.RatePerMinute,
		Amount:      callAmount,
	}}
	if rates.MaintenanceFee.IsPositive() {
		items = append(items, entities.LineItem{
			Description: "Monthly Platform Maintenance Fee",
			Quantity:    decimal.NewFromInt(1),
			Rate:        rates.MaintenanceFee,
			Amount:      rates.MaintenanceFee,
		})
	}

	subtotal := callAmount.Add(rates.MaintenanceFee).Round(2)
	tax := subtotal.Mul(rates.TaxRate).Div(hundred).Round(2)
	total := subtotal.Add(tax)
	roundOff := decimal.Zero

	switch rounding {
	case RoundingNone, "":
	case RoundingNearest:
		rounded := total.Round(0)
		diff := rounded.Sub(total)
		roundOff = diff
		total = rounded
		// A one-paisa adjustment is not printed as a line item.
		if diff.Abs().GreaterThan(roundOffThreshold) {
			items = append(items, entities.LineItem{
				Description: "Round Off",
				Quantity:    decimal.NewFromInt(1),
				Rate:        diff,
				Amount:      diff,
			})
		}
	default:
		return Charges{}, fmt.Errorf("%w: %q", ErrUnknownRoundingPolicy, rounding)
	}

	return Charges{
		LineItems:    items,
		Subtotal:     subtotal,
		TaxAmount:    tax,
		RoundOff:     roundOff,
		Total:        total,
		TotalInWords: AmountInWords(total),
	}, nil
}

func currencySymbol(currency string) string {
	switch strings.ToUpper(currency) {
	case "", "INR":
		return "₹"
	default:
		return strings.ToUpper(currency) + " "
	}
}
