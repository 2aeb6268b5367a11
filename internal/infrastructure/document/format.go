package document

import (
	"strings"
	"time"

	"voice_billing/internal/domain/entities"

	"github.com/shopspring/decimal"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var (
	printer = message.NewPrinter(language.MustParse("en-IN"))
	titler  = cases.Title(language.English)
)

// CurrencySymbol returns ₹ for INR and the upper-cased code otherwise.
func CurrencySymbol(currency string) string {
	c := strings.ToUpper(strings.TrimSpace(currency))
	switch c {
	case "", "INR":
		return "₹"
	default:
		return c + " "
	}
}

// FormatMoney renders an amount with two decimals and locale grouping.
func FormatMoney(amount decimal.Decimal, currency string) string {
	f, _ := amount.Round(2).Float64()
	return CurrencySymbol(currency) + printer.Sprintf("%.2f", f)
}

func FormatCount(n int64) string {
	return printer.Sprintf("%d", n)
}

// StatusLabel renders a payment status for humans, e.g. "Due Paid".
func StatusLabel(s entities.PaymentStatus) string {
	return titler.String(strings.ReplaceAll(string(s), "_", " "))
}

const dateLayout = "02 Jan 2006"

// FormatDate renders t in loc; zero times render as "-".
func FormatDate(t time.Time, loc *time.Location) string {
	if t.IsZero() {
		return "-"
	}
	if loc == nil {
		loc = time.UTC
	}
	return t.In(loc).Format(dateLayout)
}
