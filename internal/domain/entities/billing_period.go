package entities

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrInvalidPeriod = errors.New("invalid billing period")
	ErrFuturePeriod  = errors.New("cannot generate invoice for current or future month")
)

// BillingPeriod is one fully elapsed calendar month in UTC.
// End is the last second of the month.
type BillingPeriod struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

func (p BillingPeriod) Month() int { return int(p.Start.Month()) }
func (p BillingPeriod) Year() int  { return p.Start.Year() }

func (p BillingPeriod) IsZero() bool { return p.Start.IsZero() || p.End.IsZero() }

// Label renders the period the way it is printed on invoices, e.g. "September 2025".
func (p BillingPeriod) Label() string {
	return p.Start.Format("January 2006")
}

// Contains reports whether t falls inside the period, including any instant
// within its last second.
func (p BillingPeriod) Contains(t time.Time) bool {
	return !t.Before(p.Start) && t.Before(p.End.Add(time.Second))
}

// NewBillingPeriod builds the period for a given month without any
// "already elapsed" check.
func NewBillingPeriod(month, year int) (BillingPeriod, error) {
	if month < 1 || month > 12 {
		return BillingPeriod{}, fmt.Errorf("%w: month %d", ErrInvalidPeriod, month)
	}
	if year < 1 {
		return BillingPeriod{}, fmt.Errorf("%w: year %d", ErrInvalidPeriod, year)
	}
	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, 0).Add(-time.Second)
	return BillingPeriod{Start: start, End: end}, nil
}

// ResolveBillingPeriod returns the period to bill. A nil month or year is
// taken from the last completed month relative to now; a supplied value is
// kept. The current month and any later month are rejected.
func ResolveBillingPeriod(now time.Time, month, year *int) (BillingPeriod, error) {
	now = now.UTC()
	currentMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	last := currentMonth.AddDate(0, -1, 0)

	m, y := int(last.Month()), last.Year()
	if month != nil {
		m = *month
	}
	if year != nil {
		y = *year
	}

	p, err := NewBillingPeriod(m, y)
	if err != nil {
		return BillingPeriod{}, err
	}
	if !p.Start.Before(currentMonth) {
		return BillingPeriod{}, fmt.Errorf("%w: %02d/%d", ErrFuturePeriod, m, y)
	}
	return p, nil
}
