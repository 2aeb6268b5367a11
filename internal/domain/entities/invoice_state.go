package entities

import (
	"errors"
	"fmt"
	"time"
)

var ErrIllegalTransition = errors.New("illegal invoice status transition")

// Calendar compares instants by calendar date in the billing timezone.
type Calendar struct {
	loc *time.Location
}

func NewCalendar(loc *time.Location) Calendar {
	if loc == nil {
		loc = time.UTC
	}
	return Calendar{loc: loc}
}

func (c Calendar) Location() *time.Location {
	if c.loc == nil {
		return time.UTC
	}
	return c.loc
}

// Date truncates t to midnight of its calendar day in the calendar's location.
func (c Calendar) Date(t time.Time) time.Time {
	y, m, d := t.In(c.Location()).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, c.Location())
}

func (c Calendar) SameDay(a, b time.Time) bool {
	return c.Date(a).Equal(c.Date(b))
}

// DayBefore reports whether a's calendar date is strictly before b's.
func (c Calendar) DayBefore(a, b time.Time) bool {
	return c.Date(a).Before(c.Date(b))
}

// CanTransition reports whether from -> to is a legal edge.
func CanTransition(from, to PaymentStatus) bool {
	switch from {
	case PaymentStatusPending:
		return to == PaymentStatusDue || to == PaymentStatusPaid || to == PaymentStatusDuePaid
	case PaymentStatusDue:
		return to == PaymentStatusPaid || to == PaymentStatusDuePaid
	}
	return false
}

// Transition applies a legal status change and returns the updated invoice.
func (i Invoice) Transition(to PaymentStatus, at time.Time) (Invoice, error) {
	if !CanTransition(i.PaymentStatus, to) {
		return i, fmt.Errorf("%w: %s -> %s", ErrIllegalTransition, i.PaymentStatus, to)
	}
	i.PaymentStatus = to
	i.UpdatedAt = at
	return i, nil
}

// IsOverdue reports whether a pending invoice's due date has strictly passed.
// An invoice without a usable due date is never overdue.
func (i Invoice) IsOverdue(cal Calendar, now time.Time) bool {
	if i.PaymentStatus != PaymentStatusPending || i.DueDate.IsZero() {
		return false
	}
	return cal.DayBefore(i.DueDate, now)
}

// ClassifyPayment returns the terminal status for a payment made at paidAt:
// paid when on or before the due date, due_paid afterwards.
func (i Invoice) ClassifyPayment(cal Calendar, paidAt time.Time) PaymentStatus {
	if i.DueDate.IsZero() || !cal.DayBefore(i.DueDate, paidAt) {
		return PaymentStatusPaid
	}
	return PaymentStatusDuePaid
}

type ReminderKind string

const (
	ReminderNone  ReminderKind = ""
	ReminderFirst ReminderKind = "first"
	ReminderFinal ReminderKind = "final"
)

// ReminderDue decides which reminder, if any, a pending invoice gets today.
// The first reminder goes out exactly firstAfter days after the invoice date,
// the final one on the due date. Missed days are not backfilled.
func (i Invoice) ReminderDue(cal Calendar, today time.Time, firstAfter time.Duration) ReminderKind {
	if i.PaymentStatus != PaymentStatusPending {
		return ReminderNone
	}
	if !i.DueDate.IsZero() && cal.SameDay(i.DueDate, today) {
		return ReminderFinal
	}
	if !i.InvoiceDate.IsZero() && cal.SameDay(i.InvoiceDate.Add(firstAfter), today) {
		return ReminderFirst
	}
	return ReminderNone
}
