package usecase

import (
	"net/url"
	"time"

	"voice_billing/internal/domain/billing"
	"voice_billing/internal/domain/entities"
)

// Settings are the billing rules shared by the usecases.
type Settings struct {
	Calendar          entities.Calendar
	Rounding          billing.RoundingPolicy
	DueAfter          time.Duration
	FirstReminder     time.Duration
	Seller            entities.PartyInfo
	PaymentPageURL    string
	CheckoutReturnURL string
	Now               func() time.Time
}

func (s Settings) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now().UTC()
}

func (s Settings) dueAfter() time.Duration {
	if s.DueAfter <= 0 {
		return 7 * 24 * time.Hour
	}
	return s.DueAfter
}

func (s Settings) firstReminder() time.Duration {
	if s.FirstReminder <= 0 {
		return 3 * 24 * time.Hour
	}
	return s.FirstReminder
}

// paymentLink appends the access token to the configured payment page.
func (s Settings) paymentLink(token string) string {
	if s.PaymentPageURL == "" {
		return ""
	}
	u, err := url.Parse(s.PaymentPageURL)
	if err != nil {
		return s.PaymentPageURL
	}
	q := u.Query()
	q.Set("token", token)
	u.RawQuery = q.Encode()
	return u.String()
}
