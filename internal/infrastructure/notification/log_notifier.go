package notification

import (
	"context"

	"voice_billing/internal/usecase/interfaces"

	"github.com/rs/zerolog/log"
)

// LogNotifier stands in for the mailer when SMTP is not configured.
type LogNotifier struct{}

var _ interfaces.INotifier = LogNotifier{}

func (LogNotifier) SendInvoice(ctx context.Context, n interfaces.InvoiceNotice) error {
	log.Ctx(ctx).Info().Str("to", n.To).Str("invoice_id", n.Invoice.ID).Str("payment_url", n.PaymentURL).
		Int("attachments", len(n.Attachments)).Msg("[notification][log] invoice")
	return nil
}

func (LogNotifier) SendReceipt(ctx context.Context, n interfaces.ReceiptNotice) error {
	log.Ctx(ctx).Info().Str("to", n.To).Str("invoice_id", n.Invoice.ID).Str("record_id", n.Record.ID).
		Msg("[notification][log] receipt")
	return nil
}

func (LogNotifier) SendReminder(ctx context.Context, n interfaces.ReminderNotice) error {
	log.Ctx(ctx).Info().Str("to", n.To).Str("invoice_id", n.Invoice.ID).Str("kind", string(n.Kind)).
		Msg("[notification][log] reminder")
	return nil
}
