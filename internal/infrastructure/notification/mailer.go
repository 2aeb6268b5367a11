package notification

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"voice_billing/internal/domain/entities"
	"voice_billing/internal/infrastructure/document"
	"voice_billing/internal/usecase/interfaces"

	"github.com/rs/zerolog/log"
	"gopkg.in/gomail.v2"
)

var ErrMissingRecipient = errors.New("missing recipient email")

// sender is the part of *gomail.Dialer the mailer needs.
type sender interface {
	DialAndSend(m ...*gomail.Message) error
}

type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

// Mailer sends billing emails over SMTP.
type Mailer struct {
	dialer sender
	from   string
	loc    *time.Location
}

var _ interfaces.INotifier = (*Mailer)(nil)

func NewMailer(cfg SMTPConfig, loc *time.Location) *Mailer {
	return newMailer(gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password), cfg.From, loc)
}

func newMailer(d sender, from string, loc *time.Location) *Mailer {
	if loc == nil {
		loc = time.UTC
	}
	return &Mailer{dialer: d, from: from, loc: loc}
}

type invoiceView struct {
	Invoice      entities.Invoice
	TotalCalls   int64
	Period       string
	DueDate      string
	PaymentURL   string
	SupportEmail string
}

type receiptView struct {
	Invoice      entities.Invoice
	Record       entities.PaymentRecord
	PaymentDate  string
	SupportEmail string
}

type reminderView struct {
	Invoice      entities.Invoice
	Final        bool
	Period       string
	DueDate      string
	PaymentURL   string
	SupportEmail string
}

func (m *Mailer) SendInvoice(ctx context.Context, n interfaces.InvoiceNotice) error {
	inv := n.Invoice
	subject := fmt.Sprintf("Tax Invoice %s - Voice Agent Services for %s to %s",
		inv.ID, inv.BillingPeriod.Start.Format("2006-01-02"), inv.BillingPeriod.End.Format("2006-01-02"))
	body, err := render(invoiceTemplate, invoiceView{
		Invoice:      inv,
		TotalCalls:   int64(inv.Usage.TotalCalls),
		Period:       inv.BillingPeriod.Label(),
		DueDate:      document.FormatDate(inv.DueDate, m.loc),
		PaymentURL:   n.PaymentURL,
		SupportEmail: m.from,
	})
	if err != nil {
		return err
	}
	return m.send(ctx, n.To, subject, body, n.Attachments)
}

func (m *Mailer) SendReceipt(ctx context.Context, n interfaces.ReceiptNotice) error {
	subject := "Payment Receipt for Invoice " + n.Invoice.ID
	body, err := render(receiptTemplate, receiptView{
		Invoice:      n.Invoice,
		Record:       n.Record,
		PaymentDate:  document.FormatDate(n.Record.PaymentDate, m.loc),
		SupportEmail: m.from,
	})
	if err != nil {
		return err
	}
	return m.send(ctx, n.To, subject, body, n.Attachments)
}

func (m *Mailer) SendReminder(ctx context.Context, n interfaces.ReminderNotice) error {
	final := n.Kind == entities.ReminderFinal
	subject := "Payment Reminder: Invoice " + n.Invoice.ID
	if final {
		subject = "Final Payment Reminder: Invoice " + n.Invoice.ID + " is due today"
	}
	body, err := render(reminderTemplate, reminderView{
		Invoice:      n.Invoice,
		Final:        final,
		Period:       n.Invoice.BillingPeriod.Label(),
		DueDate:      document.FormatDate(n.Invoice.DueDate, m.loc),
		PaymentURL:   n.PaymentURL,
		SupportEmail: m.from,
	})
	if err != nil {
		return err
	}
	return m.send(ctx, n.To, subject, body, nil)
}

func (m *Mailer) send(ctx context.Context, to, subject, body string, attachments []interfaces.Attachment) error {
	if to == "" {
		return ErrMissingRecipient
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", body)
	for _, a := range attachments {
		data := a.Data
		msg.Attach(a.Filename,
			gomail.SetCopyFunc(func(w io.Writer) error {
				_, err := w.Write(data)
				return err
			}),
			gomail.SetHeader(map[string][]string{"Content-Type": {a.ContentType}}),
		)
	}

	if err := m.dialer.DialAndSend(msg); err != nil {
		log.Ctx(ctx).Error().Err(err).Str("to", to).Str("subject", subject).Msg("[notification][smtp] send failed")
		return fmt.Errorf("smtp send: %w", err)
	}
	log.Ctx(ctx).Info().Str("to", to).Str("subject", subject).Int("attachments", len(attachments)).Msg("[notification][smtp] sent")
	return nil
}
