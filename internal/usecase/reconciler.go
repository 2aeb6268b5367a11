package usecase

import (
	"context"
	"fmt"

	"voice_billing/internal/domain/entities"
	"voice_billing/internal/usecase/interfaces"

	"github.com/rs/zerolog/log"
)

// Outcome is the result of applying a payment confirmation.
type Outcome string

const (
	OutcomeSuccess          Outcome = "success"
	OutcomeAlreadyProcessed Outcome = "already_processed"
	OutcomeIgnored          Outcome = "ignored"
)

type ConfirmResult struct {
	Outcome Outcome                `json:"status"`
	Invoice entities.Invoice       `json:"invoice"`
	Record  entities.PaymentRecord `json:"record"`
}

// ConfirmCommand carries one confirmation into the reconciler. Verify runs after
// the settled-state guard and before any write; a nil Verify means the ingress
// already authenticated the confirmation.
type ConfirmCommand struct {
	Target       entities.BillingTarget
	InvoiceID    string
	Confirmation entities.PaymentConfirmation
	Verify       func(ctx context.Context) error
}

// Reconciler is the single path every payment ingress settles through. Both
// ingress paths may deliver the same payment in any order; the conditional
// settle in the repository guarantees exactly one of them wins.
type Reconciler struct {
	invoices interfaces.IInvoiceRepository
	renderer interfaces.IDocumentRenderer
	notifier interfaces.INotifier
	settings Settings
}

func NewReconciler(invoices interfaces.IInvoiceRepository, renderer interfaces.IDocumentRenderer, notifier interfaces.INotifier, settings Settings) *Reconciler {
	return &Reconciler{invoices: invoices, renderer: renderer, notifier: notifier, settings: settings}
}

func (r *Reconciler) Confirm(ctx context.Context, cmd ConfirmCommand) (ConfirmResult, error) {
	logger := log.Ctx(ctx).With().
		Str("invoice_id", cmd.InvoiceID).
		Str("source", string(cmd.Confirmation.Source)).
		Str("payment_id", cmd.Confirmation.PaymentID).
		Logger()

	inv, err := r.invoices.GetByID(ctx, cmd.Target, cmd.InvoiceID)
	if err != nil {
		return ConfirmResult{}, err
	}
	if !inv.Exists() {
		logger.Warn().Msg("[payment][reconcile] invoice not found")
		return ConfirmResult{}, ErrInvoiceNotFound
	}
	if inv.IsSettled() {
		logger.Info().Str("status", string(inv.PaymentStatus)).Msg("[payment][reconcile] already processed")
		return ConfirmResult{Outcome: OutcomeAlreadyProcessed, Invoice: inv}, nil
	}

	if cmd.Verify != nil {
		if err := cmd.Verify(ctx); err != nil {
			logger.Warn().Err(err).Msg("[payment][reconcile] verification failed")
			return ConfirmResult{}, err
		}
	}

	now := r.settings.now()
	conf := cmd.Confirmation
	if conf.PaidAt.IsZero() {
		conf.PaidAt = now
	}
	status := inv.ClassifyPayment(r.settings.Calendar, conf.PaidAt)
	record := entities.NewPaymentRecord(inv, conf, status, now)

	ok, err := r.invoices.SettlePayment(ctx, cmd.Target, inv.ID, status, record)
	if err != nil {
		logger.Error().Err(err).Msg("[payment][reconcile] settle failed")
		return ConfirmResult{}, fmt.Errorf("settle invoice %s: %w", inv.ID, err)
	}
	if !ok {
		logger.Info().Msg("[payment][reconcile] concurrent confirmation won; already processed")
		latest, err := r.invoices.GetByID(ctx, cmd.Target, inv.ID)
		if err != nil || !latest.Exists() {
			latest = inv
		}
		return ConfirmResult{Outcome: OutcomeAlreadyProcessed, Invoice: latest}, nil
	}

	inv.PaymentStatus = status
	inv.PaymentID = record.PaymentID
	inv.PaymentDate = &record.PaymentDate
	inv.UpdatedAt = now
	logger.Info().Str("status", string(status)).Msg("[payment][reconcile] settled")

	r.sendReceipt(ctx, inv, record)
	return ConfirmResult{Outcome: OutcomeSuccess, Invoice: inv, Record: record}, nil
}

// sendReceipt is best effort: the invoice is already settled.
func (r *Reconciler) sendReceipt(ctx context.Context, inv entities.Invoice, rec entities.PaymentRecord) {
	logger := log.Ctx(ctx)
	if r.notifier == nil || inv.BilledTo.Email == "" {
		return
	}
	var attachments []interfaces.Attachment
	if r.renderer != nil {
		pdf, err := r.renderer.ReceiptPDF(inv, rec)
		if err != nil {
			logger.Warn().Str("invoice_id", inv.ID).Err(err).Msg("[payment][reconcile] receipt render failed")
		} else {
			attachments = append(attachments, interfaces.Attachment{Filename: "receipt_" + inv.ID + ".pdf", ContentType: "application/pdf", Data: pdf})
		}
	}
	err := r.notifier.SendReceipt(ctx, interfaces.ReceiptNotice{To: inv.BilledTo.Email, Invoice: inv, Record: rec, Attachments: attachments})
	if err != nil {
		logger.Warn().Str("invoice_id", inv.ID).Err(err).Msg("[payment][reconcile] receipt email failed")
	}
}
