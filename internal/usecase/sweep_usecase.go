package usecase

import (
	"context"
	"fmt"

	"voice_billing/internal/domain/entities"
	"voice_billing/internal/usecase/interfaces"

	"github.com/rs/zerolog/log"
)

type SweepResult struct {
	EntitiesProcessed int             `json:"entities_processed"`
	Updated           int             `json:"updated"`
	Skipped           int             `json:"skipped"`
	FailedEntities    int             `json:"failed_entities"`
	Failures          []EntityFailure `json:"failures,omitempty"`
}

type ReminderResult struct {
	EntitiesProcessed int             `json:"entities_processed"`
	FirstSent         int             `json:"first_sent"`
	FinalSent         int             `json:"final_sent"`
	FailedEntities    int             `json:"failed_entities"`
	Failures          []EntityFailure `json:"failures,omitempty"`
}

// ISweepUseCase holds the periodic invoice maintenance jobs.
type ISweepUseCase interface {
	SweepOverdue(ctx context.Context, scope entities.BillingTarget) (SweepResult, error)
	SendReminders(ctx context.Context) (ReminderResult, error)
}

type SweepUseCase struct {
	invoices interfaces.IInvoiceRepository
	profiles interfaces.IEntityRepository
	notifier interfaces.INotifier
	tokens   interfaces.ITokenManager
	settings Settings
}

var _ ISweepUseCase = (*SweepUseCase)(nil)

func NewSweepUseCase(invoices interfaces.IInvoiceRepository, profiles interfaces.IEntityRepository, notifier interfaces.INotifier, tokens interfaces.ITokenManager, settings Settings) *SweepUseCase {
	return &SweepUseCase{invoices: invoices, profiles: profiles, notifier: notifier, tokens: tokens, settings: settings}
}

// SweepOverdue moves pending invoices whose due date has passed to due. With a
// nil scope every company and tenant is visited; an entity's failure is
// recorded and the sweep continues.
func (u *SweepUseCase) SweepOverdue(ctx context.Context, scope entities.BillingTarget) (SweepResult, error) {
	var res SweepResult

	err := u.forEachTarget(ctx, scope, func(target entities.BillingTarget) error {
		res.EntitiesProcessed++
		updated, skipped, err := u.sweepTarget(ctx, target)
		res.Updated += updated
		res.Skipped += skipped
		return err
	}, func(label string, err error) {
		res.FailedEntities++
		res.Failures = append(res.Failures, EntityFailure{Target: label, Error: err.Error()})
	})

	log.Ctx(ctx).Info().
		Int("entities", res.EntitiesProcessed).
		Int("updated", res.Updated).
		Int("skipped", res.Skipped).
		Int("failed_entities", res.FailedEntities).
		Msg("[invoice][sweep] overdue sweep finished")
	return res, err
}

func (u *SweepUseCase) sweepTarget(ctx context.Context, target entities.BillingTarget) (updated, skipped int, err error) {
	pending, err := u.invoices.ListByStatus(ctx, target, entities.PaymentStatusPending)
	if err != nil {
		return 0, 0, fmt.Errorf("list pending invoices: %w", err)
	}
	now := u.settings.now()
	for _, inv := range pending {
		if inv.DueDate.IsZero() {
			skipped++
			log.Ctx(ctx).Warn().Str("invoice_id", inv.ID).Msg("[invoice][sweep] missing or unparseable due date")
			continue
		}
		if !inv.IsOverdue(u.settings.Calendar, now) {
			continue
		}
		ok, err := u.invoices.TransitionStatus(ctx, target, inv.ID, []entities.PaymentStatus{entities.PaymentStatusPending}, entities.PaymentStatusDue, now)
		if err != nil {
			return updated, skipped, fmt.Errorf("mark %s due: %w", inv.ID, err)
		}
		if ok {
			updated++
			log.Ctx(ctx).Info().Str("invoice_id", inv.ID).Msg("[invoice][sweep] marked due")
		}
	}
	return updated, skipped, nil
}

// SendReminders emails the first reminder a few days after issue and the final
// one on the due date. Only exact-day matches fire; missed days are not replayed.
func (u *SweepUseCase) SendReminders(ctx context.Context) (ReminderResult, error) {
	var res ReminderResult
	now := u.settings.now()

	err := u.forEachTarget(ctx, nil, func(target entities.BillingTarget) error {
		res.EntitiesProcessed++
		pending, err := u.invoices.ListByStatus(ctx, target, entities.PaymentStatusPending)
		if err != nil {
			return fmt.Errorf("list pending invoices: %w", err)
		}
		for _, inv := range pending {
			kind := inv.ReminderDue(u.settings.Calendar, now, u.settings.firstReminder())
			if kind == entities.ReminderNone || inv.BilledTo.Email == "" {
				continue
			}
			link, err := issuePaymentLink(ctx, u.tokens, u.profiles, u.settings, inv)
			if err != nil {
				return err
			}
			if err := u.notifier.SendReminder(ctx, interfaces.ReminderNotice{To: inv.BilledTo.Email, Invoice: inv, Kind: kind, PaymentURL: link}); err != nil {
				return fmt.Errorf("send %s reminder for %s: %w", kind, inv.ID, err)
			}
			if kind == entities.ReminderFirst {
				res.FirstSent++
			} else {
				res.FinalSent++
			}
			log.Ctx(ctx).Info().Str("invoice_id", inv.ID).Str("kind", string(kind)).Msg("[invoice][reminder] sent")
		}
		return nil
	}, func(label string, err error) {
		res.FailedEntities++
		res.Failures = append(res.Failures, EntityFailure{Target: label, Error: err.Error()})
	})

	log.Ctx(ctx).Info().
		Int("entities", res.EntitiesProcessed).
		Int("first_sent", res.FirstSent).
		Int("final_sent", res.FinalSent).
		Int("failed_entities", res.FailedEntities).
		Msg("[invoice][reminder] run finished")
	return res, err
}

// forEachTarget visits scope, or every company followed by its tenants when
// scope is nil. fn errors are reported through onFail and never stop the walk.
// Only a failure to list companies, or context cancellation, is returned.
func (u *SweepUseCase) forEachTarget(ctx context.Context, scope entities.BillingTarget, fn func(entities.BillingTarget) error, onFail func(string, error)) error {
	visit := func(t entities.BillingTarget) {
		if err := fn(t); err != nil {
			log.Ctx(ctx).Error().Str("target", t.String()).Err(err).Msg("[invoice][sweep] entity failed")
			onFail(t.String(), err)
		}
	}

	if scope != nil {
		visit(scope)
		return nil
	}

	companies, err := u.profiles.ListCompanies(ctx)
	if err != nil {
		return fmt.Errorf("list companies: %w", err)
	}
	for _, c := range companies {
		if err := ctx.Err(); err != nil {
			return err
		}
		company := entities.TopLevelEntity{Company: c.CompanyID}
		visit(company)

		tenants, err := u.profiles.ListTenants(ctx, c.CompanyID)
		if err != nil {
			log.Ctx(ctx).Error().Str("company_id", c.CompanyID).Err(err).Msg("[invoice][sweep] list tenants failed")
			onFail(company.String()+"/tenants", err)
			continue
		}
		for _, t := range tenants {
			visit(entities.SubEntity{Parent: company, Tenant: t.TenantID})
		}
	}
	return nil
}
