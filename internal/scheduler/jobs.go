package scheduler

import (
	"context"

	"voice_billing/internal/usecase"

	"github.com/rs/zerolog/log"
)

const (
	JobUpdateOverdue    = "update_overdue_invoices"
	JobPaymentReminders = "check_payment_reminders"
)

// RegisterBillingJobs wires the overdue sweep and the reminder check.
func RegisterBillingJobs(s *Scheduler, sweeps usecase.ISweepUseCase, overdueSpec, reminderSpec string) error {
	if err := s.Register(JobUpdateOverdue, "Update Overdue Invoices", overdueSpec, func(ctx context.Context) error {
		res, err := sweeps.SweepOverdue(ctx, nil)
		if err != nil {
			return err
		}
		log.Ctx(ctx).Info().
			Int("entities", res.EntitiesProcessed).
			Int("updated", res.Updated).
			Int("skipped", res.Skipped).
			Int("failed_entities", res.FailedEntities).
			Msg("[scheduler][job] overdue sweep finished")
		return nil
	}); err != nil {
		return err
	}

	return s.Register(JobPaymentReminders, "Check and Send Payment Reminders", reminderSpec, func(ctx context.Context) error {
		res, err := sweeps.SendReminders(ctx)
		if err != nil {
			return err
		}
		log.Ctx(ctx).Info().
			Int("entities", res.EntitiesProcessed).
			Int("first_sent", res.FirstSent).
			Int("final_sent", res.FinalSent).
			Int("failed_entities", res.FailedEntities).
			Msg("[scheduler][job] reminder check finished")
		return nil
	})
}
