package bootstrap

import (
	"context"
	"testing"
	"time"

	"voice_billing/internal/config"
	"voice_billing/internal/domain/billing"
	"voice_billing/internal/infrastructure/notification"
	"voice_billing/internal/scheduler"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/require"
)

func memoryConfig() config.Config {
	return config.Config{
		App:     config.AppConfig{Env: "test", StoreDriver: "memory"},
		HTTP:    config.HTTPConfig{Port: 8080},
		Dynamo:  config.DynamoConfig{Table: "voice_billing"},
		Billing: config.BillingConfig{Timezone: "UTC", RoundingPolicy: "nearest", DueAfter: 168 * time.Hour, FirstReminder: 72 * time.Hour, SellerName: "Voice Agents Pvt Ltd"},
		Token:   config.TokenConfig{Secret: "secret", TTL: time.Hour},
		Scheduler: config.SchedulerConfig{
			OverdueCron:  "0 0 * * *",
			ReminderCron: "0 9 * * *",
			LockTTL:      time.Minute,
		},
	}
}

func TestNew_MemoryStore(t *testing.T) {
	c, err := New(context.Background(), memoryConfig())
	require.NoError(t, err)
	defer c.Close()

	require.NotNil(t, c.InvoiceUseCase)
	require.NotNil(t, c.PaymentUseCase)
	require.NotNil(t, c.PaymentHistoryUseCase)
	require.NotNil(t, c.SweepUseCase)

	status := c.Scheduler.Status()
	require.Len(t, status.Jobs, 2)
	ids := []string{status.Jobs[0].ID, status.Jobs[1].ID}
	require.ElementsMatch(t, []string{scheduler.JobUpdateOverdue, scheduler.JobPaymentReminders}, ids)
}

func TestNew_RedisLocks(t *testing.T) {
	mr := miniredis.RunT(t)
	cfg := memoryConfig()
	cfg.Redis.Addr = mr.Addr()

	c, err := New(context.Background(), cfg)
	require.NoError(t, err)
	defer c.Close()
	require.NotNil(t, c.redis)

	require.NoError(t, c.Scheduler.RunNow(context.Background(), scheduler.JobUpdateOverdue))
}

func TestNew_Failures(t *testing.T) {
	t.Run("missing token secret", func(t *testing.T) {
		cfg := memoryConfig()
		cfg.Token.Secret = ""
		_, err := New(context.Background(), cfg)
		require.Error(t, err)
	})

	t.Run("unreachable redis", func(t *testing.T) {
		cfg := memoryConfig()
		cfg.Redis.Addr = "127.0.0.1:1"
		_, err := New(context.Background(), cfg)
		require.Error(t, err)
	})
}

func TestSettings(t *testing.T) {
	s, err := Settings(memoryConfig())
	require.NoError(t, err)
	require.Equal(t, billing.RoundingNearest, s.Rounding)
	require.Equal(t, "Voice Agents Pvt Ltd", s.Seller.Name)

	cfg := memoryConfig()
	cfg.Billing.RoundingPolicy = "up"
	_, err = Settings(cfg)
	require.ErrorIs(t, err, billing.ErrUnknownRoundingPolicy)
}

func TestNewNotifier(t *testing.T) {
	cfg := memoryConfig()
	require.IsType(t, notification.LogNotifier{}, newNotifier(cfg, time.UTC))

	cfg.SMTP = config.SMTPConfig{Host: "smtp.example.com", Port: 587, From: "billing@example.com"}
	require.IsType(t, &notification.Mailer{}, newNotifier(cfg, time.UTC))
}
