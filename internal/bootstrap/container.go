// Package bootstrap builds the service object graph from configuration. The
// HTTP server and the billing CLI share it.
package bootstrap

import (
	"context"
	"fmt"
	"time"

	"voice_billing/internal/adapter/persistence/memory"
	"voice_billing/internal/adapter/persistence/repository"
	"voice_billing/internal/auth"
	"voice_billing/internal/config"
	"voice_billing/internal/domain/billing"
	"voice_billing/internal/domain/entities"
	"voice_billing/internal/infrastructure/database"
	"voice_billing/internal/infrastructure/document"
	"voice_billing/internal/infrastructure/lock"
	"voice_billing/internal/infrastructure/notification"
	"voice_billing/internal/infrastructure/payments"
	"voice_billing/internal/infrastructure/vault"
	"voice_billing/internal/scheduler"
	"voice_billing/internal/usecase"
	"voice_billing/internal/usecase/interfaces"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

type Container struct {
	Config config.Config

	Invoices interfaces.IInvoiceRepository
	Payments interfaces.IPaymentRecordRepository
	Profiles interfaces.IEntityRepository
	Usage    interfaces.IUsageRepository

	InvoiceUseCase        *usecase.InvoiceUseCase
	PaymentUseCase        *usecase.PaymentUseCase
	PaymentHistoryUseCase *usecase.PaymentHistoryUseCase
	SweepUseCase          *usecase.SweepUseCase
	UsageAggregator       *usecase.UsageAggregator

	Scheduler *scheduler.Scheduler

	redis *redis.Client
}

// New wires repositories, collaborators and usecases. Close releases what it
// opened.
func New(ctx context.Context, cfg config.Config) (*Container, error) {
	c := &Container{Config: cfg}

	if err := c.openStore(ctx); err != nil {
		return nil, err
	}

	settings, err := Settings(cfg)
	if err != nil {
		return nil, err
	}

	tokens, err := auth.NewTokenManager(cfg.Token.Secret, cfg.Token.TTL)
	if err != nil {
		return nil, err
	}

	loc := cfg.Billing.Location()
	renderer := document.NewRenderer(loc)
	notifier := newNotifier(cfg, loc)

	var credentials interfaces.ICredentialVault
	if cfg.Razorpay.EncryptionKey != "" {
		v, err := vault.NewVault(cfg.Razorpay.EncryptionKey)
		if err != nil {
			return nil, err
		}
		credentials = v
	} else {
		log.Warn().Msg("[bootstrap] RAZORPAY_ENCRYPTION_KEY not set, razorpay credentials cannot be decrypted")
	}

	c.UsageAggregator = usecase.NewUsageAggregator(c.Usage)
	c.InvoiceUseCase = usecase.NewInvoiceUseCase(c.Invoices, c.Profiles, c.UsageAggregator, renderer, notifier, tokens, settings)
	reconciler := usecase.NewReconciler(c.Invoices, renderer, notifier, settings)
	c.PaymentUseCase = usecase.NewPaymentUseCase(c.Invoices, c.Profiles, tokens, credentials, newGateways(cfg), reconciler, settings)
	c.PaymentHistoryUseCase = usecase.NewPaymentHistoryUseCase(c.Payments)
	c.SweepUseCase = usecase.NewSweepUseCase(c.Invoices, c.Profiles, notifier, tokens, settings)

	if err := c.buildScheduler(ctx, loc); err != nil {
		c.Close()
		return nil, err
	}
	return c, nil
}

// Settings maps the billing section of the configuration onto usecase rules.
func Settings(cfg config.Config) (usecase.Settings, error) {
	rounding, err := billing.ParseRoundingPolicy(cfg.Billing.RoundingPolicy)
	if err != nil {
		return usecase.Settings{}, err
	}
	return usecase.Settings{
		Calendar:      entities.NewCalendar(cfg.Billing.Location()),
		Rounding:      rounding,
		DueAfter:      cfg.Billing.DueAfter,
		FirstReminder: cfg.Billing.FirstReminder,
		Seller: entities.PartyInfo{
			ID:      "seller",
			Name:    cfg.Billing.SellerName,
			GSTIN:   cfg.Billing.SellerGSTIN,
			Address: cfg.Billing.SellerAddress,
			Email:   cfg.Billing.SellerEmail,
		},
		PaymentPageURL:    cfg.Billing.PaymentPageURL,
		CheckoutReturnURL: cfg.Billing.CheckoutReturnURL,
	}, nil
}

func (c *Container) openStore(ctx context.Context) error {
	if c.Config.App.StoreDriver == "memory" {
		log.Warn().Msg("[bootstrap] using in-memory store, data is lost on restart")
		store := memory.NewStore()
		c.Invoices, c.Payments, c.Profiles, c.Usage = store, store, store, store
		return nil
	}

	ddb, err := database.ConnectDynamoDB(ctx, c.Config.Dynamo)
	if err != nil {
		return fmt.Errorf("connect dynamodb: %w", err)
	}
	d := c.Config.Dynamo
	c.Invoices = repository.NewInvoiceDynamoRepository(ddb, d.Table)
	c.Payments = repository.NewPaymentRecordDynamoRepository(ddb, d.Table)
	c.Profiles = repository.NewEntityDynamoRepository(ddb, d.Table)
	c.Usage = repository.NewUsageDynamoRepository(ddb, d.Table, d.CallsTable, d.CallsCompanyIndex)
	log.Info().Str("table", d.Table).Str("calls_table", d.CallsTable).Msg("[bootstrap] dynamodb store ready")
	return nil
}

func newNotifier(cfg config.Config, loc *time.Location) interfaces.INotifier {
	if !cfg.SMTP.Enabled() {
		log.Warn().Msg("[bootstrap] SMTP_HOST not set, billing emails are logged instead of sent")
		return notification.LogNotifier{}
	}
	return notification.NewMailer(notification.SMTPConfig{
		Host:     cfg.SMTP.Host,
		Port:     cfg.SMTP.Port,
		Username: cfg.SMTP.Username,
		Password: cfg.SMTP.Password,
		From:     cfg.SMTP.From,
	}, loc)
}

// newGateways leaves a processor nil when it is not configured; the payment
// usecase answers ErrProcessorNotConfigured for it.
func newGateways(cfg config.Config) usecase.PaymentGateways {
	mock := cfg.App.GatewayMock
	gw := usecase.PaymentGateways{Razorpay: payments.NewRazorpayGateway(mock)}

	if sg, err := payments.NewStripeGateway(cfg.Stripe.SecretKey, cfg.Stripe.WebhookSecret, mock); err != nil {
		log.Warn().Err(err).Msg("[bootstrap] stripe gateway not configured")
	} else {
		gw.Stripe = sg
	}

	if mp, err := payments.NewMercadoPagoGateway(cfg.MercadoPago.AccessToken, cfg.MercadoPago.WebhookSecret, cfg.MercadoPago.NotificationURL, mock); err != nil {
		log.Warn().Err(err).Msg("[bootstrap] mercado pago gateway not configured")
	} else {
		gw.MercadoPago = mp
	}
	return gw
}

func (c *Container) buildScheduler(ctx context.Context, loc *time.Location) error {
	var locker interfaces.ILocker = lock.NoopLocker{}
	if addr := c.Config.Redis.Addr; addr != "" {
		rdb, err := lock.OpenRedis(ctx, addr, c.Config.Redis.Password, c.Config.Redis.DB)
		if err != nil {
			return err
		}
		c.redis = rdb
		locker = lock.NewRedisLocker(rdb)
		log.Info().Str("addr", addr).Msg("[bootstrap] scheduler locks backed by redis")
	}

	c.Scheduler = scheduler.New(loc, locker, c.Config.Scheduler.LockTTL)
	return scheduler.RegisterBillingJobs(c.Scheduler, c.SweepUseCase, c.Config.Scheduler.OverdueCron, c.Config.Scheduler.ReminderCron)
}

func (c *Container) Close() {
	if c.redis != nil {
		if err := c.redis.Close(); err != nil {
			log.Warn().Err(err).Msg("[bootstrap] redis close failed")
		}
	}
}
