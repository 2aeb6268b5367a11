package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/spf13/viper"
)

type Config struct {
	App         AppConfig
	HTTP        HTTPConfig
	Dynamo      DynamoConfig
	Billing     BillingConfig
	Token       TokenConfig
	Razorpay    RazorpayConfig
	Stripe      StripeConfig
	MercadoPago MercadoPagoConfig
	SMTP        SMTPConfig
	Redis       RedisConfig
	Scheduler   SchedulerConfig
	Admin       AdminConfig
}

type AppConfig struct {
	Env         string
	LogLevel    string
	StoreDriver string // dynamodb | memory
	GatewayMock bool
}

type HTTPConfig struct {
	Port int
}

func (c HTTPConfig) Addr() string { return fmt.Sprintf(":%d", c.Port) }

type DynamoConfig struct {
	Region            string
	Endpoint          string
	AccessKeyID       string
	SecretAccessKey   string
	Table             string
	CallsTable        string
	CallsCompanyIndex string
}

type BillingConfig struct {
	Timezone          string
	RoundingPolicy    string
	DueAfter          time.Duration
	FirstReminder     time.Duration
	SellerName        string
	SellerGSTIN       string
	SellerAddress     string
	SellerEmail       string
	PaymentPageURL    string
	CheckoutReturnURL string
}

// Location resolves the billing timezone. Validate guarantees it parses.
func (c BillingConfig) Location() *time.Location {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

type TokenConfig struct {
	Secret string
	TTL    time.Duration
}

type RazorpayConfig struct {
	EncryptionKey string
}

type StripeConfig struct {
	SecretKey     string
	WebhookSecret string
}

type MercadoPagoConfig struct {
	AccessToken     string
	WebhookSecret   string
	NotificationURL string
}

type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

func (c SMTPConfig) Enabled() bool { return c.Host != "" }

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

type SchedulerConfig struct {
	Enabled      bool
	RunOnStartup bool
	OverdueCron  string
	ReminderCron string
	LockTTL      time.Duration
}

type AdminConfig struct {
	APIKey string
}

// Load reads configuration from the environment, optionally backed by a .env
// or config.env file in the working directory. Environment variables win.
func Load() (Config, error) {
	v := viper.New()

	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig()

	v.SetConfigName("config")
	v.AddConfigPath("./config")
	_ = v.MergeInConfig()

	v.AutomaticEnv()
	setDefaults(v)

	c := Config{
		App: AppConfig{
			Env:         v.GetString("APP_ENV"),
			LogLevel:    v.GetString("LOG_LEVEL"),
			StoreDriver: strings.ToLower(v.GetString("STORE_DRIVER")),
			GatewayMock: isTruthy(v.GetString("PAYMENT_GATEWAY_MOCK")) || isTruthy(v.GetString("MERCADOPAGO_MOCK")),
		},
		HTTP: HTTPConfig{Port: v.GetInt("HTTP_PORT")},
		Dynamo: DynamoConfig{
			Region:            v.GetString("AWS_REGION"),
			Endpoint:          v.GetString("DYNAMODB_ENDPOINT"),
			AccessKeyID:       v.GetString("AWS_ACCESS_KEY_ID"),
			SecretAccessKey:   v.GetString("AWS_SECRET_ACCESS_KEY"),
			Table:             v.GetString("BILLING_TABLE"),
			CallsTable:        v.GetString("CALLS_TABLE"),
			CallsCompanyIndex: v.GetString("CALLS_COMPANY_INDEX"),
		},
		Billing: BillingConfig{
			Timezone:          v.GetString("BILLING_TIMEZONE"),
			RoundingPolicy:    v.GetString("ROUNDING_POLICY"),
			DueAfter:          v.GetDuration("INVOICE_DUE_AFTER"),
			FirstReminder:     v.GetDuration("FIRST_REMINDER_AFTER"),
			SellerName:        v.GetString("SELLER_NAME"),
			SellerGSTIN:       v.GetString("SELLER_GSTIN"),
			SellerAddress:     v.GetString("SELLER_ADDRESS"),
			SellerEmail:       v.GetString("SELLER_EMAIL"),
			PaymentPageURL:    v.GetString("PAYMENT_PAGE_URL"),
			CheckoutReturnURL: v.GetString("CHECKOUT_RETURN_URL"),
		},
		Token: TokenConfig{
			Secret: v.GetString("INVOICE_TOKEN_SECRET"),
			TTL:    v.GetDuration("INVOICE_TOKEN_TTL"),
		},
		Razorpay: RazorpayConfig{EncryptionKey: v.GetString("RAZORPAY_ENCRYPTION_KEY")},
		Stripe: StripeConfig{
			SecretKey:     v.GetString("STRIPE_SECRET_KEY"),
			WebhookSecret: v.GetString("STRIPE_WEBHOOK_SECRET"),
		},
		MercadoPago: MercadoPagoConfig{
			AccessToken:     v.GetString("MERCADOPAGO_ACCESS_TOKEN"),
			WebhookSecret:   v.GetString("MERCADOPAGO_WEBHOOK_SECRET"),
			NotificationURL: v.GetString("MERCADOPAGO_NOTIFICATION_URL"),
		},
		SMTP: SMTPConfig{
			Host:     v.GetString("SMTP_HOST"),
			Port:     v.GetInt("SMTP_PORT"),
			Username: v.GetString("SMTP_USERNAME"),
			Password: v.GetString("SMTP_PASSWORD"),
			From:     v.GetString("SENDER_EMAIL"),
		},
		Redis: RedisConfig{
			Addr:     v.GetString("REDIS_ADDR"),
			Password: v.GetString("REDIS_PASSWORD"),
			DB:       v.GetInt("REDIS_DB"),
		},
		Scheduler: SchedulerConfig{
			Enabled:      v.GetBool("SCHEDULER_ENABLED"),
			RunOnStartup: v.GetBool("SCHEDULER_RUN_ON_STARTUP"),
			OverdueCron:  v.GetString("OVERDUE_SWEEP_CRON"),
			ReminderCron: v.GetString("REMINDER_CRON"),
			LockTTL:      v.GetDuration("SCHEDULER_LOCK_TTL"),
		},
		Admin: AdminConfig{APIKey: v.GetString("ADMIN_API_KEY")},
	}

	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("APP_ENV", "local")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("STORE_DRIVER", "dynamodb")
	v.SetDefault("HTTP_PORT", 8080)
	v.SetDefault("AWS_REGION", "us-east-1")
	v.SetDefault("BILLING_TABLE", "voice_billing")
	v.SetDefault("CALLS_TABLE", "voice_calls")
	v.SetDefault("CALLS_COMPANY_INDEX", "company_id-received_at-index")
	v.SetDefault("BILLING_TIMEZONE", "Asia/Kolkata")
	v.SetDefault("ROUNDING_POLICY", "none")
	v.SetDefault("INVOICE_DUE_AFTER", "168h")
	v.SetDefault("FIRST_REMINDER_AFTER", "72h")
	v.SetDefault("INVOICE_TOKEN_TTL", "72h")
	v.SetDefault("SMTP_PORT", 587)
	v.SetDefault("SCHEDULER_ENABLED", true)
	v.SetDefault("OVERDUE_SWEEP_CRON", "0 0 * * *")
	v.SetDefault("REMINDER_CRON", "0 9 * * *")
	v.SetDefault("SCHEDULER_LOCK_TTL", "10m")
}

func (c Config) Validate() error {
	var errs []error

	if !isValidEnv(c.App.Env) {
		errs = append(errs, fmt.Errorf("APP_ENV must be one of local, development, staging, production, got %q", c.App.Env))
	}
	if c.App.StoreDriver != "dynamodb" && c.App.StoreDriver != "memory" {
		errs = append(errs, fmt.Errorf("STORE_DRIVER must be dynamodb or memory, got %q", c.App.StoreDriver))
	}
	if c.HTTP.Port <= 0 || c.HTTP.Port > 65535 {
		errs = append(errs, fmt.Errorf("HTTP_PORT must be a valid port, got %d", c.HTTP.Port))
	}
	if c.Dynamo.Table == "" {
		errs = append(errs, errors.New("BILLING_TABLE is required"))
	}
	if _, err := time.LoadLocation(c.Billing.Timezone); err != nil {
		errs = append(errs, fmt.Errorf("BILLING_TIMEZONE is invalid: %v", err))
	}
	switch strings.ToLower(c.Billing.RoundingPolicy) {
	case "none", "nearest":
	default:
		errs = append(errs, fmt.Errorf("ROUNDING_POLICY must be none or nearest, got %q", c.Billing.RoundingPolicy))
	}
	if c.Billing.DueAfter <= 0 {
		errs = append(errs, errors.New("INVOICE_DUE_AFTER must be positive"))
	}
	if c.Token.Secret == "" {
		errs = append(errs, errors.New("INVOICE_TOKEN_SECRET is required"))
	}
	if c.Token.TTL <= 0 {
		errs = append(errs, errors.New("INVOICE_TOKEN_TTL must be positive"))
	}
	if c.IsProduction() && c.App.GatewayMock {
		errs = append(errs, errors.New("PAYMENT_GATEWAY_MOCK must not be enabled in production"))
	}
	if c.IsProduction() && !c.App.GatewayMock {
		if c.Razorpay.EncryptionKey == "" {
			errs = append(errs, errors.New("RAZORPAY_ENCRYPTION_KEY is required in production"))
		}
		if c.Stripe.SecretKey != "" && c.Stripe.WebhookSecret == "" {
			errs = append(errs, errors.New("STRIPE_WEBHOOK_SECRET is required when STRIPE_SECRET_KEY is set"))
		}
	}
	if c.Scheduler.Enabled {
		parser := cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor)
		for key, spec := range map[string]string{"OVERDUE_SWEEP_CRON": c.Scheduler.OverdueCron, "REMINDER_CRON": c.Scheduler.ReminderCron} {
			if _, err := parser.Parse(spec); err != nil {
				errs = append(errs, fmt.Errorf("%s is invalid: %v", key, err))
			}
		}
	}

	return joinErrors(errs)
}

func (c Config) IsProduction() bool {
	return c.App.Env == "production"
}

func isValidEnv(v string) bool {
	switch v {
	case "local", "development", "staging", "production", "test":
		return true
	default:
		return false
	}
}

func isTruthy(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "1", "true", "yes", "on", "mock":
		return true
	}
	return false
}

func joinErrors(errs []error) error {
	if len(errs) == 0 {
		return nil
	}
	if len(errs) == 1 {
		return errs[0]
	}
	var b strings.Builder
	b.WriteString("config errors:\n")
	for _, e := range errs {
		b.WriteString("- ")
		b.WriteString(e.Error())
		b.WriteString("\n")
	}
	return errors.New(strings.TrimSpace(b.String()))
}
