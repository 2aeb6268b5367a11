package config

import (
	"strings"
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("INVOICE_TOKEN_SECRET", "s3cret")
	t.Setenv("APP_ENV", "test")

	c, err := Load()
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if c.HTTP.Port != 8080 {
		t.Fatalf("expected default port, got %d", c.HTTP.Port)
	}
	if c.Billing.DueAfter != 7*24*time.Hour || c.Billing.FirstReminder != 72*time.Hour {
		t.Fatalf("unexpected billing windows: %+v", c.Billing)
	}
	if c.Token.TTL != 72*time.Hour {
		t.Fatalf("expected 72h token ttl, got %v", c.Token.TTL)
	}
	if c.Billing.Location().String() != "Asia/Kolkata" {
		t.Fatalf("unexpected timezone %s", c.Billing.Location())
	}
	if c.Scheduler.OverdueCron != "0 0 * * *" || c.Scheduler.ReminderCron != "0 9 * * *" {
		t.Fatalf("unexpected cron specs: %+v", c.Scheduler)
	}
}

func TestLoad_GatewayMockFlag(t *testing.T) {
	t.Setenv("INVOICE_TOKEN_SECRET", "s3cret")
	t.Setenv("APP_ENV", "test")
	t.Setenv("PAYMENT_GATEWAY_MOCK", "yes")

	c, err := Load()
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if !c.App.GatewayMock {
		t.Fatalf("expected mock mode")
	}
}

func TestValidate_CollectsAllProblems(t *testing.T) {
	c := Config{
		App:       AppConfig{Env: "qa", StoreDriver: "postgres"},
		HTTP:      HTTPConfig{Port: 0},
		Billing:   BillingConfig{Timezone: "Mars/Olympus", RoundingPolicy: "bankers"},
		Scheduler: SchedulerConfig{Enabled: true, OverdueCron: "nope", ReminderCron: "0 9 * * *"},
	}

	err := c.Validate()
	if err == nil {
		t.Fatalf("expected validation errors")
	}
	for _, want := range []string{"APP_ENV", "STORE_DRIVER", "HTTP_PORT", "BILLING_TABLE", "BILLING_TIMEZONE", "ROUNDING_POLICY", "INVOICE_TOKEN_SECRET", "OVERDUE_SWEEP_CRON"} {
		if !strings.Contains(err.Error(), want) {
			t.Fatalf("expected %s in %q", want, err.Error())
		}
	}
}

func TestValidate_GatewayMockInProduction(t *testing.T) {
	base := Config{
		App:      AppConfig{Env: "production", StoreDriver: "dynamodb"},
		HTTP:     HTTPConfig{Port: 8080},
		Dynamo:   DynamoConfig{Table: "billing"},
		Billing:  BillingConfig{Timezone: "UTC", RoundingPolicy: "none", DueAfter: 7 * 24 * time.Hour},
		Token:    TokenConfig{Secret: "s3cret", TTL: time.Hour},
		Razorpay: RazorpayConfig{EncryptionKey: "k"},
	}
	if err := base.Validate(); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	mocked := base
	mocked.App.GatewayMock = true
	err := mocked.Validate()
	if err == nil || !strings.Contains(err.Error(), "PAYMENT_GATEWAY_MOCK") {
		t.Fatalf("expected mock mode to be rejected in production, got %v", err)
	}

	staging := mocked
	staging.App.Env = "staging"
	if err := staging.Validate(); err != nil {
		t.Fatalf("mock mode outside production should pass, got %v", err)
	}
}
