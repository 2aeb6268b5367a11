package usecase

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"voice_billing/internal/adapter/persistence/memory"
	"voice_billing/internal/auth"
	"voice_billing/internal/domain/entities"
	"voice_billing/internal/infrastructure/payments"
	"voice_billing/internal/usecase/interfaces"
	mock_interfaces "voice_billing/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

const (
	testKeySecret     = "key-secret"
	testWebhookSecret = "hook-secret"
)

type paymentFixture struct {
	store    *memory.Store
	tokens   *auth.TokenManager
	renderer *mock_interfaces.MockIDocumentRenderer
	notifier *mock_interfaces.MockINotifier
	stripe   *mock_interfaces.MockIStripeGateway
	mp       *mock_interfaces.MockIMercadoPagoGateway
	uc       *PaymentUseCase
	invoice  entities.Invoice
	token    string
}

func sign(secret, msg string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(msg))
	return hex.EncodeToString(mac.Sum(nil))
}

func razorpayCapturedBody(event, invoiceID string) []byte {
	return []byte(fmt.Sprintf(`{"event":%q,"payload":{"payment":{"entity":{"id":"pay_1","order_id":"order_1","method":"upi","notes":{"invoice_id":%q,"company_id":"acme","tenant_id":"default"}}}}}`, event, invoiceID))
}

func newPaymentFixture(t *testing.T, ctrl *gomock.Controller, now time.Time, razorpay interfaces.IRazorpayGateway) *paymentFixture {
	t.Helper()
	store := memory.NewStore()
	seedProfile(t, store, entities.EntityProfile{
		CompanyID: "acme",
		Party:     entities.PartyInfo{Name: "Acme Corp", Email: "billing@acme.test"},
		Rates:     testRates(),
		Razorpay:  entities.RazorpayCredentials{KeyID: "rzp_test_acme", EncryptedKeySecret: "enc-key", EncryptedWebhookSecret: "enc-hook"},
	})
	seedProfile(t, store, entities.EntityProfile{
		CompanyID: "payco",
		Razorpay:  entities.RazorpayCredentials{KeyID: "rzp_test_payco", EncryptedKeySecret: "enc-payco"},
	})

	target := entities.TopLevelEntity{Company: "acme"}
	inv := pendingInvoice(target, "billing@acme.test")
	store.PutInvoice(inv)

	vault := mock_interfaces.NewMockICredentialVault(ctrl)
	vault.EXPECT().Decrypt(gomock.Any()).DoAndReturn(func(c string) (string, error) {
		switch c {
		case "enc-key":
			return testKeySecret, nil
		case "enc-hook":
			return testWebhookSecret, nil
		case "enc-payco":
			return "payco-secret", nil
		}
		return "", errors.New("bad ciphertext")
	}).AnyTimes()

	f := &paymentFixture{
		store:    store,
		tokens:   newTestTokens(t),
		renderer: mock_interfaces.NewMockIDocumentRenderer(ctrl),
		notifier: mock_interfaces.NewMockINotifier(ctrl),
		stripe:   mock_interfaces.NewMockIStripeGateway(ctrl),
		mp:       mock_interfaces.NewMockIMercadoPagoGateway(ctrl),
		invoice:  inv,
	}
	settings := testSettings(now)
	reconciler := NewReconciler(store, f.renderer, f.notifier, settings)
	f.uc = NewPaymentUseCase(store, store, f.tokens, vault, PaymentGateways{
		Razorpay:    razorpay,
		Stripe:      f.stripe,
		MercadoPago: f.mp,
	}, reconciler, settings)

	token, err := f.tokens.Issue(now, authClaims("acme", "", inv.ID))
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}
	f.token = token
	return f
}

func (f *paymentFixture) expectOneReceipt() {
	f.renderer.EXPECT().ReceiptPDF(gomock.Any(), gomock.Any()).Return([]byte("%PDF"), nil).Times(1)
	f.notifier.EXPECT().SendReceipt(gomock.Any(), gomock.Any()).Return(nil).Times(1)
}

func (f *paymentFixture) verifyCommand() VerifyPaymentCommand {
	return VerifyPaymentCommand{
		Token:     f.token,
		PaymentID: "pay_1",
		OrderID:   "order_1",
		Signature: sign(testKeySecret, "order_1|pay_1"),
	}
}

func (f *paymentFixture) stored(t *testing.T) (entities.Invoice, entities.PaymentRecord) {
	t.Helper()
	ctx := context.Background()
	inv, err := f.store.GetByID(ctx, f.invoice.Target(), f.invoice.ID)
	if err != nil {
		t.Fatalf("get invoice: %v", err)
	}
	rec, err := f.store.GetByInvoiceNumber(ctx, f.invoice.Target(), f.invoice.ID)
	if err != nil {
		t.Fatalf("get record: %v", err)
	}
	return inv, rec
}

func TestPaymentUseCase_DualIngress(t *testing.T) {
	ctx := context.Background()
	body := razorpayCapturedBody("payment.captured", "ACM092025")

	t.Run("verify then webhook settles once", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newPaymentFixture(t, ctrl, testNow, payments.NewRazorpayGateway(false))
		f.expectOneReceipt()

		res, err := f.uc.VerifyRazorpayPayment(ctx, f.verifyCommand())
		if err != nil {
			t.Fatalf("verify: %v", err)
		}
		if res.Outcome != OutcomeSuccess || res.Invoice.PaymentStatus != entities.PaymentStatusPaid {
			t.Fatalf("unexpected verify result: %s %s", res.Outcome, res.Invoice.PaymentStatus)
		}

		wh, err := f.uc.HandleRazorpayWebhook(ctx, body, sign(testWebhookSecret, string(body)))
		if err != nil {
			t.Fatalf("webhook: %v", err)
		}
		if wh.Outcome != OutcomeAlreadyProcessed {
			t.Fatalf("expected already_processed, got %s", wh.Outcome)
		}

		inv, rec := f.stored(t)
		if inv.PaymentStatus != entities.PaymentStatusPaid || inv.PaymentID != "pay_1" {
			t.Fatalf("unexpected stored invoice: %s %s", inv.PaymentStatus, inv.PaymentID)
		}
		if rec.ID != "REC_ACM092025" || rec.Source != entities.PaymentSourceRazorpayVerify {
			t.Fatalf("unexpected record: %+v", rec)
		}
	})

	t.Run("webhook then verify settles once", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newPaymentFixture(t, ctrl, testNow, payments.NewRazorpayGateway(false))
		f.expectOneReceipt()

		wh, err := f.uc.HandleRazorpayWebhook(ctx, body, sign(testWebhookSecret, string(body)))
		if err != nil {
			t.Fatalf("webhook: %v", err)
		}
		if wh.Outcome != OutcomeSuccess || wh.InvoiceID != "ACM092025" {
			t.Fatalf("unexpected webhook result: %+v", wh)
		}

		res, err := f.uc.VerifyRazorpayPayment(ctx, f.verifyCommand())
		if err != nil {
			t.Fatalf("verify: %v", err)
		}
		if res.Outcome != OutcomeAlreadyProcessed {
			t.Fatalf("expected already_processed, got %s", res.Outcome)
		}

		_, rec := f.stored(t)
		if rec.Source != entities.PaymentSourceRazorpayWebhook || rec.PaymentMode != "upi" {
			t.Fatalf("unexpected record: %+v", rec)
		}
	})

	t.Run("concurrent confirmations settle once", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newPaymentFixture(t, ctrl, testNow, payments.NewRazorpayGateway(false))
		f.expectOneReceipt()

		var wg sync.WaitGroup
		outcomes := make(chan Outcome, 8)
		for i := 0; i < 4; i++ {
			wg.Add(2)
			go func() {
				defer wg.Done()
				res, err := f.uc.VerifyRazorpayPayment(ctx, f.verifyCommand())
				if err == nil {
					outcomes <- res.Outcome
				}
			}()
			go func() {
				defer wg.Done()
				res, err := f.uc.HandleRazorpayWebhook(ctx, body, sign(testWebhookSecret, string(body)))
				if err == nil {
					outcomes <- res.Outcome
				}
			}()
		}
		wg.Wait()
		close(outcomes)

		successes := 0
		total := 0
		for o := range outcomes {
			total++
			if o == OutcomeSuccess {
				successes++
			}
		}
		if total != 8 || successes != 1 {
			t.Fatalf("expected 8 results with one success, got %d results and %d successes", total, successes)
		}
	})

	t.Run("duplicate webhook", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newPaymentFixture(t, ctrl, testNow, payments.NewRazorpayGateway(false))
		f.expectOneReceipt()

		sig := sign(testWebhookSecret, string(body))
		if _, err := f.uc.HandleRazorpayWebhook(ctx, body, sig); err != nil {
			t.Fatalf("first webhook: %v", err)
		}
		wh, err := f.uc.HandleRazorpayWebhook(ctx, body, sig)
		if err != nil {
			t.Fatalf("second webhook: %v", err)
		}
		if wh.Outcome != OutcomeAlreadyProcessed {
			t.Fatalf("expected already_processed, got %s", wh.Outcome)
		}
	})

	t.Run("payment after the due date", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		late := time.Date(2025, 10, 10, 8, 0, 0, 0, time.UTC)
		f := newPaymentFixture(t, ctrl, late, payments.NewRazorpayGateway(false))
		f.expectOneReceipt()

		res, err := f.uc.VerifyRazorpayPayment(ctx, f.verifyCommand())
		if err != nil {
			t.Fatalf("verify: %v", err)
		}
		if res.Invoice.PaymentStatus != entities.PaymentStatusDuePaid || res.Record.InvoiceStatus != entities.PaymentStatusDuePaid {
			t.Fatalf("expected due_paid, got %s", res.Invoice.PaymentStatus)
		}
	})
}

func TestPaymentUseCase_Rejections(t *testing.T) {
	ctx := context.Background()

	t.Run("tampered verify signature leaves invoice pending", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newPaymentFixture(t, ctrl, testNow, payments.NewRazorpayGateway(false))

		cmd := f.verifyCommand()
		cmd.Signature = sign("wrong", "order_1|pay_1")
		_, err := f.uc.VerifyRazorpayPayment(ctx, cmd)
		if !errors.Is(err, ErrSignatureMismatch) {
			t.Fatalf("expected ErrSignatureMismatch, got %v", err)
		}
		inv, rec := f.stored(t)
		if inv.PaymentStatus != entities.PaymentStatusPending || rec.Exists() {
			t.Fatalf("invoice changed after rejected verify: %s", inv.PaymentStatus)
		}
	})

	t.Run("missing verify fields", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newPaymentFixture(t, ctrl, testNow, payments.NewRazorpayGateway(false))

		cmd := f.verifyCommand()
		cmd.OrderID = ""
		if _, err := f.uc.VerifyRazorpayPayment(ctx, cmd); !errors.Is(err, ErrSignatureMismatch) {
			t.Fatalf("expected ErrSignatureMismatch, got %v", err)
		}
	})

	t.Run("invalid token", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newPaymentFixture(t, ctrl, testNow, payments.NewRazorpayGateway(false))

		cmd := f.verifyCommand()
		cmd.Token = "garbage"
		if _, err := f.uc.VerifyRazorpayPayment(ctx, cmd); !errors.Is(err, ErrInvalidToken) {
			t.Fatalf("expected ErrInvalidToken, got %v", err)
		}
	})

	t.Run("tampered webhook body", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newPaymentFixture(t, ctrl, testNow, payments.NewRazorpayGateway(false))

		body := razorpayCapturedBody("payment.captured", "ACM092025")
		sig := sign(testWebhookSecret, string(body))
		tampered := razorpayCapturedBody("payment.captured", "ACM082025")
		if _, err := f.uc.HandleRazorpayWebhook(ctx, tampered, sig); !errors.Is(err, ErrWebhookSignature) {
			t.Fatalf("expected ErrWebhookSignature, got %v", err)
		}
	})

	t.Run("non-captured event is ignored", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newPaymentFixture(t, ctrl, testNow, payments.NewRazorpayGateway(false))

		body := razorpayCapturedBody("payment.authorized", "ACM092025")
		wh, err := f.uc.HandleRazorpayWebhook(ctx, body, sign(testWebhookSecret, string(body)))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if wh.Outcome != OutcomeIgnored || wh.Event != "payment.authorized" {
			t.Fatalf("unexpected result: %+v", wh)
		}
		inv, _ := f.stored(t)
		if inv.PaymentStatus != entities.PaymentStatusPending {
			t.Fatalf("ignored event changed status to %s", inv.PaymentStatus)
		}
	})

	t.Run("webhook without company in notes", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newPaymentFixture(t, ctrl, testNow, payments.NewRazorpayGateway(false))

		body := []byte(`{"event":"payment.captured","payload":{"payment":{"entity":{"id":"pay_1","notes":[]}}}}`)
		if _, err := f.uc.HandleRazorpayWebhook(ctx, body, "sig"); !errors.Is(err, ErrWebhookPayload) {
			t.Fatalf("expected ErrWebhookPayload, got %v", err)
		}
	})

	t.Run("processor not configured", func(t *testing.T) {
		uc := NewPaymentUseCase(nil, nil, nil, nil, PaymentGateways{}, nil, testSettings(testNow))
		if _, err := uc.CreateStripeSession(ctx, "t"); !errors.Is(err, ErrProcessorNotConfigured) {
			t.Fatalf("expected ErrProcessorNotConfigured, got %v", err)
		}
		if _, err := uc.HandleRazorpayWebhook(ctx, nil, ""); !errors.Is(err, ErrProcessorNotConfigured) {
			t.Fatalf("expected ErrProcessorNotConfigured, got %v", err)
		}
	})
}

func TestPaymentUseCase_CreateRazorpayOrder(t *testing.T) {
	ctx := context.Background()

	t.Run("uses the entity's credentials and notes", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gateway := mock_interfaces.NewMockIRazorpayGateway(ctrl)
		f := newPaymentFixture(t, ctrl, testNow, gateway)

		gateway.EXPECT().CreateOrder(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, creds interfaces.RazorpayCredentials, req interfaces.RazorpayOrderRequest) (interfaces.RazorpayOrder, error) {
				if creds.KeyID != "rzp_test_acme" || creds.KeySecret != testKeySecret {
					t.Fatalf("unexpected credentials: %+v", creds)
				}
				if req.AmountPaise != 118000 || req.Currency != "INR" || req.Receipt != "ACM092025" {
					t.Fatalf("unexpected order request: %+v", req)
				}
				if req.Notes["tenant_id"] != "default" || req.Notes["company_id"] != "acme" {
					t.Fatalf("unexpected notes: %+v", req.Notes)
				}
				return interfaces.RazorpayOrder{ID: "order_1", AmountPaise: req.AmountPaise, Currency: req.Currency}, nil
			})

		res, err := f.uc.CreateRazorpayOrder(ctx, f.token)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.OrderID != "order_1" || res.KeyID != "rzp_test_acme" || res.AmountMinor != 118000 {
			t.Fatalf("unexpected checkout: %+v", res)
		}
	})

	t.Run("payment company credentials", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gateway := mock_interfaces.NewMockIRazorpayGateway(ctrl)
		f := newPaymentFixture(t, ctrl, testNow, gateway)

		claims := authClaims("acme", "", f.invoice.ID)
		claims.PaymentCompanyID = "payco"
		token, _ := f.tokens.Issue(testNow, claims)

		gateway.EXPECT().CreateOrder(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, creds interfaces.RazorpayCredentials, req interfaces.RazorpayOrderRequest) (interfaces.RazorpayOrder, error) {
				if creds.KeyID != "rzp_test_payco" {
					t.Fatalf("expected payco credentials, got %+v", creds)
				}
				if req.Notes["payment_company_id"] != "payco" {
					t.Fatalf("payment company missing from notes: %+v", req.Notes)
				}
				return interfaces.RazorpayOrder{ID: "order_2"}, nil
			})

		if _, err := f.uc.CreateRazorpayOrder(ctx, token); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("settled invoice", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newPaymentFixture(t, ctrl, testNow, mock_interfaces.NewMockIRazorpayGateway(ctrl))
		paid := f.invoice
		paid.PaymentStatus = entities.PaymentStatusPaid
		f.store.PutInvoice(paid)

		if _, err := f.uc.CreateRazorpayOrder(ctx, f.token); !errors.Is(err, ErrInvoiceAlreadyPaid) {
			t.Fatalf("expected ErrInvoiceAlreadyPaid, got %v", err)
		}
	})

	t.Run("gateway unauthorized", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gateway := mock_interfaces.NewMockIRazorpayGateway(ctrl)
		f := newPaymentFixture(t, ctrl, testNow, gateway)
		gateway.EXPECT().CreateOrder(gomock.Any(), gomock.Any(), gomock.Any()).Return(interfaces.RazorpayOrder{}, errors.New("Authentication failed"))

		if _, err := f.uc.CreateRazorpayOrder(ctx, f.token); !errors.Is(err, ErrPaymentGatewayUnauthorized) {
			t.Fatalf("expected ErrPaymentGatewayUnauthorized, got %v", err)
		}
	})
}

func TestPaymentUseCase_HostedCheckouts(t *testing.T) {
	ctx := context.Background()
	metadata := map[string]string{"invoice_id": "ACM092025", "company_id": "acme", "tenant_id": "default"}

	t.Run("stripe session", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newPaymentFixture(t, ctrl, testNow, nil)
		f.stripe.EXPECT().CreateCheckoutSession(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, req interfaces.CheckoutRequest) (interfaces.CheckoutSession, error) {
				if req.AmountMinor != 118000 || req.Metadata["invoice_id"] != "ACM092025" {
					t.Fatalf("unexpected checkout request: %+v", req)
				}
				if req.SuccessURL == "" {
					t.Fatalf("expected a return url")
				}
				return interfaces.CheckoutSession{ID: "cs_1", URL: "https://checkout.stripe.com/cs_1"}, nil
			})

		res, err := f.uc.CreateStripeSession(ctx, f.token)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Processor != "stripe" || res.CheckoutURL == "" {
			t.Fatalf("unexpected checkout: %+v", res)
		}
	})

	t.Run("stripe completed webhook", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newPaymentFixture(t, ctrl, testNow, nil)
		f.expectOneReceipt()
		f.stripe.EXPECT().ParseWebhook(gomock.Any(), "sig").Return(interfaces.CheckoutCompleted{
			EventType: "checkout.session.completed",
			PaymentID: "pi_1",
			OrderID:   "cs_1",
			Paid:      true,
			Metadata:  metadata,
			PaidAt:    testNow,
		}, nil)

		wh, err := f.uc.HandleStripeWebhook(ctx, []byte("{}"), "sig")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if wh.Outcome != OutcomeSuccess {
			t.Fatalf("expected success, got %s", wh.Outcome)
		}
		_, rec := f.stored(t)
		if rec.Source != entities.PaymentSourceStripeWebhook || rec.PaymentID != "pi_1" {
			t.Fatalf("unexpected record: %+v", rec)
		}
	})

	t.Run("stripe bad signature", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newPaymentFixture(t, ctrl, testNow, nil)
		f.stripe.EXPECT().ParseWebhook(gomock.Any(), gomock.Any()).Return(interfaces.CheckoutCompleted{}, errors.New("no valid signature"))

		if _, err := f.uc.HandleStripeWebhook(ctx, []byte("{}"), "bad"); !errors.Is(err, ErrWebhookSignature) {
			t.Fatalf("expected ErrWebhookSignature, got %v", err)
		}
	})

	t.Run("stripe unpaid session is ignored", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newPaymentFixture(t, ctrl, testNow, nil)
		f.stripe.EXPECT().ParseWebhook(gomock.Any(), gomock.Any()).Return(interfaces.CheckoutCompleted{
			EventType: "checkout.session.completed",
			Metadata:  metadata,
		}, nil)

		wh, err := f.uc.HandleStripeWebhook(ctx, []byte("{}"), "sig")
		if err != nil || wh.Outcome != OutcomeIgnored {
			t.Fatalf("expected ignored, got %+v (%v)", wh, err)
		}
	})

	t.Run("mercado pago approved payment", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newPaymentFixture(t, ctrl, testNow, nil)
		f.expectOneReceipt()
		f.mp.EXPECT().VerifyWebhook("123", "req-1", "ts=1,v1=abc").Return(nil)
		f.mp.EXPECT().GetPayment(gomock.Any(), "123").Return(interfaces.CheckoutCompleted{
			EventType: "approved",
			PaymentID: "123",
			Paid:      true,
			Metadata:  metadata,
		}, nil)

		wh, err := f.uc.HandleMercadoPagoWebhook(ctx, MercadoPagoNotification{Type: "payment", DataID: "123", RequestID: "req-1", Signature: "ts=1,v1=abc"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if wh.Outcome != OutcomeSuccess || wh.InvoiceID != "ACM092025" {
			t.Fatalf("unexpected result: %+v", wh)
		}
	})

	t.Run("mercado pago pending payment is ignored", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newPaymentFixture(t, ctrl, testNow, nil)
		f.mp.EXPECT().VerifyWebhook(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		f.mp.EXPECT().GetPayment(gomock.Any(), "123").Return(interfaces.CheckoutCompleted{EventType: "in_process", Metadata: metadata}, nil)

		wh, err := f.uc.HandleMercadoPagoWebhook(ctx, MercadoPagoNotification{Type: "payment", DataID: "123"})
		if err != nil || wh.Outcome != OutcomeIgnored || wh.Event != "in_process" {
			t.Fatalf("expected ignored, got %+v (%v)", wh, err)
		}
	})

	t.Run("mercado pago non-payment topic", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newPaymentFixture(t, ctrl, testNow, nil)
		f.mp.EXPECT().VerifyWebhook(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

		wh, err := f.uc.HandleMercadoPagoWebhook(ctx, MercadoPagoNotification{Type: "merchant_order", DataID: "9"})
		if err != nil || wh.Outcome != OutcomeIgnored {
			t.Fatalf("expected ignored, got %+v (%v)", wh, err)
		}
	})
}
