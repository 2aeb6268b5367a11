package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"voice_billing/internal/auth"
	"voice_billing/internal/domain/entities"
	"voice_billing/internal/usecase/interfaces"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

const (
	noteInvoiceID        = "invoice_id"
	noteCompanyID        = "company_id"
	noteTenantID         = "tenant_id"
	notePaymentCompanyID = "payment_company_id"

	razorpayEventCaptured = "payment.captured"
	stripeEventCompleted  = "checkout.session.completed"
	mercadoPagoApproved   = "approved"
)

// CheckoutResult is what the payment page needs to open a processor checkout.
type CheckoutResult struct {
	Processor   string `json:"processor"`
	InvoiceID   string `json:"invoice_id"`
	OrderID     string `json:"order_id"`
	CheckoutURL string `json:"checkout_url,omitempty"`
	KeyID       string `json:"key_id,omitempty"`
	AmountMinor int64  `json:"amount"`
	Currency    string `json:"currency"`
}

type VerifyPaymentCommand struct {
	Token     string
	PaymentID string
	OrderID   string
	Signature string
}

type MercadoPagoNotification struct {
	Type      string
	DataID    string
	RequestID string
	Signature string
}

type WebhookResult struct {
	Outcome   Outcome `json:"status"`
	Event     string  `json:"event,omitempty"`
	InvoiceID string  `json:"invoice_id,omitempty"`
}

// IPaymentUseCase exposes checkout creation and both confirmation ingresses:
// the client-driven verify call and the processor webhooks.
type IPaymentUseCase interface {
	CreateRazorpayOrder(ctx context.Context, token string) (CheckoutResult, error)
	CreateStripeSession(ctx context.Context, token string) (CheckoutResult, error)
	CreateMercadoPagoPreference(ctx context.Context, token string) (CheckoutResult, error)
	VerifyRazorpayPayment(ctx context.Context, cmd VerifyPaymentCommand) (ConfirmResult, error)
	HandleRazorpayWebhook(ctx context.Context, body []byte, signature string) (WebhookResult, error)
	HandleStripeWebhook(ctx context.Context, body []byte, signature string) (WebhookResult, error)
	HandleMercadoPagoWebhook(ctx context.Context, n MercadoPagoNotification) (WebhookResult, error)
}

type PaymentUseCase struct {
	invoices    interfaces.IInvoiceRepository
	profiles    interfaces.IEntityRepository
	tokens      interfaces.ITokenManager
	vault       interfaces.ICredentialVault
	razorpay    interfaces.IRazorpayGateway
	stripe      interfaces.IStripeGateway
	mercadoPago interfaces.IMercadoPagoGateway
	reconciler  *Reconciler
	settings    Settings
}

var _ IPaymentUseCase = (*PaymentUseCase)(nil)

type PaymentGateways struct {
	Razorpay    interfaces.IRazorpayGateway
	Stripe      interfaces.IStripeGateway
	MercadoPago interfaces.IMercadoPagoGateway
}

func NewPaymentUseCase(
	invoices interfaces.IInvoiceRepository,
	profiles interfaces.IEntityRepository,
	tokens interfaces.ITokenManager,
	vault interfaces.ICredentialVault,
	gateways PaymentGateways,
	reconciler *Reconciler,
	settings Settings,
) *PaymentUseCase {
	return &PaymentUseCase{
		invoices:    invoices,
		profiles:    profiles,
		tokens:      tokens,
		vault:       vault,
		razorpay:    gateways.Razorpay,
		stripe:      gateways.Stripe,
		mercadoPago: gateways.MercadoPago,
		reconciler:  reconciler,
		settings:    settings,
	}
}

func (u *PaymentUseCase) CreateRazorpayOrder(ctx context.Context, token string) (CheckoutResult, error) {
	if u.razorpay == nil {
		return CheckoutResult{}, ErrProcessorNotConfigured
	}
	claims, inv, err := u.payableInvoice(ctx, token)
	if err != nil {
		return CheckoutResult{}, err
	}
	creds, err := u.razorpayCredentials(ctx, claims.CredentialCompanyID())
	if err != nil {
		return CheckoutResult{}, err
	}

	order, err := u.razorpay.CreateOrder(ctx, creds, interfaces.RazorpayOrderRequest{
		AmountPaise: minorUnits(inv.Total),
		Currency:    currencyOf(inv),
		Receipt:     inv.ID,
		Notes:       paymentNotes(claims),
	})
	if err != nil {
		log.Ctx(ctx).Error().Str("invoice_id", inv.ID).Err(err).Msg("[payment][usecase] razorpay order failed")
		return CheckoutResult{}, classifyGatewayError(err)
	}
	log.Ctx(ctx).Info().Str("invoice_id", inv.ID).Str("order_id", order.ID).Msg("[payment][usecase] razorpay order created")

	return CheckoutResult{
		Processor:   "razorpay",
		InvoiceID:   inv.ID,
		OrderID:     order.ID,
		KeyID:       creds.KeyID,
		AmountMinor: order.AmountPaise,
		Currency:    order.Currency,
	}, nil
}

func (u *PaymentUseCase) CreateStripeSession(ctx context.Context, token string) (CheckoutResult, error) {
	if u.stripe == nil {
		return CheckoutResult{}, ErrProcessorNotConfigured
	}
	claims, inv, err := u.payableInvoice(ctx, token)
	if err != nil {
		return CheckoutResult{}, err
	}

	session, err := u.stripe.CreateCheckoutSession(ctx, u.checkoutRequest(inv, claims, token))
	if err != nil {
		log.Ctx(ctx).Error().Str("invoice_id", inv.ID).Err(err).Msg("[payment][usecase] stripe session failed")
		return CheckoutResult{}, classifyGatewayError(err)
	}
	log.Ctx(ctx).Info().Str("invoice_id", inv.ID).Str("session_id", session.ID).Msg("[payment][usecase] stripe session created")

	return CheckoutResult{
		Processor:   "stripe",
		InvoiceID:   inv.ID,
		OrderID:     session.ID,
		CheckoutURL: session.URL,
		AmountMinor: minorUnits(inv.Total),
		Currency:    currencyOf(inv),
	}, nil
}

func (u *PaymentUseCase) CreateMercadoPagoPreference(ctx context.Context, token string) (CheckoutResult, error) {
	if u.mercadoPago == nil {
		return CheckoutResult{}, ErrProcessorNotConfigured
	}
	claims, inv, err := u.payableInvoice(ctx, token)
	if err != nil {
		return CheckoutResult{}, err
	}

	pref, err := u.mercadoPago.CreatePreference(ctx, u.checkoutRequest(inv, claims, token))
	if err != nil {
		log.Ctx(ctx).Error().Str("invoice_id", inv.ID).Err(err).Msg("[payment][usecase] mercado pago preference failed")
		return CheckoutResult{}, classifyGatewayError(err)
	}
	log.Ctx(ctx).Info().Str("invoice_id", inv.ID).Str("preference_id", pref.ID).Msg("[payment][usecase] mercado pago preference created")

	return CheckoutResult{
		Processor:   "mercadopago",
		InvoiceID:   inv.ID,
		OrderID:     pref.ID,
		CheckoutURL: pref.URL,
		AmountMinor: minorUnits(inv.Total),
		Currency:    currencyOf(inv),
	}, nil
}

// VerifyRazorpayPayment is the client-driven ingress: the payment page posts the
// triple Razorpay handed it after checkout.
func (u *PaymentUseCase) VerifyRazorpayPayment(ctx context.Context, cmd VerifyPaymentCommand) (ConfirmResult, error) {
	if u.razorpay == nil {
		return ConfirmResult{}, ErrProcessorNotConfigured
	}
	claims, err := u.tokens.Verify(cmd.Token, u.settings.now())
	if err != nil {
		return ConfirmResult{}, ErrInvalidToken
	}
	target, err := entities.NewBillingTarget(claims.CompanyID, claims.TenantID)
	if err != nil {
		return ConfirmResult{}, ErrInvalidToken
	}
	if strings.TrimSpace(cmd.PaymentID) == "" || strings.TrimSpace(cmd.OrderID) == "" || strings.TrimSpace(cmd.Signature) == "" {
		return ConfirmResult{}, ErrSignatureMismatch
	}

	return u.reconciler.Confirm(ctx, ConfirmCommand{
		Target:    target,
		InvoiceID: claims.InvoiceID,
		Confirmation: entities.PaymentConfirmation{
			PaymentID: cmd.PaymentID,
			OrderID:   cmd.OrderID,
			Signature: cmd.Signature,
			Mode:      "razorpay",
			Source:    entities.PaymentSourceRazorpayVerify,
		},
		Verify: func(ctx context.Context) error {
			creds, err := u.razorpayCredentials(ctx, claims.CredentialCompanyID())
			if err != nil {
				return err
			}
			if !u.razorpay.VerifyPaymentSignature(cmd.OrderID, cmd.PaymentID, cmd.Signature, creds.KeySecret) {
				return ErrSignatureMismatch
			}
			return nil
		},
	})
}

type razorpayWebhookEvent struct {
	Event   string `json:"event"`
	Payload struct {
		Payment struct {
			Entity struct {
				ID      string          `json:"id"`
				OrderID string          `json:"order_id"`
				Method  string          `json:"method"`
				Notes   json.RawMessage `json:"notes"`
			} `json:"entity"`
		} `json:"payment"`
	} `json:"payload"`
}

// HandleRazorpayWebhook is the processor-driven ingress. The per-entity secret
// is located from the notes before the body signature can be checked.
func (u *PaymentUseCase) HandleRazorpayWebhook(ctx context.Context, body []byte, signature string) (WebhookResult, error) {
	if u.razorpay == nil {
		return WebhookResult{}, ErrProcessorNotConfigured
	}
	var ev razorpayWebhookEvent
	if err := json.Unmarshal(body, &ev); err != nil {
		return WebhookResult{}, fmt.Errorf("%w: %v", ErrWebhookPayload, err)
	}
	entity := ev.Payload.Payment.Entity
	notes := decodeNotes(entity.Notes)

	companyID := notes[noteCompanyID]
	if companyID == "" {
		return WebhookResult{}, fmt.Errorf("%w: company_id missing from notes", ErrWebhookPayload)
	}
	credCompany := companyID
	if pc := notes[notePaymentCompanyID]; pc != "" {
		credCompany = pc
	}

	secret, err := u.razorpayWebhookSecret(ctx, credCompany)
	if err != nil {
		return WebhookResult{}, err
	}
	if !u.razorpay.VerifyWebhookSignature(body, signature, secret) {
		log.Ctx(ctx).Warn().Str("company_id", credCompany).Msg("[payment][webhook] razorpay signature mismatch")
		return WebhookResult{}, ErrWebhookSignature
	}

	if ev.Event != razorpayEventCaptured {
		log.Ctx(ctx).Info().Str("event", ev.Event).Msg("[payment][webhook] razorpay event ignored")
		return WebhookResult{Outcome: OutcomeIgnored, Event: ev.Event}, nil
	}

	target, err := entities.NewBillingTarget(companyID, notes[noteTenantID])
	if err != nil || notes[noteInvoiceID] == "" {
		return WebhookResult{}, fmt.Errorf("%w: invoice identifiers missing from notes", ErrWebhookPayload)
	}

	res, err := u.reconciler.Confirm(ctx, ConfirmCommand{
		Target:    target,
		InvoiceID: notes[noteInvoiceID],
		Confirmation: entities.PaymentConfirmation{
			PaymentID: entity.ID,
			OrderID:   entity.OrderID,
			Mode:      firstNonEmpty(entity.Method, "razorpay"),
			Source:    entities.PaymentSourceRazorpayWebhook,
		},
	})
	if err != nil {
		return WebhookResult{}, err
	}
	return WebhookResult{Outcome: res.Outcome, Event: ev.Event, InvoiceID: notes[noteInvoiceID]}, nil
}

func (u *PaymentUseCase) HandleStripeWebhook(ctx context.Context, body []byte, signature string) (WebhookResult, error) {
	if u.stripe == nil {
		return WebhookResult{}, ErrProcessorNotConfigured
	}
	ev, err := u.stripe.ParseWebhook(body, signature)
	if err != nil {
		log.Ctx(ctx).Warn().Err(err).Msg("[payment][webhook] stripe event rejected")
		return WebhookResult{}, fmt.Errorf("%w: %v", ErrWebhookSignature, err)
	}
	if ev.EventType != stripeEventCompleted || !ev.Paid {
		return WebhookResult{Outcome: OutcomeIgnored, Event: ev.EventType}, nil
	}
	return u.confirmFromMetadata(ctx, ev, entities.PaymentSourceStripeWebhook, "stripe")
}

func (u *PaymentUseCase) HandleMercadoPagoWebhook(ctx context.Context, n MercadoPagoNotification) (WebhookResult, error) {
	if u.mercadoPago == nil {
		return WebhookResult{}, ErrProcessorNotConfigured
	}
	if err := u.mercadoPago.VerifyWebhook(n.DataID, n.RequestID, n.Signature); err != nil {
		log.Ctx(ctx).Warn().Err(err).Msg("[payment][webhook] mercado pago signature rejected")
		return WebhookResult{}, fmt.Errorf("%w: %v", ErrWebhookSignature, err)
	}
	if n.Type != "payment" || strings.TrimSpace(n.DataID) == "" {
		return WebhookResult{Outcome: OutcomeIgnored, Event: n.Type}, nil
	}

	ev, err := u.mercadoPago.GetPayment(ctx, n.DataID)
	if err != nil {
		return WebhookResult{}, classifyGatewayError(err)
	}
	if ev.EventType != mercadoPagoApproved {
		return WebhookResult{Outcome: OutcomeIgnored, Event: ev.EventType}, nil
	}
	return u.confirmFromMetadata(ctx, ev, entities.PaymentSourceMercadoPagoWebhook, "mercadopago")
}

func (u *PaymentUseCase) confirmFromMetadata(ctx context.Context, ev interfaces.CheckoutCompleted, source entities.PaymentSource, mode string) (WebhookResult, error) {
	target, err := entities.NewBillingTarget(ev.Metadata[noteCompanyID], ev.Metadata[noteTenantID])
	invoiceID := ev.Metadata[noteInvoiceID]
	if err != nil || invoiceID == "" {
		return WebhookResult{}, fmt.Errorf("%w: invoice identifiers missing from metadata", ErrWebhookPayload)
	}

	res, err := u.reconciler.Confirm(ctx, ConfirmCommand{
		Target:    target,
		InvoiceID: invoiceID,
		Confirmation: entities.PaymentConfirmation{
			PaymentID: ev.PaymentID,
			OrderID:   ev.OrderID,
			Mode:      mode,
			Source:    source,
			PaidAt:    ev.PaidAt,
		},
	})
	if err != nil {
		return WebhookResult{}, err
	}
	return WebhookResult{Outcome: res.Outcome, Event: ev.EventType, InvoiceID: invoiceID}, nil
}

// payableInvoice resolves a token into its invoice and rejects settled ones.
func (u *PaymentUseCase) payableInvoice(ctx context.Context, token string) (auth.InvoiceClaims, entities.Invoice, error) {
	claims, err := u.tokens.Verify(token, u.settings.now())
	if err != nil {
		log.Ctx(ctx).Warn().Err(err).Msg("[payment][usecase] token rejected")
		return auth.InvoiceClaims{}, entities.Invoice{}, ErrInvalidToken
	}
	target, err := entities.NewBillingTarget(claims.CompanyID, claims.TenantID)
	if err != nil {
		return auth.InvoiceClaims{}, entities.Invoice{}, ErrInvalidToken
	}
	inv, err := u.invoices.GetByID(ctx, target, claims.InvoiceID)
	if err != nil {
		return auth.InvoiceClaims{}, entities.Invoice{}, err
	}
	if !inv.Exists() {
		return auth.InvoiceClaims{}, entities.Invoice{}, ErrInvoiceNotFound
	}
	if inv.IsSettled() {
		return auth.InvoiceClaims{}, entities.Invoice{}, ErrInvoiceAlreadyPaid
	}
	return claims, inv, nil
}

func (u *PaymentUseCase) checkoutRequest(inv entities.Invoice, claims auth.InvoiceClaims, token string) interfaces.CheckoutRequest {
	returnURL := u.settings.CheckoutReturnURL
	if returnURL == "" {
		returnURL = u.settings.paymentLink(token)
	}
	return interfaces.CheckoutRequest{
		InvoiceID:     inv.ID,
		Description:   fmt.Sprintf("Invoice %s (%s)", inv.ID, inv.BillingPeriod.Label()),
		Currency:      currencyOf(inv),
		AmountMinor:   minorUnits(inv.Total),
		CustomerEmail: inv.BilledTo.Email,
		SuccessURL:    returnURL,
		CancelURL:     returnURL,
		Metadata:      paymentNotes(claims),
	}
}

func (u *PaymentUseCase) razorpayCredentials(ctx context.Context, companyID string) (interfaces.RazorpayCredentials, error) {
	profile, err := u.profiles.GetProfile(ctx, entities.TopLevelEntity{Company: companyID})
	if err != nil {
		return interfaces.RazorpayCredentials{}, err
	}
	if u.vault == nil || !profile.Exists() || !profile.Razorpay.Configured() {
		return interfaces.RazorpayCredentials{}, fmt.Errorf("%w: company %s", ErrCredentialsUnavailable, companyID)
	}
	secret, err := u.vault.Decrypt(profile.Razorpay.EncryptedKeySecret)
	if err != nil || secret == "" {
		log.Ctx(ctx).Error().Str("company_id", companyID).Err(err).Msg("[payment][usecase] key secret decrypt failed")
		return interfaces.RazorpayCredentials{}, fmt.Errorf("%w: company %s", ErrCredentialsUnavailable, companyID)
	}
	return interfaces.RazorpayCredentials{KeyID: profile.Razorpay.KeyID, KeySecret: secret}, nil
}

// razorpayWebhookSecret prefers a dedicated webhook secret and falls back to
// the key secret.
func (u *PaymentUseCase) razorpayWebhookSecret(ctx context.Context, companyID string) (string, error) {
	profile, err := u.profiles.GetProfile(ctx, entities.TopLevelEntity{Company: companyID})
	if err != nil {
		return "", err
	}
	enc := profile.Razorpay.EncryptedWebhookSecret
	if enc == "" {
		enc = profile.Razorpay.EncryptedKeySecret
	}
	if u.vault == nil || !profile.Exists() || enc == "" {
		return "", fmt.Errorf("%w: company %s", ErrWebhookSecretUnavailable, companyID)
	}
	secret, err := u.vault.Decrypt(enc)
	if err != nil || secret == "" {
		log.Ctx(ctx).Error().Str("company_id", companyID).Err(err).Msg("[payment][webhook] secret decrypt failed")
		return "", fmt.Errorf("%w: company %s", ErrWebhookSecretUnavailable, companyID)
	}
	return secret, nil
}

func paymentNotes(claims auth.InvoiceClaims) map[string]string {
	tenant := claims.TenantID
	if tenant == "" {
		tenant = entities.DefaultTenantID
	}
	notes := map[string]string{
		noteInvoiceID: claims.InvoiceID,
		noteCompanyID: claims.CompanyID,
		noteTenantID:  tenant,
	}
	if claims.PaymentCompanyID != "" {
		notes[notePaymentCompanyID] = claims.PaymentCompanyID
	}
	return notes
}

// decodeNotes accepts Razorpay's notes object; an empty notes field arrives as [].
func decodeNotes(raw json.RawMessage) map[string]string {
	out := map[string]string{}
	var m map[string]any
	if err := json.Unmarshal(raw, &m); err != nil {
		return out
	}
	for k, v := range m {
		if s, ok := v.(string); ok {
			out[k] = s
		} else if v != nil {
			out[k] = fmt.Sprint(v)
		}
	}
	return out
}

func minorUnits(amount decimal.Decimal) int64 {
	return amount.Shift(2).Round(0).IntPart()
}

func currencyOf(inv entities.Invoice) string {
	if inv.Currency == "" {
		return "INR"
	}
	return strings.ToUpper(inv.Currency)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
