package payments

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"voice_billing/internal/usecase/interfaces"

	"github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/payment"
	"github.com/mercadopago/sdk-go/pkg/preference"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

var (
	ErrMissingMercadoPagoAccessToken   = errors.New("missing MERCADOPAGO_ACCESS_TOKEN")
	ErrMercadoPagoGatewayNotConfigured = errors.New("mercado pago gateway not configured")
	ErrMercadoPagoSignature            = errors.New("invalid x-signature")
)

const mercadoPagoApproved = "approved"

type MercadoPagoGateway struct {
	payments        payment.Client
	preferences     preference.Client
	webhookSecret   string
	notificationURL string
	mockMode        bool

	// mock mode remembers preference metadata so GetPayment can echo it back.
	mockMu       sync.Mutex
	mockMetadata map[string]map[string]string
}

var _ interfaces.IMercadoPagoGateway = (*MercadoPagoGateway)(nil)

func NewMercadoPagoGateway(accessToken, webhookSecret, notificationURL string, mockMode bool) (*MercadoPagoGateway, error) {
	if mockMode {
		log.Info().Msg("[payment][mercadopago] mock mode enabled")
		return &MercadoPagoGateway{
			webhookSecret:   webhookSecret,
			notificationURL: notificationURL,
			mockMode:        true,
			mockMetadata:    map[string]map[string]string{},
		}, nil
	}

	if accessToken == "" {
		log.Warn().Msg("[payment][mercadopago] missing MERCADOPAGO_ACCESS_TOKEN")
		return nil, ErrMissingMercadoPagoAccessToken
	}

	cfg, err := config.New(accessToken)
	if err != nil {
		log.Error().Err(err).Msg("[payment][mercadopago] failed creating sdk config")
		return nil, err
	}
	log.Info().Msg("[payment][mercadopago] client initialized")

	return &MercadoPagoGateway{
		payments:        payment.NewClient(cfg),
		preferences:     preference.NewClient(cfg),
		webhookSecret:   webhookSecret,
		notificationURL: notificationURL,
	}, nil
}

func (g *MercadoPagoGateway) CreatePreference(ctx context.Context, req interfaces.CheckoutRequest) (interfaces.CheckoutSession, error) {
	logger := log.Ctx(ctx)

	if g.mockMode {
		id := "pref_mock_" + strconv.FormatInt(time.Now().UTC().UnixNano(), 36)
		g.mockMu.Lock()
		g.mockMetadata[id] = req.Metadata
		g.mockMu.Unlock()
		logger.Info().Str("preference_id", id).Str("invoice_id", req.InvoiceID).Msg("[payment][mercadopago] mock preference created")
		return interfaces.CheckoutSession{ID: id, URL: req.SuccessURL}, nil
	}
	if g.preferences == nil {
		return interfaces.CheckoutSession{}, ErrMercadoPagoGatewayNotConfigured
	}

	metadata := make(map[string]any, len(req.Metadata))
	for k, v := range req.Metadata {
		metadata[k] = v
	}
	unitPrice, _ := decimal.New(req.AmountMinor, -2).Float64()

	pr := preference.Request{
		ExternalReference: req.InvoiceID,
		NotificationURL:   g.notificationURL,
		Metadata:          metadata,
		Items: []preference.ItemRequest{{
			ID:         req.InvoiceID,
			Title:      req.Description,
			Quantity:   1,
			UnitPrice:  unitPrice,
			CurrencyID: strings.ToUpper(req.Currency),
		}},
		BackURLs: &preference.BackURLsRequest{
			Success: req.SuccessURL,
			Failure: req.CancelURL,
			Pending: req.SuccessURL,
		},
	}
	if req.CustomerEmail != "" {
		pr.Payer = &preference.PayerRequest{Email: req.CustomerEmail}
	}

	resp, err := g.preferences.Create(ctx, pr)
	if err != nil {
		logger.Error().Err(err).Str("invoice_id", req.InvoiceID).Msg("[payment][mercadopago] sdk preference create failed")
		return interfaces.CheckoutSession{}, err
	}
	logger.Info().Str("preference_id", resp.ID).Str("invoice_id", req.InvoiceID).Msg("[payment][mercadopago] preference created")
	return interfaces.CheckoutSession{ID: resp.ID, URL: resp.InitPoint}, nil
}

// GetPayment fetches the payment a notification points at. The processor
// status is returned in EventType.
func (g *MercadoPagoGateway) GetPayment(ctx context.Context, paymentID string) (interfaces.CheckoutCompleted, error) {
	if g.mockMode {
		g.mockMu.Lock()
		md := g.mockMetadata[paymentID]
		g.mockMu.Unlock()
		return interfaces.CheckoutCompleted{
			EventType: mercadoPagoApproved,
			PaymentID: paymentID,
			Paid:      true,
			Metadata:  md,
			PaidAt:    time.Now().UTC(),
		}, nil
	}
	if g.payments == nil {
		return interfaces.CheckoutCompleted{}, ErrMercadoPagoGatewayNotConfigured
	}

	id, err := strconv.Atoi(strings.TrimSpace(paymentID))
	if err != nil {
		return interfaces.CheckoutCompleted{}, fmt.Errorf("bad request: payment id %q is not numeric", paymentID)
	}
	resp, err := g.payments.Get(ctx, id)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Int("payment_id", id).Msg("[payment][mercadopago] sdk get failed")
		return interfaces.CheckoutCompleted{}, err
	}

	out := interfaces.CheckoutCompleted{
		EventType: resp.Status,
		PaymentID: strconv.Itoa(resp.ID),
		OrderID:   resp.ExternalReference,
		Paid:      resp.Status == mercadoPagoApproved,
		Metadata:  stringMetadata(resp.Metadata),
	}
	if !resp.DateApproved.IsZero() {
		out.PaidAt = resp.DateApproved.UTC()
	}
	return out, nil
}

// VerifyWebhook checks the x-signature header ("ts=<unix>,v1=<hex>") against
// the manifest id:<data.id>;request-id:<x-request-id>;ts:<ts>;
func (g *MercadoPagoGateway) VerifyWebhook(dataID, requestID, signatureHeader string) error {
	if g.webhookSecret == "" {
		if g.mockMode {
			return nil
		}
		return fmt.Errorf("%w: webhook secret not configured", ErrMercadoPagoSignature)
	}

	ts, v1 := parseMercadoPagoSignature(signatureHeader)
	if ts == "" || v1 == "" {
		return fmt.Errorf("%w: malformed header", ErrMercadoPagoSignature)
	}

	expected := hmacSHA256Hex([]byte(g.webhookSecret), []byte(MercadoPagoManifest(dataID, requestID, ts)))
	if !equalHex(expected, v1) {
		return ErrMercadoPagoSignature
	}
	return nil
}

// MercadoPagoManifest builds the signed template. Alphanumeric ids are
// lower-cased as the processor does before signing.
func MercadoPagoManifest(dataID, requestID, ts string) string {
	var b strings.Builder
	if dataID != "" {
		b.WriteString("id:" + strings.ToLower(dataID) + ";")
	}
	if requestID != "" {
		b.WriteString("request-id:" + requestID + ";")
	}
	b.WriteString("ts:" + ts + ";")
	return b.String()
}

func parseMercadoPagoSignature(header string) (ts, v1 string) {
	for _, part := range strings.Split(header, ",") {
		k, v, ok := strings.Cut(strings.TrimSpace(part), "=")
		if !ok {
			continue
		}
		switch strings.TrimSpace(k) {
		case "ts":
			ts = strings.TrimSpace(v)
		case "v1":
			v1 = strings.TrimSpace(v)
		}
	}
	return ts, v1
}

func stringMetadata(in map[string]any) map[string]string {
	out := make(map[string]string, len(in))
	for k, v := range in {
		switch t := v.(type) {
		case string:
			out[k] = t
		case nil:
		default:
			out[k] = fmt.Sprint(t)
		}
	}
	return out
}
