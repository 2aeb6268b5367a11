package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"voice_billing/internal/auth"
	"voice_billing/internal/domain/billing"
	"voice_billing/internal/domain/entities"
	"voice_billing/internal/usecase/interfaces"

	"github.com/rs/zerolog/log"
)

type GenerateInvoiceCommand struct {
	CompanyID string
	TenantID  string
	Month     *int
	Year      *int
	// Send delivers the invoice by email after it is created.
	Send bool
}

type EntityFailure struct {
	Target string `json:"target"`
	Error  string `json:"error"`
}

type BatchResult struct {
	Generated int             `json:"generated"`
	Existing  int             `json:"existing"`
	Failed    int             `json:"failed"`
	Failures  []EntityFailure `json:"failures,omitempty"`
}

// IInvoiceUseCase covers invoice generation, lookup and delivery.
type IInvoiceUseCase interface {
	Generate(ctx context.Context, cmd GenerateInvoiceCommand) (inv entities.Invoice, created bool, err error)
	GetByID(ctx context.Context, target entities.BillingTarget, id string) (entities.Invoice, error)
	GetByToken(ctx context.Context, token string) (entities.Invoice, error)
	Deliver(ctx context.Context, inv entities.Invoice) error
	GenerateForAll(ctx context.Context, month, year *int, send bool) (BatchResult, error)
}

type InvoiceUseCase struct {
	invoices interfaces.IInvoiceRepository
	profiles interfaces.IEntityRepository
	usage    IUsageAggregator
	renderer interfaces.IDocumentRenderer
	notifier interfaces.INotifier
	tokens   interfaces.ITokenManager
	settings Settings
}

var _ IInvoiceUseCase = (*InvoiceUseCase)(nil)

func NewInvoiceUseCase(
	invoices interfaces.IInvoiceRepository,
	profiles interfaces.IEntityRepository,
	usage IUsageAggregator,
	renderer interfaces.IDocumentRenderer,
	notifier interfaces.INotifier,
	tokens interfaces.ITokenManager,
	settings Settings,
) *InvoiceUseCase {
	return &InvoiceUseCase{
		invoices: invoices,
		profiles: profiles,
		usage:    usage,
		renderer: renderer,
		notifier: notifier,
		tokens:   tokens,
		settings: settings,
	}
}

// Generate issues the invoice of one entity for one period. A second call for
// the same entity and period returns the stored invoice without recomputing.
func (u *InvoiceUseCase) Generate(ctx context.Context, cmd GenerateInvoiceCommand) (entities.Invoice, bool, error) {
	logger := log.Ctx(ctx)

	target, err := entities.NewBillingTarget(cmd.CompanyID, cmd.TenantID)
	if err != nil {
		return entities.Invoice{}, false, ErrInvalidCompanyID
	}
	period, err := entities.ResolveBillingPeriod(u.settings.now(), cmd.Month, cmd.Year)
	if err != nil {
		logger.Warn().Str("target", target.String()).Err(err).Msg("[invoice][usecase] period rejected")
		return entities.Invoice{}, false, err
	}
	invoiceID := entities.NewInvoiceID(target, period)
	logger.Info().Str("target", target.String()).Str("invoice_id", invoiceID).Msg("[invoice][usecase] generate start")

	existing, err := u.invoices.GetByID(ctx, target, invoiceID)
	if err != nil {
		return entities.Invoice{}, false, err
	}
	if existing.Exists() {
		logger.Info().Str("invoice_id", invoiceID).Msg("[invoice][usecase] already generated")
		return existing, false, nil
	}

	inv, err := u.build(ctx, target, period)
	if err != nil {
		logger.Error().Str("invoice_id", invoiceID).Err(err).Msg("[invoice][usecase] build failed")
		return entities.Invoice{}, false, err
	}

	stored, created, err := u.invoices.Create(ctx, inv)
	if err != nil {
		logger.Error().Str("invoice_id", invoiceID).Err(err).Msg("[invoice][usecase] create failed")
		return entities.Invoice{}, false, err
	}
	if !created {
		logger.Info().Str("invoice_id", invoiceID).Msg("[invoice][usecase] lost create race; returning stored invoice")
		return stored, false, nil
	}
	logger.Info().
		Str("invoice_id", stored.ID).
		Str("total", stored.Total.StringFixed(2)).
		Int64("billed_minutes", stored.Usage.BilledMinutes).
		Msg("[invoice][usecase] generate success")

	if cmd.Send {
		if err := u.Deliver(ctx, stored); err != nil {
			logger.Warn().Str("invoice_id", stored.ID).Err(err).Msg("[invoice][usecase] delivery failed")
		}
	}
	return stored, true, nil
}

func (u *InvoiceUseCase) build(ctx context.Context, target entities.BillingTarget, period entities.BillingPeriod) (entities.Invoice, error) {
	profile, err := u.profiles.GetProfile(ctx, target)
	if err != nil {
		return entities.Invoice{}, err
	}
	if !profile.Exists() {
		return entities.Invoice{}, fmt.Errorf("%w: %s", ErrEntityNotFound, target)
	}
	if profile.Rates == nil {
		return entities.Invoice{}, fmt.Errorf("%w: %s", ErrMissingRateCard, target)
	}
	rates := *profile.Rates
	if rates.Currency == "" {
		rates.Currency = "INR"
	}

	vendor := u.settings.Seller
	if parent, ok := target.Vendor(); ok {
		vp, err := u.profiles.GetProfile(ctx, parent)
		if err != nil {
			return entities.Invoice{}, err
		}
		if !vp.Exists() {
			return entities.Invoice{}, fmt.Errorf("%w: vendor %s", ErrEntityNotFound, parent)
		}
		vendor = vp.Party
	}

	usage, _, err := u.usage.Aggregate(ctx, target, period, rates.BillingPolicy)
	if err != nil {
		return entities.Invoice{}, err
	}
	charges, err := billing.Calculate(usage.BilledMinutes, rates, u.settings.Rounding)
	if err != nil {
		return entities.Invoice{}, err
	}

	billedTo := profile.Party
	if billedTo.ID == "" {
		billedTo.ID = target.EntityID()
	}

	return entities.NewInvoiceBuilder(target, period).
		Dates(u.settings.now(), u.settings.dueAfter()).
		Usage(usage).
		Rates(rates).
		Charges(charges.LineItems, charges.Subtotal, charges.TaxAmount, charges.RoundOff, charges.Total, charges.TotalInWords).
		Parties(billedTo, vendor, profile.Bank, profile.AuthorizedSignatory).
		PlaceOfSupply(billing.PlaceOfSupply(billedTo.GSTIN)).
		Build()
}

func (u *InvoiceUseCase) GetByID(ctx context.Context, target entities.BillingTarget, id string) (entities.Invoice, error) {
	id = strings.ToUpper(strings.TrimSpace(id))
	if id == "" {
		return entities.Invoice{}, ErrInvoiceNotFound
	}
	inv, err := u.invoices.GetByID(ctx, target, id)
	if err != nil {
		return entities.Invoice{}, err
	}
	if !inv.Exists() {
		return entities.Invoice{}, ErrInvoiceNotFound
	}
	return inv, nil
}

// GetByToken resolves an access token into the invoice it grants access to.
func (u *InvoiceUseCase) GetByToken(ctx context.Context, token string) (entities.Invoice, error) {
	claims, err := u.tokens.Verify(token, u.settings.now())
	if err != nil {
		log.Ctx(ctx).Warn().Err(err).Msg("[invoice][usecase] token rejected")
		return entities.Invoice{}, ErrInvalidToken
	}
	target, err := entities.NewBillingTarget(claims.CompanyID, claims.TenantID)
	if err != nil {
		return entities.Invoice{}, ErrInvalidToken
	}
	return u.GetByID(ctx, target, claims.InvoiceID)
}

// Deliver emails the invoice PDF and call log to the billing contact with a
// payment link carrying a fresh access token.
func (u *InvoiceUseCase) Deliver(ctx context.Context, inv entities.Invoice) error {
	if strings.TrimSpace(inv.BilledTo.Email) == "" {
		return ErrMissingBillingEmail
	}

	pdf, err := u.renderer.InvoicePDF(inv)
	if err != nil {
		return fmt.Errorf("render invoice pdf: %w", err)
	}
	_, records, err := u.usage.Aggregate(ctx, inv.Target(), inv.BillingPeriod, inv.Usage.Policy)
	if err != nil {
		return err
	}
	csv, err := u.renderer.UsageCSV(inv, records)
	if err != nil {
		return fmt.Errorf("render call log: %w", err)
	}

	link, err := u.issuePaymentLink(ctx, inv)
	if err != nil {
		return err
	}

	err = u.notifier.SendInvoice(ctx, interfaces.InvoiceNotice{
		To:         inv.BilledTo.Email,
		Invoice:    inv,
		PaymentURL: link,
		Attachments: []interfaces.Attachment{
			{Filename: "invoice_" + inv.ID + ".pdf", ContentType: "application/pdf", Data: pdf},
			{Filename: "call_logs_" + inv.ID + ".csv", ContentType: "text/csv", Data: csv},
		},
	})
	if err != nil {
		return err
	}
	log.Ctx(ctx).Info().Str("invoice_id", inv.ID).Str("to", inv.BilledTo.Email).Msg("[invoice][usecase] delivered")
	return nil
}

func (u *InvoiceUseCase) issuePaymentLink(ctx context.Context, inv entities.Invoice) (string, error) {
	return issuePaymentLink(ctx, u.tokens, u.profiles, u.settings, inv)
}

// GenerateForAll bills every company and every tenant under it. One entity's
// failure never stops the batch.
func (u *InvoiceUseCase) GenerateForAll(ctx context.Context, month, year *int, send bool) (BatchResult, error) {
	var res BatchResult

	companies, err := u.profiles.ListCompanies(ctx)
	if err != nil {
		return res, err
	}

	run := func(companyID, tenantID string) {
		_, created, err := u.Generate(ctx, GenerateInvoiceCommand{CompanyID: companyID, TenantID: tenantID, Month: month, Year: year, Send: send})
		switch {
		case err != nil:
			t, _ := entities.NewBillingTarget(companyID, tenantID)
			label := companyID
			if t != nil {
				label = t.String()
			}
			res.Failed++
			res.Failures = append(res.Failures, EntityFailure{Target: label, Error: err.Error()})
		case created:
			res.Generated++
		default:
			res.Existing++
		}
	}

	for _, c := range companies {
		if err := ctx.Err(); err != nil {
			return res, err
		}
		run(c.CompanyID, "")

		tenants, err := u.profiles.ListTenants(ctx, c.CompanyID)
		if err != nil {
			res.Failed++
			res.Failures = append(res.Failures, EntityFailure{Target: "company/" + c.CompanyID + "/tenants", Error: err.Error()})
			continue
		}
		for _, t := range tenants {
			run(c.CompanyID, t.TenantID)
		}
	}

	log.Ctx(ctx).Info().
		Int("generated", res.Generated).
		Int("existing", res.Existing).
		Int("failed", res.Failed).
		Msg("[invoice][usecase] batch finished")
	if res.Failed > 0 && res.Generated == 0 && res.Existing == 0 {
		return res, errors.New("every entity failed to bill")
	}
	return res, nil
}

// issuePaymentLink signs an access token for inv and returns the payment page
// URL carrying it. The profile's payment company, if any, is embedded so the
// payment is collected on that company's processor account.
func issuePaymentLink(ctx context.Context, tokens interfaces.ITokenManager, profiles interfaces.IEntityRepository, settings Settings, inv entities.Invoice) (string, error) {
	claims := auth.InvoiceClaims{CompanyID: inv.CompanyID, TenantID: inv.TenantID, InvoiceID: inv.ID}
	if p, err := profiles.GetProfile(ctx, inv.Target()); err == nil && p.PaymentCompanyID != "" {
		claims.PaymentCompanyID = p.PaymentCompanyID
	}
	token, err := tokens.Issue(settings.now(), claims)
	if err != nil {
		return "", fmt.Errorf("issue invoice token: %w", err)
	}
	return settings.paymentLink(token), nil
}
