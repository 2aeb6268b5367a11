package auth

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	ErrMissingTokenSecret = errors.New("INVOICE_TOKEN_SECRET is required")
	ErrInvalidToken       = errors.New("invalid or expired invoice token")
)

const DefaultTokenTTL = 72 * time.Hour

// InvoiceClaims grants anonymous access to one invoice and the right to pay it.
// Used is issued false and is not checked on verification.
type InvoiceClaims struct {
	jwt.RegisteredClaims
	CompanyID        string `json:"company_id"`
	TenantID         string `json:"tenant_id,omitempty"`
	InvoiceID        string `json:"invoice_id"`
	PaymentCompanyID string `json:"payment_company_id,omitempty"`
	Used             bool   `json:"used"`
}

// CredentialCompanyID is the company whose processor credentials collect the payment.
func (c InvoiceClaims) CredentialCompanyID() string {
	if c.PaymentCompanyID != "" {
		return c.PaymentCompanyID
	}
	return c.CompanyID
}

type TokenManager struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenManager(secret string, ttl time.Duration) (*TokenManager, error) {
	if strings.TrimSpace(secret) == "" {
		return nil, ErrMissingTokenSecret
	}
	if ttl <= 0 {
		ttl = DefaultTokenTTL
	}
	return &TokenManager{secret: []byte(secret), ttl: ttl}, nil
}

func (m *TokenManager) TTL() time.Duration { return m.ttl }

// Issue signs a token for the invoice in claims. Registered claims are
// overwritten.
func (m *TokenManager) Issue(now time.Time, claims InvoiceClaims) (string, error) {
	claims.RegisteredClaims = jwt.RegisteredClaims{
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
		ID:        uuid.NewString(),
	}
	claims.Used = false

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(m.secret)
}

// Verify checks signature and expiry at now and returns the decoded claims.
func (m *TokenManager) Verify(token string, now time.Time) (InvoiceClaims, error) {
	var claims InvoiceClaims

	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(func() time.Time { return now }),
	)
	_, err := parser.ParseWithClaims(strings.TrimSpace(token), &claims, func(*jwt.Token) (any, error) {
		return m.secret, nil
	})
	if err != nil {
		return InvoiceClaims{}, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	if claims.InvoiceID == "" {
		return InvoiceClaims{}, fmt.Errorf("%w: invoice_id missing", ErrInvalidToken)
	}
	if claims.CompanyID == "" {
		return InvoiceClaims{}, fmt.Errorf("%w: company_id missing", ErrInvalidToken)
	}
	return claims, nil
}
