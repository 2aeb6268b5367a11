package entities

import (
	"errors"
	"strings"
)

var ErrMissingCompanyID = errors.New("company id is required")

// DefaultTenantID is the tenant value processors echo back when an invoice
// belongs to a top-level entity.
const DefaultTenantID = "default"

// BillingTarget is the entity an invoice is issued to.
//
// Two variants exist: a TopLevelEntity (company) and a SubEntity (tenant under a
// company). Each variant resolves its own storage path and identity source.
type BillingTarget interface {
	CompanyID() string
	// TenantID is empty for top-level entities.
	TenantID() string
	// EntityID is the id the invoice number prefix is derived from.
	EntityID() string
	// StoragePath is the partition every document of this entity lives under.
	StoragePath() string
	// Vendor returns the parent company of a sub-entity.
	Vendor() (TopLevelEntity, bool)
	String() string
}

type TopLevelEntity struct {
	Company string
}

func (e TopLevelEntity) CompanyID() string { return e.Company }
func (e TopLevelEntity) TenantID() string  { return "" }
func (e TopLevelEntity) EntityID() string  { return e.Company }

func (e TopLevelEntity) StoragePath() string {
	return "COMPANY#" + e.Company
}

func (e TopLevelEntity) Vendor() (TopLevelEntity, bool) { return TopLevelEntity{}, false }

func (e TopLevelEntity) String() string { return "company/" + e.Company }

type SubEntity struct {
	Parent TopLevelEntity
	Tenant string
}

func (e SubEntity) CompanyID() string { return e.Parent.Company }
func (e SubEntity) TenantID() string  { return e.Tenant }
func (e SubEntity) EntityID() string  { return e.Tenant }

func (e SubEntity) StoragePath() string {
	return e.Parent.StoragePath() + "#TENANT#" + e.Tenant
}

func (e SubEntity) Vendor() (TopLevelEntity, bool) { return e.Parent, true }

func (e SubEntity) String() string { return e.Parent.String() + "/tenant/" + e.Tenant }

// NewBillingTarget resolves the variant from raw identifiers. An empty tenant
// or the processor placeholder "default" yields a top-level entity.
func NewBillingTarget(companyID, tenantID string) (BillingTarget, error) {
	companyID = strings.TrimSpace(companyID)
	tenantID = strings.TrimSpace(tenantID)
	if companyID == "" {
		return nil, ErrMissingCompanyID
	}
	company := TopLevelEntity{Company: companyID}
	if tenantID == "" || tenantID == DefaultTenantID {
		return company, nil
	}
	return SubEntity{Parent: company, Tenant: tenantID}, nil
}
