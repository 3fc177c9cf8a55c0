package partner

import (
	"strings"

	"github.com/glosas/backend/internal/domain/shared"
)

// InstitutionKind distinguishes service providers from payers
type InstitutionKind string

const (
	// KindIPS is a healthcare service provider (invoice issuer)
	KindIPS InstitutionKind = "IPS"
	// KindEPS is a health insurance administrator (invoice receiver/payer)
	KindEPS InstitutionKind = "EPS"
)

// IsValid reports whether the kind is one of the known values
func (k InstitutionKind) IsValid() bool {
	return k == KindIPS || k == KindEPS
}

// Institution represents a healthcare institution identified by its
// tax id (NIT). It is referenced by invoices as issuer and receiver.
type Institution struct {
	shared.BaseAggregateRoot
	TaxID        string
	LegalName    string
	TradeName    string
	Kind         InstitutionKind
	Address      string
	Phone        string
	ContactEmail string
	Active       bool
}

// NewInstitution creates a new active institution
func NewInstitution(taxID, legalName string, kind InstitutionKind) (*Institution, error) {
	taxID = strings.TrimSpace(taxID)
	if taxID == "" {
		return nil, shared.NewDomainError("INVALID_TAX_ID", "Tax id cannot be empty")
	}
	if strings.TrimSpace(legalName) == "" {
		return nil, shared.NewDomainError("INVALID_LEGAL_NAME", "Legal name cannot be empty")
	}
	if !kind.IsValid() {
		return nil, shared.NewDomainError("INVALID_INSTITUTION_KIND", "Institution kind must be IPS or EPS")
	}

	return &Institution{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		TaxID:             taxID,
		LegalName:         strings.TrimSpace(legalName),
		Kind:              kind,
		Active:            true,
	}, nil
}

// SetContact updates the contact fields
func (i *Institution) SetContact(address, phone, email string) {
	i.Address = strings.TrimSpace(address)
	i.Phone = strings.TrimSpace(phone)
	i.ContactEmail = strings.ToLower(strings.TrimSpace(email))
	i.Touch()
	i.IncrementVersion()
}

// Rename updates the institution names
func (i *Institution) Rename(legalName, tradeName string) error {
	legalName = strings.TrimSpace(legalName)
	if legalName == "" {
		return shared.NewDomainError("INVALID_LEGAL_NAME", "Legal name cannot be empty")
	}
	i.LegalName = legalName
	i.TradeName = strings.TrimSpace(tradeName)
	i.Touch()
	i.IncrementVersion()
	return nil
}

// Activate marks the institution active
func (i *Institution) Activate() {
	i.Active = true
	i.Touch()
	i.IncrementVersion()
}

// Deactivate marks the institution inactive
func (i *Institution) Deactivate() {
	i.Active = false
	i.Touch()
	i.IncrementVersion()
}
