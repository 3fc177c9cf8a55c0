package partner

import (
	"time"

	"github.com/glosas/backend/internal/domain/partner"
	"github.com/google/uuid"
)

// CreateInstitutionRequest represents a request to register an institution
type CreateInstitutionRequest struct {
	TaxID        string `json:"tax_id" binding:"required,nit"`
	LegalName    string `json:"legal_name" binding:"required,min=1,max=300"`
	TradeName    string `json:"trade_name" binding:"max=300"`
	Kind         string `json:"kind" binding:"required,oneof=IPS EPS"`
	Address      string `json:"address" binding:"max=300"`
	Phone        string `json:"phone" binding:"max=50"`
	ContactEmail string `json:"contact_email" binding:"omitempty,email,max=200"`
}

// UpdateInstitutionRequest represents a partial institution update
type UpdateInstitutionRequest struct {
	LegalName    *string `json:"legal_name" binding:"omitempty,min=1,max=300"`
	TradeName    *string `json:"trade_name" binding:"omitempty,max=300"`
	Address      *string `json:"address" binding:"omitempty,max=300"`
	Phone        *string `json:"phone" binding:"omitempty,max=50"`
	ContactEmail *string `json:"contact_email" binding:"omitempty,email,max=200"`
	Active       *bool   `json:"active"`
}

// InstitutionResponse represents an institution in API responses
type InstitutionResponse struct {
	ID           uuid.UUID `json:"id"`
	TaxID        string    `json:"tax_id"`
	LegalName    string    `json:"legal_name"`
	TradeName    string    `json:"trade_name"`
	Kind         string    `json:"kind"`
	Address      string    `json:"address"`
	Phone        string    `json:"phone"`
	ContactEmail string    `json:"contact_email"`
	Active       bool      `json:"active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// ToInstitutionResponse converts a domain institution into its API representation
func ToInstitutionResponse(i *partner.Institution) *InstitutionResponse {
	return &InstitutionResponse{
		ID:           i.ID,
		TaxID:        i.TaxID,
		LegalName:    i.LegalName,
		TradeName:    i.TradeName,
		Kind:         string(i.Kind),
		Address:      i.Address,
		Phone:        i.Phone,
		ContactEmail: i.ContactEmail,
		Active:       i.Active,
		CreatedAt:    i.CreatedAt,
		UpdatedAt:    i.UpdatedAt,
	}
}

// InstitutionListResponse is a paginated list of institutions
type InstitutionListResponse struct {
	Items []*InstitutionResponse `json:"items"`
	Total int64                  `json:"total"`
}
