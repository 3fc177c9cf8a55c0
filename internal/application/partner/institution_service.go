package partner

import (
	"context"

	"github.com/glosas/backend/internal/domain/partner"
	"github.com/glosas/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// InstitutionService handles institution management operations
type InstitutionService struct {
	institutionRepo partner.InstitutionRepository
}

// NewInstitutionService creates a new InstitutionService
func NewInstitutionService(institutionRepo partner.InstitutionRepository) *InstitutionService {
	return &InstitutionService{institutionRepo: institutionRepo}
}

// Create registers a new institution
func (s *InstitutionService) Create(ctx context.Context, req CreateInstitutionRequest) (*InstitutionResponse, error) {
	exists, err := s.institutionRepo.ExistsByTaxID(ctx, req.TaxID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "An institution with this tax id already exists")
	}

	inst, err := partner.NewInstitution(req.TaxID, req.LegalName, partner.InstitutionKind(req.Kind))
	if err != nil {
		return nil, err
	}
	inst.TradeName = req.TradeName
	if req.Address != "" || req.Phone != "" || req.ContactEmail != "" {
		inst.SetContact(req.Address, req.Phone, req.ContactEmail)
	}

	if err := s.institutionRepo.Create(ctx, inst); err != nil {
		return nil, err
	}
	return ToInstitutionResponse(inst), nil
}

// Get returns an institution by ID
func (s *InstitutionService) Get(ctx context.Context, id uuid.UUID) (*InstitutionResponse, error) {
	inst, err := s.institutionRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return ToInstitutionResponse(inst), nil
}

// List returns institutions matching the filter
func (s *InstitutionService) List(ctx context.Context, filter shared.Filter) (*InstitutionListResponse, error) {
	institutions, total, err := s.institutionRepo.FindAll(ctx, filter)
	if err != nil {
		return nil, err
	}

	items := make([]*InstitutionResponse, len(institutions))
	for i, inst := range institutions {
		items[i] = ToInstitutionResponse(inst)
	}
	return &InstitutionListResponse{Items: items, Total: total}, nil
}

// Update applies a partial update to an institution
func (s *InstitutionService) Update(ctx context.Context, id uuid.UUID, req UpdateInstitutionRequest) (*InstitutionResponse, error) {
	inst, err := s.institutionRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.LegalName != nil || req.TradeName != nil {
		legalName := inst.LegalName
		tradeName := inst.TradeName
		if req.LegalName != nil {
			legalName = *req.LegalName
		}
		if req.TradeName != nil {
			tradeName = *req.TradeName
		}
		if err := inst.Rename(legalName, tradeName); err != nil {
			return nil, err
		}
	}
	if req.Address != nil || req.Phone != nil || req.ContactEmail != nil {
		address := inst.Address
		phone := inst.Phone
		email := inst.ContactEmail
		if req.Address != nil {
			address = *req.Address
		}
		if req.Phone != nil {
			phone = *req.Phone
		}
		if req.ContactEmail != nil {
			email = *req.ContactEmail
		}
		inst.SetContact(address, phone, email)
	}
	if req.Active != nil {
		if *req.Active {
			inst.Activate()
		} else {
			inst.Deactivate()
		}
	}

	if err := s.institutionRepo.Update(ctx, inst); err != nil {
		return nil, err
	}
	return ToInstitutionResponse(inst), nil
}

// Delete removes an institution
func (s *InstitutionService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.institutionRepo.Delete(ctx, id)
}
