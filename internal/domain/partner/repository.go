package partner

import (
	"context"

	"github.com/glosas/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// InstitutionRepository defines the interface for institution persistence
type InstitutionRepository interface {
	// Create creates a new institution
	Create(ctx context.Context, inst *Institution) error

	// Update updates an existing institution
	Update(ctx context.Context, inst *Institution) error

	// Delete deletes an institution by ID
	Delete(ctx context.Context, id uuid.UUID) error

	// FindByID finds an institution by ID
	FindByID(ctx context.Context, id uuid.UUID) (*Institution, error)

	// FindByTaxID finds an institution by its NIT
	FindByTaxID(ctx context.Context, taxID string) (*Institution, error)

	// FindAll returns institutions with pagination
	FindAll(ctx context.Context, filter shared.Filter) ([]*Institution, int64, error)

	// ExistsByTaxID checks if a NIT is already registered
	ExistsByTaxID(ctx context.Context, taxID string) (bool, error)
}
