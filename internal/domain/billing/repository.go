package billing

import (
	"context"

	"github.com/glosas/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// InvoiceRepository defines the interface for invoice persistence
type InvoiceRepository interface {
	// Create creates a new invoice
	Create(ctx context.Context, inv *Invoice) error

	// Update updates an existing invoice
	Update(ctx context.Context, inv *Invoice) error

	// Delete deletes an invoice by ID
	Delete(ctx context.Context, id uuid.UUID) error

	// FindByID finds an invoice by ID
	FindByID(ctx context.Context, id uuid.UUID) (*Invoice, error)

	// FindByNumber finds an invoice by its business number
	FindByNumber(ctx context.Context, number string) (*Invoice, error)

	// FindAll returns invoices with pagination
	FindAll(ctx context.Context, filter shared.Filter) ([]*Invoice, int64, error)

	// ExistsByNumber checks if an invoice number is already registered
	ExistsByNumber(ctx context.Context, number string) (bool, error)

	// Count returns the total number of invoices
	Count(ctx context.Context) (int64, error)
}
