package persistence

import (
	"context"

	"github.com/glosas/backend/internal/domain/dispute"
	"github.com/glosas/backend/internal/domain/shared"
	"github.com/glosas/backend/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GormGlosaRepository implements dispute.GlosaRepository using GORM
type GormGlosaRepository struct {
	db *gorm.DB
}

// NewGormGlosaRepository creates a new GormGlosaRepository
func NewGormGlosaRepository(db *gorm.DB) *GormGlosaRepository {
	return &GormGlosaRepository{db: db}
}

// Create persists a new glosa
func (r *GormGlosaRepository) Create(ctx context.Context, g *dispute.Glosa) error {
	model := models.GlosaModelFromDomain(g)
	return translateError(dbFromContext(ctx, r.db).Create(model).Error)
}

// Update persists changes to an existing glosa
func (r *GormGlosaRepository) Update(ctx context.Context, g *dispute.Glosa) error {
	model := models.GlosaModelFromDomain(g)
	result := dbFromContext(ctx, r.db).Model(&models.GlosaModel{}).
		Where("id = ?", model.ID).
		Select("*").
		Updates(model)
	if result.Error != nil {
		return translateError(result.Error)
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Delete removes a glosa together with its responses and attachments
func (r *GormGlosaRepository) Delete(ctx context.Context, id uuid.UUID) error {
	err := dbFromContext(ctx, r.db).Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&models.AttachmentModel{}, "glosa_id = ?", id).Error; err != nil {
			return err
		}
		if err := tx.Delete(&models.GlosaResponseModel{}, "glosa_id = ?", id).Error; err != nil {
			return err
		}
		result := tx.Delete(&models.GlosaModel{}, "id = ?", id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return shared.ErrNotFound
		}
		return nil
	})
	return translateError(err)
}

// FindByID finds a glosa by its ID
func (r *GormGlosaRepository) FindByID(ctx context.Context, id uuid.UUID) (*dispute.Glosa, error) {
	var model models.GlosaModel
	if err := dbFromContext(ctx, r.db).First(&model, "id = ?", id).Error; err != nil {
		return nil, translateError(err)
	}
	return model.ToDomain(), nil
}

// FindAll returns glosas matching the filter along with the total count
func (r *GormGlosaRepository) FindAll(ctx context.Context, filter shared.Filter) ([]*dispute.Glosa, int64, error) {
	filter = filter.Normalize()
	db := dbFromContext(ctx, r.db)

	var total int64
	if err := db.Model(&models.GlosaModel{}).Count(&total).Error; err != nil {
		return nil, 0, translateError(err)
	}

	var glosaModels []models.GlosaModel
	if err := db.Model(&models.GlosaModel{}).
		Order("dispute_date DESC").
		Offset(filter.Offset).
		Limit(filter.Limit).
		Find(&glosaModels).Error; err != nil {
		return nil, 0, translateError(err)
	}

	glosas := make([]*dispute.Glosa, len(glosaModels))
	for i := range glosaModels {
		glosas[i] = glosaModels[i].ToDomain()
	}
	return glosas, total, nil
}

// FindByInvoice returns all glosas filed against an invoice
func (r *GormGlosaRepository) FindByInvoice(ctx context.Context, invoiceID uuid.UUID) ([]*dispute.Glosa, error) {
	var glosaModels []models.GlosaModel
	if err := dbFromContext(ctx, r.db).
		Where("invoice_id = ?", invoiceID).
		Order("dispute_date DESC").
		Find(&glosaModels).Error; err != nil {
		return nil, translateError(err)
	}

	glosas := make([]*dispute.Glosa, len(glosaModels))
	for i := range glosaModels {
		glosas[i] = glosaModels[i].ToDomain()
	}
	return glosas, nil
}

// ExistsByTuple reports whether a glosa with the same invoice, reason code
// and disputed amount already exists. Used to skip duplicates during import.
func (r *GormGlosaRepository) ExistsByTuple(ctx context.Context, invoiceID, reasonCodeID uuid.UUID, amount decimal.Decimal) (bool, error) {
	var count int64
	if err := dbFromContext(ctx, r.db).Model(&models.GlosaModel{}).
		Where("invoice_id = ? AND reason_code_id = ? AND amount = ?", invoiceID, reasonCodeID, amount).
		Count(&count).Error; err != nil {
		return false, translateError(err)
	}
	return count > 0, nil
}

// Count returns the total number of glosas
func (r *GormGlosaRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := dbFromContext(ctx, r.db).Model(&models.GlosaModel{}).Count(&count).Error; err != nil {
		return 0, translateError(err)
	}
	return count, nil
}
