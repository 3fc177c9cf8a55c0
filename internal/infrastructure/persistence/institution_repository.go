package persistence

import (
	"context"

	"github.com/glosas/backend/internal/domain/partner"
	"github.com/glosas/backend/internal/domain/shared"
	"github.com/glosas/backend/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormInstitutionRepository implements partner.InstitutionRepository using GORM
type GormInstitutionRepository struct {
	db *gorm.DB
}

// NewGormInstitutionRepository creates a new GormInstitutionRepository
func NewGormInstitutionRepository(db *gorm.DB) *GormInstitutionRepository {
	return &GormInstitutionRepository{db: db}
}

// Create persists a new institution
func (r *GormInstitutionRepository) Create(ctx context.Context, inst *partner.Institution) error {
	model := models.InstitutionModelFromDomain(inst)
	return translateError(dbFromContext(ctx, r.db).Create(model).Error)
}

// Update persists changes to an existing institution
func (r *GormInstitutionRepository) Update(ctx context.Context, inst *partner.Institution) error {
	model := models.InstitutionModelFromDomain(inst)
	result := dbFromContext(ctx, r.db).Model(&models.InstitutionModel{}).
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

// Delete removes an institution by ID
func (r *GormInstitutionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := dbFromContext(ctx, r.db).Delete(&models.InstitutionModel{}, "id = ?", id)
	if result.Error != nil {
		return translateError(result.Error)
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// FindByID finds an institution by its ID
func (r *GormInstitutionRepository) FindByID(ctx context.Context, id uuid.UUID) (*partner.Institution, error) {
	var model models.InstitutionModel
	if err := dbFromContext(ctx, r.db).First(&model, "id = ?", id).Error; err != nil {
		return nil, translateError(err)
	}
	return model.ToDomain(), nil
}

// FindByTaxID finds an institution by its tax identifier
func (r *GormInstitutionRepository) FindByTaxID(ctx context.Context, taxID string) (*partner.Institution, error) {
	var model models.InstitutionModel
	if err := dbFromContext(ctx, r.db).
		Where("tax_id = ?", taxID).
		First(&model).Error; err != nil {
		return nil, translateError(err)
	}
	return model.ToDomain(), nil
}

// FindAll returns institutions matching the filter along with the total count
func (r *GormInstitutionRepository) FindAll(ctx context.Context, filter shared.Filter) ([]*partner.Institution, int64, error) {
	filter = filter.Normalize()
	db := dbFromContext(ctx, r.db)

	var total int64
	if err := db.Model(&models.InstitutionModel{}).Count(&total).Error; err != nil {
		return nil, 0, translateError(err)
	}

	var instModels []models.InstitutionModel
	if err := db.Model(&models.InstitutionModel{}).
		Order("legal_name ASC").
		Offset(filter.Offset).
		Limit(filter.Limit).
		Find(&instModels).Error; err != nil {
		return nil, 0, translateError(err)
	}

	institutions := make([]*partner.Institution, len(instModels))
	for i := range instModels {
		institutions[i] = instModels[i].ToDomain()
	}
	return institutions, total, nil
}

// ExistsByTaxID reports whether an institution with the given tax ID exists
func (r *GormInstitutionRepository) ExistsByTaxID(ctx context.Context, taxID string) (bool, error) {
	var count int64
	if err := dbFromContext(ctx, r.db).Model(&models.InstitutionModel{}).
		Where("tax_id = ?", taxID).
		Count(&count).Error; err != nil {
		return false, translateError(err)
	}
	return count > 0, nil
}
