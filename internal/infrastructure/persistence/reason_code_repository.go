package persistence

import (
	"context"
	"strings"

	"github.com/glosas/backend/internal/domain/dispute"
	"github.com/glosas/backend/internal/domain/shared"
	"github.com/glosas/backend/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormReasonCodeRepository implements dispute.ReasonCodeRepository using GORM
type GormReasonCodeRepository struct {
	db *gorm.DB
}

// NewGormReasonCodeRepository creates a new GormReasonCodeRepository
func NewGormReasonCodeRepository(db *gorm.DB) *GormReasonCodeRepository {
	return &GormReasonCodeRepository{db: db}
}

func (r *GormReasonCodeRepository) Create(ctx context.Context, rc *dispute.ReasonCode) error {
	model := models.ReasonCodeModelFromDomain(rc)
	return translateError(dbFromContext(ctx, r.db).Create(model).Error)
}

func (r *GormReasonCodeRepository) Update(ctx context.Context, rc *dispute.ReasonCode) error {
	model := models.ReasonCodeModelFromDomain(rc)
	result := dbFromContext(ctx, r.db).Model(&models.ReasonCodeModel{}).
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

func (r *GormReasonCodeRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := dbFromContext(ctx, r.db).Delete(&models.ReasonCodeModel{}, "id = ?", id)
	if result.Error != nil {
		return translateError(result.Error)
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

func (r *GormReasonCodeRepository) FindByID(ctx context.Context, id uuid.UUID) (*dispute.ReasonCode, error) {
	var model models.ReasonCodeModel
	if err := dbFromContext(ctx, r.db).First(&model, "id = ?", id).Error; err != nil {
		return nil, translateError(err)
	}
	return model.ToDomain(), nil
}

func (r *GormReasonCodeRepository) FindByCode(ctx context.Context, code string) (*dispute.ReasonCode, error) {
	var model models.ReasonCodeModel
	if err := dbFromContext(ctx, r.db).
		Where("code = ?", strings.TrimSpace(code)).
		First(&model).Error; err != nil {
		return nil, translateError(err)
	}
	return model.ToDomain(), nil
}

func (r *GormReasonCodeRepository) FindAll(ctx context.Context, filter shared.Filter) ([]*dispute.ReasonCode, int64, error) {
	filter = filter.Normalize()
	db := dbFromContext(ctx, r.db)

	var total int64
	if err := db.Model(&models.ReasonCodeModel{}).Count(&total).Error; err != nil {
		return nil, 0, translateError(err)
	}

	var codeModels []models.ReasonCodeModel
	if err := db.Model(&models.ReasonCodeModel{}).
		Order("code ASC").
		Offset(filter.Offset).
		Limit(filter.Limit).
		Find(&codeModels).Error; err != nil {
		return nil, 0, translateError(err)
	}

	codes := make([]*dispute.ReasonCode, len(codeModels))
	for i := range codeModels {
		codes[i] = codeModels[i].ToDomain()
	}
	return codes, total, nil
}

func (r *GormReasonCodeRepository) ExistsByCode(ctx context.Context, code string) (bool, error) {
	var count int64
	if err := dbFromContext(ctx, r.db).Model(&models.ReasonCodeModel{}).
		Where("code = ?", strings.TrimSpace(code)).
		Count(&count).Error; err != nil {
		return false, translateError(err)
	}
	return count > 0, nil
}
