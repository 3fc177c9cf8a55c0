package persistence

import (
	"context"

	"github.com/glosas/backend/internal/domain/dispute"
	"github.com/glosas/backend/internal/domain/shared"
	"github.com/glosas/backend/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormResponseRepository implements dispute.ResponseRepository using GORM
type GormResponseRepository struct {
	db *gorm.DB
}

// NewGormResponseRepository creates a new GormResponseRepository
func NewGormResponseRepository(db *gorm.DB) *GormResponseRepository {
	return &GormResponseRepository{db: db}
}

func (r *GormResponseRepository) Create(ctx context.Context, resp *dispute.GlosaResponse) error {
	model := models.GlosaResponseModelFromDomain(resp)
	return translateError(dbFromContext(ctx, r.db).Create(model).Error)
}

func (r *GormResponseRepository) Update(ctx context.Context, resp *dispute.GlosaResponse) error {
	model := models.GlosaResponseModelFromDomain(resp)
	result := dbFromContext(ctx, r.db).Model(&models.GlosaResponseModel{}).
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

func (r *GormResponseRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := dbFromContext(ctx, r.db).Delete(&models.GlosaResponseModel{}, "id = ?", id)
	if result.Error != nil {
		return translateError(result.Error)
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

func (r *GormResponseRepository) FindByID(ctx context.Context, id uuid.UUID) (*dispute.GlosaResponse, error) {
	var model models.GlosaResponseModel
	if err := dbFromContext(ctx, r.db).First(&model, "id = ?", id).Error; err != nil {
		return nil, translateError(err)
	}
	return model.ToDomain(), nil
}

func (r *GormResponseRepository) FindAll(ctx context.Context, filter shared.Filter) ([]*dispute.GlosaResponse, int64, error) {
	filter = filter.Normalize()
	db := dbFromContext(ctx, r.db)

	var total int64
	if err := db.Model(&models.GlosaResponseModel{}).Count(&total).Error; err != nil {
		return nil, 0, translateError(err)
	}

	var responseModels []models.GlosaResponseModel
	if err := db.Model(&models.GlosaResponseModel{}).
		Order("response_date DESC").
		Offset(filter.Offset).
		Limit(filter.Limit).
		Find(&responseModels).Error; err != nil {
		return nil, 0, translateError(err)
	}

	responses := make([]*dispute.GlosaResponse, len(responseModels))
	for i := range responseModels {
		responses[i] = responseModels[i].ToDomain()
	}
	return responses, total, nil
}

func (r *GormResponseRepository) FindByGlosa(ctx context.Context, glosaID uuid.UUID) ([]*dispute.GlosaResponse, error) {
	var responseModels []models.GlosaResponseModel
	if err := dbFromContext(ctx, r.db).
		Where("glosa_id = ?", glosaID).
		Order("response_date DESC").
		Find(&responseModels).Error; err != nil {
		return nil, translateError(err)
	}

	responses := make([]*dispute.GlosaResponse, len(responseModels))
	for i := range responseModels {
		responses[i] = responseModels[i].ToDomain()
	}
	return responses, nil
}
