package persistence

import (
	"context"

	"github.com/glosas/backend/internal/domain/dispute"
	"github.com/glosas/backend/internal/domain/shared"
	"github.com/glosas/backend/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormAttachmentRepository implements dispute.AttachmentRepository using GORM
type GormAttachmentRepository struct {
	db *gorm.DB
}

// NewGormAttachmentRepository creates a new GormAttachmentRepository
func NewGormAttachmentRepository(db *gorm.DB) *GormAttachmentRepository {
	return &GormAttachmentRepository{db: db}
}

func (r *GormAttachmentRepository) Create(ctx context.Context, a *dispute.Attachment) error {
	model := models.AttachmentModelFromDomain(a)
	return translateError(dbFromContext(ctx, r.db).Create(model).Error)
}

func (r *GormAttachmentRepository) Update(ctx context.Context, a *dispute.Attachment) error {
	model := models.AttachmentModelFromDomain(a)
	result := dbFromContext(ctx, r.db).Model(&models.AttachmentModel{}).
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

func (r *GormAttachmentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := dbFromContext(ctx, r.db).Delete(&models.AttachmentModel{}, "id = ?", id)
	if result.Error != nil {
		return translateError(result.Error)
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

func (r *GormAttachmentRepository) FindByID(ctx context.Context, id uuid.UUID) (*dispute.Attachment, error) {
	var model models.AttachmentModel
	if err := dbFromContext(ctx, r.db).First(&model, "id = ?", id).Error; err != nil {
		return nil, translateError(err)
	}
	return model.ToDomain(), nil
}

func (r *GormAttachmentRepository) FindAll(ctx context.Context, filter shared.Filter) ([]*dispute.Attachment, int64, error) {
	filter = filter.Normalize()
	db := dbFromContext(ctx, r.db)

	var total int64
	if err := db.Model(&models.AttachmentModel{}).Count(&total).Error; err != nil {
		return nil, 0, translateError(err)
	}

	var attachmentModels []models.AttachmentModel
	if err := db.Model(&models.AttachmentModel{}).
		Order("created_at DESC").
		Offset(filter.Offset).
		Limit(filter.Limit).
		Find(&attachmentModels).Error; err != nil {
		return nil, 0, translateError(err)
	}

	attachments := make([]*dispute.Attachment, len(attachmentModels))
	for i := range attachmentModels {
		attachments[i] = attachmentModels[i].ToDomain()
	}
	return attachments, total, nil
}

func (r *GormAttachmentRepository) FindByGlosa(ctx context.Context, glosaID uuid.UUID) ([]*dispute.Attachment, error) {
	var attachmentModels []models.AttachmentModel
	if err := dbFromContext(ctx, r.db).
		Where("glosa_id = ?", glosaID).
		Order("created_at DESC").
		Find(&attachmentModels).Error; err != nil {
		return nil, translateError(err)
	}

	attachments := make([]*dispute.Attachment, len(attachmentModels))
	for i := range attachmentModels {
		attachments[i] = attachmentModels[i].ToDomain()
	}
	return attachments, nil
}
