package repository

import (
	"context"
	"errors"

	"github.com/DHANUSH-web/commercial-catalog/entity"

	"gorm.io/gorm"
)

// AttachmentRepository talks to the attachments table.
type AttachmentRepository struct {
	DB *gorm.DB
}

func NewAttachmentRepository(db *gorm.DB) *AttachmentRepository {
	return &AttachmentRepository{DB: db}
}

// Create inserts an attachment after checking the referenced
// establishment exists. The check happens at write time, not as a
// database constraint.
func (r *AttachmentRepository) Create(ctx context.Context, att *entity.Attachment) error {
	var count int64
	err := r.DB.WithContext(ctx).Model(&entity.Establishment{}).
		Where("id = ?", att.EstablishmentID).
		Count(&count).Error
	if err != nil {
		return err
	}
	if count == 0 {
		return ErrNotFound
	}
	return r.DB.WithContext(ctx).Create(att).Error
}

func (r *AttachmentRepository) FindByID(ctx context.Context, id uint) (*entity.Attachment, error) {
	var att entity.Attachment
	if err := r.DB.WithContext(ctx).First(&att, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &att, nil
}

func (r *AttachmentRepository) ListByEstablishment(ctx context.Context, establishmentID uint) ([]entity.Attachment, error) {
	var atts []entity.Attachment
	err := r.DB.WithContext(ctx).
		Where("establishment_id = ?", establishmentID).
		Find(&atts).Error
	if err != nil {
		return nil, err
	}
	return atts, nil
}

func (r *AttachmentRepository) Delete(ctx context.Context, id uint) error {
	res := r.DB.WithContext(ctx).Unscoped().Delete(&entity.Attachment{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
