package repository

import (
	"context"
	"errors"

	"github.com/DHANUSH-web/commercial-catalog/entity"

	"gorm.io/gorm"
)

// GormStore implements Store over a relational database. It bundles
// the per-table repositories behind the one capability interface the
// rest of the app consumes.
type GormStore struct {
	Users          *UserRepository
	Establishments *EstablishmentRepository
	Attachments    *AttachmentRepository

	db *gorm.DB
}

var _ Store = (*GormStore)(nil)

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{
		Users:          NewUserRepository(db),
		Establishments: NewEstablishmentRepository(db),
		Attachments:    NewAttachmentRepository(db),
		db:             db,
	}
}

func (s *GormStore) CreateUser(ctx context.Context, user *entity.User) error {
	return s.Users.Create(ctx, user)
}

func (s *GormStore) FindUserByID(ctx context.Context, id uint) (*entity.User, error) {
	return s.Users.FindByID(ctx, id)
}

func (s *GormStore) FindUserByUsername(ctx context.Context, username string) (*entity.User, error) {
	return s.Users.FindByUsername(ctx, username)
}

func (s *GormStore) CreateEstablishment(ctx context.Context, est *entity.Establishment) error {
	return s.Establishments.Create(ctx, est)
}

func (s *GormStore) FindEstablishmentByID(ctx context.Context, id uint) (*entity.Establishment, error) {
	return s.Establishments.FindByID(ctx, id)
}

func (s *GormStore) ListEstablishments(ctx context.Context, filter EstablishmentFilter) ([]entity.Establishment, error) {
	return s.Establishments.List(ctx, filter)
}

func (s *GormStore) UpdateEstablishment(ctx context.Context, id uint, updates map[string]any) error {
	return s.Establishments.Update(ctx, id, updates)
}

// DeleteEstablishment removes the establishment and every attachment
// that references it, attachments first, in one transaction. Deletes
// are hard deletes.
func (s *GormStore) DeleteEstablishment(ctx context.Context, id uint) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var est entity.Establishment
		if err := tx.First(&est, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}
		if err := tx.Unscoped().Where("establishment_id = ?", id).Delete(&entity.Attachment{}).Error; err != nil {
			return err
		}
		return tx.Unscoped().Delete(&entity.Establishment{}, id).Error
	})
}

func (s *GormStore) CreateAttachment(ctx context.Context, att *entity.Attachment) error {
	return s.Attachments.Create(ctx, att)
}

func (s *GormStore) FindAttachmentByID(ctx context.Context, id uint) (*entity.Attachment, error) {
	return s.Attachments.FindByID(ctx, id)
}

func (s *GormStore) ListAttachmentsByEstablishment(ctx context.Context, establishmentID uint) ([]entity.Attachment, error) {
	return s.Attachments.ListByEstablishment(ctx, establishmentID)
}

func (s *GormStore) DeleteAttachment(ctx context.Context, id uint) error {
	return s.Attachments.Delete(ctx, id)
}
