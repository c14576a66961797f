package services

import (
	"context"
	"io"
	"time"

	"github.com/DHANUSH-web/commercial-catalog/entity"
	"github.com/DHANUSH-web/commercial-catalog/repository"
	"github.com/DHANUSH-web/commercial-catalog/storage"
	"github.com/DHANUSH-web/commercial-catalog/utils"
)

// AttachmentService uploads blobs and keeps their metadata records in
// the store.
type AttachmentService struct {
	store repository.Store
	blobs storage.BlobStorage
}

func NewAttachmentService(store repository.Store, blobs storage.BlobStorage) *AttachmentService {
	return &AttachmentService{store: store, blobs: blobs}
}

// Upload stores the blob under a fresh key scoped to the
// establishment, then records the attachment. The establishment must
// exist; otherwise nothing is written.
func (s *AttachmentService) Upload(ctx context.Context, actorID, establishmentID uint, fileName, mimeType string, size int64, r io.Reader) (*entity.Attachment, error) {
	if actorID == 0 {
		return nil, ErrNoActor
	}
	if _, err := s.store.FindEstablishmentByID(ctx, establishmentID); err != nil {
		return nil, err
	}

	if mimeType == "" {
		mimeType = utils.MimeTypeFromName(fileName)
	}

	key := storage.NewObjectKey(establishmentID, fileName)
	url, err := s.blobs.Upload(ctx, key, r, mimeType)
	if err != nil {
		return nil, err
	}

	att := &entity.Attachment{
		FileName:        fileName,
		FileType:        mimeType,
		FileSize:        utils.FormatFileSize(size),
		FilePath:        url,
		StorageKey:      key,
		EstablishmentID: establishmentID,
		UserID:          actorID,
	}
	att.CreatedAt = time.Now()
	if err := s.store.CreateAttachment(ctx, att); err != nil {
		return nil, err
	}
	return att, nil
}

// Record stores metadata for a blob that is already hosted elsewhere
// (no upload happens here).
func (s *AttachmentService) Record(ctx context.Context, actorID uint, att *entity.Attachment) (*entity.Attachment, error) {
	if actorID == 0 {
		return nil, ErrNoActor
	}
	att.UserID = actorID
	if att.FileType == "" {
		att.FileType = utils.MimeTypeFromName(att.FileName)
	}
	if att.CreatedAt.IsZero() {
		att.CreatedAt = time.Now()
	}
	if err := s.store.CreateAttachment(ctx, att); err != nil {
		return nil, err
	}
	return att, nil
}

func (s *AttachmentService) Get(ctx context.Context, id uint) (*entity.Attachment, error) {
	return s.store.FindAttachmentByID(ctx, id)
}

// ListByEstablishment returns the attachments of an existing
// establishment; a missing establishment is ErrNotFound.
func (s *AttachmentService) ListByEstablishment(ctx context.Context, establishmentID uint) ([]entity.Attachment, error) {
	if _, err := s.store.FindEstablishmentByID(ctx, establishmentID); err != nil {
		return nil, err
	}
	return s.store.ListAttachmentsByEstablishment(ctx, establishmentID)
}

// Delete removes the blob by its stored storage key, then the record.
func (s *AttachmentService) Delete(ctx context.Context, id uint) error {
	att, err := s.store.FindAttachmentByID(ctx, id)
	if err != nil {
		return err
	}
	if att.StorageKey != "" {
		if err := s.blobs.Delete(ctx, att.StorageKey, att.FileType); err != nil {
			return err
		}
	}
	return s.store.DeleteAttachment(ctx, id)
}
