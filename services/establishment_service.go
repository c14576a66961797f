package services

import (
	"context"
	"errors"
	"time"

	"github.com/DHANUSH-web/commercial-catalog/entity"
	"github.com/DHANUSH-web/commercial-catalog/repository"
	"github.com/DHANUSH-web/commercial-catalog/storage"

	"github.com/rs/zerolog/log"
)

// ErrNoActor is returned when a write arrives without an authenticated
// principal. There is deliberately no fallback owner.
var ErrNoActor = errors.New("acting user required")

// EstablishmentService owns the establishment lifecycle, including the
// attachment cascade on delete.
type EstablishmentService struct {
	store repository.Store
	blobs storage.BlobStorage
}

func NewEstablishmentService(store repository.Store, blobs storage.BlobStorage) *EstablishmentService {
	return &EstablishmentService{store: store, blobs: blobs}
}

// CreateInput carries the fields a client may set on creation.
type CreateEstablishmentInput struct {
	Name        string
	Category    string
	Location    string
	Description string
	Rating      string
	CoverImage  string
}

func (s *EstablishmentService) Create(ctx context.Context, actorID uint, in CreateEstablishmentInput) (*entity.Establishment, error) {
	if actorID == 0 {
		return nil, ErrNoActor
	}
	est := &entity.Establishment{
		Name:        in.Name,
		Category:    in.Category,
		Location:    in.Location,
		Description: in.Description,
		Rating:      in.Rating,
		CoverImage:  in.CoverImage,
		UserID:      actorID,
	}
	if est.CreatedAt.IsZero() {
		est.CreatedAt = time.Now()
	}
	if err := s.store.CreateEstablishment(ctx, est); err != nil {
		return nil, err
	}
	return est, nil
}

func (s *EstablishmentService) Get(ctx context.Context, id uint) (*entity.Establishment, error) {
	return s.store.FindEstablishmentByID(ctx, id)
}

func (s *EstablishmentService) List(ctx context.Context, filter repository.EstablishmentFilter) ([]entity.Establishment, error) {
	return s.store.ListEstablishments(ctx, filter)
}

// UpdateEstablishmentInput is a partial-field merge; nil means "leave
// unchanged".
type UpdateEstablishmentInput struct {
	Name        *string
	Category    *string
	Location    *string
	Description *string
	Rating      *string
	CoverImage  *string
}

func (s *EstablishmentService) Update(ctx context.Context, id uint, in UpdateEstablishmentInput) error {
	updates := map[string]any{}
	if in.Name != nil {
		updates["name"] = *in.Name
	}
	if in.Category != nil {
		updates["category"] = *in.Category
	}
	if in.Location != nil {
		updates["location"] = *in.Location
	}
	if in.Description != nil {
		updates["description"] = *in.Description
	}
	if in.Rating != nil {
		updates["rating"] = *in.Rating
	}
	if in.CoverImage != nil {
		updates["cover_image"] = *in.CoverImage
	}
	// An empty patch still verifies the target exists so the caller
	// gets the same not-found answer as a non-empty one.
	if len(updates) == 0 {
		_, err := s.store.FindEstablishmentByID(ctx, id)
		return err
	}
	return s.store.UpdateEstablishment(ctx, id, updates)
}

// Delete removes the establishment, its attachment records and their
// blobs. Blob deletion is best effort: a missing or unreachable blob
// does not keep the records alive.
func (s *EstablishmentService) Delete(ctx context.Context, id uint) error {
	atts, err := s.store.ListAttachmentsByEstablishment(ctx, id)
	if err != nil {
		return err
	}
	for _, att := range atts {
		if att.StorageKey == "" {
			continue
		}
		if err := s.blobs.Delete(ctx, att.StorageKey, att.FileType); err != nil {
			log.Warn().Err(err).Str("key", att.StorageKey).Msg("blob delete failed")
		}
	}
	return s.store.DeleteEstablishment(ctx, id)
}
