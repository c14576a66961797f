package repository

import (
	"context"
	"errors"

	"github.com/DHANUSH-web/commercial-catalog/entity"

	"gorm.io/gorm"
)

// EstablishmentRepository talks to the establishments table.
type EstablishmentRepository struct {
	DB *gorm.DB
}

func NewEstablishmentRepository(db *gorm.DB) *EstablishmentRepository {
	return &EstablishmentRepository{DB: db}
}

func (r *EstablishmentRepository) Create(ctx context.Context, est *entity.Establishment) error {
	if est.Rating == "" {
		est.Rating = entity.DefaultRating
	}
	return r.DB.WithContext(ctx).Create(est).Error
}

func (r *EstablishmentRepository) FindByID(ctx context.Context, id uint) (*entity.Establishment, error) {
	var est entity.Establishment
	if err := r.DB.WithContext(ctx).First(&est, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &est, nil
}

// List composes the filter criteria into one query. Absent filters and
// "All ..." sentinels never narrow the result; present ones AND-combine.
func (r *EstablishmentRepository) List(ctx context.Context, filter EstablishmentFilter) ([]entity.Establishment, error) {
	q := r.DB.WithContext(ctx).Model(&entity.Establishment{})

	if cat, ok := filter.CategoryFilter(); ok {
		q = q.Where("category = ?", cat)
	}
	if loc, ok := filter.LocationFilter(); ok {
		q = q.Where("location = ?", loc)
	}
	if min, exact, ok := filter.RatingBucket(); ok {
		if exact {
			q = q.Where("rating = ?", min)
		} else {
			q = q.Where("rating >= ?", min)
		}
	}

	switch filter.SortBy {
	case SortNewest, "createdAt":
		q = q.Order("created_at DESC")
	case SortHighestRated:
		q = q.Order("rating DESC")
	case SortNameAsc:
		q = q.Order("name ASC")
	case SortNameDesc:
		q = q.Order("name DESC")
	}

	var ests []entity.Establishment
	if err := q.Find(&ests).Error; err != nil {
		return nil, err
	}
	return ests, nil
}

// Update applies a partial-field merge.
func (r *EstablishmentRepository) Update(ctx context.Context, id uint, updates map[string]any) error {
	res := r.DB.WithContext(ctx).Model(&entity.Establishment{}).Where("id = ?", id).Updates(updates)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
