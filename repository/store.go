package repository

import (
	"context"

	"github.com/DHANUSH-web/commercial-catalog/entity"
)

// Store is the capability interface over the directory data. The GORM
// store implements it for the relational path; docstore.Store
// implements it over Redis for the document path. The HTTP layer only
// ever sees this interface, so the backend is swappable with a single
// config flag at startup.
type Store interface {
	// Users
	CreateUser(ctx context.Context, user *entity.User) error
	FindUserByID(ctx context.Context, id uint) (*entity.User, error)
	FindUserByUsername(ctx context.Context, username string) (*entity.User, error)

	// Establishments
	CreateEstablishment(ctx context.Context, est *entity.Establishment) error
	FindEstablishmentByID(ctx context.Context, id uint) (*entity.Establishment, error)
	ListEstablishments(ctx context.Context, filter EstablishmentFilter) ([]entity.Establishment, error)
	UpdateEstablishment(ctx context.Context, id uint, updates map[string]any) error
	DeleteEstablishment(ctx context.Context, id uint) error

	// Attachments
	CreateAttachment(ctx context.Context, att *entity.Attachment) error
	FindAttachmentByID(ctx context.Context, id uint) (*entity.Attachment, error)
	ListAttachmentsByEstablishment(ctx context.Context, establishmentID uint) ([]entity.Attachment, error)
	DeleteAttachment(ctx context.Context, id uint) error
}

// Sort labels accepted by ListEstablishments. "createdAt" is a legacy
// alias for SortNewest; anything unrecognized falls back to natural
// order with no ordering guarantee.
const (
	SortNewest       = "Newest first"
	SortHighestRated = "Highest rated"
	SortNameAsc      = "Name A-Z"
	SortNameDesc     = "Name Z-A"
)

// Rating buckets accepted by EstablishmentFilter.Rating.
const (
	RatingFiveStars = "5 stars"
	RatingFourPlus  = "4+ stars"
	RatingThreePlus = "3+ stars"
)

// Sentinels clients send for an absent filter. Only these exact
// values clear a filter; a location that merely starts with "All "
// (say "All Saints Road") is a real equality filter.
const (
	AllCategories = "All categories"
	AllLocations  = "All locations"
	AllRatings    = "All ratings"
)

// EstablishmentFilter carries the optional filter criteria and sort
// key for listing establishments. Zero values and "All ..." sentinels
// mean "no filter"; present filters AND-combine.
type EstablishmentFilter struct {
	Category string
	Location string
	Rating   string
	SortBy   string
}

// CategoryFilter returns the category to match and whether a filter
// applies at all.
func (f EstablishmentFilter) CategoryFilter() (string, bool) {
	return equalityFilter(f.Category, AllCategories)
}

// LocationFilter returns the location to match and whether a filter
// applies at all.
func (f EstablishmentFilter) LocationFilter() (string, bool) {
	return equalityFilter(f.Location, AllLocations)
}

// RatingBucket resolves the rating filter into a threshold. exact
// means rating == min; otherwise rating >= min. ok is false when no
// rating filter applies (absent, sentinel, or unrecognized bucket).
// The comparison is over the rating strings, whose lexical order
// matches numeric order for the seven representable values.
func (f EstablishmentFilter) RatingBucket() (min string, exact bool, ok bool) {
	switch f.Rating {
	case RatingFiveStars:
		return "5", true, true
	case RatingFourPlus:
		return "4", false, true
	case RatingThreePlus:
		return "3", false, true
	default:
		return "", false, false
	}
}

func equalityFilter(v, sentinel string) (string, bool) {
	if v == "" || v == sentinel {
		return "", false
	}
	return v, true
}
