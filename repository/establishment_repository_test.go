package repository_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/DHANUSH-web/commercial-catalog/entity"
	"github.com/DHANUSH-web/commercial-catalog/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestStore(t *testing.T) *repository.GormStore {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&entity.User{}, &entity.Establishment{}, &entity.Attachment{}))
	return repository.NewGormStore(db)
}

func seedEstablishments(t *testing.T, store *repository.GormStore) {
	t.Helper()
	ctx := context.Background()
	rows := []entity.Establishment{
		{Name: "Delta Diner", Category: "Restaurant", Location: "Downtown", Rating: "5", UserID: 1},
		{Name: "Alpha Mart", Category: "Retail", Location: "Uptown", Rating: "3", UserID: 1},
		{Name: "Charlie Cuts", Category: "Services", Location: "Downtown", Rating: "4.5", UserID: 1},
		{Name: "Bravo Arcade", Category: "Entertainment", Location: "Midtown", Rating: "2.5", UserID: 1},
		{Name: "Echo Eats", Category: "Restaurant", Location: "Downtown", Rating: "3.5", UserID: 1},
	}
	base := time.Now().Add(-time.Hour)
	for i := range rows {
		rows[i].CreatedAt = base.Add(time.Duration(i) * time.Minute)
		require.NoError(t, store.CreateEstablishment(ctx, &rows[i]))
	}
}

func names(ests []entity.Establishment) []string {
	out := make([]string, len(ests))
	for i, e := range ests {
		out[i] = e.Name
	}
	return out
}

func TestListEstablishments_Filters(t *testing.T) {
	store := newTestStore(t)
	seedEstablishments(t, store)
	ctx := context.Background()

	t.Run("no filters returns everything", func(t *testing.T) {
		ests, err := store.ListEstablishments(ctx, repository.EstablishmentFilter{})
		require.NoError(t, err)
		assert.Len(t, ests, 5)
	})

	t.Run("All sentinels never narrow", func(t *testing.T) {
		ests, err := store.ListEstablishments(ctx, repository.EstablishmentFilter{
			Category: "All categories",
			Location: "All locations",
			Rating:   "All ratings",
		})
		require.NoError(t, err)
		assert.Len(t, ests, 5)
	})

	t.Run("category equality", func(t *testing.T) {
		ests, err := store.ListEstablishments(ctx, repository.EstablishmentFilter{Category: "Restaurant"})
		require.NoError(t, err)
		assert.ElementsMatch(t, []string{"Delta Diner", "Echo Eats"}, names(ests))
	})

	t.Run("filters AND-combine", func(t *testing.T) {
		ests, err := store.ListEstablishments(ctx, repository.EstablishmentFilter{
			Category: "Restaurant",
			Location: "Downtown",
			Rating:   repository.RatingFourPlus,
		})
		require.NoError(t, err)
		assert.Equal(t, []string{"Delta Diner"}, names(ests))
	})

	t.Run("sentinel category with rating bucket", func(t *testing.T) {
		// {A: Restaurant/5, B: Retail/3}, filter {All categories, 4+} -> A only
		ests, err := store.ListEstablishments(ctx, repository.EstablishmentFilter{
			Category: "All categories",
			Rating:   repository.RatingFourPlus,
		})
		require.NoError(t, err)
		assert.ElementsMatch(t, []string{"Delta Diner", "Charlie Cuts"}, names(ests))
	})

	t.Run("empty result is not an error", func(t *testing.T) {
		ests, err := store.ListEstablishments(ctx, repository.EstablishmentFilter{Location: "Nowhere"})
		require.NoError(t, err)
		assert.Empty(t, ests)
	})
}

func TestListEstablishments_AllPrefixedLocation(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	rows := []entity.Establishment{
		{Name: "Saints Cafe", Category: "Restaurant", Location: "All Saints Road", Rating: "4", UserID: 1},
		{Name: "Other Shop", Category: "Retail", Location: "Downtown", Rating: "4", UserID: 1},
	}
	for i := range rows {
		require.NoError(t, store.CreateEstablishment(ctx, &rows[i]))
	}

	// Only the exact sentinel clears the filter; a location that merely
	// starts with "All " matches by equality.
	ests, err := store.ListEstablishments(ctx, repository.EstablishmentFilter{Location: "All Saints Road"})
	require.NoError(t, err)
	assert.Equal(t, []string{"Saints Cafe"}, names(ests))

	ests, err = store.ListEstablishments(ctx, repository.EstablishmentFilter{Location: repository.AllLocations})
	require.NoError(t, err)
	assert.Len(t, ests, 2)
}

func TestListEstablishments_RatingBuckets(t *testing.T) {
	store := newTestStore(t)
	seedEstablishments(t, store)
	ctx := context.Background()

	t.Run("5 stars is exact", func(t *testing.T) {
		ests, err := store.ListEstablishments(ctx, repository.EstablishmentFilter{Rating: repository.RatingFiveStars})
		require.NoError(t, err)
		assert.ElementsMatch(t, []string{"Delta Diner"}, names(ests))
	})

	t.Run("4+ stars includes 4.5 and 5", func(t *testing.T) {
		ests, err := store.ListEstablishments(ctx, repository.EstablishmentFilter{Rating: repository.RatingFourPlus})
		require.NoError(t, err)
		assert.ElementsMatch(t, []string{"Delta Diner", "Charlie Cuts"}, names(ests))
	})

	t.Run("3+ stars includes 3 through 5", func(t *testing.T) {
		ests, err := store.ListEstablishments(ctx, repository.EstablishmentFilter{Rating: repository.RatingThreePlus})
		require.NoError(t, err)
		assert.ElementsMatch(t, []string{"Delta Diner", "Charlie Cuts", "Echo Eats", "Alpha Mart"}, names(ests))
	})

	t.Run("unrecognized bucket applies no filter", func(t *testing.T) {
		ests, err := store.ListEstablishments(ctx, repository.EstablishmentFilter{Rating: "2+ stars"})
		require.NoError(t, err)
		assert.Len(t, ests, 5)
	})
}

func TestListEstablishments_Sorting(t *testing.T) {
	store := newTestStore(t)
	seedEstablishments(t, store)
	ctx := context.Background()

	t.Run("name orders are reverses of each other", func(t *testing.T) {
		asc, err := store.ListEstablishments(ctx, repository.EstablishmentFilter{SortBy: repository.SortNameAsc})
		require.NoError(t, err)
		desc, err := store.ListEstablishments(ctx, repository.EstablishmentFilter{SortBy: repository.SortNameDesc})
		require.NoError(t, err)

		require.Len(t, desc, len(asc))
		for i := range asc {
			assert.Equal(t, asc[i].Name, desc[len(desc)-1-i].Name)
		}
		assert.Equal(t, []string{"Alpha Mart", "Bravo Arcade", "Charlie Cuts", "Delta Diner", "Echo Eats"}, names(asc))
	})

	t.Run("newest first", func(t *testing.T) {
		ests, err := store.ListEstablishments(ctx, repository.EstablishmentFilter{SortBy: repository.SortNewest})
		require.NoError(t, err)
		require.Len(t, ests, 5)
		assert.Equal(t, "Echo Eats", ests[0].Name)
		for i := 1; i < len(ests); i++ {
			assert.False(t, ests[i].CreatedAt.After(ests[i-1].CreatedAt))
		}
	})

	t.Run("createdAt is a legacy alias for newest", func(t *testing.T) {
		ests, err := store.ListEstablishments(ctx, repository.EstablishmentFilter{SortBy: "createdAt"})
		require.NoError(t, err)
		require.NotEmpty(t, ests)
		assert.Equal(t, "Echo Eats", ests[0].Name)
	})

	t.Run("highest rated", func(t *testing.T) {
		ests, err := store.ListEstablishments(ctx, repository.EstablishmentFilter{SortBy: repository.SortHighestRated})
		require.NoError(t, err)
		require.Len(t, ests, 5)
		assert.Equal(t, "Delta Diner", ests[0].Name)
		assert.Equal(t, "Bravo Arcade", ests[4].Name)
	})
}

func TestEstablishmentDefaults(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	est := &entity.Establishment{Name: "No Rating", Category: "Retail", Location: "Downtown", UserID: 1}
	require.NoError(t, store.CreateEstablishment(ctx, est))

	got, err := store.FindEstablishmentByID(ctx, est.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.DefaultRating, got.Rating)
}

func TestUpdateEstablishment(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	est := &entity.Establishment{Name: "Old Name", Category: "Retail", Location: "Uptown", Rating: "4", UserID: 1}
	require.NoError(t, store.CreateEstablishment(ctx, est))

	err := store.UpdateEstablishment(ctx, est.ID, map[string]any{"name": "New Name", "rating": "5"})
	require.NoError(t, err)

	got, err := store.FindEstablishmentByID(ctx, est.ID)
	require.NoError(t, err)
	assert.Equal(t, "New Name", got.Name)
	assert.Equal(t, "5", got.Rating)
	assert.Equal(t, "Uptown", got.Location) // untouched fields survive the merge

	err = store.UpdateEstablishment(ctx, 9999, map[string]any{"name": "x"})
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestDeleteEstablishment_CascadesAttachments(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	est := &entity.Establishment{Name: "Doomed", Category: "Services", Location: "Midtown", Rating: "4", UserID: 1}
	require.NoError(t, store.CreateEstablishment(ctx, est))

	var attIDs []uint
	for i := 0; i < 3; i++ {
		att := &entity.Attachment{
			FileName:        fmt.Sprintf("doc-%d.pdf", i),
			FileType:        "application/pdf",
			FileSize:        "1.00 KB",
			FilePath:        fmt.Sprintf("/uploads/doc-%d.pdf", i),
			EstablishmentID: est.ID,
			UserID:          1,
		}
		require.NoError(t, store.CreateAttachment(ctx, att))
		attIDs = append(attIDs, att.ID)
	}

	require.NoError(t, store.DeleteEstablishment(ctx, est.ID))

	_, err := store.FindEstablishmentByID(ctx, est.ID)
	assert.ErrorIs(t, err, repository.ErrNotFound)
	for _, id := range attIDs {
		_, err := store.FindAttachmentByID(ctx, id)
		assert.ErrorIs(t, err, repository.ErrNotFound)
	}

	err = store.DeleteEstablishment(ctx, est.ID)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestCreateAttachment_RequiresEstablishment(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	att := &entity.Attachment{
		FileName:        "orphan.pdf",
		FilePath:        "/uploads/orphan.pdf",
		EstablishmentID: 42,
		UserID:          1,
	}
	err := store.CreateAttachment(ctx, att)
	assert.ErrorIs(t, err, repository.ErrNotFound)

	// nothing was written
	atts, err := store.ListAttachmentsByEstablishment(ctx, 42)
	require.NoError(t, err)
	assert.Empty(t, atts)
}
