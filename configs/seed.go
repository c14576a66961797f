package configs

import (
	"context"
	"errors"
	"time"

	"github.com/DHANUSH-web/commercial-catalog/entity"
	"github.com/DHANUSH-web/commercial-catalog/repository"

	"golang.org/x/crypto/bcrypt"
)

// SeedDemo loads a demo account and a few establishments so a fresh
// instance has something to show. Idempotent: an existing demo user
// means the data is already there.
func SeedDemo(store repository.Store) error {
	ctx := context.Background()

	if _, err := store.FindUserByUsername(ctx, "demo"); err == nil {
		return nil
	} else if !errors.Is(err, repository.ErrNotFound) {
		return err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte("demo1234"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	demo := &entity.User{
		Username: "demo",
		Email:    "demo@example.com",
		Password: string(hashed),
		Name:     "Demo User",
	}
	demo.CreatedAt = time.Now()
	if err := store.CreateUser(ctx, demo); err != nil {
		return err
	}

	samples := []entity.Establishment{
		{Name: "Blue Fig Bistro", Category: "Restaurant", Location: "Downtown", Rating: "5", Description: "Seasonal plates and a long wine list."},
		{Name: "Corner Hardware", Category: "Retail", Location: "Suburban", Rating: "4"},
		{Name: "Midtown Cleaners", Category: "Services", Location: "Midtown", Rating: "3.5"},
		{Name: "Orpheum Cinema", Category: "Entertainment", Location: "Uptown", Rating: "4.5"},
	}
	for i := range samples {
		samples[i].UserID = demo.ID
		samples[i].CreatedAt = time.Now()
		if err := store.CreateEstablishment(ctx, &samples[i]); err != nil {
			return err
		}
	}
	return nil
}
