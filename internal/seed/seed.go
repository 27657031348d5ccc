package seed

import (
	"context"
	"fmt"
	"time"

	"coffee-directory/internal/data/entity"
	"coffee-directory/internal/data/repository"
	"coffee-directory/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

func strPtr(s string) *string { return &s }

// Run prepopulates the directory with starter accounts and shops.
// No-op when the database already holds users or shops.
func Run(ctx context.Context, repo *repository.Repository, log *zap.Logger) error {
	userCount, err := repo.User.CountAll(ctx)
	if err != nil {
		return fmt.Errorf("count users: %w", err)
	}
	shopCount, err := repo.Shop.CountAll(ctx)
	if err != nil {
		return fmt.Errorf("count shops: %w", err)
	}
	if userCount > 0 || shopCount > 0 {
		log.Info("Database already populated, skipping seed")
		return nil
	}

	accounts := []struct {
		username string
		email    string
		password string
		role     entity.UserRole
	}{
		{"admin", "admin@email.com", "admin123", entity.RoleAdmin},
		{"manager", "manager@email.com", "manager123", entity.RoleManager},
		{"user", "user@email.com", "user123", entity.RoleUser},
	}

	for _, a := range accounts {
		hash, err := utils.HashPassword(a.password)
		if err != nil {
			return fmt.Errorf("hash seed password: %w", err)
		}

		user := &entity.User{
			BaseSimple: entity.BaseSimple{
				ID:        uuid.New(),
				CreatedAt: time.Now(),
			},
			Username:     a.username,
			Email:        a.email,
			PasswordHash: hash,
			Role:         a.role,
		}
		if err := repo.User.Create(ctx, user); err != nil {
			return fmt.Errorf("seed user %s: %w", a.username, err)
		}
	}

	shops := []*entity.Shop{
		{
			BaseSimple:  entity.BaseSimple{ID: uuid.New(), CreatedAt: time.Now()},
			Name:        "Qahwah House",
			Description: strPtr("Relaxed cafe specializing in honey-sweetened Yemeni coffee, as well as pastries like the honeycomb bread and Sabaya."),
			Phone:       strPtr("516-214-6143"),
			Website:     strPtr("https://qahwahhouse.com/"),
		},
		{
			BaseSimple:  entity.BaseSimple{ID: uuid.New(), CreatedAt: time.Now()},
			Name:        "NY Caffeine",
			Description: strPtr("Trendy coffee shop with a cozy atmosphere dishing up iced brews and hot cups, plus sweets."),
			Phone:       strPtr("516-216-1683"),
			Website:     strPtr("https://www.nycaffeine.com/"),
		},
		{
			BaseSimple:  entity.BaseSimple{ID: uuid.New(), CreatedAt: time.Now()},
			Name:        "Don Paco Panadería & Café",
			Description: strPtr("Casual space serving popular Mexican desserts, tacos, breads, breakfasts and tortas along with coffee."),
			Phone:       strPtr("516-280-2325"),
			Website:     strPtr("https://donpacolopez.com/"),
		},
	}

	for _, shop := range shops {
		if err := repo.Shop.Create(ctx, shop); err != nil {
			return fmt.Errorf("seed shop %s: %w", shop.Name, err)
		}
	}

	log.Info("Database prepopulated",
		zap.Int("users", len(accounts)),
		zap.Int("shops", len(shops)))

	return nil
}
