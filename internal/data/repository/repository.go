package repository

import (
	"coffee-directory/pkg/database"

	"go.uber.org/zap"
)

type Repository struct {
	User     UserRepository
	Shop     ShopRepository
	Location LocationRepository
	MenuItem MenuItemRepository
	Review   ReviewRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		User:     NewUserRepository(db, log),
		Shop:     NewShopRepository(db, log),
		Location: NewLocationRepository(db, log),
		MenuItem: NewMenuItemRepository(db, log),
		Review:   NewReviewRepository(db, log),
	}
}
