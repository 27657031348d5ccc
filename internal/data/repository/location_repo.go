package repository

import (
	"context"
	"fmt"

	"coffee-directory/internal/data/entity"
	"coffee-directory/pkg/database"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type LocationRepository interface {
	Create(ctx context.Context, location *entity.Location) error
	FindByShopID(ctx context.Context, shopID uuid.UUID) ([]*entity.Location, error)
}

type locationRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewLocationRepository(db database.PgxIface, log *zap.Logger) LocationRepository {
	return &locationRepository{
		db:  db,
		log: log.With(zap.String("repository", "location")),
	}
}

func (r *locationRepository) Create(ctx context.Context, location *entity.Location) error {
	query := `
		INSERT INTO locations (id, shop_id, address, city, state, zipcode)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := r.db.Exec(ctx, query,
		location.ID,
		location.ShopID,
		location.Address,
		location.City,
		location.State,
		location.Zipcode,
	)

	if err != nil {
		r.log.Error("Failed to create location",
			zap.Error(err),
			zap.String("shop_id", location.ShopID.String()),
			zap.String("address", location.Address),
		)
		return fmt.Errorf("create location for shop %s: %w", location.ShopID.String(), err)
	}

	return nil
}

func (r *locationRepository) FindByShopID(ctx context.Context, shopID uuid.UUID) ([]*entity.Location, error) {
	query := `
		SELECT id, shop_id, address, city, state, zipcode
		FROM locations
		WHERE shop_id = $1
		ORDER BY address
	`

	rows, err := r.db.Query(ctx, query, shopID)
	if err != nil {
		r.log.Error("Failed to find locations by shop",
			zap.Error(err),
			zap.String("shop_id", shopID.String()),
		)
		return nil, fmt.Errorf("find locations of shop %s: %w", shopID.String(), err)
	}
	defer rows.Close()

	var locations []*entity.Location
	for rows.Next() {
		var location entity.Location
		err := rows.Scan(
			&location.ID,
			&location.ShopID,
			&location.Address,
			&location.City,
			&location.State,
			&location.Zipcode,
		)
		if err != nil {
			r.log.Error("Failed to scan location row", zap.Error(err))
			return nil, fmt.Errorf("scan location row: %w", err)
		}
		locations = append(locations, &location)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate locations rows: %w", err)
	}

	return locations, nil
}
