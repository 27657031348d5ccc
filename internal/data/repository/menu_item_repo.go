package repository

import (
	"context"
	"fmt"

	"coffee-directory/internal/data/entity"
	"coffee-directory/pkg/database"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type MenuItemRepository interface {
	Create(ctx context.Context, item *entity.MenuItem) error
	FindByShopID(ctx context.Context, shopID uuid.UUID) ([]*entity.MenuItem, error)
}

type menuItemRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewMenuItemRepository(db database.PgxIface, log *zap.Logger) MenuItemRepository {
	return &menuItemRepository{
		db:  db,
		log: log.With(zap.String("repository", "menu_item")),
	}
}

func (r *menuItemRepository) Create(ctx context.Context, item *entity.MenuItem) error {
	query := `
		INSERT INTO menu_items (id, shop_id, name, description, price_cents, category)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := r.db.Exec(ctx, query,
		item.ID,
		item.ShopID,
		item.Name,
		item.Description,
		item.PriceCents,
		item.Category,
	)

	if err != nil {
		r.log.Error("Failed to create menu item",
			zap.Error(err),
			zap.String("shop_id", item.ShopID.String()),
			zap.String("name", item.Name),
		)
		return fmt.Errorf("create menu item %s: %w", item.Name, err)
	}

	return nil
}

func (r *menuItemRepository) FindByShopID(ctx context.Context, shopID uuid.UUID) ([]*entity.MenuItem, error) {
	query := `
		SELECT id, shop_id, name, description, price_cents, category
		FROM menu_items
		WHERE shop_id = $1
		ORDER BY name
	`

	rows, err := r.db.Query(ctx, query, shopID)
	if err != nil {
		r.log.Error("Failed to find menu items by shop",
			zap.Error(err),
			zap.String("shop_id", shopID.String()),
		)
		return nil, fmt.Errorf("find menu items of shop %s: %w", shopID.String(), err)
	}
	defer rows.Close()

	var items []*entity.MenuItem
	for rows.Next() {
		var item entity.MenuItem
		err := rows.Scan(
			&item.ID,
			&item.ShopID,
			&item.Name,
			&item.Description,
			&item.PriceCents,
			&item.Category,
		)
		if err != nil {
			r.log.Error("Failed to scan menu item row", zap.Error(err))
			return nil, fmt.Errorf("scan menu item row: %w", err)
		}
		items = append(items, &item)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate menu items rows: %w", err)
	}

	return items, nil
}
