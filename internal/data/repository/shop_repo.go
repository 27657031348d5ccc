package repository

import (
	"context"
	"fmt"
	"strings"

	"coffee-directory/internal/data/entity"
	"coffee-directory/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

// ShopFilter holds the optional list filters, all substring matches
type ShopFilter struct {
	Name  *string
	City  *string
	State *string
}

type ShopRepository interface {
	Create(ctx context.Context, shop *entity.Shop) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Shop, error)
	FindAll(ctx context.Context, filter ShopFilter) ([]*entity.Shop, error)
	Update(ctx context.Context, shop *entity.Shop) error
	CountAll(ctx context.Context) (int64, error)
	// Delete removes the shop and all of its locations, menu items and
	// reviews in one transaction
	Delete(ctx context.Context, id uuid.UUID) error
}

type shopRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewShopRepository(db database.PgxIface, log *zap.Logger) ShopRepository {
	return &shopRepository{
		db:  db,
		log: log.With(zap.String("repository", "shop")),
	}
}

func (r *shopRepository) Create(ctx context.Context, shop *entity.Shop) error {
	query := `
		INSERT INTO shops (id, name, description, phone, website, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := r.db.Exec(ctx, query,
		shop.ID,
		shop.Name,
		shop.Description,
		shop.Phone,
		shop.Website,
		shop.CreatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create shop",
			zap.Error(err),
			zap.String("name", shop.Name),
		)
		return fmt.Errorf("create shop %s: %w", shop.Name, err)
	}

	return nil
}

func (r *shopRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Shop, error) {
	query := `
		SELECT id, name, description, phone, website, created_at
		FROM shops
		WHERE id = $1
	`

	var shop entity.Shop
	err := r.db.QueryRow(ctx, query, id).Scan(
		&shop.ID,
		&shop.Name,
		&shop.Description,
		&shop.Phone,
		&shop.Website,
		&shop.CreatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find shop by ID",
			zap.Error(err),
			zap.String("shop_id", id.String()),
		)
		return nil, fmt.Errorf("find shop by ID %s: %w", id.String(), err)
	}

	return &shop, nil
}

// FindAll lists shops matching the filter. City or state filters join
// against locations, so shops without a matching location drop out.
func (r *shopRepository) FindAll(ctx context.Context, filter ShopFilter) ([]*entity.Shop, error) {
	var queryBuilder strings.Builder
	queryBuilder.WriteString(`
		SELECT DISTINCT s.id, s.name, s.description, s.phone, s.website, s.created_at
		FROM shops s
	`)

	args := []interface{}{}
	argCount := 1
	conditions := []string{}

	if (filter.City != nil && *filter.City != "") || (filter.State != nil && *filter.State != "") {
		queryBuilder.WriteString(" JOIN locations l ON l.shop_id = s.id")

		if filter.City != nil && *filter.City != "" {
			conditions = append(conditions, fmt.Sprintf("l.city ILIKE $%d", argCount))
			args = append(args, "%"+*filter.City+"%")
			argCount++
		}
		if filter.State != nil && *filter.State != "" {
			conditions = append(conditions, fmt.Sprintf("l.state ILIKE $%d", argCount))
			args = append(args, "%"+*filter.State+"%")
			argCount++
		}
	}

	if filter.Name != nil && *filter.Name != "" {
		conditions = append(conditions, fmt.Sprintf("s.name ILIKE $%d", argCount))
		args = append(args, "%"+*filter.Name+"%")
		argCount++
	}

	if len(conditions) > 0 {
		queryBuilder.WriteString(" WHERE " + strings.Join(conditions, " AND "))
	}

	queryBuilder.WriteString(" ORDER BY s.created_at, s.id")

	rows, err := r.db.Query(ctx, queryBuilder.String(), args...)
	if err != nil {
		r.log.Error("Failed to find all shops", zap.Error(err))
		return nil, fmt.Errorf("find all shops: %w", err)
	}
	defer rows.Close()

	var shops []*entity.Shop
	for rows.Next() {
		var shop entity.Shop
		err := rows.Scan(
			&shop.ID,
			&shop.Name,
			&shop.Description,
			&shop.Phone,
			&shop.Website,
			&shop.CreatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan shop row", zap.Error(err))
			return nil, fmt.Errorf("scan shop row: %w", err)
		}
		shops = append(shops, &shop)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate shops rows: %w", err)
	}

	return shops, nil
}

func (r *shopRepository) Update(ctx context.Context, shop *entity.Shop) error {
	query := `
		UPDATE shops
		SET name = $2, description = $3, phone = $4, website = $5
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		shop.ID,
		shop.Name,
		shop.Description,
		shop.Phone,
		shop.Website,
	)

	if err != nil {
		r.log.Error("Failed to update shop",
			zap.Error(err),
			zap.String("shop_id", shop.ID.String()),
		)
		return fmt.Errorf("update shop %s: %w", shop.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("shop %s not found", shop.ID.String())
	}

	return nil
}

func (r *shopRepository) CountAll(ctx context.Context) (int64, error) {
	query := `SELECT COUNT(*) FROM shops`

	var count int64
	err := r.db.QueryRow(ctx, query).Scan(&count)
	if err != nil {
		r.log.Error("Failed to count shops", zap.Error(err))
		return 0, fmt.Errorf("count all shops: %w", err)
	}

	return count, nil
}

func (r *shopRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		r.log.Error("Failed to begin delete transaction", zap.Error(err))
		return fmt.Errorf("begin delete shop %s: %w", id.String(), err)
	}
	defer tx.Rollback(ctx)

	// Children first, then the shop itself
	childQueries := []string{
		`DELETE FROM reviews WHERE shop_id = $1`,
		`DELETE FROM menu_items WHERE shop_id = $1`,
		`DELETE FROM locations WHERE shop_id = $1`,
	}
	for _, q := range childQueries {
		if _, err := tx.Exec(ctx, q, id); err != nil {
			r.log.Error("Failed to delete shop children",
				zap.Error(err),
				zap.String("shop_id", id.String()),
			)
			return fmt.Errorf("delete children of shop %s: %w", id.String(), err)
		}
	}

	result, err := tx.Exec(ctx, `DELETE FROM shops WHERE id = $1`, id)
	if err != nil {
		r.log.Error("Failed to delete shop",
			zap.Error(err),
			zap.String("shop_id", id.String()),
		)
		return fmt.Errorf("delete shop %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("shop %s not found", id.String())
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit delete shop %s: %w", id.String(), err)
	}

	r.log.Info("Shop deleted", zap.String("shop_id", id.String()))
	return nil
}
