package repository

import (
	"context"
	"fmt"

	"coffee-directory/internal/data/entity"
	"coffee-directory/pkg/database"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type ReviewRepository interface {
	Create(ctx context.Context, review *entity.Review) error
	FindByShopID(ctx context.Context, shopID uuid.UUID) ([]*entity.Review, error)
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Review, error)
}

type reviewRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewReviewRepository(db database.PgxIface, log *zap.Logger) ReviewRepository {
	return &reviewRepository{
		db:  db,
		log: log.With(zap.String("repository", "review")),
	}
}

func (r *reviewRepository) Create(ctx context.Context, review *entity.Review) error {
	query := `
		INSERT INTO reviews (id, shop_id, user_id, rating, review_text, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := r.db.Exec(ctx, query,
		review.ID,
		review.ShopID,
		review.UserID,
		review.Rating,
		review.Text,
		review.CreatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create review",
			zap.Error(err),
			zap.String("shop_id", review.ShopID.String()),
			zap.String("user_id", review.UserID.String()),
		)
		return fmt.Errorf("create review for shop %s: %w", review.ShopID.String(), err)
	}

	return nil
}

func (r *reviewRepository) FindByShopID(ctx context.Context, shopID uuid.UUID) ([]*entity.Review, error) {
	query := `
		SELECT id, shop_id, user_id, rating, review_text, created_at
		FROM reviews
		WHERE shop_id = $1
		ORDER BY created_at DESC
	`

	return r.findAll(ctx, query, shopID)
}

func (r *reviewRepository) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Review, error) {
	query := `
		SELECT id, shop_id, user_id, rating, review_text, created_at
		FROM reviews
		WHERE user_id = $1
		ORDER BY created_at DESC
	`

	return r.findAll(ctx, query, userID)
}

func (r *reviewRepository) findAll(ctx context.Context, query string, arg any) ([]*entity.Review, error) {
	rows, err := r.db.Query(ctx, query, arg)
	if err != nil {
		r.log.Error("Failed to find reviews", zap.Error(err))
		return nil, fmt.Errorf("find reviews: %w", err)
	}
	defer rows.Close()

	var reviews []*entity.Review
	for rows.Next() {
		var review entity.Review
		err := rows.Scan(
			&review.ID,
			&review.ShopID,
			&review.UserID,
			&review.Rating,
			&review.Text,
			&review.CreatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan review row", zap.Error(err))
			return nil, fmt.Errorf("scan review row: %w", err)
		}
		reviews = append(reviews, &review)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate reviews rows: %w", err)
	}

	return reviews, nil
}
