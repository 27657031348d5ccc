package usecase

import (
	"context"
	"fmt"
	"time"

	"coffee-directory/internal/data/entity"
	"coffee-directory/internal/data/repository"
	"coffee-directory/internal/dto/request"
	"coffee-directory/internal/dto/response"
	"coffee-directory/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type ReviewService interface {
	// AddReview attributes the review to the resolved caller identity,
	// never to a client-supplied user ID
	AddReview(ctx context.Context, userID uuid.UUID, shopID string, req *request.ReviewRequest) (*response.ReviewCreatedResponse, error)
}

type reviewService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewReviewService(repo *repository.Repository, log *zap.Logger) ReviewService {
	return &reviewService{
		repo: repo,
		log:  log.With(zap.String("service", "review")),
	}
}

func (s *reviewService) AddReview(ctx context.Context, userID uuid.UUID, shopID string, req *request.ReviewRequest) (*response.ReviewCreatedResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Add review validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	id, err := uuid.Parse(shopID)
	if err != nil {
		return nil, fmt.Errorf("shop %s not found", shopID)
	}

	shop, err := s.repo.Shop.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to find shop", zap.Error(err), zap.String("shop_id", shopID))
		return nil, fmt.Errorf("failed to find shop")
	}
	if shop == nil {
		return nil, fmt.Errorf("shop %s not found", shopID)
	}

	review := &entity.Review{
		BaseSimple: entity.BaseSimple{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
		},
		ShopID: shop.ID,
		UserID: userID,
		Rating: req.Rating,
		Text:   req.Text,
	}

	if err := s.repo.Review.Create(ctx, review); err != nil {
		s.log.Error("Failed to create review",
			zap.Error(err),
			zap.String("shop_id", shopID),
			zap.String("user_id", userID.String()),
		)
		return nil, fmt.Errorf("failed to add review")
	}

	s.log.Info("Review added",
		zap.String("review_id", review.ID.String()),
		zap.String("shop_id", shopID),
		zap.String("user_id", userID.String()),
		zap.Int("rating", review.Rating))

	return &response.ReviewCreatedResponse{ReviewID: review.ID.String()}, nil
}
