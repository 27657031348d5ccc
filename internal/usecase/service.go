package usecase

import (
	"coffee-directory/internal/data/repository"
	"coffee-directory/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Auth   AuthService
	Shop   ShopService
	Review ReviewService
	User   UserService
}

func NewService(repo *repository.Repository, config *utils.Config, log *zap.Logger) *Service {
	return &Service{
		Auth:   NewAuthService(repo, config, log),
		Shop:   NewShopService(repo, log),
		Review: NewReviewService(repo, log),
		User:   NewUserService(repo, log),
	}
}
