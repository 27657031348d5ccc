package adaptor

import (
	"coffee-directory/internal/usecase"

	"go.uber.org/zap"
)

type Handler struct {
	Auth   *AuthHandler
	Shop   *ShopHandler
	Review *ReviewHandler
	User   *UserHandler
	Pages  *PagesHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Auth:   NewAuthHandler(service.Auth, log),
		Shop:   NewShopHandler(service.Shop, log),
		Review: NewReviewHandler(service.Review, log),
		User:   NewUserHandler(service.User, log),
		Pages:  NewPagesHandler(log),
	}
}
