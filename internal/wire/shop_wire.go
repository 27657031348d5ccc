package wire

import (
	"coffee-directory/internal/adaptor"
	"coffee-directory/internal/data/entity"
	"coffee-directory/internal/data/repository"
	"coffee-directory/pkg/middleware"
	"coffee-directory/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireShop(
	r chi.Router,
	shopHandler *adaptor.ShopHandler,
	reviewHandler *adaptor.ReviewHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	authenticate := middleware.Authenticate(config.JWT.Secret, log)
	managerOnly := middleware.RequireRole(repo.User, log, entity.RoleManager, entity.RoleAdmin)

	// Public routes
	r.Get("/shops", shopHandler.List)
	r.Get("/shops/{id}", shopHandler.Get)

	// Manager/admin routes: resolve identity, then check role
	r.With(authenticate, managerOnly).Post("/shops", shopHandler.Create)
	r.With(authenticate, managerOnly).Put("/shops/{id}", shopHandler.Update)
	r.With(authenticate, managerOnly).Delete("/shops/{id}", shopHandler.Delete)
	r.With(authenticate, managerOnly).Post("/shops/{id}/locations", shopHandler.AddLocation)
	r.With(authenticate, managerOnly).Post("/shops/{id}/menu", shopHandler.AddMenuItem)

	// Any authenticated user can review
	r.With(authenticate).Post("/shops/{id}/reviews", reviewHandler.Add)
}
