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

func wireUser(
	r chi.Router,
	userHandler *adaptor.UserHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	authenticate := middleware.Authenticate(config.JWT.Secret, log)
	adminOnly := middleware.RequireRole(repo.User, log, entity.RoleAdmin)

	r.With(authenticate, adminOnly).Delete("/users/{id}", userHandler.Delete)
}
