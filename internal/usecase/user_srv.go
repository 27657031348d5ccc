package usecase

import (
	"context"
	"fmt"

	"coffee-directory/internal/data/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type UserService interface {
	// DeleteUser removes the target user and their reviews. Callers can
	// never delete themselves, whatever their role.
	DeleteUser(ctx context.Context, callerID uuid.UUID, targetID string) error
}

type userService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewUserService(repo *repository.Repository, log *zap.Logger) UserService {
	return &userService{
		repo: repo,
		log:  log.With(zap.String("service", "user")),
	}
}

func (s *userService) DeleteUser(ctx context.Context, callerID uuid.UUID, targetID string) error {
	id, err := uuid.Parse(targetID)
	if err != nil {
		return fmt.Errorf("user %s not found", targetID)
	}

	user, err := s.repo.User.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to find user", zap.Error(err), zap.String("user_id", targetID))
		return fmt.Errorf("failed to find user")
	}
	if user == nil {
		return fmt.Errorf("user %s not found", targetID)
	}

	if user.ID == callerID {
		s.log.Warn("Self-delete attempt", zap.String("user_id", callerID.String()))
		return fmt.Errorf("cannot delete yourself")
	}

	// Count before the cascade removes them; lookup failure only costs
	// the log field
	reviews, err := s.repo.Review.FindByUserID(ctx, user.ID)
	if err != nil {
		s.log.Warn("Failed to count user reviews", zap.Error(err), zap.String("user_id", targetID))
	}

	if err := s.repo.User.Delete(ctx, user.ID); err != nil {
		s.log.Error("Failed to delete user", zap.Error(err), zap.String("user_id", targetID))
		return fmt.Errorf("failed to delete user")
	}

	s.log.Info("User deleted by admin",
		zap.String("user_id", targetID),
		zap.String("deleted_by", callerID.String()),
		zap.Int("reviews_removed", len(reviews)))

	return nil
}
