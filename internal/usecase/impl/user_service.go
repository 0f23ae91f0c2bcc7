// Package impl contains the application-specific business rules
// implementations.
package impl

import (
	"context"
	"log/slog"

	"prelovin/internal/domain/entity"
	domainerrors "prelovin/internal/domain/errors"
	"prelovin/internal/domain/repository"
	"prelovin/internal/usecase"

	"github.com/pkg/errors"
)

// userService implements the UserUsecase interface.
type userService struct {
	userRepo repository.UserRepository
	logger   *slog.Logger
}

// NewUserService is the constructor for userService.
func NewUserService(
	userRepo repository.UserRepository,
	logger *slog.Logger,
) usecase.UserUsecase {
	return &userService{
		userRepo: userRepo,
		logger:   logger,
	}
}

// SyncCurrentUser upserts the user row from the identity claims and returns
// the stored record.
func (srv *userService) SyncCurrentUser(ctx context.Context, claims *usecase.IdentityClaims) (*entity.User, error) {
	if claims == nil || claims.Subject == "" {
		return nil, domainerrors.ErrUnauthorized.WrapMessage("missing identity subject")
	}

	srv.logger.DebugContext(ctx, "Syncing user from identity claims", "userID", claims.Subject)

	user, err := srv.userRepo.Upsert(ctx, &entity.User{
		ID:              claims.Subject,
		Email:           claims.Email,
		FirstName:       claims.FirstName,
		LastName:        claims.LastName,
		ProfileImageURL: claims.ProfileImageURL,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to sync user")
	}

	return user, nil
}

// GetPublicProfile returns the user's public seller-page view.
func (srv *userService) GetPublicProfile(ctx context.Context, userID string) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user")
	}

	return user.PublicProfile(), nil
}
