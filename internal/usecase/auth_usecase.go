package usecase

import (
	"context"

	"go-interview-backend/internal/domain"
	"go-interview-backend/pkg/apperror"
	"go-interview-backend/pkg/logger"
)

type authUsecase struct {
	userRepo    domain.UserRepository
	profileRepo domain.ProfileRepository
}

func NewAuthUsecase(userRepo domain.UserRepository, profileRepo domain.ProfileRepository) domain.AuthUsecase {
	return &authUsecase{
		userRepo:    userRepo,
		profileRepo: profileRepo,
	}
}

// GetCurrentUser loads the auth account and its person profile. The
// profile is optional: a valid account without one is still usable, it
// just falls back to the default role.
func (u *authUsecase) GetCurrentUser(ctx context.Context, id string) (*domain.AccountInfo, error) {
	user, err := u.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if user == nil {
		return nil, apperror.Unauthorized("User not found")
	}

	profile, err := u.profileRepo.GetByID(ctx, id)
	if err != nil {
		logger.Log.Warn("failed to fetch profile for user", "user_id", id, "error", err)
		profile = nil
	}

	return &domain.AccountInfo{User: *user, Profile: profile}, nil
}
