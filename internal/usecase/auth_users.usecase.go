// usecase/auth_users.usecase.go
package usecase

import (
	"context"

	"gadgetmart-auth/internal/domain"
)

// GetUser returns the profile view of a single user.
func (uc *UserUsecase) GetUser(ctx context.Context, id string) (*domain.UserProfile, error) {
	user, err := uc.userRepo.GetUserByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return user.ToProfile(), nil
}

// ListUsers returns every registered user, newest first.
func (uc *UserUsecase) ListUsers(ctx context.Context) ([]*domain.UserProfile, error) {
	users, err := uc.userRepo.ListUsers(ctx)
	if err != nil {
		return nil, err
	}
	profiles := make([]*domain.UserProfile, 0, len(users))
	for _, u := range users {
		profiles = append(profiles, u.ToProfile())
	}
	return profiles, nil
}

// UpdateProfile replaces the user's contact fields and returns the fresh
// profile.
func (uc *UserUsecase) UpdateProfile(ctx context.Context, id, fullName, email, phone string) (*domain.UserProfile, error) {
	if err := uc.userRepo.UpdateProfile(ctx, id, fullName, email, phone); err != nil {
		return nil, err
	}
	return uc.GetUser(ctx, id)
}
