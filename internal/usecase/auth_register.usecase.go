// usecase/auth_register.usecase.go
package usecase

import (
	"context"
	"time"

	"gadgetmart-auth/internal/domain"
	"gadgetmart-auth/pkg/utils"
)

// RegisterUserRequest represents a single user registration request.
// Field validation (formats, password policy, captcha) happens at the
// handler boundary before this is called.
type RegisterUserRequest struct {
	FullName string
	Email    string
	Phone    string
	Password string
}

// RegisterUser hashes the credential with a fresh salt and stores the user
// with the history seeded to that single hash.
func (uc *UserUsecase) RegisterUser(ctx context.Context, req RegisterUserRequest) (*domain.User, error) {
	hashed, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	user := &domain.User{
		ID:                uc.Sf.Generate(),
		FullName:          req.FullName,
		Email:             req.Email,
		Phone:             req.Phone,
		PasswordHash:      hashed,
		PasswordHistory:   []string{hashed},
		PasswordChangedAt: now,
		Role:              domain.RoleUser,
	}

	if err := uc.userRepo.CreateUser(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}
