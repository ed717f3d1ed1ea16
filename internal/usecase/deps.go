package usecase

import (
	"context"
	"time"

	"gadgetmart-auth/internal/domain"
)

// UserRepo is the credential store the flows run against.
type UserRepo interface {
	CreateUser(ctx context.Context, u *domain.User) error
	GetUserByEmail(ctx context.Context, email string) (*domain.User, error)
	GetUserByPhone(ctx context.Context, phone string) (*domain.User, error)
	GetUserByID(ctx context.Context, id string) (*domain.User, error)
	ListUsers(ctx context.Context) ([]*domain.User, error)
	SetLoginOTP(ctx context.Context, id, code string, expiresAt time.Time) error
	ClearLoginOTP(ctx context.Context, id string) error
	SetResetCode(ctx context.Context, id, code string, expiresAt time.Time) error
	UpdatePassword(ctx context.Context, id, hash string, history []string, changedAt time.Time) error
	UpdateProfile(ctx context.Context, id, fullName, email, phone string) error
}

// LoginThrottle buckets failed first-factor attempts per client address.
type LoginThrottle interface {
	Check(ctx context.Context, addr string) error
	Fail(ctx context.Context, addr string)
	Clear(ctx context.Context, addr string)
}

// EmailSender delivers login OTP codes.
type EmailSender interface {
	Send(to, subject, body string) error
}

// SMSSender delivers password-reset codes.
type SMSSender interface {
	Send(ctx context.Context, recipient, body string) error
}
