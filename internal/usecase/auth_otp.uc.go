// usecase/auth_otp.uc.go
package usecase

import (
	"context"
	"log"
	"time"

	"gadgetmart-auth/internal/domain"
	xerrors "gadgetmart-auth/pkg/xerrors"
)

// VerifyLoginOTP runs the second authentication factor and mints the session
// token. An expired code is cleared on first sight, so retrying the same
// expired code reports "no otp pending" rather than "expired" twice.
func (uc *UserUsecase) VerifyLoginOTP(ctx context.Context, userID, submitted string) (*domain.User, string, error) {
	user, err := uc.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, "", err
	}

	if user.LoginOTP == nil || user.LoginOTPExpires == nil {
		return nil, "", xerrors.ErrNoOTPPending
	}

	if time.Now().After(*user.LoginOTPExpires) {
		if err := uc.userRepo.ClearLoginOTP(ctx, user.ID); err != nil {
			log.Printf("[OTP] failed to clear expired otp for user %s: %v", user.ID, err)
		}
		return nil, "", xerrors.ErrExpiredOTP
	}

	if submitted != *user.LoginOTP {
		return nil, "", xerrors.ErrInvalidOTP
	}

	if err := uc.userRepo.ClearLoginOTP(ctx, user.ID); err != nil {
		return nil, "", err
	}

	token, err := uc.signer.Sign(user.ID, user.IsAdmin())
	if err != nil {
		return nil, "", err
	}

	return user, token, nil
}
