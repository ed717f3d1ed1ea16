// usecase/auth_password.uc.go
package usecase

import (
	"context"
	"fmt"
	"log"
	"time"

	"gadgetmart-auth/internal/service/otp"
	"gadgetmart-auth/pkg/utils"
	xerrors "gadgetmart-auth/pkg/xerrors"
)

const (
	resetCodeTTL       = 10 * time.Minute
	passwordHistoryMax = 5
)

// ForgotPassword issues a reset code to the phone on file. An unknown phone
// is not an error: the caller always gets the same acknowledgement, so the
// endpoint cannot be used to probe which numbers have accounts.
func (uc *UserUsecase) ForgotPassword(ctx context.Context, phone string) error {
	user, err := uc.userRepo.GetUserByPhone(ctx, phone)
	if err != nil {
		log.Printf("[RESET] reset requested for unknown phone")
		return nil
	}

	code, err := otp.ResetCode()
	if err != nil {
		return err
	}
	expiresAt := time.Now().UTC().Add(resetCodeTTL)

	if err := uc.userRepo.SetResetCode(ctx, user.ID, code, expiresAt); err != nil {
		return err
	}

	body := fmt.Sprintf("Your Gadget Mart password reset code is %s. It expires in 10 minutes.", code)
	if err := uc.sms.Send(ctx, user.Phone, body); err != nil {
		log.Printf("[RESET] failed to sms reset code to user %s: %v", user.ID, err)
		return xerrors.ErrSMSDeliveryFailed
	}

	return nil
}

// ResetPassword validates the SMS code and swaps in the new credential.
// The new password is checked against every hash in the history, each with
// its own salt, before anything is written; the stored history keeps at most
// the five most recent hashes.
func (uc *UserUsecase) ResetPassword(ctx context.Context, phone, code, newPassword string) error {
	user, err := uc.userRepo.GetUserByPhone(ctx, phone)
	if err != nil {
		return err
	}

	if user.ResetCode == nil || user.ResetCodeExpires == nil || code != *user.ResetCode {
		return xerrors.ErrInvalidResetCode
	}

	if time.Now().After(*user.ResetCodeExpires) {
		return xerrors.ErrExpiredResetCode
	}

	for _, old := range user.PasswordHistory {
		if utils.CheckPasswordHash(newPassword, old) {
			return xerrors.ErrPasswordReused
		}
	}

	hashed, err := utils.HashPassword(newPassword)
	if err != nil {
		return err
	}

	history := append(user.PasswordHistory, hashed)
	if len(history) > passwordHistoryMax {
		history = history[len(history)-passwordHistoryMax:]
	}

	return uc.userRepo.UpdatePassword(ctx, user.ID, hashed, history, time.Now().UTC())
}
