// usecase/auth_login.uc.go
package usecase

import (
	"context"
	"fmt"
	"log"
	"time"

	"gadgetmart-auth/pkg/utils"
	xerrors "gadgetmart-auth/pkg/xerrors"
)

const loginOTPTTL = 5 * time.Minute

// Login runs the first authentication factor. On success it issues a
// time-based OTP, stores it against the user with a 5 minute expiry and
// emails it out. The caller only learns the user ID; the session token is
// withheld until VerifyLoginOTP.
//
// Unknown email and wrong password both count against the client's throttle
// bucket and both surface as ErrInvalidCredentials.
func (uc *UserUsecase) Login(ctx context.Context, email, password, clientAddr string) (string, error) {
	if err := uc.throttle.Check(ctx, clientAddr); err != nil {
		return "", err
	}

	user, err := uc.userRepo.GetUserByEmail(ctx, email)
	if err != nil {
		uc.throttle.Fail(ctx, clientAddr)
		return "", xerrors.ErrInvalidCredentials
	}

	if !utils.CheckPasswordHash(password, user.PasswordHash) {
		uc.throttle.Fail(ctx, clientAddr)
		return "", xerrors.ErrInvalidCredentials
	}

	uc.throttle.Clear(ctx, clientAddr)

	code := uc.otp.LoginOTP(user.ID, time.Now())
	expiresAt := time.Now().UTC().Add(loginOTPTTL)

	if err := uc.userRepo.SetLoginOTP(ctx, user.ID, code, expiresAt); err != nil {
		return "", err
	}

	body := fmt.Sprintf("Your Gadget Mart login code is %s. It expires in 5 minutes.", code)
	if err := uc.mailer.Send(user.Email, "Your login verification code", body); err != nil {
		log.Printf("[LOGIN] failed to email otp to user %s: %v", user.ID, err)
		return "", xerrors.ErrEmailDeliveryFailed
	}

	return user.ID, nil
}
