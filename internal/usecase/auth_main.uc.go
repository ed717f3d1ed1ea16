// usecase/auth_main.uc.go
package usecase

import (
	"gadgetmart-auth/internal/service/otp"
	"gadgetmart-auth/pkg/id"
	"gadgetmart-auth/pkg/jwtutil"
)

type UserUsecase struct {
	userRepo UserRepo
	Sf       *id.Snowflake
	otp      *otp.Generator
	signer   *jwtutil.Signer
	throttle LoginThrottle
	mailer   EmailSender
	sms      SMSSender
}

func NewUserUsecase(
	userRepo UserRepo,
	sf *id.Snowflake,
	otpGen *otp.Generator,
	signer *jwtutil.Signer,
	throttle LoginThrottle,
	mailer EmailSender,
	sms SMSSender,
) *UserUsecase {
	return &UserUsecase{
		userRepo: userRepo,
		Sf:       sf,
		otp:      otpGen,
		signer:   signer,
		throttle: throttle,
		mailer:   mailer,
		sms:      sms,
	}
}
