package xerrors

import "errors"
import "github.com/jackc/pgx/v5/pgconn"

// ParsePGErrorCode extracts the postgres error code from a pgx error.
func ParsePGErrorCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code // e.g. 23505 for unique_violation
	}
	return "unknown"
}

// Generic
var (
	ErrInvalidRequest = errors.New("invalid request")
	ErrInternalServer = errors.New("internal server error")
	ErrUnauthorized   = errors.New("unauthorized")
	ErrForbidden      = errors.New("forbidden")
	ErrNotFound       = errors.New("not found")
)

// Registration / Login
var (
	ErrUserAlreadyExists  = errors.New("user already exists")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailAlreadyInUse  = errors.New("email already in use")
	ErrLoginThrottled     = errors.New("too many login attempts, please try again later")

	// Registration requirements
	ErrFieldsRequired     = errors.New("all fields are required")
	ErrCaptchaRequired    = errors.New("captcha token required")
	ErrInvalidEmailFormat = errors.New("invalid email format")
	ErrInvalidPhoneNumber = errors.New("invalid phone number")
)

// CAPTCHA
var (
	ErrCaptchaFailed      = errors.New("captcha verification failed")
	ErrCaptchaUnavailable = errors.New("captcha verification error")
)

// OTP / MFA
var (
	ErrNoOTPPending = errors.New("no otp found, please request a new one")
	ErrExpiredOTP   = errors.New("otp has expired, please request a new one")
	ErrInvalidOTP   = errors.New("invalid otp")
)

// Password reset
var (
	ErrInvalidResetCode = errors.New("invalid reset code")
	ErrExpiredResetCode = errors.New("reset code has expired")
	ErrPasswordReused   = errors.New("password cannot be reused")
)

// Password policy
var (
	ErrInvalidPasswordFormat = errors.New("invalid password format")
	ErrPasswordExpired       = errors.New("password has expired, please reset your password to continue")
)

// Token
var (
	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("expired token")
)

// Notification delivery
var (
	ErrEmailDeliveryFailed = errors.New("failed to deliver email")
	ErrSMSDeliveryFailed   = errors.New("failed to deliver sms")
)
