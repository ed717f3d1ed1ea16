package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"gadgetmart-auth/pkg/response"
	xerrors "gadgetmart-auth/pkg/xerrors"
)

func decodeJSON(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body")
		return false
	}
	return true
}

// writeUsecaseError maps flow errors onto HTTP statuses. Bad input and bad
// codes are 400, token problems 401, role and policy refusals 403, missing
// users 404, throttling 429; everything unrecognized is a 500 with a fixed
// message so internals never leak.
func writeUsecaseError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, xerrors.ErrUserAlreadyExists):
		response.Error(w, http.StatusBadRequest, "User already exists!")
	case errors.Is(err, xerrors.ErrEmailAlreadyInUse):
		response.Error(w, http.StatusBadRequest, "Email already in use")
	case errors.Is(err, xerrors.ErrInvalidCredentials):
		response.Error(w, http.StatusBadRequest, "Invalid credentials")
	case errors.Is(err, xerrors.ErrLoginThrottled):
		response.Error(w, http.StatusTooManyRequests, "Too many login attempts. Please try again later.")
	case errors.Is(err, xerrors.ErrCaptchaFailed):
		response.Error(w, http.StatusBadRequest, "Captcha verification failed")
	case errors.Is(err, xerrors.ErrCaptchaUnavailable):
		response.Error(w, http.StatusInternalServerError, "Captcha verification error")
	case errors.Is(err, xerrors.ErrNoOTPPending):
		response.Error(w, http.StatusBadRequest, "No OTP found. Please request a new one.")
	case errors.Is(err, xerrors.ErrExpiredOTP):
		response.Error(w, http.StatusBadRequest, "OTP has expired. Please request a new one.")
	case errors.Is(err, xerrors.ErrInvalidOTP):
		response.Error(w, http.StatusBadRequest, "Invalid OTP")
	case errors.Is(err, xerrors.ErrInvalidResetCode):
		response.Error(w, http.StatusBadRequest, "Invalid reset code")
	case errors.Is(err, xerrors.ErrExpiredResetCode):
		response.Error(w, http.StatusBadRequest, "Reset code has expired. Please request a new one.")
	case errors.Is(err, xerrors.ErrPasswordReused):
		response.Error(w, http.StatusBadRequest, "New password must not match a previously used password")
	case errors.Is(err, xerrors.ErrPasswordExpired):
		response.Error(w, http.StatusForbidden, "Your password has expired. Please reset your password to continue.")
	case errors.Is(err, xerrors.ErrUserNotFound):
		response.Error(w, http.StatusNotFound, "User not found")
	case errors.Is(err, xerrors.ErrInvalidToken), errors.Is(err, xerrors.ErrExpiredToken):
		response.Error(w, http.StatusUnauthorized, "Not authenticated")
	default:
		response.Error(w, http.StatusInternalServerError, "Something went wrong. Please try again.")
	}
}
