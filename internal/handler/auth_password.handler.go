package handler

import (
	"net/http"

	"gadgetmart-auth/pkg/response"
	"gadgetmart-auth/pkg/utils"
)

// ForgotPassword handles POST /api/user/forgot_password. The response is the
// same whether or not the phone maps to an account.
func (h *AuthHandler) ForgotPassword(w http.ResponseWriter, r *http.Request) {
	var req ForgotPasswordRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	if req.PhoneNumber == "" {
		response.Error(w, http.StatusBadRequest, "Phone number is required")
		return
	}
	if !utils.ValidatePhone(req.PhoneNumber) {
		response.Error(w, http.StatusBadRequest, "Invalid phone number")
		return
	}

	if err := h.uc.ForgotPassword(r.Context(), req.PhoneNumber); err != nil {
		writeUsecaseError(w, err)
		return
	}

	response.OK(w, http.StatusOK, "If the phone number is registered, a reset code has been sent")
}

// ResetPassword handles POST /api/user/reset_password.
func (h *AuthHandler) ResetPassword(w http.ResponseWriter, r *http.Request) {
	var req ResetPasswordRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	if req.OTP == "" || req.PhoneNumber == "" || req.Password == "" {
		response.Error(w, http.StatusBadRequest, "All fields are required")
		return
	}
	if !utils.ValidatePhone(req.PhoneNumber) {
		response.Error(w, http.StatusBadRequest, "Invalid phone number")
		return
	}
	if !utils.ValidatePassword(req.Password) {
		response.Error(w, http.StatusBadRequest, "Password must be 8-20 characters with uppercase, lowercase, a digit and a special character (@$!%*?&)")
		return
	}

	if err := h.uc.ResetPassword(r.Context(), req.PhoneNumber, req.OTP, req.Password); err != nil {
		writeUsecaseError(w, err)
		return
	}

	response.OK(w, http.StatusOK, "Password reset successfully")
}
