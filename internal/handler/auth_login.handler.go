package handler

import (
	"net/http"

	"gadgetmart-auth/pkg/middleware"
	"gadgetmart-auth/pkg/response"
)

// LoginUser handles POST /api/user/login. A successful first factor only
// acknowledges that an OTP was sent; the token comes from VerifyOTP.
func (h *AuthHandler) LoginUser(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	if req.Email == "" || req.Password == "" {
		response.Error(w, http.StatusBadRequest, "All fields are required")
		return
	}

	clientAddr := middleware.ClientIP(r)

	if err := h.captcha.Verify(r.Context(), req.CaptchaToken, clientAddr); err != nil {
		writeUsecaseError(w, err)
		return
	}

	userID, err := h.uc.Login(r.Context(), req.Email, req.Password, clientAddr)
	if err != nil {
		writeUsecaseError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "OTP sent to your registered email",
		"userId":  userID,
	})
}

// VerifyOTP handles POST /api/user/verifyOTP and completes the login.
func (h *AuthHandler) VerifyOTP(w http.ResponseWriter, r *http.Request) {
	var req VerifyOTPRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	if req.UserID == "" || req.OTP == "" {
		response.Error(w, http.StatusBadRequest, "All fields are required")
		return
	}

	user, token, err := h.uc.VerifyLoginOTP(r.Context(), req.UserID, req.OTP)
	if err != nil {
		writeUsecaseError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "Login successful",
		"token":   token,
		"user":    user.ToProfile(),
	})
}
