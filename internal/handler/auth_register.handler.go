package handler

import (
	"log"
	"net/http"

	"gadgetmart-auth/internal/usecase"
	"gadgetmart-auth/pkg/middleware"
	"gadgetmart-auth/pkg/response"
	"gadgetmart-auth/pkg/utils"
)

// CreateUser handles POST /api/user/create.
func (h *AuthHandler) CreateUser(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	if req.FullName == "" || req.Email == "" || req.Phone == "" || req.Password == "" {
		response.Error(w, http.StatusBadRequest, "All fields are required")
		return
	}
	if !utils.ValidateEmail(req.Email) {
		response.Error(w, http.StatusBadRequest, "Invalid email format")
		return
	}
	if !utils.ValidatePhone(req.Phone) {
		response.Error(w, http.StatusBadRequest, "Invalid phone number")
		return
	}
	if !utils.ValidatePassword(req.Password) {
		response.Error(w, http.StatusBadRequest, "Password must be 8-20 characters with uppercase, lowercase, a digit and a special character (@$!%*?&)")
		return
	}

	if err := h.captcha.Verify(r.Context(), req.CaptchaToken, middleware.ClientIP(r)); err != nil {
		writeUsecaseError(w, err)
		return
	}

	user, err := h.uc.RegisterUser(r.Context(), usecase.RegisterUserRequest{
		FullName: req.FullName,
		Email:    req.Email,
		Phone:    req.Phone,
		Password: req.Password,
	})
	if err != nil {
		writeUsecaseError(w, err)
		return
	}

	log.Printf("[REGISTER] user %s created", user.ID)
	response.JSON(w, http.StatusCreated, map[string]interface{}{
		"success": true,
		"message": "User registered successfully",
		"userId":  user.ID,
	})
}
