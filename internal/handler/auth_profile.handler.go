package handler

import (
	"net/http"

	"gadgetmart-auth/pkg/middleware"
	"gadgetmart-auth/pkg/response"
	"gadgetmart-auth/pkg/utils"
)

// GetSingleUser handles GET /api/user/get_single_user for the caller.
func (h *AuthHandler) GetSingleUser(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		response.Error(w, http.StatusUnauthorized, "Not authenticated")
		return
	}

	user, err := h.uc.GetUser(r.Context(), userID)
	if err != nil {
		writeUsecaseError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"user":    user,
	})
}

// GetAllUsers handles GET /api/user/get_all_user. Admin only.
func (h *AuthHandler) GetAllUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.uc.ListUsers(r.Context())
	if err != nil {
		writeUsecaseError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"users":   users,
	})
}

// UpdateProfile handles PUT /api/user/update_profile for the caller.
func (h *AuthHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		response.Error(w, http.StatusUnauthorized, "Not authenticated")
		return
	}

	var req UpdateProfileRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	if req.FullName == "" || req.Email == "" || req.Phone == "" {
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

	user, err := h.uc.UpdateProfile(r.Context(), userID, req.FullName, req.Email, req.Phone)
	if err != nil {
		writeUsecaseError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "Profile updated successfully",
		"user":    user,
	})
}

// Health handles GET /api/user/health.
func (h *AuthHandler) Health(w http.ResponseWriter, r *http.Request) {
	response.OK(w, http.StatusOK, "auth service is running")
}
