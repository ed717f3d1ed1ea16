package middleware

import (
	"context"
	"net/http"
	"time"

	"gadgetmart-auth/internal/domain"
	"gadgetmart-auth/pkg/response"
)

// UserSource loads the caller's record for the expiry check.
type UserSource interface {
	GetUserByID(ctx context.Context, id string) (*domain.User, error)
}

// PasswordExpiry blocks authenticated requests once the caller's credential
// is older than maxAge. Runs after AuthGuard.
func PasswordExpiry(users UserSource, maxAge time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userID, ok := GetUserID(r.Context())
			if !ok {
				response.Error(w, http.StatusUnauthorized, "Not authenticated")
				return
			}

			user, err := users.GetUserByID(r.Context(), userID)
			if err != nil {
				response.Error(w, http.StatusNotFound, "User not found")
				return
			}

			if time.Since(user.PasswordChangedAt) > maxAge {
				response.Error(w, http.StatusForbidden,
					"Your password has expired. Please reset your password to continue.")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
