package middleware

import (
	"net/http"
	"strings"

	"gadgetmart-auth/pkg/jwtutil"
	"gadgetmart-auth/pkg/response"
)

// AuthMiddleware guards protected routes with bearer-token verification.
type AuthMiddleware struct {
	verifier *jwtutil.Verifier
}

func NewAuthMiddleware(verifier *jwtutil.Verifier) *AuthMiddleware {
	return &AuthMiddleware{verifier: verifier}
}

func extractToken(r *http.Request) (string, bool) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return "", false
	}
	// Format: 'Bearer <token>'
	token := strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))
	return token, true
}

func (am *AuthMiddleware) authenticate(w http.ResponseWriter, r *http.Request) (*jwtutil.Claims, string, bool) {
	token, haveHeader := extractToken(r)
	if !haveHeader {
		response.Error(w, http.StatusUnauthorized, "Auth header is missing")
		return nil, "", false
	}
	if token == "" {
		response.Error(w, http.StatusUnauthorized, "Please provide a token")
		return nil, "", false
	}

	claims, err := am.verifier.ParseAndValidate(token)
	if err != nil {
		// Generic on purpose: verification internals never reach the caller.
		response.Error(w, http.StatusUnauthorized, "Not authenticated")
		return nil, "", false
	}
	return claims, token, true
}

// AuthGuard rejects requests without a valid bearer token and attaches the
// caller's identity to the request context.
func (am *AuthMiddleware) AuthGuard(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, token, ok := am.authenticate(w, r)
		if !ok {
			return
		}
		next.ServeHTTP(w, setContextValues(r, claims, token))
	})
}

// AdminGuard additionally requires the administrator claim.
func (am *AuthMiddleware) AdminGuard(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, token, ok := am.authenticate(w, r)
		if !ok {
			return
		}
		if !claims.IsAdmin {
			response.Error(w, http.StatusForbidden, "Permission denied")
			return
		}
		next.ServeHTTP(w, setContextValues(r, claims, token))
	})
}
