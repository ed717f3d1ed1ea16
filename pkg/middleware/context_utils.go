package middleware

import (
	"context"
	"net/http"

	"gadgetmart-auth/pkg/jwtutil"
)

type contextKey string

const (
	ContextUserID  contextKey = "userID"
	ContextIsAdmin contextKey = "isAdmin"
	ContextToken   contextKey = "token"
)

func GetUserID(ctx context.Context) (string, bool) {
	val, ok := ctx.Value(ContextUserID).(string)
	return val, ok
}

func GetIsAdmin(ctx context.Context) bool {
	val, ok := ctx.Value(ContextIsAdmin).(bool)
	return ok && val
}

func setContextValues(r *http.Request, claims *jwtutil.Claims, token string) *http.Request {
	ctx := context.WithValue(r.Context(), ContextUserID, claims.UserID)
	ctx = context.WithValue(ctx, ContextIsAdmin, claims.IsAdmin)
	ctx = context.WithValue(ctx, ContextToken, token)
	return r.WithContext(ctx)
}
