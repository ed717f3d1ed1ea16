package jwtutil

import (
	"github.com/golang-jwt/jwt/v5"
)

// Claims asserts user identity and role on every protected request.
type Claims struct {
	UserID  string `json:"uid"`
	IsAdmin bool   `json:"isAdmin"`
	jwt.RegisteredClaims
}
