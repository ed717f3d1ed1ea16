package jwtutil

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Signer issues HS256 session tokens against a shared secret.
type Signer struct {
	secret   []byte
	issuer   string
	lifetime time.Duration
}

func NewSigner(secret []byte, issuer string, lifetime time.Duration) *Signer {
	return &Signer{
		secret:   secret,
		issuer:   issuer,
		lifetime: lifetime,
	}
}

// Sign returns a signed bearer credential encoding {uid, isAdmin}.
func (s *Signer) Sign(userID string, isAdmin bool) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		UserID:  userID,
		IsAdmin: isAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    s.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.lifetime)),
		},
	})

	return token.SignedString(s.secret)
}
