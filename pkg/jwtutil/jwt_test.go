package jwtutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testIssuer = "gadgetmart-auth"

func TestSignAndVerifyRoundTrip(t *testing.T) {
	signer := NewSigner([]byte("test-secret"), testIssuer, time.Hour)
	verifier := NewVerifier([]byte("test-secret"), testIssuer)

	token, err := signer.Sign("12345", true)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := verifier.ParseAndValidate(token)
	require.NoError(t, err)
	assert.Equal(t, "12345", claims.UserID)
	assert.True(t, claims.IsAdmin)
	assert.Equal(t, testIssuer, claims.Issuer)
}

func TestVerifyRejectsWrongSecret(t *testing.T) {
	signer := NewSigner([]byte("test-secret"), testIssuer, time.Hour)
	verifier := NewVerifier([]byte("other-secret"), testIssuer)

	token, err := signer.Sign("12345", false)
	require.NoError(t, err)

	_, err = verifier.ParseAndValidate(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyRejectsWrongIssuer(t *testing.T) {
	signer := NewSigner([]byte("test-secret"), "someone-else", time.Hour)
	verifier := NewVerifier([]byte("test-secret"), testIssuer)

	token, err := signer.Sign("12345", false)
	require.NoError(t, err)

	_, err = verifier.ParseAndValidate(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyRejectsExpiredToken(t *testing.T) {
	signer := NewSigner([]byte("test-secret"), testIssuer, -time.Minute)
	verifier := NewVerifier([]byte("test-secret"), testIssuer)

	token, err := signer.Sign("12345", false)
	require.NoError(t, err)

	_, err = verifier.ParseAndValidate(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyRejectsGarbage(t *testing.T) {
	verifier := NewVerifier([]byte("test-secret"), testIssuer)

	_, err := verifier.ParseAndValidate("not.a.token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}
