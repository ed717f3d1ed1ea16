package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gadgetmart-auth/pkg/jwtutil"
	xerrors "gadgetmart-auth/pkg/xerrors"
)

func (f *fixture) loginAndGetOTP(t *testing.T, email, password string) (string, string) {
	t.Helper()
	uid, err := f.uc.Login(context.Background(), email, password, "10.0.0.1")
	require.NoError(t, err)
	stored, err := f.repo.GetUserByID(context.Background(), uid)
	require.NoError(t, err)
	require.NotNil(t, stored.LoginOTP)
	return uid, *stored.LoginOTP
}

func TestVerifyLoginOTPIssuesToken(t *testing.T) {
	f := newFixture(t)
	f.register(t, "jane@example.com", "+254712345678", "Str0ng@pass")
	uid, code := f.loginAndGetOTP(t, "jane@example.com", "Str0ng@pass")

	user, token, err := f.uc.VerifyLoginOTP(context.Background(), uid, code)
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, uid, user.ID)

	claims, err := jwtutil.NewVerifier([]byte("test-secret"), "gadgetmart-auth").ParseAndValidate(token)
	require.NoError(t, err)
	assert.Equal(t, uid, claims.UserID)
	assert.False(t, claims.IsAdmin)

	// Code is single use
	stored, err := f.repo.GetUserByID(context.Background(), uid)
	require.NoError(t, err)
	assert.Nil(t, stored.LoginOTP)
	assert.Nil(t, stored.LoginOTPExpires)
}

func TestVerifyLoginOTPUnknownUser(t *testing.T) {
	f := newFixture(t)
	_, _, err := f.uc.VerifyLoginOTP(context.Background(), "424242", "123456")
	assert.ErrorIs(t, err, xerrors.ErrUserNotFound)
}

func TestVerifyLoginOTPWithoutPendingCode(t *testing.T) {
	f := newFixture(t)
	uid := f.register(t, "jane@example.com", "+254712345678", "Str0ng@pass")

	_, _, err := f.uc.VerifyLoginOTP(context.Background(), uid, "123456")
	assert.ErrorIs(t, err, xerrors.ErrNoOTPPending)
}

func TestVerifyLoginOTPMismatch(t *testing.T) {
	f := newFixture(t)
	f.register(t, "jane@example.com", "+254712345678", "Str0ng@pass")
	uid, code := f.loginAndGetOTP(t, "jane@example.com", "Str0ng@pass")

	wrong := "000000"
	if wrong == code {
		wrong = "000001"
	}
	_, _, err := f.uc.VerifyLoginOTP(context.Background(), uid, wrong)
	assert.ErrorIs(t, err, xerrors.ErrInvalidOTP)

	// A mismatch leaves the pending code in place for a retry.
	stored, err2 := f.repo.GetUserByID(context.Background(), uid)
	require.NoError(t, err2)
	assert.NotNil(t, stored.LoginOTP)
}

func TestVerifyLoginOTPExpiredClearsAndReportsOnce(t *testing.T) {
	f := newFixture(t)
	f.register(t, "jane@example.com", "+254712345678", "Str0ng@pass")
	uid, code := f.loginAndGetOTP(t, "jane@example.com", "Str0ng@pass")

	past := time.Now().Add(-time.Minute)
	require.NoError(t, f.repo.SetLoginOTP(context.Background(), uid, code, past))

	_, _, err := f.uc.VerifyLoginOTP(context.Background(), uid, code)
	assert.ErrorIs(t, err, xerrors.ErrExpiredOTP)

	// The expired code was wiped, so a retry reports nothing pending.
	_, _, err = f.uc.VerifyLoginOTP(context.Background(), uid, code)
	assert.ErrorIs(t, err, xerrors.ErrNoOTPPending)
}

func TestVerifyLoginOTPAdminClaim(t *testing.T) {
	f := newFixture(t)
	uid := f.register(t, "root@example.com", "+254700000001", "Str0ng@pass")
	f.repo.users[uid].Role = "admin"

	_, code := f.loginAndGetOTP(t, "root@example.com", "Str0ng@pass")
	_, token, err := f.uc.VerifyLoginOTP(context.Background(), uid, code)
	require.NoError(t, err)

	claims, err := jwtutil.NewVerifier([]byte("test-secret"), "gadgetmart-auth").ParseAndValidate(token)
	require.NoError(t, err)
	assert.True(t, claims.IsAdmin)
}
