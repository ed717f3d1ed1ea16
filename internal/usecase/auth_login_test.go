package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gadgetmart-auth/internal/service/otp"
	"gadgetmart-auth/pkg/id"
	"gadgetmart-auth/pkg/jwtutil"
	"gadgetmart-auth/pkg/utils"
	xerrors "gadgetmart-auth/pkg/xerrors"
)

type fixture struct {
	uc       *UserUsecase
	repo     *fakeUserRepo
	throttle *fakeThrottle
	mailer   *fakeMailer
	sms      *fakeSMS
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	sf, err := id.NewSnowflake(1)
	require.NoError(t, err)

	repo := newFakeUserRepo()
	throttle := &fakeThrottle{}
	mailer := &fakeMailer{}
	smsSender := &fakeSMS{}

	uc := NewUserUsecase(
		repo,
		sf,
		otp.NewGenerator("test-otp-seed"),
		jwtutil.NewSigner([]byte("test-secret"), "gadgetmart-auth", time.Hour),
		throttle,
		mailer,
		smsSender,
	)
	return &fixture{uc: uc, repo: repo, throttle: throttle, mailer: mailer, sms: smsSender}
}

func (f *fixture) register(t *testing.T, email, phone, password string) string {
	t.Helper()
	user, err := f.uc.RegisterUser(context.Background(), RegisterUserRequest{
		FullName: "Jane Buyer",
		Email:    email,
		Phone:    phone,
		Password: password,
	})
	require.NoError(t, err)
	return user.ID
}

func TestRegisterUserHashesAndSeedsHistory(t *testing.T) {
	f := newFixture(t)

	user, err := f.uc.RegisterUser(context.Background(), RegisterUserRequest{
		FullName: "Jane Buyer",
		Email:    "jane@example.com",
		Phone:    "+254712345678",
		Password: "Str0ng@pass",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, user.ID)
	assert.NotEqual(t, "Str0ng@pass", user.PasswordHash)
	assert.True(t, utils.CheckPasswordHash("Str0ng@pass", user.PasswordHash))
	require.Len(t, user.PasswordHistory, 1)
	assert.Equal(t, user.PasswordHash, user.PasswordHistory[0])
	assert.Equal(t, "user", user.Role)
	assert.False(t, user.PasswordChangedAt.IsZero())
}

func TestRegisterUserRejectsDuplicateEmail(t *testing.T) {
	f := newFixture(t)
	f.register(t, "jane@example.com", "+254712345678", "Str0ng@pass")

	_, err := f.uc.RegisterUser(context.Background(), RegisterUserRequest{
		FullName: "Other Jane",
		Email:    "jane@example.com",
		Phone:    "+254700000000",
		Password: "Str0ng@pass",
	})
	assert.ErrorIs(t, err, xerrors.ErrUserAlreadyExists)
}

func TestLoginIssuesOTPAndEmailsIt(t *testing.T) {
	f := newFixture(t)
	uid := f.register(t, "jane@example.com", "+254712345678", "Str0ng@pass")

	gotID, err := f.uc.Login(context.Background(), "jane@example.com", "Str0ng@pass", "10.0.0.1")
	require.NoError(t, err)
	assert.Equal(t, uid, gotID)

	stored, err := f.repo.GetUserByID(context.Background(), uid)
	require.NoError(t, err)
	require.NotNil(t, stored.LoginOTP)
	require.NotNil(t, stored.LoginOTPExpires)
	assert.Len(t, *stored.LoginOTP, 6)
	assert.WithinDuration(t, time.Now().Add(5*time.Minute), *stored.LoginOTPExpires, 10*time.Second)

	assert.Equal(t, 1, f.mailer.sends)
	assert.Equal(t, "jane@example.com", f.mailer.to)
	assert.Contains(t, f.mailer.body, *stored.LoginOTP)

	assert.Equal(t, 1, f.throttle.clears)
	assert.Zero(t, f.throttle.fails)
}

func TestLoginUnknownEmailCountsAgainstThrottle(t *testing.T) {
	f := newFixture(t)

	_, err := f.uc.Login(context.Background(), "nobody@example.com", "Str0ng@pass", "10.0.0.1")
	assert.ErrorIs(t, err, xerrors.ErrInvalidCredentials)
	assert.Equal(t, 1, f.throttle.fails)
	assert.Zero(t, f.mailer.sends)
}

func TestLoginWrongPasswordCountsAgainstThrottle(t *testing.T) {
	f := newFixture(t)
	f.register(t, "jane@example.com", "+254712345678", "Str0ng@pass")

	_, err := f.uc.Login(context.Background(), "jane@example.com", "Wr0ng@pass", "10.0.0.1")
	assert.ErrorIs(t, err, xerrors.ErrInvalidCredentials)
	assert.Equal(t, 1, f.throttle.fails)
	assert.Zero(t, f.throttle.clears)
}

func TestLoginThrottledBeforeStoreLookup(t *testing.T) {
	f := newFixture(t)
	f.register(t, "jane@example.com", "+254712345678", "Str0ng@pass")
	f.throttle.blocked = true
	f.repo.lookupCalls = 0

	_, err := f.uc.Login(context.Background(), "jane@example.com", "Str0ng@pass", "10.0.0.1")
	assert.ErrorIs(t, err, xerrors.ErrLoginThrottled)
	assert.Zero(t, f.repo.lookupCalls)
}

func TestLoginFailsWhenEmailCannotBeDelivered(t *testing.T) {
	f := newFixture(t)
	uid := f.register(t, "jane@example.com", "+254712345678", "Str0ng@pass")
	f.mailer.err = errors.New("smtp down")

	_, err := f.uc.Login(context.Background(), "jane@example.com", "Str0ng@pass", "10.0.0.1")
	assert.ErrorIs(t, err, xerrors.ErrEmailDeliveryFailed)

	// The stored code is useless without delivery but must not grant access.
	stored, err2 := f.repo.GetUserByID(context.Background(), uid)
	require.NoError(t, err2)
	assert.NotNil(t, stored.LoginOTP)
}
