package repository

import (
	"context"
	"strconv"
	"time"

	"gadgetmart-auth/internal/domain"
	xerrors "gadgetmart-auth/pkg/xerrors"
)

func (r *UserRepository) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+userColumns+` FROM users WHERE email = LOWER($1)`, email)
	return scanUser(row)
}

func (r *UserRepository) GetUserByPhone(ctx context.Context, phone string) (*domain.User, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+userColumns+` FROM users WHERE phone = $1`, phone)
	return scanUser(row)
}

func (r *UserRepository) GetUserByID(ctx context.Context, id string) (*domain.User, error) {
	userID, err := strconv.ParseInt(id, 10, 64)
	if err != nil {
		return nil, xerrors.ErrUserNotFound
	}
	row := r.db.QueryRow(ctx,
		`SELECT `+userColumns+` FROM users WHERE id = $1`, userID)
	return scanUser(row)
}

// SetLoginOTP stores a pending MFA code. Overwriting implicitly invalidates
// any prior code.
func (r *UserRepository) SetLoginOTP(ctx context.Context, id, code string, expiresAt time.Time) error {
	return r.execForUser(ctx, id, `
		UPDATE users
		SET login_otp = $2, login_otp_expires_at = $3, updated_at = NOW()
		WHERE id = $1`, code, expiresAt)
}

// ClearLoginOTP drops the pending MFA code, both after successful
// verification and when an expired code is observed.
func (r *UserRepository) ClearLoginOTP(ctx context.Context, id string) error {
	return r.execForUser(ctx, id, `
		UPDATE users
		SET login_otp = NULL, login_otp_expires_at = NULL, updated_at = NOW()
		WHERE id = $1`)
}

func (r *UserRepository) execForUser(ctx context.Context, id, query string, args ...interface{}) error {
	userID, err := strconv.ParseInt(id, 10, 64)
	if err != nil {
		return xerrors.ErrUserNotFound
	}

	allArgs := append([]interface{}{userID}, args...)
	tag, err := r.db.Exec(ctx, query, allArgs...)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return xerrors.ErrUserNotFound
	}
	return nil
}
