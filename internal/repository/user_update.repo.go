package repository

import (
	"context"
	"time"

	"gadgetmart-auth/internal/domain"
	xerrors "gadgetmart-auth/pkg/xerrors"
)

// SetResetCode stores a pending password-reset code against the user.
func (r *UserRepository) SetResetCode(ctx context.Context, id, code string, expiresAt time.Time) error {
	return r.execForUser(ctx, id, `
		UPDATE users
		SET reset_code = $2, reset_code_expires_at = $3, updated_at = NOW()
		WHERE id = $1`, code, expiresAt)
}

// UpdatePassword swaps the credential, replaces the trimmed history and
// clears any pending reset state in one statement.
func (r *UserRepository) UpdatePassword(ctx context.Context, id, hash string, history []string, changedAt time.Time) error {
	return r.execForUser(ctx, id, `
		UPDATE users
		SET password_hash = $2,
		    password_history = $3,
		    password_changed_at = $4,
		    reset_code = NULL,
		    reset_code_expires_at = NULL,
		    updated_at = NOW()
		WHERE id = $1`, hash, history, changedAt)
}

// UpdateProfile persists the mutable identity fields.
func (r *UserRepository) UpdateProfile(ctx context.Context, id, fullName, email, phone string) error {
	err := r.execForUser(ctx, id, `
		UPDATE users
		SET full_name = $2, email = LOWER($3), phone = $4, updated_at = NOW()
		WHERE id = $1`, fullName, email, phone)
	if err != nil && xerrors.ParsePGErrorCode(err) == "23505" {
		return xerrors.ErrEmailAlreadyInUse
	}
	return err
}

// ListUsers returns every user, newest first.
func (r *UserRepository) ListUsers(ctx context.Context) ([]*domain.User, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+userColumns+` FROM users ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []*domain.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}
