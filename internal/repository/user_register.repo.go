package repository

import (
	"context"
	"strconv"

	"gadgetmart-auth/internal/domain"
	xerrors "gadgetmart-auth/pkg/xerrors"
)

// CreateUser inserts a new user row. The credential history is seeded by the
// caller with the initial hash.
func (r *UserRepository) CreateUser(ctx context.Context, u *domain.User) error {
	userID, err := strconv.ParseInt(u.ID, 10, 64)
	if err != nil {
		return xerrors.ErrInvalidRequest
	}

	_, err = r.db.Exec(ctx, `
		INSERT INTO users
			(id, full_name, email, phone,
			 password_hash, password_history, password_changed_at, role)
		VALUES ($1, $2, LOWER($3), $4, $5, $6, $7, $8)`,
		userID,
		u.FullName,
		u.Email,
		u.Phone,
		u.PasswordHash,
		u.PasswordHistory,
		u.PasswordChangedAt,
		u.Role,
	)
	if err != nil {
		if xerrors.ParsePGErrorCode(err) == "23505" { // unique_violation on email
			return xerrors.ErrUserAlreadyExists
		}
		return err
	}
	return nil
}
