package repository

import (
	"errors"
	"strconv"

	"gadgetmart-auth/internal/domain"
	xerrors "gadgetmart-auth/pkg/xerrors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type UserRepository struct {
	db *pgxpool.Pool
}

func NewUserRepository(db *pgxpool.Pool) *UserRepository {
	return &UserRepository{db: db}
}

// ============================================
// SCAN HELPERS
// ============================================

const userColumns = `
	id, full_name, email, phone,
	password_hash, password_history, password_changed_at,
	role, login_otp, login_otp_expires_at,
	reset_code, reset_code_expires_at,
	created_at, updated_at`

func scanUser(row pgx.Row) (*domain.User, error) {
	var u domain.User
	var userID int64
	err := row.Scan(
		&userID,
		&u.FullName,
		&u.Email,
		&u.Phone,
		&u.PasswordHash,
		&u.PasswordHistory,
		&u.PasswordChangedAt,
		&u.Role,
		&u.LoginOTP,
		&u.LoginOTPExpires,
		&u.ResetCode,
		&u.ResetCodeExpires,
		&u.CreatedAt,
		&u.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, xerrors.ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	u.ID = strconv.FormatInt(userID, 10)
	return &u, nil
}
