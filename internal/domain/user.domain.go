package domain

import "time"

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// Core user record (maps to `users` table)
type User struct {
	ID                string     `json:"id"`       // Snowflake ID
	FullName          string     `json:"fullName"`
	Email             string     `json:"email"`    // Unique, case-insensitive
	Phone             string     `json:"phone"`
	PasswordHash      string     `json:"-"`        // Never expose
	PasswordHistory   []string   `json:"-"`        // Up to 5 most recent hashes, oldest evicted
	PasswordChangedAt time.Time  `json:"-"`
	Role              string     `json:"role"`     // user | admin
	LoginOTP          *string    `json:"-"`        // Pending MFA code, nil when none
	LoginOTPExpires   *time.Time `json:"-"`
	ResetCode         *string    `json:"-"`        // Pending password-reset code, nil when none
	ResetCodeExpires  *time.Time `json:"-"`
	CreatedAt         time.Time  `json:"createdAt"`
	UpdatedAt         time.Time  `json:"updatedAt"`
}

func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// UserProfile is a view-friendly representation without sensitive data
type UserProfile struct {
	ID        string    `json:"id"`
	FullName  string    `json:"fullName"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ToProfile converts a User to a UserProfile (safe for API responses)
func (u *User) ToProfile() *UserProfile {
	return &UserProfile{
		ID:        u.ID,
		FullName:  u.FullName,
		Email:     u.Email,
		Phone:     u.Phone,
		Role:      u.Role,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}
