package usecase

import (
	"context"
	"time"

	"gadgetmart-auth/internal/domain"
	xerrors "gadgetmart-auth/pkg/xerrors"
)

// fakeUserRepo is an in-memory UserRepo keyed by ID with email/phone lookups.
type fakeUserRepo struct {
	users map[string]*domain.User

	createCalls int
	lookupCalls int
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]*domain.User{}}
}

func (f *fakeUserRepo) CreateUser(ctx context.Context, u *domain.User) error {
	f.createCalls++
	for _, existing := range f.users {
		if existing.Email == u.Email {
			return xerrors.ErrUserAlreadyExists
		}
	}
	cp := *u
	f.users[u.ID] = &cp
	return nil
}

func (f *fakeUserRepo) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	f.lookupCalls++
	for _, u := range f.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, xerrors.ErrUserNotFound
}

func (f *fakeUserRepo) GetUserByPhone(ctx context.Context, phone string) (*domain.User, error) {
	for _, u := range f.users {
		if u.Phone == phone {
			cp := *u
			return &cp, nil
		}
	}
	return nil, xerrors.ErrUserNotFound
}

func (f *fakeUserRepo) GetUserByID(ctx context.Context, id string) (*domain.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, xerrors.ErrUserNotFound
	}
	cp := *u
	return &cp, nil
}

func (f *fakeUserRepo) ListUsers(ctx context.Context) ([]*domain.User, error) {
	out := make([]*domain.User, 0, len(f.users))
	for _, u := range f.users {
		cp := *u
		out = append(out, &cp)
	}
	return out, nil
}

func (f *fakeUserRepo) SetLoginOTP(ctx context.Context, id, code string, expiresAt time.Time) error {
	u, ok := f.users[id]
	if !ok {
		return xerrors.ErrUserNotFound
	}
	u.LoginOTP = &code
	u.LoginOTPExpires = &expiresAt
	return nil
}

func (f *fakeUserRepo) ClearLoginOTP(ctx context.Context, id string) error {
	u, ok := f.users[id]
	if !ok {
		return xerrors.ErrUserNotFound
	}
	u.LoginOTP = nil
	u.LoginOTPExpires = nil
	return nil
}

func (f *fakeUserRepo) SetResetCode(ctx context.Context, id, code string, expiresAt time.Time) error {
	u, ok := f.users[id]
	if !ok {
		return xerrors.ErrUserNotFound
	}
	u.ResetCode = &code
	u.ResetCodeExpires = &expiresAt
	return nil
}

func (f *fakeUserRepo) UpdatePassword(ctx context.Context, id, hash string, history []string, changedAt time.Time) error {
	u, ok := f.users[id]
	if !ok {
		return xerrors.ErrUserNotFound
	}
	u.PasswordHash = hash
	u.PasswordHistory = history
	u.PasswordChangedAt = changedAt
	u.ResetCode = nil
	u.ResetCodeExpires = nil
	return nil
}

func (f *fakeUserRepo) UpdateProfile(ctx context.Context, id, fullName, email, phone string) error {
	u, ok := f.users[id]
	if !ok {
		return xerrors.ErrUserNotFound
	}
	u.FullName = fullName
	u.Email = email
	u.Phone = phone
	u.UpdatedAt = time.Now()
	return nil
}

// fakeThrottle records calls and can be armed to block.
type fakeThrottle struct {
	blocked bool
	fails   int
	clears  int
	checks  int
}

func (f *fakeThrottle) Check(ctx context.Context, addr string) error {
	f.checks++
	if f.blocked {
		return xerrors.ErrLoginThrottled
	}
	return nil
}

func (f *fakeThrottle) Fail(ctx context.Context, addr string)  { f.fails++ }
func (f *fakeThrottle) Clear(ctx context.Context, addr string) { f.clears++ }

// fakeMailer captures the last message and can be armed to fail.
type fakeMailer struct {
	to      string
	subject string
	body    string
	sends   int
	err     error
}

func (f *fakeMailer) Send(to, subject, body string) error {
	if f.err != nil {
		return f.err
	}
	f.sends++
	f.to, f.subject, f.body = to, subject, body
	return nil
}

// fakeSMS captures the last message and can be armed to fail.
type fakeSMS struct {
	recipient string
	body      string
	sends     int
	err       error
}

func (f *fakeSMS) Send(ctx context.Context, recipient, body string) error {
	if f.err != nil {
		return f.err
	}
	f.sends++
	f.recipient, f.body = recipient, body
	return nil
}
