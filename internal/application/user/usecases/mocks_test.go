package usecases

import (
	"context"
	"io"
	"log/slog"
	"time"

	"studyhall/internal/domain/user"
	"studyhall/internal/shared/logger"
)

func testLogger() logger.Interface {
	return logger.NewLoggerWithSlog(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

type mockUserRepository struct {
	createFn        func(ctx context.Context, u *user.User) error
	getByIDFn       func(ctx context.Context, id uint) (*user.User, error)
	getByEmailFn    func(ctx context.Context, email string) (*user.User, error)
	existsByEmailFn func(ctx context.Context, email string) (bool, error)
}

func (m *mockUserRepository) Create(ctx context.Context, u *user.User) error {
	if m.createFn != nil {
		return m.createFn(ctx, u)
	}
	return nil
}

func (m *mockUserRepository) GetByID(ctx context.Context, id uint) (*user.User, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, id)
	}
	return nil, nil
}

func (m *mockUserRepository) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	if m.getByEmailFn != nil {
		return m.getByEmailFn(ctx, email)
	}
	return nil, nil
}

func (m *mockUserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	if m.existsByEmailFn != nil {
		return m.existsByEmailFn(ctx, email)
	}
	return false, nil
}

type mockEmailVerifier struct {
	verifyCodeFn func(ctx context.Context, email, code string) error
}

func (m *mockEmailVerifier) VerifyCode(ctx context.Context, email, code string) error {
	if m.verifyCodeFn != nil {
		return m.verifyCodeFn(ctx, email, code)
	}
	return nil
}

type mockPasswordHasher struct {
	hashFn    func(password string) (string, error)
	compareFn func(hash, password string) error
}

func (m *mockPasswordHasher) Hash(password string) (string, error) {
	if m.hashFn != nil {
		return m.hashFn(password)
	}
	return "hashed:" + password, nil
}

func (m *mockPasswordHasher) Compare(hash, password string) error {
	if m.compareFn != nil {
		return m.compareFn(hash, password)
	}
	return nil
}

type mockTokenIssuer struct {
	issueFn func(userID uint, role string) (string, int64, error)
}

func (m *mockTokenIssuer) Issue(userID uint, role string) (string, int64, error) {
	if m.issueFn != nil {
		return m.issueFn(userID, role)
	}
	return "token", 3600, nil
}

func reconstructUser(id uint, email, passwordHash string, role user.Role) *user.User {
	created := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	u, err := user.ReconstructUser(id, email, "Student", passwordHash, role, created, created)
	if err != nil {
		panic(err)
	}
	return u
}
