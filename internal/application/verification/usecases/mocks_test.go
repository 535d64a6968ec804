package usecases

import (
	"context"
	"io"
	"log/slog"
	"time"

	"studyhall/internal/domain/verification"
	"studyhall/internal/shared/logger"
)

func testLogger() logger.Interface {
	return logger.NewLoggerWithSlog(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

type mockCodeRepository struct {
	createFn          func(ctx context.Context, code *verification.Code) error
	deleteByEmailFn   func(ctx context.Context, email string) error
	deleteExpiredFn   func(ctx context.Context, before time.Time) error
	consumeMatchingFn func(ctx context.Context, email, value string) (*verification.Code, error)
}

func (m *mockCodeRepository) Create(ctx context.Context, code *verification.Code) error {
	if m.createFn != nil {
		return m.createFn(ctx, code)
	}
	return nil
}

func (m *mockCodeRepository) DeleteByEmail(ctx context.Context, email string) error {
	if m.deleteByEmailFn != nil {
		return m.deleteByEmailFn(ctx, email)
	}
	return nil
}

func (m *mockCodeRepository) DeleteExpired(ctx context.Context, before time.Time) error {
	if m.deleteExpiredFn != nil {
		return m.deleteExpiredFn(ctx, before)
	}
	return nil
}

func (m *mockCodeRepository) ConsumeMatching(ctx context.Context, email, value string) (*verification.Code, error) {
	if m.consumeMatchingFn != nil {
		return m.consumeMatchingFn(ctx, email, value)
	}
	return nil, nil
}

type mockIssueLimiter struct {
	allowIssueFn func(ctx context.Context, email string) (bool, error)
}

func (m *mockIssueLimiter) AllowIssue(ctx context.Context, email string) (bool, error) {
	if m.allowIssueFn != nil {
		return m.allowIssueFn(ctx, email)
	}
	return true, nil
}

type mockCodeMailer struct {
	sendFn func(ctx context.Context, email, code string) error
}

func (m *mockCodeMailer) SendVerificationCode(ctx context.Context, email, code string) error {
	if m.sendFn != nil {
		return m.sendFn(ctx, email, code)
	}
	return nil
}
