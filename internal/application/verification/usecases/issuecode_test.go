package usecases

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"studyhall/internal/domain/verification"
	"studyhall/internal/shared/errors"
)

func TestIssueCode(t *testing.T) {
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)

	var superseded, created []string
	var sentCode string
	codeRepo := &mockCodeRepository{
		deleteByEmailFn: func(ctx context.Context, email string) error {
			superseded = append(superseded, email)
			return nil
		},
		createFn: func(ctx context.Context, code *verification.Code) error {
			created = append(created, code.Email())
			assert.Len(t, code.Value(), 6)
			assert.True(t, code.ExpiresAt().Equal(now.Add(verification.CodeTTL)))
			return nil
		},
	}
	mailer := &mockCodeMailer{
		sendFn: func(ctx context.Context, email, code string) error {
			sentCode = code
			return nil
		},
	}

	uc := NewIssueCodeUseCase(codeRepo, &mockIssueLimiter{}, mailer, testLogger()).
		WithClock(func() time.Time { return now })

	err := uc.Execute(context.Background(), IssueCodeCommand{Email: "  Student@Example.COM "})
	require.NoError(t, err)

	// Any prior code is superseded before the new one is stored, and the
	// email is normalized everywhere.
	assert.Equal(t, []string{"student@example.com"}, superseded)
	assert.Equal(t, []string{"student@example.com"}, created)
	assert.Len(t, sentCode, 6)
}

func TestIssueCodeRateLimited(t *testing.T) {
	limiter := &mockIssueLimiter{
		allowIssueFn: func(ctx context.Context, email string) (bool, error) {
			return false, nil
		},
	}
	codeRepo := &mockCodeRepository{
		deleteByEmailFn: func(ctx context.Context, email string) error {
			t.Fatal("a rate-limited request must not supersede existing codes")
			return nil
		},
		createFn: func(ctx context.Context, code *verification.Code) error {
			t.Fatal("a rate-limited request must not create a code")
			return nil
		},
	}
	mailer := &mockCodeMailer{
		sendFn: func(ctx context.Context, email, code string) error {
			t.Fatal("a rate-limited request must not send email")
			return nil
		},
	}

	uc := NewIssueCodeUseCase(codeRepo, limiter, mailer, testLogger())

	err := uc.Execute(context.Background(), IssueCodeCommand{Email: "student@example.com"})
	require.Error(t, err)
	appErr := errors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrorTypeRateLimited, appErr.Type)
}

func TestIssueCodeLimiterFailureIsNotOpen(t *testing.T) {
	limiter := &mockIssueLimiter{
		allowIssueFn: func(ctx context.Context, email string) (bool, error) {
			return false, fmt.Errorf("redis down")
		},
	}

	uc := NewIssueCodeUseCase(&mockCodeRepository{}, limiter, &mockCodeMailer{}, testLogger())

	err := uc.Execute(context.Background(), IssueCodeCommand{Email: "student@example.com"})
	require.Error(t, err)
	appErr := errors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrorTypeInternal, appErr.Type)
}

func TestIssueCodeMailFailureStillSucceeds(t *testing.T) {
	var created int
	codeRepo := &mockCodeRepository{
		createFn: func(ctx context.Context, code *verification.Code) error {
			created++
			return nil
		},
	}
	mailer := &mockCodeMailer{
		sendFn: func(ctx context.Context, email, code string) error {
			return fmt.Errorf("smtp down")
		},
	}

	uc := NewIssueCodeUseCase(codeRepo, &mockIssueLimiter{}, mailer, testLogger())

	err := uc.Execute(context.Background(), IssueCodeCommand{Email: "student@example.com"})
	assert.NoError(t, err)
	assert.Equal(t, 1, created)
}

func TestIssueCodeInvalidEmail(t *testing.T) {
	tests := []string{"", "no-at-sign", "@nodomain", "nolocal@", "two@@ats"}

	for _, email := range tests {
		t.Run(email, func(t *testing.T) {
			limiter := &mockIssueLimiter{
				allowIssueFn: func(ctx context.Context, email string) (bool, error) {
					t.Fatal("invalid emails must be rejected before the limiter")
					return false, nil
				},
			}
			uc := NewIssueCodeUseCase(&mockCodeRepository{}, limiter, &mockCodeMailer{}, testLogger())

			err := uc.Execute(context.Background(), IssueCodeCommand{Email: email})
			assert.Error(t, err)
		})
	}
}

func TestIssueCodeSweepFailureIsNonFatal(t *testing.T) {
	codeRepo := &mockCodeRepository{
		deleteExpiredFn: func(ctx context.Context, before time.Time) error {
			return fmt.Errorf("store down")
		},
	}

	uc := NewIssueCodeUseCase(codeRepo, &mockIssueLimiter{}, &mockCodeMailer{}, testLogger())

	assert.NoError(t, uc.Execute(context.Background(), IssueCodeCommand{Email: "student@example.com"}))
}
