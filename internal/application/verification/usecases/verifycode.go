package usecases

import (
	"context"
	"time"

	"studyhall/internal/domain/verification"
	"studyhall/internal/shared/errors"
	"studyhall/internal/shared/logger"
)

type VerifyCodeCommand struct {
	Email string
	Code  string
}

// VerifyCodeUseCase consumes a one-time code. Wrong code, expired code, and
// no-code-issued all yield the same generic failure so callers cannot
// enumerate which case occurred. Any matched row is deleted whatever the
// outcome; only the no-match path leaves storage untouched.
type VerifyCodeUseCase struct {
	codeRepo verification.Repository
	logger   logger.Interface
	now      func() time.Time
}

func NewVerifyCodeUseCase(codeRepo verification.Repository, logger logger.Interface) *VerifyCodeUseCase {
	return &VerifyCodeUseCase{
		codeRepo: codeRepo,
		logger:   logger,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// WithClock overrides the time source. Test use only.
func (uc *VerifyCodeUseCase) WithClock(now func() time.Time) *VerifyCodeUseCase {
	uc.now = now
	return uc
}

func (uc *VerifyCodeUseCase) Execute(ctx context.Context, cmd VerifyCodeCommand) error {
	// Shape failures never touch storage.
	if err := verification.ValidateCodeShape(cmd.Code); err != nil {
		return errors.NewValidationError(err.Error())
	}
	if err := verification.ValidateEmail(cmd.Email); err != nil {
		return errors.NewValidationError(err.Error())
	}
	email := verification.NormalizeEmail(cmd.Email)

	now := uc.now()

	// Housekeeping sweep of globally expired codes.
	if err := uc.codeRepo.DeleteExpired(ctx, now); err != nil {
		uc.logger.Warnw("failed to sweep expired codes", "error", err)
	}

	code, err := uc.codeRepo.ConsumeMatching(ctx, email, cmd.Code)
	if err != nil {
		uc.logger.Errorw("failed to look up verification code", "email", email, "error", err)
		return errors.NewInternalError("failed to verify code")
	}
	if code == nil {
		return errors.NewBadRequestError("invalid or expired verification code")
	}

	// The row is already consumed; expiry is re-checked here rather than
	// trusting the sweep.
	if code.IsExpiredAt(now) {
		return errors.NewBadRequestError("invalid or expired verification code")
	}

	uc.logger.Infow("email verified", "email", email)
	return nil
}
