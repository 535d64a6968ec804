package usecases

import (
	"context"
	"time"

	"studyhall/internal/domain/verification"
	"studyhall/internal/shared/errors"
	"studyhall/internal/shared/logger"
)

type IssueCodeCommand struct {
	Email string
}

// IssueCodeUseCase issues a one-time verification code for an email
// address: validate, rate limit, supersede any prior codes, persist, send.
//
// The response deliberately never reveals whether the email is already
// registered, and a failed email send does not fail the request: the code
// stays valid and the failure is only logged.
type IssueCodeUseCase struct {
	codeRepo verification.Repository
	limiter  verification.IssueLimiter
	mailer   CodeMailer
	logger   logger.Interface
	now      func() time.Time
}

func NewIssueCodeUseCase(
	codeRepo verification.Repository,
	limiter verification.IssueLimiter,
	mailer CodeMailer,
	logger logger.Interface,
) *IssueCodeUseCase {
	return &IssueCodeUseCase{
		codeRepo: codeRepo,
		limiter:  limiter,
		mailer:   mailer,
		logger:   logger,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// WithClock overrides the time source. Test use only.
func (uc *IssueCodeUseCase) WithClock(now func() time.Time) *IssueCodeUseCase {
	uc.now = now
	return uc
}

func (uc *IssueCodeUseCase) Execute(ctx context.Context, cmd IssueCodeCommand) error {
	if err := verification.ValidateEmail(cmd.Email); err != nil {
		return errors.NewValidationError(err.Error())
	}
	email := verification.NormalizeEmail(cmd.Email)

	allowed, err := uc.limiter.AllowIssue(ctx, email)
	if err != nil {
		// Rate limiting must not fail open: an unavailable limiter would
		// otherwise allow unbounded resends.
		uc.logger.Errorw("issue rate limiter unavailable", "error", err)
		return errors.NewInternalError("failed to issue verification code")
	}
	if !allowed {
		return errors.NewRateLimitedError("too many verification codes requested, try again in a few minutes")
	}

	now := uc.now()

	// Housekeeping sweep; correctness does not depend on it because verify
	// re-checks expiry.
	if err := uc.codeRepo.DeleteExpired(ctx, now); err != nil {
		uc.logger.Warnw("failed to sweep expired codes", "error", err)
	}

	// Supersede: the latest code a user receives is the only valid one,
	// even when the prior one has not expired yet.
	if err := uc.codeRepo.DeleteByEmail(ctx, email); err != nil {
		uc.logger.Errorw("failed to supersede existing codes", "email", email, "error", err)
		return errors.NewInternalError("failed to issue verification code")
	}

	code, err := verification.NewCode(email, now)
	if err != nil {
		uc.logger.Errorw("failed to generate verification code", "error", err)
		return errors.NewInternalError("failed to issue verification code")
	}

	if err := uc.codeRepo.Create(ctx, code); err != nil {
		uc.logger.Errorw("failed to persist verification code", "email", email, "error", err)
		return errors.NewInternalError("failed to issue verification code")
	}

	if err := uc.mailer.SendVerificationCode(ctx, email, code.Value()); err != nil {
		// The code is already persisted and stays valid. Matching the
		// platform's historical behavior, the caller still sees success.
		uc.logger.Errorw("failed to send verification code email", "email", email, "error", err)
	}

	uc.logger.Infow("verification code issued", "email", email)
	return nil
}
