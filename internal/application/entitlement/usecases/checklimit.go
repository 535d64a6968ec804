package usecases

import (
	"context"
	"fmt"
	"time"

	"studyhall/internal/domain/entitlement"
	"studyhall/internal/shared/biztime"
	"studyhall/internal/shared/errors"
	"studyhall/internal/shared/logger"
)

// CheckLimitUseCase answers whether a user may consume one more unit of a
// resource kind in the current period.
//
// Transient store failures fail OPEN: availability of the study tools is
// prioritized over strict quota enforcement, so a read error yields
// allowed=true with limit=-1 and an explicit policy log. Recording is the
// opposite (see RecordUsageUseCase): it never fails open.
type CheckLimitUseCase struct {
	planResolver PlanResolver
	usageRepo    entitlement.UsageRepository
	logger       logger.Interface
	now          func() time.Time
}

func NewCheckLimitUseCase(
	planResolver PlanResolver,
	usageRepo entitlement.UsageRepository,
	logger logger.Interface,
) *CheckLimitUseCase {
	return &CheckLimitUseCase{
		planResolver: planResolver,
		usageRepo:    usageRepo,
		logger:       logger,
		now:          func() time.Time { return time.Now().UTC() },
	}
}

// WithClock overrides the time source. Test use only.
func (uc *CheckLimitUseCase) WithClock(now func() time.Time) *CheckLimitUseCase {
	uc.now = now
	return uc
}

func (uc *CheckLimitUseCase) Check(ctx context.Context, userID uint, kind entitlement.ResourceKind) (*entitlement.Decision, error) {
	if userID == 0 {
		return nil, errors.NewValidationError("user ID is required")
	}
	if !kind.IsValid() {
		return nil, errors.NewValidationError(fmt.Sprintf("unknown resource kind: %s", kind))
	}

	plan, err := uc.planResolver.Resolve(ctx, userID)
	if err != nil {
		return uc.failOpen(userID, kind, err), nil
	}

	// Administrators never read or require usage counters.
	if plan == entitlement.TierAdmin {
		return &entitlement.Decision{
			Allowed: true,
			Current: 0,
			Limit:   entitlement.Unlimited,
			Plan:    entitlement.TierAdmin,
		}, nil
	}

	limits, err := entitlement.LimitsFor(plan)
	if err != nil {
		return nil, errors.NewInternalError("failed to resolve plan limits", err.Error())
	}
	limit, err := limits.For(kind)
	if err != nil {
		return nil, errors.NewInternalError("failed to resolve resource limit", err.Error())
	}

	current := 0
	usage, err := uc.usageRepo.GetForPeriod(ctx, userID, biztime.PeriodStart(uc.now()))
	if err != nil {
		return uc.failOpen(userID, kind, err), nil
	}
	if usage != nil {
		current, err = usage.CounterFor(kind)
		if err != nil {
			return nil, errors.NewInternalError("failed to read usage counter", err.Error())
		}
	}

	decision := &entitlement.Decision{
		Allowed: true,
		Current: current,
		Limit:   limit,
		Plan:    plan,
	}

	// Unlimited plans keep counters for observability but never gate.
	if limit == entitlement.Unlimited {
		return decision, nil
	}

	if current >= limit {
		decision.Allowed = false
		decision.Message = fmt.Sprintf("%s limit reached (%d/%d) on the %s plan", kind, current, limit, plan)
	}

	return decision, nil
}

// failOpen is the explicit availability-over-strictness policy branch for
// transient store errors during limit checks.
func (uc *CheckLimitUseCase) failOpen(userID uint, kind entitlement.ResourceKind, cause error) *entitlement.Decision {
	uc.logger.Warnw("entitlement check failed, failing open by policy",
		"user_id", userID,
		"resource", kind,
		"error", cause,
	)
	return &entitlement.Decision{
		Allowed: true,
		Current: 0,
		Limit:   entitlement.Unlimited,
		Plan:    entitlement.TierFree,
	}
}
