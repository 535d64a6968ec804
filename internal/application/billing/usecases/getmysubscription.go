package usecases

import (
	"context"
	"time"

	"studyhall/internal/domain/entitlement"
	"studyhall/internal/shared/biztime"
	"studyhall/internal/shared/errors"
	"studyhall/internal/shared/logger"
)

// PlanResolver resolves the effective plan tier for a user.
type PlanResolver interface {
	Resolve(ctx context.Context, userID uint) (entitlement.PlanTier, error)
}

type GetMySubscriptionCommand struct {
	UserID uint
}

type ResourceUsageView struct {
	Current int `json:"current"`
	Limit   int `json:"limit"`
}

type GetMySubscriptionResult struct {
	Plan      entitlement.PlanTier                           `json:"plan"`
	Status    entitlement.SubscriptionStatus                 `json:"status"`
	ExpiresAt *time.Time                                     `json:"expires_at,omitempty"`
	Usage     map[entitlement.ResourceKind]ResourceUsageView `json:"usage"`
}

// GetMySubscriptionUseCase returns the caller's effective plan with the
// current period's usage against each limit. Unlike limit checks this is a
// read endpoint and does not fail open: errors surface to the caller.
type GetMySubscriptionUseCase struct {
	planResolver PlanResolver
	subRepo      entitlement.SubscriptionRepository
	usageRepo    entitlement.UsageRepository
	logger       logger.Interface
	now          func() time.Time
}

func NewGetMySubscriptionUseCase(
	planResolver PlanResolver,
	subRepo entitlement.SubscriptionRepository,
	usageRepo entitlement.UsageRepository,
	logger logger.Interface,
) *GetMySubscriptionUseCase {
	return &GetMySubscriptionUseCase{
		planResolver: planResolver,
		subRepo:      subRepo,
		usageRepo:    usageRepo,
		logger:       logger,
		now:          func() time.Time { return time.Now().UTC() },
	}
}

// WithClock overrides the time source. Test use only.
func (uc *GetMySubscriptionUseCase) WithClock(now func() time.Time) *GetMySubscriptionUseCase {
	uc.now = now
	return uc
}

func (uc *GetMySubscriptionUseCase) Execute(ctx context.Context, cmd GetMySubscriptionCommand) (*GetMySubscriptionResult, error) {
	if cmd.UserID == 0 {
		return nil, errors.NewValidationError("user ID is required")
	}

	plan, err := uc.planResolver.Resolve(ctx, cmd.UserID)
	if err != nil {
		uc.logger.Errorw("failed to resolve plan", "user_id", cmd.UserID, "error", err)
		return nil, errors.NewInternalError("failed to load subscription")
	}

	result := &GetMySubscriptionResult{
		Plan:   plan,
		Status: entitlement.StatusActive,
		Usage:  make(map[entitlement.ResourceKind]ResourceUsageView, len(entitlement.AllResourceKinds)),
	}

	sub, err := uc.subRepo.GetByUserID(ctx, cmd.UserID)
	if err != nil {
		uc.logger.Errorw("failed to load subscription", "user_id", cmd.UserID, "error", err)
		return nil, errors.NewInternalError("failed to load subscription")
	}
	if sub != nil {
		result.Status = sub.Status()
		result.ExpiresAt = sub.ExpiresAt()
	}

	limits, err := entitlement.LimitsFor(plan)
	if err != nil {
		return nil, errors.NewInternalError("failed to resolve plan limits", err.Error())
	}

	usage, err := uc.usageRepo.GetForPeriod(ctx, cmd.UserID, biztime.PeriodStart(uc.now()))
	if err != nil {
		uc.logger.Errorw("failed to load usage", "user_id", cmd.UserID, "error", err)
		return nil, errors.NewInternalError("failed to load subscription")
	}

	for _, kind := range entitlement.AllResourceKinds {
		limit, err := limits.For(kind)
		if err != nil {
			return nil, errors.NewInternalError("failed to resolve resource limit", err.Error())
		}
		current := 0
		if usage != nil {
			current, err = usage.CounterFor(kind)
			if err != nil {
				return nil, errors.NewInternalError("failed to read usage counter", err.Error())
			}
		}
		result.Usage[kind] = ResourceUsageView{Current: current, Limit: limit}
	}

	return result, nil
}
