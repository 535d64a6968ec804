package usecases

import (
	"context"
	"fmt"
	"time"

	"studyhall/internal/domain/entitlement"
	"studyhall/internal/shared/logger"
)

// ResolvePlanUseCase resolves the effective plan tier for a user from the
// admin predicate and the subscription row. Pure: no side effects, a
// function of current state and current time only.
type ResolvePlanUseCase struct {
	subRepo      entitlement.SubscriptionRepository
	adminChecker entitlement.AdminChecker
	logger       logger.Interface
	now          func() time.Time
}

func NewResolvePlanUseCase(
	subRepo entitlement.SubscriptionRepository,
	adminChecker entitlement.AdminChecker,
	logger logger.Interface,
) *ResolvePlanUseCase {
	return &ResolvePlanUseCase{
		subRepo:      subRepo,
		adminChecker: adminChecker,
		logger:       logger,
		now:          func() time.Time { return time.Now().UTC() },
	}
}

// WithClock overrides the time source. Test use only.
func (uc *ResolvePlanUseCase) WithClock(now func() time.Time) *ResolvePlanUseCase {
	uc.now = now
	return uc
}

// Resolve applies the tier rules in order, first match wins:
// administrator, no subscription row, non-active status, lapsed expiry,
// then the stored tier.
func (uc *ResolvePlanUseCase) Resolve(ctx context.Context, userID uint) (entitlement.PlanTier, error) {
	if userID == 0 {
		return "", fmt.Errorf("user ID is required")
	}

	isAdmin, err := uc.adminChecker.IsAdmin(ctx, userID)
	if err != nil {
		return "", fmt.Errorf("failed to check admin status: %w", err)
	}
	if isAdmin {
		return entitlement.TierAdmin, nil
	}

	sub, err := uc.subRepo.GetByUserID(ctx, userID)
	if err != nil {
		return "", fmt.Errorf("failed to get subscription: %w", err)
	}
	if sub == nil {
		return entitlement.TierFree, nil
	}
	if sub.Status() != entitlement.StatusActive {
		return entitlement.TierFree, nil
	}
	if sub.IsExpiredAt(uc.now()) {
		return entitlement.TierFree, nil
	}

	return sub.Tier(), nil
}
