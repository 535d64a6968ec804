package usecases

import (
	"context"
	"io"
	"log/slog"
	"time"

	"studyhall/internal/domain/entitlement"
	"studyhall/internal/shared/logger"
)

func testLogger() logger.Interface {
	return logger.NewLoggerWithSlog(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

type mockSubscriptionRepository struct {
	getByUserIDFn      func(ctx context.Context, userID uint) (*entitlement.Subscription, error)
	saveFn             func(ctx context.Context, sub *entitlement.Subscription) error
	updateFn           func(ctx context.Context, sub *entitlement.Subscription) error
	listLapsedActiveFn func(ctx context.Context, before time.Time) ([]*entitlement.Subscription, error)
}

func (m *mockSubscriptionRepository) GetByUserID(ctx context.Context, userID uint) (*entitlement.Subscription, error) {
	if m.getByUserIDFn != nil {
		return m.getByUserIDFn(ctx, userID)
	}
	return nil, nil
}

func (m *mockSubscriptionRepository) Save(ctx context.Context, sub *entitlement.Subscription) error {
	if m.saveFn != nil {
		return m.saveFn(ctx, sub)
	}
	return nil
}

func (m *mockSubscriptionRepository) Update(ctx context.Context, sub *entitlement.Subscription) error {
	if m.updateFn != nil {
		return m.updateFn(ctx, sub)
	}
	return nil
}

func (m *mockSubscriptionRepository) ListLapsedActive(ctx context.Context, before time.Time) ([]*entitlement.Subscription, error) {
	if m.listLapsedActiveFn != nil {
		return m.listLapsedActiveFn(ctx, before)
	}
	return nil, nil
}

type mockUsageRepository struct {
	getForPeriodFn func(ctx context.Context, userID uint, periodStart time.Time) (*entitlement.Usage, error)
	incrementFn    func(ctx context.Context, userID uint, periodStart time.Time, kind entitlement.ResourceKind) error
}

func (m *mockUsageRepository) GetForPeriod(ctx context.Context, userID uint, periodStart time.Time) (*entitlement.Usage, error) {
	if m.getForPeriodFn != nil {
		return m.getForPeriodFn(ctx, userID, periodStart)
	}
	return nil, nil
}

func (m *mockUsageRepository) Increment(ctx context.Context, userID uint, periodStart time.Time, kind entitlement.ResourceKind) error {
	if m.incrementFn != nil {
		return m.incrementFn(ctx, userID, periodStart, kind)
	}
	return nil
}

type mockPlanResolver struct {
	resolveFn func(ctx context.Context, userID uint) (entitlement.PlanTier, error)
}

func (m *mockPlanResolver) Resolve(ctx context.Context, userID uint) (entitlement.PlanTier, error) {
	if m.resolveFn != nil {
		return m.resolveFn(ctx, userID)
	}
	return entitlement.TierFree, nil
}

func subscriptionWithStatus(id, userID uint, tier entitlement.PlanTier, status entitlement.SubscriptionStatus, expiresAt *time.Time) *entitlement.Subscription {
	created := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	sub, err := entitlement.ReconstructSubscription(id, userID, tier, status, created, expiresAt, created, created)
	if err != nil {
		panic(err)
	}
	return sub
}
