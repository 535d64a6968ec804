package usecases

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"studyhall/internal/domain/entitlement"
	"studyhall/internal/shared/biztime"
	"studyhall/internal/shared/errors"
)

func TestGetMySubscriptionFreeUser(t *testing.T) {
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)

	usageRepo := &mockUsageRepository{
		getForPeriodFn: func(ctx context.Context, userID uint, periodStart time.Time) (*entitlement.Usage, error) {
			assert.True(t, periodStart.Equal(biztime.PeriodStart(now)))
			u, err := entitlement.ReconstructUsage(1, userID, periodStart, 2, 4, 0, 1, 0, periodStart)
			require.NoError(t, err)
			return u, nil
		},
	}

	uc := NewGetMySubscriptionUseCase(&mockPlanResolver{}, &mockSubscriptionRepository{}, usageRepo, testLogger()).
		WithClock(func() time.Time { return now })

	result, err := uc.Execute(context.Background(), GetMySubscriptionCommand{UserID: 42})
	require.NoError(t, err)
	assert.Equal(t, entitlement.TierFree, result.Plan)
	assert.Equal(t, entitlement.StatusActive, result.Status)
	assert.Nil(t, result.ExpiresAt)
	assert.Len(t, result.Usage, len(entitlement.AllResourceKinds))
	assert.Equal(t, ResourceUsageView{Current: 2, Limit: 3}, result.Usage[entitlement.ResourceDocuments])
	assert.Equal(t, ResourceUsageView{Current: 4, Limit: 5}, result.Usage[entitlement.ResourceQuizzes])
}

func TestGetMySubscriptionPaidUser(t *testing.T) {
	expiry := time.Date(2026, 4, 15, 0, 0, 0, 0, time.UTC)
	resolver := &mockPlanResolver{
		resolveFn: func(ctx context.Context, userID uint) (entitlement.PlanTier, error) {
			return entitlement.TierMonthly, nil
		},
	}
	subRepo := &mockSubscriptionRepository{
		getByUserIDFn: func(ctx context.Context, userID uint) (*entitlement.Subscription, error) {
			return subscriptionWithStatus(1, userID, entitlement.TierMonthly, entitlement.StatusActive, &expiry), nil
		},
	}

	uc := NewGetMySubscriptionUseCase(resolver, subRepo, &mockUsageRepository{}, testLogger())

	result, err := uc.Execute(context.Background(), GetMySubscriptionCommand{UserID: 42})
	require.NoError(t, err)
	assert.Equal(t, entitlement.TierMonthly, result.Plan)
	require.NotNil(t, result.ExpiresAt)
	assert.True(t, result.ExpiresAt.Equal(expiry))
	for _, view := range result.Usage {
		assert.Equal(t, entitlement.Unlimited, view.Limit)
	}
}

func TestGetMySubscriptionNoUsageRow(t *testing.T) {
	uc := NewGetMySubscriptionUseCase(&mockPlanResolver{}, &mockSubscriptionRepository{}, &mockUsageRepository{}, testLogger())

	result, err := uc.Execute(context.Background(), GetMySubscriptionCommand{UserID: 42})
	require.NoError(t, err)
	for _, view := range result.Usage {
		assert.Zero(t, view.Current)
	}
}

// This is a read endpoint: unlike limit checks it surfaces store errors
// instead of failing open.
func TestGetMySubscriptionDoesNotFailOpen(t *testing.T) {
	usageRepo := &mockUsageRepository{
		getForPeriodFn: func(ctx context.Context, userID uint, periodStart time.Time) (*entitlement.Usage, error) {
			return nil, fmt.Errorf("store down")
		},
	}

	uc := NewGetMySubscriptionUseCase(&mockPlanResolver{}, &mockSubscriptionRepository{}, usageRepo, testLogger())

	_, err := uc.Execute(context.Background(), GetMySubscriptionCommand{UserID: 42})
	require.Error(t, err)
	appErr := errors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrorTypeInternal, appErr.Type)
}

func TestGetMySubscriptionValidation(t *testing.T) {
	uc := NewGetMySubscriptionUseCase(&mockPlanResolver{}, &mockSubscriptionRepository{}, &mockUsageRepository{}, testLogger())

	_, err := uc.Execute(context.Background(), GetMySubscriptionCommand{})
	assert.True(t, errors.IsValidationError(err))
}
