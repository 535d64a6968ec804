package usecases

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"studyhall/internal/domain/entitlement"
)

func TestExpireLapsed(t *testing.T) {
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)
	past := now.Add(-time.Hour)

	lapsed := []*entitlement.Subscription{
		subscriptionWithStatus(1, 41, entitlement.TierMonthly, entitlement.StatusActive, &past),
		subscriptionWithStatus(2, 42, entitlement.TierYearly, entitlement.StatusActive, &past),
	}

	var updates []uint
	subRepo := &mockSubscriptionRepository{
		listLapsedActiveFn: func(ctx context.Context, before time.Time) ([]*entitlement.Subscription, error) {
			assert.True(t, before.Equal(now))
			return lapsed, nil
		},
		updateFn: func(ctx context.Context, sub *entitlement.Subscription) error {
			assert.Equal(t, entitlement.StatusExpired, sub.Status())
			updates = append(updates, sub.ID())
			return nil
		},
	}

	uc := NewExpireLapsedUseCase(subRepo, testLogger()).
		WithClock(func() time.Time { return now })

	count, err := uc.Execute(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, count)
	assert.Equal(t, []uint{1, 2}, updates)
}

func TestExpireLapsedEmptySweep(t *testing.T) {
	uc := NewExpireLapsedUseCase(&mockSubscriptionRepository{}, testLogger())

	count, err := uc.Execute(context.Background())
	require.NoError(t, err)
	assert.Zero(t, count)
}

// One row failing to update must not stop the rest of the sweep.
func TestExpireLapsedPartialFailure(t *testing.T) {
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)
	past := now.Add(-time.Hour)

	lapsed := []*entitlement.Subscription{
		subscriptionWithStatus(1, 41, entitlement.TierMonthly, entitlement.StatusActive, &past),
		subscriptionWithStatus(2, 42, entitlement.TierMonthly, entitlement.StatusActive, &past),
		subscriptionWithStatus(3, 43, entitlement.TierMonthly, entitlement.StatusActive, &past),
	}

	subRepo := &mockSubscriptionRepository{
		listLapsedActiveFn: func(ctx context.Context, before time.Time) ([]*entitlement.Subscription, error) {
			return lapsed, nil
		},
		updateFn: func(ctx context.Context, sub *entitlement.Subscription) error {
			if sub.ID() == 2 {
				return fmt.Errorf("store down")
			}
			return nil
		},
	}

	uc := NewExpireLapsedUseCase(subRepo, testLogger()).
		WithClock(func() time.Time { return now })

	count, err := uc.Execute(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestExpireLapsedListFailure(t *testing.T) {
	subRepo := &mockSubscriptionRepository{
		listLapsedActiveFn: func(ctx context.Context, before time.Time) ([]*entitlement.Subscription, error) {
			return nil, fmt.Errorf("store down")
		},
	}

	uc := NewExpireLapsedUseCase(subRepo, testLogger())

	_, err := uc.Execute(context.Background())
	assert.Error(t, err)
}
