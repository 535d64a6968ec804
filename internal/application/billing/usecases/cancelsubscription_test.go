package usecases

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"studyhall/internal/domain/entitlement"
	"studyhall/internal/shared/errors"
)

func TestCancelSubscription(t *testing.T) {
	expiry := time.Date(2026, 4, 15, 0, 0, 0, 0, time.UTC)
	existing := subscriptionWithStatus(1, 42, entitlement.TierMonthly, entitlement.StatusActive, &expiry)

	var updated *entitlement.Subscription
	subRepo := &mockSubscriptionRepository{
		getByUserIDFn: func(ctx context.Context, userID uint) (*entitlement.Subscription, error) {
			return existing, nil
		},
		updateFn: func(ctx context.Context, sub *entitlement.Subscription) error {
			updated = sub
			return nil
		},
	}

	uc := NewCancelSubscriptionUseCase(subRepo, testLogger())

	require.NoError(t, uc.Execute(context.Background(), CancelSubscriptionCommand{UserID: 42}))
	require.NotNil(t, updated)
	assert.Equal(t, entitlement.StatusCancelled, updated.Status())
}

// Provider events can arrive out of order; a cancel for an unknown user is
// acknowledged rather than retried forever.
func TestCancelSubscriptionWithoutRowIsNoOp(t *testing.T) {
	subRepo := &mockSubscriptionRepository{
		updateFn: func(ctx context.Context, sub *entitlement.Subscription) error {
			t.Fatal("nothing to update when no row exists")
			return nil
		},
	}

	uc := NewCancelSubscriptionUseCase(subRepo, testLogger())

	assert.NoError(t, uc.Execute(context.Background(), CancelSubscriptionCommand{UserID: 42}))
}

func TestCancelSubscriptionIdempotent(t *testing.T) {
	cancelled := subscriptionWithStatus(1, 42, entitlement.TierMonthly, entitlement.StatusCancelled, nil)

	subRepo := &mockSubscriptionRepository{
		getByUserIDFn: func(ctx context.Context, userID uint) (*entitlement.Subscription, error) {
			return cancelled, nil
		},
	}

	uc := NewCancelSubscriptionUseCase(subRepo, testLogger())

	assert.NoError(t, uc.Execute(context.Background(), CancelSubscriptionCommand{UserID: 42}))
}

func TestCancelSubscriptionErrors(t *testing.T) {
	t.Run("zero user ID", func(t *testing.T) {
		uc := NewCancelSubscriptionUseCase(&mockSubscriptionRepository{}, testLogger())
		err := uc.Execute(context.Background(), CancelSubscriptionCommand{})
		assert.True(t, errors.IsValidationError(err))
	})

	t.Run("lookup failure", func(t *testing.T) {
		subRepo := &mockSubscriptionRepository{
			getByUserIDFn: func(ctx context.Context, userID uint) (*entitlement.Subscription, error) {
				return nil, fmt.Errorf("store down")
			},
		}
		uc := NewCancelSubscriptionUseCase(subRepo, testLogger())
		err := uc.Execute(context.Background(), CancelSubscriptionCommand{UserID: 42})
		require.Error(t, err)
	})
}
