package usecases

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"studyhall/internal/domain/entitlement"
	"studyhall/internal/shared/biztime"
	"studyhall/internal/shared/errors"
)

func TestRecordUsage(t *testing.T) {
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)

	var gotPeriod time.Time
	var gotKind entitlement.ResourceKind
	usageRepo := &mockUsageRepository{
		incrementFn: func(ctx context.Context, userID uint, periodStart time.Time, kind entitlement.ResourceKind) error {
			gotPeriod = periodStart
			gotKind = kind
			return nil
		},
	}

	uc := NewRecordUsageUseCase(usageRepo, testLogger()).
		WithClock(func() time.Time { return now })

	require.NoError(t, uc.Record(context.Background(), 42, entitlement.ResourceFlashcards))
	assert.True(t, gotPeriod.Equal(biztime.PeriodStart(now)))
	assert.Equal(t, entitlement.ResourceFlashcards, gotKind)
}

func TestRecordUsageNeverFailsOpen(t *testing.T) {
	usageRepo := &mockUsageRepository{
		incrementFn: func(ctx context.Context, userID uint, periodStart time.Time, kind entitlement.ResourceKind) error {
			return fmt.Errorf("store down")
		},
	}

	uc := NewRecordUsageUseCase(usageRepo, testLogger())

	err := uc.Record(context.Background(), 42, entitlement.ResourceQuizzes)
	require.Error(t, err)
	appErr := errors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrorTypeInternal, appErr.Type)
}

func TestRecordUsageValidation(t *testing.T) {
	uc := NewRecordUsageUseCase(&mockUsageRepository{}, testLogger())

	assert.Error(t, uc.Record(context.Background(), 0, entitlement.ResourceQuizzes))
	assert.Error(t, uc.Record(context.Background(), 42, entitlement.ResourceKind("essays")))
}

// Concurrent records against a store whose increment is atomic must all be
// counted.
func TestRecordUsageConcurrent(t *testing.T) {
	var mu sync.Mutex
	counters := map[entitlement.ResourceKind]int{}

	usageRepo := &mockUsageRepository{
		incrementFn: func(ctx context.Context, userID uint, periodStart time.Time, kind entitlement.ResourceKind) error {
			mu.Lock()
			defer mu.Unlock()
			counters[kind]++
			return nil
		},
	}

	uc := NewRecordUsageUseCase(usageRepo, testLogger())

	const n = 100
	var wg sync.WaitGroup
	wg.Add(n)
	for i := 0; i < n; i++ {
		go func() {
			defer wg.Done()
			_ = uc.Record(context.Background(), 42, entitlement.ResourceQuizzes)
		}()
	}
	wg.Wait()

	assert.Equal(t, n, counters[entitlement.ResourceQuizzes])
}
