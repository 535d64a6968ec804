package usecases

import (
	"context"
	"time"

	"studyhall/internal/domain/entitlement"
	"studyhall/internal/shared/logger"
)

// ExpireLapsedUseCase sweeps subscriptions still marked active whose expiry
// has passed and records the expired status. Purely bookkeeping: plan
// resolution already treats lapsed subscriptions as free regardless of the
// stored status, so a failed sweep never grants access.
type ExpireLapsedUseCase struct {
	subRepo entitlement.SubscriptionRepository
	logger  logger.Interface
	now     func() time.Time
}

func NewExpireLapsedUseCase(subRepo entitlement.SubscriptionRepository, logger logger.Interface) *ExpireLapsedUseCase {
	return &ExpireLapsedUseCase{
		subRepo: subRepo,
		logger:  logger,
		now:     func() time.Time { return time.Now().UTC() },
	}
}

// WithClock overrides the time source. Test use only.
func (uc *ExpireLapsedUseCase) WithClock(now func() time.Time) *ExpireLapsedUseCase {
	uc.now = now
	return uc
}

// Execute returns how many subscriptions were marked expired.
func (uc *ExpireLapsedUseCase) Execute(ctx context.Context) (int, error) {
	lapsed, err := uc.subRepo.ListLapsedActive(ctx, uc.now())
	if err != nil {
		uc.logger.Errorw("failed to list lapsed subscriptions", "error", err)
		return 0, err
	}

	expired := 0
	for _, sub := range lapsed {
		if err := sub.MarkExpired(); err != nil {
			uc.logger.Warnw("skipping subscription in unexpected state",
				"subscription_id", sub.ID(),
				"status", sub.Status(),
				"error", err,
			)
			continue
		}
		if err := uc.subRepo.Update(ctx, sub); err != nil {
			uc.logger.Errorw("failed to mark subscription expired",
				"subscription_id", sub.ID(),
				"error", err,
			)
			continue
		}
		expired++
	}

	if expired > 0 {
		uc.logger.Infow("expiry sweep complete", "expired", expired)
	}
	return expired, nil
}
