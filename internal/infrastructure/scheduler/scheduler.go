// Package scheduler runs periodic background jobs.
package scheduler

import (
	"context"
	"time"

	billingusecases "studyhall/internal/application/billing/usecases"
	"studyhall/internal/shared/goroutine"
	"studyhall/internal/shared/logger"
)

// ExpirySweepInterval is how often lapsed subscriptions are swept.
const ExpirySweepInterval = time.Hour

// Scheduler runs the subscription expiry sweep on a fixed interval.
type Scheduler struct {
	expireLapsed *billingusecases.ExpireLapsedUseCase
	logger       logger.Interface
}

func New(expireLapsed *billingusecases.ExpireLapsedUseCase, logger logger.Interface) *Scheduler {
	return &Scheduler{expireLapsed: expireLapsed, logger: logger}
}

// Start launches the sweep loop. It runs once immediately, then hourly,
// until ctx is cancelled.
func (s *Scheduler) Start(ctx context.Context) {
	goroutine.SafeGo(s.logger, "subscription-expiry-sweep", func() {
		s.run(ctx)

		ticker := time.NewTicker(ExpirySweepInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				s.logger.Info("expiry sweep stopped")
				return
			case <-ticker.C:
				s.run(ctx)
			}
		}
	})
}

func (s *Scheduler) run(ctx context.Context) {
	if _, err := s.expireLapsed.Execute(ctx); err != nil {
		s.logger.Errorw("expiry sweep failed", "error", err)
	}
}
