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

// RecordUsageUseCase increments the consumed counter for a resource kind in
// the current period. It never checks limits: callers must run Check first
// and record only after the gated action succeeds.
//
// The increment is atomic at the storage layer. Because the row is keyed by
// (user, period start), the first record in a new month creates a fresh
// zeroed row, which is the period rollover.
//
// Unlike limit checks this never fails open: failing open here would mean
// unlimited unrecorded usage.
type RecordUsageUseCase struct {
	usageRepo entitlement.UsageRepository
	logger    logger.Interface
	now       func() time.Time
}

func NewRecordUsageUseCase(usageRepo entitlement.UsageRepository, logger logger.Interface) *RecordUsageUseCase {
	return &RecordUsageUseCase{
		usageRepo: usageRepo,
		logger:    logger,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

// WithClock overrides the time source. Test use only.
func (uc *RecordUsageUseCase) WithClock(now func() time.Time) *RecordUsageUseCase {
	uc.now = now
	return uc
}

func (uc *RecordUsageUseCase) Record(ctx context.Context, userID uint, kind entitlement.ResourceKind) error {
	if userID == 0 {
		return errors.NewValidationError("user ID is required")
	}
	if !kind.IsValid() {
		return errors.NewValidationError(fmt.Sprintf("unknown resource kind: %s", kind))
	}

	periodStart := biztime.PeriodStart(uc.now())
	if err := uc.usageRepo.Increment(ctx, userID, periodStart, kind); err != nil {
		uc.logger.Errorw("failed to record usage",
			"user_id", userID,
			"resource", kind,
			"period_start", periodStart,
			"error", err,
		)
		return errors.NewInternalError("failed to record usage")
	}

	uc.logger.Debugw("usage recorded", "user_id", userID, "resource", kind)
	return nil
}
