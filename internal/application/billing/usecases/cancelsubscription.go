package usecases

import (
	"context"

	"studyhall/internal/domain/entitlement"
	"studyhall/internal/shared/errors"
	"studyhall/internal/shared/logger"
)

type CancelSubscriptionCommand struct {
	UserID uint
}

// CancelSubscriptionUseCase cancels a subscription when the payment provider
// reports deletion or final payment failure. Cancelling is idempotent;
// cancelling a user with no subscription row is a no-op because provider
// events can arrive out of order.
type CancelSubscriptionUseCase struct {
	subRepo entitlement.SubscriptionRepository
	logger  logger.Interface
}

func NewCancelSubscriptionUseCase(subRepo entitlement.SubscriptionRepository, logger logger.Interface) *CancelSubscriptionUseCase {
	return &CancelSubscriptionUseCase{subRepo: subRepo, logger: logger}
}

func (uc *CancelSubscriptionUseCase) Execute(ctx context.Context, cmd CancelSubscriptionCommand) error {
	if cmd.UserID == 0 {
		return errors.NewValidationError("user ID is required")
	}

	sub, err := uc.subRepo.GetByUserID(ctx, cmd.UserID)
	if err != nil {
		uc.logger.Errorw("failed to load subscription", "user_id", cmd.UserID, "error", err)
		return errors.NewInternalError("failed to cancel subscription")
	}
	if sub == nil {
		uc.logger.Warnw("cancel event for user without subscription", "user_id", cmd.UserID)
		return nil
	}

	if err := sub.Cancel(); err != nil {
		return errors.NewConflictError(err.Error())
	}
	if err := uc.subRepo.Update(ctx, sub); err != nil {
		uc.logger.Errorw("failed to update subscription", "user_id", cmd.UserID, "error", err)
		return errors.NewInternalError("failed to cancel subscription")
	}

	uc.logger.Infow("subscription cancelled", "user_id", cmd.UserID)
	return nil
}
