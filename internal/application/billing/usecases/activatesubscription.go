package usecases

import (
	"context"
	"time"

	"studyhall/internal/domain/entitlement"
	"studyhall/internal/shared/errors"
	"studyhall/internal/shared/logger"
)

type ActivateSubscriptionCommand struct {
	UserID    uint
	Tier      entitlement.PlanTier
	ExpiresAt time.Time
}

// ActivateSubscriptionUseCase activates or renews a subscription after a
// successful checkout or renewal payment. A cancelled row is replaced by a
// fresh one so a returning customer can re-subscribe; Save upserts on the
// user, keeping at most one row per user.
type ActivateSubscriptionUseCase struct {
	subRepo entitlement.SubscriptionRepository
	logger  logger.Interface
}

func NewActivateSubscriptionUseCase(subRepo entitlement.SubscriptionRepository, logger logger.Interface) *ActivateSubscriptionUseCase {
	return &ActivateSubscriptionUseCase{subRepo: subRepo, logger: logger}
}

func (uc *ActivateSubscriptionUseCase) Execute(ctx context.Context, cmd ActivateSubscriptionCommand) error {
	if cmd.UserID == 0 {
		return errors.NewValidationError("user ID is required")
	}

	sub, err := uc.subRepo.GetByUserID(ctx, cmd.UserID)
	if err != nil {
		uc.logger.Errorw("failed to load subscription", "user_id", cmd.UserID, "error", err)
		return errors.NewInternalError("failed to activate subscription")
	}

	if sub == nil || sub.Status() == entitlement.StatusCancelled {
		fresh, err := entitlement.NewSubscription(cmd.UserID, cmd.Tier)
		if err != nil {
			return errors.NewValidationError(err.Error())
		}
		if err := fresh.Activate(cmd.Tier, cmd.ExpiresAt); err != nil {
			return errors.NewValidationError(err.Error())
		}
		if err := uc.subRepo.Save(ctx, fresh); err != nil {
			uc.logger.Errorw("failed to save subscription", "user_id", cmd.UserID, "error", err)
			return errors.NewInternalError("failed to activate subscription")
		}
	} else {
		if err := sub.Activate(cmd.Tier, cmd.ExpiresAt); err != nil {
			return errors.NewValidationError(err.Error())
		}
		if err := uc.subRepo.Update(ctx, sub); err != nil {
			uc.logger.Errorw("failed to update subscription", "user_id", cmd.UserID, "error", err)
			return errors.NewInternalError("failed to activate subscription")
		}
	}

	uc.logger.Infow("subscription activated",
		"user_id", cmd.UserID,
		"tier", cmd.Tier,
		"expires_at", cmd.ExpiresAt,
	)
	return nil
}
