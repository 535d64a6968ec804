package usecases

import (
	"context"

	"studyhall/internal/domain/entitlement"
)

// PlanResolver resolves the effective plan tier for a user. Implemented by
// ResolvePlanUseCase; consumed by CheckLimitUseCase and the subscription
// handler.
type PlanResolver interface {
	Resolve(ctx context.Context, userID uint) (entitlement.PlanTier, error)
}

// LimitChecker answers quota questions. Implemented by CheckLimitUseCase;
// generation use cases depend on this interface.
type LimitChecker interface {
	Check(ctx context.Context, userID uint, kind entitlement.ResourceKind) (*entitlement.Decision, error)
}

// UsageRecorder records consumed units. Implemented by RecordUsageUseCase.
// Callers must check first and record only after the gated action succeeds.
type UsageRecorder interface {
	Record(ctx context.Context, userID uint, kind entitlement.ResourceKind) error
}
