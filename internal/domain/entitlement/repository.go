package entitlement

import (
	"context"
	"time"
)

// SubscriptionRepository persists subscription rows. Lookups return
// (nil, nil) when no row exists for the user.
type SubscriptionRepository interface {
	GetByUserID(ctx context.Context, userID uint) (*Subscription, error)
	Save(ctx context.Context, sub *Subscription) error
	Update(ctx context.Context, sub *Subscription) error
	// ListLapsedActive returns subscriptions still marked active whose
	// expiry has passed the given instant. Used by the expiry sweep.
	ListLapsedActive(ctx context.Context, before time.Time) ([]*Subscription, error)
}

// UsageRepository persists per-period usage counters.
type UsageRepository interface {
	// GetForPeriod returns the usage row for (userID, periodStart), or
	// (nil, nil) when the user has not yet consumed anything this period.
	GetForPeriod(ctx context.Context, userID uint, periodStart time.Time) (*Usage, error)
	// Increment atomically adds one to the named counter for
	// (userID, periodStart), creating the row (with the other counters at
	// zero) when it does not exist. The increment must happen in the store,
	// not via read-modify-write, so concurrent calls never lose updates.
	Increment(ctx context.Context, userID uint, periodStart time.Time, kind ResourceKind) error
}

// AdminChecker answers whether an identity is an administrator.
// Implemented by the auth layer; the resolver treats it as a collaborator.
type AdminChecker interface {
	IsAdmin(ctx context.Context, userID uint) (bool, error)
}
