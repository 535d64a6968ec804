package entitlement

import (
	"fmt"
	"time"
)

// SubscriptionStatus is the lifecycle state of a subscription row.
type SubscriptionStatus string

const (
	StatusActive    SubscriptionStatus = "active"
	StatusExpired   SubscriptionStatus = "expired"
	StatusCancelled SubscriptionStatus = "cancelled"
	StatusPending   SubscriptionStatus = "pending"
)

// ValidStatuses holds every valid subscription status.
var ValidStatuses = map[SubscriptionStatus]bool{
	StatusActive:    true,
	StatusExpired:   true,
	StatusCancelled: true,
	StatusPending:   true,
}

// Subscription is the subscription aggregate root. At most one row exists per
// user. Rows are never hard-deleted: expiry is computed from expiresAt at
// resolution time, so a stale status never grants access.
type Subscription struct {
	id          uint
	userID      uint
	tier        PlanTier
	status      SubscriptionStatus
	activatedAt time.Time
	expiresAt   *time.Time
	createdAt   time.Time
	updatedAt   time.Time
}

// NewSubscription creates a pending subscription for a user.
func NewSubscription(userID uint, tier PlanTier) (*Subscription, error) {
	if userID == 0 {
		return nil, fmt.Errorf("user ID is required")
	}
	if !StorableTiers[tier] {
		return nil, fmt.Errorf("invalid plan tier: %s", tier)
	}

	now := time.Now().UTC()
	return &Subscription{
		userID:      userID,
		tier:        tier,
		status:      StatusPending,
		activatedAt: now,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

// ReconstructSubscription reconstructs a subscription from persistence.
func ReconstructSubscription(
	id, userID uint,
	tier PlanTier,
	status SubscriptionStatus,
	activatedAt time.Time,
	expiresAt *time.Time,
	createdAt, updatedAt time.Time,
) (*Subscription, error) {
	if id == 0 {
		return nil, fmt.Errorf("subscription ID cannot be zero")
	}
	if userID == 0 {
		return nil, fmt.Errorf("user ID is required")
	}
	if !StorableTiers[tier] {
		return nil, fmt.Errorf("invalid plan tier: %s", tier)
	}
	if !ValidStatuses[status] {
		return nil, fmt.Errorf("invalid subscription status: %s", status)
	}

	return &Subscription{
		id:          id,
		userID:      userID,
		tier:        tier,
		status:      status,
		activatedAt: activatedAt,
		expiresAt:   expiresAt,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}, nil
}

func (s *Subscription) ID() uint                   { return s.id }
func (s *Subscription) UserID() uint               { return s.userID }
func (s *Subscription) Tier() PlanTier             { return s.tier }
func (s *Subscription) Status() SubscriptionStatus { return s.status }
func (s *Subscription) ActivatedAt() time.Time     { return s.activatedAt }
func (s *Subscription) ExpiresAt() *time.Time      { return s.expiresAt }
func (s *Subscription) CreatedAt() time.Time       { return s.createdAt }
func (s *Subscription) UpdatedAt() time.Time       { return s.updatedAt }

// SetID sets the subscription ID (only for persistence layer use)
func (s *Subscription) SetID(id uint) error {
	if s.id != 0 {
		return fmt.Errorf("subscription ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("subscription ID cannot be zero")
	}
	s.id = id
	return nil
}

// Activate activates the subscription on the given tier until expiresAt.
// Called from the payment webhook on successful checkout or renewal.
func (s *Subscription) Activate(tier PlanTier, expiresAt time.Time) error {
	if !StorableTiers[tier] {
		return fmt.Errorf("invalid plan tier: %s", tier)
	}
	if s.status == StatusCancelled {
		return fmt.Errorf("cannot activate a cancelled subscription")
	}

	now := time.Now().UTC()
	s.tier = tier
	s.status = StatusActive
	s.activatedAt = now
	s.expiresAt = &expiresAt
	s.updatedAt = now
	return nil
}

// Cancel cancels the subscription.
func (s *Subscription) Cancel() error {
	if s.status == StatusCancelled {
		return nil
	}
	s.status = StatusCancelled
	s.updatedAt = time.Now().UTC()
	return nil
}

// MarkExpired records the computed expiry on the row. This is an analytics
// convenience: plan resolution never depends on it, only on expiresAt.
func (s *Subscription) MarkExpired() error {
	if s.status == StatusExpired {
		return nil
	}
	if s.status != StatusActive {
		return fmt.Errorf("cannot mark subscription as expired with status %s", s.status)
	}
	s.status = StatusExpired
	s.updatedAt = time.Now().UTC()
	return nil
}

// IsExpiredAt reports whether the subscription has lapsed at the given
// instant. A subscription with no expiry never lapses by time.
func (s *Subscription) IsExpiredAt(now time.Time) bool {
	return s.expiresAt != nil && s.expiresAt.Before(now)
}
