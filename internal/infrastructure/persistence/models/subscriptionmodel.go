package models

import (
	"time"

	"studyhall/internal/domain/entitlement"
)

// SubscriptionModel is the gorm model for subscriptions. At most one row
// exists per user, enforced by the unique index on UserID.
type SubscriptionModel struct {
	ID          uint       `gorm:"primaryKey"`
	UserID      uint       `gorm:"uniqueIndex;not null"`
	Tier        string     `gorm:"size:20;not null"`
	Status      string     `gorm:"size:20;not null;index"`
	ActivatedAt time.Time  `gorm:"not null"`
	ExpiresAt   *time.Time `gorm:"index"`
	CreatedAt   time.Time  `gorm:"not null"`
	UpdatedAt   time.Time  `gorm:"not null"`
}

func (SubscriptionModel) TableName() string {
	return "subscriptions"
}

// NewSubscriptionModelFromDomain converts a domain subscription to its gorm model.
func NewSubscriptionModelFromDomain(s *entitlement.Subscription) *SubscriptionModel {
	return &SubscriptionModel{
		ID:          s.ID(),
		UserID:      s.UserID(),
		Tier:        string(s.Tier()),
		Status:      string(s.Status()),
		ActivatedAt: s.ActivatedAt(),
		ExpiresAt:   s.ExpiresAt(),
		CreatedAt:   s.CreatedAt(),
		UpdatedAt:   s.UpdatedAt(),
	}
}

// ToDomain converts the gorm model to a domain subscription.
func (m *SubscriptionModel) ToDomain() (*entitlement.Subscription, error) {
	return entitlement.ReconstructSubscription(
		m.ID,
		m.UserID,
		entitlement.PlanTier(m.Tier),
		entitlement.SubscriptionStatus(m.Status),
		m.ActivatedAt,
		m.ExpiresAt,
		m.CreatedAt,
		m.UpdatedAt,
	)
}
