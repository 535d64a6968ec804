package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"studyhall/internal/domain/entitlement"
	"studyhall/internal/infrastructure/persistence/models"
)

// SubscriptionRepository is the gorm implementation of
// entitlement.SubscriptionRepository.
type SubscriptionRepository struct {
	db *gorm.DB
}

func NewSubscriptionRepository(db *gorm.DB) *SubscriptionRepository {
	return &SubscriptionRepository{db: db}
}

func (r *SubscriptionRepository) GetByUserID(ctx context.Context, userID uint) (*entitlement.Subscription, error) {
	var model models.SubscriptionModel
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&model).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get subscription: %w", err)
	}
	return model.ToDomain()
}

// Save upserts on user_id, so a replacement subscription (e.g. re-subscribing
// after cancellation) overwrites the old row and the one-row-per-user
// invariant holds.
func (r *SubscriptionRepository) Save(ctx context.Context, sub *entitlement.Subscription) error {
	model := models.NewSubscriptionModelFromDomain(sub)
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"tier", "status", "activated_at", "expires_at", "updated_at",
		}),
	}).Create(model).Error
	if err != nil {
		return fmt.Errorf("failed to save subscription: %w", err)
	}
	if sub.ID() == 0 && model.ID != 0 {
		return sub.SetID(model.ID)
	}
	return nil
}

func (r *SubscriptionRepository) Update(ctx context.Context, sub *entitlement.Subscription) error {
	model := models.NewSubscriptionModelFromDomain(sub)
	result := r.db.WithContext(ctx).Model(&models.SubscriptionModel{}).
		Where("id = ?", sub.ID()).
		Updates(map[string]interface{}{
			"tier":         model.Tier,
			"status":       model.Status,
			"activated_at": model.ActivatedAt,
			"expires_at":   model.ExpiresAt,
			"updated_at":   model.UpdatedAt,
		})
	if result.Error != nil {
		return fmt.Errorf("failed to update subscription: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("subscription %d not found", sub.ID())
	}
	return nil
}

func (r *SubscriptionRepository) ListLapsedActive(ctx context.Context, before time.Time) ([]*entitlement.Subscription, error) {
	var rows []models.SubscriptionModel
	err := r.db.WithContext(ctx).
		Where("status = ?", string(entitlement.StatusActive)).
		Where("expires_at IS NOT NULL AND expires_at < ?", before).
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list lapsed subscriptions: %w", err)
	}

	subs := make([]*entitlement.Subscription, 0, len(rows))
	for i := range rows {
		sub, err := rows[i].ToDomain()
		if err != nil {
			return nil, fmt.Errorf("failed to reconstruct subscription %d: %w", rows[i].ID, err)
		}
		subs = append(subs, sub)
	}
	return subs, nil
}
