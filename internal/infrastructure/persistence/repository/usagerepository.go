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

// UsageRepository is the gorm implementation of entitlement.UsageRepository.
type UsageRepository struct {
	db *gorm.DB
}

func NewUsageRepository(db *gorm.DB) *UsageRepository {
	return &UsageRepository{db: db}
}

func (r *UsageRepository) GetForPeriod(ctx context.Context, userID uint, periodStart time.Time) (*entitlement.Usage, error) {
	var model models.UsageModel
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND period_start = ?", userID, periodStart).
		First(&model).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get usage: %w", err)
	}
	return model.ToDomain()
}

// Increment adds one to the counter inside the store via an upsert on the
// (user_id, period_start) unique key. The column arithmetic runs in the
// database, so concurrent increments serialize there and none are lost; the
// insert path doubles as the period rollover, creating the fresh zeroed row.
func (r *UsageRepository) Increment(ctx context.Context, userID uint, periodStart time.Time, kind entitlement.ResourceKind) error {
	column := models.CounterColumn(kind)
	if column == "" {
		return fmt.Errorf("unknown resource kind: %s", kind)
	}

	now := time.Now().UTC()
	model := models.UsageModel{
		UserID:      userID,
		PeriodStart: periodStart,
		UpdatedAt:   now,
	}
	switch kind {
	case entitlement.ResourceDocuments:
		model.Documents = 1
	case entitlement.ResourceQuizzes:
		model.Quizzes = 1
	case entitlement.ResourceFlashcards:
		model.Flashcards = 1
	case entitlement.ResourceSummaries:
		model.Summaries = 1
	case entitlement.ResourceMindMaps:
		model.MindMaps = 1
	}

	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}, {Name: "period_start"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			column:       gorm.Expr(column+" + ?", 1),
			"updated_at": now,
		}),
	}).Create(&model).Error
	if err != nil {
		return fmt.Errorf("failed to increment usage: %w", err)
	}
	return nil
}
