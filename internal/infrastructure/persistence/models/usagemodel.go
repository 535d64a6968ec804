package models

import (
	"time"

	"studyhall/internal/domain/entitlement"
)

// UsageModel is the gorm model for per-period usage counters. One row per
// (user, period start); the unique composite index is what makes the
// upsert-increment atomic.
type UsageModel struct {
	ID          uint      `gorm:"primaryKey"`
	UserID      uint      `gorm:"not null;uniqueIndex:idx_user_period"`
	PeriodStart time.Time `gorm:"not null;uniqueIndex:idx_user_period"`
	Documents   int       `gorm:"not null;default:0"`
	Quizzes     int       `gorm:"not null;default:0"`
	Flashcards  int       `gorm:"not null;default:0"`
	Summaries   int       `gorm:"not null;default:0"`
	MindMaps    int       `gorm:"not null;default:0"`
	UpdatedAt   time.Time `gorm:"not null"`
}

func (UsageModel) TableName() string {
	return "usage_counters"
}

// CounterColumn maps a resource kind to its column name.
func CounterColumn(kind entitlement.ResourceKind) string {
	switch kind {
	case entitlement.ResourceDocuments:
		return "documents"
	case entitlement.ResourceQuizzes:
		return "quizzes"
	case entitlement.ResourceFlashcards:
		return "flashcards"
	case entitlement.ResourceSummaries:
		return "summaries"
	case entitlement.ResourceMindMaps:
		return "mind_maps"
	}
	return ""
}

// ToDomain converts the gorm model to a domain usage aggregate.
func (m *UsageModel) ToDomain() (*entitlement.Usage, error) {
	return entitlement.ReconstructUsage(
		m.ID,
		m.UserID,
		m.PeriodStart,
		m.Documents,
		m.Quizzes,
		m.Flashcards,
		m.Summaries,
		m.MindMaps,
		m.UpdatedAt,
	)
}
