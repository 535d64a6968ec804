package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"studyhall/internal/domain/study"
	"studyhall/internal/infrastructure/persistence/models"
)

// ArtifactRepository is the gorm implementation of study.ArtifactRepository.
type ArtifactRepository struct {
	db *gorm.DB
}

func NewArtifactRepository(db *gorm.DB) *ArtifactRepository {
	return &ArtifactRepository{db: db}
}

func (r *ArtifactRepository) Save(ctx context.Context, a *study.Artifact) error {
	model := models.NewArtifactModelFromDomain(a)
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create artifact: %w", err)
	}
	return a.SetID(model.ID)
}

func (r *ArtifactRepository) GetByID(ctx context.Context, id uint) (*study.Artifact, error) {
	var model models.ArtifactModel
	err := r.db.WithContext(ctx).First(&model, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get artifact: %w", err)
	}
	return model.ToDomain()
}

func (r *ArtifactRepository) ListByUser(ctx context.Context, userID uint, kind *study.ArtifactKind, page, pageSize int) ([]*study.Artifact, int64, error) {
	query := r.db.WithContext(ctx).Model(&models.ArtifactModel{}).Where("user_id = ?", userID)
	if kind != nil {
		query = query.Where("kind = ?", string(*kind))
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count artifacts: %w", err)
	}

	var rows []models.ArtifactModel
	err := query.
		Order("created_at DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&rows).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list artifacts: %w", err)
	}

	artifacts := make([]*study.Artifact, 0, len(rows))
	for i := range rows {
		a, err := rows[i].ToDomain()
		if err != nil {
			return nil, 0, fmt.Errorf("failed to reconstruct artifact %d: %w", rows[i].ID, err)
		}
		artifacts = append(artifacts, a)
	}
	return artifacts, total, nil
}
