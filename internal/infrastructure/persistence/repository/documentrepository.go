package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"studyhall/internal/domain/study"
	"studyhall/internal/infrastructure/persistence/models"
)

// DocumentRepository is the gorm implementation of study.DocumentRepository.
type DocumentRepository struct {
	db *gorm.DB
}

func NewDocumentRepository(db *gorm.DB) *DocumentRepository {
	return &DocumentRepository{db: db}
}

func (r *DocumentRepository) Save(ctx context.Context, d *study.Document) error {
	model := models.NewDocumentModelFromDomain(d)
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create document: %w", err)
	}
	return d.SetID(model.ID)
}

func (r *DocumentRepository) Update(ctx context.Context, d *study.Document) error {
	model := models.NewDocumentModelFromDomain(d)
	result := r.db.WithContext(ctx).Model(&models.DocumentModel{}).
		Where("id = ?", d.ID()).
		Updates(map[string]interface{}{
			"status":         model.Status,
			"extracted_text": model.ExtractedText,
			"updated_at":     model.UpdatedAt,
		})
	if result.Error != nil {
		return fmt.Errorf("failed to update document: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("document %d not found", d.ID())
	}
	return nil
}

func (r *DocumentRepository) GetByID(ctx context.Context, id uint) (*study.Document, error) {
	var model models.DocumentModel
	err := r.db.WithContext(ctx).First(&model, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get document: %w", err)
	}
	return model.ToDomain()
}

func (r *DocumentRepository) ListByUser(ctx context.Context, userID uint, page, pageSize int) ([]*study.Document, int64, error) {
	query := r.db.WithContext(ctx).Model(&models.DocumentModel{}).Where("user_id = ?", userID)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count documents: %w", err)
	}

	var rows []models.DocumentModel
	err := query.
		Order("created_at DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&rows).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list documents: %w", err)
	}

	docs := make([]*study.Document, 0, len(rows))
	for i := range rows {
		d, err := rows[i].ToDomain()
		if err != nil {
			return nil, 0, fmt.Errorf("failed to reconstruct document %d: %w", rows[i].ID, err)
		}
		docs = append(docs, d)
	}
	return docs, total, nil
}
