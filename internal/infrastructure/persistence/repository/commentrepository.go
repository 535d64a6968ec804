package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"studyhall/internal/domain/ticket"
	"studyhall/internal/infrastructure/persistence/models"
)

// CommentRepository is the gorm implementation of ticket.CommentRepository.
type CommentRepository struct {
	db *gorm.DB
}

func NewCommentRepository(db *gorm.DB) *CommentRepository {
	return &CommentRepository{db: db}
}

func (r *CommentRepository) Save(ctx context.Context, c *ticket.Comment) error {
	model := models.NewCommentModelFromDomain(c)
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create comment: %w", err)
	}
	return c.SetID(model.ID)
}

func (r *CommentRepository) GetByTicketID(ctx context.Context, ticketID uint) ([]*ticket.Comment, error) {
	var rows []models.CommentModel
	err := r.db.WithContext(ctx).
		Where("ticket_id = ?", ticketID).
		Order("created_at ASC").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list comments: %w", err)
	}

	comments := make([]*ticket.Comment, 0, len(rows))
	for i := range rows {
		c, err := rows[i].ToDomain()
		if err != nil {
			return nil, fmt.Errorf("failed to reconstruct comment %d: %w", rows[i].ID, err)
		}
		comments = append(comments, c)
	}
	return comments, nil
}
