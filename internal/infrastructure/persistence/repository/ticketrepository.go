package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"studyhall/internal/domain/ticket"
	"studyhall/internal/infrastructure/persistence/models"
)

// TicketRepository is the gorm implementation of ticket.Repository.
type TicketRepository struct {
	db *gorm.DB
}

func NewTicketRepository(db *gorm.DB) *TicketRepository {
	return &TicketRepository{db: db}
}

// Save inserts the ticket and assigns its display number from the row ID in
// the same transaction.
func (r *TicketRepository) Save(ctx context.Context, t *ticket.Ticket) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		model := models.NewTicketModelFromDomain(t)
		if err := tx.Create(model).Error; err != nil {
			return fmt.Errorf("failed to create ticket: %w", err)
		}

		number := fmt.Sprintf("TK-%06d", model.ID)
		if err := tx.Model(&models.TicketModel{}).
			Where("id = ?", model.ID).
			Update("number", number).Error; err != nil {
			return fmt.Errorf("failed to assign ticket number: %w", err)
		}

		if err := t.SetID(model.ID); err != nil {
			return err
		}
		return t.SetNumber(number)
	})
}

func (r *TicketRepository) Update(ctx context.Context, t *ticket.Ticket) error {
	model := models.NewTicketModelFromDomain(t)
	result := r.db.WithContext(ctx).Model(&models.TicketModel{}).
		Where("id = ?", t.ID()).
		Updates(map[string]interface{}{
			"status":     model.Status,
			"updated_at": model.UpdatedAt,
		})
	if result.Error != nil {
		return fmt.Errorf("failed to update ticket: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("ticket %d not found", t.ID())
	}
	return nil
}

func (r *TicketRepository) GetByID(ctx context.Context, id uint) (*ticket.Ticket, error) {
	var model models.TicketModel
	err := r.db.WithContext(ctx).First(&model, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get ticket: %w", err)
	}
	return model.ToDomain()
}

func (r *TicketRepository) List(ctx context.Context, filter ticket.Filter) ([]*ticket.Ticket, int64, error) {
	return r.list(ctx, r.db.WithContext(ctx).Model(&models.TicketModel{}), filter)
}

func (r *TicketRepository) GetUserTickets(ctx context.Context, userID uint, filter ticket.Filter) ([]*ticket.Ticket, int64, error) {
	query := r.db.WithContext(ctx).Model(&models.TicketModel{}).Where("creator_id = ?", userID)
	return r.list(ctx, query, filter)
}

func (r *TicketRepository) list(ctx context.Context, query *gorm.DB, filter ticket.Filter) ([]*ticket.Ticket, int64, error) {
	if filter.Status != nil {
		query = query.Where("status = ?", string(*filter.Status))
	}
	if filter.Category != nil {
		query = query.Where("category = ?", string(*filter.Category))
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count tickets: %w", err)
	}

	var rows []models.TicketModel
	err := query.
		Order("created_at DESC").
		Offset((filter.Page - 1) * filter.PageSize).
		Limit(filter.PageSize).
		Find(&rows).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list tickets: %w", err)
	}

	tickets := make([]*ticket.Ticket, 0, len(rows))
	for i := range rows {
		t, err := rows[i].ToDomain()
		if err != nil {
			return nil, 0, fmt.Errorf("failed to reconstruct ticket %d: %w", rows[i].ID, err)
		}
		tickets = append(tickets, t)
	}
	return tickets, total, nil
}
