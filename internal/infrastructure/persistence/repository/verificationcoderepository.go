package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"studyhall/internal/domain/verification"
	"studyhall/internal/infrastructure/persistence/models"
)

// VerificationCodeRepository is the gorm implementation of
// verification.Repository.
type VerificationCodeRepository struct {
	db *gorm.DB
}

func NewVerificationCodeRepository(db *gorm.DB) *VerificationCodeRepository {
	return &VerificationCodeRepository{db: db}
}

func (r *VerificationCodeRepository) Create(ctx context.Context, c *verification.Code) error {
	model := models.NewVerificationCodeModelFromDomain(c)
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create verification code: %w", err)
	}
	return c.SetID(model.ID)
}

func (r *VerificationCodeRepository) DeleteByEmail(ctx context.Context, email string) error {
	err := r.db.WithContext(ctx).
		Where("email = ?", email).
		Delete(&models.VerificationCodeModel{}).Error
	if err != nil {
		return fmt.Errorf("failed to delete codes for email: %w", err)
	}
	return nil
}

func (r *VerificationCodeRepository) DeleteExpired(ctx context.Context, before time.Time) error {
	err := r.db.WithContext(ctx).
		Where("expires_at < ?", before).
		Delete(&models.VerificationCodeModel{}).Error
	if err != nil {
		return fmt.Errorf("failed to delete expired codes: %w", err)
	}
	return nil
}

// ConsumeMatching finds a code row matching (email, value) and deletes it in
// the same transaction, with the row locked between the read and the delete.
// Two concurrent verifications of the same code therefore cannot both
// succeed: the loser sees no row and gets (nil, nil).
func (r *VerificationCodeRepository) ConsumeMatching(ctx context.Context, email, value string) (*verification.Code, error) {
	var consumed *verification.Code

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var model models.VerificationCodeModel
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("email = ? AND code = ?", email, value).
			First(&model).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("failed to find verification code: %w", err)
		}

		if err := tx.Delete(&models.VerificationCodeModel{}, model.ID).Error; err != nil {
			return fmt.Errorf("failed to consume verification code: %w", err)
		}

		consumed, err = model.ToDomain()
		return err
	})
	if err != nil {
		return nil, err
	}
	return consumed, nil
}
