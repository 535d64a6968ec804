package models

import (
	"time"

	"studyhall/internal/domain/verification"
)

// VerificationCodeModel is the gorm model for one-time verification codes.
type VerificationCodeModel struct {
	ID        uint      `gorm:"primaryKey"`
	Email     string    `gorm:"size:254;not null;index"`
	Code      string    `gorm:"size:6;not null"`
	ExpiresAt time.Time `gorm:"not null;index"`
	CreatedAt time.Time `gorm:"not null"`
}

func (VerificationCodeModel) TableName() string {
	return "verification_codes"
}

// NewVerificationCodeModelFromDomain converts a domain code to its gorm model.
func NewVerificationCodeModelFromDomain(c *verification.Code) *VerificationCodeModel {
	return &VerificationCodeModel{
		ID:        c.ID(),
		Email:     c.Email(),
		Code:      c.Value(),
		ExpiresAt: c.ExpiresAt(),
		CreatedAt: c.CreatedAt(),
	}
}

// ToDomain converts the gorm model to a domain code.
func (m *VerificationCodeModel) ToDomain() (*verification.Code, error) {
	return verification.ReconstructCode(
		m.ID,
		m.Email,
		m.Code,
		m.ExpiresAt,
		m.CreatedAt,
	)
}
