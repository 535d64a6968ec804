package models

import (
	"time"

	"studyhall/internal/domain/user"
)

// UserModel is the gorm model for users.
type UserModel struct {
	ID           uint      `gorm:"primaryKey"`
	Email        string    `gorm:"size:254;uniqueIndex;not null"`
	Name         string    `gorm:"size:100;not null"`
	PasswordHash string    `gorm:"size:255;not null"`
	Role         string    `gorm:"size:20;not null;default:user"`
	CreatedAt    time.Time `gorm:"not null"`
	UpdatedAt    time.Time `gorm:"not null"`
}

func (UserModel) TableName() string {
	return "users"
}

// NewUserModelFromDomain converts a domain user to its gorm model.
func NewUserModelFromDomain(u *user.User) *UserModel {
	return &UserModel{
		ID:           u.ID(),
		Email:        u.Email(),
		Name:         u.Name(),
		PasswordHash: u.PasswordHash(),
		Role:         string(u.Role()),
		CreatedAt:    u.CreatedAt(),
		UpdatedAt:    u.UpdatedAt(),
	}
}

// ToDomain converts the gorm model to a domain user.
func (m *UserModel) ToDomain() (*user.User, error) {
	return user.ReconstructUser(
		m.ID,
		m.Email,
		m.Name,
		m.PasswordHash,
		user.Role(m.Role),
		m.CreatedAt,
		m.UpdatedAt,
	)
}
