package models

import (
	"time"

	"studyhall/internal/domain/study"
)

// DocumentModel is the gorm model for uploaded documents.
type DocumentModel struct {
	ID            uint      `gorm:"primaryKey"`
	UserID        uint      `gorm:"not null;index"`
	Title         string    `gorm:"size:200;not null"`
	Kind          string    `gorm:"size:20;not null"`
	StorageKey    string    `gorm:"size:255;not null"`
	Status        string    `gorm:"size:20;not null;index"`
	ExtractedText string    `gorm:"type:longtext"`
	CreatedAt     time.Time `gorm:"not null"`
	UpdatedAt     time.Time `gorm:"not null"`
}

func (DocumentModel) TableName() string {
	return "documents"
}

// NewDocumentModelFromDomain converts a domain document to its gorm model.
func NewDocumentModelFromDomain(d *study.Document) *DocumentModel {
	return &DocumentModel{
		ID:            d.ID(),
		UserID:        d.UserID(),
		Title:         d.Title(),
		Kind:          string(d.Kind()),
		StorageKey:    d.StorageKey(),
		Status:        string(d.Status()),
		ExtractedText: d.ExtractedText(),
		CreatedAt:     d.CreatedAt(),
		UpdatedAt:     d.UpdatedAt(),
	}
}

// ToDomain converts the gorm model to a domain document.
func (m *DocumentModel) ToDomain() (*study.Document, error) {
	return study.ReconstructDocument(
		m.ID,
		m.UserID,
		m.Title,
		study.DocumentKind(m.Kind),
		m.StorageKey,
		study.DocumentStatus(m.Status),
		m.ExtractedText,
		m.CreatedAt,
		m.UpdatedAt,
	)
}
