package models

import (
	"encoding/json"
	"time"

	"gorm.io/datatypes"

	"studyhall/internal/domain/study"
)

// ArtifactModel is the gorm model for generated study artifacts. Content is
// the parsed model output as a JSON column.
type ArtifactModel struct {
	ID         uint           `gorm:"primaryKey"`
	UserID     uint           `gorm:"not null;index"`
	DocumentID uint           `gorm:"not null;index"`
	Kind       string         `gorm:"size:20;not null;index"`
	Title      string         `gorm:"size:220;not null"`
	Content    datatypes.JSON `gorm:"not null"`
	HTML       string         `gorm:"type:longtext"`
	CreatedAt  time.Time      `gorm:"not null"`
}

func (ArtifactModel) TableName() string {
	return "artifacts"
}

// NewArtifactModelFromDomain converts a domain artifact to its gorm model.
func NewArtifactModelFromDomain(a *study.Artifact) *ArtifactModel {
	return &ArtifactModel{
		ID:         a.ID(),
		UserID:     a.UserID(),
		DocumentID: a.DocumentID(),
		Kind:       string(a.Kind()),
		Title:      a.Title(),
		Content:    datatypes.JSON(a.Content()),
		HTML:       a.HTML(),
		CreatedAt:  a.CreatedAt(),
	}
}

// ToDomain converts the gorm model to a domain artifact.
func (m *ArtifactModel) ToDomain() (*study.Artifact, error) {
	return study.ReconstructArtifact(
		m.ID,
		m.UserID,
		m.DocumentID,
		study.ArtifactKind(m.Kind),
		m.Title,
		json.RawMessage(m.Content),
		m.HTML,
		m.CreatedAt,
	)
}
