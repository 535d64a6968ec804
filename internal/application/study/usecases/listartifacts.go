package usecases

import (
	"context"
	"fmt"
	"time"

	"studyhall/internal/domain/study"
	"studyhall/internal/shared/errors"
	"studyhall/internal/shared/logger"
)

type ListArtifactsCommand struct {
	UserID   uint
	Kind     string
	Page     int
	PageSize int
}

type ArtifactSummary struct {
	ID         uint               `json:"id"`
	DocumentID uint               `json:"document_id"`
	Kind       study.ArtifactKind `json:"kind"`
	Title      string             `json:"title"`
	CreatedAt  time.Time          `json:"created_at"`
}

type ListArtifactsResult struct {
	Artifacts []ArtifactSummary `json:"artifacts"`
	Total     int64             `json:"total"`
	Page      int               `json:"page"`
	PageSize  int               `json:"page_size"`
}

// ListArtifactsUseCase lists a user's generated artifacts, optionally
// filtered by kind, newest first.
type ListArtifactsUseCase struct {
	artifactRepo study.ArtifactRepository
	logger       logger.Interface
}

func NewListArtifactsUseCase(artifactRepo study.ArtifactRepository, logger logger.Interface) *ListArtifactsUseCase {
	return &ListArtifactsUseCase{artifactRepo: artifactRepo, logger: logger}
}

func (uc *ListArtifactsUseCase) Execute(ctx context.Context, cmd ListArtifactsCommand) (*ListArtifactsResult, error) {
	if cmd.UserID == 0 {
		return nil, errors.NewValidationError("user ID is required")
	}

	var kind *study.ArtifactKind
	if cmd.Kind != "" {
		k := study.ArtifactKind(cmd.Kind)
		if !k.IsValid() {
			return nil, errors.NewValidationError(fmt.Sprintf("invalid artifact kind: %s", cmd.Kind))
		}
		kind = &k
	}

	if cmd.Page < 1 {
		cmd.Page = 1
	}
	if cmd.PageSize < 1 || cmd.PageSize > 100 {
		cmd.PageSize = 20
	}

	artifacts, total, err := uc.artifactRepo.ListByUser(ctx, cmd.UserID, kind, cmd.Page, cmd.PageSize)
	if err != nil {
		uc.logger.Errorw("failed to list artifacts", "user_id", cmd.UserID, "error", err)
		return nil, errors.NewInternalError("failed to list artifacts")
	}

	summaries := make([]ArtifactSummary, 0, len(artifacts))
	for _, a := range artifacts {
		summaries = append(summaries, ArtifactSummary{
			ID:         a.ID(),
			DocumentID: a.DocumentID(),
			Kind:       a.Kind(),
			Title:      a.Title(),
			CreatedAt:  a.CreatedAt(),
		})
	}

	return &ListArtifactsResult{
		Artifacts: summaries,
		Total:     total,
		Page:      cmd.Page,
		PageSize:  cmd.PageSize,
	}, nil
}
