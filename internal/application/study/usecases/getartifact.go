package usecases

import (
	"context"

	"studyhall/internal/domain/study"
	"studyhall/internal/shared/errors"
	"studyhall/internal/shared/logger"
)

type GetArtifactCommand struct {
	UserID     uint
	ArtifactID uint
}

// GetArtifactUseCase fetches a single artifact with its full content.
type GetArtifactUseCase struct {
	artifactRepo study.ArtifactRepository
	logger       logger.Interface
}

func NewGetArtifactUseCase(artifactRepo study.ArtifactRepository, logger logger.Interface) *GetArtifactUseCase {
	return &GetArtifactUseCase{artifactRepo: artifactRepo, logger: logger}
}

func (uc *GetArtifactUseCase) Execute(ctx context.Context, cmd GetArtifactCommand) (*GenerateArtifactResult, error) {
	if cmd.UserID == 0 {
		return nil, errors.NewValidationError("user ID is required")
	}
	if cmd.ArtifactID == 0 {
		return nil, errors.NewValidationError("artifact ID is required")
	}

	a, err := uc.artifactRepo.GetByID(ctx, cmd.ArtifactID)
	if err != nil {
		uc.logger.Errorw("failed to load artifact", "artifact_id", cmd.ArtifactID, "error", err)
		return nil, errors.NewInternalError("failed to load artifact")
	}
	if a == nil || a.UserID() != cmd.UserID {
		return nil, errors.NewNotFoundError("artifact not found")
	}

	return &GenerateArtifactResult{
		ArtifactID: a.ID(),
		DocumentID: a.DocumentID(),
		Kind:       a.Kind(),
		Title:      a.Title(),
		Content:    a.Content(),
		HTML:       a.HTML(),
	}, nil
}
