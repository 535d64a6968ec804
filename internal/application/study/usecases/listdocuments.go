package usecases

import (
	"context"
	"time"

	"studyhall/internal/domain/study"
	"studyhall/internal/shared/errors"
	"studyhall/internal/shared/logger"
)

type ListDocumentsCommand struct {
	UserID   uint
	Page     int
	PageSize int
}

type DocumentSummary struct {
	ID        uint                 `json:"id"`
	Title     string               `json:"title"`
	Kind      study.DocumentKind   `json:"kind"`
	Status    study.DocumentStatus `json:"status"`
	CreatedAt time.Time            `json:"created_at"`
}

type ListDocumentsResult struct {
	Documents []DocumentSummary `json:"documents"`
	Total     int64             `json:"total"`
	Page      int               `json:"page"`
	PageSize  int               `json:"page_size"`
}

// ListDocumentsUseCase lists a user's uploaded documents, newest first.
type ListDocumentsUseCase struct {
	docRepo study.DocumentRepository
	logger  logger.Interface
}

func NewListDocumentsUseCase(docRepo study.DocumentRepository, logger logger.Interface) *ListDocumentsUseCase {
	return &ListDocumentsUseCase{docRepo: docRepo, logger: logger}
}

func (uc *ListDocumentsUseCase) Execute(ctx context.Context, cmd ListDocumentsCommand) (*ListDocumentsResult, error) {
	if cmd.UserID == 0 {
		return nil, errors.NewValidationError("user ID is required")
	}
	if cmd.Page < 1 {
		cmd.Page = 1
	}
	if cmd.PageSize < 1 || cmd.PageSize > 100 {
		cmd.PageSize = 20
	}

	docs, total, err := uc.docRepo.ListByUser(ctx, cmd.UserID, cmd.Page, cmd.PageSize)
	if err != nil {
		uc.logger.Errorw("failed to list documents", "user_id", cmd.UserID, "error", err)
		return nil, errors.NewInternalError("failed to list documents")
	}

	summaries := make([]DocumentSummary, 0, len(docs))
	for _, d := range docs {
		summaries = append(summaries, DocumentSummary{
			ID:        d.ID(),
			Title:     d.Title(),
			Kind:      d.Kind(),
			Status:    d.Status(),
			CreatedAt: d.CreatedAt(),
		})
	}

	return &ListDocumentsResult{
		Documents: summaries,
		Total:     total,
		Page:      cmd.Page,
		PageSize:  cmd.PageSize,
	}, nil
}
