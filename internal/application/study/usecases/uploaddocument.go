package usecases

import (
	"bytes"
	"context"
	"fmt"
	"path"

	"github.com/google/uuid"

	"studyhall/internal/domain/entitlement"
	"studyhall/internal/domain/study"
	"studyhall/internal/shared/errors"
	"studyhall/internal/shared/logger"
)

// MaxDocumentSize caps uploads at 25 MiB.
const MaxDocumentSize = 25 << 20

type UploadDocumentCommand struct {
	UserID      uint
	Title       string
	Kind        study.DocumentKind
	ContentType string
	Content     []byte
}

type UploadDocumentResult struct {
	DocumentID uint                 `json:"document_id"`
	Title      string               `json:"title"`
	Kind       study.DocumentKind   `json:"kind"`
	Status     study.DocumentStatus `json:"status"`
}

// UploadDocumentUseCase stores an uploaded file, extracts its text, and
// meters the upload against the documents quota. The quota is checked before
// any work and recorded only after the document row exists; a failed
// extraction still consumes the slot because the document is kept for retry.
type UploadDocumentUseCase struct {
	docRepo   study.DocumentRepository
	storage   ObjectStorage
	extractor TextExtractor
	limits    LimitChecker
	recorder  UsageRecorder
	logger    logger.Interface
}

func NewUploadDocumentUseCase(
	docRepo study.DocumentRepository,
	storage ObjectStorage,
	extractor TextExtractor,
	limits LimitChecker,
	recorder UsageRecorder,
	logger logger.Interface,
) *UploadDocumentUseCase {
	return &UploadDocumentUseCase{
		docRepo:   docRepo,
		storage:   storage,
		extractor: extractor,
		limits:    limits,
		recorder:  recorder,
		logger:    logger,
	}
}

func (uc *UploadDocumentUseCase) Execute(ctx context.Context, cmd UploadDocumentCommand) (*UploadDocumentResult, error) {
	if cmd.UserID == 0 {
		return nil, errors.NewValidationError("user ID is required")
	}
	if !cmd.Kind.IsValid() {
		return nil, errors.NewValidationError(fmt.Sprintf("invalid document kind: %s", cmd.Kind))
	}
	if len(cmd.Content) == 0 {
		return nil, errors.NewValidationError("file content is empty")
	}
	if len(cmd.Content) > MaxDocumentSize {
		return nil, errors.NewValidationError("file exceeds the 25 MiB upload limit")
	}

	decision, err := uc.limits.Check(ctx, cmd.UserID, entitlement.ResourceDocuments)
	if err != nil {
		return nil, err
	}
	if !decision.Allowed {
		return nil, errors.NewQuotaExceededError(decision.Message)
	}

	key := storageKey(cmd.UserID, cmd.Kind)
	if err := uc.storage.Upload(ctx, key, cmd.ContentType, bytes.NewReader(cmd.Content)); err != nil {
		uc.logger.Errorw("failed to upload document file", "user_id", cmd.UserID, "key", key, "error", err)
		return nil, errors.NewInternalError("failed to store document")
	}

	doc, err := study.NewDocument(cmd.UserID, cmd.Title, cmd.Kind, key)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	text, err := uc.extractor.Extract(ctx, cmd.Kind, cmd.Content)
	if err != nil {
		uc.logger.Errorw("text extraction failed", "user_id", cmd.UserID, "key", key, "error", err)
		doc.MarkFailed()
	} else if err := doc.MarkReady(text); err != nil {
		uc.logger.Warnw("extraction returned no text", "user_id", cmd.UserID, "key", key)
		doc.MarkFailed()
	}

	if err := uc.docRepo.Save(ctx, doc); err != nil {
		uc.logger.Errorw("failed to save document", "user_id", cmd.UserID, "error", err)
		return nil, errors.NewInternalError("failed to store document")
	}

	if err := uc.recorder.Record(ctx, cmd.UserID, entitlement.ResourceDocuments); err != nil {
		// The document exists; an unrecorded unit is logged inside Record.
		return nil, err
	}

	uc.logger.Infow("document uploaded",
		"user_id", cmd.UserID,
		"document_id", doc.ID(),
		"kind", doc.Kind(),
		"status", doc.Status(),
	)

	return &UploadDocumentResult{
		DocumentID: doc.ID(),
		Title:      doc.Title(),
		Kind:       doc.Kind(),
		Status:     doc.Status(),
	}, nil
}

func storageKey(userID uint, kind study.DocumentKind) string {
	ext := map[study.DocumentKind]string{
		study.DocumentPDF:   ".pdf",
		study.DocumentImage: ".png",
		study.DocumentAudio: ".mp3",
	}[kind]
	return path.Join("documents", fmt.Sprintf("%d", userID), uuid.NewString()+ext)
}
