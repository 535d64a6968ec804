package usecases

import (
	"context"
	"io"
	"log/slog"
	"time"

	"studyhall/internal/domain/entitlement"
	"studyhall/internal/domain/study"
	"studyhall/internal/shared/logger"
)

func testLogger() logger.Interface {
	return logger.NewLoggerWithSlog(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

type mockDocumentRepository struct {
	saveFn       func(ctx context.Context, d *study.Document) error
	updateFn     func(ctx context.Context, d *study.Document) error
	getByIDFn    func(ctx context.Context, id uint) (*study.Document, error)
	listByUserFn func(ctx context.Context, userID uint, page, pageSize int) ([]*study.Document, int64, error)
}

func (m *mockDocumentRepository) Save(ctx context.Context, d *study.Document) error {
	if m.saveFn != nil {
		return m.saveFn(ctx, d)
	}
	return d.SetID(1)
}

func (m *mockDocumentRepository) Update(ctx context.Context, d *study.Document) error {
	if m.updateFn != nil {
		return m.updateFn(ctx, d)
	}
	return nil
}

func (m *mockDocumentRepository) GetByID(ctx context.Context, id uint) (*study.Document, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, id)
	}
	return nil, nil
}

func (m *mockDocumentRepository) ListByUser(ctx context.Context, userID uint, page, pageSize int) ([]*study.Document, int64, error) {
	if m.listByUserFn != nil {
		return m.listByUserFn(ctx, userID, page, pageSize)
	}
	return nil, 0, nil
}

type mockArtifactRepository struct {
	saveFn       func(ctx context.Context, a *study.Artifact) error
	getByIDFn    func(ctx context.Context, id uint) (*study.Artifact, error)
	listByUserFn func(ctx context.Context, userID uint, kind *study.ArtifactKind, page, pageSize int) ([]*study.Artifact, int64, error)
}

func (m *mockArtifactRepository) Save(ctx context.Context, a *study.Artifact) error {
	if m.saveFn != nil {
		return m.saveFn(ctx, a)
	}
	return a.SetID(1)
}

func (m *mockArtifactRepository) GetByID(ctx context.Context, id uint) (*study.Artifact, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, id)
	}
	return nil, nil
}

func (m *mockArtifactRepository) ListByUser(ctx context.Context, userID uint, kind *study.ArtifactKind, page, pageSize int) ([]*study.Artifact, int64, error) {
	if m.listByUserFn != nil {
		return m.listByUserFn(ctx, userID, kind, page, pageSize)
	}
	return nil, 0, nil
}

type mockLLMClient struct {
	completeFn func(ctx context.Context, systemPrompt, userPrompt string) (string, error)
}

func (m *mockLLMClient) Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	if m.completeFn != nil {
		return m.completeFn(ctx, systemPrompt, userPrompt)
	}
	return `{"ok":true}`, nil
}

type mockObjectStorage struct {
	uploadFn func(ctx context.Context, key, contentType string, body io.Reader) error
	deleteFn func(ctx context.Context, key string) error
}

func (m *mockObjectStorage) Upload(ctx context.Context, key, contentType string, body io.Reader) error {
	if m.uploadFn != nil {
		return m.uploadFn(ctx, key, contentType, body)
	}
	return nil
}

func (m *mockObjectStorage) Delete(ctx context.Context, key string) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, key)
	}
	return nil
}

type mockTextExtractor struct {
	extractFn func(ctx context.Context, kind study.DocumentKind, content []byte) (string, error)
}

func (m *mockTextExtractor) Extract(ctx context.Context, kind study.DocumentKind, content []byte) (string, error) {
	if m.extractFn != nil {
		return m.extractFn(ctx, kind, content)
	}
	return "extracted text", nil
}

type mockMarkdownRenderer struct {
	renderFn func(markdown string) (string, error)
}

func (m *mockMarkdownRenderer) RenderHTML(markdown string) (string, error) {
	if m.renderFn != nil {
		return m.renderFn(markdown)
	}
	return "<p>" + markdown + "</p>", nil
}

type mockLimitChecker struct {
	checkFn func(ctx context.Context, userID uint, kind entitlement.ResourceKind) (*entitlement.Decision, error)
}

func (m *mockLimitChecker) Check(ctx context.Context, userID uint, kind entitlement.ResourceKind) (*entitlement.Decision, error) {
	if m.checkFn != nil {
		return m.checkFn(ctx, userID, kind)
	}
	return &entitlement.Decision{Allowed: true, Limit: entitlement.Unlimited, Plan: entitlement.TierMonthly}, nil
}

type mockUsageRecorder struct {
	recordFn func(ctx context.Context, userID uint, kind entitlement.ResourceKind) error
	recorded []entitlement.ResourceKind
}

func (m *mockUsageRecorder) Record(ctx context.Context, userID uint, kind entitlement.ResourceKind) error {
	m.recorded = append(m.recorded, kind)
	if m.recordFn != nil {
		return m.recordFn(ctx, userID, kind)
	}
	return nil
}

func readyDocument(id, userID uint, text string) *study.Document {
	created := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
	doc, err := study.ReconstructDocument(
		id, userID, "Calculus Notes", study.DocumentPDF,
		"documents/42/abc.pdf", study.DocumentReady, text, created, created,
	)
	if err != nil {
		panic(err)
	}
	return doc
}

func processingDocument(id, userID uint) *study.Document {
	created := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
	doc, err := study.ReconstructDocument(
		id, userID, "Calculus Notes", study.DocumentPDF,
		"documents/42/abc.pdf", study.DocumentProcessing, "", created, created,
	)
	if err != nil {
		panic(err)
	}
	return doc
}

func deniedDecision(kind entitlement.ResourceKind) *entitlement.Decision {
	return &entitlement.Decision{
		Allowed: false,
		Current: 5,
		Limit:   5,
		Plan:    entitlement.TierFree,
		Message: string(kind) + " limit reached (5/5) on the free plan",
	}
}
