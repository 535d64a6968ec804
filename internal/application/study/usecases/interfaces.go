package usecases

import (
	"context"
	"io"

	"studyhall/internal/domain/entitlement"
	"studyhall/internal/domain/study"
)

// LLMClient runs a single chat completion and returns the raw model output.
type LLMClient interface {
	Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error)
}

// ObjectStorage stores uploaded document files.
type ObjectStorage interface {
	Upload(ctx context.Context, key, contentType string, body io.Reader) error
	Delete(ctx context.Context, key string) error
}

// TextExtractor turns an uploaded file into plain text via the external
// extraction service.
type TextExtractor interface {
	Extract(ctx context.Context, kind study.DocumentKind, content []byte) (string, error)
}

// MarkdownRenderer renders markdown to sanitized HTML.
type MarkdownRenderer interface {
	RenderHTML(markdown string) (string, error)
}

// LimitChecker answers whether one more unit of a resource may be consumed.
type LimitChecker interface {
	Check(ctx context.Context, userID uint, kind entitlement.ResourceKind) (*entitlement.Decision, error)
}

// UsageRecorder records one consumed unit after the gated action succeeds.
type UsageRecorder interface {
	Record(ctx context.Context, userID uint, kind entitlement.ResourceKind) error
}
