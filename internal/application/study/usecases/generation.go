package usecases

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"studyhall/internal/domain/entitlement"
	"studyhall/internal/domain/study"
	"studyhall/internal/shared/errors"
	"studyhall/internal/shared/logger"
)

// maxSourceChars bounds how much extracted text is sent to the model.
const maxSourceChars = 24000

type GenerateArtifactCommand struct {
	UserID     uint
	DocumentID uint
}

type GenerateArtifactResult struct {
	ArtifactID uint               `json:"artifact_id"`
	DocumentID uint               `json:"document_id"`
	Kind       study.ArtifactKind `json:"kind"`
	Title      string             `json:"title"`
	Content    json.RawMessage    `json:"content"`
	HTML       string             `json:"html,omitempty"`
}

// artifactSpec is the per-kind configuration a generator plugs into the
// shared pipeline.
type artifactSpec struct {
	kind         study.ArtifactKind
	resource     entitlement.ResourceKind
	titlePrefix  string
	systemPrompt string
	// wrapMarkdown wraps a plain-markdown model response into a JSON object
	// instead of requiring the model to emit JSON itself.
	wrapMarkdown bool
}

// artifactGenerator is the shared check-act-record pipeline behind every
// generation use case: load and authorize the document, check the quota,
// call the model, persist the artifact, then record the consumed unit.
type artifactGenerator struct {
	docRepo      study.DocumentRepository
	artifactRepo study.ArtifactRepository
	llm          LLMClient
	markdown     MarkdownRenderer
	limits       LimitChecker
	recorder     UsageRecorder
	logger       logger.Interface
}

func (g *artifactGenerator) generate(ctx context.Context, cmd GenerateArtifactCommand, spec artifactSpec) (*GenerateArtifactResult, error) {
	if cmd.UserID == 0 {
		return nil, errors.NewValidationError("user ID is required")
	}
	if cmd.DocumentID == 0 {
		return nil, errors.NewValidationError("document ID is required")
	}

	doc, err := g.docRepo.GetByID(ctx, cmd.DocumentID)
	if err != nil {
		g.logger.Errorw("failed to load document", "document_id", cmd.DocumentID, "error", err)
		return nil, errors.NewInternalError("failed to load document")
	}
	// Documents owned by someone else are indistinguishable from missing.
	if doc == nil || doc.UserID() != cmd.UserID {
		return nil, errors.NewNotFoundError("document not found")
	}
	if !doc.IsReady() {
		return nil, errors.NewBadRequestError(fmt.Sprintf("document is not ready for generation (status: %s)", doc.Status()))
	}

	decision, err := g.limits.Check(ctx, cmd.UserID, spec.resource)
	if err != nil {
		return nil, err
	}
	if !decision.Allowed {
		return nil, errors.NewQuotaExceededError(decision.Message)
	}

	source := doc.ExtractedText()
	if len(source) > maxSourceChars {
		source = source[:maxSourceChars]
	}

	raw, err := g.llm.Complete(ctx, spec.systemPrompt, source)
	if err != nil {
		g.logger.Errorw("model completion failed",
			"user_id", cmd.UserID,
			"document_id", cmd.DocumentID,
			"kind", spec.kind,
			"error", err,
		)
		return nil, errors.NewInternalError("failed to generate content")
	}

	var content json.RawMessage
	if spec.wrapMarkdown {
		content, err = json.Marshal(map[string]string{"markdown": strings.TrimSpace(raw)})
	} else {
		content, err = extractJSON(raw)
	}
	if err != nil {
		g.logger.Errorw("model returned unusable output",
			"user_id", cmd.UserID,
			"document_id", cmd.DocumentID,
			"kind", spec.kind,
			"error", err,
		)
		return nil, errors.NewInternalError("failed to generate content")
	}

	artifact, err := study.NewArtifact(cmd.UserID, cmd.DocumentID, spec.kind, spec.titlePrefix+doc.Title(), content)
	if err != nil {
		return nil, errors.NewInternalError("failed to build artifact", err.Error())
	}

	if spec.wrapMarkdown {
		html, err := g.markdown.RenderHTML(strings.TrimSpace(raw))
		if err != nil {
			g.logger.Warnw("failed to render artifact HTML", "kind", spec.kind, "error", err)
		} else {
			artifact.SetHTML(html)
		}
	}

	if err := g.artifactRepo.Save(ctx, artifact); err != nil {
		g.logger.Errorw("failed to save artifact", "user_id", cmd.UserID, "kind", spec.kind, "error", err)
		return nil, errors.NewInternalError("failed to save generated content")
	}

	if err := g.recorder.Record(ctx, cmd.UserID, spec.resource); err != nil {
		return nil, err
	}

	g.logger.Infow("artifact generated",
		"user_id", cmd.UserID,
		"document_id", cmd.DocumentID,
		"artifact_id", artifact.ID(),
		"kind", spec.kind,
	)

	return &GenerateArtifactResult{
		ArtifactID: artifact.ID(),
		DocumentID: artifact.DocumentID(),
		Kind:       artifact.Kind(),
		Title:      artifact.Title(),
		Content:    artifact.Content(),
		HTML:       artifact.HTML(),
	}, nil
}

// extractJSON pulls a JSON document out of a model response, tolerating
// markdown code fences around it.
func extractJSON(raw string) (json.RawMessage, error) {
	s := strings.TrimSpace(raw)
	if strings.HasPrefix(s, "```") {
		s = strings.TrimPrefix(s, "```json")
		s = strings.TrimPrefix(s, "```")
		if i := strings.LastIndex(s, "```"); i >= 0 {
			s = s[:i]
		}
		s = strings.TrimSpace(s)
	}
	if !json.Valid([]byte(s)) {
		return nil, fmt.Errorf("response is not valid JSON")
	}
	return json.RawMessage(s), nil
}
