package usecases

import (
	"context"

	"studyhall/internal/domain/entitlement"
	"studyhall/internal/domain/study"
	"studyhall/internal/shared/logger"
)

const summarySystemPrompt = `You are a study assistant. Write a structured summary of the provided course material in markdown: a short overview paragraph, then sections with headings and bullet points for the key concepts.
Respond with markdown only, no code fences.`

// GenerateSummaryUseCase generates a markdown summary from a ready document
// and pre-renders it to sanitized HTML.
type GenerateSummaryUseCase struct {
	artifactGenerator
}

func NewGenerateSummaryUseCase(
	docRepo study.DocumentRepository,
	artifactRepo study.ArtifactRepository,
	llm LLMClient,
	markdown MarkdownRenderer,
	limits LimitChecker,
	recorder UsageRecorder,
	logger logger.Interface,
) *GenerateSummaryUseCase {
	return &GenerateSummaryUseCase{artifactGenerator{
		docRepo:      docRepo,
		artifactRepo: artifactRepo,
		llm:          llm,
		markdown:     markdown,
		limits:       limits,
		recorder:     recorder,
		logger:       logger,
	}}
}

func (uc *GenerateSummaryUseCase) Execute(ctx context.Context, cmd GenerateArtifactCommand) (*GenerateArtifactResult, error) {
	return uc.generate(ctx, cmd, artifactSpec{
		kind:         study.ArtifactSummary,
		resource:     entitlement.ResourceSummaries,
		titlePrefix:  "Summary: ",
		systemPrompt: summarySystemPrompt,
		wrapMarkdown: true,
	})
}
