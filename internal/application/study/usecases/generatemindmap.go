package usecases

import (
	"context"

	"studyhall/internal/domain/entitlement"
	"studyhall/internal/domain/study"
	"studyhall/internal/shared/logger"
)

const mindMapSystemPrompt = `You are a study assistant. From the provided course material, build a mind map of the main topics and how they relate, at most 3 levels deep.
Respond with JSON only, no prose, matching exactly:
{"root":{"label":"...","children":[{"label":"...","children":[]}]}}`

// GenerateMindMapUseCase generates a topic mind map from a ready document.
type GenerateMindMapUseCase struct {
	artifactGenerator
}

func NewGenerateMindMapUseCase(
	docRepo study.DocumentRepository,
	artifactRepo study.ArtifactRepository,
	llm LLMClient,
	limits LimitChecker,
	recorder UsageRecorder,
	logger logger.Interface,
) *GenerateMindMapUseCase {
	return &GenerateMindMapUseCase{artifactGenerator{
		docRepo:      docRepo,
		artifactRepo: artifactRepo,
		llm:          llm,
		limits:       limits,
		recorder:     recorder,
		logger:       logger,
	}}
}

func (uc *GenerateMindMapUseCase) Execute(ctx context.Context, cmd GenerateArtifactCommand) (*GenerateArtifactResult, error) {
	return uc.generate(ctx, cmd, artifactSpec{
		kind:         study.ArtifactMindMap,
		resource:     entitlement.ResourceMindMaps,
		titlePrefix:  "Mind map: ",
		systemPrompt: mindMapSystemPrompt,
	})
}
