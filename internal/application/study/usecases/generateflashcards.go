package usecases

import (
	"context"

	"studyhall/internal/domain/entitlement"
	"studyhall/internal/domain/study"
	"studyhall/internal/shared/logger"
)

const flashcardsSystemPrompt = `You are a study assistant. From the provided course material, write a deck of 15 to 25 flashcards covering the key facts and definitions.
Respond with JSON only, no prose, matching exactly:
{"cards":[{"front":"...","back":"..."}]}`

// GenerateFlashcardsUseCase generates a flashcard deck from a ready document.
type GenerateFlashcardsUseCase struct {
	artifactGenerator
}

func NewGenerateFlashcardsUseCase(
	docRepo study.DocumentRepository,
	artifactRepo study.ArtifactRepository,
	llm LLMClient,
	limits LimitChecker,
	recorder UsageRecorder,
	logger logger.Interface,
) *GenerateFlashcardsUseCase {
	return &GenerateFlashcardsUseCase{artifactGenerator{
		docRepo:      docRepo,
		artifactRepo: artifactRepo,
		llm:          llm,
		limits:       limits,
		recorder:     recorder,
		logger:       logger,
	}}
}

func (uc *GenerateFlashcardsUseCase) Execute(ctx context.Context, cmd GenerateArtifactCommand) (*GenerateArtifactResult, error) {
	return uc.generate(ctx, cmd, artifactSpec{
		kind:         study.ArtifactFlashcards,
		resource:     entitlement.ResourceFlashcards,
		titlePrefix:  "Flashcards: ",
		systemPrompt: flashcardsSystemPrompt,
	})
}
