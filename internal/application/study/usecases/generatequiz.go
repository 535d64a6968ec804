package usecases

import (
	"context"

	"studyhall/internal/domain/entitlement"
	"studyhall/internal/domain/study"
	"studyhall/internal/shared/logger"
)

const quizSystemPrompt = `You are a study assistant. From the provided course material, write a multiple-choice quiz of 8 to 12 questions.
Respond with JSON only, no prose, matching exactly:
{"questions":[{"question":"...","options":["...","...","...","..."],"answer_index":0,"explanation":"..."}]}
Each question has exactly 4 options and answer_index is the zero-based index of the correct one.`

// GenerateQuizUseCase generates a multiple-choice quiz from a ready document.
type GenerateQuizUseCase struct {
	artifactGenerator
}

func NewGenerateQuizUseCase(
	docRepo study.DocumentRepository,
	artifactRepo study.ArtifactRepository,
	llm LLMClient,
	limits LimitChecker,
	recorder UsageRecorder,
	logger logger.Interface,
) *GenerateQuizUseCase {
	return &GenerateQuizUseCase{artifactGenerator{
		docRepo:      docRepo,
		artifactRepo: artifactRepo,
		llm:          llm,
		limits:       limits,
		recorder:     recorder,
		logger:       logger,
	}}
}

func (uc *GenerateQuizUseCase) Execute(ctx context.Context, cmd GenerateArtifactCommand) (*GenerateArtifactResult, error) {
	return uc.generate(ctx, cmd, artifactSpec{
		kind:         study.ArtifactQuiz,
		resource:     entitlement.ResourceQuizzes,
		titlePrefix:  "Quiz: ",
		systemPrompt: quizSystemPrompt,
	})
}
