package handlers

import (
	"context"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	studyusecases "studyhall/internal/application/study/usecases"
	"studyhall/internal/domain/study"
	"studyhall/internal/interfaces/http/middleware"
	"studyhall/internal/shared/errors"
	"studyhall/internal/shared/utils"
)

// StudyHandler serves document upload and study content generation.
type StudyHandler struct {
	upload        *studyusecases.UploadDocumentUseCase
	listDocuments *studyusecases.ListDocumentsUseCase
	quiz          *studyusecases.GenerateQuizUseCase
	flashcards    *studyusecases.GenerateFlashcardsUseCase
	summary       *studyusecases.GenerateSummaryUseCase
	mindMap       *studyusecases.GenerateMindMapUseCase
	listArtifacts *studyusecases.ListArtifactsUseCase
	getArtifact   *studyusecases.GetArtifactUseCase
}

func NewStudyHandler(
	upload *studyusecases.UploadDocumentUseCase,
	listDocuments *studyusecases.ListDocumentsUseCase,
	quiz *studyusecases.GenerateQuizUseCase,
	flashcards *studyusecases.GenerateFlashcardsUseCase,
	summary *studyusecases.GenerateSummaryUseCase,
	mindMap *studyusecases.GenerateMindMapUseCase,
	listArtifacts *studyusecases.ListArtifactsUseCase,
	getArtifact *studyusecases.GetArtifactUseCase,
) *StudyHandler {
	return &StudyHandler{
		upload:        upload,
		listDocuments: listDocuments,
		quiz:          quiz,
		flashcards:    flashcards,
		summary:       summary,
		mindMap:       mindMap,
		listArtifacts: listArtifacts,
		getArtifact:   getArtifact,
	}
}

// UploadDocument accepts a multipart upload with "file", "title", and "kind"
// fields.
func (h *StudyHandler) UploadDocument(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "file is required")
		return
	}
	if fileHeader.Size > studyusecases.MaxDocumentSize {
		utils.ErrorResponseWithError(c, errors.NewValidationError("file exceeds the 25 MiB upload limit"))
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		utils.ErrorResponseWithError(c, errors.NewInternalError("failed to read upload"))
		return
	}
	defer file.Close()

	content, err := io.ReadAll(io.LimitReader(file, studyusecases.MaxDocumentSize+1))
	if err != nil {
		utils.ErrorResponseWithError(c, errors.NewInternalError("failed to read upload"))
		return
	}

	title := c.PostForm("title")
	if title == "" {
		title = fileHeader.Filename
	}

	result, err := h.upload.Execute(c.Request.Context(), studyusecases.UploadDocumentCommand{
		UserID:      middleware.UserIDFromContext(c),
		Title:       title,
		Kind:        study.DocumentKind(c.PostForm("kind")),
		ContentType: fileHeader.Header.Get("Content-Type"),
		Content:     content,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "document uploaded")
}

// ListDocuments lists the caller's documents.
func (h *StudyHandler) ListDocuments(c *gin.Context) {
	page, pageSize := utils.ParsePagination(c)

	result, err := h.listDocuments.Execute(c.Request.Context(), studyusecases.ListDocumentsCommand{
		UserID:   middleware.UserIDFromContext(c),
		Page:     page,
		PageSize: pageSize,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Documents, result.Total, result.Page, result.PageSize)
}

func (h *StudyHandler) GenerateQuiz(c *gin.Context) {
	h.generate(c, h.quiz.Execute)
}

func (h *StudyHandler) GenerateFlashcards(c *gin.Context) {
	h.generate(c, h.flashcards.Execute)
}

func (h *StudyHandler) GenerateSummary(c *gin.Context) {
	h.generate(c, h.summary.Execute)
}

func (h *StudyHandler) GenerateMindMap(c *gin.Context) {
	h.generate(c, h.mindMap.Execute)
}

func (h *StudyHandler) generate(c *gin.Context, execute func(ctx context.Context, cmd studyusecases.GenerateArtifactCommand) (*studyusecases.GenerateArtifactResult, error)) {
	documentID, err := utils.ParseUintParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := execute(c.Request.Context(), studyusecases.GenerateArtifactCommand{
		UserID:     middleware.UserIDFromContext(c),
		DocumentID: documentID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "content generated")
}

// ListArtifacts lists the caller's generated artifacts, optionally filtered
// by ?kind=.
func (h *StudyHandler) ListArtifacts(c *gin.Context) {
	page, pageSize := utils.ParsePagination(c)

	result, err := h.listArtifacts.Execute(c.Request.Context(), studyusecases.ListArtifactsCommand{
		UserID:   middleware.UserIDFromContext(c),
		Kind:     c.Query("kind"),
		Page:     page,
		PageSize: pageSize,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Artifacts, result.Total, result.Page, result.PageSize)
}

// GetArtifact returns one artifact with full content.
func (h *StudyHandler) GetArtifact(c *gin.Context) {
	artifactID, err := utils.ParseUintParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getArtifact.Execute(c.Request.Context(), studyusecases.GetArtifactCommand{
		UserID:     middleware.UserIDFromContext(c),
		ArtifactID: artifactID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}
