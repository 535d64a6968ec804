// Package handlers contains the gin HTTP handlers.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	userusecases "studyhall/internal/application/user/usecases"
	verificationusecases "studyhall/internal/application/verification/usecases"
	"studyhall/internal/shared/utils"
)

type requestCodeRequest struct {
	Email string `json:"email" binding:"required"`
}

type verifyCodeRequest struct {
	Email string `json:"email" binding:"required"`
	Code  string `json:"code" binding:"required"`
}

type registerRequest struct {
	Email    string `json:"email" binding:"required"`
	Name     string `json:"name" binding:"required"`
	Password string `json:"password" binding:"required,min=8"`
	Code     string `json:"code" binding:"required"`
}

type loginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// AuthHandler serves signup, verification, and login.
type AuthHandler struct {
	issueCode  *verificationusecases.IssueCodeUseCase
	verifyCode *verificationusecases.VerifyCodeUseCase
	register   *userusecases.RegisterWithPasswordUseCase
	login      *userusecases.LoginWithPasswordUseCase
}

func NewAuthHandler(
	issueCode *verificationusecases.IssueCodeUseCase,
	verifyCode *verificationusecases.VerifyCodeUseCase,
	register *userusecases.RegisterWithPasswordUseCase,
	login *userusecases.LoginWithPasswordUseCase,
) *AuthHandler {
	return &AuthHandler{
		issueCode:  issueCode,
		verifyCode: verifyCode,
		register:   register,
		login:      login,
	}
}

// RequestCode issues a one-time verification code. The response is the same
// whether or not the email is already registered.
func (h *AuthHandler) RequestCode(c *gin.Context) {
	var req requestCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "email is required")
		return
	}

	if err := h.issueCode.Execute(c.Request.Context(), verificationusecases.IssueCodeCommand{
		Email: req.Email,
	}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "verification code sent", nil)
}

// VerifyCode consumes a one-time code without registering.
func (h *AuthHandler) VerifyCode(c *gin.Context) {
	var req verifyCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "email and code are required")
		return
	}

	if err := h.verifyCode.Execute(c.Request.Context(), verificationusecases.VerifyCodeCommand{
		Email: req.Email,
		Code:  req.Code,
	}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "email verified", gin.H{"valid": true})
}

// Register creates an account for an email holding a valid code.
func (h *AuthHandler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "email, name, password, and code are required")
		return
	}

	result, err := h.register.Execute(c.Request.Context(), userusecases.RegisterWithPasswordCommand{
		Email:    req.Email,
		Name:     req.Name,
		Password: req.Password,
		Code:     req.Code,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "account created")
}

// Login authenticates by email and password.
func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "email and password are required")
		return
	}

	result, err := h.login.Execute(c.Request.Context(), userusecases.LoginWithPasswordCommand{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "logged in", result)
}
