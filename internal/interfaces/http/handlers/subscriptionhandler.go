package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	billingusecases "studyhall/internal/application/billing/usecases"
	"studyhall/internal/interfaces/http/middleware"
	"studyhall/internal/shared/utils"
)

// SubscriptionHandler serves the caller's subscription state.
type SubscriptionHandler struct {
	getMySubscription *billingusecases.GetMySubscriptionUseCase
}

func NewSubscriptionHandler(getMySubscription *billingusecases.GetMySubscriptionUseCase) *SubscriptionHandler {
	return &SubscriptionHandler{getMySubscription: getMySubscription}
}

// Me returns the caller's effective plan and current-period usage.
func (h *SubscriptionHandler) Me(c *gin.Context) {
	result, err := h.getMySubscription.Execute(c.Request.Context(), billingusecases.GetMySubscriptionCommand{
		UserID: middleware.UserIDFromContext(c),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}
