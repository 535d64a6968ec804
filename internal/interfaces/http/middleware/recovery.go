package middleware

import (
	"github.com/gin-gonic/gin"

	"studyhall/internal/shared/errors"
	"studyhall/internal/shared/logger"
	"studyhall/internal/shared/utils"
)

// Recovery converts panics into 500 responses with a structured log entry.
func Recovery(log logger.Interface) gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Errorw("request panicked",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"panic", recovered,
		)
		utils.ErrorResponseWithError(c, errors.NewInternalError("internal server error"))
		c.Abort()
	})
}
