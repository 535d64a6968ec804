package middleware

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"studyhall/internal/shared/errors"
	"studyhall/internal/shared/logger"
	"studyhall/internal/shared/utils"
)

// IPRateLimit enforces a sliding window per client IP on the wrapped routes.
// A redis failure lets the request through: this is a shield against abuse,
// not an entitlement decision.
func IPRateLimit(client *redis.Client, log logger.Interface, max int, window time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := fmt.Sprintf("ratelimit:%s:%s", c.FullPath(), c.ClientIP())
		now := time.Now()

		pipe := client.Pipeline()
		pipe.ZRemRangeByScore(c.Request.Context(), key,
			"0",
			fmt.Sprintf("%d", now.Add(-window).UnixNano()),
		)
		countCmd := pipe.ZCard(c.Request.Context(), key)
		if _, err := pipe.Exec(c.Request.Context()); err != nil {
			log.Warnw("rate limit check failed, allowing request", "error", err)
			c.Next()
			return
		}

		if countCmd.Val() >= int64(max) {
			utils.ErrorResponseWithError(c, errors.NewRateLimitedError("too many requests, slow down"))
			c.Abort()
			return
		}

		pipe = client.Pipeline()
		pipe.ZAdd(c.Request.Context(), key, redis.Z{
			Score:  float64(now.UnixNano()),
			Member: fmt.Sprintf("%d", now.UnixNano()),
		})
		pipe.Expire(c.Request.Context(), key, window)
		if _, err := pipe.Exec(c.Request.Context()); err != nil {
			log.Warnw("failed to record rate limit entry", "error", err)
		}

		c.Next()
	}
}
