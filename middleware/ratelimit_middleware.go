package middleware

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/tomatoplanet/leads-go/response"
	"github.com/tomatoplanet/leads-go/utils"
)

// RateLimit applies a fixed-window per-IP limit backed by redis. The public
// submission endpoints sit behind this so a single source cannot flood the
// inbox. If redis is unreachable the request is allowed through: losing rate
// limiting is better than losing leads.
func RateLimit(rdb *redis.Client, limit int, window time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		if rdb == nil || limit <= 0 {
			c.Next()
			return
		}

		key := fmt.Sprintf("ratelimit:%s:%s", c.FullPath(), c.ClientIP())
		count, err := rdb.Incr(c.Request.Context(), key).Result()
		if err != nil {
			utils.Log.Warn("rate limit check failed", zap.Error(err))
			c.Next()
			return
		}
		if count == 1 {
			rdb.Expire(c.Request.Context(), key, window)
		}
		if count > int64(limit) {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, response.ErrorResponse{
				Error: "Too many requests. Please try again later.",
			})
			return
		}
		c.Next()
	}
}
