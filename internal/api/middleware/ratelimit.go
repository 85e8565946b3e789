package middleware

import (
	"math"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	apierrors "github.com/feral-file/ff-crm/internal/api/shared/errors"
	"github.com/feral-file/ff-crm/internal/auth"
	"github.com/feral-file/ff-crm/internal/logger"
	"github.com/feral-file/ff-crm/internal/metrics"
	"github.com/feral-file/ff-crm/internal/ratelimit"
)

// RateLimit limits requests per actor, or per client IP for anonymous callers.
// Limiter failures let the request through.
func RateLimit(l ratelimit.Limiter, m *metrics.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		if l == nil {
			c.Next()
			return
		}

		ctx := c.Request.Context()
		key := "ip:" + c.ClientIP()
		if actor, ok := auth.FromContext(ctx); ok {
			key = "actor:" + actor.ID
		}

		decision, err := l.Allow(ctx, key)
		if err != nil {
			logger.WarnCtx(ctx, "Rate limiter unavailable, allowing request", zap.Error(err), zap.String("key", key))
			c.Next()
			return
		}

		c.Header("X-RateLimit-Remaining", strconv.Itoa(decision.Remaining))
		if !decision.Allowed {
			m.IncrementRateLimitRejections()
			retryAfter := int(math.Ceil(decision.RetryAfter.Seconds()))
			if retryAfter < 1 {
				retryAfter = 1
			}
			c.Header("Retry-After", strconv.Itoa(retryAfter))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, apierrors.NewTooManyRequestsError("Too many requests"))
			return
		}

		c.Next()
	}
}
