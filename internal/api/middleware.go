package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"github.com/praj33/Law-Agent-by-Grok-sub003/internal/logger"
	"github.com/praj33/Law-Agent-by-Grok-sub003/internal/telemetry"
)

// RequestLogger logs one line per request with method, path, status and
// latency.
func RequestLogger(log logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		log.Info("request",
			logger.String("method", c.Request.Method),
			logger.String("path", c.Request.URL.Path),
			logger.Int("status", c.Writer.Status()),
			logger.Duration("latency", time.Since(start)))
	}
}

// FeedbackRateLimit throttles feedback submissions with a process-wide
// token bucket. Throttled requests get 429 without reaching the adjuster.
func FeedbackRateLimit(rps, burst int, tp *telemetry.Provider) gin.HandlerFunc {
	limiter := rate.NewLimiter(rate.Limit(rps), burst)
	return func(c *gin.Context) {
		if !limiter.Allow() {
			tp.RecordThrottled()
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error": "feedback rate limit exceeded",
			})
			return
		}
		c.Next()
	}
}
