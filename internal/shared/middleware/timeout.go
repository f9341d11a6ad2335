package middleware

import (
	"context"
	"errors"
	"time"

	"github.com/gin-gonic/gin"
	sharedError "github.com/sumcoda/boardbuddy/go-api-server/internal/shared/error"
	"github.com/sumcoda/boardbuddy/go-api-server/internal/shared/logger"
	"github.com/sumcoda/boardbuddy/go-api-server/internal/shared/response"
)

const DefaultTimeout = 30 * time.Second

// Timeout bounds the request context. Services pass the context to gorm and redis,
// so a blown deadline surfaces as a query error; when the handler wrote nothing
// the middleware answers 503 itself.
func Timeout(timeout time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), timeout)
		defer cancel()

		c.Request = c.Request.WithContext(ctx)

		c.Next()

		if !errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return
		}

		logger.FromContext(ctx).Warn("요청 처리 시간 초과",
			"path", c.Request.URL.Path,
			"method", c.Request.Method,
			"timeout", timeout.String(),
			"status", c.Writer.Status(),
		)

		if !c.Writer.Written() {
			c.Set(sharedError.CodeKey, sharedError.RequestTimeout.Code)
			response.Error(c, sharedError.RequestTimeout.Status, sharedError.RequestTimeout.Message)
			c.Abort()
		}
	}
}
