package middleware

import (
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"
	sharedContext "github.com/sumcoda/boardbuddy/go-api-server/internal/shared/context"
	sharedError "github.com/sumcoda/boardbuddy/go-api-server/internal/shared/error"
	"github.com/sumcoda/boardbuddy/go-api-server/internal/shared/logger"
)

// quietPaths are polled by infrastructure and only logged when they fail.
var quietPaths = map[string]bool{
	"/health":  true,
	"/metrics": true,
}

// LoggerMiddleware binds a request-scoped slog logger to the request context and
// writes one access log line per request.
func LoggerMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		raw := c.Request.URL.RawQuery

		reqLogger := slog.Default().With("request_id", GetRequestID(c))
		c.Request = c.Request.WithContext(logger.WithLogger(c.Request.Context(), reqLogger))

		c.Next()

		status := c.Writer.Status()
		if quietPaths[path] && status < 400 {
			return
		}

		fields := []any{
			"method", c.Request.Method,
			"path", path,
			"route", c.FullPath(),
			"status", status,
			"latency", time.Since(start).String(),
			"ip", c.ClientIP(),
			"userAgent", c.Request.UserAgent(),
		}
		if raw != "" {
			fields = append(fields, "query", raw)
		}
		if username, ok := sharedContext.GetUsername(c); ok {
			fields = append(fields, "username", logger.MaskUsername(username))
		}
		if code := c.GetString(sharedError.CodeKey); code != "" {
			fields = append(fields, "code", code)
		}
		if len(c.Errors) > 0 {
			fields = append(fields, "error", c.Errors.String())
		}

		const msg = "요청 처리 완료"
		switch {
		case status >= 500:
			reqLogger.Error(msg, fields...)
		case status >= 400:
			reqLogger.Warn(msg, fields...)
		default:
			reqLogger.Info(msg, fields...)
		}
	}
}
