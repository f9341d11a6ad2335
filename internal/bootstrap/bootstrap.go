package bootstrap

import (
	"fmt"
	"io"

	"github.com/gin-gonic/gin"
	"github.com/sumcoda/boardbuddy/go-api-server/internal/config"
	sharedError "github.com/sumcoda/boardbuddy/go-api-server/internal/shared/error"
	"github.com/sumcoda/boardbuddy/go-api-server/internal/shared/logger"
	"github.com/sumcoda/boardbuddy/go-api-server/internal/shared/middleware"
	"github.com/sumcoda/boardbuddy/go-api-server/internal/shared/response"
)

// maxMultipartMemory 프로필 이미지 업로드 시 메모리에 유지하는 최대 크기
const maxMultipartMemory = 10 << 20

// Bootstrap handles engine setup shared by every route
type Bootstrap struct {
	cfg *config.Config
}

func NewBootstrap(cfg *config.Config) *Bootstrap {
	return &Bootstrap{
		cfg: cfg,
	}
}

// SetupEngine creates a gin engine with the common middleware chain.
// Order: recovery, request id, logger, metrics, CORS, timeout.
func (b *Bootstrap) SetupEngine() *gin.Engine {
	if b.cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}

	// Disable Gin's default logger (using slog)
	gin.DefaultWriter = io.Discard
	gin.DefaultErrorWriter = io.Discard

	engine := gin.New()
	engine.HandleMethodNotAllowed = true
	engine.MaxMultipartMemory = maxMultipartMemory

	engine.Use(gin.CustomRecovery(b.recoveryHandler))
	engine.Use(middleware.RequestID())
	engine.Use(middleware.LoggerMiddleware())
	engine.Use(middleware.Metrics())
	engine.Use(middleware.CORS(b.cfg.CORS))
	engine.Use(middleware.Timeout(middleware.DefaultTimeout))

	return engine
}

// recoveryHandler logs the panic value whatever its type and answers with the error envelope
func (b *Bootstrap) recoveryHandler(c *gin.Context, recovered any) {
	logger.FromContext(c.Request.Context()).Error("Panic Recovered",
		"error", fmt.Sprint(recovered),
		"path", c.Request.URL.Path,
		"method", c.Request.Method,
	)

	c.Set(sharedError.CodeKey, sharedError.InternalServerError.Code)
	response.Error(c, sharedError.InternalServerError.Status, sharedError.InternalServerError.Message)
	c.Abort()
}
