package meta

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/sumcoda/boardbuddy/go-api-server/internal/config"
	"github.com/sumcoda/boardbuddy/go-api-server/internal/shared/logger"
	"github.com/sumcoda/boardbuddy/go-api-server/internal/shared/response"
)

const (
	statusUp       = "up"
	statusDown     = "down"
	statusDisabled = "disabled"

	healthCheckTimeout = 5 * time.Second
)

// DatabasePinger is satisfied by *database.DB.
type DatabasePinger interface {
	HealthCheck(ctx context.Context) error
}

type Check struct {
	Status    string `json:"status"`
	LatencyMs int64  `json:"latencyMs"`
	Error     string `json:"error,omitempty"`
}

type HealthResponse struct {
	Name        string           `json:"name"`
	Environment string           `json:"environment"`
	Checks      map[string]Check `json:"checks"`
}

// Handler handles meta endpoints (health check)
type Handler struct {
	cfg   *config.Config
	db    DatabasePinger
	redis *redis.Client
}

// NewHandler creates a meta handler; a nil redis client reports the cache as disabled.
func NewHandler(cfg *config.Config, db DatabasePinger, redisClient *redis.Client) *Handler {
	return &Handler{
		cfg:   cfg,
		db:    db,
		redis: redisClient,
	}
}

// Health reports 503 only when the database is down. Redis is a cache,
// so an unreachable redis degrades the service without failing it.
func (h *Handler) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), healthCheckTimeout)
	defer cancel()

	result := HealthResponse{
		Name:        h.cfg.App.Name,
		Environment: h.cfg.App.Env,
		Checks: map[string]Check{
			"database": probe(ctx, h.db.HealthCheck),
			"redis":    h.redisCheck(ctx),
		},
	}

	if result.Checks["database"].Status != statusUp {
		logger.FromContext(ctx).Error("Health check 실패", "checks", result.Checks)
		c.JSON(http.StatusServiceUnavailable, response.Envelope{
			Status:  response.StatusError,
			Data:    result,
			Message: "데이터베이스에 연결할 수 없습니다.",
		})
		return
	}

	if result.Checks["redis"].Status == statusDown {
		logger.FromContext(ctx).Warn("redis 연결 불가 - 캐시 없이 동작 중", "error", result.Checks["redis"].Error)
	}

	response.Success(c, http.StatusOK, result, "정상 동작 중입니다.")
}

func (h *Handler) redisCheck(ctx context.Context) Check {
	if h.redis == nil {
		return Check{Status: statusDisabled}
	}
	return probe(ctx, func(ctx context.Context) error {
		return h.redis.Ping(ctx).Err()
	})
}

func probe(ctx context.Context, ping func(context.Context) error) Check {
	start := time.Now()
	if err := ping(ctx); err != nil {
		return Check{Status: statusDown, LatencyMs: time.Since(start).Milliseconds(), Error: err.Error()}
	}
	return Check{Status: statusUp, LatencyMs: time.Since(start).Milliseconds()}
}
