package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sumcoda/boardbuddy/go-api-server/internal/bootstrap"
	"github.com/sumcoda/boardbuddy/go-api-server/internal/config"
	"github.com/sumcoda/boardbuddy/go-api-server/internal/model"
	"github.com/sumcoda/boardbuddy/go-api-server/internal/router"
	"github.com/sumcoda/boardbuddy/go-api-server/internal/shared/cache"
	"github.com/sumcoda/boardbuddy/go-api-server/internal/shared/database"
	"github.com/sumcoda/boardbuddy/go-api-server/internal/shared/logger"
	"github.com/sumcoda/boardbuddy/go-api-server/internal/shared/token"
	"github.com/sumcoda/boardbuddy/go-api-server/internal/shared/validator"
	"github.com/sumcoda/boardbuddy/go-api-server/internal/storage"
	"gorm.io/gorm"
)

func main() {
	// Parse command line flags
	env := parseFlags()

	slog.Info("서버 초기화 시작", "env", env)

	// Run application
	if err := run(env); err != nil {
		slog.Error("서버 초기화 실패", "error", err)
		os.Exit(1)
	}

	slog.Info("서버 종료 완료", "env", env)
}

// parseFlags parses command line arguments
func parseFlags() string {
	env := flag.String("env", "local", "Environment (local|dev|prod)")
	flag.Parse()
	return *env
}

// run contains the main application logic
func run(env string) error {
	// Create root context for application lifecycle
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg, err := config.Load(env)
	if err != nil {
		return fmt.Errorf("설정 로드 실패: %w", err)
	}

	// 로그 파일 설정은 환경 변수 로드 이후에 적용
	logger.Setup(env, cfg.Log)
	slog.Info("환경 변수 로드 성공")

	db, err := database.New(cfg)
	if err != nil {
		return fmt.Errorf("데이터베이스 연결 실패: %w", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			slog.Error("데이터베이스 종료 실패", "error", err)
		}
	}()

	redisClient := cache.NewRedis(cfg)
	if redisClient != nil {
		defer func() {
			if err := redisClient.Close(); err != nil {
				slog.Error("redis 종료 실패", "error", err)
			}
		}()
	}

	files, err := storage.New(ctx, cfg)
	if err != nil {
		return fmt.Errorf("파일 저장소 초기화 실패: %w", err)
	}

	deps := router.Dependencies{
		Config: cfg,
		DB:     db,
		Redis:  redisClient,
		Files:  files,
		Tokens: token.NewJWTManager(cfg),
	}
	services := router.NewServices(deps)

	if err := services.Member.CreateAdminAccount(ctx, cfg.Admin); err != nil {
		return fmt.Errorf("관리자 계정 생성 실패: %w", err)
	}
	if cfg.Redis.WarmUp {
		warmDistrictCache(ctx, db, services)
	}

	srv, err := setupServer(cfg, deps, services)
	if err != nil {
		return err
	}

	return startWithGracefulShutdown(ctx, srv, cfg.Server.GracefulTimeout)
}

// warmDistrictCache loads every district coordinate into redis.
// Failure only costs cache hits, so it is logged and startup continues.
func warmDistrictCache(ctx context.Context, db *database.DB, services *router.Services) {
	var districts []model.PublicDistrict
	err := database.WithReadOnlyTransaction(ctx, db.DB, func(tx *gorm.DB) error {
		var err error
		districts, err = services.DistrictRepository.FindAll(ctx, tx)
		return err
	})
	if err != nil {
		slog.Warn("행정 구역 조회 실패 - 캐시 적재 건너뜀", "error", err)
		return
	}

	warmed, err := services.DistrictCache.Warm(ctx, districts)
	if err != nil {
		slog.Warn("행정 구역 캐시 적재 실패", "error", err)
		return
	}
	slog.Info("행정 구역 캐시 적재 완료", "count", warmed)
}

// setupServer initializes and configures the HTTP server
func setupServer(cfg *config.Config, deps router.Dependencies, services *router.Services) (*bootstrap.Server, error) {
	boot := bootstrap.NewBootstrap(cfg)
	ginEngine := boot.SetupEngine()

	if err := validator.RegisterAll(); err != nil {
		return nil, fmt.Errorf("공통 Validator 등록 실패: %w", err)
	}

	router.Setup(ginEngine, deps, services)

	slog.Info("서버 설정 완료",
		"env", cfg.App.Env,
		"redis", deps.Redis != nil,
		"object_storage", cfg.UseObjectStorage(),
	)

	return bootstrap.New(cfg, ginEngine), nil
}

// startWithGracefulShutdown starts the server and handles graceful shutdown
func startWithGracefulShutdown(ctx context.Context, srv *bootstrap.Server, gracefulTimeout time.Duration) error {
	// Channel to receive server errors
	serverErrors := make(chan error, 1)

	// Start server in goroutine
	go func() {
		serverErrors <- srv.Start()
	}()

	// Channel to receive OS signals
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	// Wait for either server error or interrupt signal
	select {
	case err := <-serverErrors:
		// Server failed to start or stopped unexpectedly
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("서버 오류: %w", err)
		}
		return nil

	case sig := <-quit:
		// Received shutdown signal
		slog.Info("종료 신호 수신됨", "signal", sig.String())

		// Create shutdown context with timeout
		shutdownCtx, cancel := context.WithTimeout(ctx, gracefulTimeout)
		defer cancel()

		// Attempt graceful shutdown
		slog.Info("서버 종료 중...")
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("서버 강제 종료: %w", err)
		}
		return nil
	}
}
