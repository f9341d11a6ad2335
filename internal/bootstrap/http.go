package bootstrap

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/sumcoda/boardbuddy/go-api-server/internal/config"
)

// Server represents the HTTP server (lifecycle management only)
type Server struct {
	cfg    *config.Config
	server *http.Server
}

func New(cfg *config.Config, handler http.Handler) *Server {
	return &Server{
		cfg: cfg,
		server: &http.Server{
			Addr:              fmt.Sprintf(":%d", cfg.App.Port),
			Handler:           handler,
			ReadTimeout:       cfg.Server.ReadTimeout,
			ReadHeaderTimeout: cfg.Server.ReadTimeout,
			WriteTimeout:      cfg.Server.WriteTimeout,
			IdleTimeout:       cfg.Server.IdleTimeout,
			MaxHeaderBytes:    1 << 20, // 1 MB
		},
	}
}

func (s *Server) Port() int {
	return s.cfg.App.Port
}

// Start blocks until the server stops; http.ErrServerClosed means a graceful shutdown.
func (s *Server) Start() error {
	slog.Info("서버 시작 중",
		"name", s.cfg.App.Name,
		"port", s.cfg.App.Port,
		"env", s.cfg.App.Env,
		"read_timeout", s.cfg.Server.ReadTimeout,
		"write_timeout", s.cfg.Server.WriteTimeout,
	)

	return s.server.ListenAndServe()
}

// Shutdown stops accepting connections and waits for in-flight requests until ctx expires.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.server == nil {
		return nil
	}

	slog.Info("진행 중인 요청 완료 대기", "port", s.cfg.App.Port)
	if err := s.server.Shutdown(ctx); err != nil {
		return fmt.Errorf("서버 종료 실패: %w", err)
	}
	return nil
}
