package testutil

import (
	"testing"
	"time"

	"github.com/sumcoda/boardbuddy/go-api-server/internal/config"
)

const testJWTSecret = "board-buddy-test-secret-at-least-32-characters"

// NewTestConfig returns a configuration that needs no environment: no redis, no object storage,
// auto-migrate on and a fixed JWT secret.
func NewTestConfig() *config.Config {
	return &config.Config{
		App: config.AppConfig{Name: "board-buddy-api-test", Env: "test", Port: 8080},
		Database: config.DatabaseConfig{
			Driver:          config.DriverOracle,
			Host:            "localhost",
			Port:            1521,
			Service:         "boardbuddy",
			User:            "buddy",
			MaxIdleConns:    1,
			MaxOpenConns:    1,
			ConnMaxLifetime: time.Minute,
			IsAutoMigrate:   true,
		},
		JWT: config.JWTConfig{
			Secret:        testJWTSecret,
			Expiry:        time.Hour,
			RefreshExpiry: 24 * time.Hour,
		},
		CORS: config.CORSConfig{
			AllowedOrigins: []string{"http://localhost:3000"},
			AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowedHeaders: []string{"Content-Type"},
			MaxAge:         600,
		},
		Server: config.ServerConfig{
			ReadTimeout:     5 * time.Second,
			WriteTimeout:    5 * time.Second,
			IdleTimeout:     30 * time.Second,
			GracefulTimeout: time.Second,
		},
		Storage: config.StorageConfig{URLPrefix: "/images"},
		Admin:   config.AdminConfig{Username: "admin", Nickname: "admin", Email: "admin@boardbuddy.kr"},
	}
}

// SetupTestConfig is NewTestConfig with staging and public image directories under t.TempDir.
func SetupTestConfig(t *testing.T) *config.Config {
	t.Helper()

	cfg := NewTestConfig()
	cfg.Storage.StagingDir = t.TempDir()
	cfg.Storage.PublicDir = t.TempDir()
	return cfg
}
