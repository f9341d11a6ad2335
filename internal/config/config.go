package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	DriverOracle   = "oracle"
	DriverPostgres = "postgres"
	DriverMySQL    = "mysql"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	JWT      JWTConfig
	CORS     CORSConfig
	Server   ServerConfig
	Redis    RedisConfig
	Storage  StorageConfig
	Log      LogConfig
	Admin    AdminConfig
}

type AppConfig struct {
	Name string
	Env  string
	Port int
}

type DatabaseConfig struct {
	Driver          string // oracle | postgres | mysql
	Host            string
	Port            int
	Service         string // oracle service name, postgres/mysql database name
	User            string
	Password        string
	MaxIdleConns    int
	MaxOpenConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
	IsAutoMigrate   bool // true: 테이블 재생성, false: 마이그레이션 비활성화
}

type JWTConfig struct {
	Secret        string
	Expiry        time.Duration
	RefreshExpiry time.Duration
}

type CORSConfig struct {
	AllowedOrigins   []string
	AllowedMethods   []string
	AllowedHeaders   []string
	AllowCredentials bool
	MaxAge           int
}

type ServerConfig struct {
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	IdleTimeout     time.Duration
	GracefulTimeout time.Duration
}

// RedisConfig holds the district cache connection.
// Disabled redis means every coordinate lookup goes to the database.
type RedisConfig struct {
	Enabled  bool
	Host     string
	Port     int
	Password string
	DB       int
	WarmUp   bool // 서버 시작 시 행정 구역 좌표를 redis 에 적재
}

type StorageConfig struct {
	StagingDir     string
	PublicDir      string
	URLPrefix      string
	MinioEndpoint  string
	MinioAccessKey string
	MinioSecretKey string
	MinioBucket    string
	MinioUseSSL    bool
	MinioPublicURL string
}

type LogConfig struct {
	File       string
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
}

// AdminConfig: 비밀번호가 비어 있으면 관리자 계정을 생성하지 않는다.
type AdminConfig struct {
	Username string
	Password string
	Nickname string
	Email    string
}

func Load(env string) (*Config, error) {
	if err := loadEnvFile(env); err != nil {
		return nil, fmt.Errorf("환경 변수 로드 실패: %w", err)
	}

	cfg := &Config{
		App: AppConfig{
			Name: getEnv("APP_NAME", "board-buddy-api"),
			Env:  env,
			Port: getEnvAsInt("APP_PORT", 8080),
		},
		Database: DatabaseConfig{
			Driver:          strings.ToLower(getEnv("DB_DRIVER", DriverOracle)),
			Host:            getEnv("DB_HOST", ""),
			Port:            getEnvAsInt("DB_PORT", 1521),
			Service:         getEnv("DB_SERVICE", ""),
			User:            getEnv("DB_USER", ""),
			Password:        getEnv("DB_PASSWORD", ""),
			MaxIdleConns:    getEnvAsInt("DB_MAX_IDLE_CONNS", 10),
			MaxOpenConns:    getEnvAsInt("DB_MAX_OPEN_CONNS", 100),
			ConnMaxLifetime: getEnvAsDuration("DB_CONN_MAX_LIFETIME", "1h"),
			ConnMaxIdleTime: getEnvAsDuration("DB_CONN_MAX_IDLE_TIME", "10m"),
			IsAutoMigrate:   getEnvAsBool("DB_AUTO_MIGRATE", false), // 기본값: false (안전)
		},
		JWT: JWTConfig{
			Secret:        getEnv("JWT_SECRET", ""),
			Expiry:        getEnvAsDuration("JWT_EXPIRY", "24h"),
			RefreshExpiry: getEnvAsDuration("JWT_REFRESH_EXPIRY", "168h"),
		},
		CORS: CORSConfig{
			AllowedOrigins:   getEnvAsSlice("CORS_ALLOWED_ORIGINS", []string{"*"}),
			AllowedMethods:   getEnvAsSlice("CORS_ALLOWED_METHODS", []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}),
			AllowedHeaders:   getEnvAsSlice("CORS_ALLOWED_HEADERS", []string{"*"}),
			AllowCredentials: getEnvAsBool("CORS_ALLOW_CREDENTIALS", true),
			MaxAge:           getEnvAsInt("CORS_MAX_AGE", 86400),
		},
		Server: ServerConfig{
			ReadTimeout:     getEnvAsDuration("SERVER_READ_TIMEOUT", "15s"),
			WriteTimeout:    getEnvAsDuration("SERVER_WRITE_TIMEOUT", "15s"),
			IdleTimeout:     getEnvAsDuration("SERVER_IDLE_TIMEOUT", "60s"),
			GracefulTimeout: getEnvAsDuration("GRACEFUL_TIMEOUT", "30s"),
		},
		Redis: RedisConfig{
			Enabled:  getEnvAsBool("REDIS_ENABLED", true),
			Host:     getEnv("REDIS_HOST", "127.0.0.1"),
			Port:     getEnvAsInt("REDIS_PORT", 6379),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvAsInt("REDIS_DB", 0),
			WarmUp:   getEnvAsBool("REDIS_WARM_UP", true),
		},
		Storage: StorageConfig{
			StagingDir:     getEnv("STORAGE_STAGING_DIR", filepath.Join(os.TempDir(), "board-buddy", "staging")),
			PublicDir:      getEnv("STORAGE_PUBLIC_DIR", "./public/images"),
			URLPrefix:      getEnv("STORAGE_URL_PREFIX", "/images"),
			MinioEndpoint:  getEnv("MINIO_ENDPOINT", ""),
			MinioAccessKey: getEnv("MINIO_ACCESS_KEY", ""),
			MinioSecretKey: getEnv("MINIO_SECRET_KEY", ""),
			MinioBucket:    getEnv("MINIO_BUCKET", "board-buddy-images"),
			MinioUseSSL:    getEnvAsBool("MINIO_USE_SSL", false),
			MinioPublicURL: getEnv("MINIO_PUBLIC_URL", ""),
		},
		Log: LogConfig{
			File:       getEnv("LOG_FILE", ""),
			MaxSizeMB:  getEnvAsInt("LOG_MAX_SIZE_MB", 100),
			MaxBackups: getEnvAsInt("LOG_MAX_BACKUPS", 7),
			MaxAgeDays: getEnvAsInt("LOG_MAX_AGE_DAYS", 30),
		},
		Admin: AdminConfig{
			Username: getEnv("ADMIN_USERNAME", "admin"),
			Password: getEnv("ADMIN_PASSWORD", ""),
			Nickname: getEnv("ADMIN_NICKNAME", "admin"),
			Email:    getEnv("ADMIN_EMAIL", "admin@boardbuddy.kr"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("환경 변수 검증 실패 : %w", err)
	}

	return cfg, nil
}

func loadEnvFile(env string) error {
	envFile := fmt.Sprintf(".env.%s", env)

	if _, err := os.Stat(envFile); os.IsNotExist(err) {
		slog.Warn("환경 변수 파일을 찾을 수 없습니다. 시스템 환경 변수를 사용합니다.",
			"file", envFile)
		return nil
	}

	if err := godotenv.Load(envFile); err != nil {
		return fmt.Errorf("환경 변수 파일 로드 오류: %s: %w", envFile, err)
	}

	absPath, _ := filepath.Abs(envFile)
	slog.Info("환경 변수 파일 로드", "file", absPath)
	return nil
}

func (c *Config) Validate() error {
	var errors []string

	// App validation
	if c.App.Port < 1 || c.App.Port > 65535 {
		errors = append(errors, "유효하지 않은 포트 번호")
	}

	// Database validation
	switch c.Database.Driver {
	case DriverOracle, DriverPostgres, DriverMySQL:
	default:
		errors = append(errors, "지원하지 않는 데이터베이스 드라이버입니다")
	}
	if c.Database.Host == "" {
		errors = append(errors, "데이터베이스 Host가 필요합니다")
	}
	if c.Database.Service == "" {
		errors = append(errors, "데이터베이스 Service가 필요합니다")
	}
	if c.Database.User == "" {
		errors = append(errors, "데이터베이스 User가 필요합니다")
	}
	if c.Database.Password == "" {
		errors = append(errors, "데이터베이스 Password가 필요합니다")
	}

	// JWT validation
	if c.JWT.Secret == "" {
		errors = append(errors, "JWT Secret Key가 필요합니다")
	}
	if len(c.JWT.Secret) < 32 {
		errors = append(errors, "JWT Secret Key는 32자 이상이어야 합니다")
	}

	// Storage validation
	if c.Storage.StagingDir == "" {
		errors = append(errors, "파일 임시 저장 경로가 필요합니다")
	}
	if c.Storage.MinioEndpoint != "" && (c.Storage.MinioAccessKey == "" || c.Storage.MinioSecretKey == "") {
		errors = append(errors, "MinIO Access Key와 Secret Key가 필요합니다")
	}

	if len(errors) > 0 {
		return fmt.Errorf("유효성 검사 오류: %s", strings.Join(errors, ", "))
	}

	return nil
}

func (c *Config) IsDevelopment() bool {
	return c.App.Env == "local" || c.App.Env == "dev"
}

func (c *Config) IsProduction() bool {
	return c.App.Env == "prod"
}

func (c *Config) RedisAddr() string {
	return fmt.Sprintf("%s:%d", c.Redis.Host, c.Redis.Port)
}

// UseObjectStorage reports whether uploaded images are published to MinIO.
func (c *Config) UseObjectStorage() bool {
	return c.Storage.MinioEndpoint != ""
}

// Helper functions
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseBool(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsSlice(key string, defaultValue []string) []string {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}
	var values []string
	for _, v := range strings.Split(valueStr, ",") {
		if v = strings.TrimSpace(v); v != "" {
			values = append(values, v)
		}
	}
	return values
}

func getEnvAsDuration(key string, defaultValue string) time.Duration {
	valueStr := getEnv(key, defaultValue)
	if duration, err := time.ParseDuration(valueStr); err == nil {
		return duration
	}
	if defaultDuration, err := time.ParseDuration(defaultValue); err == nil {
		return defaultDuration
	}
	return 0
}
