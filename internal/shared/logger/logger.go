package logger

import (
	"io"
	"log/slog"
	"os"

	"github.com/sumcoda/boardbuddy/go-api-server/internal/config"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Setup configures the global slog logger based on environment
func Setup(env string, cfg config.LogConfig) {
	var handler slog.Handler
	opts := &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}

	out := output(cfg)

	switch env {
	case "production", "prod":
		// Production: JSON format, info level
		opts.Level = slog.LevelInfo
		handler = slog.NewJSONHandler(out, opts)
	case "local", "dev", "development":
		// Development: Text format, debug level
		opts.Level = slog.LevelDebug
		handler = slog.NewTextHandler(out, opts)
	default:
		// Default: Info level
		opts.Level = slog.LevelInfo
		handler = slog.NewTextHandler(out, opts)
	}

	logger := slog.New(handler)
	slog.SetDefault(logger)

	slog.Info("Logger 초기화", "env", env, "level", opts.Level.Level().String(), "file", cfg.File)
}

// output writes to stdout, and also to a rotating file when LOG_FILE is set
func output(cfg config.LogConfig) io.Writer {
	if cfg.File == "" {
		return os.Stdout
	}

	return io.MultiWriter(os.Stdout, &lumberjack.Logger{
		Filename:   cfg.File,
		MaxSize:    cfg.MaxSizeMB,
		MaxBackups: cfg.MaxBackups,
		MaxAge:     cfg.MaxAgeDays,
		LocalTime:  true,
	})
}
