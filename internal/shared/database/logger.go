package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sumcoda/boardbuddy/go-api-server/internal/config"
	"github.com/sumcoda/boardbuddy/go-api-server/internal/shared/logger"
	"github.com/sumcoda/boardbuddy/go-api-server/internal/shared/metrics"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

const defaultSlowThreshold = 200 * time.Millisecond

// GormLogger writes gorm events through the request logger bound to ctx,
// so SQL lines carry the request_id of the request that issued them.
type GormLogger struct {
	SlowThreshold time.Duration
	HideSQL       bool
	LogLevel      gormlogger.LogLevel
}

// newLogger: local/dev 는 쿼리까지, prod 는 에러만 기록한다
func newLogger(cfg *config.Config) gormlogger.Interface {
	level := gormlogger.Info
	if cfg.IsProduction() {
		level = gormlogger.Error
	}

	return &GormLogger{
		SlowThreshold: defaultSlowThreshold,
		HideSQL:       cfg.IsProduction(),
		LogLevel:      level,
	}
}

func (l *GormLogger) LogMode(level gormlogger.LogLevel) gormlogger.Interface {
	clone := *l
	clone.LogLevel = level
	return &clone
}

func (l *GormLogger) Info(ctx context.Context, msg string, data ...interface{}) {
	if l.LogLevel >= gormlogger.Info {
		logger.FromContext(ctx).InfoContext(ctx, fmt.Sprintf(msg, data...), "component", "gorm")
	}
}

func (l *GormLogger) Warn(ctx context.Context, msg string, data ...interface{}) {
	if l.LogLevel >= gormlogger.Warn {
		logger.FromContext(ctx).WarnContext(ctx, fmt.Sprintf(msg, data...), "component", "gorm")
	}
}

func (l *GormLogger) Error(ctx context.Context, msg string, data ...interface{}) {
	if l.LogLevel >= gormlogger.Error {
		logger.FromContext(ctx).ErrorContext(ctx, fmt.Sprintf(msg, data...), "component", "gorm")
	}
}

// Trace logs failed and slow statements; ErrRecordNotFound is a normal outcome and is never logged.
func (l *GormLogger) Trace(ctx context.Context, begin time.Time, fc func() (sql string, rowsAffected int64), err error) {
	if l.LogLevel <= gormlogger.Silent {
		return
	}

	elapsed := time.Since(begin)
	slow := l.SlowThreshold != 0 && elapsed > l.SlowThreshold
	if slow {
		metrics.DBSlowQueriesTotal.Inc()
	}

	sql, rows := fc()
	fields := []any{"component", "gorm", "elapsed", elapsed.String(), "rows", rows}
	if !l.HideSQL {
		fields = append(fields, "sql", sql)
	}
	log := logger.FromContext(ctx)

	switch {
	case err != nil && !errors.Is(err, gorm.ErrRecordNotFound) && l.LogLevel >= gormlogger.Error:
		log.ErrorContext(ctx, "쿼리 실행 실패", append(fields, "error", err)...)
	case slow && l.LogLevel >= gormlogger.Warn:
		log.WarnContext(ctx, "슬로우 쿼리 감지", append(fields, "threshold", l.SlowThreshold.String())...)
	case l.LogLevel >= gormlogger.Info:
		log.DebugContext(ctx, "쿼리 실행", fields...)
	}
}
