package database_test

import (
	"context"
	"errors"
	"testing"
	"time"

	promtestutil "github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/sumcoda/boardbuddy/go-api-server/internal/model"
	"github.com/sumcoda/boardbuddy/go-api-server/internal/shared/database"
	"github.com/sumcoda/boardbuddy/go-api-server/internal/shared/metrics"
	"github.com/sumcoda/boardbuddy/go-api-server/internal/shared/testutil"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func newDistrict(name string) *model.PublicDistrict {
	return model.NewPublicDistrict("서울특별시", "강남구", name, 127.05, 37.51)
}

func countDistricts(t *testing.T, db *gorm.DB) int64 {
	t.Helper()

	var count int64
	require.NoError(t, db.Model(&model.PublicDistrict{}).Count(&count).Error)
	return count
}

func TestWithTransaction_Commit(t *testing.T) {
	db := testutil.SetupTestDB(t)

	err := database.WithTransaction(context.Background(), db, func(tx *gorm.DB) error {
		return tx.Create(newDistrict("삼성동")).Error
	})

	require.NoError(t, err)
	assert.Equal(t, int64(1), countDistricts(t, db))
}

func TestWithTransaction_RollbackOnError(t *testing.T) {
	db := testutil.SetupTestDB(t)
	errBoom := errors.New("boom")

	err := database.WithTransaction(context.Background(), db, func(tx *gorm.DB) error {
		if err := tx.Create(newDistrict("삼성동")).Error; err != nil {
			return err
		}
		return errBoom
	})

	assert.ErrorIs(t, err, errBoom)
	assert.Equal(t, int64(0), countDistricts(t, db))
}

func TestWithTransaction_RollbackOnPanic(t *testing.T) {
	db := testutil.SetupTestDB(t)

	assert.Panics(t, func() {
		_ = database.WithTransaction(context.Background(), db, func(tx *gorm.DB) error {
			if err := tx.Create(newDistrict("삼성동")).Error; err != nil {
				return err
			}
			panic("boom")
		})
	})

	assert.Equal(t, int64(0), countDistricts(t, db))
}

func TestWithTransaction_NilFunc(t *testing.T) {
	db := testutil.SetupTestDB(t)

	assert.Error(t, database.WithTransaction(context.Background(), db, nil))
	assert.Error(t, database.WithReadOnlyTransaction(context.Background(), db, nil))
}

func TestWithReadOnlyTransaction(t *testing.T) {
	db := testutil.SetupTestDB(t)
	require.NoError(t, db.Create(newDistrict("삼성동")).Error)

	var found model.PublicDistrict
	err := database.WithReadOnlyTransaction(context.Background(), db, func(tx *gorm.DB) error {
		return tx.Where("emd = ?", "삼성동").First(&found).Error
	})

	require.NoError(t, err)
	assert.Equal(t, "삼성동", found.Emd)
}

func TestMigrate(t *testing.T) {
	db := testutil.SetupTestDB(t)
	require.NoError(t, db.Create(newDistrict("삼성동")).Error)

	t.Run("disabled keeps data", func(t *testing.T) {
		cfg := testutil.NewTestConfig()
		cfg.Database.IsAutoMigrate = false

		require.NoError(t, database.Migrate(db, cfg))
		assert.Equal(t, int64(1), countDistricts(t, db))
	})

	t.Run("refused in production", func(t *testing.T) {
		cfg := testutil.NewTestConfig()
		cfg.App.Env = "prod"

		assert.Error(t, database.Migrate(db, cfg))
		assert.Equal(t, int64(1), countDistricts(t, db))
	})

	t.Run("recreates tables", func(t *testing.T) {
		require.NoError(t, database.Migrate(db, testutil.NewTestConfig()))
		assert.Equal(t, int64(0), countDistricts(t, db))
		assert.True(t, db.Migrator().HasTable(&model.MemberGatherArticle{}))
	})
}

func TestGormLogger_CountsSlowQueries(t *testing.T) {
	l := &database.GormLogger{SlowThreshold: time.Millisecond, LogLevel: gormlogger.Warn}
	before := promtestutil.ToFloat64(metrics.DBSlowQueriesTotal)

	l.Trace(context.Background(), time.Now().Add(-time.Second), func() (string, int64) {
		return "SELECT 1", 1
	}, nil)
	l.Trace(context.Background(), time.Now(), func() (string, int64) {
		return "SELECT 1", 1
	}, nil)

	assert.Equal(t, before+1, promtestutil.ToFloat64(metrics.DBSlowQueriesTotal))
}

func TestGormLogger_LogMode(t *testing.T) {
	l := &database.GormLogger{LogLevel: gormlogger.Info}

	silent := l.LogMode(gormlogger.Silent).(*database.GormLogger)

	assert.Equal(t, gormlogger.Silent, silent.LogLevel)
	assert.Equal(t, gormlogger.Info, l.LogLevel)
}
