package meta_test

import (
	"net/http"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/sumcoda/boardbuddy/go-api-server/internal/meta"
	"github.com/sumcoda/boardbuddy/go-api-server/internal/shared/database"
	"github.com/sumcoda/boardbuddy/go-api-server/internal/shared/response"
	"github.com/sumcoda/boardbuddy/go-api-server/internal/shared/testutil"
)

type healthEnvelope struct {
	Status  response.Status     `json:"status"`
	Data    meta.HealthResponse `json:"data"`
	Message string              `json:"message"`
}

func healthRequest(t *testing.T, handler *meta.Handler) (int, healthEnvelope) {
	t.Helper()

	router := testutil.SetupTestRouter()
	router.GET("/health", handler.Health)
	recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{Method: http.MethodGet, URL: "/health"})

	var body healthEnvelope
	testutil.ParseResponse(t, recorder, &body)
	return recorder.Code, body
}

func TestHealth_AllUp(t *testing.T) {
	// Given
	db := testutil.SetupDatabase(t)
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	// When
	code, body := healthRequest(t, meta.NewHandler(testutil.NewTestConfig(), db, client))

	// Then
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, response.StatusSuccess, body.Status)
	assert.Equal(t, "up", body.Data.Checks["database"].Status)
	assert.Equal(t, "up", body.Data.Checks["redis"].Status)
}

func TestHealth_RedisDisabled(t *testing.T) {
	db := testutil.SetupDatabase(t)

	code, body := healthRequest(t, meta.NewHandler(testutil.NewTestConfig(), db, nil))

	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "disabled", body.Data.Checks["redis"].Status)
}

func TestHealth_RedisDownIsDegradedNotFailed(t *testing.T) {
	db := testutil.SetupDatabase(t)
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr(), MaxRetries: -1})
	t.Cleanup(func() { _ = client.Close() })
	mr.Close()

	code, body := healthRequest(t, meta.NewHandler(testutil.NewTestConfig(), db, client))

	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "down", body.Data.Checks["redis"].Status)
	assert.NotEmpty(t, body.Data.Checks["redis"].Error)
}

func TestHealth_DatabaseDown(t *testing.T) {
	gormDB := testutil.SetupTestDB(t)
	sqlDB, err := gormDB.DB()
	require.NoError(t, err)
	require.NoError(t, sqlDB.Close())

	code, body := healthRequest(t, meta.NewHandler(testutil.NewTestConfig(), &database.DB{DB: gormDB}, nil))

	assert.Equal(t, http.StatusServiceUnavailable, code)
	assert.Equal(t, response.StatusError, body.Status)
	assert.Equal(t, "down", body.Data.Checks["database"].Status)
}
