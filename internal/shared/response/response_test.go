package response_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/sumcoda/boardbuddy/go-api-server/internal/shared/response"
)

func TestForHTTPStatus(t *testing.T) {
	assert.Equal(t, response.StatusFailure, response.ForHTTPStatus(http.StatusConflict, "dup").Status)
	assert.Equal(t, response.StatusError, response.ForHTTPStatus(http.StatusInternalServerError, "boom").Status)
}

func TestSuccess_WritesEnvelope(t *testing.T) {
	gin.SetMode(gin.TestMode)
	recorder := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(recorder)

	response.Success(c, http.StatusOK, gin.H{"radius": 5}, "반경 설정에 성공하였습니다.")

	require.Equal(t, http.StatusOK, recorder.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	assert.Equal(t, "success", body["status"])
	assert.Equal(t, "반경 설정에 성공하였습니다.", body["message"])
	assert.Equal(t, float64(5), body["data"].(map[string]any)["radius"])
}

func TestFailure_DataIsNull(t *testing.T) {
	gin.SetMode(gin.TestMode)
	recorder := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(recorder)

	response.Failure(c, http.StatusBadRequest, "잘못된 요청입니다.")

	var body map[string]any
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	assert.Equal(t, "failure", body["status"])
	assert.Nil(t, body["data"])
	assert.Contains(t, body, "data")
}
