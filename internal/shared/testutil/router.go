package testutil

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	sharedContext "github.com/sumcoda/boardbuddy/go-api-server/internal/shared/context"
	"github.com/sumcoda/boardbuddy/go-api-server/internal/shared/validator"
)

// SetupTestRouter creates a test Gin router without middleware
func SetupTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)

	// Register custom validators for testing
	_ = validator.RegisterAll()

	return gin.New()
}

// AuthenticateAs stands in for the JWT middleware in handler tests.
func AuthenticateAs(memberID, username string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(sharedContext.MemberIDKey, memberID)
		c.Set(sharedContext.UsernameKey, username)
		c.Next()
	}
}

// MakeRequest is a helper to make HTTP requests in tests
type TestRequest struct {
	Method string
	URL    string
	Body   interface{}
}

// ExecuteRequest executes a test HTTP request and returns the response
func ExecuteRequest(t *testing.T, router *gin.Engine, req TestRequest) *httptest.ResponseRecorder {
	t.Helper()

	var bodyReader io.Reader
	if req.Body != nil {
		bodyBytes, err := json.Marshal(req.Body)
		if err != nil {
			t.Fatalf("Failed to marshal request body: %v", err)
		}
		bodyReader = bytes.NewReader(bodyBytes)
	}

	httpReq := httptest.NewRequest(req.Method, req.URL, bodyReader)
	httpReq.Header.Set("Content-Type", "application/json")

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httpReq)

	return recorder
}

// MultipartFile is a file part of a multipart test request
type MultipartFile struct {
	Field    string
	Filename string
	Content  []byte
}

// ExecuteMultipartRequest sends form fields and files as multipart/form-data
func ExecuteMultipartRequest(t *testing.T, router *gin.Engine, method, url string, fields map[string]string, files ...MultipartFile) *httptest.ResponseRecorder {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	for k, v := range fields {
		if err := writer.WriteField(k, v); err != nil {
			t.Fatalf("Failed to write form field %s: %v", k, err)
		}
	}
	for _, f := range files {
		part, err := writer.CreateFormFile(f.Field, f.Filename)
		if err != nil {
			t.Fatalf("Failed to create form file %s: %v", f.Field, err)
		}
		if _, err := part.Write(f.Content); err != nil {
			t.Fatalf("Failed to write form file %s: %v", f.Field, err)
		}
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("Failed to close multipart writer: %v", err)
	}

	httpReq := httptest.NewRequest(method, url, body)
	httpReq.Header.Set("Content-Type", writer.FormDataContentType())

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httpReq)

	return recorder
}

// ParseResponse parses the JSON response body into the given struct
func ParseResponse(t *testing.T, recorder *httptest.ResponseRecorder, v interface{}) {
	t.Helper()

	if err := json.Unmarshal(recorder.Body.Bytes(), v); err != nil {
		t.Fatalf("Failed to parse response body: %v", err)
	}
}
