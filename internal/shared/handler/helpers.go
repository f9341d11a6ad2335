package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	sharedError "github.com/sumcoda/boardbuddy/go-api-server/internal/shared/error"
	"github.com/sumcoda/boardbuddy/go-api-server/internal/shared/response"
	"github.com/sumcoda/boardbuddy/go-api-server/internal/shared/validator"
)

// BindJSON parses and validates JSON request body
// Returns true if binding succeeded, false if failed (response already sent)
//
// Usage:
//
//	var req RegisterRequest
//	if !handler.BindJSON(c, &req) {
//	    return
//	}
func BindJSON(c *gin.Context, obj any) bool {
	return bind(c, c.ShouldBindJSON(obj))
}

// Bind parses and validates the body using the request Content-Type (multipart forms included)
func Bind(c *gin.Context, obj any) bool {
	return bind(c, c.ShouldBind(obj))
}

// BindURI parses and validates path parameters
func BindURI(c *gin.Context, obj any) bool {
	return bind(c, c.ShouldBindUri(obj))
}

func bind(c *gin.Context, err error) bool {
	if err == nil {
		return true
	}

	// Add error to context for middleware logging
	c.Error(err)

	// Check if it's a validation error
	if resp, ok := validator.ToErrorResponse(err); ok {
		c.Set(sharedError.CodeKey, resp.Code)
		response.Failure(c, http.StatusBadRequest, resp.Message)
	} else {
		// JSON parsing error or other binding errors
		c.Set(sharedError.CodeKey, sharedError.InvalidRequest.Code)
		response.Failure(c, sharedError.InvalidRequest.Status, sharedError.InvalidRequest.Message)
	}
	return false
}

// RespondError sends an error envelope with logging
//
// Usage:
//
//	if err := service.DoSomething(); err != nil {
//	    handler.RespondError(c, err, sharedError.InternalServerError)
//	    return
//	}
func RespondError(c *gin.Context, err error, errResp sharedError.ErrorResponse) {
	// Add error to context for middleware logging
	c.Error(err)
	c.Set(sharedError.CodeKey, errResp.Code)

	c.JSON(errResp.Status, response.ForHTTPStatus(errResp.Status, errResp.Message))
}

// RespondServiceError resolves a registered domain error, falling back to InternalServerError
func RespondServiceError(c *gin.Context, err error) {
	if resp, ok := sharedError.ResolveDomainError(err); ok {
		RespondError(c, err, resp)
		return
	}

	RespondError(c, err, sharedError.InternalServerError)
}
