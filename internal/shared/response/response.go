package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Status is the outcome carried by every API response envelope.
type Status string

const (
	StatusSuccess Status = "success"
	StatusFailure Status = "failure"
	StatusError   Status = "error"
)

// Envelope is the uniform response body: data is null unless the request succeeded.
type Envelope struct {
	Status  Status `json:"status"`
	Data    any    `json:"data"`
	Message string `json:"message"`
}

func NewSuccess(data any, message string) Envelope {
	return Envelope{Status: StatusSuccess, Data: data, Message: message}
}

func NewFailure(message string) Envelope {
	return Envelope{Status: StatusFailure, Message: message}
}

func NewError(message string) Envelope {
	return Envelope{Status: StatusError, Message: message}
}

// ForHTTPStatus picks FAILURE for client errors and ERROR for server errors.
func ForHTTPStatus(httpStatus int, message string) Envelope {
	if httpStatus >= http.StatusInternalServerError {
		return NewError(message)
	}
	return NewFailure(message)
}

func Success(c *gin.Context, httpStatus int, data any, message string) {
	c.JSON(httpStatus, NewSuccess(data, message))
}

func Failure(c *gin.Context, httpStatus int, message string) {
	c.JSON(httpStatus, NewFailure(message))
}

func Error(c *gin.Context, httpStatus int, message string) {
	c.JSON(httpStatus, NewError(message))
}
