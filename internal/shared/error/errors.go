package error

import (
	"net/http"
)

// CodeKey is the gin context key holding the code of the error response sent for the request.
const CodeKey = "error_code"

type DomainError interface {
	error
	Info() string
}

type domainSentinel struct {
	errInfo string
}

func (e *domainSentinel) Error() string {
	return e.errInfo
}

func (e *domainSentinel) Info() string {
	return e.errInfo
}

// ErrorResponse maps a domain error to its HTTP status, log code and client message.
type ErrorResponse struct {
	Status  int
	Code    string
	Message string
}

var (
	domainErrorResponses = map[string]ErrorResponse{}

	// ValidationFailed indicates the request payload failed validation
	ValidationFailed = ErrorResponse{
		Status:  http.StatusBadRequest,
		Code:    "ERROR-001",
		Message: "잘못된 요청입니다.",
	}

	// InvalidRequest indicates the request format is invalid (e.g., JSON parsing error)
	InvalidRequest = ErrorResponse{
		Status:  http.StatusBadRequest,
		Code:    "ERROR-002",
		Message: "잘못된 요청 형식입니다.",
	}

	InternalServerError = ErrorResponse{
		Status:  http.StatusInternalServerError,
		Code:    "ERROR-003",
		Message: "서버 내부 오류가 발생했습니다.",
	}

	RouteNotFound = ErrorResponse{
		Status:  http.StatusNotFound,
		Code:    "ERROR-004",
		Message: "요청한 경로를 찾을 수 없습니다.",
	}

	MethodNotAllowed = ErrorResponse{
		Status:  http.StatusMethodNotAllowed,
		Code:    "ERROR-005",
		Message: "지원하지 않는 HTTP 메서드입니다.",
	}

	RequestTimeout = ErrorResponse{
		Status:  http.StatusServiceUnavailable,
		Code:    "ERROR-006",
		Message: "요청 처리 시간이 초과되었습니다. 잠시 후 다시 시도해주세요.",
	}
)

// NewDomainError creates a sentinel error that can participate in error chains.
func NewDomainError(errInfo string) DomainError {
	return &domainSentinel{errInfo: errInfo}
}

// RegisterDomainErrorResponse registers a mapping between a domain error errInfo and a shared error response.
func RegisterDomainErrorResponse(errInfo string, resp ErrorResponse) {
	domainErrorResponses[errInfo] = resp
}

// ResolveDomainError returns the response of the first registered domain error in the chain.
// Chains built with several %w verbs are searched depth-first, left to right.
func ResolveDomainError(err error) (ErrorResponse, bool) {
	var resolved ErrorResponse
	found := walk(err, func(e error) bool {
		domainErr, ok := e.(DomainError)
		if !ok {
			return false
		}
		resp, registered := domainErrorResponses[domainErr.Info()]
		if registered {
			resolved = resp
		}
		return registered
	})
	return resolved, found
}

func walk(err error, visit func(error) bool) bool {
	if err == nil {
		return false
	}
	if visit(err) {
		return true
	}

	switch wrapped := err.(type) {
	case interface{ Unwrap() error }:
		return walk(wrapped.Unwrap(), visit)
	case interface{ Unwrap() []error }:
		for _, e := range wrapped.Unwrap() {
			if walk(e, visit) {
				return true
			}
		}
	}
	return false
}
