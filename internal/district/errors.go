package district

import (
	"errors"
	"net/http"

	sharedError "github.com/sumcoda/boardbuddy/go-api-server/internal/shared/error"
)

const (
	publicDistrictRetrieval = "PUBLIC_DISTRICT_RETRIEVAL" // errInfo
)

var (
	ErrPublicDistrictRetrieval = sharedError.NewDomainError(publicDistrictRetrieval)

	// ErrCacheMiss is returned by the cache when the key is absent or redis is not configured.
	ErrCacheMiss = errors.New("district: cache miss")
)

func init() {
	sharedError.RegisterDomainErrorResponse(publicDistrictRetrieval, sharedError.ErrorResponse{
		Status:  http.StatusInternalServerError,
		Code:    "DISTRICT-001",
		Message: "입력한 위치 정보를 찾을 수 없습니다. 관리자에게 문의하세요.",
	})
}
