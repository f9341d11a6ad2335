package auth

import (
	"net/http"

	sharedError "github.com/sumcoda/boardbuddy/go-api-server/internal/shared/error"
)

const (
	incorrectUsernamePassword = "INCORRECT_USERNAME_PASSWORD" // errInfo
)

var (
	ErrIncorrectUsernamePassword = sharedError.NewDomainError(incorrectUsernamePassword)
)

func init() {
	sharedError.RegisterDomainErrorResponse(incorrectUsernamePassword, sharedError.ErrorResponse{
		Status:  http.StatusUnauthorized,
		Code:    "AUTH-001",
		Message: "아이디 또는 비밀번호가 일치하지 않습니다.",
	})
}
