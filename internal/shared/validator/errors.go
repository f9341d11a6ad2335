package validator

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/go-playground/validator/v10"
	sharedError "github.com/sumcoda/boardbuddy/go-api-server/internal/shared/error"
)

var tagMessages = map[string]string{
	"required": "필수 항목을 입력해 주세요.",
	"email":    "이메일 형식이 올바르지 않습니다.",
	"phone":    "휴대폰 번호 형식이 올바르지 않습니다. (010-XXXX-XXXX)",
	"username": "아이디는 영문 소문자로 시작하는 4~20자의 영문 소문자, 숫자 조합이어야 합니다.",
	"password": "비밀번호는 영문, 숫자, 특수문자를 포함한 8~20자여야 합니다.",
}

// ToErrorResponse converts the first failed field of a validator error into a ValidationFailed response.
func ToErrorResponse(err error) (sharedError.ErrorResponse, bool) {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) || len(validationErrors) == 0 {
		return sharedError.ErrorResponse{}, false
	}

	resp := sharedError.ValidationFailed
	resp.Message = message(validationErrors[0])
	return resp, true
}

func message(fe validator.FieldError) string {
	if msg, ok := tagMessages[fe.Tag()]; ok {
		return msg
	}

	switch fe.Tag() {
	case "min":
		if isNumber(fe.Kind()) {
			return fmt.Sprintf("%s 이상의 값을 입력해 주세요.", fe.Param())
		}
		return fmt.Sprintf("최소 %s자 이상이어야 합니다.", fe.Param())
	case "max":
		if isNumber(fe.Kind()) {
			return fmt.Sprintf("%s 이하의 값을 입력해 주세요.", fe.Param())
		}
		return fmt.Sprintf("최대 %s자까지 입력 가능합니다.", fe.Param())
	case "oneof":
		return fmt.Sprintf("%s 중 하나를 입력해 주세요.", fe.Param())
	default:
		return fmt.Sprintf("'%s' 필드가 올바르지 않습니다.", fe.Field())
	}
}

func isNumber(kind reflect.Kind) bool {
	switch kind {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	default:
		return false
	}
}
