package validator_test

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	sharedError "github.com/sumcoda/boardbuddy/go-api-server/internal/shared/error"
	sharedValidator "github.com/sumcoda/boardbuddy/go-api-server/internal/shared/validator"
)

type messageForm struct {
	Nickname  string `validate:"omitempty,min=2,max=20"`
	ArticleID uint32 `validate:"omitempty,min=1,max=100"`
	Radius    int    `validate:"omitempty,oneof=2 5 7 10"`
	Email     string `validate:"omitempty,email"`
	Website   string `validate:"omitempty,url"`
}

func TestToErrorResponse(t *testing.T) {
	v := newValidate(t)

	tests := []struct {
		name string
		form messageForm
		want string
	}{
		{"string min", messageForm{Nickname: "a"}, "최소 2자 이상이어야 합니다."},
		{"string max", messageForm{Nickname: "abcdefghijklmnopqrstu"}, "최대 20자까지 입력 가능합니다."},
		{"number max", messageForm{ArticleID: 101}, "100 이하의 값을 입력해 주세요."},
		{"oneof", messageForm{Radius: 3}, "2 5 7 10 중 하나를 입력해 주세요."},
		{"tag message", messageForm{Email: "board"}, "이메일 형식이 올바르지 않습니다."},
		{"unknown tag", messageForm{Website: "board"}, "'Website' 필드가 올바르지 않습니다."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// when
			resp, ok := sharedValidator.ToErrorResponse(v.Struct(tt.form))

			// then
			assert.True(t, ok)
			assert.Equal(t, http.StatusBadRequest, resp.Status)
			assert.Equal(t, sharedError.ValidationFailed.Code, resp.Code)
			assert.Equal(t, tt.want, resp.Message)
		})
	}
}

func TestToErrorResponse_NotValidationError(t *testing.T) {
	_, ok := sharedValidator.ToErrorResponse(errors.New("unexpected EOF"))
	assert.False(t, ok)
}

func TestToErrorResponse_UsesRequestFieldName(t *testing.T) {
	v := newValidate(t)

	type profileForm struct {
		Website string `form:"website" validate:"url"`
	}

	resp, ok := sharedValidator.ToErrorResponse(v.Struct(profileForm{Website: "board"}))

	assert.True(t, ok)
	assert.Equal(t, "'website' 필드가 올바르지 않습니다.", resp.Message)
}
