package validator_test

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	sharedValidator "github.com/sumcoda/boardbuddy/go-api-server/internal/shared/validator"
)

type form struct {
	Username string `validate:"omitempty,username"`
	Password string `validate:"omitempty,password"`
	Phone    string `validate:"omitempty,phone"`
}

func newValidate(t *testing.T) *validator.Validate {
	t.Helper()

	v := validator.New()
	assert.NoError(t, sharedValidator.Register(v))
	return v
}

func TestValidateUsername(t *testing.T) {
	v := newValidate(t)

	for _, ok := range []string{"buddy", "buddy01", "abcd"} {
		assert.NoError(t, v.Struct(form{Username: ok}), ok)
	}
	for _, bad := range []string{"abc", "1buddy", "Buddy", "buddy_01", "abcdefghijklmnopqrstu"} {
		assert.Error(t, v.Struct(form{Username: bad}), bad)
	}
}

func TestValidatePassword(t *testing.T) {
	v := newValidate(t)

	for _, ok := range []string{"a12345#!", "board#buddy1"} {
		assert.NoError(t, v.Struct(form{Password: ok}), ok)
	}
	for _, bad := range []string{"a1#", "abcdefgh", "12345678", "abcd1234", "abc 123#x", "a1#aaaaaaaaaaaaaaaaaaa"} {
		assert.Error(t, v.Struct(form{Password: bad}), bad)
	}
}

func TestValidatePhone(t *testing.T) {
	v := newValidate(t)

	assert.NoError(t, v.Struct(form{Phone: "010-1234-5678"}))
	assert.NoError(t, v.Struct(form{Phone: "01012345678"}))
	assert.Error(t, v.Struct(form{Phone: "02-123-4567"}))
}
