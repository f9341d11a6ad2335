package validator

import (
	"fmt"
	"log/slog"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var validations = map[string]validator.Func{
	"phone":    ValidatePhone,
	"username": ValidateUsername,
	"password": ValidatePassword,
}

// GetValidator returns the validator instance from Gin binding
func GetValidator() (*validator.Validate, error) {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return nil, fmt.Errorf("validator 엔진을 가져올 수 없습니다")
	}
	return v, nil
}

// RegisterAll registers the custom tags on Gin's binding engine.
func RegisterAll() error {
	v, err := GetValidator()
	if err != nil {
		return fmt.Errorf("validator 엔진 가져오기 실패: %w", err)
	}
	if err := Register(v); err != nil {
		return err
	}

	slog.Debug("공통 Validator 등록 완료", "validators", len(validations))
	return nil
}

// Register adds the custom tags to v and reports fields by their request name (json, form or uri tag).
func Register(v *validator.Validate) error {
	for tag, fn := range validations {
		if err := v.RegisterValidation(tag, fn); err != nil {
			return fmt.Errorf("%s validator 등록 실패: %w", tag, err)
		}
	}
	v.RegisterTagNameFunc(requestFieldName)
	return nil
}

func requestFieldName(field reflect.StructField) string {
	for _, key := range []string{"json", "form", "uri"} {
		name, _, _ := strings.Cut(field.Tag.Get(key), ",")
		if name == "-" {
			return ""
		}
		if name != "" {
			return name
		}
	}
	return field.Name
}
