package validator

import (
	"regexp"
	"unicode"

	"github.com/go-playground/validator/v10"
)

var (
	// phoneRegex matches Korean mobile numbers
	// Formats: 010-1234-5678 or 01012345678
	phoneRegex = regexp.MustCompile(`^01[0-9]-?[0-9]{4}-?[0-9]{4}$`)

	// usernameRegex: 영문 소문자로 시작, 영문 소문자/숫자 4~20자
	usernameRegex = regexp.MustCompile(`^[a-z][a-z0-9]{3,19}$`)
)

// ValidatePhone validates a Korean mobile phone number
// This is a common validator used across multiple domains
func ValidatePhone(fl validator.FieldLevel) bool {
	phone := fl.Field().String()
	return phoneRegex.MatchString(phone)
}

func ValidateUsername(fl validator.FieldLevel) bool {
	return usernameRegex.MatchString(fl.Field().String())
}

// ValidatePassword requires 8~20 characters with at least one letter, digit and special character.
func ValidatePassword(fl validator.FieldLevel) bool {
	password := fl.Field().String()
	length := len([]rune(password))
	if length < 8 || length > 20 {
		return false
	}

	var hasLetter, hasDigit, hasSpecial bool
	for _, r := range password {
		switch {
		case unicode.IsSpace(r):
			return false
		case r <= unicode.MaxASCII && unicode.IsLetter(r):
			hasLetter = true
		case unicode.IsDigit(r):
			hasDigit = true
		case unicode.IsPunct(r) || unicode.IsSymbol(r):
			hasSpecial = true
		}
	}
	return hasLetter && hasDigit && hasSpecial
}
