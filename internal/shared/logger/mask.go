package logger

import "strings"

const masked = "***"

// keepPrefix keeps the first n runes of s and masks the rest; values no longer than n are fully masked.
func keepPrefix(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return masked
	}
	return string(runes[:n]) + masked
}

// Example: john.doe@gmail.com -> j***@gmail.com
func MaskEmail(email string) string {
	if email == "" {
		return ""
	}

	local, domain, ok := strings.Cut(email, "@")
	if !ok || strings.Contains(domain, "@") {
		return masked + "@" + masked
	}
	if local == "" {
		return masked + "@" + domain
	}
	return keepPrefix(local, 1) + "@" + domain
}

// Example: boardbuddy -> bo***
func MaskUsername(username string) string {
	return keepPrefix(username, 2)
}

// Example: 010-1234-5678 -> 010-****-5678
func MaskPhone(phone string) string {
	digits := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, phone)
	if len(digits) < 10 {
		return masked
	}
	return digits[:3] + "-****-" + digits[len(digits)-4:]
}
