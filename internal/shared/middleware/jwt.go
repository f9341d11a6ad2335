package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	sharedContext "github.com/sumcoda/boardbuddy/go-api-server/internal/shared/context"
	sharedError "github.com/sumcoda/boardbuddy/go-api-server/internal/shared/error"
	"github.com/sumcoda/boardbuddy/go-api-server/internal/shared/logger"
	"github.com/sumcoda/boardbuddy/go-api-server/internal/shared/response"
	"github.com/sumcoda/boardbuddy/go-api-server/internal/shared/token"
)

const (
	AuthorizationHeader = "Authorization"
	BearerScheme        = "Bearer"
)

// JWT error constants (errInfo)
const (
	missingToken  = "MISSING_TOKEN"
	invalidToken  = "INVALID_TOKEN"
	expiredToken  = "EXPIRED_TOKEN"
	invalidClaims = "INVALID_CLAIMS"
)

var (
	ErrMissingToken  = sharedError.NewDomainError(missingToken)
	ErrInvalidToken  = sharedError.NewDomainError(invalidToken)
	ErrExpiredToken  = sharedError.NewDomainError(expiredToken)
	ErrInvalidClaims = sharedError.NewDomainError(invalidClaims)
)

// 토큰 오류는 모두 같은 메시지로 응답한다
func init() {
	for errInfo, code := range map[string]string{
		missingToken:  "AUTH-010",
		invalidToken:  "AUTH-011",
		expiredToken:  "AUTH-012",
		invalidClaims: "AUTH-013",
	} {
		sharedError.RegisterDomainErrorResponse(errInfo, sharedError.ErrorResponse{
			Status:  http.StatusUnauthorized,
			Code:    code,
			Message: "로그인을 해주세요.",
		})
	}
}

// JWT authenticates the bearer access token and stores member id and username in the gin context.
func JWT(tokenManager token.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		log := logger.FromContext(c.Request.Context()).With(
			"client_ip", c.ClientIP(),
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
		)

		raw, err := extractToken(c)
		if err != nil {
			log.Warn("JWT 토큰 추출 실패", "error", err.Error())
			abortUnauthorized(c, err)
			return
		}

		claims, err := tokenManager.ValidateToken(raw)
		if err != nil {
			log.Warn("JWT 토큰 검증 실패", "error", err.Error())
			abortUnauthorized(c, mapTokenError(err))
			return
		}

		c.Set(sharedContext.MemberIDKey, claims.MemberID)
		c.Set(sharedContext.UsernameKey, claims.Username)
		c.Request = c.Request.WithContext(logger.With(c.Request.Context(), "member_id", claims.MemberID))
		c.Next()
	}
}

func abortUnauthorized(c *gin.Context, err error) {
	resp, ok := sharedError.ResolveDomainError(err)
	if !ok {
		resp = sharedError.ErrorResponse{Status: http.StatusUnauthorized, Code: "AUTH-019", Message: "인증에 실패했습니다."}
	}
	c.Set(sharedError.CodeKey, resp.Code)
	response.Failure(c, resp.Status, resp.Message)
	c.Abort()
}

func extractToken(c *gin.Context) (string, error) {
	authHeader := c.GetHeader(AuthorizationHeader)
	if authHeader == "" {
		return "", ErrMissingToken
	}

	scheme, credentials, found := strings.Cut(authHeader, " ")
	if !found || !strings.EqualFold(scheme, BearerScheme) || strings.TrimSpace(credentials) == "" {
		return "", ErrInvalidToken
	}

	return strings.TrimSpace(credentials), nil
}

func mapTokenError(err error) error {
	switch {
	case errors.Is(err, token.ErrExpiredToken):
		return ErrExpiredToken
	case errors.Is(err, token.ErrInvalidClaims):
		return ErrInvalidClaims
	default:
		return ErrInvalidToken
	}
}
