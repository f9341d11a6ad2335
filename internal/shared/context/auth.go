package context

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sumcoda/boardbuddy/go-api-server/internal/shared/logger"
	"github.com/sumcoda/boardbuddy/go-api-server/internal/shared/response"
)

// Context keys for storing user authentication information
const (
	MemberIDKey = "member_id"
	UsernameKey = "username"
)

func GetUsername(c *gin.Context) (string, bool) {
	value, exists := c.Get(UsernameKey)
	if !exists {
		return "", false
	}

	username, ok := value.(string)
	if !ok || username == "" {
		return "", false
	}

	return username, true
}

// RequireUsername retrieves the authenticated user's username from the Gin context.
// If it is missing, an authentication failure is sent and false is returned.
func RequireUsername(c *gin.Context) (string, bool) {
	username, ok := GetUsername(c)
	if !ok {
		response.Failure(c, http.StatusUnauthorized, "로그인을 해주세요.")
		c.Abort()
		logger.FromContext(c.Request.Context()).Error("[API] context에 회원 아이디가 존재하지 않습니다.")
		return "", false
	}
	return username, true
}
