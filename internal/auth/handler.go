package auth

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sumcoda/boardbuddy/go-api-server/internal/shared/handler"
	"github.com/sumcoda/boardbuddy/go-api-server/internal/shared/response"
)

type AuthHandler struct {
	authService *AuthService
}

func NewAuthHandler(authService *AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

func (a *AuthHandler) Login(c *gin.Context) {
	var request LoginRequest

	// Parse and validate JSON request
	if !handler.BindJSON(c, &request) {
		return
	}

	tokens, err := a.authService.Login(c.Request.Context(), &request)
	if err != nil {
		handler.RespondServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, tokens, "로그인에 성공했습니다.")
}
