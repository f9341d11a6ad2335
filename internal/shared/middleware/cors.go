package middleware

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sumcoda/boardbuddy/go-api-server/internal/config"
)

// CORS lets browser clients read the request id and send bearer tokens.
// A single "*" origin allows every origin.
func CORS(cfg config.CORSConfig) gin.HandlerFunc {
	corsConfig := cors.Config{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowMethods:     cfg.AllowedMethods,
		AllowHeaders:     withHeaders(cfg.AllowedHeaders, AuthorizationHeader, RequestIDHeader),
		ExposeHeaders:    []string{RequestIDHeader},
		AllowCredentials: cfg.AllowCredentials,
		MaxAge:           time.Duration(cfg.MaxAge) * time.Second,
	}

	if len(corsConfig.AllowOrigins) == 1 && corsConfig.AllowOrigins[0] == "*" {
		corsConfig.AllowAllOrigins = true
		corsConfig.AllowOrigins = nil
	}

	return cors.New(corsConfig)
}

func withHeaders(headers []string, required ...string) []string {
	out := append([]string(nil), headers...)
	for _, h := range required {
		found := false
		for _, existing := range out {
			if existing == "*" || existing == h {
				found = true
				break
			}
		}
		if !found {
			out = append(out, h)
		}
	}
	return out
}
