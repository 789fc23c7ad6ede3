package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gpulab/manager-go/config"
	"github.com/gpulab/manager-go/response"
)

// GatewayAuth admits only the chat gateway, which has already authenticated
// the human and attaches their claims to each request body.
func GatewayAuth() gin.HandlerFunc {
	return tokenAuth("X-Gateway-Token", func() string { return config.GatewayToken })
}

// WorkerAuth admits worker agents announcing themselves on /join.
func WorkerAuth() gin.HandlerFunc {
	return tokenAuth("X-Worker-Token", func() string { return config.WorkerToken })
}

func tokenAuth(header string, token func() string) gin.HandlerFunc {
	return func(c *gin.Context) {
		expected := token()
		if expected == "" {
			c.AbortWithStatusJSON(http.StatusServiceUnavailable, response.ErrorResponse{Error: "shared token not configured"})
			return
		}
		got := c.GetHeader(header)
		if subtle.ConstantTimeCompare([]byte(got), []byte(expected)) != 1 {
			c.AbortWithStatusJSON(http.StatusUnauthorized, response.ErrorResponse{Error: "invalid token"})
			return
		}
		c.Next()
	}
}
