package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/routinemonitor/backend/pkg/helpers"
	"github.com/routinemonitor/backend/pkg/response"
)

const (
	// CtxUserEmailKey is the Gin context key holding the verified token
	// subject for the current request.
	CtxUserEmailKey = "userEmail"

	bearerPrefix = "Bearer "
)

// Auth validates the bearer token from the Authorization header and injects
// the caller's email (the token subject) into the Gin context. Any token
// failure, expiry included, yields an unauthenticated response.
func Auth(jwt *helpers.JWTManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" || !strings.HasPrefix(header, bearerPrefix) {
			response.Error[any](c, http.StatusUnauthorized, "missing bearer token", nil)
			c.Abort()
			return
		}
		subject, err := jwt.Verify(strings.TrimPrefix(header, bearerPrefix))
		if err != nil {
			response.Error[any](c, http.StatusUnauthorized, "invalid token", err.Error())
			c.Abort()
			return
		}
		c.Set(CtxUserEmailKey, subject)
		c.Next()
	}
}

// CallerEmail returns the authenticated caller's email set by Auth.
func CallerEmail(c *gin.Context) string {
	return c.GetString(CtxUserEmailKey)
}
