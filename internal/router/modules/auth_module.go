package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/routinemonitor/backend/internal/container"
	handlers "github.com/routinemonitor/backend/internal/interface/http"
	"github.com/routinemonitor/backend/internal/interface/middleware"
	"github.com/routinemonitor/backend/pkg/helpers"
)

// AuthModule wires the public register/login endpoints.
// Both are rate-limited per IP; registration tighter than login.
type AuthModule struct {
	Handler *handlers.AuthHandler
	JWT     *helpers.JWTManager
}

func NewAuthModule(h *handlers.AuthHandler, jwt *helpers.JWTManager) *AuthModule {
	return &AuthModule{Handler: h, JWT: jwt}
}

func (m *AuthModule) Register(rg *gin.RouterGroup) {
	registerLimiter := middleware.RateLimit(container.GetRedis(), 5, time.Minute, middleware.KeyByIPAndPath(), nil)
	loginLimiter := middleware.RateLimit(container.GetRedis(), 10, time.Minute, middleware.KeyByIP(), nil)

	rg.POST("/auth/register", registerLimiter, m.Handler.Register)
	rg.POST("/auth/login", loginLimiter, m.Handler.Login)
}
