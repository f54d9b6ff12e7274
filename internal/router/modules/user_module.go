package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/routinemonitor/backend/internal/container"
	handlers "github.com/routinemonitor/backend/internal/interface/http"
	"github.com/routinemonitor/backend/internal/interface/middleware"
	"github.com/routinemonitor/backend/pkg/helpers"
)

// UserModule wires the account-directory endpoints and the caller's profile
// view behind bearer auth.
type UserModule struct {
	Handler *handlers.UserHandler
	JWT     *helpers.JWTManager
}

func NewUserModule(h *handlers.UserHandler, jwt *helpers.JWTManager) *UserModule {
	return &UserModule{Handler: h, JWT: jwt}
}

func (m *UserModule) Register(rg *gin.RouterGroup) {
	auth := rg.Group("/")
	auth.Use(middleware.Auth(m.JWT))
	auth.Use(middleware.RateLimit(container.GetRedis(), 120, time.Minute, middleware.KeyByUser(), nil))
	{
		auth.GET("/profile", m.Handler.Profile)
		auth.GET("/users", m.Handler.List)
		auth.GET("/users/:id", m.Handler.Get)
		auth.GET("/users/email/:email", m.Handler.GetByEmail)
		auth.PUT("/users/:id", m.Handler.Update)
		auth.DELETE("/users/:id", m.Handler.Delete)
	}
}
