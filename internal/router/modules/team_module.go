package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/routinemonitor/backend/internal/container"
	handlers "github.com/routinemonitor/backend/internal/interface/http"
	"github.com/routinemonitor/backend/internal/interface/middleware"
	"github.com/routinemonitor/backend/pkg/helpers"
)

// TeamModule wires the team-directory endpoints behind bearer auth.
type TeamModule struct {
	Handler *handlers.TeamHandler
	JWT     *helpers.JWTManager
}

func NewTeamModule(h *handlers.TeamHandler, jwt *helpers.JWTManager) *TeamModule {
	return &TeamModule{Handler: h, JWT: jwt}
}

func (m *TeamModule) Register(rg *gin.RouterGroup) {
	auth := rg.Group("/team")
	auth.Use(middleware.Auth(m.JWT))
	auth.Use(middleware.RateLimit(container.GetRedis(), 120, time.Minute, middleware.KeyByUser(), nil))
	{
		auth.GET("", m.Handler.List)
		auth.POST("", m.Handler.Create)
		auth.GET("/search", m.Handler.Search)
		auth.PUT("/:id", m.Handler.Update)
		auth.DELETE("/:id", m.Handler.Delete)
	}
}
