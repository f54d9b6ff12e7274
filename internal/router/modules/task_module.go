package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/routinemonitor/backend/internal/container"
	handlers "github.com/routinemonitor/backend/internal/interface/http"
	"github.com/routinemonitor/backend/internal/interface/middleware"
	"github.com/routinemonitor/backend/pkg/helpers"
)

// TaskModule wires the task CRUD endpoints. Everything is behind the bearer
// auth middleware; the service layer enforces per-task ownership on top.
type TaskModule struct {
	Handler *handlers.TaskHandler
	JWT     *helpers.JWTManager
}

func NewTaskModule(h *handlers.TaskHandler, jwt *helpers.JWTManager) *TaskModule {
	return &TaskModule{Handler: h, JWT: jwt}
}

func (m *TaskModule) Register(rg *gin.RouterGroup) {
	auth := rg.Group("/tasks")
	auth.Use(middleware.Auth(m.JWT))
	auth.Use(middleware.RateLimit(container.GetRedis(), 120, time.Minute, middleware.KeyByUser(), nil))
	{
		auth.GET("", m.Handler.List)
		auth.POST("", m.Handler.Create)
		auth.GET("/:id", m.Handler.Get)
		auth.PUT("/:id", m.Handler.Update)
		auth.PATCH("/:id/status", m.Handler.UpdateStatus)
		auth.DELETE("/:id", m.Handler.Delete)
	}
}
