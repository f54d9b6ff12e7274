package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/routinemonitor/backend/internal/application"
	"github.com/routinemonitor/backend/internal/domain/entity"
	"github.com/routinemonitor/backend/internal/interface/middleware"
	"github.com/routinemonitor/backend/pkg/response"
	"github.com/routinemonitor/backend/pkg/validation"
)

type TaskHandler struct {
	Svc    *application.TaskService
	Logger *logrus.Logger
}

func NewTaskHandler(svc *application.TaskService, logger *logrus.Logger) *TaskHandler {
	return &TaskHandler{Svc: svc, Logger: logger}
}

type taskRequest struct {
	Title       string `json:"title" binding:"required,max=200"`
	Description string `json:"description"`
	Priority    string `json:"priority" binding:"omitempty,oneof=low medium high urgent"`
	DueDate     string `json:"due_date"`
}

type taskStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// List GET /api/tasks
func (h *TaskHandler) List(c *gin.Context) {
	tasks, err := h.Svc.List(c.Request.Context(), middleware.CallerEmail(c))
	if err != nil {
		response.Error[any](c, statusFor(err), err.Error(), nil)
		return
	}
	response.Success(c, http.StatusOK, tasksJSON(tasks), "tasks")
}

// Create POST /api/tasks
func (h *TaskHandler) Create(c *gin.Context) {
	var req taskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	due, err := parseDueDate(req.DueDate)
	if err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", map[string]string{"due_date": err.Error()})
		return
	}

	t, err := h.Svc.Create(c.Request.Context(), middleware.CallerEmail(c), application.CreateTaskInput{
		Title:       req.Title,
		Description: req.Description,
		Priority:    entity.TaskPriority(req.Priority),
		DueDate:     due,
	})
	if err != nil {
		response.Error[any](c, statusFor(err), err.Error(), nil)
		return
	}
	response.Success(c, http.StatusCreated, taskJSON(t), "task created")
}

// Get GET /api/tasks/:id
func (h *TaskHandler) Get(c *gin.Context) {
	t, err := h.Svc.Get(c.Request.Context(), middleware.CallerEmail(c), c.Param("id"))
	if err != nil {
		response.Error[any](c, statusFor(err), err.Error(), nil)
		return
	}
	response.Success(c, http.StatusOK, taskJSON(t), "task")
}

// Update PUT /api/tasks/:id
func (h *TaskHandler) Update(c *gin.Context) {
	var req taskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	due, err := parseDueDate(req.DueDate)
	if err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", map[string]string{"due_date": err.Error()})
		return
	}

	t, err := h.Svc.Update(c.Request.Context(), middleware.CallerEmail(c), c.Param("id"), application.UpdateTaskInput{
		Title:       req.Title,
		Description: req.Description,
		Priority:    entity.TaskPriority(req.Priority),
		DueDate:     due,
	})
	if err != nil {
		response.Error[any](c, statusFor(err), err.Error(), nil)
		return
	}
	response.Success(c, http.StatusOK, taskJSON(t), "task updated")
}

// UpdateStatus PATCH /api/tasks/:id/status
func (h *TaskHandler) UpdateStatus(c *gin.Context) {
	var req taskStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	status := entity.TaskStatus(strings.ToLower(req.Status))
	if !status.Valid() {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", map[string]string{"status": "must be one of: todo, in_progress, completed"})
		return
	}

	t, err := h.Svc.UpdateStatus(c.Request.Context(), middleware.CallerEmail(c), c.Param("id"), status)
	if err != nil {
		response.Error[any](c, statusFor(err), err.Error(), nil)
		return
	}
	response.Success(c, http.StatusOK, taskJSON(t), "task status updated")
}

// Delete DELETE /api/tasks/:id
func (h *TaskHandler) Delete(c *gin.Context) {
	if err := h.Svc.Delete(c.Request.Context(), middleware.CallerEmail(c), c.Param("id")); err != nil {
		response.Error[any](c, statusFor(err), err.Error(), nil)
		return
	}
	response.Success[any](c, http.StatusOK, gin.H{"deleted": true}, "task deleted")
}
