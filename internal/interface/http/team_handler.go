package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/routinemonitor/backend/internal/application"
	"github.com/routinemonitor/backend/pkg/response"
	"github.com/routinemonitor/backend/pkg/validation"
)

type TeamHandler struct {
	Svc    *application.TeamService
	Logger *logrus.Logger
}

func NewTeamHandler(svc *application.TeamService, logger *logrus.Logger) *TeamHandler {
	return &TeamHandler{Svc: svc, Logger: logger}
}

type teamMemberRequest struct {
	Name  string `json:"name" binding:"required,max=100"`
	Email string `json:"email" binding:"required,email"`
	Phone string `json:"phone" binding:"omitempty,e164"`
	Role  string `json:"role" binding:"required"`
}

func (r teamMemberRequest) input() application.TeamMemberInput {
	return application.TeamMemberInput{Name: r.Name, Email: r.Email, Phone: r.Phone, Role: r.Role}
}

// List GET /api/team
func (h *TeamHandler) List(c *gin.Context) {
	members, err := h.Svc.List(c.Request.Context())
	if err != nil {
		response.Error[any](c, statusFor(err), err.Error(), nil)
		return
	}
	response.Success(c, http.StatusOK, membersJSON(members), "team members")
}

// Create POST /api/team
func (h *TeamHandler) Create(c *gin.Context) {
	var req teamMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	m, err := h.Svc.Create(c.Request.Context(), req.input())
	if err != nil {
		response.Error[any](c, statusFor(err), err.Error(), nil)
		return
	}
	response.Success(c, http.StatusCreated, memberJSON(m), "team member created")
}

// Update PUT /api/team/:id
func (h *TeamHandler) Update(c *gin.Context) {
	var req teamMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	m, err := h.Svc.Update(c.Request.Context(), c.Param("id"), req.input())
	if err != nil {
		response.Error[any](c, statusFor(err), err.Error(), nil)
		return
	}
	response.Success(c, http.StatusOK, memberJSON(m), "team member updated")
}

// Delete DELETE /api/team/:id
func (h *TeamHandler) Delete(c *gin.Context) {
	if err := h.Svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		response.Error[any](c, statusFor(err), err.Error(), nil)
		return
	}
	response.Success[any](c, http.StatusOK, gin.H{"deleted": true}, "team member deleted")
}

// Search GET /api/team/search?query=
func (h *TeamHandler) Search(c *gin.Context) {
	query := c.Query("query")
	if query == "" {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", map[string]string{"query": "is required"})
		return
	}
	members, err := h.Svc.Search(c.Request.Context(), query)
	if err != nil {
		response.Error[any](c, statusFor(err), err.Error(), nil)
		return
	}
	response.Success(c, http.StatusOK, membersJSON(members), "search results")
}
