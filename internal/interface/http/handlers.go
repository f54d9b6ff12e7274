package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/routinemonitor/backend/internal/application"
	"github.com/routinemonitor/backend/internal/domain/entity"
)

// statusFor maps application errors to HTTP statuses. Not-found and
// forbidden stay distinct all the way to the wire.
func statusFor(err error) int {
	switch {
	case errors.Is(err, application.ErrEmailExists):
		return http.StatusConflict
	case errors.Is(err, application.ErrInvalidCredentials):
		return http.StatusUnauthorized
	case errors.Is(err, application.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, application.ErrUserNotFound),
		errors.Is(err, application.ErrTaskNotFound),
		errors.Is(err, application.ErrTeamMemberNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// parseDueDate accepts RFC3339 or a bare local datetime.
func parseDueDate(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02T15:04:05"} {
		if t, err := time.Parse(layout, s); err == nil {
			return &t, nil
		}
	}
	return nil, errors.New("due_date must be an ISO 8601 datetime")
}

func taskJSON(t *entity.Task) gin.H {
	return gin.H{
		"id":          t.ID,
		"title":       t.Title,
		"description": t.Description,
		"status":      t.Status,
		"priority":    t.Priority,
		"due_date":    t.DueDate,
		"user_id":     t.UserID,
		"created_at":  t.CreatedAt,
		"updated_at":  t.UpdatedAt,
	}
}

func tasksJSON(tasks []*entity.Task) []gin.H {
	out := make([]gin.H, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, taskJSON(t))
	}
	return out
}

func memberJSON(m *entity.TeamMember) gin.H {
	return gin.H{
		"id":        m.ID,
		"name":      m.Name,
		"email":     m.Email,
		"phone":     m.Phone,
		"role":      m.Role,
		"status":    m.Status,
		"avatar":    m.AvatarURL,
		"join_date": m.JoinDate,
	}
}

func membersJSON(members []*entity.TeamMember) []gin.H {
	out := make([]gin.H, 0, len(members))
	for _, m := range members {
		out = append(out, memberJSON(m))
	}
	return out
}

func userJSON(u *entity.User) gin.H {
	return gin.H{
		"id":         u.ID,
		"first_name": u.FirstName,
		"last_name":  u.LastName,
		"email":      u.Email,
		"phone":      u.Phone,
		"gender":     u.Gender,
		"avatar":     u.AvatarURL,
		"is_active":  u.IsActive,
		"created_at": u.CreatedAt,
		"updated_at": u.UpdatedAt,
	}
}

func usersJSON(users []*entity.User) []gin.H {
	out := make([]gin.H, 0, len(users))
	for _, u := range users {
		out = append(out, userJSON(u))
	}
	return out
}
