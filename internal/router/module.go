package router

import "github.com/gin-gonic/gin"

// Module is one feature area (auth, tasks, team, users) that mounts its own
// routes on the shared API group.
type Module interface {
	Register(rg *gin.RouterGroup)
}
