package router

import (
	"github.com/routinemonitor/backend/internal/application"
	"github.com/routinemonitor/backend/internal/container"
	pginfra "github.com/routinemonitor/backend/internal/infrastructure/postgres"
	handlers "github.com/routinemonitor/backend/internal/interface/http"
	"github.com/routinemonitor/backend/internal/router/modules"
)

// InitModules builds every feature module from the container singletons and
// registers it with the router registry. Called once during startup.
func InitModules(r *Registry) {
	pool := container.GetPGPool()
	logger := container.GetLogger()
	jwt := container.GetJWT()
	cfg := container.GetConfig()

	users := pginfra.NewUserRepository(pool)
	tasks := pginfra.NewTaskRepository(pool)
	members := pginfra.NewTeamMemberRepository(pool)

	authSvc := application.NewAuthService(users, jwt, logger)
	taskSvc := application.NewTaskService(tasks, users, logger)
	teamSvc := application.NewTeamService(members, container.GetES(), cfg.ESTeamIndex, logger)
	userSvc := application.NewUserService(users)

	r.Add(modules.NewAuthModule(handlers.NewAuthHandler(authSvc, logger), jwt))
	r.Add(modules.NewTaskModule(handlers.NewTaskHandler(taskSvc, logger), jwt))
	r.Add(modules.NewTeamModule(handlers.NewTeamHandler(teamSvc, logger), jwt))
	r.Add(modules.NewUserModule(handlers.NewUserHandler(userSvc, logger), jwt))
}
