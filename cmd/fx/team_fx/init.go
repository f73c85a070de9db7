package team_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"minutely/internal/api/controllers"
	"minutely/internal/repositories"
	"minutely/internal/services"
)

var Module = fx.Provide(
	provideTeamRepo, provideTeamService, controllers.NewTeamController)

func provideTeamRepo(db *gorm.DB) repositories.TeamMemberRepository {
	return repositories.NewTeamMemberRepository(db)
}

func provideTeamService(teamRepo repositories.TeamMemberRepository) services.TeamServiceInterface {
	return services.NewTeamService(teamRepo)
}
