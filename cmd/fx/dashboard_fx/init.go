package dashboard_fx

import (
	"go.uber.org/fx"

	"minutely/internal/api/controllers"
	"minutely/internal/repositories"
	"minutely/internal/services"
)

var Module = fx.Provide(
	provideDashboardService, controllers.NewDashboardController,
)

func provideDashboardService(
	meetingRepo repositories.MeetingRepository,
	taskRepo repositories.TaskRepository,
	teamRepo repositories.TeamMemberRepository,
	creditRepo repositories.CreditRepository,
) services.DashboardServiceInterface {
	return services.NewDashboardService(meetingRepo, taskRepo, teamRepo, creditRepo)
}
