package webhook_fx

import (
	"go.uber.org/fx"

	"minutely/internal/api/controllers"
	"minutely/internal/repositories"
	"minutely/internal/services"
	mem "minutely/pkg/memcache"
)

var Module = fx.Provide(
	provideWebhookService, controllers.NewWebhookController)

func provideWebhookService(
	meetingRepo repositories.MeetingRepository,
	taskRepo repositories.TaskRepository,
	teamRepo repositories.TeamMemberRepository,
	dedupe mem.EventDedupeStore,
) services.WebhookServiceInterface {
	return services.NewWebhookService(meetingRepo, taskRepo, teamRepo, dedupe)
}
